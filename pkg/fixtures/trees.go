package fixtures

import (
	"sort"

	"github.com/c9s/bstree/pkg/bst"
)

// Insertion orders that reproduce the sample trees level by level.
var (
	OneNodeValues    = []int{10}
	TwoLevelValues   = []int{10, 5, 15}
	ThreeLevelValues = []int{10, 5, 15, 2, 6, 13}
	FullTreeValues   = []int{25, 15, 10, 22, 4, 12, 18, 24, 50, 35, 70, 31, 44, 66, 90}
)

/*
FullTree

	                  root
	              <-- 25 -->
	            /            \
	          15             50
	        /    \         /    \
	      10     22      35     70
	    /   \   /  \    /  \   /  \
	  4    12  18  24  31  44 66  90
*/
func FullTree() *bst.Tree {
	return bst.FromValues(FullTreeValues...)
}

func EmptyTree() *bst.Tree {
	return bst.New()
}

func OneNodeTree() *bst.Tree {
	return bst.FromValues(OneNodeValues...)
}

func TwoLevelTree() *bst.Tree {
	return bst.FromValues(TwoLevelValues...)
}

/*
ThreeLevelTree

	    10
	  /   \
	 5     15
	/ \   /
	2  6 13
*/
func ThreeLevelTree() *bst.Tree {
	return bst.FromValues(ThreeLevelValues...)
}

var builders = map[string]func() *bst.Tree{
	"empty":      EmptyTree,
	"oneNode":    OneNodeTree,
	"twoLevel":   TwoLevelTree,
	"threeLevel": ThreeLevelTree,
	"full":       FullTree,
}

// Get returns a fresh copy of the named fixture.
func Get(name string) (*bst.Tree, bool) {
	build, ok := builders[name]
	if !ok {
		return nil, false
	}

	return build(), true
}

// Names returns the fixture names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
