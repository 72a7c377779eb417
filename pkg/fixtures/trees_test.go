package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures_Shapes(t *testing.T) {
	testcases := []struct {
		name   string
		size   int
		height int
		pre    []int
	}{
		{"empty", 0, -1, []int{}},
		{"oneNode", 1, 0, []int{10}},
		{"twoLevel", 3, 1, []int{10, 5, 15}},
		{"threeLevel", 6, 2, []int{10, 5, 2, 6, 15, 13}},
		{"full", 15, 3, []int{25, 15, 10, 4, 12, 22, 18, 24, 50, 35, 31, 44, 70, 66, 90}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tree, ok := Get(tc.name)
			require.True(t, ok)
			assert.Equal(t, tc.size, tree.Size())
			assert.Equal(t, tc.height, tree.Height())
			assert.Equal(t, tc.pre, tree.Preorder())
			assert.NoError(t, tree.Validate())
		})
	}
}

func TestFixtures_FreshCopies(t *testing.T) {
	a, _ := Get("threeLevel")
	b, _ := Get("threeLevel")
	a.Insert(100)
	assert.Equal(t, 7, a.Size())
	assert.Equal(t, 6, b.Size())

	_, ok := Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"empty", "full", "oneNode", "threeLevel", "twoLevel"}, Names())
}
