package bst

// Tree is an unbalanced binary search tree of integers.
// Equal values are placed in the left subtree.
type Tree struct {
	root *Node
	size int
}

func New() *Tree {
	return &Tree{}
}

// FromValues builds a tree by inserting the values in order.
func FromValues(values ...int) *Tree {
	tree := New()
	for _, v := range values {
		tree.Insert(v)
	}

	return tree
}

// FromValuesRecursive is FromValues using the recursive insertion.
func FromValuesRecursive(values ...int) *Tree {
	tree := New()
	for _, v := range values {
		tree.InsertRecursive(v)
	}

	return tree
}

func (tree *Tree) Root() *Node {
	return tree.root
}

func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Size returns the number of inserted values.
func (tree *Tree) Size() int {
	return tree.size
}

// Height returns the number of edges on the longest root-to-leaf path.
// An empty tree has height -1 and a single node has height 0.
func (tree *Tree) Height() int {
	return heightOf(tree.root)
}

func heightOf(current *Node) int {
	if current == nil {
		return -1
	}

	l, r := heightOf(current.left), heightOf(current.right)
	if l > r {
		return l + 1
	}

	return r + 1
}

// Search returns the first node holding v on the descent from the root, or nil.
func (tree *Tree) Search(v int) *Node {
	var current = tree.root
	for current != nil && current.data != v {
		if v < current.data {
			current = current.left
		} else {
			current = current.right
		}
	}

	return current
}

// Equal reports whether both trees have the same shape and the same value at
// every position.
func (tree *Tree) Equal(other *Tree) bool {
	if other == nil {
		return false
	}

	return tree.size == other.size && sameShape(tree.root, other.root)
}

func sameShape(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.data == b.data && sameShape(a.left, b.left) && sameShape(a.right, b.right)
}
