package bst

import "math"

// The value returning queries follow the comma-ok convention: ok is false when
// the tree or the starting node is empty, and the returned value must be ignored.

// Min returns the smallest value of the tree, ok is false when it is empty.
func (tree *Tree) Min() (int, bool) {
	return tree.MinOf(tree.root)
}

// MinOf returns the smallest value of the subtree rooted at current.
func (tree *Tree) MinOf(current *Node) (int, bool) {
	node := leftmost(current)
	if node == nil {
		return 0, false
	}

	return node.data, true
}

// MinRecursive is Min descending the left spine recursively.
func (tree *Tree) MinRecursive() (int, bool) {
	return tree.MinRecursiveOf(tree.root)
}

func (tree *Tree) MinRecursiveOf(current *Node) (int, bool) {
	if current == nil {
		return 0, false
	}

	if current.left == nil {
		return current.data, true
	}

	return tree.MinRecursiveOf(current.left)
}

// Max returns the largest value of the tree, ok is false when it is empty.
func (tree *Tree) Max() (int, bool) {
	return tree.MaxOf(tree.root)
}

// MaxOf returns the largest value of the subtree rooted at current.
func (tree *Tree) MaxOf(current *Node) (int, bool) {
	node := rightmost(current)
	if node == nil {
		return 0, false
	}

	return node.data, true
}

// MaxRecursive is Max descending the right spine recursively.
func (tree *Tree) MaxRecursive() (int, bool) {
	return tree.MaxRecursiveOf(tree.root)
}

func (tree *Tree) MaxRecursiveOf(current *Node) (int, bool) {
	if current == nil {
		return 0, false
	}

	if current.right == nil {
		return current.data, true
	}

	return tree.MaxRecursiveOf(current.right)
}

// Range returns max - min of the whole tree.
func (tree *Tree) Range() (int, bool) {
	return tree.RangeOf(tree.root)
}

// RangeOf returns max - min of the subtree rooted at start. ok is false for a
// nil start and also when the difference does not fit in an int.
func (tree *Tree) RangeOf(start *Node) (int, bool) {
	lo, ok := tree.MinOf(start)
	if !ok {
		return 0, false
	}

	hi, _ := tree.MaxOf(start)
	return span(lo, hi)
}

func (tree *Tree) RangeRecursive() (int, bool) {
	return tree.RangeRecursiveOf(tree.root)
}

// RangeRecursiveOf is RangeOf built on the recursive min and max.
func (tree *Tree) RangeRecursiveOf(start *Node) (int, bool) {
	lo, ok := tree.MinRecursiveOf(start)
	if !ok {
		return 0, false
	}

	hi, _ := tree.MaxRecursiveOf(start)
	return span(lo, hi)
}

// span returns hi - lo for lo <= hi, failing when the difference overflows int.
func span(lo, hi int) (int, bool) {
	if lo < 0 && hi > math.MaxInt+lo {
		return 0, false
	}

	return hi - lo, true
}

// Contains reports whether v is stored in the tree.
func (tree *Tree) Contains(v int) bool {
	var current = tree.root
	for current != nil {
		if current.data == v {
			return true
		}

		if v < current.data {
			current = current.left
		} else {
			current = current.right
		}
	}

	return false
}

// ContainsRecursive is Contains with a recursive descent from the root.
func (tree *Tree) ContainsRecursive(v int) bool {
	return tree.ContainsRecursiveOf(v, tree.root)
}

func (tree *Tree) ContainsRecursiveOf(v int, current *Node) bool {
	if current == nil {
		return false
	}

	switch {
	case v == current.data:
		return true
	case v < current.data:
		return tree.ContainsRecursiveOf(v, current.left)
	default:
		return tree.ContainsRecursiveOf(v, current.right)
	}
}

func leftmost(current *Node) *Node {
	if current == nil {
		return nil
	}

	for current.left != nil {
		current = current.left
	}

	return current
}

func rightmost(current *Node) *Node {
	if current == nil {
		return nil
	}

	for current.right != nil {
		current = current.right
	}

	return current
}
