package bst

// Preorder returns the values in (node, left, right) order.
func (tree *Tree) Preorder() []int {
	return AppendPreorder(make([]int, 0, tree.size), tree.root)
}

// Inorder returns the values in ascending order.
func (tree *Tree) Inorder() []int {
	return AppendInorder(make([]int, 0, tree.size), tree.root)
}

// Postorder returns the values in (left, right, node) order.
func (tree *Tree) Postorder() []int {
	return AppendPostorder(make([]int, 0, tree.size), tree.root)
}

// AppendPreorder appends the preorder values of the subtree rooted at current
// to vals and returns the extended slice. A nil current returns vals unchanged.
func AppendPreorder(vals []int, current *Node) []int {
	if current == nil {
		return vals
	}

	vals = append(vals, current.data)
	vals = AppendPreorder(vals, current.left)
	return AppendPreorder(vals, current.right)
}

func AppendInorder(vals []int, current *Node) []int {
	if current == nil {
		return vals
	}

	vals = AppendInorder(vals, current.left)
	vals = append(vals, current.data)
	return AppendInorder(vals, current.right)
}

func AppendPostorder(vals []int, current *Node) []int {
	if current == nil {
		return vals
	}

	vals = AppendPostorder(vals, current.left)
	vals = AppendPostorder(vals, current.right)
	return append(vals, current.data)
}

// PreorderIterative produces the same order as AppendPreorder with an explicit
// stack, so degenerate trees do not grow the call stack.
func PreorderIterative(start *Node) []int {
	vals := make([]int, 0)
	if start == nil {
		return vals
	}

	stack := []*Node{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		vals = append(vals, n.data)

		// right first, so the left subtree is popped first
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}

	return vals
}

func InorderIterative(start *Node) []int {
	vals := make([]int, 0)
	var stack []*Node

	current := start
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}

		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		vals = append(vals, current.data)
		current = current.right
	}

	return vals
}

func PostorderIterative(start *Node) []int {
	vals := make([]int, 0)
	var stack []*Node
	var lastVisited *Node

	current := start
	for current != nil || len(stack) > 0 {
		if current != nil {
			stack = append(stack, current)
			current = current.left
			continue
		}

		peek := stack[len(stack)-1]
		if peek.right != nil && lastVisited != peek.right {
			current = peek.right
			continue
		}

		vals = append(vals, peek.data)
		lastVisited = peek
		stack = stack[:len(stack)-1]
	}

	return vals
}

func (tree *Tree) PreorderOf(current *Node, cb func(n *Node) bool) {
	tree.preorderOf(current, cb)
}

func (tree *Tree) preorderOf(current *Node, cb func(n *Node) bool) bool {
	if current == nil {
		return true
	}

	if !cb(current) {
		return false
	}

	if !tree.preorderOf(current.left, cb) {
		return false
	}

	return tree.preorderOf(current.right, cb)
}

// InorderOf visits the subtree in ascending order until cb returns false.
func (tree *Tree) InorderOf(current *Node, cb func(n *Node) bool) {
	tree.inorderOf(current, cb)
}

func (tree *Tree) inorderOf(current *Node, cb func(n *Node) bool) bool {
	if current == nil {
		return true
	}

	if !tree.inorderOf(current.left, cb) {
		return false
	}

	if !cb(current) {
		return false
	}

	return tree.inorderOf(current.right, cb)
}

// InorderReverseOf visits the subtree in descending order until cb returns false.
func (tree *Tree) InorderReverseOf(current *Node, cb func(n *Node) bool) {
	tree.inorderReverseOf(current, cb)
}

func (tree *Tree) inorderReverseOf(current *Node, cb func(n *Node) bool) bool {
	if current == nil {
		return true
	}

	if !tree.inorderReverseOf(current.right, cb) {
		return false
	}

	if !cb(current) {
		return false
	}

	return tree.inorderReverseOf(current.left, cb)
}

func (tree *Tree) PostorderOf(current *Node, cb func(n *Node) bool) {
	tree.postorderOf(current, cb)
}

func (tree *Tree) postorderOf(current *Node, cb func(n *Node) bool) bool {
	if current == nil {
		return true
	}

	if !tree.postorderOf(current.left, cb) {
		return false
	}

	if !tree.postorderOf(current.right, cb) {
		return false
	}

	return cb(current)
}
