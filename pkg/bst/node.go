package bst

/*
Node
A node is owned by exactly one parent slot, or by the tree when it is the root.
Values in the left subtree are <= data, values in the right subtree are > data.
*/
type Node struct {
	left, right *Node
	data        int
}

func newNode(data int) *Node {
	return &Node{data: data}
}

// Data returns the value stored in the node.
func (n *Node) Data() int {
	return n.data
}

// Left returns the left child, nil if absent.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, nil if absent.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}
