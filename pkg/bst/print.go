package bst

import (
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is the number of spaces added per depth level by Fprint.
const DefaultIndent = 10

// SidewaysOf visits the subtree right-to-left (descending order) along with
// each node's depth below current. This is the line order of the sideways
// rendering, where the root sits at the left margin.
func (tree *Tree) SidewaysOf(current *Node, cb func(n *Node, depth int)) {
	sidewaysOf(current, 0, cb)
}

func sidewaysOf(current *Node, depth int, cb func(n *Node, depth int)) {
	if current == nil {
		return
	}

	sidewaysOf(current.right, depth+1, cb)
	cb(current, depth)
	sidewaysOf(current.left, depth+1, cb)
}

// Fprint writes the tree sideways: root on the left margin, right subtree
// above and left subtree below.
func (tree *Tree) Fprint(w io.Writer) {
	tree.FprintOf(w, tree.root)
}

func (tree *Tree) FprintOf(w io.Writer, current *Node) {
	tree.SidewaysOf(current, func(n *Node, depth int) {
		fmt.Fprintf(w, "%s%d\n", strings.Repeat(" ", depth*DefaultIndent), n.data)
	})
}

func (tree *Tree) String() string {
	var sb strings.Builder
	tree.Fprint(&sb)
	return sb.String()
}

// FprintGraph writes the tree with box drawing branches, right child first.
func (tree *Tree) FprintGraph(w io.Writer) {
	if tree.root == nil {
		fmt.Fprintln(w, "<empty>")
		return
	}

	printSubTree(w, tree.root, "", "", true)
}

// printSubTree marks every child with its side (L or R) since a lone child
// would otherwise be ambiguous.
func printSubTree(w io.Writer, node *Node, side, prefix string, isTail bool) {
	if node == nil {
		return
	}

	fmt.Fprintf(w, "%s%s── %s%d\n", prefix, getBranch(isTail), side, node.data)

	newPrefix := prefix + getIndent(isTail)
	switch {
	case node.right != nil && node.left != nil:
		printSubTree(w, node.right, "R:", newPrefix, false)
		printSubTree(w, node.left, "L:", newPrefix, true)
	case node.right != nil:
		printSubTree(w, node.right, "R:", newPrefix, true)
	case node.left != nil:
		printSubTree(w, node.left, "L:", newPrefix, true)
	}
}

func getBranch(isTail bool) string {
	if isTail {
		return "└"
	}
	return "├"
}

func getIndent(isTail bool) string {
	if isTail {
		return "   "
	}
	return "│  "
}
