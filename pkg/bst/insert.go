package bst

// Insert places v as a new leaf. Values equal to a node go to its left subtree.
// It returns the tree so that insertions can be chained.
func (tree *Tree) Insert(v int) *Tree {
	node := newNode(v)
	tree.size++

	if tree.IsEmpty() {
		tree.root = node
		return tree
	}

	var current = tree.root
	for {
		if v <= current.data {
			if current.left == nil {
				current.left = node
				return tree
			}

			current = current.left
		} else {
			if current.right == nil {
				current.right = node
				return tree
			}

			current = current.right
		}
	}
}

// InsertRecursive places v exactly where Insert would, descending recursively.
func (tree *Tree) InsertRecursive(v int) *Tree {
	tree.size++

	if tree.root == nil {
		tree.root = newNode(v)
		return tree
	}

	insertInto(tree.root, v)
	return tree
}

func insertInto(current *Node, v int) {
	if v <= current.data {
		if current.left == nil {
			current.left = newNode(v)
			return
		}

		insertInto(current.left, v)
		return
	}

	if current.right == nil {
		current.right = newNode(v)
		return
	}

	insertInto(current.right, v)
}
