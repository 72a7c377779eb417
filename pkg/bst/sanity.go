package bst

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type bound struct {
	value int
	set   bool
}

// Validate checks the ordering invariant of every node and the recorded size.
// All violations are collected into a single multierr error.
func (tree *Tree) Validate() (err error) {
	count := 0
	tree.PreorderOf(tree.root, func(n *Node) bool {
		count++
		return true
	})

	if count != tree.size {
		err = multierr.Append(err, errors.Errorf("size mismatch: recorded %d, reachable %d", tree.size, count))
	}

	return multierr.Append(err, validateOf(tree.root, bound{}, bound{}))
}

// validateOf checks that every value v under current satisfies lower < v <= upper.
func validateOf(current *Node, lower, upper bound) (err error) {
	if current == nil {
		return nil
	}

	if lower.set && !(current.data > lower.value) {
		err = multierr.Append(err, errors.Errorf("node %d is in the right subtree of %d but not greater than it", current.data, lower.value))
	}

	if upper.set && !(current.data <= upper.value) {
		err = multierr.Append(err, errors.Errorf("node %d is in the left subtree of %d but greater than it", current.data, upper.value))
	}

	err = multierr.Append(err, validateOf(current.left, lower, bound{value: current.data, set: true}))
	err = multierr.Append(err, validateOf(current.right, bound{value: current.data, set: true}, upper))
	return err
}
