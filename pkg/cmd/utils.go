package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/c9s/bstree/pkg/bst"
	"github.com/c9s/bstree/pkg/config"
	"github.com/c9s/bstree/pkg/metrics"
)

func withColor() bool {
	return !viper.GetBool("no-color")
}

func useRecursive() bool {
	return viper.GetBool("recursive")
}

// buildTree parses the positional arguments into values and inserts them with
// the configured insertion variant.
func buildTree(name string, args []string) (*bst.Tree, error) {
	values, err := config.ParseValues(args...)
	if err != nil {
		return nil, err
	}

	tc := config.TreeConfig{
		Name:   name,
		Values: values,
		Insert: config.InsertIterative,
	}
	if useRecursive() {
		tc.Insert = config.InsertRecursive
	}

	return buildFromConfig(&tc)
}

func buildFromConfig(tc *config.TreeConfig) (*bst.Tree, error) {
	tree := tc.Build()
	metrics.AddOperations("insert", string(tc.Insert), len(tc.Values))
	metrics.ObserveTree(tc.Name, tree)

	if err := tree.Validate(); err != nil {
		return nil, errors.Wrapf(err, "tree %s is not a valid binary search tree", tc.Name)
	}

	return tree, nil
}
