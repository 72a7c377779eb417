package cmd

import (
	"github.com/spf13/cobra"

	"github.com/c9s/bstree/pkg/bst"
	"github.com/c9s/bstree/pkg/metrics"
	"github.com/c9s/bstree/pkg/style"
)

func init() {
	QueryCmd.Flags().IntSlice("contains", nil, "values to look up, can be repeated")
	RootCmd.AddCommand(QueryCmd)
}

// go run ./cmd/bstree query --contains 6 --contains 7 10 5 2 6 15 13
var QueryCmd = &cobra.Command{
	Use:          "query [values...]",
	Short:        "run min, max, range and contains against a tree",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		probes, err := cmd.Flags().GetIntSlice("contains")
		if err != nil {
			return err
		}

		tree, err := buildTree("query", args)
		if err != nil {
			return err
		}

		countQueries(tree, len(probes))
		style.RenderQueries(cmd.OutOrStdout(), style.TableStyle(withColor()), "query", tree, probes)
		return nil
	},
}

// countQueries records the queries RenderQueries is going to run.
func countQueries(tree *bst.Tree, probes int) {
	for _, variant := range []string{metrics.VariantIterative, metrics.VariantRecursive} {
		metrics.IncOperation("min", variant)
		metrics.IncOperation("max", variant)
		metrics.IncOperation("range", variant)
		metrics.AddOperations("contains", variant, probes)
	}
}
