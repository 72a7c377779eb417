package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/c9s/bstree/pkg/fixtures"
	"github.com/c9s/bstree/pkg/metrics"
	"github.com/c9s/bstree/pkg/style"
)

// demoProbes are looked up in every demo tree.
var demoProbes = []int{2, 6, 200}

func init() {
	RootCmd.AddCommand(DemoCmd)
}

var DemoCmd = &cobra.Command{
	Use:          "demo [fixture...]",
	Short:        "walk through the sample trees",
	Long:         fmt.Sprintf("walk through the sample trees, available fixtures: %v", fixtures.Names()),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = fixtures.Names()
		}

		out := cmd.OutOrStdout()
		tableStyle := style.TableStyle(withColor())
		for _, name := range names {
			tree, ok := fixtures.Get(name)
			if !ok {
				return errors.Errorf("fixture %q not found, available fixtures: %v", name, fixtures.Names())
			}

			metrics.ObserveTree(name, tree)
			countQueries(tree, len(demoProbes))

			fmt.Fprintf(out, "=== %s ===\n", name)
			style.FprintTree(out, tree, withColor())
			style.RenderTraversals(out, tableStyle, name, tree)
			style.RenderQueries(out, tableStyle, name, tree, demoProbes)
		}

		return nil
	},
}
