package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/c9s/bstree/pkg/style"
)

func init() {
	StatsCmd.Flags().IntSlice("contains", nil, "values to look up before collecting")
	RootCmd.AddCommand(StatsCmd)
}

// go run ./cmd/bstree stats --contains 6 10 5 2 6 15 13
var StatsCmd = &cobra.Command{
	Use:          "stats [values...]",
	Short:        "build and query a tree, then print the collected metrics",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		probes, err := cmd.Flags().GetIntSlice("contains")
		if err != nil {
			return err
		}

		tree, err := buildTree("stats", args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tableStyle := style.TableStyle(withColor())

		countQueries(tree, len(probes))
		style.RenderQueries(out, tableStyle, "stats", tree, probes)

		families, err := prometheus.DefaultGatherer.Gather()
		if err != nil {
			return err
		}

		style.RenderMetrics(out, tableStyle, "bstree_", families)
		return nil
	},
}
