package cmd

import (
	"github.com/spf13/cobra"

	"github.com/c9s/bstree/pkg/style"
)

func init() {
	PrintCmd.Flags().Bool("graph", false, "print with box drawing branches instead of the sideways layout")
	RootCmd.AddCommand(PrintCmd)
}

var PrintCmd = &cobra.Command{
	Use:          "print [values...]",
	Short:        "render a tree",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := cmd.Flags().GetBool("graph")
		if err != nil {
			return err
		}

		tree, err := buildTree("print", args)
		if err != nil {
			return err
		}

		if graph {
			tree.FprintGraph(cmd.OutOrStdout())
			return nil
		}

		style.FprintTree(cmd.OutOrStdout(), tree, withColor())
		return nil
	},
}
