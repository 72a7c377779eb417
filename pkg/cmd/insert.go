package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/bstree/pkg/style"
)

func init() {
	InsertCmd.Flags().String("name", "cli", "tree name used in metrics and titles")
	RootCmd.AddCommand(InsertCmd)
}

// go run ./cmd/bstree insert 10 5 2 6 15 13
var InsertCmd = &cobra.Command{
	Use:          "insert [values...]",
	Short:        "insert values into a new tree and print its traversals",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			return err
		}

		tree, err := buildTree(name, args)
		if err != nil {
			return err
		}

		log.Debugf("built tree %s: size=%d height=%d", name, tree.Size(), tree.Height())

		out := cmd.OutOrStdout()
		style.FprintTree(out, tree, withColor())
		style.RenderTraversals(out, style.TableStyle(withColor()), name, tree)
		return nil
	},
}
