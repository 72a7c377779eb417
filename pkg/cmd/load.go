package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/bstree/pkg/config"
	"github.com/c9s/bstree/pkg/style"
)

func init() {
	RootCmd.AddCommand(LoadCmd)
}

// go run ./cmd/bstree load --config trees.yaml
var LoadCmd = &cobra.Command{
	Use:          "load",
	Short:        "build every tree defined in the config file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := viper.GetString("config")
		if configFile == "" {
			return errors.New("--config is required")
		}

		conf, err := config.Load(configFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tableStyle := style.TableStyle(withColor())
		for i := range conf.Trees {
			tc := &conf.Trees[i]
			tree, err := buildFromConfig(tc)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"tree":   tc.Name,
				"insert": tc.Insert,
				"size":   tree.Size(),
			}).Info("tree loaded")

			countQueries(tree, len(tc.Contains))
			style.FprintTree(out, tree, withColor())
			style.RenderTraversals(out, tableStyle, tc.Name, tree)
			style.RenderQueries(out, tableStyle, tc.Name, tree, tc.Contains)
		}

		return nil
	},
}
