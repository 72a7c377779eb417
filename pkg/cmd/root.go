package cmd

import (
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/c9s/bstree/pkg/envvar"
	"github.com/c9s/bstree/pkg/util"
)

var RootCmd = &cobra.Command{
	Use:   "bstree",
	Short: "binary search tree playground",
	Long:  "build, query, traverse and render integer binary search trees",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadDotenv(viper.GetString("dotenv")); err != nil {
			return err
		}

		setupLogger(log.StandardLogger())
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "tree set config file (yaml)")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "dotenv file to load if it exists")

	RootCmd.PersistentFlags().Bool("recursive", false, "use the recursive insertion instead of the iterative one")
	RootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func loadDotenv(file string) error {
	if file == "" {
		return nil
	}

	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	log.Debugf("loading dotenv file %s", file)
	return godotenv.Load(file)
}

func setupLogger(logger *log.Logger) {
	logger.SetFormatter(&prefixed.TextFormatter{})

	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	if !envvar.IsProduction() {
		return
	}

	logDir, _ := envvar.String("log-dir", "log")
	writer := &lumberjack.Logger{
		Filename:   path.Join(logDir, "bstree.log"),
		MaxSize:    50, // megabytes
		MaxBackups: 7,
		MaxAge:     28, // days
	}

	logger.AddHook(
		lfshook.NewHook(
			lfshook.WriterMap{
				log.DebugLevel: writer,
				log.InfoLevel:  writer,
				log.WarnLevel:  writer,
				log.ErrorLevel: writer,
				log.FatalLevel: writer,
			},
			&log.JSONFormatter{},
		),
	)
}

func bindViper() {
	viper.SetEnvPrefix("bstree")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	util.LogErr(nil, viper.BindPFlags(RootCmd.PersistentFlags()), "failed to bind persistent flags. please check the flag settings.")
	util.LogErr(nil, viper.BindPFlags(RootCmd.Flags()), "failed to bind local flags. please check the flag settings.")
}

func Execute() {
	bindViper()

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
