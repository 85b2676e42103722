package main

import (
	"fmt"
	"io"
	"os"

	"github.com/heathj/elemtree/tree"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "elemtree",
		Short: "Render and search markup element trees",
		Long: `elemtree builds element trees from YAML descriptions and renders
them as indented markup, or searches them with a two-class selector
("ancestor target" or "parent > child").`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr(), debug)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log tree construction and traversal")

	rootCmd.AddCommand(
		renderCmd(),
		findCmd(),
		demoCmd(),
		versionCmd(),
	)
	return rootCmd
}

func configureLogging(out io.Writer, debug bool) {
	logger := logrus.StandardLogger()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	tree.SetLogger(logger)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "elemtree %s\n", version)
		},
	}
}
