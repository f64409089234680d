package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cardgen-ai/cardgen/common"
	"github.com/cardgen-ai/cardgen/logger"
)

var (
	// Command line flags
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "cardgen",
	Short: "CardGen AI - marketplace product card generator",
	Long: `CardGen AI generates marketplace listing titles and descriptions from a product
name, category and features. It can serve the web UI with its generation endpoint,
or send a single generation request from the terminal.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logLevel, logFormat)
		logger.Debugf("Log level set to: %s", logLevel)
		common.LoadEnv()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logger.FormatConsole,
		"Set the log output format (json, console)")
}
