package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardgen-ai/cardgen/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of CardGen`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "CardGen AI v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
