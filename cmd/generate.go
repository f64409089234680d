package cmd

import (
	"context"
	"fmt"
	"html"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cardgen-ai/cardgen/card"
	"github.com/cardgen-ai/cardgen/common"
	"github.com/cardgen-ai/cardgen/logger"
	"github.com/cardgen-ai/cardgen/model"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a product card from the terminal",
	Long: `Send the product name, category and features to the generation endpoint and
print the generated title and description.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := common.WithYamlFile()
		endpoint := settings.Endpoint
		if cmd.Flags().Changed("endpoint") || endpoint == "" {
			endpoint, _ = cmd.Flags().GetString("endpoint")
		}

		form := card.NewForm()
		name, _ := cmd.Flags().GetString("name")
		category, _ := cmd.Flags().GetString("category")
		features, _ := cmd.Flags().GetString("features")
		form.SetName(name)
		form.SetCategory(category)
		form.SetFeatures(features)

		dispatcher, err := card.NewDispatcher(endpoint, card.NewLogNotifier(nil), card.WithForm(form))
		if err != nil {
			return err
		}

		// No timeout: the dispatch waits for the endpoint unless interrupted.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Infof("Generating card for %q via %s", name, endpoint)
		result, err := dispatcher.Submit(ctx)
		if err != nil {
			// The notifier has already logged the failure
			cmd.SilenceErrors = true
			return err
		}

		asHTML, _ := cmd.Flags().GetBool("html")
		width, _ := cmd.Flags().GetInt("width")
		return printResult(cmd.OutOrStdout(), result, asHTML, width)
	},
}

func printResult(w io.Writer, result model.GenerationResult, asHTML bool, width int) error {
	if asHTML {
		description, err := common.RenderHTML(result.Description)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "<h1>%s</h1>\n%s", html.EscapeString(result.Title), description)
		return err
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n",
		common.WrapString(result.Title, width),
		common.WrapString(result.Description, width))
	return err
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("name", "n", "", "Product name (required)")
	generateCmd.Flags().StringP("category", "c", "", "Product category (required)")
	generateCmd.Flags().StringP("features", "f", "", "Product features (optional)")
	generateCmd.Flags().StringP("endpoint", "e", card.DefaultEndpoint, "Generation endpoint URL")
	generateCmd.Flags().Bool("html", false, "Print the card as HTML")
	generateCmd.Flags().IntP("width", "w", 80, "Wrap plain-text output at this many characters (0 disables)")
}
