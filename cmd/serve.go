package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/cardgen-ai/cardgen/common"
	"github.com/cardgen-ai/cardgen/llm"
	"github.com/cardgen-ai/cardgen/logger"
	"github.com/cardgen-ai/cardgen/product"
	"github.com/cardgen-ai/cardgen/server"
	"github.com/cardgen-ai/cardgen/telemetry"
	"github.com/cardgen-ai/cardgen/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI and the generation endpoint",
	Long:  `Start the HTTP server with the single-page UI and POST ` + server.GeneratePath + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := common.WithYamlFile()
		applyServeFlags(cmd, &settings)
		logger.Debugf("Using settings: %+v", settings)

		if logLevel != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		generator, err := buildGenerator(settings)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdown, err := telemetry.Init(ctx, telemetry.Config{
			ServiceName:    "cardgen",
			ServiceVersion: version.Version,
			Disable:        !settings.Server.Tracing,
		})
		if err != nil {
			return err
		}
		defer shutdown(context.Background())

		srv := server.New(generator, settings, "cardgen", version.Version)
		return srv.Run(ctx, settings.Server.Addr)
	},
}

func applyServeFlags(cmd *cobra.Command, settings *common.Settings) {
	if cmd.Flags().Changed("addr") {
		settings.Server.Addr, _ = cmd.Flags().GetString("addr")
	}
	if cmd.Flags().Changed("trace") {
		settings.Server.Tracing, _ = cmd.Flags().GetBool("trace")
	}
	if cmd.Flags().Changed("provider") {
		provider, _ := cmd.Flags().GetString("provider")
		if provider != settings.LLM.Provider {
			settings.LLM.Provider = provider
			settings.LLM.Model = common.DefaultModel(provider)
		}
	}
	if cmd.Flags().Changed("model") {
		settings.LLM.Model, _ = cmd.Flags().GetString("model")
	}
}

// buildGenerator returns a nil generator, not an error, when no API key is set so
// the UI still loads and generation requests report the missing key.
func buildGenerator(settings common.Settings) (server.Generator, error) {
	llmClient, err := llm.NewLLM(settings.LLM.Provider, settings.LLM.Model,
		llm.WithMaxTokens(settings.LLM.MaxTokens),
		llm.WithTemperature(settings.LLM.Temperature),
	)
	if errors.Is(err, llm.ErrMissingAPIKey) {
		logger.Warnf("%v; generation requests will fail until it is set", err)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create client for provider: %w", err)
	}

	generator, err := product.NewGenerator(llmClient, settings)
	if err != nil {
		return nil, err
	}
	return generator, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", ":8080", "HTTP listen address")
	serveCmd.Flags().Bool("trace", false, "Export OpenTelemetry traces (OTLP when "+telemetry.EndpointEnv+" is set, stderr otherwise)")
	serveCmd.Flags().StringP("provider", "p", common.ProviderOpenAI, "LLM provider to use for generation (openai, anthropic)")
	serveCmd.Flags().StringP("model", "m", "", "LLM model to use for generation (defaults to the provider's model)")
}
