package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/cardgen-ai/cardgen/common"
	"github.com/cardgen-ai/cardgen/llm"
	"github.com/cardgen-ai/cardgen/logger"
	"github.com/cardgen-ai/cardgen/model"
	"github.com/cardgen-ai/cardgen/prompt"
	"github.com/cardgen-ai/cardgen/telemetry"
)

// ErrEmptyCompletion is returned when the model answers with no text
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// Generator turns product input into listing copy with an LLM
type Generator struct {
	llm      llm.LLM
	settings common.Settings
}

func NewGenerator(client llm.LLM, settings common.Settings) (*Generator, error) {
	if client == nil {
		return nil, errors.New("llm client is required")
	}
	return &Generator{llm: client, settings: settings}, nil
}

// Generate builds the prompt, calls the model and parses the completion
func (g *Generator) Generate(ctx context.Context, input model.ProductInput) (result model.GenerationResult, err error) {
	ctx, span := telemetry.Start(ctx, "product.generate",
		attribute.String("product.category", input.Category),
		attribute.Bool("product.has_features", strings.TrimSpace(input.Features) != ""),
		attribute.String("llm.provider", g.settings.LLM.Provider),
		attribute.String("llm.model", g.settings.LLM.Model),
	)
	defer func() { telemetry.End(span, err) }()

	if !input.Valid() {
		return model.GenerationResult{}, errors.New("productName and productCategory are required")
	}

	req := llm.Request{
		SystemPrompt: prompt.GetSystemPrompt(g.settings),
		UserPrompt:   prompt.GetProductPrompt(input),
	}

	resp := g.llm.Prompt(ctx, req)
	if resp.Error != nil {
		return model.GenerationResult{}, fmt.Errorf("error getting response from provider: %w", resp.Error)
	}

	logger.Debug("LLM Response:")
	logger.Debug(resp.Content)

	if strings.TrimSpace(resp.Content) == "" {
		return model.GenerationResult{}, ErrEmptyCompletion
	}

	return ParseCard(resp.Content, input), nil
}
