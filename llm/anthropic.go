package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/cardgen-ai/cardgen/logger"
)

// AnthropicModel implements the LLM interface using Anthropic's API
type AnthropicModel struct {
	client anthropic.Client
	config
}

// NewAnthropic creates a new Anthropic client
func NewAnthropic(apiKey string, opts ...Option) (*AnthropicModel, error) {
	if apiKey == "" {
		return nil, errors.New("Anthropic API key cannot be empty")
	}

	model := &AnthropicModel{
		config: config{
			modelName:   string(anthropic.ModelClaude3_5HaikuLatest),
			maxTokens:   800,
			temperature: 0.8,
			apiTimeout:  30,
		},
	}
	applyOptions(&model.config, opts)

	requestOptions := []option.RequestOption{option.WithAPIKey(apiKey)}
	if model.baseURL != "" {
		requestOptions = append(requestOptions, option.WithBaseURL(model.baseURL))
	}
	model.client = anthropic.NewClient(requestOptions...)

	logger.Debugf("Anthropic client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a request to Anthropic and returns the response
func (a *AnthropicModel) Prompt(ctx context.Context, req Request) Response {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(a.apiTimeout)*time.Second)
	defer cancel()

	messageParams := anthropic.MessageNewParams{
		Model:       anthropic.Model(a.modelName),
		MaxTokens:   int64(a.maxTokens),
		Temperature: anthropic.Float(a.temperature),
		System: []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(req.UserPrompt),
				},
			},
		},
	}

	logger.Infof("Sending request to Anthropic with model %s, max tokens %d", a.modelName, a.maxTokens)

	message, err := a.client.Messages.New(ctx, messageParams)
	if err != nil {
		logger.Errorf("failed to create message: %v", err)
		return Response{
			Error: fmt.Errorf("failed to create message: %w", err),
		}
	}

	var content string
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += b.Text
		}
	}

	if content == "" {
		return Response{
			Error: errors.New("Anthropic response contained no text"),
		}
	}

	return Response{
		Content: content,
	}
}
