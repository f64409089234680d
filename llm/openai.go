package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/cardgen-ai/cardgen/common"
	"github.com/cardgen-ai/cardgen/logger"
)

// OpenAIModel implements the LLM interface using OpenAI's API
type OpenAIModel struct {
	client *openai.Client
	config
}

// NewOpenAI creates a new OpenAI client
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		errMsg := "OpenAI API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	model := &OpenAIModel{
		config: config{
			modelName:   "gpt-4o-mini",
			maxTokens:   800,
			temperature: 0.8,
			apiTimeout:  30,
		},
	}
	applyOptions(&model.config, opts)

	// Provider calls are retried; the dispatcher's call to the backend is not.
	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.HTTPClient = retryClient.StandardClient()
	if model.baseURL != "" {
		clientConfig.BaseURL = model.baseURL
	}
	model.client = openai.NewClientWithConfig(clientConfig)

	logger.Debugf("OpenAI client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a request to OpenAI and returns the response
func (o *OpenAIModel) Prompt(ctx context.Context, req Request) Response {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(o.apiTimeout)*time.Second)
	defer cancel()

	logger.Debug("Adding system prompt to OpenAI request")
	logger.Debug(req.SystemPrompt)
	logger.Debug("Adding user prompt to OpenAI request")
	logger.Debug(req.UserPrompt)

	chatReq := openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.UserPrompt,
			},
		},
		MaxTokens:   o.maxTokens,
		Temperature: float32(o.temperature),
	}

	logger.Infof("Sending request to OpenAI with model %s, max tokens %d", o.modelName, o.maxTokens)

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		errMsg := fmt.Sprintf("failed to create chat completion: %v", err)
		logger.Error(errMsg)
		return Response{
			Error: fmt.Errorf("failed to create chat completion: %w", err),
		}
	}

	if len(resp.Choices) == 0 {
		errMsg := "OpenAI response contained no choices"
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
	}
}
