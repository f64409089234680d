package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cardgen-ai/cardgen/common"
	"github.com/cardgen-ai/cardgen/logger"
)

// APIKeyEnv is checked first for every provider
const APIKeyEnv = "LLM_API_KEY"

// ErrMissingAPIKey is returned by NewLLM when no key is configured
var ErrMissingAPIKey = errors.New("LLM_API_KEY not configured")

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption   OptionType = "model"
	MaxTokensOption   OptionType = "max_tokens"
	TemperatureOption OptionType = "temperature"
	APITimeoutOption  OptionType = "api_timeout"
	BaseURLOption     OptionType = "base_url"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithTemperature creates an option to set the sampling temperature
func WithTemperature(temperature float64) Option {
	return Option{
		Type:  TemperatureOption,
		Value: temperature,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL points the provider at a compatible gateway
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// Request represents the data needed to generate a prompt for the LLM
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(ctx context.Context, req Request) Response
}

// config collects the options shared by all providers
type config struct {
	modelName   string
	maxTokens   int
	temperature float64
	apiTimeout  int // in seconds
	baseURL     string
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok && modelName != "" {
				cfg.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok && maxTokens > 0 {
				cfg.maxTokens = maxTokens
			}
		case TemperatureOption:
			if temperature, ok := opt.Value.(float64); ok {
				cfg.temperature = temperature
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok && timeout > 0 {
				cfg.apiTimeout = timeout
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok {
				cfg.baseURL = baseURL
			}
		}
	}
}

// getAPIKey reads LLM_API_KEY, falling back to the provider's own variable
func getAPIKey(providerName string) (string, error) {
	if apiKey := os.Getenv(APIKeyEnv); apiKey != "" {
		return apiKey, nil
	}

	var fallback string
	switch providerName {
	case common.ProviderOpenAI:
		fallback = "OPENAI_API_KEY"
	case common.ProviderAnthropic:
		fallback = "ANTHROPIC_API_KEY"
	}
	if fallback != "" {
		if apiKey := os.Getenv(fallback); apiKey != "" {
			return apiKey, nil
		}
	}
	return "", ErrMissingAPIKey
}

// NewLLM creates the client for providerName using the API key from the environment
func NewLLM(providerName, modelName string, opts ...Option) (LLM, error) {
	apiKey, err := getAPIKey(providerName)
	if err != nil {
		return nil, err
	}

	options := []Option{
		WithModel(modelName),
		WithAPITimeout(60),
	}
	options = append(options, opts...)

	var llmClient LLM
	switch providerName {
	case common.ProviderOpenAI:
		llmClient, err = NewOpenAI(apiKey, options...)
	case common.ProviderAnthropic:
		llmClient, err = NewAnthropic(apiKey, options...)
	default:
		err = fmt.Errorf("unsupported provider: %s", providerName)
	}

	if err == nil {
		logger.Infof("Using LLM provider %s with model %s", providerName, modelName)
	}

	return llmClient, err
}
