package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := getAPIKey("openai")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv("OPENAI_API_KEY", "sk-openai")
	key, err := getAPIKey("openai")
	require.NoError(t, err)
	assert.Equal(t, "sk-openai", key)

	_, err = getAPIKey("anthropic")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv(APIKeyEnv, "sk-generic")
	key, err = getAPIKey("anthropic")
	require.NoError(t, err)
	assert.Equal(t, "sk-generic", key)
}

func TestNewLLM(t *testing.T) {
	t.Setenv(APIKeyEnv, "sk-test")

	client, err := NewLLM("openai", "gpt-4o-mini")
	require.NoError(t, err)
	assert.IsType(t, &OpenAIModel{}, client)

	client, err = NewLLM("anthropic", "claude-3-5-haiku-latest")
	require.NoError(t, err)
	assert.IsType(t, &AnthropicModel{}, client)

	_, err = NewLLM("gemini", "x")
	assert.Error(t, err)
}

func TestNewLLM_MissingKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewLLM("openai", "gpt-4o-mini")
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
}

func TestApplyOptions(t *testing.T) {
	cfg := config{modelName: "a", maxTokens: 1, temperature: 0.1, apiTimeout: 5}
	applyOptions(&cfg, []Option{
		WithModel("b"),
		WithMaxTokens(800),
		WithTemperature(0.8),
		WithAPITimeout(60),
		WithBaseURL("http://gateway"),
		WithModel(""),
		WithMaxTokens(-1),
	})

	assert.Equal(t, config{modelName: "b", maxTokens: 800, temperature: 0.8, apiTimeout: 60, baseURL: "http://gateway"}, cfg)
}

func TestNewOpenAI_EmptyKey(t *testing.T) {
	_, err := NewOpenAI("")
	assert.Error(t, err)
}

func TestOpenAIPrompt(t *testing.T) {
	var got struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Заголовок\nНаушники X"}}]
		}`))
	}))
	defer server.Close()

	client, err := NewOpenAI("sk-test", WithBaseURL(server.URL+"/v1"), WithModel("gpt-4o-mini"))
	require.NoError(t, err)

	resp := client.Prompt(context.Background(), Request{SystemPrompt: "system", UserPrompt: "user"})

	require.NoError(t, resp.Error)
	assert.Equal(t, "Заголовок\nНаушники X", resp.Content)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 800, got.MaxTokens)
	assert.InDelta(t, 0.8, got.Temperature, 0.001)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Content)
}

func TestOpenAIPrompt_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-1", "choices": []}`))
	}))
	defer server.Close()

	client, err := NewOpenAI("sk-test", WithBaseURL(server.URL+"/v1"))
	require.NoError(t, err)

	resp := client.Prompt(context.Background(), Request{SystemPrompt: "s", UserPrompt: "u"})
	assert.Error(t, resp.Error)
}

func TestOpenAIPrompt_ClientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	client, err := NewOpenAI("sk-bad", WithBaseURL(server.URL+"/v1"))
	require.NoError(t, err)

	resp := client.Prompt(context.Background(), Request{SystemPrompt: "s", UserPrompt: "u"})
	require.Error(t, resp.Error)
	assert.Contains(t, resp.Error.Error(), "invalid api key")
}

func TestAnthropicPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("X-Api-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-3-5-haiku-latest", body["model"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-haiku-latest",
			"content": [{"type": "text", "text": "Наушники X"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 1, "output_tokens": 1}
		}`))
	}))
	defer server.Close()

	client, err := NewAnthropic("sk-ant", WithBaseURL(server.URL), WithModel("claude-3-5-haiku-latest"))
	require.NoError(t, err)

	resp := client.Prompt(context.Background(), Request{SystemPrompt: "s", UserPrompt: "u"})
	require.NoError(t, resp.Error)
	assert.Equal(t, "Наушники X", resp.Content)
}
