package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Veraticus/txnrisk/internal/common"
)

const (
	openAIBaseURL      = "https://api.openai.com"
	openAIDefaultModel = "gpt-4-turbo-preview"
)

// openAIClient implements Client for the OpenAI chat completions API.
type openAIClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	defaults   settings
}

// NewOpenAIClient creates a client for the OpenAI chat completions API.
func NewOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY environment variable is required", common.ErrMissingConfig)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openAIBaseURL
	}

	return &openAIClient{
		httpClient: newHTTPClient(cfg.Timeout),
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		defaults:   defaultSettings(cfg, openAIDefaultModel),
	}, nil
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openAIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
}

// Complete sends req as a chat completion and returns the first choice's content.
func (c *openAIClient) Complete(ctx context.Context, req Request) (string, error) {
	s := c.defaults.merge(req)

	messages := make([]openAIMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: req.Prompt})

	body := openAIRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	var resp openAIResponse
	if err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/chat/completions", headers, body, &resp); err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("failed to call OpenAI API: %w", ErrEmptyResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
