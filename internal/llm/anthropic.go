package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Veraticus/txnrisk/internal/common"
)

const (
	anthropicBaseURL      = "https://api.anthropic.com"
	anthropicVersion      = "2023-06-01"
	anthropicDefaultModel = "claude-3-haiku-20240307"
)

// anthropicClient implements Client for the Anthropic Messages API.
type anthropicClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	defaults   settings
}

// NewAnthropicClient creates a client for the Anthropic Messages API.
func NewAnthropicClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY environment variable is required", common.ErrMissingConfig)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}

	return &anthropicClient{
		httpClient: newHTTPClient(cfg.Timeout),
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		defaults:   defaultSettings(cfg, anthropicDefaultModel),
	}, nil
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

// anthropicResponse represents the Anthropic API response structure.
type anthropicResponse struct {
	StopSequence *string `json:"stop_sequence"`
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Role         string  `json:"role"`
	Model        string  `json:"model"`
	StopReason   string  `json:"stop_reason"`
	Content      []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Complete sends req to the Messages API and returns the first content block's text.
func (c *anthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	s := c.defaults.merge(req)

	body := anthropicRequest{
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
		System:      req.System,
		Messages: []anthropicMessage{
			{Role: "user", Content: req.Prompt},
		},
	}

	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": anthropicVersion,
	}

	var resp anthropicResponse
	if err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/messages", headers, body, &resp); err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("failed to call Anthropic API: %w", ErrEmptyResponse)
	}

	return resp.Content[0].Text, nil
}
