package llm

import (
	"context"
	"errors"
	"time"
)

// Errors returned by completion clients and the AI classifier.
var (
	ErrEmptyResponse       = errors.New("no content in response")
	ErrUnparseableCategory = errors.New("response does not name a known category")
)

// Client sends a prompt to a language model and returns the first text segment
// of its reply.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is a single completion request. Zero values fall back to the
// client's configured defaults; a nil Temperature does too, so an explicit 0
// can be requested.
type Request struct {
	Temperature *float64
	Prompt      string
	System      string
	Model       string
	MaxTokens   int
}

// Config holds provider settings for a completion client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	MaxTokens   int
	// Temperature is nil when unset.
	Temperature *float64
}

// settings are the per-request values after applying defaults.
type settings struct {
	model       string
	maxTokens   int
	temperature float64
}

func (s settings) merge(req Request) settings {
	out := s
	if req.Model != "" {
		out.model = req.Model
	}
	if req.MaxTokens > 0 {
		out.maxTokens = req.MaxTokens
	}
	if req.Temperature != nil {
		out.temperature = *req.Temperature
	}
	return out
}

func defaultSettings(cfg Config, model string) settings {
	s := settings{
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: 0.7,
	}
	if s.model == "" {
		s.model = model
	}
	if s.maxTokens == 0 {
		s.maxTokens = 200
	}
	if cfg.Temperature != nil {
		s.temperature = *cfg.Temperature
	}
	return s
}
