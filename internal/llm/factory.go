package llm

import (
	"fmt"
	"strings"

	"github.com/Veraticus/txnrisk/internal/common"
)

// NewClient creates a completion client for the configured provider.
// An empty provider selects Anthropic.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "anthropic":
		return NewAnthropicClient(cfg)
	case "openai":
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s", common.ErrInvalidConfig, cfg.Provider)
	}
}
