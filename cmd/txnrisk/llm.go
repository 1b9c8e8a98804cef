package main

import (
	"fmt"

	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/Veraticus/txnrisk/internal/config"
	"github.com/Veraticus/txnrisk/internal/llm"
)

// createLLMClient creates a completion client from configuration.
// A missing API key is a configuration error and is returned as is.
func createLLMClient() (llm.Client, error) {
	cfg := config.LoadLLMConfig()

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	common.LogDebug("LLM client ready", common.Fields{"provider": cfg.Provider, "model": cfg.Model})
	return client, nil
}
