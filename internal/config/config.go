// Package config provides configuration utilities for the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/txnrisk/internal/llm"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadDotenv loads KEY=value pairs from a .env file into the process
// environment without overriding variables that are already set. An empty
// path means ".env" in the working directory, which may be absent; an
// explicit path must exist.
func LoadDotenv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(ExpandPath(path)); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadLLMConfig builds the completion client configuration.
// It follows this precedence:
// 1. Viper configuration (from config file or TXNRISK_ env vars)
// 2. Direct environment variables (ANTHROPIC_API_KEY / OPENAI_API_KEY)
// 3. Default values
//
// A missing API key is not reported here; the client constructor rejects it.
func LoadLLMConfig() llm.Config {
	cfg := llm.Config{
		Provider:    strings.ToLower(viper.GetString("llm.provider")),
		Model:       viper.GetString("llm.model"),
		BaseURL:     viper.GetString("llm.base_url"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		Timeout:     viper.GetDuration("llm.timeout"),
	}

	// 0 is a valid temperature, so only an explicit setting overrides the default
	if viper.IsSet("llm.temperature") {
		temperature := viper.GetFloat64("llm.temperature")
		cfg.Temperature = &temperature
	}

	if cfg.Provider == "" {
		cfg.Provider = "anthropic"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	switch cfg.Provider {
	case "openai":
		cfg.APIKey = viper.GetString("llm.openai_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	default:
		cfg.APIKey = viper.GetString("llm.anthropic_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	return cfg
}

// RulesPath returns the expanded path of the configured rule file, or "" when
// the built-in rule table should be used.
func RulesPath() string {
	return ExpandPath(viper.GetString("rules.path"))
}
