package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLLMConfig(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		env      map[string]string
		wantKey  string
		wantProv string
		wantTO   time.Duration
	}{
		{
			name:     "env key with defaults",
			env:      map[string]string{"ANTHROPIC_API_KEY": "env-key"},
			wantKey:  "env-key",
			wantProv: "anthropic",
			wantTO:   30 * time.Second,
		},
		{
			name:     "viper key wins over env",
			settings: map[string]any{"llm.anthropic_api_key": "viper-key", "llm.timeout": "5s"},
			env:      map[string]string{"ANTHROPIC_API_KEY": "env-key"},
			wantKey:  "viper-key",
			wantProv: "anthropic",
			wantTO:   5 * time.Second,
		},
		{
			name:     "openai provider reads its own key",
			settings: map[string]any{"llm.provider": "OpenAI"},
			env:      map[string]string{"ANTHROPIC_API_KEY": "wrong", "OPENAI_API_KEY": "sk-test"},
			wantKey:  "sk-test",
			wantProv: "openai",
			wantTO:   30 * time.Second,
		},
		{
			name:     "no key anywhere",
			env:      map[string]string{"ANTHROPIC_API_KEY": ""},
			wantKey:  "",
			wantProv: "anthropic",
			wantTO:   30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tt.settings {
				viper.Set(k, v)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := LoadLLMConfig()
			assert.Equal(t, tt.wantKey, cfg.APIKey)
			assert.Equal(t, tt.wantProv, cfg.Provider)
			assert.Equal(t, tt.wantTO, cfg.Timeout)
		})
	}
}

func TestLoadLLMConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("llm.model", "claude-3-5-haiku-latest")
	viper.Set("llm.max_tokens", 50)
	viper.Set("llm.temperature", 0.1)
	viper.Set("llm.base_url", "http://localhost:9999")

	cfg := LoadLLMConfig()
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Model)
	assert.Equal(t, 50, cfg.MaxTokens)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.1, *cfg.Temperature, 0.0001)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
}

func TestLoadLLMConfig_Temperature(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Nil(t, LoadLLMConfig().Temperature)

	viper.Set("llm.temperature", 0)
	cfg := LoadLLMConfig()
	require.NotNil(t, cfg.Temperature)
	assert.Zero(t, *cfg.Temperature)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TXNRISK_TEST_DOTENV=from-file\nTXNRISK_TEST_PRESET=from-file\n"), 0o600))

	t.Setenv("TXNRISK_TEST_PRESET", "from-env")
	t.Setenv("TXNRISK_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("TXNRISK_TEST_DOTENV"))

	require.NoError(t, LoadDotenv(path))
	assert.Equal(t, "from-file", os.Getenv("TXNRISK_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("TXNRISK_TEST_PRESET"))
}

func TestLoadDotenv_Missing(t *testing.T) {
	err := LoadDotenv(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.env")

	// The default .env is optional.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.NoError(t, LoadDotenv(""))
}

func TestRulesPath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Empty(t, RulesPath())

	t.Setenv("TXNRISK_RULES_DIR", "/etc/txnrisk")
	viper.Set("rules.path", "$TXNRISK_RULES_DIR/rules.yaml")
	assert.Equal(t, "/etc/txnrisk/rules.yaml", RulesPath())
}
