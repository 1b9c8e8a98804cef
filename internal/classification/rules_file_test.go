package classification

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/Veraticus/txnrisk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customRules = `
defaults: {low: 10, medium: 20, high: 30}
rules:
  - category: utilities
    keywords: [rent]
    thresholds: {low: 1000, medium: 2000, high: 3000}
  - category: travel
    keywords: [train, flight]
    thresholds: {low: 100, medium: 500, high: 1000}
  - category: ecommerce
    keywords: [etsy]
    thresholds: {low: 50, medium: 200, high: 500}
  - category: food
    keywords: [bakery]
    thresholds: {low: 25, medium: 75, high: 150}
  - category: entertainment
    keywords: [arcade]
    thresholds: {low: 30, medium: 100, high: 300}
`

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRules(t *testing.T) {
	c, err := LoadRules(writeRules(t, customRules))
	require.NoError(t, err)

	// File order defines precedence: utilities is declared first here.
	rules := c.Rules()
	require.Len(t, rules, 5)
	assert.Equal(t, model.CategoryUtilities, rules[0].Category)
	assert.Equal(t, model.CategoryUtilities, c.FindCategory("Train ticket to pay rent"))

	assert.Equal(t, model.ClassifierResult{Category: model.CategoryUtilities, RiskLevel: model.RiskMedium},
		c.Classify(txn("Monthly rent", 1500)))
	assert.Equal(t, model.ClassifierResult{Category: model.CategoryOther, RiskLevel: model.RiskMedium},
		c.Classify(txn("Miscellaneous", 15)))
}

func TestParseRules_DefaultsOptional(t *testing.T) {
	body := strings.Replace(customRules, "defaults: {low: 10, medium: 20, high: 30}\n", "", 1)

	c, err := ParseRules(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, DefaultThresholds(), c.Defaults())
}

func TestParseRules_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{name: "empty", body: "", errMsg: "rules file is empty"},
		{name: "malformed yaml", body: "rules: [", errMsg: "invalid configuration"},
		{name: "unknown field", body: customRules + "extra: true\n", errMsg: "field extra not found"},
		{name: "incomplete table", body: "rules:\n  - category: travel\n    keywords: [flight]\n    thresholds: {low: 1, medium: 2, high: 3}\n", errMsg: "no rule for category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules(strings.NewReader(tt.body))
			require.ErrorIs(t, err, common.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRules_RoundTripsBuiltIns(t *testing.T) {
	out, err := MarshalRules(NewDefault())
	require.NoError(t, err)
	assert.Contains(t, string(out), "category: travel")

	c, err := ParseRules(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), c.Rules())
	assert.Equal(t, DefaultThresholds(), c.Defaults())
}
