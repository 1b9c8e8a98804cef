package main

import (
	"strings"
	"testing"

	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		amount   string
		category string
		risk     string
		currency string
	}{
		{"travel high", "Flight to Paris - Air France", "1200", "travel", "high", "$1,200.00"},
		{"food low", "Restaurant dinner", "25", "food", "low", "$25.00"},
		{"first match wins", "Amazon flight booking", "150", "travel", "medium", "$150.00"},
		{"other uses defaults", "Miscellaneous expense", "75", "other", "low", "$75.00"},
		{"ecommerce boundary", "Online store", "200", "ecommerce", "medium", "$200.00"},
		{"ecommerce above boundary", "Online store", "201", "ecommerce", "high", "$201.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			out, stderr, err := executeCommand(classifyCmd(), "--title", tt.title, "--amount", tt.amount)
			require.NoError(t, err)
			assert.Empty(t, stderr)

			assert.Contains(t, out, "Rule-based")
			assert.Contains(t, out, tt.title)
			assert.Contains(t, out, tt.currency)
			assert.Contains(t, out, "Category: "+tt.category)
			assert.Contains(t, out, tt.risk)
			assert.Contains(t, out, "Mar 15, 2024, 02:30 PM")
		})
	}
}

func TestClassifyCommand_ShortFlags(t *testing.T) {
	resetViper(t)

	out, _, err := executeCommand(classifyCmd(), "-t", "Electricity bill", "-a", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "Category: utilities")
}

func TestClassifyCommand_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		amount string
		want   []string
	}{
		{
			name:   "empty title and negative amount",
			title:  "",
			amount: "-100",
			want:   []string{"title is required", "amount cannot be negative"},
		},
		{
			name:   "unparseable amount",
			title:  "Coffee",
			amount: "abc",
			want:   []string{"amount must be a valid number"},
		},
		{
			name:   "amount over maximum",
			title:  "Yacht",
			amount: "1000000.01",
			want:   []string{"amount exceeds maximum"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			out, stderr, err := executeCommand(classifyCmd(), "--title", tt.title, "--amount", tt.amount)
			require.Error(t, err)
			require.ErrorIs(t, err, common.ErrInvalidInput)
			assert.Empty(t, out)

			assert.Contains(t, stderr, "Validation errors:")
			last := -1
			for _, msg := range tt.want {
				idx := strings.Index(stderr, "  - "+msg)
				require.GreaterOrEqual(t, idx, 0, "missing %q in %q", msg, stderr)
				assert.Greater(t, idx, last, "messages out of order")
				last = idx
			}
		})
	}
}

func TestClassifyCommand_RequiresFlags(t *testing.T) {
	resetViper(t)

	_, _, err := executeCommand(classifyCmd(), "--title", "Coffee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestClassifyCommand_CustomRules(t *testing.T) {
	resetViper(t)
	viper.Set("rules.path", writeFile(t, "rules.yaml", `
defaults: {low: 10, medium: 20, high: 30}
rules:
  - category: utilities
    keywords: [rent]
    thresholds: {low: 1000, medium: 2000, high: 3000}
  - category: travel
    keywords: [train]
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
`))

	out, _, err := executeCommand(classifyCmd(), "-t", "Monthly rent", "-a", "1500")
	require.NoError(t, err)
	assert.Contains(t, out, "Category: utilities")
	assert.Contains(t, out, "medium")
}

func TestClassifyCommand_InvalidRules(t *testing.T) {
	resetViper(t)
	viper.Set("rules.path", writeFile(t, "rules.yaml", "rules:\n  - category: other\n    keywords: [x]\n"))

	_, _, err := executeCommand(classifyCmd(), "-t", "Coffee", "-a", "3")
	require.Error(t, err)
	assert.True(t, common.IsConfigError(err))
}
