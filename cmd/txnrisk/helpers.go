package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/txnrisk/internal/classification"
	"github.com/Veraticus/txnrisk/internal/cli"
	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/Veraticus/txnrisk/internal/config"
	"github.com/Veraticus/txnrisk/internal/model"
	"github.com/Veraticus/txnrisk/internal/validation"
	"github.com/spf13/cobra"
)

// now is swapped in tests.
var now = time.Now

// addTransactionFlags registers the --title and --amount flags shared by the
// classify commands.
func addTransactionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "Transaction title")
	cmd.Flags().StringP("amount", "a", "", "Transaction amount, e.g. 1200 or 45.50")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("amount")
}

// parseAmount parses a decimal amount. Anything unparseable becomes NaN so the
// validator reports it as not a valid number.
func parseAmount(raw string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return amount
}

// transactionFromFlags validates --title/--amount and builds the transaction.
// Validation messages are printed to the command's error stream.
func transactionFromFlags(cmd *cobra.Command) (model.Transaction, error) {
	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return model.Transaction{}, err
	}
	rawAmount, err := cmd.Flags().GetString("amount")
	if err != nil {
		return model.Transaction{}, err
	}

	amount := parseAmount(rawAmount)
	result := validation.Validate(title, amount)
	if !result.Valid {
		if err := cli.NewRenderer(cmd.ErrOrStderr()).ValidationErrors(result.Errors); err != nil {
			return model.Transaction{}, fmt.Errorf("failed to print validation errors: %w", err)
		}
		return model.Transaction{}, common.NewUserError(
			fmt.Sprintf("transaction rejected with %d validation error(s)", len(result.Errors)),
			common.ErrInvalidInput)
	}

	return model.NewTransaction(title, amount, now()), nil
}

// loadClassifier builds the rule-based classifier from the configured rule
// file, or the built-in table when none is set.
func loadClassifier() (*classification.Classifier, error) {
	path := config.RulesPath()
	if path == "" {
		return classification.NewDefault(), nil
	}

	c, err := classification.LoadRules(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	common.LogDebug("Loaded rule table", common.Fields{"path": path, "rules": len(c.Rules())})
	return c, nil
}
