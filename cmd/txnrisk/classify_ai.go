package main

import (
	"context"
	"log/slog"

	"github.com/Veraticus/txnrisk/internal/classification"
	"github.com/Veraticus/txnrisk/internal/cli"
	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/Veraticus/txnrisk/internal/llm"
	"github.com/Veraticus/txnrisk/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// aiClassifier is the part of llm.Classifier the command needs.
type aiClassifier interface {
	Classify(ctx context.Context, txn model.Transaction) (model.ClassifierResult, error)
}

func classifyAICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify-ai",
		Short: "Classify a transaction with a language model choosing the category",
		Long: `Classify a transaction with a language model choosing the category.

The risk level still comes from the rule table's thresholds for the chosen
category. Requires ANTHROPIC_API_KEY (or llm.anthropic_api_key in the config
file); a missing key is an error. If the model call fails or its answer is
not a known category, the rule-based result is shown instead.

Examples:
  txnrisk classify-ai --title "Amazon purchase - Electronics" --amount 250
  ANTHROPIC_API_KEY=... txnrisk classify-ai -t "Concert tickets" -a 80`,
		RunE: runClassifyAI,
	}

	addTransactionFlags(cmd)
	cmd.Flags().String("model", "", "Model to use (default: claude-3-haiku-20240307)")
	cmd.Flags().String("provider", "", "LLM provider: anthropic or openai (default: anthropic)")

	_ = viper.BindPFlag("llm.model", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("llm.provider", cmd.Flags().Lookup("provider"))

	return cmd
}

func runClassifyAI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	txn, err := transactionFromFlags(cmd)
	if err != nil {
		return err
	}

	rules, err := loadClassifier()
	if err != nil {
		return err
	}

	client, err := createLLMClient()
	if err != nil {
		return common.NewUserError("AI classification is not configured", err)
	}

	ai := llm.NewClassifier(client, rules, slog.Default())

	result, usedAI, err := classifyWithFallback(ctx, ai, rules, txn)
	if err != nil {
		return err
	}

	icon, heading := cli.RobotIcon, "Transaction Classification Result (AI-assisted)"
	if !usedAI {
		icon, heading = cli.SearchIcon, "Transaction Classification Result (Rule-based fallback)"
	}

	return cli.NewRenderer(cmd.OutOrStdout()).Result(icon, heading, txn, result)
}

// classifyWithFallback asks the model first and falls back to the keyword
// rules on any failure unless ctx itself is done. usedAI reports which path
// produced the result.
func classifyWithFallback(ctx context.Context, ai aiClassifier, rules *classification.Classifier, txn model.Transaction) (model.ClassifierResult, bool, error) {
	result, err := ai.Classify(ctx, txn)
	if err == nil {
		return result, true, nil
	}

	// Only the caller's own cancellation aborts; a client timeout is a remote
	// failure like any other.
	if ctx.Err() != nil {
		return model.ClassifierResult{}, false, err
	}

	common.LogWarn(err, "AI classification failed, falling back to rules", common.Fields{
		"transaction_id": txn.ID,
	})

	return rules.Classify(txn), false, nil
}
