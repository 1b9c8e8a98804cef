package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/txnrisk/internal/classification"
	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/Veraticus/txnrisk/internal/model"
)

// Classifier asks a language model for the category of a transaction and
// applies the rule table's thresholds to the answer. It does not fall back
// on failure; callers decide what to do with the error.
type Classifier struct {
	client Client
	rules  *classification.Classifier
	logger *slog.Logger
}

// NewClassifier creates an AI classifier. rules supplies the risk thresholds.
func NewClassifier(client Client, rules *classification.Classifier, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		client: client,
		rules:  rules,
		logger: logger,
	}
}

// Classify resolves txn's category with one completion call and its risk
// level with the rule-based thresholds for that category.
func (c *Classifier) Classify(ctx context.Context, txn model.Transaction) (model.ClassifierResult, error) {
	prompt, err := buildPrompt(txn.Title)
	if err != nil {
		return model.ClassifierResult{}, err
	}

	reply, err := c.client.Complete(ctx, Request{
		Prompt: prompt,
		System: systemPrompt(),
	})
	if err != nil {
		return model.ClassifierResult{}, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}

	category, err := parseCategory(reply)
	if err != nil {
		return model.ClassifierResult{}, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}

	result := model.ClassifierResult{
		Category:  category,
		RiskLevel: c.rules.RiskFor(category, txn.Amount),
	}

	c.logger.Debug("transaction classified by model",
		"transaction_id", txn.ID,
		"category", result.Category,
		"risk", result.RiskLevel)

	return result, nil
}
