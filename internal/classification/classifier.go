// Package classification resolves a transaction's category and risk level
// from a static keyword rule table.
package classification

import (
	"fmt"
	"strings"

	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/Veraticus/txnrisk/internal/model"
)

// compiledRule is a rule with its keywords lower-cased once up front.
type compiledRule struct {
	keywords []string
	model.ClassificationRule
}

// Classifier assigns categories and risk levels using first-match keyword rules.
// It is immutable after construction and safe to share.
type Classifier struct {
	rules    []compiledRule
	defaults model.Thresholds
}

// New creates a classifier from an ordered rule table and the thresholds used
// for transactions that fall through to CategoryOther.
func New(rules []model.ClassificationRule, defaults model.Thresholds) (*Classifier, error) {
	if err := ValidateRules(rules, defaults); err != nil {
		return nil, err
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		keywords := make([]string, len(r.Keywords))
		for i, kw := range r.Keywords {
			keywords[i] = strings.ToLower(kw)
		}

		rule := r
		rule.Keywords = append([]string(nil), r.Keywords...)
		compiled = append(compiled, compiledRule{ClassificationRule: rule, keywords: keywords})
	}

	return &Classifier{
		rules:    compiled,
		defaults: defaults,
	}, nil
}

// NewDefault creates a classifier over the built-in rule table.
func NewDefault() *Classifier {
	c, err := New(DefaultRules(), DefaultThresholds())
	if err != nil {
		panic(fmt.Sprintf("classification: built-in rule table is invalid: %v", err))
	}
	return c
}

// ValidateRules checks that every category except OTHER has exactly one rule,
// that each rule has keywords, and that all thresholds are ordered.
func ValidateRules(rules []model.ClassificationRule, defaults model.Thresholds) error {
	if !defaults.Ordered() {
		return fmt.Errorf("%w: default thresholds are not ordered (low=%v medium=%v high=%v)",
			common.ErrInvalidConfig, defaults.Low, defaults.Medium, defaults.High)
	}

	seen := make(map[model.Category]bool, len(rules))
	for i, r := range rules {
		switch {
		case !r.Category.IsValid():
			return fmt.Errorf("%w: rule %d has unknown category %q", common.ErrInvalidConfig, i, r.Category)
		case r.Category == model.CategoryOther:
			return fmt.Errorf("%w: rule %d: category %q cannot have a rule", common.ErrInvalidConfig, i, r.Category)
		case seen[r.Category]:
			return fmt.Errorf("%w: duplicate rule for category %q", common.ErrInvalidConfig, r.Category)
		case len(r.Keywords) == 0:
			return fmt.Errorf("%w: rule for %q has no keywords", common.ErrInvalidConfig, r.Category)
		case !r.Thresholds.Ordered():
			return fmt.Errorf("%w: thresholds for %q are not ordered (low=%v medium=%v high=%v)",
				common.ErrInvalidConfig, r.Category, r.Thresholds.Low, r.Thresholds.Medium, r.Thresholds.High)
		}
		for _, kw := range r.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("%w: rule for %q has an empty keyword", common.ErrInvalidConfig, r.Category)
			}
		}
		seen[r.Category] = true
	}

	for _, c := range model.Categories() {
		if c != model.CategoryOther && !seen[c] {
			return fmt.Errorf("%w: no rule for category %q", common.ErrInvalidConfig, c)
		}
	}

	return nil
}

// Classify resolves the category of txn by keyword match and its risk level
// by the category's thresholds. It never fails.
func (c *Classifier) Classify(txn model.Transaction) model.ClassifierResult {
	category := c.FindCategory(txn.Title)
	return model.ClassifierResult{
		Category:  category,
		RiskLevel: c.RiskFor(category, txn.Amount),
	}
}

// FindCategory returns the category of the first rule with a keyword contained
// in title, or CategoryOther.
func (c *Classifier) FindCategory(title string) model.Category {
	c.mustBeInitialized()

	lower := strings.ToLower(title)
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.Category
			}
		}
	}
	return model.CategoryOther
}

// RiskFor resolves the risk level of amount under category's thresholds.
func (c *Classifier) RiskFor(category model.Category, amount float64) model.RiskLevel {
	return c.ThresholdsFor(category).Level(amount)
}

// ThresholdsFor returns the thresholds applied to category. Categories without
// a rule get the default thresholds.
func (c *Classifier) ThresholdsFor(category model.Category) model.Thresholds {
	c.mustBeInitialized()

	for _, r := range c.rules {
		if r.Category == category {
			return r.Thresholds
		}
	}
	return c.defaults
}

// Rules returns a copy of the rule table in precedence order.
func (c *Classifier) Rules() []model.ClassificationRule {
	c.mustBeInitialized()

	out := make([]model.ClassificationRule, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.ClassificationRule
		out[i].Keywords = append([]string(nil), r.Keywords...)
	}
	return out
}

// Defaults returns the thresholds used for CategoryOther.
func (c *Classifier) Defaults() model.Thresholds {
	c.mustBeInitialized()
	return c.defaults
}

func (c *Classifier) mustBeInitialized() {
	if c == nil || c.rules == nil {
		panic("classification: classifier used before its rule table was initialized")
	}
}
