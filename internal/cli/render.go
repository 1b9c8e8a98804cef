package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/txnrisk/internal/format"
	"github.com/Veraticus/txnrisk/internal/model"
)

// Renderer writes classification output for humans.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Result prints a classified transaction under heading.
func (r *Renderer) Result(icon, heading string, txn model.Transaction, result model.ClassifierResult) error {
	lines := []string{
		"",
		FormatTitle(icon, heading),
		SubtleStyle.Render(strings.Repeat("=", len(heading)+3)),
		field(TitleIcon, "Title:", txn.Title),
		field(MoneyIcon, "Amount:", format.Currency(txn.Amount)),
		field(CategoryIcon+" ", "Category:", result.Category.String()),
		field(RiskIcon+" ", "Risk Level:", RiskStyle(result.RiskLevel).Render(result.RiskLevel.String())),
		field("🕒", "Date:", format.Date(txn.Timestamp)),
	}

	_, err := fmt.Fprintln(r.w, strings.Join(lines, "\n"))
	return err
}

// Summary prints a compact block for one transaction, used when listing many.
func (r *Renderer) Summary(txn model.Transaction, result model.ClassifierResult) error {
	_, err := fmt.Fprintf(r.w, "%s %s\n   Amount: %s\n   Category: %s\n   Risk Level: %s\n\n",
		SuccessStyle.Render(SuccessIcon),
		BoldStyle.Render(txn.Title),
		format.Currency(txn.Amount),
		result.Category,
		RiskStyle(result.RiskLevel).Render(result.RiskLevel.String()))
	return err
}

// ValidationErrors prints each validation message on its own line.
func (r *Renderer) ValidationErrors(errs []string) error {
	var b strings.Builder
	b.WriteString(ErrorStyle.Render("Validation errors:"))
	b.WriteString("\n")
	for _, e := range errs {
		b.WriteString("  - " + e + "\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Rules prints the rule table in precedence order followed by the fallback.
func (r *Renderer) Rules(rules []model.ClassificationRule, defaults model.Thresholds) error {
	var b strings.Builder
	b.WriteString(FormatTitle(SearchIcon, "Classification rules (first match wins)") + "\n\n")

	for i, rule := range rules {
		fmt.Fprintf(&b, "%d. %s  %s\n   keywords: %s\n",
			i+1,
			BoldStyle.Render(rule.Category.String()),
			thresholds(rule.Thresholds),
			strings.Join(rule.Keywords, ", "))
	}

	fmt.Fprintf(&b, "-. %s  %s\n   keywords: (none, used when no rule matches)\n",
		BoldStyle.Render(model.CategoryOther.String()),
		thresholds(defaults))

	_, err := io.WriteString(r.w, b.String())
	return err
}

func field(icon, label, value string) string {
	return icon + " " + BoldStyle.Render(label) + " " + value
}

func thresholds(t model.Thresholds) string {
	return SubtleStyle.Render(fmt.Sprintf("low ≤ %s, medium ≤ %s, high above (%s)",
		format.Currency(t.Low), format.Currency(t.Medium), format.Currency(t.High)))
}
