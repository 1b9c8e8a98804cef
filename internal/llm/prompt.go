package llm

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Veraticus/txnrisk/internal/model"
)

var classifyPrompt = template.Must(template.New("classify").Parse(
	`Classify the following financial transaction into exactly one category.

Transaction title: {{.Title}}

Valid categories:
{{range .Categories}}- {{.}}
{{end}}
Respond with only the category name in lower case, nothing else.`))

// buildPrompt renders the classification prompt for a transaction title.
func buildPrompt(title string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Title      string
		Categories []model.Category
	}{
		Title:      title,
		Categories: model.Categories(),
	}

	if err := classifyPrompt.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// systemPrompt tells the model to answer with a single category name.
func systemPrompt() string {
	names := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		names = append(names, string(c))
	}
	return "You are a financial transaction classifier. Respond with exactly one of: " +
		strings.Join(names, ", ") + ". Use \"other\" when nothing fits."
}
