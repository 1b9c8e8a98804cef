package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/txnrisk/internal/model"
)

// cleanMarkdownWrapper strips a surrounding ``` fence (with optional language tag).
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		// Drop a language tag such as "json".
		if tag := strings.TrimSpace(content[:nl]); !strings.ContainsAny(tag, " {") {
			content = content[nl+1:]
		}
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}

// parseCategory extracts a category from a model reply. It accepts a bare
// name ("travel"), a labelled or decorated name ("Category: **Travel**."),
// or a JSON object with a "category" field.
func parseCategory(content string) (model.Category, error) {
	text := cleanMarkdownWrapper(content)

	if strings.HasPrefix(text, "{") {
		var jsonResp struct {
			Category string `json:"category"`
		}
		if err := json.Unmarshal([]byte(text), &jsonResp); err != nil {
			return "", fmt.Errorf("%w: malformed JSON %q: %v", ErrUnparseableCategory, text, err)
		}
		text = jsonResp.Category
	}

	// Only the first line is considered; models sometimes add an explanation.
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[:nl]
	}

	name := strings.ToLower(strings.TrimSpace(text))
	name = strings.TrimPrefix(name, "category:")
	name = strings.Trim(name, " \t\"'`*.!,:;")
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)

	if category, ok := model.ParseCategory(name); ok {
		return category, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnparseableCategory, strings.TrimSpace(content))
}
