// Package model defines the core domain models used throughout the application.
package model

// ClassificationRule binds a category to its keywords and risk thresholds.
type ClassificationRule struct {
	Category   Category   `yaml:"category"`
	Keywords   []string   `yaml:"keywords"`
	Thresholds Thresholds `yaml:"thresholds"`
}

// ClassifierResult is the outcome of classifying a transaction.
type ClassifierResult struct {
	Category  Category
	RiskLevel RiskLevel
}
