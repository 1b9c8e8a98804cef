package classification

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/Veraticus/txnrisk/internal/model"
	"gopkg.in/yaml.v3"
)

// RuleFile is the on-disk form of a rule table.
//
//	defaults: {low: 100, medium: 500, high: 1000}
//	rules:
//	  - category: travel
//	    keywords: [flight, hotel]
//	    thresholds: {low: 100, medium: 500, high: 1000}
type RuleFile struct {
	Defaults *model.Thresholds          `yaml:"defaults"`
	Rules    []model.ClassificationRule `yaml:"rules"`
}

// LoadRules reads a rule table from a YAML file and builds a classifier from it.
func LoadRules(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	c, err := ParseRules(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return c, nil
}

// ParseRules decodes a YAML rule table. Unknown fields are rejected and a
// missing defaults block falls back to DefaultThresholds.
func ParseRules(r io.Reader) (*Classifier, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file RuleFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: rules file is empty", common.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	defaults := DefaultThresholds()
	if file.Defaults != nil {
		defaults = *file.Defaults
	}

	return New(file.Rules, defaults)
}

// MarshalRules renders the classifier's rule table as YAML in the same shape
// ParseRules accepts.
func MarshalRules(c *Classifier) ([]byte, error) {
	defaults := c.Defaults()
	file := RuleFile{
		Defaults: &defaults,
		Rules:    c.Rules(),
	}

	out, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rules: %w", err)
	}
	return out, nil
}
