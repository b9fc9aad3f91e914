// Package catalog holds the questionnaire's static content: checklists,
// category classification, recommendation tables and per-type guidance.
// The default catalog is embedded; an override file can replace it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/assay/internal/domain"
	"github.com/alexanderramin/assay/internal/scoring"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

// ErrInvalidCatalog wraps every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Item is one checklist entry as configured.
type Item struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// UDL is the Universal Design for Learning checklist and its advice table.
type UDL struct {
	Items []Item                `yaml:"items"`
	Rules []scoring.KeywordRule `yaml:"rules"`
}

// CategoryConfig configures one inclusive-design category.
type CategoryConfig struct {
	Total  int      `yaml:"total"`
	Tokens []string `yaml:"tokens"`
	Advice string   `yaml:"advice"`
}

// Inclusive is the inclusive-design checklist.
type Inclusive struct {
	Categories map[domain.Category]CategoryConfig `yaml:"categories"`
	Items      []Item                             `yaml:"items"`
}

// TypeContent is the static guidance shown for an assessment type.
type TypeContent struct {
	Practices       []string `yaml:"practices"`
	AIOpportunities []string `yaml:"ai_opportunities"`
}

// Catalog is the full questionnaire configuration.
type Catalog struct {
	UDL          UDL                                   `yaml:"udl"`
	Support      []Item                                `yaml:"support"`
	Inclusive    Inclusive                             `yaml:"inclusive"`
	CourseLevels []string                              `yaml:"course_levels"`
	Types        map[domain.AssessmentType]TypeContent `yaml:"types"`
}

// Default parses and validates the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// Load reads a catalog from path, or returns the default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if errs := c.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return &c, nil
}

// TokenMap returns the token -> category map used to classify inclusive items.
func (c *Catalog) TokenMap() map[string]domain.Category {
	out := make(map[string]domain.Category)
	for cat, cfg := range c.Inclusive.Categories {
		for _, tok := range cfg.Tokens {
			out[tok] = cat
		}
	}
	return out
}

// Classifier returns the inclusive-item classifier.
func (c *Catalog) Classifier() scoring.Classifier {
	return scoring.TokenClassifier(c.TokenMap())
}

// CategoryTotals returns the configured per-category totals.
func (c *Catalog) CategoryTotals() map[domain.Category]int {
	out := make(map[domain.Category]int, len(c.Inclusive.Categories))
	for cat, cfg := range c.Inclusive.Categories {
		out[cat] = cfg.Total
	}
	return out
}

// CategoryAdvice returns the improvement advice per category.
func (c *Catalog) CategoryAdvice() map[domain.Category]string {
	out := make(map[domain.Category]string, len(c.Inclusive.Categories))
	for cat, cfg := range c.Inclusive.Categories {
		out[cat] = cfg.Advice
	}
	return out
}

// TypeContent looks up the guidance for t.
func (c *Catalog) TypeContent(t domain.AssessmentType) (TypeContent, bool) {
	tc, ok := c.Types[t]
	return tc, ok
}

// SupportLabel returns the label of a support option.
func (c *Catalog) SupportLabel(id string) (string, bool) {
	return findLabel(c.Support, id)
}

func findLabel(items []Item, id string) (string, bool) {
	for _, it := range items {
		if it.ID == id {
			return it.Label, true
		}
	}
	return "", false
}
