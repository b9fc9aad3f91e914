package catalog

import (
	"fmt"

	"github.com/alexanderramin/assay/internal/domain"
	"github.com/alexanderramin/assay/internal/scoring"
)

// Validate checks the catalog for configuration errors and returns all of
// them. Inclusive items whose token maps to no category are rejected here,
// so a misconfigured checklist fails at load instead of being silently
// left out of every category score.
func (c *Catalog) Validate() []error {
	var errs []error

	errs = append(errs, validateItems("udl.items", c.UDL.Items)...)
	for i, r := range c.UDL.Rules {
		if r.Keyword == "" || r.Advice == "" {
			errs = append(errs, fmt.Errorf("udl.rules[%d]: keyword and advice are required", i))
		}
	}
	errs = append(errs, validateItems("support", c.Support)...)
	errs = append(errs, c.validateInclusive()...)

	for _, t := range domain.AssessmentTypes() {
		tc, ok := c.Types[t]
		if !ok {
			errs = append(errs, fmt.Errorf("types.%s is required", t))
			continue
		}
		if len(tc.Practices) == 0 {
			errs = append(errs, fmt.Errorf("types.%s.practices must not be empty", t))
		}
	}
	for t := range c.Types {
		if _, err := domain.ParseAssessmentType(string(t)); err != nil {
			errs = append(errs, fmt.Errorf("types: %w", err))
		}
	}

	if len(c.CourseLevels) == 0 {
		errs = append(errs, fmt.Errorf("course_levels must not be empty"))
	}

	return errs
}

func validateItems(field string, items []Item) []error {
	var errs []error
	if len(items) == 0 {
		return []error{fmt.Errorf("%s must not be empty", field)}
	}
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if it.ID == "" {
			errs = append(errs, fmt.Errorf("%s[%d].id is required", field, i))
			continue
		}
		if it.Label == "" {
			errs = append(errs, fmt.Errorf("%s[%d] (%s): label is required", field, i, it.ID))
		}
		if seen[it.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", field, it.ID))
		}
		seen[it.ID] = true
	}
	return errs
}

func (c *Catalog) validateInclusive() []error {
	errs := validateItems("inclusive.items", c.Inclusive.Items)

	for _, cat := range domain.Categories() {
		if _, ok := c.Inclusive.Categories[cat]; !ok {
			errs = append(errs, fmt.Errorf("inclusive.categories.%s is required", cat))
		}
	}

	tokenOwner := make(map[string]domain.Category)
	for cat, cfg := range c.Inclusive.Categories {
		if !cat.Valid() {
			errs = append(errs, fmt.Errorf("inclusive.categories: unknown category %q", cat))
			continue
		}
		if cfg.Total <= 0 {
			errs = append(errs, fmt.Errorf("inclusive.categories.%s.total must be positive", cat))
		}
		for _, tok := range cfg.Tokens {
			if prev, dup := tokenOwner[tok]; dup {
				errs = append(errs, fmt.Errorf("inclusive.categories: token %q used by both %s and %s", tok, prev, cat))
			}
			tokenOwner[tok] = cat
		}
	}

	counts := make(map[domain.Category]int)
	for _, it := range c.Inclusive.Items {
		tok := scoring.ItemToken(it.ID)
		cat, ok := tokenOwner[tok]
		if !ok {
			errs = append(errs, fmt.Errorf("inclusive.items: %q has token %q which maps to no category", it.ID, tok))
			continue
		}
		counts[cat]++
	}
	for cat, cfg := range c.Inclusive.Categories {
		if cat.Valid() && cfg.Total > 0 && counts[cat] != cfg.Total {
			errs = append(errs, fmt.Errorf("inclusive.categories.%s: total is %d but %d items map to it", cat, cfg.Total, counts[cat]))
		}
	}

	return errs
}
