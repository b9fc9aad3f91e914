package scoring

import (
	"strings"

	"github.com/alexanderramin/assay/internal/domain"
)

// Classifier maps a checklist item id to its category. ok is false for ids
// it does not recognize.
type Classifier func(id string) (cat domain.Category, ok bool)

// ItemToken extracts the classification token from an item id: the segment
// after the first '-' and before any second one ("inclusive-diverse" -> "diverse").
func ItemToken(id string) string {
	_, rest, found := strings.Cut(id, "-")
	if !found {
		return ""
	}
	tok, _, _ := strings.Cut(rest, "-")
	return tok
}

// TokenClassifier classifies ids by looking their token up in tokens.
func TokenClassifier(tokens map[string]domain.Category) Classifier {
	return func(id string) (domain.Category, bool) {
		cat, ok := tokens[ItemToken(id)]
		return cat, ok
	}
}

// Aggregate counts checked items per category. Totals come from
// configuration, not from the items. Items the classifier rejects are
// dropped without error.
func Aggregate(items []domain.ChecklistItem, classify Classifier, totals map[domain.Category]int) map[domain.Category]domain.CategoryTally {
	out := make(map[domain.Category]domain.CategoryTally, len(totals))
	for cat, total := range totals {
		out[cat] = domain.CategoryTally{Total: total}
	}

	for _, it := range items {
		if !it.Checked {
			continue
		}
		cat, ok := classify(it.ID)
		if !ok {
			continue
		}
		tally, known := out[cat]
		if !known {
			continue
		}
		tally.Checked++
		out[cat] = tally
	}
	return out
}

// CategoryScore is one line of a category breakdown.
type CategoryScore struct {
	Category   domain.Category
	Checked    int
	Total      int
	Percentage int
}

// Breakdown turns tallies into per-category percentages in the fixed
// category order. Categories missing from tallies are skipped.
func Breakdown(tallies map[domain.Category]domain.CategoryTally) ([]CategoryScore, error) {
	var out []CategoryScore
	for _, cat := range domain.Categories() {
		tally, ok := tallies[cat]
		if !ok {
			continue
		}
		pct, err := Percent(tally.Checked, tally.Total)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryScore{
			Category:   cat,
			Checked:    tally.Checked,
			Total:      tally.Total,
			Percentage: pct,
		})
	}
	return out, nil
}
