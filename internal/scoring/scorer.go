// Package scoring holds the pure questionnaire engine: checklist scores,
// category breakdowns, recommendations and Quality Matters alignment.
// Nothing here touches session state; callers pass every value in.
package scoring

import (
	"fmt"

	"github.com/alexanderramin/assay/internal/domain"
)

// ChecklistScore is the outcome of scoring one checklist.
type ChecklistScore struct {
	Percentage      int
	Checked         int
	Total           int
	UncheckedLabels []string
}

// Complete reports whether every item was checked.
func (s ChecklistScore) Complete() bool {
	return s.Checked == s.Total
}

// Percent returns round(checked/total*100), rounding halves up like the
// questionnaire always has. total must be positive.
func Percent(checked, total int) (int, error) {
	if total <= 0 {
		return 0, fmt.Errorf("percentage of %d/%d: %w", checked, total, domain.ErrInvalidInput)
	}
	return (checked*200 + total) / (2 * total), nil
}

// Score computes the checked percentage and the unchecked labels, in order.
func Score(items []domain.ChecklistItem) (ChecklistScore, error) {
	if len(items) == 0 {
		return ChecklistScore{}, fmt.Errorf("scoring empty checklist: %w", domain.ErrInvalidInput)
	}

	var res ChecklistScore
	res.Total = len(items)
	for _, it := range items {
		if it.Checked {
			res.Checked++
			continue
		}
		res.UncheckedLabels = append(res.UncheckedLabels, it.Label)
	}

	pct, err := Percent(res.Checked, res.Total)
	if err != nil {
		return ChecklistScore{}, err
	}
	res.Percentage = pct
	return res, nil
}
