package testutil

import (
	"testing"

	"github.com/alexanderramin/assay/internal/catalog"
	"github.com/alexanderramin/assay/internal/domain"
)

// Alignment answers long enough to pass the detail threshold.
const (
	DetailedObjectives = "Students will be able to analyze primary sources and evaluate their reliability in context."
	DetailedAlignment  = "Each rubric row maps to one objective; the source analysis task measures evaluation directly."
)

// DefaultCatalog returns the embedded catalog or fails the test.
func DefaultCatalog(tb testing.TB) *catalog.Catalog {
	tb.Helper()
	cat, err := catalog.Default()
	if err != nil {
		tb.Fatalf("loading default catalog: %v", err)
	}
	return cat
}

// Checked builds a checked-id set.
func Checked(ids ...string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// AllChecked checks every item of the given list.
func AllChecked(items []catalog.Item) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it.ID] = true
	}
	return m
}

// Design options
type DesignOption func(*domain.AssessmentDesign)

func WithType(t domain.AssessmentType) DesignOption {
	return func(d *domain.AssessmentDesign) {
		d.SetType(t)
	}
}

func WithUDL(compliance map[string]bool) DesignOption {
	return func(d *domain.AssessmentDesign) {
		for id, ok := range compliance {
			d.UDLCompliance[id] = ok
		}
	}
}

func WithAlignment(qm domain.QMAlignment) DesignOption {
	return func(d *domain.AssessmentDesign) {
		d.QMAlignment = qm
	}
}

func WithTally(c domain.Category, checked, total int) DesignOption {
	return func(d *domain.AssessmentDesign) {
		d.InclusiveDesign[c] = domain.CategoryTally{Checked: checked, Total: total}
	}
}

func WithPrompt(p string) DesignOption {
	return func(d *domain.AssessmentDesign) {
		d.SetPrompt(p)
	}
}

func WithProgress(p int) DesignOption {
	return func(d *domain.AssessmentDesign) {
		d.SetProgress(p)
	}
}

// NewTestDesign returns an empty design with opts applied.
func NewTestDesign(opts ...DesignOption) *domain.AssessmentDesign {
	d := domain.NewAssessmentDesign()
	for _, opt := range opts {
		opt(d)
	}
	return d
}
