package scoring

import (
	"strings"

	"github.com/alexanderramin/assay/internal/domain"
)

// MaxUDLRecommendations caps the UDL recommendation list.
const MaxUDLRecommendations = 3

// KeywordRule triggers Advice when Keyword occurs in an unmet item label.
// Matching is case-sensitive.
type KeywordRule struct {
	Keyword string `yaml:"keyword"`
	Advice  string `yaml:"advice"`
}

// RecommendFromLabels maps unmet labels to advice. Each label is tested
// against every rule in table order; results are deduplicated keeping the
// first occurrence and truncated to limit (limit <= 0 means no cap).
func RecommendFromLabels(labels []string, rules []KeywordRule, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, label := range labels {
		for _, r := range rules {
			if r.Keyword == "" || !strings.Contains(label, r.Keyword) {
				continue
			}
			if seen[r.Advice] {
				continue
			}
			seen[r.Advice] = true
			out = append(out, r.Advice)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RecommendFromCategories emits one advice string for each category below
// 100%, in the fixed category order. Categories without advice are skipped.
func RecommendFromCategories(tallies map[domain.Category]domain.CategoryTally, advice map[domain.Category]string) []string {
	var out []string
	for _, cat := range domain.Categories() {
		tally, ok := tallies[cat]
		if !ok || tally.Total <= 0 {
			continue
		}
		if tally.Checked >= tally.Total {
			continue
		}
		if a := advice[cat]; a != "" {
			out = append(out, a)
		}
	}
	return out
}
