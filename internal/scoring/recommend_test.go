package scoring

import (
	"testing"

	"github.com/alexanderramin/assay/internal/domain"
	"github.com/stretchr/testify/assert"
)

var testRules = []KeywordRule{
	{Keyword: "Visual", Advice: "visual advice"},
	{Keyword: "Audio", Advice: "audio advice"},
	{Keyword: "Text alternatives", Advice: "text advice"},
	{Keyword: "translation", Advice: "translation advice"},
	{Keyword: "choice", Advice: "choice advice"},
	{Keyword: "feedback", Advice: "feedback advice"},
}

func TestRecommendFromLabels_TableOrderWithinLabel(t *testing.T) {
	got := RecommendFromLabels([]string{"Audio and Visual formats"}, testRules, MaxUDLRecommendations)
	assert.Equal(t, []string{"visual advice", "audio advice"}, got)
}

func TestRecommendFromLabels_DedupFirstSeen(t *testing.T) {
	labels := []string{"Audio narration", "Visual aids", "Audio transcripts"}
	got := RecommendFromLabels(labels, testRules, 0)
	assert.Equal(t, []string{"audio advice", "visual advice"}, got)
}

func TestRecommendFromLabels_CapsAtLimit(t *testing.T) {
	labels := []string{"Visual", "Audio", "Text alternatives", "translation", "choice"}
	got := RecommendFromLabels(labels, testRules, MaxUDLRecommendations)
	assert.Equal(t, []string{"visual advice", "audio advice", "text advice"}, got)
}

func TestRecommendFromLabels_CaseSensitive(t *testing.T) {
	got := RecommendFromLabels([]string{"visual aids", "Student Choice"}, testRules, 3)
	assert.Empty(t, got)
}

func TestRecommendFromLabels_NoMatchYieldsNothing(t *testing.T) {
	assert.Empty(t, RecommendFromLabels([]string{"Unrelated"}, testRules, 3))
	assert.Empty(t, RecommendFromLabels(nil, testRules, 3))
}

func TestRecommendFromLabels_Idempotent(t *testing.T) {
	labels := []string{"Immediate feedback", "Learner choice", "Audio", "Visual"}
	first := RecommendFromLabels(labels, testRules, MaxUDLRecommendations)
	second := RecommendFromLabels(labels, testRules, MaxUDLRecommendations)
	assert.Equal(t, first, second)
	assert.LessOrEqual(t, len(first), MaxUDLRecommendations)
}

func TestRecommendFromCategories(t *testing.T) {
	advice := map[domain.Category]string{
		domain.CategoryCultural:      "cultural advice",
		domain.CategoryAccessibility: "accessibility advice",
		domain.CategoryParticipation: "participation advice",
		domain.CategoryLanguage:      "language advice",
	}
	tallies := map[domain.Category]domain.CategoryTally{
		domain.CategoryLanguage:      {Checked: 1, Total: 4},
		domain.CategoryCultural:      {Checked: 3, Total: 4},
		domain.CategoryAccessibility: {Checked: 4, Total: 4},
		domain.CategoryParticipation: {Checked: 4, Total: 4},
	}

	got := RecommendFromCategories(tallies, advice)
	assert.Equal(t, []string{"cultural advice", "language advice"}, got)
}

func TestRecommendFromCategories_AllComplete(t *testing.T) {
	tallies := map[domain.Category]domain.CategoryTally{
		domain.CategoryCultural: {Checked: 4, Total: 4},
	}
	assert.Empty(t, RecommendFromCategories(tallies, map[domain.Category]string{domain.CategoryCultural: "x"}))
}
