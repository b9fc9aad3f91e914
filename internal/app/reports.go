package app

import (
	"github.com/alexanderramin/assay/internal/domain"
	"github.com/alexanderramin/assay/internal/prompt"
	"github.com/alexanderramin/assay/internal/scoring"
)

// TypeDetails is the guidance shown after choosing an assessment type.
type TypeDetails struct {
	Type            domain.AssessmentType
	Title           string
	Practices       []string
	AIOpportunities []string
}

// UDLReport is the outcome of the UDL compliance stage.
type UDLReport struct {
	Percentage      int
	Checked         int
	Total           int
	UncheckedLabels []string
	Recommendations []string
}

// Compliant reports whether every UDL criterion is met.
func (r UDLReport) Compliant() bool {
	return len(r.UncheckedLabels) == 0
}

// AlignmentRequest carries the Quality Matters answers.
type AlignmentRequest struct {
	Objectives string
	Alignment  string
	Rubric     bool
	Criteria   bool
	Support    []string
}

// AlignmentReport is the outcome of the Quality Matters stage.
type AlignmentReport struct {
	scoring.AlignmentResult
	SupportLabels []string
}

// InclusiveReport is the outcome of the inclusive-design stage.
type InclusiveReport struct {
	OverallScore    int
	Checked         int
	Total           int
	Categories      []scoring.CategoryScore
	Recommendations []string
}

// FullyInclusive reports whether the overall score reached 100%.
func (r InclusiveReport) FullyInclusive() bool {
	return r.OverallScore == 100
}

// PromptRequest carries the free-text prompt inputs. The assessment type
// comes from the session.
type PromptRequest struct {
	CourseLevel     string
	SubjectArea     string
	LearningOutcome string
	Context         string
}

// PromptResult is the composed prompt plus its derived variants.
type PromptResult struct {
	Prompt   string
	Variants []prompt.Variant
}

// Summary is the end-of-session overview. TypeName is empty when no type
// has been selected. InclusiveScore is nil until the inclusive stage has run.
type Summary struct {
	TypeName            string
	UDLMet              int
	UDLTotal            int
	UDLAssessed         bool
	ObjectivesDefined   bool
	AlignmentDocumented bool
	InclusiveScore      *int
	PromptGenerated     bool
	Progress            int
}
