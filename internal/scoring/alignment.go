package scoring

import "unicode/utf8"

// Alignment thresholds.
const (
	MinDetailChars     = 50 // objectives and alignment text must be longer than this
	MinSupportOptions  = 2
	AlignmentMaxPoints = 5
)

type CriterionKey string

const (
	CriterionObjectives CriterionKey = "objectives"
	CriterionAlignment  CriterionKey = "alignment"
	CriterionRubric     CriterionKey = "rubric"
	CriterionCriteria   CriterionKey = "criteria"
	CriterionSupport    CriterionKey = "support"
)

// AlignmentInput carries the Quality Matters answers.
type AlignmentInput struct {
	Objectives   string
	Alignment    string
	Rubric       bool
	Criteria     bool
	SupportCount int
}

// CriterionResult is the verdict on one criterion. Message is the success
// text when Passed and the warning text otherwise.
type CriterionResult struct {
	Key     CriterionKey
	Label   string
	Passed  bool
	Message string
}

// AlignmentResult is the five-point Quality Matters evaluation.
type AlignmentResult struct {
	Score        int
	MaxScore     int
	Percentage   int
	Criteria     []CriterionResult
	FullyAligned bool
}

// Failed returns the criteria that did not pass, in evaluation order.
func (r AlignmentResult) Failed() []CriterionResult {
	var out []CriterionResult
	for _, c := range r.Criteria {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// NextSteps returns follow-up guidance when the design is not fully aligned.
func (r AlignmentResult) NextSteps() []string {
	if r.FullyAligned {
		return nil
	}
	return []string{
		"Address the warnings above to improve alignment",
		"Review QM rubric for additional guidance",
		"Consider peer review of your assessment design",
	}
}

type criterionRule struct {
	key   CriterionKey
	label string
	pass  string
	warn  string
	check func(AlignmentInput) bool
}

var criterionRules = []criterionRule{
	{
		key:   CriterionObjectives,
		label: "Learning objectives",
		pass:  "Learning objectives are clearly defined",
		warn:  "Please provide more detailed learning objectives",
		check: func(in AlignmentInput) bool { return utf8.RuneCountInString(in.Objectives) > MinDetailChars },
	},
	{
		key:   CriterionAlignment,
		label: "Assessment alignment",
		pass:  "Assessment alignment is documented",
		warn:  "Please explain how the assessment measures the objectives",
		check: func(in AlignmentInput) bool { return utf8.RuneCountInString(in.Alignment) > MinDetailChars },
	},
	{
		key:   CriterionRubric,
		label: "Rubric",
		pass:  "Clear rubric provided",
		warn:  "Consider adding a detailed rubric",
		check: func(in AlignmentInput) bool { return in.Rubric },
	},
	{
		key:   CriterionCriteria,
		label: "Evaluation criteria",
		pass:  "Specific evaluation criteria defined",
		warn:  "Add specific evaluation criteria",
		check: func(in AlignmentInput) bool { return in.Criteria },
	},
	{
		key:   CriterionSupport,
		label: "Learner support",
		pass:  "Adequate learner support provided",
		warn:  "Add more learner support resources",
		check: func(in AlignmentInput) bool { return in.SupportCount >= MinSupportOptions },
	},
}

// Evaluate applies the five alignment checks. Each passed check is worth one point.
func Evaluate(in AlignmentInput) AlignmentResult {
	res := AlignmentResult{
		MaxScore: AlignmentMaxPoints,
		Criteria: make([]CriterionResult, 0, len(criterionRules)),
	}
	for _, rule := range criterionRules {
		c := CriterionResult{Key: rule.key, Label: rule.label}
		if rule.check(in) {
			c.Passed = true
			c.Message = rule.pass
			res.Score++
		} else {
			c.Message = rule.warn
		}
		res.Criteria = append(res.Criteria, c)
	}

	// MaxScore is a non-zero constant, so Percent cannot fail here.
	res.Percentage, _ = Percent(res.Score, res.MaxScore)
	res.FullyAligned = res.Percentage == 100
	return res
}
