package domain

// QMAlignment holds the Quality Matters answers as last submitted.
type QMAlignment struct {
	Objectives string   `json:"objectives"`
	Alignment  string   `json:"alignment"`
	Rubric     bool     `json:"rubric"`
	Criteria   bool     `json:"criteria"`
	Support    []string `json:"support,omitempty"`
}

// AssessmentDesign is the aggregate built up over one questionnaire session.
// It is owned by a single session controller and never shared between
// goroutines.
type AssessmentDesign struct {
	Type            *AssessmentType            `json:"type"`
	UDLCompliance   map[string]bool            `json:"udlCompliance"`
	QMAlignment     QMAlignment                `json:"qmAlignment"`
	InclusiveDesign map[Category]CategoryTally `json:"inclusiveDesign"`
	AIPrompt        *string                    `json:"aiPrompt"`
	Progress        int                        `json:"progress"`
}

// NewAssessmentDesign returns a design with all-empty defaults.
func NewAssessmentDesign() *AssessmentDesign {
	d := &AssessmentDesign{}
	d.Reset()
	return d
}

// Reset restores every field to its session-start default.
func (d *AssessmentDesign) Reset() {
	*d = AssessmentDesign{
		UDLCompliance:   map[string]bool{},
		InclusiveDesign: map[Category]CategoryTally{},
	}
}

// SetProgress records stage progress, clamped to 0..100.
func (d *AssessmentDesign) SetProgress(pct int) {
	switch {
	case pct < 0:
		pct = 0
	case pct > 100:
		pct = 100
	}
	d.Progress = pct
}

// SetType records the selected assessment type.
func (d *AssessmentDesign) SetType(t AssessmentType) {
	d.Type = &t
}

// SetPrompt records the composed prompt.
func (d *AssessmentDesign) SetPrompt(p string) {
	d.AIPrompt = &p
}

// UDLMet counts the UDL criteria recorded as met.
func (d *AssessmentDesign) UDLMet() int {
	n := 0
	for _, ok := range d.UDLCompliance {
		if ok {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (d *AssessmentDesign) Clone() *AssessmentDesign {
	c := &AssessmentDesign{
		QMAlignment:     d.QMAlignment,
		Progress:        d.Progress,
		UDLCompliance:   make(map[string]bool, len(d.UDLCompliance)),
		InclusiveDesign: make(map[Category]CategoryTally, len(d.InclusiveDesign)),
	}
	if d.Type != nil {
		t := *d.Type
		c.Type = &t
	}
	if d.AIPrompt != nil {
		p := *d.AIPrompt
		c.AIPrompt = &p
	}
	if d.QMAlignment.Support != nil {
		c.QMAlignment.Support = append([]string(nil), d.QMAlignment.Support...)
	}
	for k, v := range d.UDLCompliance {
		c.UDLCompliance[k] = v
	}
	for k, v := range d.InclusiveDesign {
		c.InclusiveDesign[k] = v
	}
	return c
}
