// Package prompt composes the text prompt a user pastes into an external
// generative-text tool. It produces plain strings only.
package prompt

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/assay/internal/domain"
)

// Request carries the prompt inputs. CourseLevel, SubjectArea and
// LearningOutcome are required; Type and Context are optional.
type Request struct {
	Type            *domain.AssessmentType
	CourseLevel     string
	SubjectArea     string
	LearningOutcome string
	Context         string
}

// Field labels, as shown in validation messages.
const (
	FieldCourseLevel     = "Course Level"
	FieldSubjectArea     = "Subject Area"
	FieldLearningOutcome = "Learning Outcome"
)

const requirementsBlock = `Requirements:
- Follow Universal Design for Learning (UDL) principles with multiple means of representation, engagement, and expression
- Ensure WCAG 2.1 AA accessibility compliance
- Include culturally diverse examples and perspectives
- Provide clear rubrics and evaluation criteria aligned with Quality Matters standards
- Design for both synchronous and asynchronous participation
- Support mobile devices and low-bandwidth connections

Assessment Components:
1. Clear instructions and expectations
2. Multiple question types or activity formats
3. Immediate feedback mechanisms where appropriate
4. Scaffolding for different skill levels
5. Connection to real-world applications`

const deliverablesBlock = `Please provide:
- Detailed assessment structure
- Specific questions or tasks
- Grading rubric
- Student support resources
- Technology requirements
- Time estimates for completion`

// Validate reports every required field that is the empty string.
// Whitespace is accepted; callers trim input at their own boundary.
func (r Request) Validate() error {
	var missing []string
	if r.CourseLevel == "" {
		missing = append(missing, FieldCourseLevel)
	}
	if r.SubjectArea == "" {
		missing = append(missing, FieldSubjectArea)
	}
	if r.LearningOutcome == "" {
		missing = append(missing, FieldLearningOutcome)
	}
	if len(missing) > 0 {
		return &domain.MissingFieldError{Fields: missing}
	}
	return nil
}

// TypeTag returns the type interpolated into the prompt.
func (r Request) TypeTag() string {
	if r.Type == nil || *r.Type == "" {
		return domain.GeneralType
	}
	return string(*r.Type)
}

// Compose renders the base prompt. No partial result is returned on error.
// The context line sits between the requirements and the deliverables and
// is left blank when Context is empty.
func Compose(r Request) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s assessment for %s students in %s.\n\n", r.TypeTag(), r.CourseLevel, r.SubjectArea)
	fmt.Fprintf(&b, "Learning Outcome: %s\n\n", r.LearningOutcome)
	b.WriteString(requirementsBlock)
	b.WriteString("\n\n")
	if r.Context != "" {
		b.WriteString("Additional Context: " + r.Context)
	}
	b.WriteString("\n\n")
	b.WriteString(deliverablesBlock)
	return b.String(), nil
}
