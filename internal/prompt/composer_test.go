package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/assay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() Request {
	return Request{
		CourseLevel:     "Undergraduate",
		SubjectArea:     "Biology",
		LearningOutcome: "Explain photosynthesis",
	}
}

func TestCompose_InterpolatesFields(t *testing.T) {
	out, err := Compose(baseRequest())
	require.NoError(t, err)

	assert.Contains(t, out, "Undergraduate")
	assert.Contains(t, out, "Biology")
	assert.Contains(t, out, "Explain photosynthesis")
	assert.True(t, strings.HasPrefix(out, "Create a general assessment for Undergraduate students in Biology.\n"))
	assert.NotContains(t, out, "Additional Context")
	assert.True(t, strings.HasSuffix(out, "- Time estimates for completion"))
}

func TestCompose_UsesSelectedType(t *testing.T) {
	req := baseRequest()
	typ := domain.TypeAuthentic
	req.Type = &typ

	out, err := Compose(req)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Create a authentic assessment for"))
	assert.NotContains(t, out, "general")
}

func TestCompose_IncludesContext(t *testing.T) {
	req := baseRequest()
	req.Context = "Class of 300, online only"

	out, err := Compose(req)
	require.NoError(t, err)
	assert.Contains(t, out, "\n\nAdditional Context: Class of 300, online only\n\nPlease provide:")
}

func TestCompose_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		want   []string
	}{
		{"course level", func(r *Request) { r.CourseLevel = "" }, []string{FieldCourseLevel}},
		{"subject", func(r *Request) { r.SubjectArea = "" }, []string{FieldSubjectArea}},
		{"outcome", func(r *Request) { r.LearningOutcome = "" }, []string{FieldLearningOutcome}},
		{"all", func(r *Request) { *r = Request{} }, []string{FieldCourseLevel, FieldSubjectArea, FieldLearningOutcome}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)

			out, err := Compose(req)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.Is(err, domain.ErrMissingRequiredField))

			var mf *domain.MissingFieldError
			require.ErrorAs(t, err, &mf)
			assert.Equal(t, tt.want, mf.Fields)
		})
	}
}

func TestCompose_WhitespaceFieldsAreNotMissing(t *testing.T) {
	req := Request{CourseLevel: " ", SubjectArea: "Biology", LearningOutcome: "\t"}

	out, err := Compose(req)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Create a general assessment for   students in Biology.\n"))
	assert.Contains(t, out, "Learning Outcome: \t\n")
}

func TestCompose_ContextIsVerbatim(t *testing.T) {
	req := baseRequest()
	req.Context = "  online only "

	out, err := Compose(req)
	require.NoError(t, err)
	assert.Contains(t, out, "\n\nAdditional Context:   online only \n\nPlease provide:")
}

func TestCompose_EmptyContextLeavesBlankLine(t *testing.T) {
	out, err := Compose(baseRequest())
	require.NoError(t, err)
	assert.Contains(t, out, "5. Connection to real-world applications\n\n\n\nPlease provide:")
}

func TestCompose_ContextIsOptional(t *testing.T) {
	req := baseRequest()
	req.Context = ""
	_, err := Compose(req)
	assert.NoError(t, err)
}

func TestTypeTag(t *testing.T) {
	assert.Equal(t, "general", Request{}.TypeTag())
	empty := domain.AssessmentType("")
	assert.Equal(t, "general", Request{Type: &empty}.TypeTag())
	peer := domain.TypePeer
	assert.Equal(t, "peer", Request{Type: &peer}.TypeTag())
}
