package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssessmentDesign_Defaults(t *testing.T) {
	d := NewAssessmentDesign()
	assert.Nil(t, d.Type)
	assert.Nil(t, d.AIPrompt)
	assert.NotNil(t, d.UDLCompliance)
	assert.Empty(t, d.UDLCompliance)
	assert.NotNil(t, d.InclusiveDesign)
	assert.Equal(t, 0, d.Progress)
}

func TestReset_ClearsEverything(t *testing.T) {
	d := NewAssessmentDesign()
	d.SetType(TypePeer)
	d.SetPrompt("Create a peer assessment")
	d.UDLCompliance["udl-visual"] = true
	d.InclusiveDesign[CategoryLanguage] = CategoryTally{Checked: 2, Total: 4}
	d.QMAlignment.Rubric = true
	d.SetProgress(80)

	d.Reset()

	assert.Equal(t, NewAssessmentDesign(), d)
}

func TestSetProgress_Clamps(t *testing.T) {
	d := NewAssessmentDesign()
	d.SetProgress(140)
	assert.Equal(t, 100, d.Progress)
	d.SetProgress(-3)
	assert.Equal(t, 0, d.Progress)
	d.SetProgress(ProgressUDL)
	assert.Equal(t, 40, d.Progress)
}

func TestUDLMet(t *testing.T) {
	d := NewAssessmentDesign()
	d.UDLCompliance["a"] = true
	d.UDLCompliance["b"] = false
	d.UDLCompliance["c"] = true
	assert.Equal(t, 2, d.UDLMet())
}

func TestClone_IsDeep(t *testing.T) {
	d := NewAssessmentDesign()
	d.SetType(TypeSummative)
	d.SetPrompt("p")
	d.UDLCompliance["udl-audio"] = true
	d.QMAlignment.Support = []string{"support-office-hours"}
	d.InclusiveDesign[CategoryCultural] = CategoryTally{Checked: 1, Total: 4}

	c := d.Clone()
	require.Equal(t, d, c)

	*c.Type = TypePeer
	*c.AIPrompt = "changed"
	c.UDLCompliance["udl-audio"] = false
	c.QMAlignment.Support[0] = "x"
	c.InclusiveDesign[CategoryCultural] = CategoryTally{Checked: 4, Total: 4}

	assert.Equal(t, TypeSummative, *d.Type)
	assert.Equal(t, "p", *d.AIPrompt)
	assert.True(t, d.UDLCompliance["udl-audio"])
	assert.Equal(t, "support-office-hours", d.QMAlignment.Support[0])
	assert.Equal(t, 1, d.InclusiveDesign[CategoryCultural].Checked)
}

func TestParseAssessmentType(t *testing.T) {
	for _, in := range []string{"formative", "Summative", " AUTHENTIC ", "peer"} {
		_, err := ParseAssessmentType(in)
		assert.NoError(t, err, "should accept %q", in)
	}
	_, err := ParseAssessmentType("oral")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oral")
}

func TestAssessmentType_Title(t *testing.T) {
	assert.Equal(t, "Formative Assessment", TypeFormative.Title())
	assert.Equal(t, "Peer", TypePeer.Name())
}

func TestCategories_FixedOrder(t *testing.T) {
	assert.Equal(t, []Category{CategoryCultural, CategoryAccessibility, CategoryParticipation, CategoryLanguage}, Categories())
	assert.True(t, CategoryLanguage.Valid())
	assert.False(t, Category("other").Valid())
	assert.Equal(t, "Flexible Participation", CategoryParticipation.Title())
}

func TestMissingFieldError_IsSentinel(t *testing.T) {
	var err error = &MissingFieldError{Fields: []string{"Course Level", "Subject Area"}}
	assert.True(t, errors.Is(err, ErrMissingRequiredField))
	assert.Contains(t, err.Error(), "Course Level, Subject Area")
}

func TestUnknownItemError_IsSentinel(t *testing.T) {
	var err error = &UnknownItemError{Checklist: "udl", ID: "udl-nope"}
	assert.True(t, errors.Is(err, ErrUnknownItem))
	assert.Equal(t, `unknown udl item "udl-nope"`, err.Error())
}
