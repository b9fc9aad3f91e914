package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/assay/internal/clipboard"
	"github.com/alexanderramin/assay/internal/domain"
	"github.com/alexanderramin/assay/internal/export"
	"github.com/alexanderramin/assay/internal/service"
	"github.com/alexanderramin/assay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cliNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires an App around a fresh session and an in-memory clipboard.
func testApp(t *testing.T) (*App, *clipboard.Memory) {
	t.Helper()
	cat := testutil.DefaultCatalog(t)
	clip := &clipboard.Memory{}
	return &App{
		Questionnaire: service.NewSession(cat,
			service.WithSessionID("cli-session"),
			service.WithClock(func() time.Time { return cliNow }),
		),
		Catalog:       cat,
		Clipboard:     clip,
		ExportDir:     t.TempDir(),
		Version:       "test",
		IsInteractive: func() bool { return false },
	}, clip
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func TestRootCmd_Version(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "assay version test")
}

func TestTypesCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "types")
	require.NoError(t, err)
	for _, want := range []string{"formative", "summative", "authentic", "peer", "Peer Assessment"} {
		assert.Contains(t, out, want)
	}
}

func TestTypeCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "type", "Summative")
	require.NoError(t, err)
	assert.Contains(t, out, "SUMMATIVE ASSESSMENT")
	assert.Contains(t, out, "Best Practices:")
	assert.Contains(t, out, "AI Enhancement Opportunities:")
	assert.Equal(t, domain.ProgressTyped, app.Questionnaire.Design().Progress)
}

func TestTypeCmd_Unknown(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "type", "oral")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown assessment type")
}

func TestChecklistCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "checklist", "support")
	require.NoError(t, err)
	assert.Contains(t, out, "LEARNER SUPPORT OPTIONS")
	assert.Contains(t, out, "support-office-hours")
	assert.NotContains(t, out, "udl-visual")

	out, err = executeCmd(t, app, "checklist")
	require.NoError(t, err)
	assert.Contains(t, out, "udl-visual")
	assert.Contains(t, out, "inclusive-idioms")
	assert.Contains(t, out, "support-technical")

	_, err = executeCmd(t, app, "checklist", "bogus")
	assert.Error(t, err)
}

func TestUDLCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "udl", "--checked", "udl-visual, udl-audio,udl-text", "--checked", "udl-choice")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall Compliance: 33%")
	assert.Contains(t, out, "4 of 12 criteria met")
	assert.Contains(t, out, "Consider multilingual support or simplified language options")
	assert.Equal(t, 4, app.Questionnaire.Design().UDLMet())
}

func TestUDLCmd_All(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "udl", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall Compliance: 100%")
	assert.Contains(t, out, "Excellent! Your assessment meets all UDL compliance criteria.")
}

func TestUDLCmd_UnknownID(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "udl", "--checked", "udl-visual,udl-nope")
	require.ErrorIs(t, err, domain.ErrUnknownItem)
	assert.Contains(t, err.Error(), `"udl-nope"`)
}

func TestAlignCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "align",
		"--objectives", testutil.DetailedObjectives,
		"--alignment", testutil.DetailedAlignment,
		"--rubric", "--criteria",
		"--support", "support-practice,support-resources",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "QM Alignment Score: 100%")
	assert.Contains(t, out, "✓ Adequate learner support provided")
	assert.Contains(t, out, "Links to tutoring and library resources")
	assert.Contains(t, out, "Excellent! Your assessment fully aligns with Quality Matters standards.")
}

func TestAlignCmd_Warnings(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "align", "--objectives", "Too short")
	require.NoError(t, err)
	assert.Contains(t, out, "QM Alignment Score: 0%")
	assert.Contains(t, out, "⚠ Please provide more detailed learning objectives")
	assert.Contains(t, out, "Next Steps:")
}

func TestAlignCmd_UnknownSupport(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "align", "--support", "support-pizza")
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestInclusiveCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "inclusive", "--checked", "inclusive-diverse,inclusive-captions")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall Inclusivity Score: 13%")
	assert.Contains(t, out, "Cultural Sensitivity")
	assert.Contains(t, out, "Provide more flexible options for student participation")
}

func TestPromptCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "prompt",
		"--type", "formative",
		"--level", "undergraduate",
		"--subject", "Biology",
		"--outcome", "Explain photosynthesis",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Create a formative assessment for Undergraduate students in Biology.")
	assert.Contains(t, out, "Quick Version")
	assert.Contains(t, out, "AI-Enhanced Version")
	assert.Equal(t, domain.ProgressPrompt, app.Questionnaire.Design().Progress)
}

func TestPromptCmd_VariantAndCopy(t *testing.T) {
	app, clip := testApp(t)
	out, err := executeCmd(t, app, "prompt",
		"--level", "MBA",
		"--subject", "Finance",
		"--outcome", "Build a cash-flow model",
		"--variant", "quick",
		"--copy",
	)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Create a general assessment for MBA students in Finance."))
	assert.Contains(t, out, "Create a simple, accessible assessment with clear instructions and rubric.")
	assert.Contains(t, out, "Prompt copied to clipboard!")
	assert.Equal(t, 1, clip.Copies)
	assert.True(t, strings.HasSuffix(clip.Text, "Create a simple, accessible assessment with clear instructions and rubric."))
}

func TestPromptCmd_CopyFailureIsReported(t *testing.T) {
	app, _ := testApp(t)
	app.Clipboard = &clipboard.Memory{Err: clipboard.ErrUnavailable}
	out, err := executeCmd(t, app, "prompt", "--level", "MBA", "--subject", "Finance", "--outcome", "Model", "--copy")
	require.NoError(t, err)
	assert.Contains(t, out, "Could not copy prompt: clipboard unavailable")
	assert.NotContains(t, out, "Prompt copied to clipboard!")
}

func TestPromptCmd_MissingFields(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "prompt", "--level", "MBA")
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "Subject Area, Learning Outcome")
	assert.Nil(t, app.Questionnaire.Design().AIPrompt)
}

func TestPromptCmd_BadVariant(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "prompt", "--level", "MBA", "--subject", "Finance", "--outcome", "Model", "--variant", "long")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown prompt variant")
}

func TestSummaryCmd(t *testing.T) {
	app, _ := testApp(t)
	d := testutil.NewTestDesign(
		testutil.WithType(domain.TypeAuthentic),
		testutil.WithUDL(testutil.Checked("udl-visual", "udl-audio", "udl-text")),
		testutil.WithAlignment(domain.QMAlignment{Objectives: testutil.DetailedObjectives}),
		testutil.WithTally(domain.CategoryCultural, 2, 4),
		testutil.WithProgress(domain.ProgressInclusive),
	)
	path, err := export.SaveJSON(t.TempDir(), export.NewDocument("", d, cliNow))
	require.NoError(t, err)

	out, err := executeCmd(t, app, "summary", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Assessment Type: Authentic")
	assert.Contains(t, out, "3 of 12 criteria met")
	assert.Contains(t, out, "Learning objectives: Defined")
	assert.Contains(t, out, "Assessment alignment: Not documented")
	assert.Contains(t, out, "Overall inclusivity score: 50%")
	assert.Contains(t, out, "Not yet generated")
}

func TestSummaryCmd_MissingFile(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "summary", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading plan")
}

func TestExportCmd_Stdout(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "export")
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "cli-session", doc.SessionID)
	assert.Equal(t, 0, doc.Design.Progress)
}

func TestExportCmd_Save(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "export", "--save")
	require.NoError(t, err)

	path := filepath.Join(app.ExportDir, export.Filename(cliNow))
	assert.Contains(t, out, "Assessment plan saved to "+path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestExportCmd_Print(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "export", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "PDF export would require a server-side implementation")
}

func TestGuideCmd_RequiresTerminal(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "guide")
	assert.ErrorIs(t, err, errNotInteractive)
}
