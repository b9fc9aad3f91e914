package cli

import (
	"io"

	assayapp "github.com/alexanderramin/assay/internal/app"
	"github.com/alexanderramin/assay/internal/catalog"
	"github.com/alexanderramin/assay/internal/clipboard"
	"github.com/spf13/cobra"
)

// App holds the collaborators used by CLI commands.
type App struct {
	Questionnaire assayapp.Questionnaire
	Catalog       *catalog.Catalog
	Clipboard     clipboard.Copier

	ExportDir  string
	Accessible bool
	Version    string

	// In feeds interactive forms. Nil means stdin.
	In io.Reader
	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "assay" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "assay",
		Short: "Guided assessment design: UDL, Quality Matters, inclusive design and AI prompts",
		Long: `assay walks instructors through designing an assessment: choose a type,
check Universal Design for Learning compliance and Quality Matters alignment,
review inclusive-design practices, then generate a prompt for an AI assistant.

Run "assay guide" for the full interactive questionnaire, or use the
stage commands below for one-shot reports.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGuideCmd(app),
		newTypesCmd(app),
		newTypeCmd(app),
		newChecklistCmd(app),
		newUDLCmd(app),
		newAlignCmd(app),
		newInclusiveCmd(app),
		newPromptCmd(app),
		newSummaryCmd(app),
		newExportCmd(app),
	)

	return root
}
