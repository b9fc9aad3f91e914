package cli

import (
	"fmt"
	"io"
	"strings"

	assayapp "github.com/alexanderramin/assay/internal/app"
	"github.com/alexanderramin/assay/internal/catalog"
	"github.com/alexanderramin/assay/internal/cli/formatter"
	"github.com/alexanderramin/assay/internal/domain"
	"github.com/alexanderramin/assay/internal/export"
	"github.com/alexanderramin/assay/internal/prompt"
	"github.com/alexanderramin/assay/internal/service"
	"github.com/spf13/cobra"
)

func newTypesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List assessment types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTypeList(domain.AssessmentTypes(), app.Catalog))
			return nil
		},
	}
}

func newTypeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "type <formative|summative|authentic|peer>",
		Short:     "Show best practices and AI opportunities for an assessment type",
		Args:      cobra.ExactArgs(1),
		ValidArgs: typeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseAssessmentType(args[0])
			if err != nil {
				return err
			}
			details, err := app.Questionnaire.SelectType(cmd.Context(), t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTypeDetails(details))
			return nil
		},
	}
}

func newChecklistCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "checklist [udl|inclusive|support]",
		Short:     "List checklist item ids and labels",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{catalog.ChecklistUDL, catalog.ChecklistInclusive, catalog.ChecklistSupport},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{catalog.ChecklistUDL, catalog.ChecklistInclusive, catalog.ChecklistSupport}
			if len(args) == 1 {
				names = []string{strings.ToLower(args[0])}
			}
			out := cmd.OutOrStdout()
			for i, name := range names {
				items, ok := app.Catalog.Items(name)
				if !ok {
					return fmt.Errorf("unknown checklist %q (want udl, inclusive or support)", name)
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, formatter.FormatChecklist(checklistTitle(name), items, nil))
			}
			return nil
		},
	}
}

func newUDLCmd(app *App) *cobra.Command {
	var flags checklistFlags

	cmd := &cobra.Command{
		Use:   "udl",
		Short: "Score Universal Design for Learning compliance",
		Example: `  assay udl --checked udl-visual,udl-audio,udl-feedback
  assay udl --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Questionnaire.UDLReport(cmd.Context(), flags.resolve(app.Catalog.UDL.Items))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUDLReport(report))
			return nil
		},
	}

	flags.register(cmd.Flags(), catalog.ChecklistUDL)
	return cmd
}

func newAlignCmd(app *App) *cobra.Command {
	var (
		req     assayapp.AlignmentRequest
		support []string
	)

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Check Quality Matters alignment",
		Example: `  assay align --objectives "Students will be able to..." \
    --alignment "Each task maps to..." --rubric --criteria \
    --support support-practice,support-office-hours`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Support = splitIDs(support)
			report, err := app.Questionnaire.CheckAlignment(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAlignment(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Objectives, "objectives", "", "Learning objectives the assessment targets")
	cmd.Flags().StringVar(&req.Alignment, "alignment", "", "How the assessment measures the objectives")
	cmd.Flags().BoolVar(&req.Rubric, "rubric", false, "A clear rubric is provided")
	cmd.Flags().BoolVar(&req.Criteria, "criteria", false, "Specific evaluation criteria are defined")
	cmd.Flags().StringSliceVar(&support, "support", nil, "Comma-separated learner support ids (see \"assay checklist support\")")
	return cmd
}

func newInclusiveCmd(app *App) *cobra.Command {
	var flags checklistFlags

	cmd := &cobra.Command{
		Use:   "inclusive",
		Short: "Score inclusive-design practices by category",
		Example: `  assay inclusive --checked inclusive-diverse,inclusive-captions,inclusive-async
  assay inclusive --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Questionnaire.InclusiveReport(cmd.Context(), flags.resolve(app.Catalog.Inclusive.Items))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatInclusive(report))
			return nil
		},
	}

	flags.register(cmd.Flags(), catalog.ChecklistInclusive)
	return cmd
}

func newPromptCmd(app *App) *cobra.Command {
	var (
		flags   promptFlags
		typ     string
		variant string
		copyIt  bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Generate an AI prompt for designing the assessment",
		Example: `  assay prompt --type formative --level Undergraduate --subject Biology \
    --outcome "Explain photosynthesis" --variant quick --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, err := prompt.ParseVariantName(variant)
			if err != nil {
				return err
			}
			if typ != "" {
				t, err := domain.ParseAssessmentType(typ)
				if err != nil {
					return err
				}
				if _, err := app.Questionnaire.SelectType(ctx, t); err != nil {
					return err
				}
			}

			result, err := app.Questionnaire.GeneratePrompt(ctx, assayapp.PromptRequest{
				CourseLevel:     normalizeCourseLevel(app.Catalog, flags.level),
				SubjectArea:     strings.TrimSpace(flags.subject),
				LearningOutcome: strings.TrimSpace(flags.outcome),
				Context:         flags.context,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			text := prompt.Select(result.Prompt, name)
			if variant == "" {
				fmt.Fprintln(out, formatter.FormatPrompt(result))
			} else {
				fmt.Fprintln(out, text)
			}
			if copyIt {
				copyPrompt(out, cmd.ErrOrStderr(), app, text)
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&typ, "type", "", "Assessment type (formative, summative, authentic, peer); omitted means general")
	cmd.Flags().StringVar(&variant, "variant", "", "Print only one version: quick, detailed or ai-enhanced")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "Copy the prompt to the clipboard")
	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <plan.json>",
		Short: "Summarize an exported assessment plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := export.LoadJSON(args[0])
			if err != nil {
				return fmt.Errorf("loading plan: %w", err)
			}
			sum := service.Summarize(&doc.Design, len(app.Catalog.UDL.Items))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(sum))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var (
		printIt bool
		save    bool
		dir     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a blank assessment plan as JSON",
		Long: `Write the current assessment plan as JSON. Outside "assay guide" the plan
is blank and serves as a template; use "assay guide --export" to export a
completed questionnaire.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if printIt {
				fmt.Fprintln(out, formatter.Warn(export.Print().Error()))
				return nil
			}
			if !save {
				return app.Questionnaire.Export(cmd.Context(), out)
			}
			if dir == "" {
				dir = app.exportDir()
			}
			path, err := app.Questionnaire.SaveExport(cmd.Context(), dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Assessment plan saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&printIt, "print", false, "Print-friendly export (not supported)")
	cmd.Flags().BoolVar(&save, "save", false, "Save to a timestamped file instead of printing")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for --save (default from config)")
	return cmd
}

func copyPrompt(out, errOut io.Writer, app *App, text string) {
	if err := app.copier().Copy(text); err != nil {
		fmt.Fprintln(errOut, formatter.FormatCopyFailure(err))
		return
	}
	fmt.Fprintln(out, formatter.StyleGreen.Render(formatter.PromptCopiedMessage))
}

func normalizeCourseLevel(cat *catalog.Catalog, level string) string {
	level = strings.TrimSpace(level)
	for _, known := range cat.CourseLevels {
		if strings.EqualFold(known, level) {
			return known
		}
	}
	return level
}

func typeNames() []string {
	types := domain.AssessmentTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

func checklistTitle(name string) string {
	switch name {
	case catalog.ChecklistUDL:
		return "UDL Compliance Checklist"
	case catalog.ChecklistInclusive:
		return "Inclusive Design Checklist"
	case catalog.ChecklistSupport:
		return "Learner Support Options"
	}
	return name
}
