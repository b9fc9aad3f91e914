package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	assayapp "github.com/alexanderramin/assay/internal/app"
	"github.com/alexanderramin/assay/internal/catalog"
	"github.com/alexanderramin/assay/internal/cli/formatter"
	"github.com/alexanderramin/assay/internal/domain"
	"github.com/alexanderramin/assay/internal/prompt"
	"github.com/alexanderramin/assay/internal/scoring"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("guide needs an interactive terminal; rerun with --accessible to answer line by line")

type guideStage string

const (
	stageType      guideStage = "type"
	stageUDL       guideStage = "udl"
	stageAlignment guideStage = "alignment"
	stageInclusive guideStage = "inclusive"
	stagePrompt    guideStage = "prompt"
	stageFinish    guideStage = "finish"
)

// guideAnswers is everything the forms collect. Forms bind directly to
// these fields.
type guideAnswers struct {
	Type string
	UDL  []string

	Objectives string
	Alignment  string
	Rubric     bool
	Criteria   bool
	Support    []string

	// Inclusive holds the checked ids per category, in domain.Categories() order.
	Inclusive [][]string

	CourseLevel string
	Subject     string
	Outcome     string
	Context     string
	Variant     string

	Export bool
	Copy   bool
	Again  bool
}

type guideOptions struct {
	accessible bool
	export     bool
	copy       bool
}

type guide struct {
	app     *App
	out     io.Writer
	errOut  io.Writer
	opts    guideOptions
	fio     formIO
	answers guideAnswers

	// run shows a form and blocks until it is submitted.
	run func(stage guideStage, f *huh.Form) error
}

func newGuideCmd(app *App) *cobra.Command {
	var opts guideOptions

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Walk through the full assessment design questionnaire",
		Long: `Answer the questionnaire stage by stage: assessment type, UDL compliance,
Quality Matters alignment, inclusive design and the AI prompt. Each stage
prints its report before moving on; the session ends with a summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("accessible") {
				opts.accessible = app.Accessible
			}
			if !opts.accessible && !app.interactive() {
				return errNotInteractive
			}
			g := newGuide(cmd.Context(), app, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
			return g.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&opts.accessible, "accessible", false, "Plain line-by-line prompts for screen readers and non-terminals")
	cmd.Flags().BoolVar(&opts.export, "export", false, "Save the plan as JSON when finished")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the generated prompt to the clipboard when finished")
	return cmd
}

func newGuide(ctx context.Context, app *App, out, errOut io.Writer, opts guideOptions) *guide {
	return &guide{
		app:    app,
		out:    out,
		errOut: errOut,
		opts:   opts,
		fio: formIO{
			ctx:        ctx,
			in:         app.input(),
			out:        out,
			accessible: opts.accessible,
		},
		run: func(_ guideStage, f *huh.Form) error { return f.Run() },
	}
}

// Run drives the questionnaire until the user declines to start over.
func (g *guide) Run(ctx context.Context) error {
	q := g.app.Questionnaire
	for {
		g.answers = guideAnswers{
			Inclusive: make([][]string, len(domain.Categories())),
			Export:    g.opts.export,
			Copy:      g.opts.copy,
		}
		q.Start(ctx)
		fmt.Fprintln(g.out, formatter.Header("Assessment Design Guide"))
		g.printProgress()

		steps := []func(context.Context) error{
			g.typeStage,
			g.udlStage,
			g.alignmentStage,
			g.inclusiveStage,
			g.promptStage,
		}
		for _, step := range steps {
			if err := step(ctx); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(g.out, formatter.Dim("Cancelled."))
					return nil
				}
				return err
			}
		}

		fmt.Fprintln(g.out, formatter.FormatSummary(q.Summary(ctx)))

		if err := g.finishStage(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !g.answers.Again {
			return nil
		}
		q.Reset(ctx)
		fmt.Fprintln(g.out)
	}
}

func (g *guide) printProgress() {
	fmt.Fprintf(g.out, "%s %s\n\n", formatter.Bold("Progress:"),
		formatter.RenderProgress(g.app.Questionnaire.Design().Progress, formatter.DefaultBarWidth))
}

func (g *guide) typeStage(ctx context.Context) error {
	if err := g.run(stageType, g.typeForm()); err != nil {
		return err
	}
	t, err := domain.ParseAssessmentType(g.answers.Type)
	if err != nil {
		return err
	}
	details, err := g.app.Questionnaire.SelectType(ctx, t)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, formatter.FormatTypeDetails(details))
	g.printProgress()
	return nil
}

func (g *guide) udlStage(ctx context.Context) error {
	if err := g.run(stageUDL, g.udlForm()); err != nil {
		return err
	}
	report, err := g.app.Questionnaire.UDLReport(ctx, idSet(g.answers.UDL))
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, formatter.FormatUDLReport(report))
	g.printProgress()
	return nil
}

func (g *guide) alignmentStage(ctx context.Context) error {
	if err := g.run(stageAlignment, g.alignmentForm()); err != nil {
		return err
	}
	report, err := g.app.Questionnaire.CheckAlignment(ctx, assayapp.AlignmentRequest{
		Objectives: g.answers.Objectives,
		Alignment:  g.answers.Alignment,
		Rubric:     g.answers.Rubric,
		Criteria:   g.answers.Criteria,
		Support:    g.answers.Support,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, formatter.FormatAlignment(report))
	g.printProgress()
	return nil
}

func (g *guide) inclusiveStage(ctx context.Context) error {
	if err := g.run(stageInclusive, g.inclusiveForm()); err != nil {
		return err
	}
	var ids []string
	for _, group := range g.answers.Inclusive {
		ids = append(ids, group...)
	}
	report, err := g.app.Questionnaire.InclusiveReport(ctx, idSet(ids))
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, formatter.FormatInclusive(report))
	g.printProgress()
	return nil
}

func (g *guide) promptStage(ctx context.Context) error {
	if err := g.run(stagePrompt, g.promptForm()); err != nil {
		return err
	}
	result, err := g.app.Questionnaire.GeneratePrompt(ctx, assayapp.PromptRequest{
		CourseLevel:     g.answers.CourseLevel,
		SubjectArea:     strings.TrimSpace(g.answers.Subject),
		LearningOutcome: strings.TrimSpace(g.answers.Outcome),
		Context:         g.answers.Context,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, formatter.FormatPrompt(result))
	g.printProgress()
	return nil
}

func (g *guide) finishStage(ctx context.Context) error {
	if err := g.run(stageFinish, g.finishForm()); err != nil {
		return err
	}

	if g.answers.Export {
		path, err := g.app.Questionnaire.SaveExport(ctx, g.app.exportDir())
		if err != nil {
			return err
		}
		fmt.Fprintf(g.out, "Assessment plan saved to %s\n", path)
	}

	if g.answers.Copy {
		d := g.app.Questionnaire.Design()
		if d.AIPrompt != nil {
			name, err := prompt.ParseVariantName(g.answers.Variant)
			if err != nil {
				return err
			}
			copyPrompt(g.out, g.errOut, g.app, prompt.Select(*d.AIPrompt, name))
		}
	}
	return nil
}

func (g *guide) typeForm() *huh.Form {
	types := domain.AssessmentTypes()
	options := make([]huh.Option[string], 0, len(types))
	for _, t := range types {
		label := t.Title()
		if content, ok := g.app.Catalog.TypeContent(t); ok && len(content.Practices) > 0 {
			label = fmt.Sprintf("%s: %s", t.Title(), content.Practices[0])
		}
		options = append(options, huh.NewOption(label, string(t)))
	}

	return g.fio.newForm(false,
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an assessment type").
				Options(options...).
				Value(&g.answers.Type),
		),
	)
}

func (g *guide) udlForm() *huh.Form {
	return g.fio.newForm(true,
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("UDL Compliance Checklist").
				Description("Select every criterion your assessment meets").
				Options(itemOptions(g.app.Catalog.UDL.Items)...).
				Value(&g.answers.UDL),
		),
	)
}

func (g *guide) alignmentForm() *huh.Form {
	return g.fio.newForm(true,
		huh.NewGroup(
			huh.NewText().
				Title("Learning objectives").
				Description("What will students be able to do? Be specific.").
				Value(&g.answers.Objectives),
			huh.NewText().
				Title("Assessment alignment").
				Description("Explain how the assessment measures each objective").
				Value(&g.answers.Alignment),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Is a clear rubric provided?").
				Value(&g.answers.Rubric),
			huh.NewConfirm().
				Title("Are specific evaluation criteria defined?").
				Value(&g.answers.Criteria),
			huh.NewMultiSelect[string]().
				Title("Learner support").
				Description(fmt.Sprintf("Select the support offered (at least %d recommended)", scoring.MinSupportOptions)).
				Options(itemOptions(g.app.Catalog.Support)...).
				Value(&g.answers.Support),
		),
	)
}

func (g *guide) inclusiveForm() *huh.Form {
	cat := g.app.Catalog
	byCategory := make(map[domain.Category][]catalog.Item)
	for _, it := range cat.Inclusive.Items {
		if c, ok := cat.InclusiveCategory(it.ID); ok {
			byCategory[c] = append(byCategory[c], it)
		}
	}

	fields := make([]huh.Field, 0, len(domain.Categories()))
	for i, c := range domain.Categories() {
		fields = append(fields, huh.NewMultiSelect[string]().
			Title(c.Title()).
			Options(itemOptions(byCategory[c])...).
			Value(&g.answers.Inclusive[i]))
	}
	return g.fio.newForm(true, huh.NewGroup(fields...).
		Title("Inclusive Design Checklist").
		Description("Select the practices your assessment already follows"))
}

func (g *guide) promptForm() *huh.Form {
	levels := g.app.Catalog.CourseLevels
	if g.answers.CourseLevel == "" && len(levels) > 0 {
		g.answers.CourseLevel = levels[0]
	}

	return g.fio.newForm(false,
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Course level").
				Options(huh.NewOptions(levels...)...).
				Value(&g.answers.CourseLevel),
			huh.NewInput().
				Title("Subject area").
				Placeholder("e.g. Biology").
				Value(&g.answers.Subject).
				Validate(requiredText("subject area")),
			huh.NewText().
				Title("Learning outcome").
				Description("What should the assessment measure?").
				Value(&g.answers.Outcome).
				Validate(requiredText("learning outcome")),
			huh.NewText().
				Title("Additional context (optional)").
				Description("Constraints, tools, class size, anything the AI should know").
				Value(&g.answers.Context),
		),
	)
}

func (g *guide) finishForm() *huh.Form {
	var fields []huh.Field
	if !g.opts.export {
		fields = append(fields, huh.NewConfirm().
			Title("Export the plan as JSON?").
			Value(&g.answers.Export))
	}
	if !g.opts.copy {
		fields = append(fields, huh.NewConfirm().
			Title("Copy the prompt to the clipboard?").
			Value(&g.answers.Copy))
	}
	fields = append(fields,
		huh.NewSelect[string]().
			Title("Which version should be copied?").
			Options(
				huh.NewOption("Full prompt", ""),
				huh.NewOption("Quick Version", string(prompt.VariantQuick)),
				huh.NewOption("Detailed Version", string(prompt.VariantDetailed)),
				huh.NewOption("AI-Enhanced Version", string(prompt.VariantAIEnhanced)),
			).
			Value(&g.answers.Variant),
		huh.NewConfirm().
			Title("Start over with a new assessment?").
			Value(&g.answers.Again),
	)
	return g.fio.newForm(false, huh.NewGroup(fields...))
}

func itemOptions(items []catalog.Item) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(items))
	for _, it := range items {
		options = append(options, huh.NewOption(it.Label, it.ID))
	}
	return options
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// requiredText rejects blank input for the named field.
func requiredText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
