package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/alexanderramin/assay/internal/app"
	"github.com/alexanderramin/assay/internal/catalog"
	"github.com/alexanderramin/assay/internal/domain"
	"github.com/alexanderramin/assay/internal/export"
	"github.com/alexanderramin/assay/internal/prompt"
	"github.com/alexanderramin/assay/internal/scoring"
	"github.com/google/uuid"
)

// Session owns one assessment design for the lifetime of a questionnaire
// run. Each stage reads the catalog, runs the pure scoring or prompt core,
// records the outcome on the design and advances progress.
type Session struct {
	mu       sync.Mutex
	id       string
	design   *domain.AssessmentDesign
	catalog  *catalog.Catalog
	observer StageObserver
	now      func() time.Time
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	id        string
	now       func() time.Time
	observers []StageObserver
}

// WithObserver attaches a stage observer. Every attached observer receives
// every event.
func WithObserver(o StageObserver) Option {
	return func(c *sessionConfig) { c.observers = append(c.observers, o) }
}

// WithClock overrides the clock used for export timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *sessionConfig) { c.now = now }
}

// WithSessionID fixes the session id instead of generating one.
func WithSessionID(id string) Option {
	return func(c *sessionConfig) { c.id = id }
}

var _ app.Questionnaire = (*Session)(nil)

// NewSession starts an empty design backed by cat.
func NewSession(cat *catalog.Catalog, opts ...Option) *Session {
	cfg := sessionConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.New().String()
	}
	return &Session{
		id:       cfg.id,
		design:   domain.NewAssessmentDesign(),
		catalog:  cat,
		observer: combineObservers(cfg.observers),
		now:      cfg.now,
	}
}

// ID returns the session id stamped on exports.
func (s *Session) ID() string {
	return s.id
}

// Catalog returns the catalog the session scores against.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Session) observe(ctx context.Context, stage string, startedAt time.Time, score *int, attrs map[string]any, err error) {
	s.mu.Lock()
	progress := s.design.Progress
	s.mu.Unlock()

	s.observer.ObserveStage(ctx, StageEvent{
		Stage:     stage,
		SessionID: s.id,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Err:       err,
		Progress:  progress,
		Score:     score,
		Attrs:     attrs,
	})
}

func (s *Session) Start(ctx context.Context) {
	startedAt := time.Now().UTC()
	s.mu.Lock()
	s.design.SetProgress(domain.ProgressStarted)
	s.mu.Unlock()
	s.observe(ctx, "start", startedAt, nil, nil, nil)
}

func (s *Session) SelectType(ctx context.Context, t domain.AssessmentType) (details *app.TypeDetails, err error) {
	startedAt := time.Now().UTC()
	attrs := map[string]any{"type": string(t)}
	defer func() { s.observe(ctx, "select-type", startedAt, nil, attrs, err) }()

	t, err = domain.ParseAssessmentType(string(t))
	if err != nil {
		return nil, err
	}
	content, ok := s.catalog.TypeContent(t)
	if !ok {
		err = fmt.Errorf("no guidance configured for %s", t.Title())
		return nil, err
	}

	s.mu.Lock()
	s.design.SetType(t)
	s.design.SetProgress(domain.ProgressTyped)
	s.mu.Unlock()

	return &app.TypeDetails{
		Type:            t,
		Title:           t.Title(),
		Practices:       append([]string(nil), content.Practices...),
		AIOpportunities: append([]string(nil), content.AIOpportunities...),
	}, nil
}

func (s *Session) UDLReport(ctx context.Context, checked map[string]bool) (report *app.UDLReport, err error) {
	startedAt := time.Now().UTC()
	var score *int
	defer func() { s.observe(ctx, "udl-report", startedAt, score, nil, err) }()

	items, err := s.catalog.UDLItems(checked)
	if err != nil {
		return nil, err
	}
	result, err := scoring.Score(items)
	if err != nil {
		return nil, fmt.Errorf("scoring udl checklist: %w", err)
	}
	recs := scoring.RecommendFromLabels(result.UncheckedLabels, s.catalog.UDL.Rules, scoring.MaxUDLRecommendations)

	compliance := make(map[string]bool, len(items))
	for _, it := range items {
		compliance[it.ID] = it.Checked
	}

	s.mu.Lock()
	s.design.UDLCompliance = compliance
	s.design.SetProgress(domain.ProgressUDL)
	s.mu.Unlock()

	score = &result.Percentage
	return &app.UDLReport{
		Percentage:      result.Percentage,
		Checked:         result.Checked,
		Total:           result.Total,
		UncheckedLabels: result.UncheckedLabels,
		Recommendations: recs,
	}, nil
}

func (s *Session) CheckAlignment(ctx context.Context, req app.AlignmentRequest) (report *app.AlignmentReport, err error) {
	startedAt := time.Now().UTC()
	var score *int
	attrs := map[string]any{"support_count": len(req.Support)}
	defer func() { s.observe(ctx, "check-alignment", startedAt, score, attrs, err) }()

	if err = s.catalog.ValidateSupport(req.Support); err != nil {
		return nil, err
	}

	result := scoring.Evaluate(scoring.AlignmentInput{
		Objectives:   req.Objectives,
		Alignment:    req.Alignment,
		Rubric:       req.Rubric,
		Criteria:     req.Criteria,
		SupportCount: len(req.Support),
	})

	labels := make([]string, 0, len(req.Support))
	for _, id := range req.Support {
		label, _ := s.catalog.SupportLabel(id)
		labels = append(labels, label)
	}

	var support []string
	if len(req.Support) > 0 {
		support = append(support, req.Support...)
	}

	s.mu.Lock()
	s.design.QMAlignment = domain.QMAlignment{
		Objectives: req.Objectives,
		Alignment:  req.Alignment,
		Rubric:     req.Rubric,
		Criteria:   req.Criteria,
		Support:    support,
	}
	s.design.SetProgress(domain.ProgressAlignment)
	s.mu.Unlock()

	score = &result.Percentage
	return &app.AlignmentReport{
		AlignmentResult: result,
		SupportLabels:   labels,
	}, nil
}

func (s *Session) InclusiveReport(ctx context.Context, checked map[string]bool) (report *app.InclusiveReport, err error) {
	startedAt := time.Now().UTC()
	var score *int
	defer func() { s.observe(ctx, "inclusive-report", startedAt, score, nil, err) }()

	items, err := s.catalog.InclusiveItems(checked)
	if err != nil {
		return nil, err
	}
	overall, err := scoring.Score(items)
	if err != nil {
		return nil, fmt.Errorf("scoring inclusive checklist: %w", err)
	}
	tallies := scoring.Aggregate(items, s.catalog.Classifier(), s.catalog.CategoryTotals())
	breakdown, err := scoring.Breakdown(tallies)
	if err != nil {
		return nil, fmt.Errorf("scoring inclusive categories: %w", err)
	}

	var recs []string
	if overall.Percentage < 100 {
		recs = scoring.RecommendFromCategories(tallies, s.catalog.CategoryAdvice())
	}

	s.mu.Lock()
	s.design.InclusiveDesign = tallies
	s.design.SetProgress(domain.ProgressInclusive)
	s.mu.Unlock()

	score = &overall.Percentage
	return &app.InclusiveReport{
		OverallScore:    overall.Percentage,
		Checked:         overall.Checked,
		Total:           overall.Total,
		Categories:      breakdown,
		Recommendations: recs,
	}, nil
}

func (s *Session) GeneratePrompt(ctx context.Context, req app.PromptRequest) (result *app.PromptResult, err error) {
	startedAt := time.Now().UTC()
	attrs := map[string]any{"course_level": req.CourseLevel}
	defer func() { s.observe(ctx, "generate-prompt", startedAt, nil, attrs, err) }()

	s.mu.Lock()
	var typ *domain.AssessmentType
	if s.design.Type != nil {
		t := *s.design.Type
		typ = &t
	}
	s.mu.Unlock()

	text, err := prompt.Compose(prompt.Request{
		Type:            typ,
		CourseLevel:     req.CourseLevel,
		SubjectArea:     req.SubjectArea,
		LearningOutcome: req.LearningOutcome,
		Context:         req.Context,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.design.SetPrompt(text)
	s.design.SetProgress(domain.ProgressPrompt)
	s.mu.Unlock()

	attrs["prompt_chars"] = len(text)
	return &app.PromptResult{
		Prompt:   text,
		Variants: prompt.Variants(text),
	}, nil
}

func (s *Session) Summary(ctx context.Context) app.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.design, len(s.catalog.UDL.Items))
}

func (s *Session) Export(ctx context.Context, w io.Writer) (err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "export", startedAt, nil, nil, err) }()

	return export.Encode(w, s.document())
}

func (s *Session) SaveExport(ctx context.Context, dir string) (path string, err error) {
	startedAt := time.Now().UTC()
	attrs := map[string]any{"dir": dir}
	defer func() { s.observe(ctx, "save-export", startedAt, nil, attrs, err) }()

	path, err = export.SaveJSON(dir, s.document())
	if err != nil {
		return "", err
	}
	attrs["path"] = path
	return path, nil
}

func (s *Session) document() export.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return export.NewDocument(s.id, s.design, s.now())
}

// Design returns a snapshot of the current design.
func (s *Session) Design() *domain.AssessmentDesign {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.design.Clone()
}

func (s *Session) Reset(ctx context.Context) {
	startedAt := time.Now().UTC()
	s.mu.Lock()
	s.design.Reset()
	s.mu.Unlock()
	s.observe(ctx, "reset", startedAt, nil, nil, nil)
}

// Summarize derives the end-of-session overview from a design. udlTotal is
// the size of the UDL checklist the design was scored against.
func Summarize(d *domain.AssessmentDesign, udlTotal int) app.Summary {
	sum := app.Summary{
		UDLMet:              d.UDLMet(),
		UDLTotal:            udlTotal,
		UDLAssessed:         len(d.UDLCompliance) > 0,
		ObjectivesDefined:   d.QMAlignment.Objectives != "",
		AlignmentDocumented: d.QMAlignment.Alignment != "",
		PromptGenerated:     d.AIPrompt != nil,
		Progress:            d.Progress,
	}
	if d.Type != nil {
		sum.TypeName = d.Type.Name()
	}

	var checked, total int
	for _, tally := range d.InclusiveDesign {
		checked += tally.Checked
		total += tally.Total
	}
	if total > 0 {
		if pct, err := scoring.Percent(checked, total); err == nil {
			sum.InclusiveScore = &pct
		}
	}
	return sum
}
