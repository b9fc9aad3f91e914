package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// StageEvent describes one finished questionnaire stage.
type StageEvent struct {
	Stage     string
	SessionID string
	StartedAt time.Time
	Duration  time.Duration
	Err       error

	// Progress is the design's progress after the stage ran.
	Progress int
	// Score is the stage percentage for scored stages, nil otherwise.
	Score *int
	// Attrs holds stage inputs worth logging (type, course level, paths).
	Attrs map[string]any
}

// Succeeded reports whether the stage completed without error.
func (e StageEvent) Succeeded() bool {
	return e.Err == nil
}

// StageObserver receives an event after every session stage.
type StageObserver interface {
	ObserveStage(ctx context.Context, event StageEvent)
}

// NoopStageObserver ignores all events.
type NoopStageObserver struct{}

func (NoopStageObserver) ObserveStage(context.Context, StageEvent) {}

type logStageObserver struct {
	logger *slog.Logger
}

// NewLogStageObserver logs stage events as slog text lines on w.
func NewLogStageObserver(w io.Writer) StageObserver {
	if w == nil {
		return NoopStageObserver{}
	}
	return &logStageObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logStageObserver) ObserveStage(ctx context.Context, e StageEvent) {
	attrs := []slog.Attr{
		slog.String("stage", e.Stage),
		slog.String("session", e.SessionID),
		slog.Int64("duration_ms", e.Duration.Milliseconds()),
		slog.Int("progress", e.Progress),
	}
	if e.Score != nil {
		attrs = append(attrs, slog.Int("score", *e.Score))
	}
	for k, v := range e.Attrs {
		attrs = append(attrs, slog.Any(k, v))
	}

	level := slog.LevelInfo
	if e.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "assessment_stage", attrs...)
}

// fanOut delivers each event to every observer in order.
type fanOut []StageObserver

func (f fanOut) ObserveStage(ctx context.Context, e StageEvent) {
	for _, o := range f {
		o.ObserveStage(ctx, e)
	}
}

// combineObservers drops nil observers and merges the rest.
func combineObservers(observers []StageObserver) StageObserver {
	var live fanOut
	for _, o := range observers {
		if o != nil {
			live = append(live, o)
		}
	}
	switch len(live) {
	case 0:
		return NoopStageObserver{}
	case 1:
		return live[0]
	}
	return live
}
