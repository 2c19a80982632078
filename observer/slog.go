package observer

import (
	"context"
	"log/slog"
	"time"

	"github.com/confpipe/confpipe/producer"
	"github.com/confpipe/confpipe/store"
)

// SlogObserver logs run, section, and step progress through a slog.Logger.
// The engine itself never logs; attach this observer when you want the
// classic execution trace.
type SlogObserver struct {
	logger *slog.Logger

	// Level for section/step progress lines (default slog.LevelInfo).
	// Errors always log at Error level.
	Level slog.Level
}

// NewSlogObserver returns an observer logging to logger, or slog.Default()
// if logger is nil.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger, Level: slog.LevelInfo}
}

// BeforeRun implements engine.Observer.
func (o *SlogObserver) BeforeRun(ctx context.Context, runID string, sections int) error {
	o.logger.Log(ctx, o.Level, "run started", "run_id", runID, "sections", sections)
	return nil
}

// AfterRun implements engine.Observer.
func (o *SlogObserver) AfterRun(ctx context.Context, runID string, st *store.Store, err error) error {
	if err != nil {
		o.logger.LogAttrs(ctx, slog.LevelError, "run failed",
			slog.String("run_id", runID), slog.Int("completed", st.Len()), slog.Any("error", err))
		return nil
	}
	o.logger.Log(ctx, o.Level, "run finished", "run_id", runID, "objects", st.Len())
	return nil
}

// BeforeSection implements engine.Observer.
func (o *SlogObserver) BeforeSection(ctx context.Context, runID, key string) error {
	o.logger.Log(ctx, o.Level, "section", "run_id", runID, "key", key)
	return nil
}

// AfterSection implements engine.Observer.
func (o *SlogObserver) AfterSection(ctx context.Context, runID, key string, obj interface{}, err error, duration time.Duration) error {
	if err != nil {
		o.logger.LogAttrs(ctx, slog.LevelError, "section failed",
			slog.String("run_id", runID), slog.String("key", key),
			slog.Duration("duration", duration), slog.Any("error", err))
		return nil
	}
	o.logger.Log(ctx, o.Level, "section done", "run_id", runID, "key", key, "duration", duration)
	return nil
}

// BeforeStep implements engine.Observer.
func (o *SlogObserver) BeforeStep(ctx context.Context, runID, key string, stepIndex int, stepName string, kw producer.Kwargs) error {
	o.logger.Log(ctx, o.Level, "step", "run_id", runID, "key", key, "index", stepIndex, "name", stepName)
	return nil
}

// AfterStep implements engine.Observer.
func (o *SlogObserver) AfterStep(ctx context.Context, runID, key string, stepIndex int, stepName string, obj interface{}, err error, duration time.Duration) error {
	if err != nil {
		o.logger.LogAttrs(ctx, slog.LevelError, "step failed",
			slog.String("run_id", runID), slog.String("key", key),
			slog.Int("index", stepIndex), slog.String("name", stepName),
			slog.Duration("duration", duration), slog.Any("error", err))
	}
	return nil
}
