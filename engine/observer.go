package engine

import (
	"context"
	"time"

	"github.com/confpipe/confpipe/producer"
	"github.com/confpipe/confpipe/store"
)

// Observer provides pre/post hooks around a run, each section, and each
// step, so callers can log progress or record run state without the engine
// owning any output. Hook errors abort the run (pre hooks) or surface as
// the run error when nothing else failed (post hooks never mask a section
// or step error).
type Observer interface {
	BeforeRun(ctx context.Context, runID string, sections int) error
	AfterRun(ctx context.Context, runID string, st *store.Store, err error) error
	BeforeSection(ctx context.Context, runID, key string) error
	AfterSection(ctx context.Context, runID, key string, obj interface{}, err error, duration time.Duration) error
	BeforeStep(ctx context.Context, runID, key string, stepIndex int, stepName string, kw producer.Kwargs) error
	AfterStep(ctx context.Context, runID, key string, stepIndex int, stepName string, obj interface{}, err error, duration time.Duration) error
}

// MultiObserver combines observers: every hook is called on each observer in
// order, and the first error is returned (remaining observers still run).
func MultiObserver(observers ...Observer) Observer {
	return multiObserver(observers)
}

type multiObserver []Observer

func (m multiObserver) BeforeRun(ctx context.Context, runID string, sections int) error {
	var firstErr error
	for _, o := range m {
		if err := o.BeforeRun(ctx, runID, sections); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m multiObserver) AfterRun(ctx context.Context, runID string, st *store.Store, err error) error {
	var firstErr error
	for _, o := range m {
		if herr := o.AfterRun(ctx, runID, st, err); herr != nil && firstErr == nil {
			firstErr = herr
		}
	}
	return firstErr
}

func (m multiObserver) BeforeSection(ctx context.Context, runID, key string) error {
	var firstErr error
	for _, o := range m {
		if err := o.BeforeSection(ctx, runID, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m multiObserver) AfterSection(ctx context.Context, runID, key string, obj interface{}, err error, duration time.Duration) error {
	var firstErr error
	for _, o := range m {
		if herr := o.AfterSection(ctx, runID, key, obj, err, duration); herr != nil && firstErr == nil {
			firstErr = herr
		}
	}
	return firstErr
}

func (m multiObserver) BeforeStep(ctx context.Context, runID, key string, stepIndex int, stepName string, kw producer.Kwargs) error {
	var firstErr error
	for _, o := range m {
		if err := o.BeforeStep(ctx, runID, key, stepIndex, stepName, kw); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m multiObserver) AfterStep(ctx context.Context, runID, key string, stepIndex int, stepName string, obj interface{}, err error, duration time.Duration) error {
	var firstErr error
	for _, o := range m {
		if herr := o.AfterStep(ctx, runID, key, stepIndex, stepName, obj, err, duration); herr != nil && firstErr == nil {
			firstErr = herr
		}
	}
	return firstErr
}
