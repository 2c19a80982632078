package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/confpipe/confpipe/cnfg"
	"github.com/confpipe/confpipe/producer"
	"github.com/confpipe/confpipe/store"
)

// Engine executes declarative configurations: it merges the user config
// with Defaults, orders sections by priority, resolves producer references
// through Producers, and folds each section's steps into an object committed
// to the shared store. The zero value is usable; both fields are optional.
type Engine struct {
	Defaults  *cnfg.Defaults
	Producers *producer.Registry
}

// RunOptions is optional and configures a single run.
type RunOptions struct {
	// Observer receives pre/post hooks for the run, sections, and steps.
	Observer Observer

	// RunID labels the run in observer hooks. If empty and Observer is
	// set, a new UUID is generated.
	RunID string

	// Objects are pre-built collaborators seeded into the store before
	// any section executes, keyed like produced objects ("type__id").
	Objects map[string]interface{}

	// Global substitutes values for matching step kwargs across the whole
	// configuration (run-level globals, highest precedence).
	Global map[string]interface{}
}

// Run executes the configuration and returns the object store. The run is a
// single deterministic pass: merge, order, then execute each section in
// order, committing its object only after its whole step sequence succeeds.
//
// On failure the store is still returned; it holds exactly the sections
// that completed before the failing one. No producer error is retried or
// suppressed.
func (e *Engine) Run(ctx context.Context, user cnfg.Config, opts *RunOptions) (*store.Store, error) {
	st := store.New()
	if opts != nil && opts.Objects != nil {
		if err := st.Seed(opts.Objects); err != nil {
			return st, err
		}
	}

	var defaults cnfg.Config
	if e.Defaults != nil {
		defaults = e.Defaults.Config()
	}
	merged, err := cnfg.Merge(user, defaults)
	if err != nil {
		return st, err
	}
	var global map[string]interface{}
	if opts != nil {
		global = opts.Global
	}
	merged = cnfg.ApplyGlobals(merged, global)

	ordered, err := cnfg.ResolveOrder(merged)
	if err != nil {
		return st, err
	}
	plan, err := e.plan(ordered, st)
	if err != nil {
		return st, err
	}

	if opts == nil || opts.Observer == nil {
		return st, e.execute(ctx, st, plan, nil, "")
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.New().String()
	}
	obs := opts.Observer
	if err := obs.BeforeRun(ctx, runID, len(plan)); err != nil {
		return st, fmt.Errorf("before run: %w", err)
	}
	err = e.execute(ctx, st, plan, obs, runID)
	if postErr := obs.AfterRun(ctx, runID, st, err); postErr != nil {
		// Don't mask the run error.
		if err == nil {
			err = fmt.Errorf("after run: %w", postErr)
		}
	}
	return st, err
}

// execute runs planned sections in order, stopping at the first failure.
func (e *Engine) execute(ctx context.Context, st *store.Store, plan []plannedSection, obs Observer, runID string) error {
	for _, sec := range plan {
		if obs != nil {
			if err := obs.BeforeSection(ctx, runID, sec.key); err != nil {
				return fmt.Errorf("before section %s: %w", sec.key, err)
			}
		}
		start := time.Now()
		obj, err := e.runSection(ctx, st, sec, obs, runID)
		duration := time.Since(start)
		if obs != nil {
			if postErr := obs.AfterSection(ctx, runID, sec.key, obj, err, duration); postErr != nil {
				if err == nil {
					err = fmt.Errorf("after section %s: %w", sec.key, postErr)
				}
			}
		}
		if err != nil {
			return err
		}
		if err := st.Put(sec.key, obj); err != nil {
			return fmt.Errorf("commit section %s: %w", sec.key, err)
		}
	}
	return nil
}

// runSection builds one section's object: invoke the init factory if the
// init is one, call Create, then fold the steps, always carrying the
// returned value forward.
func (e *Engine) runSection(ctx context.Context, st *store.Store, sec plannedSection, obs Observer, runID string) (interface{}, error) {
	init := sec.init
	switch f := init.(type) {
	case func() interface{}:
		init = f()
	case func() (interface{}, error):
		var err error
		init, err = f()
		if err != nil {
			return nil, &StepError{SectionType: sec.sectionType, SectionID: sec.sectionID, StepIndex: CreateStep, StepName: "init", Err: err}
		}
	}

	obj, err := sec.prod.Create(ctx, init)
	if err != nil {
		return nil, &StepError{SectionType: sec.sectionType, SectionID: sec.sectionID, StepIndex: CreateStep, StepName: "create", Err: err}
	}

	for i, step := range sec.steps {
		kw, err := ResolveKwargs(step.kwargs, st)
		if err != nil {
			if uerr, ok := err.(*UnresolvedReferenceError); ok {
				uerr.SectionType = sec.sectionType
				uerr.SectionID = sec.sectionID
				uerr.StepIndex = i
				uerr.StepName = step.name
			}
			return nil, err
		}
		if obs != nil {
			if err := obs.BeforeStep(ctx, runID, sec.key, i, step.name, kw); err != nil {
				return nil, fmt.Errorf("before step %d (%s): %w", i, step.name, err)
			}
		}
		start := time.Now()
		next, stepErr := step.fn(ctx, obj, kw)
		duration := time.Since(start)
		if obs != nil {
			if postErr := obs.AfterStep(ctx, runID, sec.key, i, step.name, next, stepErr, duration); postErr != nil {
				if stepErr == nil {
					stepErr = fmt.Errorf("after step: %w", postErr)
				}
			}
		}
		if stepErr != nil {
			return nil, &StepError{SectionType: sec.sectionType, SectionID: sec.sectionID, StepIndex: i, StepName: step.name, Err: stepErr}
		}
		obj = next
	}
	return obj, nil
}
