package observer

import (
	"context"
	"sync"
	"time"

	"github.com/confpipe/confpipe/producer"
	"github.com/confpipe/confpipe/store"
)

// StepRecord is one step execution captured by a RunRecorder.
type StepRecord struct {
	Key      string
	Index    int
	Name     string
	Err      error
	Duration time.Duration
}

// SectionRecord is one section execution captured by a RunRecorder.
type SectionRecord struct {
	Key      string
	Err      error
	Duration time.Duration
}

// RunRecord is everything a RunRecorder captured for one run.
type RunRecord struct {
	RunID    string
	Sections []SectionRecord
	Steps    []StepRecord
	Err      error
	Done     bool
}

// RunRecorder is an in-memory engine.Observer that keeps a record per run,
// for tests and post-run inspection. Safe for concurrent use; single-process
// only.
type RunRecorder struct {
	mu   sync.Mutex
	runs map[string]*RunRecord
}

// NewRunRecorder returns an empty recorder.
func NewRunRecorder() *RunRecorder {
	return &RunRecorder{runs: make(map[string]*RunRecord)}
}

// Record returns the record for a run, or nil and false if unknown.
func (r *RunRecorder) Record(runID string) (*RunRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.runs[runID]
	return rec, ok
}

func (r *RunRecorder) record(runID string) *RunRecord {
	if r.runs == nil {
		r.runs = make(map[string]*RunRecord)
	}
	rec, ok := r.runs[runID]
	if !ok {
		rec = &RunRecord{RunID: runID}
		r.runs[runID] = rec
	}
	return rec
}

// BeforeRun implements engine.Observer.
func (r *RunRecorder) BeforeRun(ctx context.Context, runID string, sections int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(runID)
	return nil
}

// AfterRun implements engine.Observer.
func (r *RunRecorder) AfterRun(ctx context.Context, runID string, st *store.Store, err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.record(runID)
	rec.Err = err
	rec.Done = true
	return nil
}

// BeforeSection implements engine.Observer.
func (r *RunRecorder) BeforeSection(ctx context.Context, runID, key string) error { return nil }

// AfterSection implements engine.Observer.
func (r *RunRecorder) AfterSection(ctx context.Context, runID, key string, obj interface{}, err error, duration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.record(runID)
	rec.Sections = append(rec.Sections, SectionRecord{Key: key, Err: err, Duration: duration})
	return nil
}

// BeforeStep implements engine.Observer.
func (r *RunRecorder) BeforeStep(ctx context.Context, runID, key string, stepIndex int, stepName string, kw producer.Kwargs) error {
	return nil
}

// AfterStep implements engine.Observer.
func (r *RunRecorder) AfterStep(ctx context.Context, runID, key string, stepIndex int, stepName string, obj interface{}, err error, duration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.record(runID)
	rec.Steps = append(rec.Steps, StepRecord{Key: key, Index: stepIndex, Name: stepName, Err: err, Duration: duration})
	return nil
}
