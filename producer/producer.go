package producer

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/confpipe/confpipe/store"
)

// Kwargs holds the named arguments for one construction step. Values may be
// store references ("type__id" strings); the engine resolves those before
// the step runs.
type Kwargs map[string]interface{}

// StepFunc applies one named transformation to a section's in-progress
// object and returns the new current object. It may mutate obj and return
// it, or return a fresh value; callers must always continue with the
// returned value.
type StepFunc func(ctx context.Context, obj interface{}, kw Kwargs) (interface{}, error)

// Producer builds one section's object: Create makes (or passes through) the
// initial object, Steps exposes the named transformations the section's
// steps may invoke. The step map is the producer's whole capability set;
// step dispatch is a plain map lookup, no reflection.
type Producer interface {
	Create(ctx context.Context, init interface{}) (interface{}, error)
	Steps() map[string]StepFunc
}

// Factory builds a producer for one section. st is the shared object store
// (for reading earlier sections' results), oid the section's fully-qualified
// key ("type__id").
type Factory func(st *store.Store, oid string) Producer

// Registry maps section types (and optional names) to producer factories.
// Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	byType   map[string]Factory
	byName   map[string]Factory
}

// NewRegistry returns an empty producer registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[string]Factory), byName: make(map[string]Factory)}
}

// Register sets the default factory for a section type. Overwrites any
// existing registration.
func (r *Registry) Register(sectionType string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byType == nil {
		r.byType = make(map[string]Factory)
	}
	r.byType[sectionType] = f
}

// RegisterNamed adds a factory under a free-form name, for specs (or config
// files) that select a producer explicitly instead of using the section
// type's default.
func (r *Registry) RegisterNamed(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byName == nil {
		r.byName = make(map[string]Factory)
	}
	r.byName[name] = f
}

// Default returns the factory registered for a section type, or nil and
// false if none.
func (r *Registry) Default(sectionType string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byType[sectionType]
	return f, ok
}

// Named returns the factory registered under name, or nil and false if none.
func (r *Registry) Named(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byName[name]
	return f, ok
}

// MustNamed returns the factory registered under name, or panics.
func (r *Registry) MustNamed(name string) Factory {
	f, ok := r.Named(name)
	if !ok {
		panic(fmt.Sprintf("producer: %q not registered", name))
	}
	return f
}

// Names returns all explicitly named factories, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
