// Package store provides the run-scoped object store: a write-once mapping
// from fully-qualified section keys ("type__id") to the objects produced for
// them. The store is the only channel through which configuration sections
// see each other's results.
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Sep separates the section type from the section id in a fully-qualified key.
const Sep = "__"

// Key returns the fully-qualified key for a section: "type__id".
func Key(sectionType, sectionID string) string {
	return sectionType + Sep + sectionID
}

// SplitKey splits a fully-qualified key into section type and id.
// ok is false if k is not in sentinel form (see IsKey).
func SplitKey(k string) (sectionType, sectionID string, ok bool) {
	if !IsKey(k) {
		return "", "", false
	}
	parts := strings.SplitN(k, Sep, 2)
	return parts[0], parts[1], true
}

// IsKey reports whether s has the reference-sentinel form: exactly one "__"
// with non-empty text on both sides. Section types and ids must not contain
// "__" themselves, so a valid key always splits unambiguously.
func IsKey(s string) bool {
	i := strings.Index(s, Sep)
	if i <= 0 {
		return false
	}
	rest := s[i+len(Sep):]
	return rest != "" && !strings.Contains(rest, Sep)
}

// Store maps fully-qualified keys to produced objects. Keys are write-once:
// a second Put for the same key is an error. The engine writes each key at
// most once per run; the lock makes the store safe to read after the run
// from other goroutines.
type Store struct {
	mu      sync.RWMutex
	objects map[string]interface{}
}

// New returns an empty store.
func New() *Store {
	return &Store{objects: make(map[string]interface{})}
}

// Seed adds initial objects (e.g. pre-built collaborators) before a run.
// Seeded keys follow the same write-once rule as produced ones.
func (s *Store) Seed(objects map[string]interface{}) error {
	for k, v := range objects {
		if err := s.Put(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Put stores obj under key. Returns an error if key is already present.
func (s *Store) Put(key string, obj interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects == nil {
		s.objects = make(map[string]interface{})
	}
	if _, ok := s.objects[key]; ok {
		return fmt.Errorf("store: key %q already finalized", key)
	}
	s.objects[key] = obj
	return nil
}

// Get returns the object for key, or nil and false if not present.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj, ok
}

// MustGet returns the object for key, or panics if not present.
func (s *Store) MustGet(key string) interface{} {
	obj, ok := s.Get(key)
	if !ok {
		panic(fmt.Sprintf("store: key %q not present", key))
	}
	return obj
}

// Keys returns all finalized keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of finalized keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Snapshot returns a copy of the key→object mapping. Objects themselves are
// not copied.
func (s *Store) Snapshot() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]interface{}, len(s.objects))
	for k, v := range s.objects {
		out[k] = v
	}
	return out
}
