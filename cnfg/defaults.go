package cnfg

import "sync"

// Defaults holds built-in default sections keyed by section type. It is a
// plain value constructed and owned by the caller (there is no package
// singleton) and is read-only once a run starts. Safe for concurrent reads.
type Defaults struct {
	mu       sync.RWMutex
	sections map[string]Section
}

// NewDefaults returns an empty defaults registry.
func NewDefaults() *Defaults {
	return &Defaults{sections: make(map[string]Section)}
}

// Register sets the default section for a section type. Overwrites any
// existing registration for that type.
func (d *Defaults) Register(sectionType string, section Section) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sections == nil {
		d.sections = make(map[string]Section)
	}
	d.sections[sectionType] = copySection(section)
}

// Template returns a copy of the default section for a section type. An
// unknown type yields an empty section, never an error: undefined behavior
// for a section is deferred to the producer at execution time.
func (d *Defaults) Template(sectionType string) Section {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.sections[sectionType]
	if !ok {
		return Section{}
	}
	return copySection(s)
}

// Config returns all registered default sections as a Config copy.
func (d *Defaults) Config() Config {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(Config, len(d.sections))
	for t, s := range d.sections {
		out[t] = copySection(s)
	}
	return out
}
