package cnfg

import (
	"sort"

	"github.com/confpipe/confpipe/store"
)

// Planned is one section ready for execution, with its fully-qualified key.
type Planned struct {
	SectionType string
	SectionID   string
	Spec        Spec
}

// Key returns the section's fully-qualified store key.
func (p Planned) Key() string { return store.Key(p.SectionType, p.SectionID) }

// ResolveOrder flattens a merged configuration into the global execution
// order: ascending priority, ties broken by the canonical (section type,
// section id) lexicographic order. The ordering is total and deterministic;
// map iteration order of the input never shows through.
//
// There is no per-step dependency graph: sections are expected to reference
// only objects finalized by earlier sections, and a bad reference surfaces
// at execution time where it can name the offending step.
func ResolveOrder(cfg Config) ([]Planned, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	flat := make([]Planned, 0, len(cfg)*2)
	for sectionType, sec := range cfg {
		for id, spec := range sec {
			if id == GlobalID {
				continue
			}
			if p := priorityOf(spec); p < 0 {
				return nil, configErrf(sectionType, id, "priority must be non-negative, got %d", p)
			}
			flat = append(flat, Planned{SectionType: sectionType, SectionID: id, Spec: spec})
		}
	}
	sort.Slice(flat, func(i, j int) bool {
		pi, pj := priorityOf(flat[i].Spec), priorityOf(flat[j].Spec)
		if pi != pj {
			return pi < pj
		}
		if flat[i].SectionType != flat[j].SectionType {
			return flat[i].SectionType < flat[j].SectionType
		}
		return flat[i].SectionID < flat[j].SectionID
	})
	return flat, nil
}
