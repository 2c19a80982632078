package cnfg

import (
	"github.com/confpipe/confpipe/producer"
)

// GlobalID is the reserved section id whose Global map applies to every
// other spec in the same section. It never executes and is removed by
// ApplyGlobals. Section types and ids must not contain "__".
const GlobalID = "global"

// Config maps section type → section id → Spec. It is the raw input to a
// run; Merge normalizes it against a Defaults registry before ordering.
type Config map[string]Section

// Section maps section id → Spec for one section type.
type Section map[string]Spec

// Kwargs is re-exported from producer for convenience when writing configs.
type Kwargs = producer.Kwargs

// Step is one named transformation with its keyword arguments. Kwarg values
// in reference-sentinel form ("type__id") are resolved against the object
// store before invocation, except for kwargs whose name ends in "_id",
// which keep the literal key string.
type Step struct {
	Name   string
	Kwargs Kwargs
}

// Spec describes how to build one section's object.
//
// Zero values mean "unset" and are filled from the matching default during
// Merge: a nil Priority becomes 1, a nil Steps slice takes the default's
// steps (an explicitly empty, non-nil Steps slice means "no steps" and
// suppresses the default's), a nil Producer falls back to the section
// type's registered default factory.
type Spec struct {
	// Init is the starting object, or a factory for it: a func() interface{}
	// or func() (interface{}, error) is invoked at execution time.
	Init interface{}

	// Producer selects the construction strategy: a producer.Producer, a
	// producer.Factory, or a string naming a factory in the engine's
	// registry. Nil uses the section type's default factory.
	Producer interface{}

	// Priority orders sections ascending; ties execute in (type, id) order.
	Priority *int

	// Steps run strictly in order; step i's return value is step i+1's input.
	Steps []Step

	// Patch adds or overrides step functions for this section only,
	// on top of the producer's own capability set.
	Patch map[string]producer.StepFunc

	// Global substitutes values for matching step kwargs in this spec
	// ("kwarg" or "step__kwarg" keys). See ApplyGlobals.
	Global map[string]interface{}
}

// Priority wraps n for use in Spec literals.
func Priority(n int) *int { return &n }

// priorityOf returns the effective priority of a spec (default 1).
func priorityOf(s Spec) int {
	if s.Priority == nil {
		return 1
	}
	return *s.Priority
}

// copySpec returns a structural copy of s: slices and maps are fresh,
// values are shared.
func copySpec(s Spec) Spec {
	out := s
	if s.Priority != nil {
		p := *s.Priority
		out.Priority = &p
	}
	if s.Steps != nil {
		out.Steps = make([]Step, len(s.Steps))
		for i, st := range s.Steps {
			out.Steps[i] = Step{Name: st.Name, Kwargs: copyKwargs(st.Kwargs)}
		}
	}
	if s.Patch != nil {
		out.Patch = make(map[string]producer.StepFunc, len(s.Patch))
		for k, v := range s.Patch {
			out.Patch[k] = v
		}
	}
	if s.Global != nil {
		out.Global = copyKwargs(s.Global)
	}
	return out
}

func copyKwargs(kw map[string]interface{}) map[string]interface{} {
	if kw == nil {
		return nil
	}
	out := make(map[string]interface{}, len(kw))
	for k, v := range kw {
		out[k] = v
	}
	return out
}

func copySection(s Section) Section {
	out := make(Section, len(s))
	for id, spec := range s {
		out[id] = copySpec(spec)
	}
	return out
}
