package engine

import "fmt"

// CreateStep is the step index reported for failures in a producer's Create,
// before any configured step has run.
const CreateStep = -1

// UnresolvedReferenceError reports a kwarg reference ("type__id") that was
// not present in the object store when its step needed it. Section and step
// fields are filled by the engine; they are empty when ResolveKwargs is
// called directly.
type UnresolvedReferenceError struct {
	Key         string
	SectionType string
	SectionID   string
	StepIndex   int
	StepName    string
}

func (e *UnresolvedReferenceError) Error() string {
	if e.SectionType == "" {
		return fmt.Sprintf("engine: reference %q not in object store", e.Key)
	}
	return fmt.Sprintf("engine: section %s__%s step %d (%q): reference %q not in object store",
		e.SectionType, e.SectionID, e.StepIndex, e.StepName, e.Key)
}

// StepError wraps a failure from a producer's Create or step method with
// enough context to localize the fault. The engine never retries or
// suppresses producer errors; they abort the run.
type StepError struct {
	SectionType string
	SectionID   string
	StepIndex   int // CreateStep for Create failures
	StepName    string
	Err         error
}

func (e *StepError) Error() string {
	if e.StepIndex == CreateStep {
		return fmt.Sprintf("engine: section %s__%s: create: %v", e.SectionType, e.SectionID, e.Err)
	}
	return fmt.Sprintf("engine: section %s__%s step %d (%q): %v",
		e.SectionType, e.SectionID, e.StepIndex, e.StepName, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
