package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/confpipe/confpipe/cnfg"
	"github.com/confpipe/confpipe/producer"
	"github.com/confpipe/confpipe/store"
)

// plannedStep is one step bound to its function: dispatch at execution time
// is an index into the plan, not a lookup.
type plannedStep struct {
	name   string
	fn     producer.StepFunc
	kwargs producer.Kwargs
}

// plannedSection is one ordered section with its producer resolved and
// every step name bound.
type plannedSection struct {
	sectionType string
	sectionID   string
	key         string
	init        interface{}
	prod        producer.Producer
	steps       []plannedStep
}

// plan resolves each ordered section's producer reference and binds its
// step names to step functions. Unknown producers and unknown step names
// are configuration errors, raised here so nothing has executed yet.
func (e *Engine) plan(ordered []cnfg.Planned, st *store.Store) ([]plannedSection, error) {
	plan := make([]plannedSection, 0, len(ordered))
	for _, sec := range ordered {
		prod, err := e.resolveProducer(sec, st)
		if err != nil {
			return nil, err
		}
		caps := capabilities(prod, sec.Spec.Patch)
		steps := make([]plannedStep, 0, len(sec.Spec.Steps))
		for i, step := range sec.Spec.Steps {
			fn, ok := caps[step.Name]
			if !ok {
				return nil, &cnfg.ConfigError{
					SectionType: sec.SectionType,
					SectionID:   sec.SectionID,
					Msg:         stepNotProvidedMsg(i, step.Name, caps),
				}
			}
			steps = append(steps, plannedStep{name: step.Name, fn: fn, kwargs: step.Kwargs})
		}
		plan = append(plan, plannedSection{
			sectionType: sec.SectionType,
			sectionID:   sec.SectionID,
			key:         sec.Key(),
			init:        sec.Spec.Init,
			prod:        prod,
			steps:       steps,
		})
	}
	return plan, nil
}

// resolveProducer turns a spec's producer reference into an instance: a
// Producer is used as-is, a Factory is invoked with the store and key, a
// string is looked up among named factories, and nil falls back to the
// section type's default factory or, none registered, to a pass-through
// producer, so sections without steps work out of the box.
func (e *Engine) resolveProducer(sec cnfg.Planned, st *store.Store) (producer.Producer, error) {
	switch ref := sec.Spec.Producer.(type) {
	case nil:
		if e.Producers != nil {
			if f, ok := e.Producers.Default(sec.SectionType); ok {
				return f(st, sec.Key()), nil
			}
		}
		return producer.Func(nil, nil), nil
	case producer.Producer:
		return ref, nil
	case producer.Factory:
		return ref(st, sec.Key()), nil
	case func(*store.Store, string) producer.Producer:
		return ref(st, sec.Key()), nil
	case string:
		if e.Producers != nil {
			if f, ok := e.Producers.Named(ref); ok {
				return f(st, sec.Key()), nil
			}
		}
		return nil, &cnfg.ConfigError{
			SectionType: sec.SectionType,
			SectionID:   sec.SectionID,
			Msg:         fmt.Sprintf("producer %q not registered", ref),
		}
	default:
		return nil, &cnfg.ConfigError{
			SectionType: sec.SectionType,
			SectionID:   sec.SectionID,
			Msg:         "producer reference must be a Producer, Factory, or registered name",
		}
	}
}

// capabilities merges a producer's step map with the spec's patch, patch
// entries winning.
func capabilities(prod producer.Producer, patch map[string]producer.StepFunc) map[string]producer.StepFunc {
	steps := prod.Steps()
	if len(patch) == 0 {
		return steps
	}
	out := make(map[string]producer.StepFunc, len(steps)+len(patch))
	for name, fn := range steps {
		out[name] = fn
	}
	for name, fn := range patch {
		out[name] = fn
	}
	return out
}

func stepNotProvidedMsg(index int, name string, caps map[string]producer.StepFunc) string {
	known := make([]string, 0, len(caps))
	for n := range caps {
		known = append(known, n)
	}
	sort.Strings(known)
	msg := fmt.Sprintf("step %d (%q): not provided by producer", index, name)
	if len(known) > 0 {
		msg += fmt.Sprintf(" (has: %s)", strings.Join(known, ", "))
	}
	return msg
}
