package cnfg

import (
	"sort"
	"strings"
)

// Merge combines a user configuration with defaults into a complete,
// normalized configuration. Field precedence is user over default, filled
// per field:
//
//   - A section type present only in defaults is included wholesale, so
//     defaults that were never overridden still execute. A user section
//     type with an explicitly empty section disables the type entirely.
//   - For a section type the user declares, the user's id set is
//     authoritative. Each user spec is templated from the default spec with
//     the same id, else from the lexicographically first default id of the
//     type, else from the neutral spec (nil init, priority 1, no steps).
//   - Unset user fields take the template's value. Steps override
//     wholesale: a non-nil user Steps slice fully replaces the default's,
//     never splices into it.
//
// Merge never mutates its inputs.
func Merge(user, defaults Config) (Config, error) {
	if err := validate(user); err != nil {
		return nil, err
	}
	if err := validate(defaults); err != nil {
		return nil, err
	}

	out := make(Config, len(user)+len(defaults))
	for sectionType, defSec := range defaults {
		if userSec, ok := user[sectionType]; ok && len(userSec) == 0 {
			// Explicitly empty user section: type disabled.
			continue
		}
		if _, ok := user[sectionType]; ok {
			continue // templated below, user id set wins
		}
		sec := make(Section, len(defSec))
		for id, spec := range defSec {
			if id == GlobalID {
				sec[id] = copySpec(spec)
				continue
			}
			sec[id] = fillSpec(copySpec(spec), Spec{})
		}
		out[sectionType] = sec
	}

	for sectionType, userSec := range user {
		if len(userSec) == 0 {
			continue
		}
		defSec := defaults[sectionType]
		sec := make(Section, len(userSec))
		for id, spec := range userSec {
			if id == GlobalID {
				sec[id] = copySpec(spec)
				continue
			}
			sec[id] = fillSpec(copySpec(spec), templateFor(defSec, id))
		}
		out[sectionType] = sec
	}
	return out, nil
}

// templateFor picks the default spec to fill gaps from: the same id when the
// default section has it, otherwise the lexicographically first id (the
// deterministic stand-in for "any representative of this type").
func templateFor(defSec Section, id string) Spec {
	if defSec == nil {
		return Spec{}
	}
	if tmpl, ok := defSec[id]; ok {
		return tmpl
	}
	ids := make([]string, 0, len(defSec))
	for did := range defSec {
		if did != GlobalID {
			ids = append(ids, did)
		}
	}
	if len(ids) == 0 {
		return Spec{}
	}
	sort.Strings(ids)
	return defSec[ids[0]]
}

// fillSpec fills unset fields of user from tmpl and normalizes the result.
func fillSpec(user, tmpl Spec) Spec {
	if user.Init == nil {
		user.Init = tmpl.Init
	}
	if user.Producer == nil {
		user.Producer = tmpl.Producer
	}
	if user.Priority == nil {
		if tmpl.Priority != nil {
			p := *tmpl.Priority
			user.Priority = &p
		} else {
			user.Priority = Priority(1)
		}
	}
	if user.Steps == nil {
		user.Steps = copySpec(tmpl).Steps
		if user.Steps == nil {
			user.Steps = []Step{}
		}
	}
	if user.Patch == nil && tmpl.Patch != nil {
		user.Patch = copySpec(tmpl).Patch
	}
	if user.Global == nil && tmpl.Global != nil {
		user.Global = copyKwargs(tmpl.Global)
	}
	return user
}

// validate rejects structurally malformed configurations: section types and
// ids containing the key separator, and steps without a name.
func validate(cfg Config) error {
	for sectionType, sec := range cfg {
		if strings.Contains(sectionType, "__") {
			return configErrf(sectionType, "", "section type must not contain %q", "__")
		}
		for id, spec := range sec {
			if strings.Contains(id, "__") {
				return configErrf(sectionType, id, "section id must not contain %q", "__")
			}
			for i, step := range spec.Steps {
				if step.Name == "" {
					return configErrf(sectionType, id, "step %d: name required", i)
				}
			}
		}
	}
	return nil
}
