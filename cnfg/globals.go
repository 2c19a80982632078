package cnfg

// ApplyGlobals substitutes shared values into step kwargs across the whole
// configuration and strips the reserved "global" pseudo-specs.
//
// Three levels feed the substitution, most specific lowest: a spec's own
// Global map, the section-level map carried by the reserved id "global",
// and the run-level global map passed in. Precedence when the same key
// appears on several levels is run > section > spec, matching the merged
// defaults' "outer level wins" distribution.
//
// A global key substitutes the value of every step kwarg with the same
// name that is already present in a step; a "step__kwarg" key targets a
// single step and wins over the bare form. Globals never add kwargs a step
// did not declare.
func ApplyGlobals(cfg Config, global map[string]interface{}) Config {
	out := make(Config, len(cfg))
	for sectionType, sec := range cfg {
		var sectionGlobal map[string]interface{}
		if g, ok := sec[GlobalID]; ok {
			sectionGlobal = g.Global
		}
		outSec := make(Section, len(sec))
		for id, spec := range sec {
			if id == GlobalID {
				continue
			}
			eff := overlay(spec.Global, sectionGlobal, global)
			outSec[id] = substitute(copySpec(spec), eff)
		}
		out[sectionType] = outSec
	}
	return out
}

// overlay merges layers left to right, later layers winning.
func overlay(layers ...map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

func substitute(spec Spec, global map[string]interface{}) Spec {
	if len(global) == 0 {
		return spec
	}
	for i, step := range spec.Steps {
		for name := range step.Kwargs {
			if v, ok := global[name]; ok {
				spec.Steps[i].Kwargs[name] = v
			}
			// Targeted form overrides the bare one.
			if v, ok := global[step.Name+"__"+name]; ok {
				spec.Steps[i].Kwargs[name] = v
			}
		}
	}
	return spec
}
