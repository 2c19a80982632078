// Package cnfg defines the declarative configuration model and its
// resolution: merging user sections with registered defaults, distributing
// shared "global" kwargs, and flattening the result into a deterministic
// execution order.
//
// A Config maps section type → section id → Spec. Each Spec names an
// initial object, a producer, a priority, and an ordered list of steps;
// the fully-qualified key "type__id" identifies the object the section
// produces. Merging is permissive: unknown section types get an
// empty default template rather than an error, so whether a section makes
// sense is decided by its producer at execution time.
//
//	user := cnfg.Config{
//		"dataset": {"train": {Steps: []cnfg.Step{{Name: "load", Kwargs: cnfg.Kwargs{"path": "train.csv"}}}}},
//		"model":   {"default": {Steps: []cnfg.Step{{Name: "fit", Kwargs: cnfg.Kwargs{"data": "dataset__train"}}}}},
//	}
//	merged, err := cnfg.Merge(user, defaults.Config())
//	ordered, err := cnfg.ResolveOrder(cnfg.ApplyGlobals(merged, nil))
//
// The engine package drives these phases; callers normally only build a
// Config (in Go or via the loader package) and hand it to engine.Run.
package cnfg
