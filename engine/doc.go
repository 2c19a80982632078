// Package engine is the pipeline executor: it turns a declarative
// configuration into constructed objects by driving producers through their
// configured steps, in a single deterministic pass.
//
// A run moves through fixed phases. Merging combines the user configuration
// with registered defaults and distributes global kwargs. Ordering flattens
// the merged sections into one global sequence (ascending priority, ties in
// canonical type/id order) and binds every section to a producer and every
// step name to a step function; unknown producers or steps fail here,
// before anything executes. Execution then folds each section: Create on
// the init value, then each step in listed order, the returned object
// always replacing the current one. A section's object is committed to the
// store only after its whole step sequence succeeds; later sections read
// earlier results by fully-qualified key ("type__id") through kwarg
// references.
//
//	e := engine.Engine{Producers: reg}
//	objects, err := e.Run(ctx, cfg, nil)
//	model, _ := objects.Get("model__default")
//
// Sections never run concurrently, which is what makes forward references
// safe: by the time a section resolves "dataset__train", that key is either
// finalized or the run fails with an UnresolvedReferenceError naming it.
// There is no retry, timeout, or partial-section commit; on failure the
// returned store holds exactly the sections that finished.
//
// Attach an Observer through RunOptions for progress logging or run
// recording (see the observer package); without one the engine is silent.
package engine
