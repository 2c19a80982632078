// Package observer provides engine.Observer implementations.
//
//   - SlogObserver logs run/section/step progress through log/slog, giving
//     the familiar execution trace without the engine owning any output.
//   - RunRecorder keeps an in-memory record per run (sections, steps,
//     timings, errors) for tests and post-run inspection.
//
// Combine them with engine.MultiObserver:
//
//	rec := observer.NewRunRecorder()
//	opts := &engine.RunOptions{
//		Observer: engine.MultiObserver(observer.NewSlogObserver(nil), rec),
//	}
package observer
