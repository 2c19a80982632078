// Package producer defines the construction strategy contract: a Producer
// creates a section's initial object and exposes named step functions that
// transform it. One producer implementation serves one section type; the
// engine invokes Create once, then folds the section's configured steps over
// the object, always carrying the returned value forward.
//
// Steps are an explicit capability set, a map from step name to StepFunc, so
// dispatch is a single map lookup and the full set of legal step names is
// known before execution starts.
//
// Register factories in a Registry, either as a section type's default
// (Register) or under a free-form name (RegisterNamed) that specs select
// with their producer field. A Factory receives the shared object store and
// the section's fully-qualified id, mirroring how produced objects are
// addressed everywhere else.
//
// Embed Base for store access, logging, and the DumpCache/LoadCache steps;
// use Func for one-off producers assembled from plain functions.
package producer
