// Package pipeline orchestrates the full extraction: input graph,
// input DCEL and gradient field, Morse-Smale complex, persistence
// simplification, and network graph emission, with an optional merge
// tree. Each stage's artefact is published to a *progress.Slot[T] as
// soon as it is built, so a host embedding the pipeline can inspect
// intermediate state while a long-running extraction is still in
// flight.
//
// A Runner runs one invocation of Run on a background goroutine via
// golang.org/x/sync/errgroup, reporting step-by-step progress through a
// caller-supplied callback and tagging the run with a uuid so progress
// events from concurrent runs can be told apart.
package pipeline
