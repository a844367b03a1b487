// Package pipelineerr defines the error taxonomy shared across every
// pipeline stage, so a caller can distinguish "your input was bad" from
// "this is an internal bug" without string-matching error messages.
//
// What:
//
//   - Kind: a small closed set of error categories.
//   - StepError: wraps an underlying error with the stage name and Kind
//     that produced it.
//
// Why:
//
//   - A long-running pipeline has many internal steps; callers (CLI
//     tooling, a future HTTP handler) need to map failures onto exit
//     codes or status codes without depending on every stage's own
//     sentinel errors.
package pipelineerr
