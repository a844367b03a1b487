// Package progress provides the publish/subscribe primitive the
// pipeline uses to expose each stage's artefact (the input graph, the
// gradient field, the simplified complex, ...) to observers while the
// run is still in flight.
//
// What:
//
//   - Slot[T]: a read-many holder for one stage's result, where a later
//     Publish replaces an earlier one, safe for a writer goroutine and
//     any number of reader goroutines.
//
// Why:
//
//   - A long-running extraction over a large DEM benefits from exposing
//     intermediate artefacts (for progress UIs, for debugging a stuck
//     run) without requiring the whole pipeline to finish first.
package progress
