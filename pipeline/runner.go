package pipeline

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/riverscape/channelnet/network"
)

// Result is a completed Run's final outcome.
type Result struct {
	RunID   uuid.UUID
	Network *network.Graph
	Err     error
}

// Runner drives one Run on a background goroutine, reporting progress
// through a caller-supplied callback and publishing every intermediate
// artefact so it can be inspected while the run is in flight.
//
// The pipeline itself is single-threaded cooperative: it yields only at
// the explicit progress points between substeps. errgroup supplies the
// cancellation-aware context, which Run checks once, after the input
// graph is built, and gives Start a single place to recover the first
// (and only) step error.
type Runner struct {
	Artefacts *Artefacts
}

// NewRunner returns a Runner with a fresh, unpublished Artefacts set.
func NewRunner() *Runner {
	return &Runner{Artefacts: NewArtefacts()}
}

// Start launches Run on a background goroutine tagged with a fresh run
// ID, and returns a channel that receives exactly one Result once the
// run completes. onProgress may be nil; when non-nil it is invoked
// synchronously from the background goroutine at each step boundary, so
// it must not block.
func (r *Runner) Start(ctx context.Context, opts Options, onProgress func(uuid.UUID, Progress)) <-chan Result {
	runID := uuid.New()
	out := make(chan Result, 1)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		graph, err := Run(gCtx, opts, r.Artefacts, func(p Progress) {
			if onProgress != nil {
				onProgress(runID, p)
			}
		})
		out <- Result{RunID: runID, Network: graph, Err: err}
		return err
	})

	go func() {
		_ = g.Wait()
		close(out)
	}()

	return out
}
