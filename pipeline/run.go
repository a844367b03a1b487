package pipeline

import (
	"context"
	"errors"

	"github.com/riverscape/channelnet/inputdcel"
	"github.com/riverscape/channelnet/inputgraph"
	"github.com/riverscape/channelnet/mergetree"
	"github.com/riverscape/channelnet/mscomplex"
	"github.com/riverscape/channelnet/network"
	"github.com/riverscape/channelnet/pipelineerr"
)

// Run executes the full extraction synchronously: input-graph ->
// input-dcel+gradient -> MS complex -> persistence simplify -> network
// emit, with an optional merge tree. Each stage's artefact is published
// to artefacts as soon as it is built. onProgress, if non-nil, is called
// at each step boundary; it must not block.
//
// Run does not itself spawn a goroutine; use Runner.Start to run it in
// the background with per-run progress tagging.
func Run(ctx context.Context, opts Options, artefacts *Artefacts, onProgress func(Progress)) (*network.Graph, error) {
	report := func(step string, percent int) {
		if onProgress != nil {
			onProgress(Progress{Step: step, Percent: percent})
		}
	}

	report(StepInputGraph, 0)
	ig, err := inputgraph.BuildInputGraph(opts.HeightMap, opts.Boundary, opts.Scale)
	if err != nil {
		return nil, pipelineerr.Wrap(StepInputGraph, classifyInputGraphError(err), err)
	}
	artefacts.InputGraph.Publish(ig)
	report(StepInputGraph, 100)

	if err := ctx.Err(); err != nil {
		return nil, pipelineerr.Wrap(StepInputDcel, pipelineerr.KindInternal, err)
	}

	report(StepInputDcel, 0)
	id, err := inputdcel.Build(ig)
	if err != nil {
		return nil, pipelineerr.Wrap(StepInputDcel, pipelineerr.KindDegenerateSaddle, err)
	}
	artefacts.InputDcel.Publish(id)
	report(StepInputDcel, 100)

	report(StepMsComplex, 0)
	msc, err := mscomplex.Build(id)
	if err != nil {
		return nil, pipelineerr.Wrap(StepMsComplex, pipelineerr.KindInternal, err)
	}
	artefacts.MsComplex.Publish(msc)
	report(StepMsComplex, 100)

	report(StepSimplify, 0)
	msc.Simplify()
	report(StepSimplify, 100)

	if opts.BuildMergeTree {
		report(StepMergeTree, 0)
		mt, err := mergetree.Build(msc, id)
		if err != nil {
			return nil, pipelineerr.Wrap(StepMergeTree, pipelineerr.KindInternal, err)
		}
		artefacts.MergeTree.Publish(mt)
		report(StepMergeTree, 100)
	}

	report(StepNetworkGraph, 0)
	full := network.Build(msc, id)
	filtered := full.FilterOnDelta(opts.Threshold)
	artefacts.Network.Publish(filtered)
	report(StepNetworkGraph, 100)

	return filtered, nil
}

// classifyInputGraphError maps inputgraph's sentinel errors onto the
// cross-cutting pipelineerr taxonomy.
func classifyInputGraphError(err error) pipelineerr.Kind {
	switch {
	case errors.Is(err, inputgraph.ErrInvalidBoundary):
		return pipelineerr.KindInvalidBoundary
	case errors.Is(err, inputgraph.ErrDegenerateRegion):
		return pipelineerr.KindInvalidBoundary
	case errors.Is(err, inputgraph.ErrNodataInRegion):
		return pipelineerr.KindNodataInInterior
	default:
		return pipelineerr.KindInvalidInput
	}
}
