package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/heightmap"
	"github.com/riverscape/channelnet/pipelineerr"
	"github.com/riverscape/channelnet/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoBumpOptions(t *testing.T, threshold float64, buildMergeTree bool) Options {
	t.Helper()

	data := make([]float64, 36)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			d1 := (float64(x-1))*(float64(x-1)) + (float64(y-1))*(float64(y-1))
			d2 := (float64(x-4))*(float64(x-4)) + (float64(y-4))*(float64(y-4))
			data[6*y+x] = math.Max(8-d1, 8-d2)
		}
	}
	hm, err := heightmap.New(6, 6, data)
	require.NoError(t, err)

	b := heightmap.Boundary{
		Source: heightmap.Path{Points: []geom.Coordinate{{X: 0, Y: 0}, {X: 0, Y: 5}}},
		Top:    heightmap.Path{Points: []geom.Coordinate{{X: 0, Y: 5}, {X: 5, Y: 5}}},
		Sink:   heightmap.Path{Points: []geom.Coordinate{{X: 5, Y: 5}, {X: 5, Y: 0}}},
		Bottom: heightmap.Path{Points: []geom.Coordinate{{X: 5, Y: 0}, {X: 0, Y: 0}}},
	}

	return Options{
		HeightMap:      hm,
		Boundary:       b,
		Scale:          units.Unit,
		Threshold:      threshold,
		BuildMergeTree: buildMergeTree,
	}
}

func TestRunPublishesEveryArtefact(t *testing.T) {
	opts := twoBumpOptions(t, -1, true)
	artefacts := NewArtefacts()

	var steps []string
	graph, err := Run(context.Background(), opts, artefacts, func(p Progress) {
		steps = append(steps, p.Step)
	})
	require.NoError(t, err)
	assert.NotNil(t, graph)

	_, ok := artefacts.InputGraph.Get()
	assert.True(t, ok)
	_, ok = artefacts.InputDcel.Get()
	assert.True(t, ok)
	_, ok = artefacts.MsComplex.Get()
	assert.True(t, ok)
	_, ok = artefacts.MergeTree.Get()
	assert.True(t, ok)
	_, ok = artefacts.Network.Get()
	assert.True(t, ok)

	assert.Contains(t, steps, StepInputGraph)
	assert.Contains(t, steps, StepNetworkGraph)
}

func TestRunSkipsMergeTreeWhenNotRequested(t *testing.T) {
	opts := twoBumpOptions(t, -1, false)
	artefacts := NewArtefacts()

	_, err := Run(context.Background(), opts, artefacts, nil)
	require.NoError(t, err)

	_, ok := artefacts.MergeTree.Get()
	assert.False(t, ok)
}

func TestRunReportsInvalidBoundaryAsStepError(t *testing.T) {
	opts := twoBumpOptions(t, -1, false)
	// Break the loop: Top no longer starts where Source ends.
	opts.Boundary.Top = heightmap.Path{Points: []geom.Coordinate{{X: 3, Y: 5}, {X: 5, Y: 5}}}

	_, err := Run(context.Background(), opts, NewArtefacts(), nil)
	require.Error(t, err)
	assert.Equal(t, pipelineerr.KindInvalidBoundary, pipelineerr.KindOf(err))
}
