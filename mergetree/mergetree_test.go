package mergetree

import (
	"math"
	"testing"

	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/heightmap"
	"github.com/riverscape/channelnet/inputdcel"
	"github.com/riverscape/channelnet/inputgraph"
	"github.com/riverscape/channelnet/mscomplex"
	"github.com/riverscape/channelnet/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTree(t *testing.T) *MergeTree {
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
	g, err := inputgraph.BuildInputGraph(hm, b, units.Unit)
	require.NoError(t, err)

	id, err := inputdcel.Build(g)
	require.NoError(t, err)

	msc, err := mscomplex.Build(id)
	require.NoError(t, err)

	mt, err := Build(msc, id)
	require.NoError(t, err)
	return mt
}

func TestBuildProducesATreeWithOneRoot(t *testing.T) {
	mt := buildTestTree(t)
	assert.Equal(t, -1, mt.RootNode().Parent)

	roots := 0
	for _, n := range mt.Nodes {
		if n.Parent == -1 {
			roots++
		}
	}
	assert.Equal(t, 1, roots)
}

func TestEveryNonRootNodeReachesTheRoot(t *testing.T) {
	mt := buildTestTree(t)
	for i := range mt.Nodes {
		cur := i
		steps := 0
		for mt.Nodes[cur].Parent != -1 {
			cur = mt.Nodes[cur].Parent
			steps++
			require.Less(t, steps, len(mt.Nodes)+1, "cycle detected in parent chain")
		}
		assert.Equal(t, mt.Root, cur)
	}
}

func TestParentAtHeightClimbsNoHigherThanNecessary(t *testing.T) {
	mt := buildTestTree(t)
	root := mt.RootNode()
	assert.Equal(t, mt.Root, mt.ParentAtHeight(mt.Root, root.P.H))
}
