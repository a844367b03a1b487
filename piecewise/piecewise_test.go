package piecewise

import (
	"math"
	"testing"

	"github.com/riverscape/channelnet/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicEval(t *testing.T) {
	c := Cubic{C0: 1, C1: 2, C2: 3, C3: 4}
	got := c.Eval(2)
	want := 1.0 + 2*2 + 3*4 + 4*8
	assert.Equal(t, want, got)
}

func TestCubicAddSubScale(t *testing.T) {
	a := Cubic{1, 2, 3, 4}
	b := Cubic{4, 3, 2, 1}
	assert.Equal(t, Cubic{5, 5, 5, 5}, a.Add(b))
	assert.Equal(t, Cubic{-3, -1, 1, 3}, a.Sub(b))
	assert.Equal(t, Cubic{2, 4, 6, 8}, a.Scale(2))
}

func TestLinearHeightForVolume(t *testing.T) {
	l := Linear{C0: 10, C1: -2}
	h := l.HeightForVolume(4)
	assert.InDelta(t, 3.0, h, 1e-9)
	assert.True(t, math.IsNaN(Linear{C0: 5}.HeightForVolume(5)))
}

func TestPiecewiseEvalSelectsPiece(t *testing.T) {
	p := Piecewise[Linear]{
		Breakpoints: []float64{0, 10},
		Pieces: []Linear{
			{C0: 100},
			{C0: 50},
			{C0: 0},
		},
	}
	assert.Equal(t, 100.0, p.Eval(-5))
	assert.Equal(t, 50.0, p.Eval(5))
	assert.Equal(t, 0.0, p.Eval(15))
}

func TestPiecewiseAddMergesBreakpoints(t *testing.T) {
	a := Piecewise[Linear]{Breakpoints: []float64{5}, Pieces: []Linear{{C0: 1}, {C0: 2}}}
	b := Piecewise[Linear]{Breakpoints: []float64{10}, Pieces: []Linear{{C0: 10}, {C0: 20}}}
	sum := a.Add(b)
	require.Equal(t, []float64{5, 10}, sum.Breakpoints)
	assert.Equal(t, 11.0, sum.Eval(0))
	assert.Equal(t, 12.0, sum.Eval(7))
	assert.Equal(t, 22.0, sum.Eval(20))
}

func TestPiecewisePrune(t *testing.T) {
	p := Piecewise[Linear]{
		Breakpoints: []float64{5, 10},
		Pieces:      []Linear{{C0: 1}, {C0: 2}, {C0: 3}},
	}
	pruned := p.Prune(7)
	assert.Equal(t, []float64{5}, pruned.Breakpoints)
	assert.Len(t, pruned.Pieces, 2)
	assert.Equal(t, 2.0, pruned.Eval(100))
}

func TestQuarterPillarVolumeAboveDecaysToZero(t *testing.T) {
	p := QuarterPillarVolumeAbove(geom.Point{X: 0, Y: 0, H: 4})
	assert.InDelta(t, 1.0, p.Eval(0), 1e-9)
	assert.InDelta(t, 0.0, p.Eval(4), 1e-9)
	assert.Equal(t, 0.0, p.Eval(10))
}

func TestTriangleVolumeAboveMatchesFullVolumeBelowLowestVertex(t *testing.T) {
	p1 := geom.Point{X: 0, Y: 0, H: 0}
	p2 := geom.Point{X: 1, Y: 0, H: 3}
	p3 := geom.Point{X: 0, Y: 1, H: 6}
	f := TriangleVolumeAbove(p1, p2, p3)

	area := 0.5
	avg := (0.0 + 3.0 + 6.0) / 3
	assert.InDelta(t, area*avg, f.Eval(0), 1e-9)
	assert.InDelta(t, 0.0, f.Eval(6), 1e-9)
	assert.InDelta(t, 0.0, f.Eval(100), 1e-9)
}

func TestTriangleVolumeAboveIsContinuousAtBreakpoints(t *testing.T) {
	p1 := geom.Point{X: 0, Y: 0, H: 1}
	p2 := geom.Point{X: 2, Y: 0, H: 4}
	p3 := geom.Point{X: 0, Y: 3, H: 9}
	f := TriangleVolumeAbove(p1, p2, p3)

	const eps = 1e-6
	assert.InDelta(t, f.Eval(4-eps), f.Eval(4+eps), 1e-3)
	assert.InDelta(t, f.Eval(1-eps), f.Eval(1+eps), 1e-3)
}
