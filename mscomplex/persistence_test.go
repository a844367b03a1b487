package mscomplex

import (
	"math"
	"testing"

	"github.com/riverscape/channelnet/dcel"
	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/piecewise"
	"github.com/stretchr/testify/assert"
)

// Hand-built two-cell complex: one saddle at height 5 separating a small
// constant-volume cell (2) from a larger cell with a volume function that
// only the merge's prune should hide once the saddle is collapsed.
func twoCellComplex() *MsComplex {
	smallFace := &Face{Faces: []dcel.FaceID{0}, mergedInto: -1,
		VolumeAbove: piecewise.NewConstant(piecewise.Cubic{C0: 2})}
	largeFace := &Face{Faces: []dcel.FaceID{1}, mergedInto: -1,
		VolumeAbove: piecewise.Piecewise[piecewise.Cubic]{
			Breakpoints: []float64{20},
			Pieces:      []piecewise.Cubic{{C0: 10}, {C0: 999}},
		}}

	saddle := Vertex{P: geom.Point{X: 0, Y: 0, H: 5}, Type: Saddle, InputFaceA: 0, InputFaceB: 1}
	minA := Vertex{P: geom.Point{X: -1, Y: 0, H: 0}, Type: Minimum}
	minB := Vertex{P: geom.Point{X: 1, Y: 0, H: 0}, Type: Minimum}

	edgeToA := &Edge{Saddle: 0, Minimum: 1}
	edgeToB := &Edge{Saddle: 0, Minimum: 2}

	return &MsComplex{
		Vertices:        []Vertex{saddle, minA, minB},
		Edges:           []*Edge{edgeToA, edgeToB},
		Faces:           []*Face{smallFace, largeFace},
		faceOfInputFace: map[dcel.FaceID]int{0: 0, 1: 1},
	}
}

func TestSimplifyMergesIntoLargerFaceAndPrunesAtSaddleHeight(t *testing.T) {
	msc := twoCellComplex()
	msc.Simplify()

	assert.Equal(t, 1, msc.Faces[0].mergedInto)
	assert.Equal(t, -1, msc.Faces[1].mergedInto)

	// The merged volume is pruned at the saddle height (5), so the
	// surviving face no longer sees the losing face's breakpoint at 20:
	// without Prune, Eval(1000) would be 999+2=1001.
	assert.Empty(t, msc.Faces[1].VolumeAbove.Breakpoints)
	assert.InDelta(t, 12, msc.Faces[1].VolumeAbove.Eval(1000), 1e-9)
}

func TestSimplifyCascadesDegreeOneMinimumEdgesToZero(t *testing.T) {
	msc := twoCellComplex()
	msc.Simplify()

	// Both minima are reached by exactly one edge each (degree 1), so
	// the monotonicity cleanup drives their shared saddle's delta down
	// to zero, regardless of the 2-vs-10 volume significance computed
	// on the first pass.
	for _, e := range msc.Edges {
		assert.Equal(t, 0.0, e.Delta)
	}
}

func TestSimplifySkipsMergeForSameFaceSaddleButRecordsFiniteDelta(t *testing.T) {
	msc := twoCellComplex()
	// Collapse both input faces onto the same cell up front, as if an
	// earlier saddle had already merged them: the new saddle closes a
	// cycle within one basin rather than joining two different ones.
	msc.faceOfInputFace[1] = 0

	msc.Simplify()

	assert.Equal(t, -1, msc.Faces[0].mergedInto)
	assert.Equal(t, -1, msc.Faces[1].mergedInto)
	for _, e := range msc.Edges {
		assert.False(t, math.IsInf(e.Delta, 1))
	}
}

// threeCellChain builds low/mid/high cells joined by two saddles of
// different heights, with no Minimum-type vertices at all so the
// monotonicity cleanup (which then sees only the two saddles, each with
// two equal deltas) never touches the deltas computed by the main
// collapse loop — isolating exactly the saddle-processing order under
// test.
func threeCellChain() *MsComplex {
	low := &Face{Faces: []dcel.FaceID{0}, mergedInto: -1,
		VolumeAbove: piecewise.NewConstant(piecewise.Cubic{C0: 1})}
	mid := &Face{Faces: []dcel.FaceID{1}, mergedInto: -1,
		VolumeAbove: piecewise.NewConstant(piecewise.Cubic{C0: 5})}
	high := &Face{Faces: []dcel.FaceID{2}, mergedInto: -1,
		VolumeAbove: piecewise.NewConstant(piecewise.Cubic{C0: 50})}

	saddleLow := Vertex{P: geom.Point{H: 2}, Type: Saddle, InputFaceA: 0, InputFaceB: 1}
	saddleHigh := Vertex{P: geom.Point{H: 8}, Type: Saddle, InputFaceA: 1, InputFaceB: 2}

	return &MsComplex{
		Vertices: []Vertex{saddleLow, saddleHigh},
		Edges: []*Edge{
			{Saddle: 0, Minimum: 100},
			{Saddle: 0, Minimum: 101},
			{Saddle: 1, Minimum: 102},
			{Saddle: 1, Minimum: 103},
		},
		Faces:           []*Face{low, mid, high},
		faceOfInputFace: map[dcel.FaceID]int{0: 0, 1: 1, 2: 2},
	}
}

func TestSaddleSignificanceReflectsPriorMergesOfSmallerCells(t *testing.T) {
	msc := threeCellChain()

	// Process high to low, as Simplify does: saddleHigh (height 8) is
	// evaluated and merged before saddleLow touches the mid cell.
	sigHigh, faceA, faceB, distinct := msc.saddleSignificance(1)
	assert.True(t, distinct)
	assert.InDelta(t, 5, sigHigh, 1e-9) // min(mid=5, high=50)
	msc.mergeFaces(1, faceA, faceB)

	sigLow, _, _, distinct := msc.saddleSignificance(0)
	assert.True(t, distinct)
	assert.InDelta(t, 1, sigLow, 1e-9) // min(low=1, merged mid+high=55)
}

func TestSaddleSignificanceWouldBeWrongIfProcessedLowToHigh(t *testing.T) {
	msc := threeCellChain()

	// Process low to high instead: saddleLow merges low into mid first,
	// inflating mid's volume before saddleHigh ever queries it.
	sigLow, faceA, faceB, distinct := msc.saddleSignificance(0)
	assert.InDelta(t, 1, sigLow, 1e-9)
	msc.mergeFaces(0, faceA, faceB)

	sigHigh, _, _, distinct := msc.saddleSignificance(1)
	assert.True(t, distinct)
	// Wrong: the mid cell now reports 1+5=6, not its own height-8 value
	// of 5, because saddleLow's merge already folded low's volume in.
	assert.InDelta(t, 6, sigHigh, 1e-9)
}

func TestSimplifyOrdersSaddlesHighToLow(t *testing.T) {
	msc := threeCellChain()
	msc.Simplify()

	var highDelta, lowDelta float64
	for _, e := range msc.Edges {
		switch e.Saddle {
		case 1:
			highDelta = e.Delta
		case 0:
			lowDelta = e.Delta
		}
	}

	assert.InDelta(t, 5, highDelta, 1e-9)
	assert.InDelta(t, 1, lowDelta, 1e-9)
}
