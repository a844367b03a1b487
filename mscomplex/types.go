package mscomplex

import (
	"github.com/riverscape/channelnet/dcel"
	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/piecewise"
)

// VertexType distinguishes the two kinds of critical vertex carried by an
// MsComplex vertex.
type VertexType int

const (
	// Minimum is a local minimum of the input graph: a 0-cell.
	Minimum VertexType = iota
	// Saddle is a saddle of the input graph: a 1-cell.
	Saddle
)

// String renders the vertex type's name.
func (t VertexType) String() string {
	switch t {
	case Minimum:
		return "minimum"
	case Saddle:
		return "saddle"
	default:
		return "unknown"
	}
}

// Vertex is a critical point of the input graph, carried as a vertex of
// the Morse-Smale complex.
type Vertex struct {
	P    geom.Point
	Type VertexType

	// InputVertex identifies the underlying input-graph vertex when
	// Type == Minimum.
	InputVertex dcel.VertexID
	// InputEdge identifies the underlying input-graph half-edge (either
	// direction) when Type == Saddle.
	InputEdge dcel.HalfEdgeID

	// InputFaceA and InputFaceB are InputEdge's two incident faces, set
	// only when Type == Saddle.
	InputFaceA, InputFaceB dcel.FaceID
}

// Edge is a directed Morse-Smale edge from a saddle to one of the two
// minima its descending paths reach, or its reverse.
type Edge struct {
	Saddle  int // index into MsComplex.Vertices
	Minimum int // index into MsComplex.Vertices

	// DcelPath is the chain of input-graph vertices walked from the
	// saddle's endpoint down to Minimum, steepest descent first.
	DcelPath []dcel.VertexID

	// Delta is the persistence value assigned by Simplify: the network
	// for any threshold t keeps this edge only while Delta > t.
	Delta float64
}

// Face is one descending cell of the complex: the set of input-graph
// faces whose ascending gradient flow reaches a single maximum, together
// with the combined sand function over that area.
type Face struct {
	Maximum dcel.FaceID
	Faces   []dcel.FaceID

	VolumeAbove piecewise.Piecewise[piecewise.Cubic]

	// mergedInto is non-negative once this face has been absorbed by
	// Simplify into another face, at which point this face's own state
	// is stale and callers should follow the chain to mergedInto.
	mergedInto int
}

// MsComplex is the descending Morse-Smale complex built from an
// inputdcel.InputDcel's gradient field.
type MsComplex struct {
	Vertices []Vertex
	Edges    []*Edge
	Faces    []*Face

	// faceOfInputFace maps every input-graph face to the index (into
	// Faces) of the descending cell it belongs to.
	faceOfInputFace map[dcel.FaceID]int
}

// FaceContaining returns the index into Faces of the descending cell
// that input-graph face f belongs to, following merges recorded by
// Simplify.
func (m *MsComplex) FaceContaining(f dcel.FaceID) int {
	idx := m.faceOfInputFace[f]
	for m.Faces[idx].mergedInto >= 0 {
		idx = m.Faces[idx].mergedInto
	}
	return idx
}
