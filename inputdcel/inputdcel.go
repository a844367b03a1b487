package inputdcel

import (
	"fmt"

	"github.com/riverscape/channelnet/dcel"
	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/inputgraph"
)

// VertexData carries an input graph vertex's position plus its gradient
// pairing: PairedEdge is the half-edge this vertex's gradient arrow
// points along, or dcel.InvalidHalfEdge if the vertex is a critical
// minimum.
type VertexData struct {
	P          geom.Point
	PairedEdge dcel.HalfEdgeID
}

// HalfEdgeData carries a half-edge's gradient pairing state. A half-edge
// is part of the gradient field either because it is the arrow out of
// its Origin vertex (PairedWithVertex) or because it is the arrow into
// one of its two incident faces (PairedWithFace); it is never both, and
// an edge with neither set (on both directions) is a critical saddle.
type HalfEdgeData struct {
	PairedWithVertex bool
	PairedWithFace   bool

	// HighestOfFace and SecondHighestOfFace mark this half-edge's rank
	// within its own incident face's three boundary edges, edges being
	// ordered by their higher endpoint and then their lower endpoint:
	// HighestOfFace joins the face's two highest vertices,
	// SecondHighestOfFace joins its highest and lowest vertices. Both are
	// false for the face's third edge, which misses the highest vertex.
	HighestOfFace       bool
	SecondHighestOfFace bool
}

// FaceData carries a face's gradient pairing state. PairedEdge is the
// half-edge whose gradient arrow points up into this face, or
// dcel.InvalidHalfEdge if the face is a critical maximum.
type FaceData struct {
	PairedEdge dcel.HalfEdgeID
}

// InputDcel is the planar triangulation embedded as a half-edge mesh,
// annotated with the discrete gradient field computed by Build.
type InputDcel struct {
	*dcel.Dcel[VertexData, HalfEdgeData, FaceData]
}

// Build embeds g as a closed Dcel and computes its gradient field.
func Build(g *inputgraph.InputGraph) (*InputDcel, error) {
	vertexData := make([]VertexData, g.NumVertices())
	for v := 0; v < g.NumVertices(); v++ {
		vertexData[v] = VertexData{P: g.Point(v), PairedEdge: dcel.InvalidHalfEdge}
	}

	d := dcel.NewFromTriangles[VertexData, HalfEdgeData, FaceData](
		vertexData, g.Triangles, HalfEdgeData{}, FaceData{PairedEdge: dcel.InvalidHalfEdge},
	)
	id := &InputDcel{Dcel: d}

	if err := id.markFaceOrder(); err != nil {
		return nil, err
	}
	id.pairVerticesWithEdges()
	if err := id.pairEdgesWithFaces(); err != nil {
		return nil, err
	}

	return id, nil
}

// markFaceOrder sets HighestOfFace and SecondHighestOfFace on each
// face's three boundary half-edges, ranking the edges by their higher
// endpoint and then their lower endpoint under geom.Less (the total
// order realising simulation of simplicity, so the ranking is always
// strict).
func (id *InputDcel) markFaceOrder() error {
	numFaces := id.NumFaces()
	for f := 0; f < numFaces; f++ {
		face := dcel.FaceID(f)
		var edges []dcel.HalfEdgeID
		id.ForAllFaceBoundary(face, func(h dcel.HalfEdgeID) bool {
			edges = append(edges, h)
			return true
		})
		if len(edges) != 3 {
			return fmt.Errorf("%w: face %d has %d boundary edges, want 3", ErrDegenerateSaddle, f, len(edges))
		}

		top := 0
		for i := 1; i < 3; i++ {
			if geom.Greater(id.originPoint(edges[i]), id.originPoint(edges[top])) {
				top = i
			}
		}
		// The two edges at the top vertex outrank the third; of those, the
		// one whose other endpoint is higher ranks first.
		out, in := top, (top+2)%3 // edges leaving and entering the top vertex
		highest, second := out, in
		if geom.Less(id.originPoint(edges[(top+1)%3]), id.originPoint(edges[in])) {
			highest, second = in, out
		}

		for i, h := range edges {
			data := id.HalfEdgeData(h)
			data.HighestOfFace = i == highest
			data.SecondHighestOfFace = i == second
			id.SetHalfEdgeData(h, data)
		}
	}
	return nil
}

func (id *InputDcel) originPoint(h dcel.HalfEdgeID) geom.Point {
	return id.VertexData(id.Origin(h)).P
}

// pairVerticesWithEdges matches every non-critical vertex with its
// outgoing half-edge to its lowest neighbour under geom.Less. A vertex
// with no neighbour below it has no such edge and remains a critical
// minimum.
func (id *InputDcel) pairVerticesWithEdges() {
	numVertices := id.NumVertices()
	for v := 0; v < numVertices; v++ {
		vid := dcel.VertexID(v)
		self := id.VertexData(vid)

		var steepest dcel.HalfEdgeID = dcel.InvalidHalfEdge
		id.ForAllOutgoing(vid, func(h dcel.HalfEdgeID) bool {
			dest := id.originPoint(id.Twin(h))
			if geom.Less(dest, self.P) {
				if steepest == dcel.InvalidHalfEdge || geom.Less(dest, id.originPoint(id.Twin(steepest))) {
					steepest = h
				}
			}
			return true
		})
		if steepest == dcel.InvalidHalfEdge {
			continue
		}

		self.PairedEdge = steepest
		id.SetVertexData(vid, self)

		hd := id.HalfEdgeData(steepest)
		hd.PairedWithVertex = true
		id.SetHalfEdgeData(steepest, hd)
	}
}

// pairEdgesWithFaces matches every still-unpaired edge with whichever of
// its two incident faces is not yet paired, in two passes: first using
// each face's HighestOfFace edge, then, for faces the first pass left
// unpaired, each face's SecondHighestOfFace edge. When an edge is a
// candidate for both of its incident faces, the face whose non-edge
// vertex is lower (closer to being swallowed by the gradient flow from
// below) wins the pairing.
func (id *InputDcel) pairEdgesWithFaces() error {
	if err := id.pairPass(func(hd HalfEdgeData) bool { return hd.HighestOfFace }); err != nil {
		return err
	}
	return id.pairPass(func(hd HalfEdgeData) bool { return hd.SecondHighestOfFace })
}

func (id *InputDcel) pairPass(isCandidate func(HalfEdgeData) bool) error {
	numFaces := id.NumFaces()
	for f := 0; f < numFaces; f++ {
		face := dcel.FaceID(f)
		if id.FaceData(face).PairedEdge != dcel.InvalidHalfEdge {
			continue
		}

		var h dcel.HalfEdgeID = dcel.InvalidHalfEdge
		id.ForAllFaceBoundary(face, func(e dcel.HalfEdgeID) bool {
			if isCandidate(id.HalfEdgeData(e)) {
				h = e
				return false
			}
			return true
		})
		if h == dcel.InvalidHalfEdge {
			continue
		}
		if id.HalfEdgeData(h).PairedWithVertex || id.HalfEdgeData(id.Twin(h)).PairedWithVertex {
			continue
		}

		opposite := id.Twin(h)
		oppositeFace := id.IncidentFace(opposite)

		claim := func(winner dcel.HalfEdgeID, winnerFace dcel.FaceID) {
			hd := id.HalfEdgeData(winner)
			hd.PairedWithFace = true
			id.SetHalfEdgeData(winner, hd)

			fd := id.FaceData(winnerFace)
			fd.PairedEdge = winner
			id.SetFaceData(winnerFace, fd)
		}

		if oppositeFace == dcel.InvalidFace || id.FaceData(oppositeFace).PairedEdge != dcel.InvalidHalfEdge || !isCandidate(id.HalfEdgeData(opposite)) {
			claim(h, face)
			continue
		}

		thisThird, err := id.highestVertexNotInEdge(face, h)
		if err != nil {
			return err
		}
		otherThird, err := id.highestVertexNotInEdge(oppositeFace, opposite)
		if err != nil {
			return err
		}

		if geom.LessOrEqual(thisThird, otherThird) {
			claim(h, face)
		} else {
			claim(opposite, oppositeFace)
		}
	}
	return nil
}

// highestVertexNotInEdge returns the position of face's one vertex that
// is not an endpoint of h. Since face is always a triangle and h is one
// of its boundary edges, exactly one such vertex exists.
func (id *InputDcel) highestVertexNotInEdge(face dcel.FaceID, h dcel.HalfEdgeID) (geom.Point, error) {
	a, b := id.Origin(h), id.Destination(h)

	var third geom.Point
	found := false
	var err error
	id.ForAllFaceBoundary(face, func(e dcel.HalfEdgeID) bool {
		v := id.Origin(e)
		if v == a || v == b {
			return true
		}
		if found {
			err = fmt.Errorf("%w: face has more than one vertex outside edge", ErrDegenerateSaddle)
			return false
		}
		third = id.VertexData(v).P
		found = true
		return true
	})
	if err != nil {
		return geom.Point{}, err
	}
	if !found {
		return geom.Point{}, fmt.Errorf("%w: face has no vertex outside edge", ErrDegenerateSaddle)
	}
	return third, nil
}

// IsCriticalVertex reports whether v is a local minimum: unpaired with
// any descending edge.
func (id *InputDcel) IsCriticalVertex(v dcel.VertexID) bool {
	return id.VertexData(v).PairedEdge == dcel.InvalidHalfEdge
}

// IsCriticalFace reports whether f is a local maximum: unpaired with any
// edge below it.
func (id *InputDcel) IsCriticalFace(f dcel.FaceID) bool {
	return id.FaceData(f).PairedEdge == dcel.InvalidHalfEdge
}

// IsCriticalEdge reports whether the undirected edge represented by h is
// a saddle: paired with neither a vertex nor a face in either direction.
func (id *InputDcel) IsCriticalEdge(h dcel.HalfEdgeID) bool {
	hd, td := id.HalfEdgeData(h), id.HalfEdgeData(id.Twin(h))
	return !hd.PairedWithVertex && !hd.PairedWithFace && !td.PairedWithVertex && !td.PairedWithFace
}

// GradientPath follows the gradient field downhill from v until it
// reaches a critical (minimum) vertex, returning the full sequence of
// vertices visited, starting with v.
func (id *InputDcel) GradientPath(v dcel.VertexID) []dcel.VertexID {
	path := []dcel.VertexID{v}
	for {
		cur := path[len(path)-1]
		data := id.VertexData(cur)
		if data.PairedEdge == dcel.InvalidHalfEdge {
			return path
		}
		next := id.Destination(data.PairedEdge)
		path = append(path, next)
	}
}
