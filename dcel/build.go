package dcel

// NewFromTriangles builds a closed (boundaryless) Dcel from a vertex
// data slice and a list of consistently counter-clockwise-oriented
// triangles, each given as three indices into vertexData. Every
// half-edge is expected to be used by exactly one triangle in each
// direction (the triangle soup must already form a closed surface, as
// the input triangulation does once its virtual vertices close it into
// a topological sphere); AddFaces is called internally, so every
// triangle becomes its own face with no outer unbounded region.
func NewFromTriangles[V any, H any, F any](vertexData []V, triangles [][3]int, zeroHalfEdge H, zeroFace F) *Dcel[V, H, F] {
	d := New[V, H, F]()
	for _, vd := range vertexData {
		d.AddVertex(vd)
	}

	type directed struct{ from, to VertexID }
	known := make(map[directed]HalfEdgeID, len(triangles)*3)

	edgeID := func(a, b VertexID) HalfEdgeID {
		if id, ok := known[directed{a, b}]; ok {
			return id
		}
		ab, ba := d.AddHalfEdgePair(a, b, zeroHalfEdge, zeroHalfEdge)
		known[directed{a, b}] = ab
		known[directed{b, a}] = ba
		return ab
	}

	for _, tri := range triangles {
		a, b, c := VertexID(tri[0]), VertexID(tri[1]), VertexID(tri[2])
		hab := edgeID(a, b)
		hbc := edgeID(b, c)
		hca := edgeID(c, a)
		d.SetNext(hab, hbc)
		d.SetNext(hbc, hca)
		d.SetNext(hca, hab)
	}

	d.AddFaces(InvalidHalfEdge, zeroFace)

	return d
}
