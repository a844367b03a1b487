package inputgraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/heightmap"
	"github.com/riverscape/channelnet/units"
)

// InputGraph is the planar triangulation of a HeightMap's bounded
// region, closed into a complex without boundary by three virtual
// vertices. Each vertex's neighbour list is sorted by steepness,
// steepest descent first, ties broken by neighbour index.
type InputGraph struct {
	Vertices  []geom.Point
	adjacency [][]int

	// Triangles lists every face of the triangulation as three vertex
	// indices in a consistent counter-clockwise order, ready for
	// dcel.NewFromTriangles.
	Triangles [][3]int

	GlobalSource  int
	GlobalSink    int
	GlobalMaximum int
}

// NumVertices returns the total vertex count, including the three
// virtual vertices.
func (g *InputGraph) NumVertices() int { return len(g.Vertices) }

// Point returns the position of vertex v.
func (g *InputGraph) Point(v int) geom.Point { return g.Vertices[v] }

// Neighbors returns v's neighbours, ordered steepest-descent first.
func (g *InputGraph) Neighbors(v int) []int { return g.adjacency[v] }

// IsAscending reports whether the edge from to lies strictly uphill.
func (g *InputGraph) IsAscending(from, to int) bool {
	return geom.Greater(g.Vertices[to], g.Vertices[from])
}

// SteepestDescentFrom returns the first downhill neighbour of v in
// steepness order, and false if v has none (i.e. v is a local minimum).
func (g *InputGraph) SteepestDescentFrom(v int) (int, bool) {
	for _, n := range g.adjacency[v] {
		if geom.Less(g.Vertices[n], g.Vertices[v]) {
			return n, true
		}
	}
	return -1, false
}

// BuildInputGraph triangulates the interior of boundary over hm,
// producing one vertex per enclosed grid cell plus the three virtual
// vertices that close the complex. scale is used only to weight edge
// steepness by real-world distance, so an anisotropic grid resolution
// does not bias which neighbour counts as "steepest".
func BuildInputGraph(hm *heightmap.HeightMap, boundary heightmap.Boundary, scale units.Scale) (*InputGraph, error) {
	rb := heightmap.Boundary{
		Source: boundary.Source.Rasterize().RemoveSpikes(),
		Top:    boundary.Top.Rasterize().RemoveSpikes(),
		Sink:   boundary.Sink.Rasterize().RemoveSpikes(),
		Bottom: boundary.Bottom.Rasterize().RemoveSpikes(),
	}
	if err := rb.EnsureConnection(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBoundary, err)
	}

	region, boundarySet := regionMask(hm, rb)

	index := make(map[geom.Coordinate]int)
	var vertices []geom.Point
	for y := 0; y < hm.Height(); y++ {
		for x := 0; x < hm.Width(); x++ {
			c := geom.Coordinate{X: x, Y: y}
			if !region[c] {
				continue
			}
			index[c] = len(vertices)
			vertices = append(vertices, hm.PointAt(x, y))
		}
	}
	if len(vertices) == 0 {
		return nil, ErrDegenerateRegion
	}
	for c := range boundarySet {
		if _, ok := index[c]; !ok {
			return nil, ErrDegenerateRegion
		}
	}
	for c, ok := range region {
		if ok && math.IsNaN(hm.ElevationAt(c.X, c.Y)) {
			return nil, ErrNodataInRegion
		}
	}

	edges := make([][]int, len(vertices))
	addEdge := func(a, b int) {
		edges[a] = append(edges[a], b)
		edges[b] = append(edges[b], a)
	}

	for y := 0; y < hm.Height(); y++ {
		for x := 0; x < hm.Width(); x++ {
			c := geom.Coordinate{X: x, Y: y}
			a, ok := index[c]
			if !ok {
				continue
			}
			if right, ok2 := index[geom.Coordinate{X: x + 1, Y: y}]; ok2 {
				addEdge(a, right)
			}
			if down, ok2 := index[geom.Coordinate{X: x, Y: y + 1}]; ok2 {
				addEdge(a, down)
			}
		}
	}
	// Triangulate each fully-enclosed 2x2 block along its tl-br diagonal.
	// Using the same diagonal orientation for every block (rather than
	// alternating) is what keeps every shared edge traversed in opposite
	// directions by its two triangles, which NewFromTriangles relies on
	// to find twins.
	var triangles [][3]int
	for y := 0; y < hm.Height()-1; y++ {
		for x := 0; x < hm.Width()-1; x++ {
			tl, okTL := index[geom.Coordinate{X: x, Y: y}]
			tr, okTR := index[geom.Coordinate{X: x + 1, Y: y}]
			bl, okBL := index[geom.Coordinate{X: x, Y: y + 1}]
			br, okBR := index[geom.Coordinate{X: x + 1, Y: y + 1}]
			if !okTL || !okTR || !okBL || !okBR {
				continue
			}
			addEdge(tl, br)
			triangles = append(triangles, [3]int{tl, tr, br}, [3]int{tl, br, bl})
		}
	}

	width, height := hm.Width(), hm.Height()
	sourceIdx := len(vertices)
	vertices = append(vertices, geom.Point{X: -1, Y: float64(height) / 2, H: math.Inf(-1)})
	sinkIdx := len(vertices)
	vertices = append(vertices, geom.Point{X: float64(width), Y: float64(height) / 2, H: math.Inf(-1)})
	maxIdx := len(vertices)
	vertices = append(vertices, geom.Point{X: float64(width) / 2, Y: -1, H: math.Inf(1)})
	edges = append(edges, nil, nil, nil)

	attach := func(virtual int, path heightmap.Path) {
		var prev int
		havePrev := false
		for _, c := range path.Points {
			v, ok := index[c]
			if !ok {
				continue
			}
			addEdge(virtual, v)
			if havePrev && prev != v {
				triangles = append(triangles, [3]int{virtual, prev, v})
			}
			prev, havePrev = v, true
		}
	}
	attach(sourceIdx, rb.Source)
	attach(sinkIdx, rb.Sink)
	attach(maxIdx, rb.Top)
	attach(maxIdx, rb.Bottom)
	// Close the surface at the four leg junctions: each junction gets one
	// triangle joining the two virtual vertices of the legs that meet
	// there, oriented like the fans above.
	addEdge(sourceIdx, maxIdx)
	addEdge(sinkIdx, maxIdx)
	triangles = append(triangles,
		[3]int{sourceIdx, index[rb.Source.End()], maxIdx},
		[3]int{maxIdx, index[rb.Sink.Start()], sinkIdx},
		[3]int{sinkIdx, index[rb.Sink.End()], maxIdx},
		[3]int{maxIdx, index[rb.Source.Start()], sourceIdx},
	)

	g := &InputGraph{
		Vertices:      vertices,
		adjacency:     edges,
		Triangles:     triangles,
		GlobalSource:  sourceIdx,
		GlobalSink:    sinkIdx,
		GlobalMaximum: maxIdx,
	}
	g.sortAdjacency(scale)

	return g, nil
}

// sortAdjacency orders every vertex's neighbour list by steepness,
// steepest descent first, breaking ties by neighbour index.
func (g *InputGraph) sortAdjacency(scale units.Scale) {
	for v, neighbors := range g.adjacency {
		dedup := dedupeInts(neighbors)
		self := g.Vertices[v]
		sort.Slice(dedup, func(i, j int) bool {
			si := steepness(self, g.Vertices[dedup[i]], scale)
			sj := steepness(self, g.Vertices[dedup[j]], scale)
			if si != sj {
				return si > sj
			}
			return dedup[i] < dedup[j]
		})
		g.adjacency[v] = dedup
	}
}

// steepness returns the downhill slope from self to other: positive
// when other is lower, negative when other is higher, scaled by the
// real-world distance between them.
func steepness(self, other geom.Point, scale units.Scale) float64 {
	d := scale.Length(self.X-other.X, self.Y-other.Y)
	if d == 0 {
		return 0
	}
	return (self.H - other.H) / d
}

func dedupeInts(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	out := xs[:0:0]
	for _, x := range xs {
		if seen[x] {
			continue
		}
		seen[x] = true
		out = append(out, x)
	}
	return out
}

// regionMask classifies every grid cell as enclosed by boundary (via an
// even-odd point-in-polygon test against the boundary's rasterised
// loop) or lying on the boundary itself, and returns both sets.
func regionMask(hm *heightmap.HeightMap, b heightmap.Boundary) (map[geom.Coordinate]bool, map[geom.Coordinate]bool) {
	loop := append([]geom.Coordinate{}, b.Source.Points...)
	loop = append(loop, b.Top.Points[1:]...)
	loop = append(loop, b.Sink.Points[1:]...)
	loop = append(loop, b.Bottom.Points[1:]...)

	boundarySet := make(map[geom.Coordinate]bool, len(loop))
	for _, c := range loop {
		boundarySet[c] = true
	}

	region := make(map[geom.Coordinate]bool)
	for c := range boundarySet {
		region[c] = true
	}
	for y := 0; y < hm.Height(); y++ {
		for x := 0; x < hm.Width(); x++ {
			c := geom.Coordinate{X: x, Y: y}
			if boundarySet[c] {
				continue
			}
			if pointInPolygon(loop, float64(x)+0.5, float64(y)+0.5) {
				region[c] = true
			}
		}
	}

	return region, boundarySet
}

// pointInPolygon reports whether (x, y) lies inside the closed polygon
// described by vertices, via even-odd ray casting.
func pointInPolygon(vertices []geom.Coordinate, x, y float64) bool {
	inside := false
	n := len(vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := float64(vertices[i].X), float64(vertices[i].Y)
		xj, yj := float64(vertices[j].X), float64(vertices[j].Y)
		if (yi > y) != (yj > y) {
			xIntersect := xi + (y-yi)/(yj-yi)*(xj-xi)
			if x < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}
