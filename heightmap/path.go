package heightmap

import (
	"github.com/riverscape/channelnet/geom"
)

// Path is an ordered sequence of grid coordinates describing a polyline,
// used both as one leg of a Boundary and as an intermediate
// representation when deriving a boundary from a coarser input polygon.
type Path struct {
	Points []geom.Coordinate
}

// NewPath returns a Path over the given points, copying the slice.
func NewPath(points []geom.Coordinate) Path {
	cp := make([]geom.Coordinate, len(points))
	copy(cp, points)
	return Path{Points: cp}
}

// Start returns the path's first point. Panics if the path is empty.
func (p Path) Start() geom.Coordinate { return p.Points[0] }

// End returns the path's last point. Panics if the path is empty.
func (p Path) End() geom.Coordinate { return p.Points[len(p.Points)-1] }

// AddPoint appends c to the path.
func (p *Path) AddPoint(c geom.Coordinate) {
	p.Points = append(p.Points, c)
}

// Append concatenates other's points onto p.
func (p *Path) Append(other Path) {
	p.Points = append(p.Points, other.Points...)
}

// Length returns the path's point count.
func (p Path) Length() int { return len(p.Points) }

// IsValid reports whether every consecutive pair of points is a grid
// step of at most unit distance in each axis (8-connected adjacency),
// which is the invariant Rasterize establishes.
func (p Path) IsValid() bool {
	if len(p.Points) == 0 {
		return false
	}
	for i := 1; i < len(p.Points); i++ {
		if p.Points[i-1].SquaredDistanceTo(p.Points[i]) > 2 {
			return false
		}
	}
	return true
}

// Rasterize returns a copy of p where every consecutive pair of points
// has been subdivided, by repeated midpoint bisection, until each step
// is an 8-connected grid move (squared distance at most 2). This mirrors
// the original tool's handling of coarse boundary polygons supplied at a
// resolution lower than the heightmap grid.
func (p Path) Rasterize() Path {
	if len(p.Points) == 0 {
		return Path{}
	}
	out := Path{Points: []geom.Coordinate{p.Points[0]}}
	for i := 1; i < len(p.Points); i++ {
		appendRasterizedEdge(p.Points[i-1], p.Points[i], &out)
	}
	return out
}

func appendRasterizedEdge(from, to geom.Coordinate, out *Path) {
	if from.SquaredDistanceTo(to) <= 2 {
		out.AddPoint(to)
		return
	}
	mid := geom.MidpointBetween(from, to)
	if mid == from || mid == to {
		// Degenerate bisection (can occur for a one-cell-wide step); emit
		// the endpoint directly rather than recursing forever.
		out.AddPoint(to)
		return
	}
	appendRasterizedEdge(from, mid, out)
	appendRasterizedEdge(mid, to, out)
}

// RemoveSpikes repeatedly strips degenerate back-and-forth moves from p:
// immediate duplicates (A, A) and one-step spikes (B, A, B), until a full
// pass makes no further change. These arise from rasterising a polygon
// whose edges double back on themselves at grid resolution.
func (p Path) RemoveSpikes() Path {
	points := append([]geom.Coordinate(nil), p.Points...)
	for {
		changed := false
		out := points[:0:0]
		for i := 0; i < len(points); i++ {
			if len(out) > 0 && out[len(out)-1] == points[i] {
				changed = true
				continue
			}
			if len(out) > 1 && out[len(out)-2] == points[i] {
				out = out[:len(out)-1]
				changed = true
				continue
			}
			out = append(out, points[i])
		}
		points = out
		if !changed {
			break
		}
	}
	return Path{Points: points}
}

// ClosestTo returns the index of the point in p closest (by squared
// distance) to target among those for which accept returns true, and
// whether any point was accepted.
func (p Path) ClosestTo(target geom.Coordinate, accept func(geom.Coordinate) bool) (int, bool) {
	best := -1
	bestDist := -1
	for i, c := range p.Points {
		if accept != nil && !accept(c) {
			continue
		}
		d := c.SquaredDistanceTo(target)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best != -1
}
