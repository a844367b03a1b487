package geom

import (
	"fmt"
	"math"
)

// Coordinate is an integer grid position within a HeightMap.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// MidpointBetween returns the midpoint of two coordinates, rounded toward
// negative infinity on each axis (matching integer division truncation of
// the original rasterisation routine).
func MidpointBetween(a, b Coordinate) Coordinate {
	return Coordinate{X: floorDiv(a.X+b.X, 2), Y: floorDiv(a.Y+b.Y, 2)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// SquaredDistanceTo returns the squared Euclidean distance to other.
func (c Coordinate) SquaredDistanceTo(other Coordinate) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

// Point is a real-valued position with an elevation. Its total order
// (see Less) realises simulation of simplicity: ties in height are broken
// by x then y, so no two distinct grid positions ever compare equal.
type Point struct {
	X, Y, H float64
}

// String renders the point as "(x, y, h)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.H)
}

// SamePosition reports whether p and q share an (x, y) position,
// disregarding height. This mirrors the original tool's operator== on
// Point, which intentionally ignores h.
func (p Point) SamePosition(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add returns the coordinate-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, H: p.H + q.H}
}

// Sub returns the coordinate-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, H: p.H - q.H}
}

// Scale returns p scaled component-wise by factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor, H: p.H * factor}
}

// DistanceTo returns the Euclidean distance between p and q in the (x, y)
// plane.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// InBounds reports whether p's (x, y) position lies within a width x
// height grid.
func (p Point) InBounds(width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(width) && p.Y < float64(height)
}

// orderingHeight returns h, with NaN mapped to +Inf so nodata-derived
// points sort as the highest possible value rather than comparing false
// to everything.
func orderingHeight(h float64) float64 {
	if math.IsNaN(h) {
		return math.Inf(1)
	}
	return h
}

// Less implements the total order used throughout the pipeline to realise
// simulation of simplicity: lexicographic by height, then x, then y.
func Less(p, q Point) bool {
	a, b := orderingHeight(p.H), orderingHeight(q.H)
	if a != b {
		return a < b
	}
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Greater reports whether p sorts strictly after q under Less.
func Greater(p, q Point) bool {
	return Less(q, p)
}

// LessOrEqual reports whether p does not sort strictly after q under Less.
func LessOrEqual(p, q Point) bool {
	return !Greater(p, q)
}

// GreaterOrEqual reports whether p does not sort strictly before q under
// Less.
func GreaterOrEqual(p, q Point) bool {
	return !Less(p, q)
}
