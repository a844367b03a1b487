package piecewise

import (
	"math"
	"sort"

	"github.com/riverscape/channelnet/geom"
)

func triangleArea(p1, p2, p3 geom.Point) float64 {
	return math.Abs((p2.X-p1.X)*(p3.Y-p1.Y)-(p3.X-p1.X)*(p2.Y-p1.Y)) / 2
}

// TriangleVolumeAbove returns the piecewise-cubic function giving, for any
// height h, the volume of the solid bounded below by the plane z = h and
// above by the plane through p1, p2 and p3, integrated over the part of
// the triangle's footprint where that plane lies above h. This is the
// fundamental building block from which
// a Morse cell's sand function is assembled: the cell's volume-above
// function is the sum of its triangles' functions, merged via Add.
//
// The function has three bands, split at the triangle's three vertex
// heights once sorted ascending (h1 <= h2 <= h3):
//
//   - h <= h1: the whole footprint lies above h; volume decreases
//     linearly as h rises.
//   - h1 <= h <= h2: a corner near the lowest vertex has submerged below
//     h. That corner scales as the product of two edge parameters, so
//     its contribution to volume is cubic in h.
//   - h2 <= h <= h3: only a corner near the highest vertex remains
//     above h, again scaling cubically.
//   - h >= h3: nothing remains above h.
func TriangleVolumeAbove(p1, p2, p3 geom.Point) Piecewise[Cubic] {
	pts := []geom.Point{p1, p2, p3}
	sort.Slice(pts, func(i, j int) bool { return geom.Less(pts[i], pts[j]) })
	lo, mid, hi := pts[0], pts[1], pts[2]
	h1, h2, h3 := lo.H, mid.H, hi.H
	area := triangleArea(p1, p2, p3)

	v0 := area * (h1 + h2 + h3) / 3
	below := Cubic{C0: v0, C1: -area}

	var middleLow Cubic
	if h2 > h1 {
		k := area / (3 * (h2 - h1) * (h3 - h1))
		// k*(h-h1)^3 expanded, added to the full-triangle linear term.
		middleLow = Cubic{
			C0: v0 - k*h1*h1*h1,
			C1: -area + 3*k*h1*h1,
			C2: -3 * k * h1,
			C3: k,
		}
	} else {
		middleLow = below
	}

	var middleHigh Cubic
	if h3 > h2 {
		k := area / (3 * (h3 - h1) * (h3 - h2))
		// k*(h3-h)^3 expanded: the volume remaining above h is exactly the
		// submerged-corner term near the highest vertex.
		middleHigh = Cubic{
			C0: k * h3 * h3 * h3,
			C1: -3 * k * h3 * h3,
			C2: 3 * k * h3,
			C3: -k,
		}
	}

	return Piecewise[Cubic]{
		Breakpoints: []float64{h1, h2, h3},
		Pieces:      []Cubic{below, middleLow, middleHigh, {}},
	}
}

// QuarterPillarVolumeAbove returns the piecewise-linear volume-above
// contribution of a single vertex, used when assembling a Morse cell's
// sand function from the vertices of its boundary triangles rather than
// from whole triangles. Each vertex contributes a quarter of a unit
// pillar standing at its own height: 0.25*(p.H - h) below p.H, and zero
// above it.
func QuarterPillarVolumeAbove(p geom.Point) Piecewise[Linear] {
	return Piecewise[Linear]{
		Breakpoints: []float64{p.H},
		Pieces:      []Linear{{C0: 0.25 * p.H, C1: -0.25}, {}},
	}
}
