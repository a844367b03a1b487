package heightmap

import (
	"math"

	"github.com/riverscape/channelnet/geom"
)

// HeightMap is a row-major grid of elevations. Nodata cells carry NaN,
// propagated through every query so that a caller indexing outside the
// surveyed region gets a value that consistently sorts as "highest" via
// geom.Less rather than comparing equal to real data.
type HeightMap struct {
	width, height int
	data           []float64 // data[width*y+x]
}

// New constructs a HeightMap of the given dimensions from a flat,
// row-major elevation slice. Returns ErrEmptyGrid if width or height is
// not positive, or ErrDataLength if len(data) != width*height.
func New(width, height int, data []float64) (*HeightMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(data) != width*height {
		return nil, ErrDataLength
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &HeightMap{width: width, height: height, data: cp}, nil
}

// Width returns the grid's column count.
func (hm *HeightMap) Width() int { return hm.width }

// Height returns the grid's row count.
func (hm *HeightMap) Height() int { return hm.height }

func (hm *HeightMap) index(x, y int) int { return hm.width*y + x }

// InBounds reports whether (x, y) lies within the grid.
func (hm *HeightMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < hm.width && y < hm.height
}

// ClampToBounds returns c with each coordinate clamped into [0, width)
// and [0, height) respectively.
func (hm *HeightMap) ClampToBounds(c geom.Coordinate) geom.Coordinate {
	x, y := c.X, c.Y
	if x < 0 {
		x = 0
	} else if x >= hm.width {
		x = hm.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= hm.height {
		y = hm.height - 1
	}
	return geom.Coordinate{X: x, Y: y}
}

// ElevationAt returns the elevation at (x, y), or NaN if out of bounds.
func (hm *HeightMap) ElevationAt(x, y int) float64 {
	if !hm.InBounds(x, y) {
		return math.NaN()
	}
	return hm.data[hm.index(x, y)]
}

// SetElevationAt sets the elevation at (x, y). Returns ErrOutOfBounds if
// the coordinate lies outside the grid.
func (hm *HeightMap) SetElevationAt(x, y int, elevation float64) error {
	if !hm.InBounds(x, y) {
		return ErrOutOfBounds
	}
	hm.data[hm.index(x, y)] = elevation
	return nil
}

// PointAt returns the (x, y, elevation) Point at the given grid cell.
func (hm *HeightMap) PointAt(x, y int) geom.Point {
	return geom.Point{X: float64(x), Y: float64(y), H: hm.ElevationAt(x, y)}
}

// MinimumElevation returns the lowest non-nodata elevation in the grid,
// and false if every cell is nodata.
func (hm *HeightMap) MinimumElevation() (float64, bool) {
	min := math.Inf(1)
	found := false
	for _, v := range hm.data {
		if math.IsNaN(v) {
			continue
		}
		found = true
		if v < min {
			min = v
		}
	}
	return min, found
}

// MaximumElevation returns the highest non-nodata elevation in the grid,
// and false if every cell is nodata.
func (hm *HeightMap) MaximumElevation() (float64, bool) {
	max := math.Inf(-1)
	found := false
	for _, v := range hm.data {
		if math.IsNaN(v) {
			continue
		}
		found = true
		if v > max {
			max = v
		}
	}
	return max, found
}

// TopLeft, TopRight, BottomLeft and BottomRight return the grid's corner
// coordinates.
func (hm *HeightMap) TopLeft() geom.Coordinate     { return geom.Coordinate{X: 0, Y: 0} }
func (hm *HeightMap) TopRight() geom.Coordinate    { return geom.Coordinate{X: hm.width - 1, Y: 0} }
func (hm *HeightMap) BottomLeft() geom.Coordinate  { return geom.Coordinate{X: 0, Y: hm.height - 1} }
func (hm *HeightMap) BottomRight() geom.Coordinate {
	return geom.Coordinate{X: hm.width - 1, Y: hm.height - 1}
}
