package units

import "math"

// Scale carries a HeightMap's per-axis cell resolution: the real-world
// distance, in metres, spanned by one grid step along x and along y.
// DEMs resampled from differently-surveyed sources commonly have
// unequal XResolution and YResolution.
type Scale struct {
	XResolution float64
	YResolution float64
}

// Unit is the resolution-1 scale, used when a caller works directly in
// grid coordinates and wants conversions to be no-ops.
var Unit = Scale{XResolution: 1, YResolution: 1}

// Length returns the real-world distance of a grid-relative step of
// (dx, dy) cells.
func (s Scale) Length(dx, dy float64) float64 {
	rx := dx * s.XResolution
	ry := dy * s.YResolution
	return math.Sqrt(rx*rx + ry*ry)
}

// CellArea returns the real-world footprint area, in square metres, of a
// single grid cell.
func (s Scale) CellArea() float64 {
	return s.XResolution * s.YResolution
}

// Area converts a grid-relative area (measured in units of one cell's
// footprint) to real-world square metres.
func (s Scale) Area(gridArea float64) float64 {
	return gridArea * s.CellArea()
}

// Volume converts a grid-relative volume (a height measured in the
// heightmap's own elevation units, integrated over a footprint measured
// in cells) to real-world cubic metres.
func (s Scale) Volume(gridVolume float64) float64 {
	return gridVolume * s.CellArea()
}
