package heightmap

import "github.com/riverscape/channelnet/geom"

// Boundary delimits the region of a HeightMap that should be
// triangulated, as four connected paths walked in order: Source (the
// inflow edge), Top, Sink (the outflow edge) and Bottom. Source and Sink
// become the attachment points for the pipeline's virtual global source
// and sink vertices.
type Boundary struct {
	Source, Top, Sink, Bottom Path
}

// Rasterize returns a copy of b with every leg rasterized to unit grid
// steps.
func (b Boundary) Rasterize() Boundary {
	return Boundary{
		Source: b.Source.Rasterize(),
		Top:    b.Top.Rasterize(),
		Sink:   b.Sink.Rasterize(),
		Bottom: b.Bottom.Rasterize(),
	}
}

// IsValid reports whether every leg is non-empty and 8-connected, and
// whether the legs connect end-to-start into a single closed loop
// (Source end == Top start, Top end == Sink start, Sink end == Bottom
// start, Bottom end == Source start).
func (b Boundary) IsValid() bool {
	legs := []Path{b.Source, b.Top, b.Sink, b.Bottom}
	for _, leg := range legs {
		if !leg.IsValid() {
			return false
		}
	}
	return b.isClosed()
}

func (b Boundary) isClosed() bool {
	return b.Source.End() == b.Top.Start() &&
		b.Top.End() == b.Sink.Start() &&
		b.Sink.End() == b.Bottom.Start() &&
		b.Bottom.End() == b.Source.Start()
}

// EnsureConnection verifies the four legs form a closed loop, returning
// ErrBoundaryNotClosed if not.
func (b Boundary) EnsureConnection() error {
	if !b.isClosed() {
		return ErrBoundaryNotClosed
	}
	return nil
}

// loopPoints returns the full closed loop as a single ordered point
// sequence. The junction point each leg shares with the previous leg is
// not repeated, except that the sequence ends with Bottom's last point,
// which is the same as its first point (Source's start).
func (b Boundary) loopPoints() []geom.Coordinate {
	var out []geom.Coordinate
	out = append(out, b.Source.Points...)
	out = append(out, b.Top.Points[1:]...)
	out = append(out, b.Sink.Points[1:]...)
	out = append(out, b.Bottom.Points[1:]...)
	return out
}

// IsClockwise reports whether the boundary's closed loop winds
// clockwise when the y axis points up (counter-clockwise as drawn with
// y pointing down), via the shoelace formula.
func (b Boundary) IsClockwise() bool {
	points := b.loopPoints()
	sum := 0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += (points[j].X - points[i].X) * (points[j].Y + points[i].Y)
	}
	return sum > 0
}
