package inputdcel

import (
	"github.com/riverscape/channelnet/dcel"
	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/piecewise"
)

// FaceTriangle returns the three vertex positions bounding face, in
// boundary-cycle order.
func (id *InputDcel) FaceTriangle(face dcel.FaceID) (p1, p2, p3 geom.Point) {
	var pts [3]geom.Point
	i := 0
	id.ForAllFaceBoundary(face, func(h dcel.HalfEdgeID) bool {
		if i < 3 {
			pts[i] = id.originPoint(h)
		}
		i++
		return i < 3
	})
	return pts[0], pts[1], pts[2]
}

// VolumeAboveFace returns the piecewise-cubic volume-above-height
// function for the single triangle underlying face.
func (id *InputDcel) VolumeAboveFace(face dcel.FaceID) piecewise.Piecewise[piecewise.Cubic] {
	p1, p2, p3 := id.FaceTriangle(face)
	return piecewise.TriangleVolumeAbove(p1, p2, p3)
}
