package mscomplex

import (
	"github.com/riverscape/channelnet/dcel"
	"github.com/riverscape/channelnet/inputdcel"
	"github.com/riverscape/channelnet/piecewise"
)

// Build constructs the descending Morse-Smale complex from id's gradient
// field: one MsComplex vertex per critical input vertex (minimum) and
// critical input half-edge (saddle), one MsComplex edge per saddle-side
// descent to a minimum, and one MsComplex face per critical input face
// (maximum), grouping every input face whose ascending gradient flow
// reaches that maximum.
func Build(id *inputdcel.InputDcel) (*MsComplex, error) {
	msc := &MsComplex{faceOfInputFace: make(map[dcel.FaceID]int)}

	minimumIndex := make(map[dcel.VertexID]int)
	for v := 0; v < id.NumVertices(); v++ {
		vid := dcel.VertexID(v)
		if !id.IsCriticalVertex(vid) {
			continue
		}
		minimumIndex[vid] = len(msc.Vertices)
		msc.Vertices = append(msc.Vertices, Vertex{
			P: id.VertexData(vid).P, Type: Minimum, InputVertex: vid,
		})
	}
	if len(minimumIndex) == 0 {
		return nil, ErrNoCriticalCells
	}

	seenSaddle := make(map[dcel.HalfEdgeID]bool)
	numFaces := id.NumFaces()
	for f := 0; f < numFaces; f++ {
		face := dcel.FaceID(f)
		id.ForAllFaceBoundary(face, func(h dcel.HalfEdgeID) bool {
			canonical := h
			if id.Twin(h) < canonical {
				canonical = id.Twin(h)
			}
			if seenSaddle[canonical] || !id.IsCriticalEdge(h) {
				return true
			}
			seenSaddle[canonical] = true

			saddleIdx := len(msc.Vertices)
			msc.Vertices = append(msc.Vertices, Vertex{
				P: id.VertexData(id.Origin(canonical)).P, Type: Saddle, InputEdge: canonical,
				InputFaceA: id.IncidentFace(canonical), InputFaceB: id.IncidentFace(id.Twin(canonical)),
			})

			for _, side := range [2]dcel.HalfEdgeID{canonical, id.Twin(canonical)} {
				path := id.GradientPath(id.Origin(side))
				minVertex := path[len(path)-1]
				msc.Edges = append(msc.Edges, &Edge{
					Saddle:   saddleIdx,
					Minimum:  minimumIndex[minVertex],
					DcelPath: path,
				})
			}
			return true
		})
	}

	for f := 0; f < numFaces; f++ {
		face := dcel.FaceID(f)
		if !id.IsCriticalFace(face) {
			continue
		}

		msFaceIdx := len(msc.Faces)
		msFace := &Face{Maximum: face, mergedInto: -1, VolumeAbove: piecewise.NewConstant(piecewise.Cubic{})}
		id.ForAllReachableFaces(face, func(h dcel.HalfEdgeID) bool {
			return id.HalfEdgeData(h).PairedWithFace
		}, func(member dcel.FaceID) {
			msFace.Faces = append(msFace.Faces, member)
			msFace.VolumeAbove = msFace.VolumeAbove.Add(id.VolumeAboveFace(member))
			msc.faceOfInputFace[member] = msFaceIdx
		})

		msc.Faces = append(msc.Faces, msFace)
	}

	return msc, nil
}
