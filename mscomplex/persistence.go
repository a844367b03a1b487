package mscomplex

import (
	"math"
	"sort"

	"github.com/riverscape/channelnet/geom"
)

// Simplify computes a δ-value for every saddle in msc by processing
// saddles from high to low (by Point order, the same total order used
// for critical-point comparison throughout the complex) and collapsing
// each into its smaller adjacent cell in turn: the one whose sand
// volume above the saddle's height is smallest. Collapsing merges the
// smaller cell into its larger neighbour and assigns the collapsed
// significance as Delta on both of the saddle's Morse-Smale edges. A
// saddle whose two sides already belong to the same cell (a
// topological cycle, not a simplifiable basin boundary) still gets its
// finite significance recorded; only the merge itself is skipped.
//
// A second pass then enforces monotonicity: a vertex whose largest
// incident Delta is held by a single edge has that edge lowered to the
// second-largest, and a degree-1 vertex's sole edge is driven to zero.
// Both adjustments repeat to a fixed point, since lowering one vertex's
// Delta can in turn violate the condition at a neighbour. Virtual
// vertices at ±Inf height (the global source, sink and maximum
// introduced by the input graph's boundary construction) are exempt,
// since they must never be folded away.
//
// The network for a given persistence threshold t is then exactly the
// set of Morse-Smale edges with Delta > t.
func (msc *MsComplex) Simplify() {
	var saddles []int
	for vi, v := range msc.Vertices {
		if v.Type == Saddle {
			saddles = append(saddles, vi)
		}
	}
	sort.Slice(saddles, func(i, j int) bool {
		return geom.Less(msc.Vertices[saddles[j]].P, msc.Vertices[saddles[i]].P)
	})

	for _, vi := range saddles {
		sig, faceA, faceB, distinct := msc.saddleSignificance(vi)
		msc.setDelta(vi, sig)
		if distinct {
			msc.mergeFaces(vi, faceA, faceB)
		}
	}

	msc.cleanupMonotonicity()
}

// saddleSignificance returns the current significance of the saddle at
// vertex index vi: the smaller of its two (possibly already-merged)
// adjacent cells' sand volume above the saddle's height, plus the two
// cell indices it separates. distinct is false when both sides already
// belong to the same cell, in which case sig is still the (equal)
// volume on both sides but faceA/faceB should not be merged.
func (msc *MsComplex) saddleSignificance(vi int) (sig float64, faceA, faceB int, distinct bool) {
	v := msc.Vertices[vi]
	faceA = msc.FaceContaining(v.InputFaceA)
	faceB = msc.FaceContaining(v.InputFaceB)

	height := v.P.H
	volA := msc.Faces[faceA].VolumeAbove.Eval(height)
	volB := msc.Faces[faceB].VolumeAbove.Eval(height)

	sig = volA
	if volB < volA {
		sig = volB
	}

	return sig, faceA, faceB, faceA != faceB
}

func (msc *MsComplex) setDelta(vi int, delta float64) {
	for _, e := range msc.Edges {
		if e.Saddle == vi {
			e.Delta = delta
		}
	}
}

func (msc *MsComplex) mergeFaces(vi, faceA, faceB int) {
	a, b := msc.Faces[faceA], msc.Faces[faceB]
	height := msc.Vertices[vi].P.H

	winner, loser := faceA, faceB
	if b.VolumeAbove.Eval(height) > a.VolumeAbove.Eval(height) {
		winner, loser = faceB, faceA
	}

	w, l := msc.Faces[winner], msc.Faces[loser]
	w.Faces = append(w.Faces, l.Faces...)
	w.VolumeAbove = w.VolumeAbove.Add(l.VolumeAbove).Prune(height)
	l.mergedInto = winner
	for _, f := range l.Faces {
		msc.faceOfInputFace[f] = winner
	}
}

// edgesIncidentTo returns every Morse-Smale edge touching vertex vi,
// whether as its Saddle or its Minimum endpoint.
func (msc *MsComplex) edgesIncidentTo(vi int) []*Edge {
	var edges []*Edge
	for _, e := range msc.Edges {
		if e.Saddle == vi || e.Minimum == vi {
			edges = append(edges, e)
		}
	}
	return edges
}

// cleanupMonotonicity drives every non-virtual vertex's incident Deltas
// toward monotone: a degree-1 vertex's sole edge goes to zero, and a
// vertex with a uniquely-largest incident Delta has that edge lowered
// to the second-largest. Repeats until no vertex changes.
func (msc *MsComplex) cleanupMonotonicity() {
	for {
		changed := false
		for vi, v := range msc.Vertices {
			if math.IsInf(v.P.H, 0) {
				continue
			}

			edges := msc.edgesIncidentTo(vi)
			switch {
			case len(edges) == 0:
				continue
			case len(edges) == 1:
				if edges[0].Delta > 0 {
					edges[0].Delta = 0
					changed = true
				}
			default:
				sort.Slice(edges, func(i, j int) bool { return edges[i].Delta > edges[j].Delta })
				if edges[0].Delta > edges[1].Delta {
					edges[0].Delta = edges[1].Delta
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}
