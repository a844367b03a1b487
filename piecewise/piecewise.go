package piecewise

import (
	"math"
	"sort"
)

func nan() float64 { return math.NaN() }

// Fn is the set of operations a polynomial kind must support to be carried
// by a Piecewise. Cubic and Linear both satisfy it.
type Fn[F any] interface {
	Eval(h float64) float64
	Add(other F) F
	Sub(other F) F
	Scale(factor float64) F
}

// Piecewise is a function defined by a sequence of polynomial pieces over
// consecutive height intervals. Breakpoints holds len(Pieces)-1 interior
// boundaries: Pieces[i] applies on [Breakpoints[i-1], Breakpoints[i]), with
// Pieces[0] applying below Breakpoints[0] and the last piece applying above
// the final breakpoint. A Piecewise with a single piece and no breakpoints
// applies everywhere.
type Piecewise[F Fn[F]] struct {
	Breakpoints []float64
	Pieces      []F
}

// NewConstant returns a Piecewise with a single piece valid at every height.
func NewConstant[F Fn[F]](piece F) Piecewise[F] {
	return Piecewise[F]{Pieces: []F{piece}}
}

// pieceIndexAt returns the index of the piece that applies at height h.
func pieceIndexAt[F Fn[F]](breakpoints []float64, h float64) int {
	// Pieces[i] covers (-inf, bp[0]) for i==0, [bp[i-1], bp[i]) for 0<i<len-1,
	// and [bp[last], +inf) for the final piece.
	return sort.Search(len(breakpoints), func(i int) bool { return breakpoints[i] > h })
}

// Eval evaluates the piecewise function at h.
func (p Piecewise[F]) Eval(h float64) float64 {
	i := pieceIndexAt[F](p.Breakpoints, h)
	return p.Pieces[i].Eval(h)
}

// merge aligns two piecewise functions onto a shared breakpoint set and
// combines their pieces pairwise with combine.
func merge[F Fn[F]](a, b Piecewise[F], combine func(x, y F) F) Piecewise[F] {
	merged := mergeBreakpoints(a.Breakpoints, b.Breakpoints)
	pieces := make([]F, len(merged)+1)
	for i := range pieces {
		var h float64
		switch {
		case len(merged) == 0:
			h = 0
		case i == 0:
			h = merged[0] - 1
		default:
			h = merged[i-1]
		}
		ai := pieceIndexAt[F](a.Breakpoints, h)
		bi := pieceIndexAt[F](b.Breakpoints, h)
		pieces[i] = combine(a.Pieces[ai], b.Pieces[bi])
	}
	return Piecewise[F]{Breakpoints: merged, Pieces: pieces}
}

func mergeBreakpoints(a, b []float64) []float64 {
	seen := make(map[float64]struct{}, len(a)+len(b))
	out := make([]float64, 0, len(a)+len(b))
	for _, v := range a {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, v := range b {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

// Add returns the piecewise sum of p and other.
func (p Piecewise[F]) Add(other Piecewise[F]) Piecewise[F] {
	return merge(p, other, func(x, y F) F { return x.Add(y) })
}

// Sub returns the piecewise difference p - other.
func (p Piecewise[F]) Sub(other Piecewise[F]) Piecewise[F] {
	return merge(p, other, func(x, y F) F { return x.Sub(y) })
}

// Scale returns p scaled by factor.
func (p Piecewise[F]) Scale(factor float64) Piecewise[F] {
	pieces := make([]F, len(p.Pieces))
	for i, piece := range p.Pieces {
		pieces[i] = piece.Scale(factor)
	}
	return Piecewise[F]{Breakpoints: append([]float64(nil), p.Breakpoints...), Pieces: pieces}
}

// Prune drops breakpoints above h (one equal to h is kept) and sets the
// function to evaluate
// as its piece at h for every height above h. This implements the
// "forget what happens above the saddle that just consumed this cell"
// step of persistence simplification: once a face is merged away, its
// volume-above function above the merge height is never queried again.
func (p Piecewise[F]) Prune(h float64) Piecewise[F] {
	i := pieceIndexAt[F](p.Breakpoints, h)
	return Piecewise[F]{
		Breakpoints: append([]float64(nil), p.Breakpoints[:i]...),
		Pieces:      append([]F(nil), p.Pieces[:i+1]...),
	}
}

// SetToZeroAbove returns a copy of p that agrees with p below h and is the
// constant zero piece from h upward.
func (p Piecewise[F]) SetToZeroAbove(h float64, zero F) Piecewise[F] {
	i := pieceIndexAt[F](p.Breakpoints, h)
	breakpoints := append([]float64(nil), p.Breakpoints[:i]...)
	pieces := append([]F(nil), p.Pieces[:i+1]...)
	breakpoints = append(breakpoints, h)
	pieces = append(pieces, zero)
	return Piecewise[F]{Breakpoints: breakpoints, Pieces: pieces}
}
