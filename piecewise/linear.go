package piecewise

import "math"

// HeightForVolume returns the height at which a piecewise-linear,
// monotonically decreasing volume-above function equals volume. Each
// face's volume-above function decreases from its value at -infinity
// (the full volume of the cell) to zero at the cell's maximum height, so
// for any volume in that range there is exactly one such height.
//
// If volume is at or above the function's value at its lowest breakpoint,
// the height lies in (-infinity, Breakpoints[0]] and the unbounded first
// piece is inverted directly. If volume is below zero, no piece reaches
// it and the function returns +Inf, matching the convention that a
// fully-submerged cell has no height left to report. A volume of exactly
// zero gives the lowest height at which a sloped piece reaches zero, or
// +Inf when no sloped piece does.
func HeightForVolume(p Piecewise[Linear], volume float64) float64 {
	n := len(p.Pieces)
	for i := 0; i < n; i++ {
		var loH, hiH float64
		if i == 0 {
			loH = math.Inf(-1)
		} else {
			loH = p.Breakpoints[i-1]
		}
		if i == n-1 {
			hiH = math.Inf(1)
		} else {
			hiH = p.Breakpoints[i]
		}
		piece := p.Pieces[i]
		var loV, hiV float64
		if math.IsInf(loH, -1) {
			loV = math.Inf(1)
		} else {
			loV = piece.Eval(loH)
		}
		if math.IsInf(hiH, 1) {
			hiV = 0
		} else {
			hiV = piece.Eval(hiH)
		}
		if volume <= loV && volume >= hiV {
			h := piece.HeightForVolume(volume)
			if math.IsNaN(h) {
				continue
			}
			if h < loH {
				h = loH
			}
			if h > hiH {
				h = hiH
			}
			return h
		}
	}
	if volume <= 0 {
		return math.Inf(1)
	}
	return math.Inf(-1)
}
