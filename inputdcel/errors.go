package inputdcel

import "errors"

// ErrDegenerateSaddle is returned when a face's highest-vertex-not-on-edge
// computation cannot identify a single third vertex, which only happens
// when a triangle's three positions are not pairwise distinct under
// geom.Less. A well-formed input triangulation never produces this; it
// signals upstream degeneracy (a monkey saddle, or a zero-area triangle)
// rather than a recoverable matching failure.
var ErrDegenerateSaddle = errors.New("inputdcel: degenerate saddle")
