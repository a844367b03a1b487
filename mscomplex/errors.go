package mscomplex

import "errors"

// ErrNoCriticalCells is returned by Build when the underlying InputDcel
// has no critical vertices at all, which would leave the Morse-Smale
// complex with nothing to connect.
var ErrNoCriticalCells = errors.New("mscomplex: input dcel has no critical vertices")
