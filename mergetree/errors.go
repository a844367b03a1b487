package mergetree

import "errors"

// ErrNoMinima is returned by Build when the Morse-Smale complex has no
// minimum vertices to form leaves from.
var ErrNoMinima = errors.New("mergetree: morse-smale complex has no minima")
