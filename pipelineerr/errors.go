package pipelineerr

import (
	"errors"
	"fmt"
)

// Kind categorises why a pipeline step failed.
type Kind int

const (
	// KindUnknown is the zero value; it should never appear in a
	// returned StepError.
	KindUnknown Kind = iota

	// KindInvalidInput indicates the heightmap or run options failed
	// validation before any geometry was built.
	KindInvalidInput

	// KindInvalidBoundary indicates the supplied Boundary does not form
	// a valid, closed, non-degenerate loop.
	KindInvalidBoundary

	// KindNodataInInterior indicates a nodata cell was found strictly
	// inside the triangulated region, where elevation is required.
	KindNodataInInterior

	// KindDegenerateSaddle indicates the gradient field could not be
	// resolved unambiguously at a face (a discretised monkey saddle).
	KindDegenerateSaddle

	// KindIO indicates a read or write operation against an external
	// format failed.
	KindIO

	// KindInternal indicates an invariant of the pipeline itself was
	// violated; this always signals a defect rather than bad input.
	KindInternal
)

// String renders k as a short lower-case tag, used in StepError's
// message and safe to use as a log field value.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidBoundary:
		return "invalid_boundary"
	case KindNodataInInterior:
		return "nodata_in_interior"
	case KindDegenerateSaddle:
		return "degenerate_saddle"
	case KindIO:
		return "io"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// StepError reports that pipeline stage Step failed with error Err,
// categorised as Kind.
type StepError struct {
	Step string
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Step, e.Kind, e.Err)
}

// Unwrap returns the wrapped error, so errors.Is/errors.As see through
// StepError to the underlying sentinel.
func (e *StepError) Unwrap() error { return e.Err }

// Wrap returns a *StepError attributing err to step, categorised as
// kind. If err is nil, Wrap returns nil.
func Wrap(step string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Step: step, Kind: kind, Err: err}
}

// KindOf returns the Kind of err if it is (or wraps) a *StepError, and
// KindUnknown otherwise.
func KindOf(err error) Kind {
	var se *StepError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
