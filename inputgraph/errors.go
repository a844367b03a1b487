package inputgraph

import "errors"

// Sentinel errors for BuildInputGraph.
var (
	// ErrInvalidBoundary indicates the boundary's four legs do not form
	// a valid, closed, 8-connected loop.
	ErrInvalidBoundary = errors.New("inputgraph: boundary is not a valid closed loop")

	// ErrDegenerateRegion indicates the boundary encloses no interior
	// cells at all.
	ErrDegenerateRegion = errors.New("inputgraph: boundary encloses no cells")

	// ErrNodataInRegion indicates a cell inside the triangulated region
	// has a nodata (NaN) elevation.
	ErrNodataInRegion = errors.New("inputgraph: nodata elevation inside triangulated region")
)
