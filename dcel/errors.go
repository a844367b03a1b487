package dcel

import "errors"

// Sentinel errors for dcel operations.
var (
	// ErrInvalidVertex indicates a VertexID outside the arena, or one
	// that refers to a removed (tombstoned) record.
	ErrInvalidVertex = errors.New("dcel: invalid vertex id")

	// ErrInvalidHalfEdge indicates a HalfEdgeID outside the arena, or one
	// that refers to a removed record.
	ErrInvalidHalfEdge = errors.New("dcel: invalid half-edge id")

	// ErrInvalidFace indicates a FaceID outside the arena, or one that
	// refers to a removed record.
	ErrInvalidFace = errors.New("dcel: invalid face id")

	// ErrDanglingHalfEdge indicates a half-edge is missing its twin, next
	// or previous link and cannot be used in a traversal.
	ErrDanglingHalfEdge = errors.New("dcel: half-edge is missing a required link")

	// ErrRemoveBoundaryEdge indicates RemoveEdge was called on a
	// half-edge whose twin lies on the same face, so removing it would
	// merge a face with itself rather than with a distinct neighbour.
	ErrRemoveBoundaryEdge = errors.New("dcel: cannot remove an edge whose removal would not merge two distinct faces")
)
