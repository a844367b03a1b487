package heightmap

import "errors"

// Sentinel errors for heightmap operations.
var (
	// ErrEmptyGrid indicates a HeightMap was constructed with zero width
	// or zero height.
	ErrEmptyGrid = errors.New("heightmap: width and height must both be positive")

	// ErrDataLength indicates the flat elevation slice passed to New does
	// not have exactly width*height entries.
	ErrDataLength = errors.New("heightmap: elevation data length does not match width*height")

	// ErrOutOfBounds indicates a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("heightmap: coordinate out of bounds")

	// ErrEmptyPath indicates an operation that requires at least one
	// point was given an empty Path.
	ErrEmptyPath = errors.New("heightmap: path has no points")

	// ErrBoundaryNotClosed indicates the four legs of a Boundary do not
	// connect end-to-start into a single closed loop.
	ErrBoundaryNotClosed = errors.New("heightmap: boundary legs do not form a closed loop")

	// ErrBoundaryDegenerate indicates a Boundary encloses zero or
	// negative area once rasterised.
	ErrBoundaryDegenerate = errors.New("heightmap: boundary encloses no area")
)
