package ioformats

import "errors"

// Sentinel errors for the ioformats readers and writers.
var (
	// ErrTruncated indicates a file ended before all expected tokens
	// were read.
	ErrTruncated = errors.New("ioformats: premature end of file")

	// ErrSyntax indicates a token could not be parsed as the expected
	// type (integer, float, header key).
	ErrSyntax = errors.New("ioformats: syntax error")

	// ErrCountMismatch indicates the file's declared dimensions do not
	// match the number of data tokens actually present.
	ErrCountMismatch = errors.New("ioformats: declared size does not match data length")

	// ErrMissingHeaderKey indicates a required ESRI grid header key was
	// not present.
	ErrMissingHeaderKey = errors.New("ioformats: missing header key")

	// ErrCoordinateOutOfBounds indicates a boundary coordinate falls
	// outside the heightmap's extent.
	ErrCoordinateOutOfBounds = errors.New("ioformats: coordinate out of bounds")

	// ErrPathNotJoined indicates two consecutive boundary legs do not
	// share their junction vertex.
	ErrPathNotJoined = errors.New("ioformats: boundary legs do not connect")
)
