package ioformats

import (
	"fmt"
	"os"

	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/heightmap"
)

// ReadBoundary reads a boundary text file: four positive integers giving
// the point counts of the source, top, sink and bottom legs (each count
// includes the vertex shared with the next leg), followed by that many
// "x y" coordinate pairs per leg in the same order. Coordinates must lie
// within [0, width) x [0, height), and each leg must end where the next
// one starts.
func ReadBoundary(path string, width, height int) (heightmap.Boundary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return heightmap.Boundary{}, fmt.Errorf("ioformats: reading %s: %w", path, err)
	}

	r := &tokenReader{tokens: tokenize(string(content))}
	if r.remaining() < 4 {
		return heightmap.Boundary{}, fmt.Errorf("%w: should contain at least four numbers", ErrTruncated)
	}

	sourceLen, err := r.nextPositiveInt()
	if err != nil {
		return heightmap.Boundary{}, fmt.Errorf("source length: %w", err)
	}
	topLen, err := r.nextPositiveInt()
	if err != nil {
		return heightmap.Boundary{}, fmt.Errorf("top length: %w", err)
	}
	sinkLen, err := r.nextPositiveInt()
	if err != nil {
		return heightmap.Boundary{}, fmt.Errorf("sink length: %w", err)
	}
	bottomLen, err := r.nextPositiveInt()
	if err != nil {
		return heightmap.Boundary{}, fmt.Errorf("bottom length: %w", err)
	}

	total := sourceLen + topLen + sinkLen + bottomLen
	if r.remaining() != 2*total {
		return heightmap.Boundary{}, fmt.Errorf("%w: should contain %d x- and y-coordinates (encountered %d)",
			ErrCountMismatch, 2*total, r.remaining())
	}

	source, err := readLeg(r, sourceLen, width, height)
	if err != nil {
		return heightmap.Boundary{}, fmt.Errorf("source: %w", err)
	}
	top, err := readLeg(r, topLen, width, height)
	if err != nil {
		return heightmap.Boundary{}, fmt.Errorf("top: %w", err)
	}
	sink, err := readLeg(r, sinkLen, width, height)
	if err != nil {
		return heightmap.Boundary{}, fmt.Errorf("sink: %w", err)
	}
	bottom, err := readLeg(r, bottomLen, width, height)
	if err != nil {
		return heightmap.Boundary{}, fmt.Errorf("bottom: %w", err)
	}

	b := heightmap.Boundary{Source: source, Top: top, Sink: sink, Bottom: bottom}
	if !b.IsValid() {
		return heightmap.Boundary{}, fmt.Errorf("%w: legs do not form a closed, connected loop", ErrPathNotJoined)
	}
	return b, nil
}

func readLeg(r *tokenReader, length, width, height int) (heightmap.Path, error) {
	points := make([]geom.Coordinate, length)
	for i := 0; i < length; i++ {
		x, err := r.nextInt()
		if err != nil {
			return heightmap.Path{}, fmt.Errorf("coordinate %d: %w", i, err)
		}
		y, err := r.nextInt()
		if err != nil {
			return heightmap.Path{}, fmt.Errorf("coordinate %d: %w", i, err)
		}
		if x < 0 || x >= width || y < 0 || y >= height {
			return heightmap.Path{}, fmt.Errorf("%w: (%d, %d)", ErrCoordinateOutOfBounds, x, y)
		}
		points[i] = geom.Coordinate{X: x, Y: y}
	}
	return heightmap.NewPath(points), nil
}
