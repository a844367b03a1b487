package ioformats

import (
	"fmt"
	"os"

	"github.com/riverscape/channelnet/heightmap"
	"github.com/riverscape/channelnet/units"
)

// ReadTextFile reads the bespoke whitespace-tokenized heightmap format:
// `W H xRes yRes minH maxH` followed by W*H elevations, row-major
// (e[x,y] = tokens[6 + W*y + x]). minH and maxH are parsed for
// compatibility with old files but otherwise unused.
func ReadTextFile(path string) (*heightmap.HeightMap, units.Scale, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, units.Scale{}, fmt.Errorf("ioformats: reading %s: %w", path, err)
	}

	r := &tokenReader{tokens: tokenize(string(content))}
	if r.remaining() < 6 {
		return nil, units.Scale{}, fmt.Errorf("%w: should contain at least six numbers "+
			"indicating width, height, x-resolution, y-resolution, minimum height, maximum height", ErrTruncated)
	}

	width, err := r.nextPositiveInt()
	if err != nil {
		return nil, units.Scale{}, fmt.Errorf("width: %w", err)
	}
	height, err := r.nextPositiveInt()
	if err != nil {
		return nil, units.Scale{}, fmt.Errorf("height: %w", err)
	}
	xRes, err := r.nextFloat()
	if err != nil {
		return nil, units.Scale{}, fmt.Errorf("x-resolution: %w", err)
	}
	yRes, err := r.nextFloat()
	if err != nil {
		return nil, units.Scale{}, fmt.Errorf("y-resolution: %w", err)
	}
	// minHeight, maxHeight: read and discarded for compatibility.
	if _, err := r.nextFloat(); err != nil {
		return nil, units.Scale{}, fmt.Errorf("minimum height: %w", err)
	}
	if _, err := r.nextFloat(); err != nil {
		return nil, units.Scale{}, fmt.Errorf("maximum height: %w", err)
	}

	if r.remaining() != width*height {
		return nil, units.Scale{}, fmt.Errorf("%w: should contain %d x %d = %d elevation measures (encountered %d)",
			ErrCountMismatch, width, height, width*height, r.remaining())
	}

	data := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			e, err := r.nextFloat()
			if err != nil {
				return nil, units.Scale{}, fmt.Errorf("elevation at (%d, %d): %w", x, y, err)
			}
			data[width*y+x] = e
		}
	}

	hm, err := heightmap.New(width, height, data)
	if err != nil {
		return nil, units.Scale{}, err
	}
	return hm, units.Scale{XResolution: xRes, YResolution: yRes}, nil
}
