// Package geom provides the elevation-aware point type shared by every
// stage of the channel-network pipeline, along with the total order that
// realises simulation of simplicity over it.
//
// What:
//
//   - Point: a real (x, y, h) position with a lexicographic-by-height
//     total order, so no two distinct points ever compare equal.
//   - Coordinate: an integer grid position, the key type used by
//     HeightMap, Path and InputGraph.
//
// Why:
//
//   - Discrete Morse theory needs a generic-position assumption: every
//     pair of adjacent cells must be strictly ordered. Real DEMs have
//     ties (flat areas, integer elevations); Point's ordering breaks
//     those ties consistently instead of rejecting the input.
package geom
