// Package heightmap provides the raster elevation grid that is the
// pipeline's input, plus the rasterised-path and boundary types used to
// delimit the region of the grid that should be triangulated.
//
// What:
//
//   - HeightMap: a row-major grid of elevations, with nodata represented
//     as NaN.
//   - Path: an ordered sequence of grid coordinates, with rasterisation
//     (subdividing long steps to unit steps) and spike removal.
//   - Boundary: the four paths (source, top, sink, bottom) that together
//     delimit a simply-connected region of the grid.
//
// Why:
//
//   - A DEM's interior is not always the whole rectangular grid: a
//     braided-river reach or tidal flat study area is usually a
//     hand-drawn or derived polygon within a larger raster. Boundary
//     captures that region without requiring every caller to also carry
//     a full polygon-clipping library.
package heightmap
