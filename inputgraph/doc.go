// Package inputgraph builds the planar triangulation that discrete
// Morse theory is run over: one vertex per interior grid cell of a
// HeightMap's Boundary, 4-connected adjacency plus one diagonal per grid
// square so that every square splits into two triangles, and
// three virtual vertices (a global source, sink and maximum) that close
// the triangulation into a topological sphere so every boundary vertex
// has a well-defined steepest-descent/ascent neighbour.
//
// What:
//
//   - InputGraph: vertices plus an adjacency list sorted by steepness,
//     ready for the gradient field computation in package inputdcel.
//   - BuildInputGraph: the construction algorithm, from a HeightMap and
//     a rasterised Boundary.
//
// Why:
//
//   - Discrete Morse theory needs a complex without boundary: every
//     vertex must have at least one lower and one higher neighbour. The
//     three virtual vertices (placed at +/-infinity elevation) give the
//     real boundary vertices that lower/upper neighbour without
//     distorting the interior's relative heights.
package inputgraph
