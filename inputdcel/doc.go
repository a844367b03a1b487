// Package inputdcel embeds an inputgraph.InputGraph as a dcel.Dcel and
// computes its discrete gradient field: a partial matching between
// vertices and their incident edges, and between edges and their
// incident faces, following the lower-star construction (each vertex
// pairs with the edge to its lowest neighbour; each edge pairs with whichever
// of its two incident faces has the lower "highest vertex not on this
// edge").
//
// What:
//
//   - InputDcel: a dcel.Dcel[VertexData, HalfEdgeData, FaceData] carrying
//     pairing state plus each face's highest/second-highest boundary
//     half-edge.
//   - Build: embeds the graph and runs the two-phase (vertex-edge, then
//     edge-face) greedy matching.
//   - IsCritical* predicates and GradientPath, the building blocks
//     package mscomplex uses to trace gradient flow between critical
//     cells.
//   - VolumeAboveFace, the per-triangle piecewise-cubic volume-above
//     function package mscomplex sums into each Morse cell's sand
//     function.
//
// Why:
//
//   - Every vertex not paired downward is a local minimum, every
//     unpaired edge a saddle, every unpaired face a local maximum: the
//     gradient field IS the discrete Morse function, expressed purely as
//     a matching rather than as real-valued function values.
package inputdcel
