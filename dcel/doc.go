// Package dcel implements a generic doubly-connected edge list: a
// half-edge data structure for planar subdivisions, parameterised over
// the data carried by vertices, half-edges and faces.
//
// What:
//
//   - Dcel[V, H, F]: an arena of vertex/half-edge/face records addressed
//     by opaque integer IDs rather than pointers, so that removing a
//     record never invalidates a sibling's reference to it.
//   - Construction primitives: AddVertex, AddHalfEdgePair, SetNext
//     wiring (which sets the matching prev link too), AddFaces (derives
//     faces from the half-edge cycles already wired by the caller), and
//     NewFromTriangles.
//   - Mutation primitives: RemoveEdge (merges the two faces incident to a
//     half-edge pair into one, tombstoning the removed records) and
//     Compact (physically removes tombstoned records and remaps every
//     remaining ID).
//   - Traversal: ForAllOutgoing, ForAllFaceBoundary, ForAllReachableFaces
//     (a face-adjacency BFS that stops at a caller-supplied predicate).
//
// Why:
//
//   - The input triangulation is a planar subdivision whose vertices,
//     half-edges and faces each carry pipeline-specific data; a generic
//     implementation keeps that data separate from the mesh bookkeeping.
//     The Morse-Smale complex in package mscomplex does not use this
//     type: it is stored as plain vertex, edge and face slices.
//   - Integer IDs rather than pointers let removed records be tombstoned
//     and later compacted in bulk, instead of requiring every live
//     reference to be patched at the moment of removal.
package dcel
