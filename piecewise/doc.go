// Package piecewise implements the univariate functions used to describe
// how much sediment volume lies above a given height, both for a single
// triangle and for an arbitrary union of triangles (a Morse cell).
//
// What:
//
//   - Cubic and Linear: fixed-degree polynomials with add/sub/scale.
//   - Piecewise[F]: a breakpoint list plus one F per interval, generic
//     over the polynomial kind so cubic and linear share one
//     evaluate/add/prune implementation.
//   - TriangleVolumeAbove: the closed-form piecewise-cubic volume-above
//     function for a single triangle, linear below its lowest vertex and
//     cubic across the two height bands above it.
//
// Why:
//
//   - Persistence simplification repeatedly merges these functions across
//     thousands of triangles; representing them symbolically (rather than
//     sampling height) keeps every δ value exact to floating-point
//     precision instead of accumulating discretisation error.
package piecewise
