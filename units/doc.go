// Package units converts between grid-cell measurements and real-world
// length, area and volume, given a HeightMap's per-axis cell resolution.
//
// What:
//
//   - Scale: the x/y resolution of a grid (metres per cell, commonly
//     unequal for DEMs resampled from different source rasters).
//   - Length, Area, Volume conversions from grid-relative quantities
//     (a cell step count, a cell's footprint, a pillar's volume) to
//     real-world metres, square metres and cubic metres.
//
// Why:
//
//   - Persistence significance (δ) is a volume, and the network graph
//     reports it in physically meaningful units so two reaches surveyed
//     at different resolutions remain comparable.
package units
