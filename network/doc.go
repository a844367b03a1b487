// Package network extracts the channel network graph from a simplified
// Morse-Smale complex: the subgraph of saddle-to-minimum edges whose
// persistence δ-value exceeds a chosen threshold, i.e. exactly the
// channels that survive at that level of detail.
//
// This is a narrower read of the original tool's representative-network
// construction, which builds an ordered "striation" of source-to-sink
// paths for visualisation; that path-decomposition layer is out of
// scope here; see DESIGN.md.
package network
