// Package channelnet extracts a channel network from a terrain surface
// using discrete Morse theory.
//
// What it does:
//
//	A heightmap and its boundary are triangulated, swept by a discrete
//	gradient field, collapsed into a Morse-Smale complex of minima,
//	saddles and connecting descent paths, simplified by persistence, and
//	finally emitted as a network graph of reaches plus an optional merge
//	tree recording which reach absorbs which.
//
// Under the hood, the pipeline is organized under one subpackage per
// stage:
//
//	heightmap/, units/    — input grid, boundary and physical scale
//	geom/, dcel/, piecewise/ — triangulation and its half-edge structure
//	inputgraph/, inputdcel/ — region triangulation and the gradient field
//	mscomplex/, mergetree/  — the Morse-Smale complex and its merge tree
//	network/, ioformats/    — the filtered network graph and its file I/O
//	pipeline/, pipelineerr/, progress/ — orchestration, errors, artefacts
package channelnet
