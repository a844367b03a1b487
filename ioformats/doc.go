// Package ioformats reads and writes the text-based file formats the
// pipeline exchanges with the outside world: the bespoke whitespace-
// tokenized heightmap format, ESRI/ASCII grid rasters, boundary
// definition files, and the network graph and link-sequence writers
// that render a simplified network.Graph back to text.
//
// None of these formats are part of the computational pipeline itself;
// they exist at its edges, exactly as the original tool's lib/io and
// lib/boundaryreader/boundarywriter classes did.
package ioformats
