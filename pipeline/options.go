package pipeline

import (
	"github.com/riverscape/channelnet/heightmap"
	"github.com/riverscape/channelnet/units"
)

// Options configures a single Run. There is no external configuration
// file: callers build an Options value directly, the same pattern the
// teacher uses for its own per-algorithm option structs.
type Options struct {
	HeightMap *heightmap.HeightMap
	Boundary  heightmap.Boundary
	Scale     units.Scale

	// Threshold is the persistence cutoff delta* applied to the
	// simplified network graph before it is published.
	Threshold float64

	// BuildMergeTree controls whether the optional merge-tree substep
	// runs.
	BuildMergeTree bool
}

// Progress describes one step transition, reported via a Run's progress
// callback.
type Progress struct {
	Step    string
	Percent int
}

// Step name constants, reported through Progress.Step.
const (
	StepInputGraph   = "input-graph"
	StepInputDcel    = "input-dcel"
	StepMsComplex    = "ms-complex"
	StepSimplify     = "simplify"
	StepNetworkGraph = "network-graph"
	StepMergeTree    = "merge-tree"
)
