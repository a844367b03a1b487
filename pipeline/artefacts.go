package pipeline

import (
	"github.com/riverscape/channelnet/inputdcel"
	"github.com/riverscape/channelnet/inputgraph"
	"github.com/riverscape/channelnet/mergetree"
	"github.com/riverscape/channelnet/mscomplex"
	"github.com/riverscape/channelnet/network"
	"github.com/riverscape/channelnet/progress"
)

// Artefacts holds one published slot per pipeline stage. Run publishes
// them in stage order (InputGraph, InputDcel, MsComplex, then MergeTree
// when requested, then Network), each only after every earlier stage's
// Publish call has returned, so a consumer observing one slot is
// guaranteed every slot earlier in that order has already been published.
type Artefacts struct {
	InputGraph *progress.Slot[*inputgraph.InputGraph]
	InputDcel  *progress.Slot[*inputdcel.InputDcel]
	MsComplex  *progress.Slot[*mscomplex.MsComplex]
	Network    *progress.Slot[*network.Graph]
	MergeTree  *progress.Slot[*mergetree.MergeTree]
}

// NewArtefacts returns a fresh, unpublished set of slots for one Run.
func NewArtefacts() *Artefacts {
	return &Artefacts{
		InputGraph: progress.NewSlot[*inputgraph.InputGraph](),
		InputDcel:  progress.NewSlot[*inputdcel.InputDcel](),
		MsComplex:  progress.NewSlot[*mscomplex.MsComplex](),
		Network:    progress.NewSlot[*network.Graph](),
		MergeTree:  progress.NewSlot[*mergetree.MergeTree](),
	}
}
