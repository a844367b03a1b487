package network

import (
	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/inputdcel"
	"github.com/riverscape/channelnet/mscomplex"
)

// NodeKind distinguishes the two kinds of node a Graph can contain.
type NodeKind int

const (
	// MinimumNode is a basin (local minimum) of the input graph.
	MinimumNode NodeKind = iota
	// SaddleNode is a confluence or bifurcation point (a saddle).
	SaddleNode
)

// Node is a channel network junction, grounded on one critical point of
// the Morse-Smale complex.
type Node struct {
	P    geom.Point
	Kind NodeKind

	// MsVertex is the index into the source MsComplex.Vertices this
	// node was built from.
	MsVertex int
}

// Link is a channel segment between a saddle and one of the two minima
// its descending paths reach.
type Link struct {
	From, To int // indices into Graph.Nodes

	// Points is the steepest-descent path from the saddle's edge
	// endpoint down to the minimum, in input-graph coordinates.
	Points []geom.Point

	Delta float64
}

// Graph is the channel network graph: every Morse-Smale vertex as a
// node, every Morse-Smale edge as a link carrying its persistence
// δ-value.
type Graph struct {
	Nodes []Node
	Links []Link
}

// Build extracts the full (unfiltered) channel network graph from msc,
// which must already have had Simplify called so every link carries a
// meaningful Delta. id is the gradient field msc was built from, used to
// resolve each edge's descent path to real coordinates.
func Build(msc *mscomplex.MsComplex, id *inputdcel.InputDcel) *Graph {
	g := &Graph{Nodes: make([]Node, len(msc.Vertices))}

	for i, v := range msc.Vertices {
		kind := MinimumNode
		if v.Type == mscomplex.Saddle {
			kind = SaddleNode
		}
		g.Nodes[i] = Node{P: v.P, Kind: kind, MsVertex: i}
	}

	for _, e := range msc.Edges {
		points := make([]geom.Point, len(e.DcelPath))
		for i, v := range e.DcelPath {
			points[i] = id.VertexData(v).P
		}
		g.Links = append(g.Links, Link{From: e.Saddle, To: e.Minimum, Points: points, Delta: e.Delta})
	}

	return g
}

// FilterOnDelta returns the subgraph of g with every link whose Delta is
// at most threshold dropped, along with the nodes that become isolated
// as a result.
func (g *Graph) FilterOnDelta(threshold float64) *Graph {
	keepNode := make([]bool, len(g.Nodes))
	var links []Link
	for _, l := range g.Links {
		if l.Delta > threshold {
			links = append(links, l)
			keepNode[l.From] = true
			keepNode[l.To] = true
		}
	}

	remap := make([]int, len(g.Nodes))
	var nodes []Node
	for i, keep := range keepNode {
		if !keep {
			remap[i] = -1
			continue
		}
		remap[i] = len(nodes)
		nodes = append(nodes, g.Nodes[i])
	}

	filtered := &Graph{Nodes: nodes}
	for _, l := range links {
		filtered.Links = append(filtered.Links, Link{From: remap[l.From], To: remap[l.To], Points: l.Points, Delta: l.Delta})
	}
	return filtered
}
