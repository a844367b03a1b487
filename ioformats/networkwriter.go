package ioformats

import (
	"bufio"
	"fmt"
	"os"

	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/network"
	"github.com/riverscape/channelnet/units"
)

// WriteNetworkGraph writes g to path, one link per line:
// "x1 y1 h1 x2 y2 h2 ... xk yk hk delta", where the coordinates are g's
// link descent path (saddle to minimum) and delta is converted to
// real-world cubic metres via scale.
func WriteNetworkGraph(g *network.Graph, scale units.Scale, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformats: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, l := range g.Links {
		writePointSequence(w, l.Points)
		fmt.Fprintf(w, "%g\n", scale.Volume(l.Delta))
	}
	return w.Flush()
}

func writePointSequence(w *bufio.Writer, points []geom.Point) {
	for _, p := range points {
		fmt.Fprintf(w, "%g %g %g ", p.X, p.Y, p.H)
	}
}

// WriteLinkSequence writes g to path in link-sequence form: every
// maximal chain of degree-2 nodes is merged into a single output entry
// spanning the whole chain, rather than emitting one line per individual
// saddle-to-minimum link. This mirrors the original tool's link-sequence
// output mode, used to render a simplified network as a small number of
// long reaches instead of many short segments.
//
// A chain's delta is the minimum delta along its constituent links: the
// weakest link determines how persistent the whole reach is.
func WriteLinkSequence(g *network.Graph, scale units.Scale, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformats: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, c := range buildChains(g) {
		writePointSequence(w, c.points)
		fmt.Fprintf(w, "%g\n", scale.Volume(c.delta))
	}
	return w.Flush()
}

type chain struct {
	points []geom.Point
	delta  float64
}

// adjacency entry: the other endpoint of a link incident to a node, plus
// the link's own index so it can be marked visited.
type linkEnd struct {
	link  int
	other int
}

func buildChains(g *network.Graph) []chain {
	adj := make([][]linkEnd, len(g.Nodes))
	for li, l := range g.Links {
		adj[l.From] = append(adj[l.From], linkEnd{link: li, other: l.To})
		adj[l.To] = append(adj[l.To], linkEnd{link: li, other: l.From})
	}

	visited := make([]bool, len(g.Links))
	var chains []chain

	walk := func(start int) {
		for _, e := range adj[start] {
			if visited[e.link] {
				continue
			}
			chains = append(chains, walkChain(g, adj, visited, start, e))
		}
	}

	// First pass: start a chain at every node that is not an internal
	// degree-2 link-through point.
	for n := range g.Nodes {
		if len(adj[n]) != 2 {
			walk(n)
		}
	}
	// Second pass: any remaining unvisited links form pure cycles of
	// degree-2 nodes; pick an arbitrary start on each.
	for n := range g.Nodes {
		if len(adj[n]) == 2 {
			walk(n)
		}
	}

	return chains
}

func walkChain(g *network.Graph, adj [][]linkEnd, visited []bool, start int, first linkEnd) chain {
	l := g.Links[first.link]
	c := chain{points: append([]geom.Point(nil), pointsInOrder(l, start)...), delta: l.Delta}
	visited[first.link] = true

	cur := first.other
	for len(adj[cur]) == 2 && cur != start {
		next, ok := otherLink(adj[cur], visited)
		if !ok {
			break
		}
		nl := g.Links[next.link]
		pts := pointsInOrder(nl, cur)
		c.points = append(c.points, pts[1:]...)
		if nl.Delta < c.delta {
			c.delta = nl.Delta
		}
		visited[next.link] = true
		cur = next.other
	}

	return c
}

// otherLink returns the first not-yet-visited incident link at a node.
func otherLink(ends []linkEnd, visited []bool) (linkEnd, bool) {
	for _, e := range ends {
		if !visited[e.link] {
			return e, true
		}
	}
	return linkEnd{}, false
}

// pointsInOrder returns l's descent path oriented so it starts at node
// `from` (one of l.From/l.To's positions at the ends of Points).
func pointsInOrder(l network.Link, from int) []geom.Point {
	if from == l.From {
		return l.Points
	}
	reversed := make([]geom.Point, len(l.Points))
	for i, p := range l.Points {
		reversed[len(l.Points)-1-i] = p
	}
	return reversed
}
