package mergetree

import (
	"sort"

	"github.com/riverscape/channelnet/dcel"
	"github.com/riverscape/channelnet/geom"
	"github.com/riverscape/channelnet/inputdcel"
	"github.com/riverscape/channelnet/mscomplex"
	"github.com/riverscape/channelnet/piecewise"
)

// Node is one critical point of the merge tree: a leaf is a minimum, an
// internal node is the saddle at which its two Children's basins merge.
type Node struct {
	Index    int
	Children []int
	Parent   int // -1 for the root

	P geom.Point

	// MsVertex is the index into the MergeTree's MsComplex.Vertices this
	// node corresponds to: a Minimum for leaves, a Saddle for internal
	// nodes.
	MsVertex int

	// VolumeAbove is the total basin sand volume above this node's own
	// height, aggregated from every input vertex whose gradient path
	// descends into this node's subtree.
	VolumeAbove float64

	volumeFn piecewise.Piecewise[piecewise.Linear]
}

// MergeTree is the sub-level-set merge tree of an input graph's minima.
type MergeTree struct {
	Nodes []Node
	Root  int
}

// Build constructs the merge tree from msc's minima and saddles,
// weighting each basin by the per-vertex quarter-pillar sand
// contribution of every input-graph vertex reachable from it, as
// recorded by id's gradient field.
func Build(msc *mscomplex.MsComplex, id *inputdcel.InputDcel) (*MergeTree, error) {
	minimumOfInputVertex := make(map[dcel.VertexID]int)
	for vi, v := range msc.Vertices {
		if v.Type == mscomplex.Minimum {
			minimumOfInputVertex[v.InputVertex] = vi
		}
	}
	if len(minimumOfInputVertex) == 0 {
		return nil, ErrNoMinima
	}

	leafVolume := make(map[int]piecewise.Piecewise[piecewise.Linear])

	for v := 0; v < id.NumVertices(); v++ {
		vid := dcel.VertexID(v)
		path := id.GradientPath(vid)
		terminal := path[len(path)-1]
		msIdx, ok := minimumOfInputVertex[terminal]
		if !ok {
			continue
		}
		contribution := piecewise.QuarterPillarVolumeAbove(id.VertexData(vid).P)
		existing, ok := leafVolume[msIdx]
		if !ok {
			leafVolume[msIdx] = contribution
		} else {
			leafVolume[msIdx] = existing.Add(contribution)
		}
	}

	mt := &MergeTree{}
	parent := make(map[int]int) // union-find parent over mergetree node indices
	leaderNode := make(map[int]int)

	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	addNode := func(msVertex int, p geom.Point, children []int, volumeFn piecewise.Piecewise[piecewise.Linear]) int {
		idx := len(mt.Nodes)
		mt.Nodes = append(mt.Nodes, Node{
			Index: idx, Children: children, Parent: -1,
			P: p, MsVertex: msVertex,
			VolumeAbove: volumeFn.Eval(p.H),
			volumeFn:    volumeFn,
		})
		for _, c := range children {
			mt.Nodes[c].Parent = idx
		}
		return idx
	}

	for msIdx, v := range msc.Vertices {
		if v.Type != mscomplex.Minimum {
			continue
		}
		nodeIdx := addNode(msIdx, v.P, nil, leafVolume[msIdx])
		parent[nodeIdx] = nodeIdx
		leaderNode[msIdx] = nodeIdx
	}

	saddleOrder := make([]int, 0)
	for msIdx, v := range msc.Vertices {
		if v.Type == mscomplex.Saddle {
			saddleOrder = append(saddleOrder, msIdx)
		}
	}
	sort.Slice(saddleOrder, func(i, j int) bool {
		return geom.Less(msc.Vertices[saddleOrder[i]].P, msc.Vertices[saddleOrder[j]].P)
	})

	minimumNode := func(msIdx int) int {
		// msIdx here indexes an MsComplex.Vertices Minimum.
		return find(leaderNode[msIdx])
	}

	for _, saddleIdx := range saddleOrder {
		var minima []int
		for _, e := range msc.Edges {
			if e.Saddle == saddleIdx {
				minima = append(minima, e.Minimum)
			}
		}
		if len(minima) != 2 {
			continue
		}
		rootA, rootB := minimumNode(minima[0]), minimumNode(minima[1])
		if rootA == rootB {
			continue // cycle-closing saddle: no new merge event
		}

		combined := mt.Nodes[rootA].volumeFn.Add(mt.Nodes[rootB].volumeFn)
		newIdx := addNode(saddleIdx, msc.Vertices[saddleIdx].P, []int{rootA, rootB}, combined)

		parent[newIdx] = newIdx
		parent[rootA] = newIdx
		parent[rootB] = newIdx
	}

	root := 0
	for i := range mt.Nodes {
		if mt.Nodes[i].Parent == -1 {
			root = i
		}
	}
	mt.Root = root

	return mt, nil
}

// Get returns the node at index.
func (mt *MergeTree) Get(index int) Node { return mt.Nodes[index] }

// RootNode returns the tree's root node.
func (mt *MergeTree) RootNode() Node { return mt.Nodes[mt.Root] }

// ParentAtHeight climbs from nodeIndex toward the root, returning the
// highest ancestor (possibly nodeIndex itself) whose own critical height
// is still at or below height: the basin nodeIndex belongs to once the
// flood has risen to height.
func (mt *MergeTree) ParentAtHeight(nodeIndex int, height float64) int {
	cur := nodeIndex
	for {
		n := mt.Nodes[cur]
		if n.Parent == -1 || mt.Nodes[n.Parent].P.H > height {
			return cur
		}
		cur = n.Parent
	}
}

// Sort recursively reorders every node's Children in place according to
// less.
func (mt *MergeTree) Sort(less func(a, b Node) bool) {
	var visit func(idx int)
	visit = func(idx int) {
		children := mt.Nodes[idx].Children
		sort.Slice(children, func(i, j int) bool {
			return less(mt.Nodes[children[i]], mt.Nodes[children[j]])
		})
		for _, c := range children {
			visit(c)
		}
	}
	visit(mt.Root)
}
