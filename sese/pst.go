package sese

import (
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/udfs"
)

// IOPair names one boundary point a Region shares with its surrounding
// structure: the node lying just outside the region and the edge
// crossing into or out of it. Package region does not read IOPairs: its
// stitching matches a crossing edge against each child Region's Entry
// and Exit edges.
type IOPair struct {
	Node core.NodeID
	Edge core.EdgeID
}

// Region is one single-entry single-exit subgraph in the Program
// Structure Tree. Entry and Exit are core.InvalidEdgeID for the root
// region, which has no boundary of its own.
type Region struct {
	ID       int
	Entry    core.EdgeID
	Exit     core.EdgeID
	Members  []core.NodeID
	Children []*Region
	Parent   *Region
	IOPairs  []IOPair
}

// Tree is a Program Structure Tree: the nested decomposition Analyze
// produces, rooted at a single Region spanning the whole graph.
type Tree struct {
	Root *Region
}

// extract walks the spanning tree in preorder a second time, opening a
// new child region whenever it descends a tree edge whose class is not
// already open, and closing the innermost open region whenever a tree
// edge's class matches it (spec.md §4.6). This assumes classes nest
// properly, which holds for the reducible, structured control flow the
// coordinate and ordering passes are built to lay out; a class
// occurrence whose region is open but not innermost opens a new child
// of the innermost region, the same as a class that is not open.
func extract(g *core.Graph, order *udfs.Result, classOf map[core.EdgeID]int) *Region {
	root := &Region{ID: 0, Entry: core.InvalidEdgeID, Exit: core.InvalidEdgeID}
	stack := []*Region{root}
	openByClass := map[int]*Region{}
	nextID := 1

	for i, v := range order.Order {
		if i == 0 {
			root.Members = append(root.Members, v)
			continue
		}
		p := order.Parent[v]
		pe := findTreeEdge(g, order, v, p)
		cls := classOf[pe]
		top := stack[len(stack)-1]

		if openR, ok := openByClass[cls]; ok && openR == top {
			openR.Exit = pe
			stack = stack[:len(stack)-1]
			delete(openByClass, cls)
			parent := stack[len(stack)-1]
			parent.Members = append(parent.Members, v)
			continue
		}

		child := &Region{ID: nextID, Entry: pe, Parent: top}
		nextID++
		top.Children = append(top.Children, child)
		openByClass[cls] = child
		stack = append(stack, child)
		child.Members = append(child.Members, v)
	}

	return root
}

// elide merges any region with no children and at most one member into
// its parent, since a single-node region contributes no layout
// structure of its own (spec.md §4.6, small-region elision).
func elide(r *Region) {
	for _, c := range r.Children {
		elide(c)
	}
	kept := r.Children[:0]
	for _, c := range r.Children {
		if len(c.Children) == 0 && len(c.Members) <= 1 {
			r.Members = append(r.Members, c.Members...)
			continue
		}
		kept = append(kept, c)
	}
	r.Children = kept
}

// buildIOPairs populates Entry/Exit boundary information for every
// region below the root, deriving each IOPair from the endpoints of the
// region's own boundary edges.
func buildIOPairs(g *core.Graph, r *Region) {
	if r.Entry != core.InvalidEdgeID {
		if ed, ok := g.Edge(r.Entry); ok {
			r.IOPairs = append(r.IOPairs, IOPair{Node: ed.From, Edge: r.Entry})
		}
	}
	if r.Exit != core.InvalidEdgeID {
		if ed, ok := g.Edge(r.Exit); ok {
			r.IOPairs = append(r.IOPairs, IOPair{Node: ed.To, Edge: r.Exit})
		}
	}
	for _, c := range r.Children {
		buildIOPairs(g, c)
	}
}

// stripSynthetic removes the synthetic exit node Analyze's preprocessing
// introduced from every region's membership, and clears any boundary
// edge that touched it, before the caller pops the editing frame that
// created it. Must run while the synthetic node and edges are still
// live, so g.Edge lookups below succeed.
func stripSynthetic(g *core.Graph, r *Region, exitNode core.NodeID) {
	out := r.Members[:0]
	for _, m := range r.Members {
		if m != exitNode {
			out = append(out, m)
		}
	}
	r.Members = out
	if touchesNode(g, r.Entry, exitNode) {
		r.Entry = core.InvalidEdgeID
	}
	if touchesNode(g, r.Exit, exitNode) {
		r.Exit = core.InvalidEdgeID
	}
	for _, c := range r.Children {
		stripSynthetic(g, c, exitNode)
	}
}

func touchesNode(g *core.Graph, eid core.EdgeID, n core.NodeID) bool {
	if eid == core.InvalidEdgeID {
		return false
	}
	ed, ok := g.Edge(eid)
	if !ok {
		return true // already tombstoned: it was synthetic, now gone
	}
	return ed.From == n || ed.To == n
}
