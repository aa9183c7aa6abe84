package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cfgraph/core"
)

type color int

const (
	white color = iota
	gray
	black
)

// Run performs an ordered depth-first traversal of g starting at start,
// or from every unvisited node (ordered by NodeID) if WithFullTraversal
// is given. It is iterative, using an explicit work-stack rather than
// recursion, per spec.md §9.
func Run(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.fullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("dfs: start %v: %w", start, ErrStartNotFound)
	}

	res := &Result{
		Number:    make(map[core.NodeID]int),
		Order:     make([]core.NodeID, 0),
		Parent:    make(map[core.NodeID]core.NodeID),
		EdgeKinds: make(map[core.EdgeID]EdgeKind),
	}
	colors := make(map[core.NodeID]color)

	roots := []core.NodeID{start}
	if o.fullTraversal {
		roots = g.Nodes() // already ascending
	}

	for _, root := range roots {
		if colors[root] != white {
			continue
		}
		walk(g, root, colors, res)
	}
	return res, nil
}

type frame struct {
	node  core.NodeID
	edges []core.EdgeID
	idx   int
}

func walk(g *core.Graph, root core.NodeID, colors map[core.NodeID]color, res *Result) {
	discover(root, colors, res)
	stack := []frame{{node: root, edges: outEdgesSorted(g, root)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.edges) {
			colors[top.node] = black
			stack = stack[:len(stack)-1]
			continue
		}
		eid := top.edges[top.idx]
		top.idx++
		ed, _ := g.Edge(eid)
		v := ed.To
		switch colors[v] {
		case white:
			res.EdgeKinds[eid] = Tree
			res.Parent[v] = top.node
			discover(v, colors, res)
			stack = append(stack, frame{node: v, edges: outEdgesSorted(g, v)})
		case gray:
			res.EdgeKinds[eid] = Back
		case black:
			if res.Number[v] > res.Number[top.node] {
				res.EdgeKinds[eid] = Forward
			} else {
				res.EdgeKinds[eid] = Cross
			}
		}
	}
}

func discover(id core.NodeID, colors map[core.NodeID]color, res *Result) {
	colors[id] = gray
	res.Number[id] = len(res.Order)
	res.Order = append(res.Order, id)
}

func outEdgesSorted(g *core.Graph, id core.NodeID) []core.EdgeID {
	out, _ := g.OutEdges(id)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
