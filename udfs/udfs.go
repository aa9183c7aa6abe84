// Package udfs implements unordered depth-first traversal: it treats
// every edge as undirected and classifies each as Tree or Back
// (spec.md §4.4). It is the traversal SESE analysis (package sese) runs
// to build cycle-equivalence classes, since SESE regions are defined
// over the undirected structure of the graph.
//
// Result embeds a Patriarchal mixin exposing the parent/child relation
// every undirected DFS tree induces, plus ancestor queries over that
// tree (IsAncestor, Ancestors).
package udfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/cfgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Run.
var ErrGraphNil = errors.New("udfs: graph is nil")

// ErrStartNotFound indicates the requested start node does not exist.
var ErrStartNotFound = errors.New("udfs: start node not found")

// EdgeKind classifies an edge with respect to an unordered DFS tree.
type EdgeKind int

const (
	// UTree marks an edge the traversal followed to an unvisited node.
	UTree EdgeKind = iota
	// UBack marks a non-tree edge: both endpoints already visited, so one
	// is necessarily an ancestor of the other in the undirected DFS tree.
	UBack
)

// Patriarchal is the parent/child relation an unordered DFS tree
// induces over the traversed nodes, named for the teacher corpus's term
// for this mixin.
type Patriarchal struct {
	Parent   map[core.NodeID]core.NodeID
	Children map[core.NodeID][]core.NodeID
}

// IsAncestor reports whether a is an ancestor of b in the DFS tree
// (a == b counts as its own ancestor). It answers by breadth-first
// search over the Children relation starting at a, the same
// level-by-level queue traversal package bfs runs over a whole graph,
// specialized here to the tree's parent/child edges (spec.md §4.4:
// "ancestor queries via BFS").
func (p *Patriarchal) IsAncestor(a, b core.NodeID) bool {
	if a == b {
		return true
	}
	queue := append([]core.NodeID(nil), p.Children[a]...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == b {
			return true
		}
		queue = append(queue, p.Children[n]...)
	}
	return false
}

// Result captures one unordered DFS traversal plus its Patriarchal mixin.
type Result struct {
	Patriarchal
	Number    map[core.NodeID]int
	Order     []core.NodeID
	EdgeKinds map[core.EdgeID]EdgeKind
}

// Visited reports whether id was reached by the traversal.
func (r *Result) Visited(id core.NodeID) bool {
	_, ok := r.Number[id]
	return ok
}

// Ancestors returns every ancestor of id in the DFS tree, root first,
// by walking the Parent map upward (a convenience wrapper so callers
// needn't walk Parent by hand).
func (r *Result) Ancestors(id core.NodeID) []core.NodeID {
	var out []core.NodeID
	for cur, ok := r.Parent[id]; ok; cur, ok = r.Parent[cur] {
		out = append(out, cur)
	}
	// reverse to root-first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Run performs an unordered (undirected) depth-first traversal of g
// starting at start, or from every unvisited node (ascending by NodeID)
// if full is true, covering disconnected components as a forest.
// Iterative: an explicit work-stack, not recursion (spec.md §9).
func Run(g *core.Graph, start core.NodeID, full bool) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !full && !g.HasNode(start) {
		return nil, fmt.Errorf("udfs: start %v: %w", start, ErrStartNotFound)
	}

	res := &Result{
		Patriarchal: Patriarchal{Parent: map[core.NodeID]core.NodeID{}, Children: map[core.NodeID][]core.NodeID{}},
		Number:      map[core.NodeID]int{},
		EdgeKinds:   map[core.EdgeID]EdgeKind{},
	}
	visitedEdge := map[core.EdgeID]bool{}

	roots := []core.NodeID{start}
	if full {
		roots = g.Nodes()
	}

	for _, root := range roots {
		if res.Visited(root) {
			continue
		}
		walk(g, root, res, visitedEdge)
	}
	return res, nil
}

type frame struct {
	node  core.NodeID
	edges []core.EdgeID
	idx   int
}

func walk(g *core.Graph, root core.NodeID, res *Result, visitedEdge map[core.EdgeID]bool) {
	res.Number[root] = len(res.Order)
	res.Order = append(res.Order, root)
	stack := []frame{{node: root, edges: incidentSorted(g, root)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.edges) {
			stack = stack[:len(stack)-1]
			continue
		}
		eid := top.edges[top.idx]
		top.idx++
		if visitedEdge[eid] {
			continue
		}
		visitedEdge[eid] = true
		ed, _ := g.Edge(eid)
		v := ed.To
		if v == top.node {
			v = ed.From
		}
		if !res.Visited(v) {
			res.EdgeKinds[eid] = UTree
			res.Parent[v] = top.node
			res.Children[top.node] = append(res.Children[top.node], v)
			res.Number[v] = len(res.Order)
			res.Order = append(res.Order, v)
			stack = append(stack, frame{node: v, edges: incidentSorted(g, v)})
		} else {
			res.EdgeKinds[eid] = UBack
		}
	}
}

func incidentSorted(g *core.Graph, id core.NodeID) []core.EdgeID {
	inc, _ := g.Incident(id)
	out := append([]core.EdgeID(nil), inc...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
