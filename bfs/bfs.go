// Package bfs provides breadth-first search over a core.Graph, treating
// every edge as undirected (it follows Incident, not OutEdges). cfgraph
// uses it for the DegenerateInput reachability check sese performs
// before preprocessing (spec.md §7); package udfs answers its ancestor
// queries with its own walks over the DFS tree and does not call it.
package bfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/cfgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Run.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartNotFound indicates the requested start node does not exist.
var ErrStartNotFound = errors.New("bfs: start node not found")

// Result captures one breadth-first traversal.
type Result struct {
	// Depth maps every reached node to its distance (in edges) from start.
	Depth map[core.NodeID]int
	// Parent maps a non-start reached node to the node it was reached from.
	Parent map[core.NodeID]core.NodeID
	// Order lists reached nodes in non-decreasing depth order.
	Order []core.NodeID
}

// Visited reports whether id was reached by the traversal.
func (r *Result) Visited(id core.NodeID) bool {
	_, ok := r.Depth[id]
	return ok
}

// Run performs a breadth-first traversal of g from start, treating every
// edge as undirected.
func Run(g *core.Graph, start core.NodeID) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: start %v: %w", start, ErrStartNotFound)
	}

	res := &Result{
		Depth:  map[core.NodeID]int{start: 0},
		Parent: map[core.NodeID]core.NodeID{},
		Order:  []core.NodeID{start},
	}
	queue := []core.NodeID{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range neighborsSorted(g, u) {
			if _, seen := res.Depth[v]; seen {
				continue
			}
			res.Depth[v] = res.Depth[u] + 1
			res.Parent[v] = u
			res.Order = append(res.Order, v)
			queue = append(queue, v)
		}
	}
	return res, nil
}

// Reachable reports whether target is reachable from start treating
// every edge as undirected.
func Reachable(g *core.Graph, start, target core.NodeID) (bool, error) {
	res, err := Run(g, start)
	if err != nil {
		return false, err
	}
	return res.Visited(target), nil
}

func neighborsSorted(g *core.Graph, id core.NodeID) []core.NodeID {
	inc, err := g.Incident(id)
	if err != nil {
		return nil
	}
	out := make([]core.NodeID, 0, len(inc))
	for _, eid := range inc {
		ed, _ := g.Edge(eid)
		other := ed.To
		if other == id {
			other = ed.From
		}
		out = append(out, other)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
