package sugiyama

import (
	"sort"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/core"
)

// slideNodes compacts the layering by moving sources down to one rank
// above their highest-ranked out-neighbour and sinks up to one rank
// below their lowest-ranked in-neighbour, whenever doing so does not violate any incident edge's
// rank ordering — a source or sink is otherwise unconstrained by
// anything except the neighbours it actually has (spec.md §4.10 step
// 4 "slide nodes", restricted here to the degree-one-sided case, which
// is where a real CFG's slack concentrates: diamond joins and branch
// heads). Nodes are visited tallest-first, ties broken by ascending
// NodeID, both fixed per spec.md's own Open Question resolution on
// slide-node ordering (see DESIGN.md).
func slideNodes(g *core.Graph, ranks attribute.NodeAttribute[int], sizes attribute.NodeAttribute[coordinate.Size]) {
	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool {
		hi, hj := sizes.Get(nodes[i]).Height, sizes.Get(nodes[j]).Height
		if hi != hj {
			return hi > hj
		}
		return nodes[i] < nodes[j]
	})

	for _, n := range nodes {
		in, _ := g.InEdges(n)
		out, _ := g.OutEdges(n)
		switch {
		case len(out) == 0 && len(in) > 0:
			// sink: pull up toward the lowest in-neighbour rank minus one
			lowest := -1
			for _, eid := range in {
				ed, ok := g.Edge(eid)
				if !ok {
					continue
				}
				r := ranks.Get(ed.From)
				if lowest == -1 || r < lowest {
					lowest = r
				}
			}
			if lowest != -1 && lowest-1 > ranks.Get(n) {
				ranks.Set(n, lowest-1)
			}
		case len(in) == 0 && len(out) > 0:
			// source: push down toward the highest out-neighbour rank plus one
			highest := -1
			for _, eid := range out {
				ed, ok := g.Edge(eid)
				if !ok {
					continue
				}
				r := ranks.Get(ed.To)
				if r > highest {
					highest = r
				}
			}
			if highest != -1 && highest+1 < ranks.Get(n) {
				ranks.Set(n, highest+1)
			}
		}
	}
}
