package coordinate

import (
	"fmt"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
)

// SplitLongEdges replaces every edge whose endpoints' ranks differ by
// more than one with a chain of dummy nodes, one per intermediate
// layer, so every surviving edge spans exactly one layer (spec.md
// §4.9 "Long-edge splitting"). ranks must already assign every live
// node a layer rank (package simplex's convention: higher rank is
// closer to the root); new dummy nodes are given interpolated ranks
// and PriorityDummy. The returned map keys every original edge id to
// its ordered replacement chain — a single-element slice when no
// split was needed — so callers can reassemble waypoints later.
func SplitLongEdges(ed *core.Editor, ranks attribute.NodeAttribute[int], priority attribute.NodeAttribute[Priority]) (map[core.EdgeID][]core.EdgeID, error) {
	if ed == nil {
		return nil, ErrEditorNil
	}
	g := ed.Graph()
	if g == nil {
		return nil, ErrGraphNil
	}

	segments := make(map[core.EdgeID][]core.EdgeID, len(g.Edges()))
	for _, eid := range g.Edges() {
		data, ok := g.Edge(eid)
		if !ok {
			continue
		}
		fromRank, toRank := ranks.Get(data.From), ranks.Get(data.To)
		span := fromRank - toRank
		if span < 1 {
			return nil, fmt.Errorf("coordinate: edge %d (rank %d -> %d): %w", eid, fromRank, toRank, ErrNotLayered)
		}
		if span == 1 {
			segments[eid] = []core.EdgeID{eid}
			continue
		}

		chain := make([]core.EdgeID, 0, span)
		prev := data.From
		for step := 1; step < span; step++ {
			dummy, err := ed.MakeNode()
			if err != nil {
				return nil, err
			}
			ranks.Set(dummy, fromRank-step)
			priority.Set(dummy, PriorityDummy)

			neid, err := ed.MakeEdge(prev, dummy)
			if err != nil {
				return nil, err
			}
			chain = append(chain, neid)
			prev = dummy
		}
		last, err := ed.MakeEdge(prev, data.To)
		if err != nil {
			return nil, err
		}
		chain = append(chain, last)

		if err := ed.RemoveEdge(eid); err != nil {
			return nil, err
		}
		segments[eid] = chain
	}
	return segments, nil
}
