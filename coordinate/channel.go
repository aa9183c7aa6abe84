package coordinate

import (
	"sort"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/internal/log"
)

type segment struct {
	edge   core.EdgeID
	lo, hi int
}

// AssignChannels assigns each inter-layer gap's horizontal segments
// (one per single-layer edge crossing that gap) a 0-based channel
// index, so that a segment nested inside another's X span is placed
// before it (an inner channel) and therefore cannot be crossed by the
// outer segment's vertical legs (spec.md §4.9 "Channel assignment").
// The dependency graph is resolved by an iterative (non-recursive)
// fixed point; any cyclic leftover is dropped, logged at Debug and given
// channel 0 rather than failing, matching the source algorithm's own rule.
func AssignChannels(g *core.Graph, x attribute.NodeAttribute[int], gaps [][]core.EdgeID, logger *log.Logger) map[core.EdgeID]int {
	if logger == nil {
		logger = log.Nop("coordinate")
	}
	channels := make(map[core.EdgeID]int)
	for _, edges := range gaps {
		segs := buildSegments(g, x, edges)
		order, ordered := topoByNesting(segs, logger)
		for idx, s := range order {
			if idx >= ordered {
				idx = 0 // left over from a cyclic constraint
			}
			channels[s.edge] = idx
		}
	}
	return channels
}

func buildSegments(g *core.Graph, x attribute.NodeAttribute[int], edges []core.EdgeID) []segment {
	segs := make([]segment, 0, len(edges))
	for _, eid := range edges {
		ed, ok := g.Edge(eid)
		if !ok {
			continue
		}
		a, b := x.Get(ed.From), x.Get(ed.To)
		if a > b {
			a, b = b, a
		}
		segs = append(segs, segment{edge: eid, lo: a, hi: b})
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].edge < segs[j].edge })
	return segs
}

// nestedIn reports whether inner's span lies strictly inside outer's.
func nestedIn(inner, outer segment) bool {
	return inner.lo >= outer.lo && inner.hi <= outer.hi && (inner.lo > outer.lo || inner.hi < outer.hi)
}

// topoByNesting orders segments so a nested segment precedes whatever
// contains it, via Kahn's algorithm (iterative, no recursion). Any
// segment left over once no more zero-indegree nodes remain is part of
// a cyclic nesting constraint; it is appended in edge-id order and the
// drop is logged. The second result is how many segments the sort itself
// placed, i.e. the index at which the leftovers begin.
func topoByNesting(segs []segment, logger *log.Logger) ([]segment, int) {
	n := len(segs)
	if n == 0 {
		return nil, 0
	}
	indeg := make([]int, n)
	deps := make([][]int, n) // deps[i] = indices that must come after i
	for i := range segs {
		for j := range segs {
			if i == j {
				continue
			}
			if nestedIn(segs[i], segs[j]) {
				deps[i] = append(deps[i], j)
				indeg[j]++
			}
		}
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}
	visited := make([]bool, n)
	order := make([]segment, 0, n)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if visited[i] {
			continue
		}
		visited[i] = true
		order = append(order, segs[i])
		for _, j := range deps[i] {
			indeg[j]--
			if indeg[j] == 0 {
				queue = append(queue, j)
			}
		}
	}

	ordered := len(order)
	if ordered < n {
		dropped := n - ordered
		logger.Debug("coordinate: dropping cyclic channel-nesting constraints", "count", dropped)
		for i := 0; i < n; i++ {
			if !visited[i] {
				order = append(order, segs[i])
			}
		}
	}
	return order, ordered
}
