package coordinate

import (
	"math"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
)

const boundSentinel = math.MaxInt32 / 2

// AssignX places nodes left-to-right within each layer, XGutter apart,
// then relaxes positions for cfg.XPasses sweeps alternating which
// neighbouring layer each pass averages toward, clamping every move to
// the nearest left/right neighbour of equal-or-higher priority so
// lower-priority (dummy) nodes yield instead of blocking (spec.md §4.9
// "X-coordinate").
func AssignX(g *core.Graph, layers [][]core.NodeID, sizes attribute.NodeAttribute[Size], priority attribute.NodeAttribute[Priority], cfg Config) attribute.NodeAttribute[int] {
	x := attribute.NewNodeAttribute(0)
	for _, layer := range layers {
		cursor := 0
		for _, n := range layer {
			w := sizes.Get(n).Width
			x.Set(n, cursor+w/2)
			cursor += w + cfg.XGutter
		}
	}

	for pass := 0; pass < cfg.XPasses; pass++ {
		if pass%2 == 0 {
			for li := 1; li < len(layers); li++ {
				relaxLayer(g, layers, x, sizes, priority, cfg, li, true)
			}
		} else {
			for li := len(layers) - 2; li >= 0; li-- {
				relaxLayer(g, layers, x, sizes, priority, cfg, li, false)
			}
		}
	}
	return x
}

// relaxLayer recomputes layer li's X coordinates from the weighted
// average position of each node's neighbours in the adjacent layer:
// the layer above when up is true, the layer below otherwise.
func relaxLayer(g *core.Graph, layers [][]core.NodeID, x attribute.NodeAttribute[int], sizes attribute.NodeAttribute[Size], priority attribute.NodeAttribute[Priority], cfg Config, li int, up bool) {
	layer := layers[li]
	desired := make([]int, len(layer))
	for i, n := range layer {
		var edges []core.EdgeID
		if up {
			edges, _ = g.InEdges(n)
		} else {
			edges, _ = g.OutEdges(n)
		}
		sum, cnt := 0, 0
		for _, eid := range edges {
			ed, ok := g.Edge(eid)
			if !ok {
				continue
			}
			other := ed.From
			if !up {
				other = ed.To
			}
			sum += x.Get(other)
			cnt++
		}
		if cnt > 0 {
			desired[i] = sum / cnt
		} else {
			desired[i] = x.Get(n)
		}
	}

	for i, n := range layer {
		lo := lowerBound(layer, i, x, sizes, priority, cfg)
		hi := upperBound(layer, i, x, sizes, priority, cfg)
		v := desired[i]
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		x.Set(n, v)
	}
}

func lowerBound(layer []core.NodeID, i int, x attribute.NodeAttribute[int], sizes attribute.NodeAttribute[Size], priority attribute.NodeAttribute[Priority], cfg Config) int {
	my := priority.Get(layer[i])
	for j := i - 1; j >= 0; j-- {
		if priority.Get(layer[j]) >= my {
			return x.Get(layer[j]) + sizes.Get(layer[j]).Width/2 + cfg.XGutter + sizes.Get(layer[i]).Width/2
		}
	}
	return -boundSentinel
}

func upperBound(layer []core.NodeID, i int, x attribute.NodeAttribute[int], sizes attribute.NodeAttribute[Size], priority attribute.NodeAttribute[Priority], cfg Config) int {
	my := priority.Get(layer[i])
	for j := i + 1; j < len(layer); j++ {
		if priority.Get(layer[j]) >= my {
			return x.Get(layer[j]) - sizes.Get(layer[j]).Width/2 - cfg.XGutter - sizes.Get(layer[i]).Width/2
		}
	}
	return boundSentinel
}
