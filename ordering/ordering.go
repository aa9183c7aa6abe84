package ordering

import (
	"math/rand"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
)

// Result is the ordering Order settled on: Layers lists every layer's
// nodes top-down (Layers[0] holds the root's layer) in left-to-right
// order, and Pos gives each node's index within its own layer.
type Result struct {
	Layers [][]core.NodeID
	Pos    attribute.NodeAttribute[int]
}

// Order computes a per-layer vertex order minimising crossings between
// adjacent layers, given the rank assignment package simplex produced
// (ranks.Get(root) is the highest value; ranks.Get(leaf) is 1 — see
// simplex.Compute). It never fails on a valid rank assignment; the
// returned error only reports a missing rank or a nil graph.
func Order(g *core.Graph, ranks attribute.NodeAttribute[int], opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)

	nodes := g.Nodes()
	maxRank := 0
	for _, n := range nodes {
		if !ranks.Has(n) {
			return nil, ErrRanksMissing
		}
		if r := ranks.Get(n); r > maxRank {
			maxRank = r
		}
	}

	layerOf := make(map[core.NodeID]int, len(nodes))
	layerCount := 0
	for _, n := range nodes {
		li := maxRank - ranks.Get(n)
		layerOf[n] = li
		if li+1 > layerCount {
			layerCount = li + 1
		}
	}

	layers := make([][]core.NodeID, layerCount)
	for _, n := range nodes {
		li := layerOf[n]
		layers[li] = append(layers[li], n)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for _, layer := range layers {
		rng.Shuffle(len(layer), func(i, j int) { layer[i], layer[j] = layer[j], layer[i] })
	}

	pos := attribute.NewNodeAttribute(0)
	assignPositions(layers, pos)

	best := cloneLayers(layers)
	bestCrossings := totalCrossings(g, layers, pos, layerOf)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		medianSweep(g, layers, pos, layerOf, iter%2 == 0)
		transpose(g, layers, pos, layerOf)

		cr := totalCrossings(g, layers, pos, layerOf)
		if cr < bestCrossings {
			bestCrossings = cr
			best = cloneLayers(layers)
		}
	}

	bestPos := attribute.NewNodeAttribute(0)
	assignPositions(best, bestPos)
	return &Result{Layers: best, Pos: bestPos}, nil
}

func assignPositions(layers [][]core.NodeID, pos attribute.NodeAttribute[int]) {
	for _, layer := range layers {
		for i, n := range layer {
			pos.Set(n, i)
		}
	}
}

func cloneLayers(layers [][]core.NodeID) [][]core.NodeID {
	out := make([][]core.NodeID, len(layers))
	for i, layer := range layers {
		out[i] = append([]core.NodeID(nil), layer...)
	}
	return out
}
