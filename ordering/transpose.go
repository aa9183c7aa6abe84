package ordering

import (
	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
)

// maxTransposeSweeps bounds the adjacent-swap fixpoint loop; real CFG
// layer widths converge in a handful of sweeps.
const maxTransposeSweeps = 50

// crossingsBetween counts edges crossing between layer upper (closer to
// the root) and layer lower, via inversion counting over the sequence
// of lower-layer positions visited in upper-layer position order.
func crossingsBetween(g *core.Graph, layers [][]core.NodeID, pos attribute.NodeAttribute[int], layerOf map[core.NodeID]int, upper, lower int) int {
	var seq []int
	for _, n := range layers[upper] {
		out, _ := g.OutEdges(n)
		for _, eid := range out {
			ed, ok := g.Edge(eid)
			if !ok {
				continue
			}
			if layerOf[ed.To] != lower {
				continue
			}
			seq = append(seq, pos.Get(ed.To))
		}
	}
	return countInversions(seq)
}

func totalCrossings(g *core.Graph, layers [][]core.NodeID, pos attribute.NodeAttribute[int], layerOf map[core.NodeID]int) int {
	total := 0
	for li := 0; li+1 < len(layers); li++ {
		total += crossingsBetween(g, layers, pos, layerOf, li, li+1)
	}
	return total
}

func localCost(g *core.Graph, layers [][]core.NodeID, pos attribute.NodeAttribute[int], layerOf map[core.NodeID]int, li int) int {
	cost := 0
	if li > 0 {
		cost += crossingsBetween(g, layers, pos, layerOf, li-1, li)
	}
	if li+1 < len(layers) {
		cost += crossingsBetween(g, layers, pos, layerOf, li, li+1)
	}
	return cost
}

// transpose repeatedly swaps adjacent nodes within a layer whenever the
// swap does not increase that layer's local crossing cost; only a strict
// reduction counts as an improvement, and sweeps repeat until one
// produces no improvement or maxTransposeSweeps is reached.
func transpose(g *core.Graph, layers [][]core.NodeID, pos attribute.NodeAttribute[int], layerOf map[core.NodeID]int) {
	for sweep := 0; sweep < maxTransposeSweeps; sweep++ {
		improved := false
		for li := range layers {
			layer := layers[li]
			for j := 0; j+1 < len(layer); j++ {
				before := localCost(g, layers, pos, layerOf, li)
				layer[j], layer[j+1] = layer[j+1], layer[j]
				pos.Set(layer[j], j)
				pos.Set(layer[j+1], j+1)
				after := localCost(g, layers, pos, layerOf, li)
				if after < before {
					improved = true
				} else if after > before {
					layer[j], layer[j+1] = layer[j+1], layer[j]
					pos.Set(layer[j], j)
					pos.Set(layer[j+1], j+1)
				}
			}
		}
		if !improved {
			return
		}
	}
}
