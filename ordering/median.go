package ordering

import (
	"sort"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
)

// medianValue implements the classic Sugiyama median heuristic: the
// middle element of a sorted, nonempty list of adjacent positions. For
// an even count it is the average of the two central elements when
// there are exactly two (or when both halves have zero spread);
// otherwise the two central elements are weighted by the spread of the
// opposite half, as in Gansner et al.'s weighted median.
// Returns -1 for an empty list, the caller's sentinel for "no
// neighbours in the reference layer, leave this node where it is".
func medianValue(positions []int) float64 {
	n := len(positions)
	if n == 0 {
		return -1
	}
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	mid := n / 2
	if n%2 == 1 {
		return float64(sorted[mid])
	}
	if n == 2 {
		return float64(sorted[0]+sorted[1]) / 2
	}
	left := sorted[mid-1] - sorted[0]
	right := sorted[n-1] - sorted[mid]
	if left+right == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return (float64(sorted[mid-1])*float64(right) + float64(sorted[mid])*float64(left)) / float64(left+right)
}

// neighborPositions collects, for node n, the current positions (within
// their own layer) of every node n connects to via an out-edge (down)
// or in-edge (up), restricted to nodes layerOf places in refLayer.
func neighborPositions(g *core.Graph, n core.NodeID, down bool, layerOf map[core.NodeID]int, refLayer int, pos attribute.NodeAttribute[int]) []int {
	var edges []core.EdgeID
	if down {
		edges, _ = g.OutEdges(n)
	} else {
		edges, _ = g.InEdges(n)
	}
	var out []int
	for _, eid := range edges {
		ed, ok := g.Edge(eid)
		if !ok {
			continue
		}
		other := ed.To
		if !down {
			other = ed.From
		}
		if layerOf[other] != refLayer {
			continue
		}
		out = append(out, pos.Get(other))
	}
	return out
}

type keyedNode struct {
	id    core.NodeID
	key   float64
	fixed bool
}

// reorderLayer recomputes layer li's order from the median positions of
// its neighbours in refLayer (refLayer = li+1 when down, li-1 when up),
// leaving nodes with no such neighbour at their current relative spot.
func reorderLayer(g *core.Graph, layers [][]core.NodeID, pos attribute.NodeAttribute[int], layerOf map[core.NodeID]int, li, refLayer int, down bool) {
	layer := layers[li]
	keyed := make([]keyedNode, len(layer))
	for i, n := range layer {
		m := medianValue(neighborPositions(g, n, down, layerOf, refLayer, pos))
		if m < 0 {
			keyed[i] = keyedNode{id: n, key: float64(i), fixed: true}
		} else {
			keyed[i] = keyedNode{id: n, key: m}
		}
	}
	sort.SliceStable(keyed, func(a, b int) bool { return keyed[a].key < keyed[b].key })

	newLayer := make([]core.NodeID, len(keyed))
	for i, k := range keyed {
		newLayer[i] = k.id
		pos.Set(k.id, i)
	}
	layers[li] = newLayer
}

// medianSweep runs one full median pass over every layer. down=true
// reorders each layer from its children's positions (the layer below,
// larger index), sweeping bottom-to-top so each layer sees its
// reference layer already updated this pass; down=false mirrors that
// using parents (the layer above), sweeping top-to-bottom.
func medianSweep(g *core.Graph, layers [][]core.NodeID, pos attribute.NodeAttribute[int], layerOf map[core.NodeID]int, down bool) {
	if down {
		for li := len(layers) - 2; li >= 0; li-- {
			reorderLayer(g, layers, pos, layerOf, li, li+1, true)
		}
	} else {
		for li := 1; li < len(layers); li++ {
			reorderLayer(g, layers, pos, layerOf, li, li-1, false)
		}
	}
}
