package coordinate

import (
	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
)

// AssignY stacks layers top-down: each layer's top Y is the previous
// layer's bottom plus that inter-layer gap's channel height
// (gapEdgeCounts[i] x EdgeHeight) plus a fixed YGutter (spec.md §4.9
// "Y-coordinate"). gapEdgeCounts must have one entry per inter-layer
// gap (len(layers)-1 entries). Returns each layer's top and bottom Y.
func AssignY(layers [][]core.NodeID, sizes attribute.NodeAttribute[Size], gapEdgeCounts []int, cfg Config) (top, bottom []int) {
	top = make([]int, len(layers))
	bottom = make([]int, len(layers))
	y := 0
	for li, layer := range layers {
		y += cfg.YGutter
		top[li] = y

		h := 0
		for _, n := range layer {
			if s := sizes.Get(n); s.Height > h {
				h = s.Height
			}
		}
		y += h
		bottom[li] = y

		if li+1 < len(layers) && li < len(gapEdgeCounts) {
			y += gapEdgeCounts[li] * cfg.EdgeHeight
		}
	}
	return top, bottom
}

// NodeTops distributes each layer's top Y onto every node it contains.
func NodeTops(layers [][]core.NodeID, top []int) attribute.NodeAttribute[int] {
	out := attribute.NewNodeAttribute(0)
	for li, layer := range layers {
		for _, n := range layer {
			out.Set(n, top[li])
		}
	}
	return out
}

// NodeBottoms returns each node's bottom Y: its layer's top plus its
// own height (so equal-height nodes in a layer share a bottom edge,
// and zero-height dummy nodes collapse top and bottom to one point).
func NodeBottoms(layers [][]core.NodeID, top []int, sizes attribute.NodeAttribute[Size]) attribute.NodeAttribute[int] {
	out := attribute.NewNodeAttribute(0)
	for li, layer := range layers {
		for _, n := range layer {
			out.Set(n, top[li]+sizes.Get(n).Height)
		}
	}
	return out
}
