package coordinate

import (
	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
)

// channelY resolves a segment edge's absolute horizontal-leg Y from
// its gap's bounds and its assigned channel index, spacing channels
// evenly within the gap's reserved height.
func channelY(gapTop, gapBottom, channel, channelCount, edgeHeight int) int {
	if channelCount <= 0 {
		return gapTop
	}
	slot := (gapBottom - gapTop) / (channelCount + 1)
	if slot < edgeHeight {
		slot = edgeHeight
	}
	return gapTop + slot*(channel+1)
}

// BuildWaypoints assembles each original edge's four-point-per-segment
// orthogonal waypoint sequence (spec.md §4.9 "Orthogonal waypoints"):
// p0 on the source's bottom boundary, p1 directly below it at the
// segment's channel Y, p2 directly above p3 at that same Y, p3 on the
// destination's top boundary. Multi-segment chains concatenate their
// segments' points, deduplicating the shared junction point at each
// dummy node. Edges reversed during cycle removal have their final
// sequence reversed so p0 is always the logical source.
func BuildWaypoints(
	g *core.Graph,
	segments map[core.EdgeID][]core.EdgeID,
	channel map[core.EdgeID]int,
	gapTop, gapBottom []int,
	layerOf map[core.NodeID]int,
	channelCounts []int,
	x attribute.NodeAttribute[int],
	nodeTop, nodeBottom attribute.NodeAttribute[int],
	reversed map[core.EdgeID]bool,
	cfg Config,
) map[core.EdgeID][]Point {
	out := make(map[core.EdgeID][]Point, len(segments))
	for origEdge, chain := range segments {
		var pts []Point
		for _, segEdge := range chain {
			sd, ok := g.Edge(segEdge)
			if !ok {
				continue
			}
			li := layerOf[sd.From]
			cc := 0
			if li < len(channelCounts) {
				cc = channelCounts[li]
			}
			y := channelY(gapBottom[li], gapTop[li+1], channel[segEdge], cc, cfg.EdgeHeight)

			p0 := Point{X: x.Get(sd.From), Y: nodeBottom.Get(sd.From)}
			p1 := Point{X: p0.X, Y: y}
			p3 := Point{X: x.Get(sd.To), Y: nodeTop.Get(sd.To)}
			p2 := Point{X: p3.X, Y: y}

			pts = appendPoint(pts, p0)
			pts = appendPoint(pts, p1)
			pts = appendPoint(pts, p2)
			pts = appendPoint(pts, p3)
		}
		if reversed[origEdge] {
			reversePoints(pts)
		}
		out[origEdge] = pts
	}
	return out
}

func appendPoint(pts []Point, p Point) []Point {
	if len(pts) > 0 && pts[len(pts)-1] == p {
		return pts
	}
	return append(pts, p)
}

func reversePoints(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
