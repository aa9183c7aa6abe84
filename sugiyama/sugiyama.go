package sugiyama

import (
	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/dfs"
	"github.com/katalvlaran/cfgraph/ordering"
	"github.com/katalvlaran/cfgraph/simplex"
)

// Run executes the full layered-drawing pipeline over g, using ed for
// every mutation (g must be ed.Graph()). sizes gives every member
// node's rendered width/height. ioEntry/ioExit, when not
// core.InvalidNodeID, name the member nodes a parent region's crossing
// edges attach to; Run adds a dummy IO node above/below them and
// reports that dummy edge's final waypoints in the Result so a caller
// composing regions (package region) can stitch across the boundary.
// Run pushes and pops its own editor frame, so none of its dummy nodes
// or edge reversals survive past return (spec.md §4.10).
func Run(ed *core.Editor, sizes attribute.NodeAttribute[coordinate.Size], ioEntry, ioExit core.NodeID, opts ...Option) (*Result, error) {
	if ed == nil {
		return nil, ErrEditorNil
	}
	g := ed.Graph()
	if g == nil {
		return nil, ErrGraphNil
	}
	root := g.Root()
	if !g.HasNode(root) {
		return nil, ErrNoRoot
	}
	cfg := newConfig(opts...)

	ed.Push()
	result, err := run(ed, g, root, sizes, ioEntry, ioExit, cfg)
	if popErr := ed.Pop(); popErr != nil && err == nil {
		err = popErr
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func run(ed *core.Editor, g *core.Graph, root core.NodeID, sizes attribute.NodeAttribute[coordinate.Size], ioEntry, ioExit core.NodeID, cfg Config) (*Result, error) {
	// Step 2: cycle removal. Self-loops are deleted outright; every
	// other back edge is reversed so the remaining graph is a DAG.
	reversed := make(map[core.EdgeID]bool)
	dfsRes, err := dfs.Run(g, root, dfs.WithFullTraversal())
	if err != nil {
		return nil, err
	}
	for eid, kind := range dfsRes.EdgeKinds {
		if kind != dfs.Back {
			continue
		}
		edgeData, ok := g.Edge(eid)
		if !ok {
			continue
		}
		if edgeData.From == edgeData.To {
			if err := ed.RemoveEdge(eid); err != nil {
				return nil, err
			}
			continue
		}
		if err := ed.EditEdge(eid, edgeData.To, edgeData.From); err != nil {
			return nil, err
		}
		reversed[eid] = true
	}

	// Step 3: layer assignment.
	ranks, _, err := simplex.Compute(g, cfg.Logger)
	if err != nil {
		return nil, err
	}

	// Step 4: slide nodes.
	slideNodes(g, ranks, sizes)

	// Step 5: IO extremities.
	priority := attribute.NewNodeAttribute(coordinate.PriorityReal)
	var entryEdge, exitEdge core.EdgeID = core.InvalidEdgeID, core.InvalidEdgeID
	maxRank, minRank := rankBounds(g, ranks)
	if ioEntry != core.InvalidNodeID {
		dummy, err := ed.MakeNode()
		if err != nil {
			return nil, err
		}
		ranks.Set(dummy, maxRank+1)
		priority.Set(dummy, coordinate.PriorityIO)
		entryEdge, err = ed.MakeEdge(dummy, ioEntry)
		if err != nil {
			return nil, err
		}
	}
	if ioExit != core.InvalidNodeID {
		dummy, err := ed.MakeNode()
		if err != nil {
			return nil, err
		}
		ranks.Set(dummy, minRank-1)
		priority.Set(dummy, coordinate.PriorityIO)
		exitEdge, err = ed.MakeEdge(ioExit, dummy)
		if err != nil {
			return nil, err
		}
	}

	// Step 6: long-edge splitting.
	segments, err := coordinate.SplitLongEdges(ed, ranks, priority)
	if err != nil {
		return nil, err
	}

	// Step 7: flip. Edges are constructed so From always outranks To;
	// nothing further is needed once step 2's reversal has run.

	// Layer bookkeeping shared by steps 8-10.
	layerOf, layers := buildLayers(g, ranks)
	gapEdgeCounts := make([]int, len(layers)-1)
	for _, eid := range g.Edges() {
		data, ok := g.Edge(eid)
		if !ok {
			continue
		}
		li := layerOf[data.From]
		if li < len(gapEdgeCounts) {
			gapEdgeCounts[li]++
		}
	}

	// Step 8: Y assignment.
	top, bottom := coordinate.AssignY(layers, sizes, gapEdgeCounts, resolveCoordConfig(cfg))

	// Step 9: vertex ordering.
	orderRes, err := ordering.Order(g, ranks, cfg.OrderOptions...)
	if err != nil {
		return nil, err
	}

	// Step 10: waypoint creation, x assignment, y channel assignment.
	coordCfg := resolveCoordConfig(cfg)
	x := coordinate.AssignX(g, orderRes.Layers, sizes, priority, coordCfg)

	gaps := make([][]core.EdgeID, len(layers)-1)
	for _, eid := range g.Edges() {
		data, ok := g.Edge(eid)
		if !ok {
			continue
		}
		li := layerOf[data.From]
		if li < len(gaps) {
			gaps[li] = append(gaps[li], eid)
		}
	}
	channels := coordinate.AssignChannels(g, x, gaps, cfg.Logger)
	channelCounts := make([]int, len(gaps))
	for i, gap := range gaps {
		channelCounts[i] = len(gap)
	}

	nodeTop := coordinate.NodeTops(layers, top)
	nodeBottom := coordinate.NodeBottoms(layers, top, sizes)
	waypoints := coordinate.BuildWaypoints(g, segments, channels, top, bottom, layerOf, channelCounts, x, nodeTop, nodeBottom, reversed, coordCfg)

	// Step 11: persist.
	result := persist(g, sizes, x, nodeTop, waypoints, entryEdge, exitEdge)
	return result, nil
}

func rankBounds(g *core.Graph, ranks attribute.NodeAttribute[int]) (max, min int) {
	first := true
	for _, n := range g.Nodes() {
		r := ranks.Get(n)
		if first {
			max, min = r, r
			first = false
			continue
		}
		if r > max {
			max = r
		}
		if r < min {
			min = r
		}
	}
	return max, min
}

func buildLayers(g *core.Graph, ranks attribute.NodeAttribute[int]) (map[core.NodeID]int, [][]core.NodeID) {
	nodes := g.Nodes()
	maxRank, _ := rankBounds(g, ranks)
	layerOf := make(map[core.NodeID]int, len(nodes))
	count := 0
	for _, n := range nodes {
		li := maxRank - ranks.Get(n)
		layerOf[n] = li
		if li+1 > count {
			count = li + 1
		}
	}
	layers := make([][]core.NodeID, count)
	for _, n := range nodes {
		li := layerOf[n]
		layers[li] = append(layers[li], n)
	}
	return layerOf, layers
}

func resolveCoordConfig(cfg Config) coordinate.Config {
	return coordinate.ResolveConfig(cfg.CoordOptions...)
}

// persist computes each node's final position and the drawing's bounding
// box, then normalises everything — node positions and every waypoint,
// including the IO-extremity sequences — so the box's top-left corner
// sits at (0, 0). Region composition (package region) relies on this: a
// child region's own local layout can be placed inside its parent just
// by adding the parent-assigned offset, with no leftover minimum to
// track on the side.
func persist(g *core.Graph, sizes attribute.NodeAttribute[coordinate.Size], x, nodeTop attribute.NodeAttribute[int], waypoints map[core.EdgeID][]coordinate.Point, entryEdge, exitEdge core.EdgeID) *Result {
	pos := attribute.NewNodeAttribute(coordinate.Point{})
	minLeft, maxRight, minTop, maxBottom := 0, 0, 0, 0
	first := true
	for _, n := range g.Nodes() {
		s := sizes.Get(n)
		px, py := x.Get(n), nodeTop.Get(n)
		pos.Set(n, coordinate.Point{X: px, Y: py})
		left, right := px-s.Width/2, px+s.Width/2
		bottom := py + s.Height
		if first || left < minLeft {
			minLeft = left
		}
		if first || right > maxRight {
			maxRight = right
		}
		if first || py < minTop {
			minTop = py
		}
		if first || bottom > maxBottom {
			maxBottom = bottom
		}
		first = false
	}
	for _, n := range g.Nodes() {
		p := pos.Get(n)
		pos.Set(n, coordinate.Point{X: p.X - minLeft, Y: p.Y - minTop})
	}
	offset := coordinate.Point{X: -minLeft, Y: -minTop}
	for eid, pts := range waypoints {
		waypoints[eid] = translatePoints(pts, offset)
	}
	result := &Result{Pos: pos, Size: sizes, Waypoints: waypoints, Width: maxRight - minLeft, Height: maxBottom - minTop}
	if entryEdge != core.InvalidEdgeID {
		result.EntryWaypoints = waypoints[entryEdge]
	}
	if exitEdge != core.InvalidEdgeID {
		result.ExitWaypoints = waypoints[exitEdge]
	}
	return result
}

func translatePoints(pts []coordinate.Point, offset coordinate.Point) []coordinate.Point {
	out := make([]coordinate.Point, len(pts))
	for i, p := range pts {
		out[i] = coordinate.Point{X: p.X + offset.X, Y: p.Y + offset.Y}
	}
	return out
}
