package region

import (
	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/sese"
	"github.com/katalvlaran/cfgraph/sugiyama"
)

// Layout is the fully composed drawing for an entire graph: every
// original node's position and size, every original edge's waypoint
// sequence, and the overall bounding box.
type Layout struct {
	Pos       attribute.NodeAttribute[coordinate.Point]
	Size      attribute.NodeAttribute[coordinate.Size]
	Waypoints attribute.EdgeAttribute[[]coordinate.Point]
	Width     int
	Height    int
}

// ctx holds one region's own local layout plus the bookkeeping needed
// to place it inside its parent and stitch its boundary edges.
type ctx struct {
	local      *sugiyama.Result
	nodeMap    map[core.NodeID]core.NodeID // direct member -> local node
	regionNode map[int]core.NodeID         // child region ID -> local synthetic node
	edgeMap    map[core.EdgeID]core.EdgeID // original edge -> local edge, for edges resolved within this region
}

// Build lays out g region by region, following the nesting sese.Analyze
// discovered: bottom-up, every region gets its own sugiyama run over a
// graph of its direct members plus one synthetic stand-in node per
// child region, sized by that child's already-computed bounding box;
// top-down, each region's local positions and waypoints are translated
// into the parent's coordinate frame, and waypoints crossing into a
// child region are spliced onto that child's own entry/exit waypoint
// sequence so the drawn path is continuous (spec.md §4.11).
func Build(g *core.Graph, tree *sese.Tree, sizes attribute.NodeAttribute[coordinate.Size], opts ...sugiyama.Option) (*Layout, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if tree == nil || tree.Root == nil {
		return nil, ErrTreeNil
	}

	byID := make(map[int]*ctx)
	if err := layoutRegion(g, tree.Root, sizes, opts, byID, g.Root()); err != nil {
		return nil, err
	}

	pos := attribute.NewNodeAttribute(coordinate.Point{})
	outSizes := attribute.NewNodeAttribute(coordinate.Size{})
	waypoints := attribute.NewEdgeAttribute([]coordinate.Point(nil))
	translate(g, tree.Root, byID, coordinate.Point{}, pos, outSizes, waypoints)

	root := byID[tree.Root.ID]
	return &Layout{
		Pos:       pos,
		Size:      outSizes,
		Waypoints: waypoints,
		Width:     root.local.Width,
		Height:    root.local.Height,
	}, nil
}

// layoutRegion runs the recursion's bottom-up half: children first, so
// their bounding boxes are known before r materialises its own local
// graph and synthetic region-nodes.
func layoutRegion(g *core.Graph, r *sese.Region, sizes attribute.NodeAttribute[coordinate.Size], opts []sugiyama.Option, byID map[int]*ctx, origRoot core.NodeID) error {
	for _, c := range r.Children {
		if err := layoutRegion(g, c, sizes, opts, byID, origRoot); err != nil {
			return err
		}
	}

	direct := make(map[core.NodeID]bool, len(r.Members))
	for _, m := range r.Members {
		direct[m] = true
	}
	childOf := make(map[core.NodeID]*sese.Region)
	for _, c := range r.Children {
		for _, n := range descendantMembers(c) {
			childOf[n] = c
		}
	}

	localG := core.NewGraph()
	localEd := core.NewEditor(localG)
	localEd.Push()

	localSizes := attribute.NewNodeAttribute(coordinate.Size{})
	nodeMap := make(map[core.NodeID]core.NodeID, len(direct))
	for m := range direct {
		ln, err := localEd.MakeNode()
		if err != nil {
			return err
		}
		nodeMap[m] = ln
		localSizes.Set(ln, sizes.Get(m))
	}

	regionNode := make(map[int]core.NodeID, len(r.Children))
	for _, c := range r.Children {
		ln, err := localEd.MakeNode()
		if err != nil {
			return err
		}
		regionNode[c.ID] = ln
		child := byID[c.ID]
		localSizes.Set(ln, coordinate.Size{Width: child.local.Width, Height: child.local.Height})
	}

	resolve := func(n core.NodeID) (core.NodeID, bool) {
		if ln, ok := nodeMap[n]; ok {
			return ln, true
		}
		if c, ok := childOf[n]; ok {
			return regionNode[c.ID], true
		}
		return core.InvalidNodeID, false
	}

	edgeMap := make(map[core.EdgeID]core.EdgeID)
	for _, eid := range g.Edges() {
		data, ok := g.Edge(eid)
		if !ok {
			continue
		}
		lf, fok := resolve(data.From)
		lt, tok := resolve(data.To)
		if !fok || !tok || lf == lt {
			continue // interior to exactly one child region, already handled there
		}
		leid, err := localEd.MakeEdge(lf, lt)
		if err != nil {
			return err
		}
		edgeMap[eid] = leid
	}
	localEd.Commit()

	var ioEntry, ioExit core.NodeID = core.InvalidNodeID, core.InvalidNodeID
	if r.Entry != core.InvalidEdgeID {
		if ed, ok := g.Edge(r.Entry); ok {
			if ln, ok2 := nodeMap[ed.To]; ok2 {
				ioEntry = ln
			}
		}
	}
	if r.Exit != core.InvalidEdgeID {
		if ed, ok := g.Edge(r.Exit); ok {
			if ln, ok2 := nodeMap[ed.From]; ok2 {
				ioExit = ln
			}
		}
	}

	root := pickRoot(nodeMap, regionNode, origRoot, ioEntry)
	if root != core.InvalidNodeID {
		if err := localG.SetRoot(root); err != nil {
			return err
		}
	}

	localResult, err := sugiyama.Run(localEd, localSizes, ioEntry, ioExit, opts...)
	if err != nil {
		return err
	}

	byID[r.ID] = &ctx{local: localResult, nodeMap: nodeMap, regionNode: regionNode, edgeMap: edgeMap}
	return nil
}

// pickRoot chooses a live node to root the region's local graph: the
// node the region is entered through when it has one, else the
// original graph's own root mapped into this region's local IDs, else
// any node this region happens to contain.
func pickRoot(nodeMap map[core.NodeID]core.NodeID, regionNode map[int]core.NodeID, origRoot core.NodeID, ioEntry core.NodeID) core.NodeID {
	if ioEntry != core.InvalidNodeID {
		return ioEntry
	}
	if ln, ok := nodeMap[origRoot]; ok {
		return ln
	}
	for _, ln := range nodeMap {
		return ln
	}
	for _, ln := range regionNode {
		return ln
	}
	return core.InvalidNodeID
}

// translate walks the recursion's top-down half: r's own nodes and
// locally-visible edges are shifted into the parent's frame by offset,
// and each child is recursed into with an offset derived from where
// this region's local layout placed that child's synthetic node.
func translate(g *core.Graph, r *sese.Region, byID map[int]*ctx, offset coordinate.Point, pos attribute.NodeAttribute[coordinate.Point], outSizes attribute.NodeAttribute[coordinate.Size], waypoints attribute.EdgeAttribute[[]coordinate.Point]) {
	c := byID[r.ID]
	local := c.local

	for orig, ln := range c.nodeMap {
		p := local.Pos.Get(ln)
		pos.Set(orig, coordinate.Point{X: p.X + offset.X, Y: p.Y + offset.Y})
		outSizes.Set(orig, local.Size.Get(ln))
	}

	for _, child := range r.Children {
		ln := c.regionNode[child.ID]
		p := local.Pos.Get(ln)
		childResult := byID[child.ID].local
		childOffset := coordinate.Point{
			X: offset.X + p.X - childResult.Width/2,
			Y: offset.Y + p.Y,
		}
		translate(g, child, byID, childOffset, pos, outSizes, waypoints)
	}

	for eid, leid := range c.edgeMap {
		pts := translatePoints(local.Waypoints[leid], offset)
		pts = stitch(g, eid, pts, r, byID, offset)
		waypoints.Set(eid, pts)
	}
}

// stitch replaces the boundary endpoint of a crossing edge's local
// waypoints with the crossed-into child region's own entry or exit
// waypoint sequence, translated into the parent's frame, so the drawn
// path continues past the child's bounding box instead of stopping at
// its edge.
func stitch(g *core.Graph, eid core.EdgeID, pts []coordinate.Point, r *sese.Region, byID map[int]*ctx, offset coordinate.Point) []coordinate.Point {
	for _, child := range r.Children {
		childResult := byID[child.ID].local
		switch eid {
		case child.Entry:
			if len(childResult.EntryWaypoints) == 0 || len(pts) == 0 {
				return pts
			}
			childOffset := childOffsetFor(byID, r, child, offset)
			tail := translatePoints(childResult.EntryWaypoints, childOffset)
			return append(pts[:len(pts)-1:len(pts)-1], tail...)
		case child.Exit:
			if len(childResult.ExitWaypoints) == 0 || len(pts) == 0 {
				return pts
			}
			childOffset := childOffsetFor(byID, r, child, offset)
			head := translatePoints(childResult.ExitWaypoints, childOffset)
			return append(head, pts[1:]...)
		}
	}
	return pts
}

// childOffsetFor recomputes the same offset translate used when it
// recursed into child, for use by stitch which runs after that
// recursion already happened.
func childOffsetFor(byID map[int]*ctx, r *sese.Region, child *sese.Region, offset coordinate.Point) coordinate.Point {
	parent := byID[r.ID]
	ln := parent.regionNode[child.ID]
	p := parent.local.Pos.Get(ln)
	childResult := byID[child.ID].local
	return coordinate.Point{X: offset.X + p.X - childResult.Width/2, Y: offset.Y + p.Y}
}

func translatePoints(pts []coordinate.Point, offset coordinate.Point) []coordinate.Point {
	out := make([]coordinate.Point, len(pts))
	for i, p := range pts {
		out[i] = coordinate.Point{X: p.X + offset.X, Y: p.Y + offset.Y}
	}
	return out
}

func descendantMembers(r *sese.Region) []core.NodeID {
	out := append([]core.NodeID(nil), r.Members...)
	for _, c := range r.Children {
		out = append(out, descendantMembers(c)...)
	}
	return out
}
