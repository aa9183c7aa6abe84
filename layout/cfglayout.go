package layout

import (
	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/internal/xerrors"
	"github.com/katalvlaran/cfgraph/region"
	"github.com/katalvlaran/cfgraph/render"
)

// edgeColor is the stroke color Render uses for each EdgeType, following
// the common true/false branch coloring of CFG viewers (green/red) with
// a neutral color for unconditional edges.
var edgeColor = map[EdgeType]render.Color{
	EdgeDefault: {R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	EdgeTrue:    {R: 0x1b, G: 0x8a, B: 0x3c, A: 0xff},
	EdgeFalse:   {R: 0xb3, G: 0x26, B: 0x1e, A: 0xff},
}

var (
	nodeFill   = render.Color{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	nodeBorder = render.Stroke{Thickness: 1.5, Color: render.Color{A: 0xff}}
	edgeStroke = render.Stroke{Thickness: 1.5}
	arrowSize  = 5
)

// CFGLayout is the immutable result of Builder.Build: every node's
// final position and size, every edge's orthogonal waypoint sequence,
// and the overall drawing's bounding box (spec.md §6 "Layout query
// interface").
type CFGLayout struct {
	layout    *region.Layout
	labels    attribute.NodeAttribute[string]
	haveLabel attribute.NodeAttribute[bool]
	edgeTypes attribute.EdgeAttribute[EdgeType]
	nodes     []core.NodeID
	edges     []core.EdgeID
	nodeSet   map[core.NodeID]bool
}

// GetCoords returns node n's top-left corner. The pipeline's internal
// coordinate.Point stores a node's horizontal *center*; GetCoords
// converts it to the top-left corner spec.md §8's placement-invariant
// checks (x ≥ 0, x+width ≤ graph_width) are stated against.
func (l *CFGLayout) GetCoords(n core.NodeID) (x, y int, err error) {
	if !l.hasNode(n) {
		return 0, 0, xerrors.New(xerrors.InvalidArgument, "layout.CFGLayout.GetCoords", ErrUnknownNode)
	}
	p := l.layout.Pos.Get(n)
	s := l.layout.Size.Get(n)
	return p.X - s.Width/2, p.Y, nil
}

// GetSize returns node n's rendered width and height.
func (l *CFGLayout) GetSize(n core.NodeID) (w, h int, err error) {
	if !l.hasNode(n) {
		return 0, 0, xerrors.New(xerrors.InvalidArgument, "layout.CFGLayout.GetSize", ErrUnknownNode)
	}
	s := l.layout.Size.Get(n)
	return s.Width, s.Height, nil
}

// GetWaypoints returns edge e's orthogonal polyline. Only edges that
// carry waypoints in the final layout are known here: a self-loop, which
// no region's local graph ever contains, is reported with
// InvalidArgument exactly like an edge id the Builder never created; the
// two cases are not distinguished.
func (l *CFGLayout) GetWaypoints(e core.EdgeID) ([]coordinate.Point, error) {
	if !l.hasEdge(e) {
		return nil, xerrors.New(xerrors.InvalidArgument, "layout.CFGLayout.GetWaypoints", ErrUnknownEdge)
	}
	return l.layout.Waypoints.Get(e), nil
}

// GetWidth returns the overall drawing's width.
func (l *CFGLayout) GetWidth() int { return l.layout.Width }

// GetHeight returns the overall drawing's height.
func (l *CFGLayout) GetHeight() int { return l.layout.Height }

// NodeCount returns the number of nodes placed in this layout.
func (l *CFGLayout) NodeCount() int { return len(l.nodes) }

// EdgeCount returns the number of edges actually drawn in this layout,
// which excludes self-loops, since they carry no waypoints.
func (l *CFGLayout) EdgeCount() int { return len(l.edges) }

// Nodes returns every placed node's ID, in creation order.
func (l *CFGLayout) Nodes() []core.NodeID { return append([]core.NodeID(nil), l.nodes...) }

// Edges returns every drawn edge's ID, in creation order.
func (l *CFGLayout) Edges() []core.EdgeID { return append([]core.EdgeID(nil), l.edges...) }

func (l *CFGLayout) hasNode(n core.NodeID) bool { return l.nodeSet[n] }

func (l *CFGLayout) hasEdge(e core.EdgeID) bool {
	return l.layout.Waypoints.Has(e)
}

// Render replays every node and edge onto r (spec.md §6 "render").
// Nodes are drawn as a filled, bordered rectangle with their label (if
// any) centered inside; edges are drawn as a sequence of line segments
// following their waypoints, colored by EdgeType, with a small arrow
// head at the final waypoint.
func (l *CFGLayout) Render(r render.Renderer) error {
	if r == nil {
		return xerrors.New(xerrors.InvalidArgument, "layout.CFGLayout.Render", ErrRendererNil)
	}
	for _, n := range l.nodes {
		x, y, err := l.GetCoords(n)
		if err != nil {
			return err
		}
		w, h, err := l.GetSize(n)
		if err != nil {
			return err
		}
		topLeft := coordinate.Point{X: x, Y: y}
		r.DrawRectangle(topLeft, w, h, nodeFill)
		r.DrawRectangleBorder(topLeft, w, h, nodeBorder)
		if l.haveLabel.Get(n) {
			label := l.labels.Get(n)
			tw, th := r.MeasureText(label, defaultTextStyle)
			inset := coordinate.Point{X: x + (w-tw)/2, Y: y + (h-th)/2}
			r.DrawText(inset, label, defaultTextStyle)
		}
	}

	for _, e := range l.edges {
		pts := l.layout.Waypoints.Get(e)
		if len(pts) < 2 {
			continue
		}
		stroke := edgeStroke
		stroke.Color = edgeColor[l.edgeTypes.Get(e)]
		for i := 0; i+1 < len(pts); i++ {
			r.DrawLine(pts[i], pts[i+1], stroke)
		}
		drawArrowHead(r, pts[len(pts)-2], pts[len(pts)-1], stroke.Color)
	}
	return nil
}

// drawArrowHead draws a small triangle at tip, pointing away from
// from, so a rendered edge visually indicates its direction.
func drawArrowHead(r render.Renderer, from, tip coordinate.Point, fill render.Color) {
	dx, dy := tip.X-from.X, tip.Y-from.Y
	var v1, v2 coordinate.Point
	switch {
	case dy != 0: // vertical segment into the node
		sign := 1
		if dy < 0 {
			sign = -1
		}
		v1 = coordinate.Point{X: tip.X - arrowSize, Y: tip.Y - sign*arrowSize}
		v2 = coordinate.Point{X: tip.X + arrowSize, Y: tip.Y - sign*arrowSize}
	default: // horizontal segment
		sign := 1
		if dx < 0 {
			sign = -1
		}
		v1 = coordinate.Point{X: tip.X - sign*arrowSize, Y: tip.Y - arrowSize}
		v2 = coordinate.Point{X: tip.X - sign*arrowSize, Y: tip.Y + arrowSize}
	}
	r.DrawTriangle(v1, v2, tip, fill)
}
