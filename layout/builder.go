package layout

import (
	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/dominator"
	"github.com/katalvlaran/cfgraph/internal/xerrors"
	"github.com/katalvlaran/cfgraph/region"
	"github.com/katalvlaran/cfgraph/render"
	"github.com/katalvlaran/cfgraph/sese"
	"github.com/katalvlaran/cfgraph/sugiyama"
)

// EdgeType distinguishes a CFG edge's branch role for rendering
// (spec.md §6): the layout pipeline itself treats every edge uniformly,
// but a caller drawing the result typically colors True/False arms of a
// conditional differently from a Default (unconditional) edge.
type EdgeType int

const (
	EdgeDefault EdgeType = iota
	EdgeTrue
	EdgeFalse
)

func (t EdgeType) String() string {
	switch t {
	case EdgeTrue:
		return "True"
	case EdgeFalse:
		return "False"
	default:
		return "Default"
	}
}

// defaultTextStyle is the label style MakeNodeLabel measures with when
// the caller supplies no renderer of its own.
var defaultTextStyle = render.TextStyle{Size: 12, LineHeight: 14.4, Color: render.Color{A: 255}}

// labelPadding is added around a label's measured footprint so text
// does not touch a node's border.
const labelPadding = 16

// Builder is cfgraph's public façade (spec.md §6): it accumulates
// nodes and edges through an open Editor frame, then Build runs the
// full pipeline (SESE decomposition, §4.11's region composition, and
// every Sugiyama pass within it) and returns an immutable CFGLayout.
//
// A Builder is single-use: once Build succeeds or fails, every further
// node, edge, measurement or Build call fails with ErrAlreadyBuilt
// (Dominators stays available).
type Builder struct {
	g         *core.Graph
	ed        *core.Editor
	sizes     attribute.NodeAttribute[coordinate.Size]
	labels    attribute.NodeAttribute[string]
	edgeTypes attribute.EdgeAttribute[EdgeType]
	haveLabel attribute.NodeAttribute[bool]
	rootSet   bool
	built     bool
}

// NewBuilder returns an empty Builder ready to accept MakeNode/MakeEdge
// calls. Its first node becomes the graph's root, following the
// convention that a control-flow graph's entry block is created first.
func NewBuilder() *Builder {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	return &Builder{
		g:         g,
		ed:        ed,
		sizes:     attribute.NewNodeAttribute(coordinate.Size{}),
		labels:    attribute.NewNodeAttribute(""),
		edgeTypes: attribute.NewEdgeAttribute(EdgeDefault),
		haveLabel: attribute.NewNodeAttribute(false),
	}
}

func (b *Builder) checkOpen(op string) error {
	if b.built {
		return xerrors.New(xerrors.InvalidState, op, ErrAlreadyBuilt)
	}
	return nil
}

func (b *Builder) setRootIfFirst(id core.NodeID) error {
	if b.rootSet {
		return nil
	}
	b.rootSet = true
	return b.g.SetRoot(id)
}

// MakeNode creates a zero-sized node. Callers that want the node
// auto-sized from a label should use MakeNodeLabel or
// MakeNodeLabelMeasured instead; a zero-sized node keeps whatever size
// a later MeasureNodes call or direct attribute write gives it.
func (b *Builder) MakeNode() (core.NodeID, error) {
	if err := b.checkOpen("layout.Builder.MakeNode"); err != nil {
		return core.InvalidNodeID, err
	}
	id, err := b.ed.MakeNode()
	if err != nil {
		return core.InvalidNodeID, err
	}
	if err := b.setRootIfFirst(id); err != nil {
		return core.InvalidNodeID, err
	}
	return id, nil
}

// MakeNodeSized creates a node with an explicit width and height.
func (b *Builder) MakeNodeSized(w, h int) (core.NodeID, error) {
	id, err := b.MakeNode()
	if err != nil {
		return core.InvalidNodeID, err
	}
	b.sizes.Set(id, coordinate.Size{Width: w, Height: h})
	return id, nil
}

// MakeNodeLabel creates a node carrying label, auto-measured with a
// fixed default text style (spec.md §6 "auto-measure").
func (b *Builder) MakeNodeLabel(label string) (core.NodeID, error) {
	id, err := b.MakeNode()
	if err != nil {
		return core.InvalidNodeID, err
	}
	b.labels.Set(id, label)
	b.haveLabel.Set(id, true)
	w, h := measure(nil, label, defaultTextStyle)
	b.sizes.Set(id, coordinate.Size{Width: w, Height: h})
	return id, nil
}

// MakeNodeLabelMeasured creates a node carrying label, measured with r's
// own text metrics (spec.md §6 "measure with renderer's text metrics").
func (b *Builder) MakeNodeLabelMeasured(r render.Renderer, label string) (core.NodeID, error) {
	id, err := b.MakeNode()
	if err != nil {
		return core.InvalidNodeID, err
	}
	b.labels.Set(id, label)
	b.haveLabel.Set(id, true)
	w, h := measure(r, label, defaultTextStyle)
	b.sizes.Set(id, coordinate.Size{Width: w, Height: h})
	return id, nil
}

func measure(r render.Renderer, label string, style render.TextStyle) (w, h int) {
	if r == nil {
		r = render.NewSVGRenderer()
	}
	tw, th := r.MeasureText(label, style)
	return tw + labelPadding, th + labelPadding
}

// MeasureNodes re-measures every labeled node's size against r, so a
// graph built before a concrete renderer was available (or built with
// the default heuristic) can be re-sized with real font metrics before
// Build runs (spec.md §6 "measure_nodes(renderer)").
func (b *Builder) MeasureNodes(r render.Renderer) error {
	if err := b.checkOpen("layout.Builder.MeasureNodes"); err != nil {
		return err
	}
	if r == nil {
		return xerrors.New(xerrors.InvalidArgument, "layout.Builder.MeasureNodes", ErrRendererNil)
	}
	for _, id := range b.g.Nodes() {
		if !b.haveLabel.Get(id) {
			continue
		}
		w, h := measure(r, b.labels.Get(id), defaultTextStyle)
		b.sizes.Set(id, coordinate.Size{Width: w, Height: h})
	}
	return nil
}

// MakeEdge creates an edge from -> to. edgeType defaults to EdgeDefault
// when omitted; passing more than one is an error. Fails with
// InvalidArgument if either endpoint is not a live node in this
// Builder's graph (spec.md §6).
func (b *Builder) MakeEdge(from, to core.NodeID, edgeType ...EdgeType) (core.EdgeID, error) {
	const op = "layout.Builder.MakeEdge"
	if err := b.checkOpen(op); err != nil {
		return core.InvalidEdgeID, err
	}
	if len(edgeType) > 1 {
		return core.InvalidEdgeID, xerrors.New(xerrors.InvalidArgument, op, ErrTooManyEdgeTypes)
	}
	if !b.g.HasNode(from) || !b.g.HasNode(to) {
		return core.InvalidEdgeID, xerrors.New(xerrors.InvalidArgument, op, ErrUnknownNode)
	}
	id, err := b.ed.MakeEdge(from, to)
	if err != nil {
		return core.InvalidEdgeID, xerrors.New(xerrors.InvalidArgument, op, err)
	}
	kind := EdgeDefault
	if len(edgeType) == 1 {
		kind = edgeType[0]
	}
	b.edgeTypes.Set(id, kind)
	return id, nil
}

// Dominators computes the immediate-dominator tree over the Builder's
// graph as it stands (spec.md §4.5, component #5). It may be called at
// any time before or after Build, since it only reads the graph; it
// does not consume the Builder.
func (b *Builder) Dominators() (attribute.NodeAttribute[core.NodeID], error) {
	idom, err := dominator.Compute(b.g)
	if err != nil {
		return idom, xerrors.New(xerrors.InvalidState, "layout.Builder.Dominators", err)
	}
	return idom, nil
}

// Build runs the full pipeline (spec.md §4.6-§4.11) and returns the
// resulting CFGLayout. It consumes the Builder: MakeNode/MakeEdge/
// MeasureNodes/Build all fail with ErrAlreadyBuilt afterward. On
// failure, no partial layout is returned (spec.md §7): the Builder's
// tentative frame is discarded and a single wrapped error surfaces.
func (b *Builder) Build(opts ...sugiyama.Option) (*CFGLayout, error) {
	const op = "layout.Builder.Build"
	if err := b.checkOpen(op); err != nil {
		return nil, err
	}
	if b.g.NodeCount() == 0 {
		b.ed.Commit()
		b.built = true
		return nil, xerrors.New(xerrors.DegenerateInput, op, ErrNoNodes)
	}

	b.ed.Commit()
	b.built = true

	return finish(op, b.g, b.sizes, b.labels, b.haveLabel, b.edgeTypes, opts)
}

// FromGraph builds a CFGLayout directly from a graph a caller already
// assembled (e.g. with package builder's fixtures, or a future source
// adapter per spec.md §1's out-of-scope collaborators), skipping the
// incremental MakeNode/MakeEdge surface entirely. g must already carry
// a root (core.Graph.SetRoot); sizes gives every node's rendered
// width/height. Every edge is treated as EdgeDefault and every node as
// unlabeled, since neither travels with a bare *core.Graph.
func FromGraph(g *core.Graph, sizes attribute.NodeAttribute[coordinate.Size], opts ...sugiyama.Option) (*CFGLayout, error) {
	const op = "layout.FromGraph"
	if g == nil {
		return nil, xerrors.New(xerrors.InvalidArgument, op, ErrGraphNil)
	}
	if g.NodeCount() == 0 {
		return nil, xerrors.New(xerrors.DegenerateInput, op, ErrNoNodes)
	}
	labels := attribute.NewNodeAttribute("")
	haveLabel := attribute.NewNodeAttribute(false)
	edgeTypes := attribute.NewEdgeAttribute(EdgeDefault)
	return finish(op, g, sizes, labels, haveLabel, edgeTypes, opts)
}

// finish runs the SESE/region pipeline shared by Builder.Build and
// FromGraph and assembles their common CFGLayout result.
func finish(
	op string,
	g *core.Graph,
	sizes attribute.NodeAttribute[coordinate.Size],
	labels attribute.NodeAttribute[string],
	haveLabel attribute.NodeAttribute[bool],
	edgeTypes attribute.EdgeAttribute[EdgeType],
	opts []sugiyama.Option,
) (*CFGLayout, error) {
	tree, err := sese.Analyze(g)
	if err != nil {
		return nil, xerrors.New(xerrors.DegenerateInput, op, err)
	}

	regionLayout, err := region.Build(g, tree, sizes, opts...)
	if err != nil {
		return nil, xerrors.New(xerrors.Unsupported, op, err)
	}

	allEdges := g.Edges()
	drawnEdges := make([]core.EdgeID, 0, len(allEdges))
	for _, eid := range allEdges {
		// A self-loop never enters any region's local graph (§4.11's
		// resolve step skips an edge whose two endpoints resolve to
		// the same local node), so it never reaches cycle removal and carries no
		// waypoints in the final layout even though it is still a
		// live edge in the source graph.
		if regionLayout.Waypoints.Has(eid) {
			drawnEdges = append(drawnEdges, eid)
		}
	}

	allNodes := g.Nodes()
	nodeSet := make(map[core.NodeID]bool, len(allNodes))
	for _, n := range allNodes {
		nodeSet[n] = true
	}

	return &CFGLayout{
		layout:    regionLayout,
		labels:    labels,
		haveLabel: haveLabel,
		edgeTypes: edgeTypes,
		nodes:     allNodes,
		edges:     drawnEdges,
		nodeSet:   nodeSet,
	}, nil
}
