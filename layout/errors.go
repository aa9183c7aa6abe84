package layout

import "errors"

// ErrUnknownNode is wrapped as xerrors.InvalidArgument when make_edge
// names an endpoint the builder never created.
var ErrUnknownNode = errors.New("layout: unknown node id")

// ErrAlreadyBuilt is wrapped as xerrors.InvalidState when Build is
// called on a Builder that has already produced a CFGLayout, or when a
// make_node/make_edge call arrives after Build.
var ErrAlreadyBuilt = errors.New("layout: builder already consumed by build")

// ErrNoNodes is wrapped as xerrors.DegenerateInput when Build is called
// on a Builder with no nodes at all.
var ErrNoNodes = errors.New("layout: graph has no nodes")

// ErrRendererNil is wrapped as xerrors.InvalidArgument when
// MeasureNodes is called with a nil Renderer.
var ErrRendererNil = errors.New("layout: renderer is nil")

// ErrTooManyEdgeTypes is wrapped as xerrors.InvalidArgument when
// MakeEdge is given more than one optional EdgeType.
var ErrTooManyEdgeTypes = errors.New("layout: MakeEdge takes at most one edge type")

// ErrUnknownEdge is wrapped as xerrors.InvalidArgument when a query
// method names an edge with no waypoints in the layout: an id the
// builder never created, or a self-loop.
var ErrUnknownEdge = errors.New("layout: unknown edge id")

// ErrGraphNil is wrapped as xerrors.InvalidArgument when FromGraph is
// given a nil graph.
var ErrGraphNil = errors.New("layout: graph is nil")
