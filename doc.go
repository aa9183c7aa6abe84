// Package cfgraph lays out control-flow graphs using the Sugiyama
// layered-drawing method: cycle removal, layer assignment by network
// simplex, crossing-reduction ordering, coordinate assignment, and
// orthogonal edge routing.
//
// A build starts from layout.NewBuilder, which accumulates nodes and
// edges through an Editor frame much like core.Graph does on its own,
// then runs the full pipeline:
//
//	b := layout.NewBuilder()
//	entry, _ := b.MakeNodeLabel("entry")
//	exit, _ := b.MakeNodeLabel("exit")
//	b.MakeEdge(entry, exit)
//	cfg, err := b.Build()
//
// cfg.Render draws the result onto any render.Renderer; render.SVGRenderer
// is the bundled implementation.
//
// Everything under the pipeline is organized by concern:
//
//	core/       — Graph, versioned Editor, sentinel errors
//	attribute/  — generic sparse ID -> T stores decoupled from the graph
//	subgraph/   — a live view over a subset of a graph's nodes and edges
//	dfs/ udfs/ bfs/ — ordered/unordered traversal and reachability
//	dominator/  — Lengauer-Tarjan immediate dominators
//	sese/       — single-entry-single-exit region decomposition (PST)
//	simplex/ matrix/ — network simplex rank assignment
//	ordering/   — median heuristic + transpose crossing reduction
//	coordinate/ — x/y assignment, orthogonal waypoints, channel routing
//	sugiyama/   — the per-region pipeline driver
//	region/     — recursive region composition over the PST
//	render/     — Renderer interfaces and the SVG implementation
//	layout/     — the public Builder/CFGLayout façade described above
//	builder/    — deterministic fixture graphs (diamond, wheel, cycle, ...)
//	cmd/cfgraphdemo/ — a CLI exercising a fixture end to end
//
// The engine is single-threaded and synchronous: one call sequence
// (build graph, build layout, render) owns the data throughout.
package cfgraph
