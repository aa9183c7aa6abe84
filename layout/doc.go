// Package layout is cfgraph's public façade (spec.md §6): Builder
// exposes make_node/make_edge/measure_nodes/build, and the CFGLayout it
// produces exposes get_coords/get_waypoints/get_width/get_height/
// node_count/edge_count/render. Internally it wires core.Graph and
// core.Editor to sese.Analyze and region.Build, translating every
// error the pipeline can raise into the internal/xerrors taxonomy
// spec.md §7 defines.
package layout
