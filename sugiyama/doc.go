// Package sugiyama drives the full per-region layered-drawing pipeline
// (spec.md §4.10): cycle removal, layer assignment, node sliding, IO
// extremity attachment, long-edge splitting, Y assignment, vertex
// ordering, and coordinate/waypoint/channel assignment, all inside one
// editor frame that is popped before Run returns so dummy nodes and
// reversed edges never leak into the persisted graph.
package sugiyama
