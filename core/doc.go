// Package core defines the Graph, Node, and Edge types that every layout
// pass in cfgraph reads and writes, plus the versioned Editor that is the
// only way to mutate a Graph.
//
// Identities are dense, small, non-negative integers assigned on creation
// and never reused within the lifetime of a Graph; deletion tombstones a
// node or edge rather than reclaiming its ID. This lets every other
// package (attribute, dfs, dominator, sese, ...) index directly into
// slices by ID instead of going through a map.
//
// A Graph is mutated only through an [Editor]. The editor maintains a
// stack of edit frames: [Editor.Push] opens a new frame, [Editor.Pop]
// undoes every operation recorded in the top frame in the precise order
// required to avoid exposing transient dangling IDs (edge edits, then
// edge deletions, then node deletions, then creations), and
// [Editor.Commit] discards the frame stack without undoing anything,
// making the current state permanent.
//
// cfgraph's layout pipeline relies heavily on Push/Pop: the Sugiyama
// driver (package sugiyama) pushes one frame per region, mutates the
// graph with dummy nodes and reversed edges while it lays the region out,
// and pops the frame before returning so none of that scratch state
// leaks into the parent region's view of the graph.
//
// Concurrency: per spec, the layout engine is single-threaded and
// synchronous. Unlike some in-memory graph libraries, Graph and Editor
// hold no internal locks — a Graph must not be shared across goroutines
// without the caller supplying its own synchronization. Storage is still
// partitioned the way a concurrent implementation would (a node table
// separate from an edge table) purely because that shape is convenient
// for the Editor's undo bookkeeping, not for locking.
package core
