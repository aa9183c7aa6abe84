package dfs

import (
	"errors"

	"github.com/katalvlaran/cfgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Run.
var ErrGraphNil = errors.New("dfs: graph is nil")

// ErrStartNotFound indicates the requested start node does not exist.
var ErrStartNotFound = errors.New("dfs: start node not found")

// EdgeKind classifies an edge with respect to a DFS tree.
type EdgeKind int

const (
	// None marks an edge that was not reached by the traversal (e.g. the
	// other endpoint was never visited because traversal started
	// elsewhere and FullTraversal was not requested).
	None EdgeKind = iota
	// Tree marks an edge the traversal followed to an unvisited node.
	Tree
	// Back marks an edge to an ancestor on the current DFS stack,
	// including self-loops.
	Back
	// Forward marks a non-tree edge to a proper descendant.
	Forward
	// Cross marks an edge to a node that is neither ancestor nor
	// descendant of its source.
	Cross
)

func (k EdgeKind) String() string {
	switch k {
	case Tree:
		return "Tree"
	case Back:
		return "Back"
	case Forward:
		return "Forward"
	case Cross:
		return "Cross"
	default:
		return "None"
	}
}

// Option configures a Run.
type Option func(*options)

type options struct {
	fullTraversal bool
}

// WithFullTraversal restarts traversal from every unvisited node, ordered
// by NodeID, covering disconnected components as a forest.
func WithFullTraversal() Option {
	return func(o *options) { o.fullTraversal = true }
}

// Result captures one ordered DFS traversal.
type Result struct {
	// Number maps every visited node to its 0-based discovery order (the
	// "dfs number" spec.md §4.4 refers to).
	Number map[core.NodeID]int
	// Order lists visited nodes in discovery order; Order[Number[id]] == id.
	Order []core.NodeID
	// Parent maps a non-root visited node to its DFS-tree parent.
	Parent map[core.NodeID]core.NodeID
	// EdgeKinds classifies every edge reachable from the traversal roots.
	EdgeKinds map[core.EdgeID]EdgeKind
}

// Visited reports whether id was reached by the traversal.
func (r *Result) Visited(id core.NodeID) bool {
	_, ok := r.Number[id]
	return ok
}
