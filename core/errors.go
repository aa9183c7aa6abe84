package core

import "errors"

// Sentinel errors for core graph and editor operations, matching the
// InvalidArgument/InvalidState taxonomy shared across cfgraph (see
// internal/xerrors).
var (
	// ErrInvalidArgument marks a node/edge id outside the graph.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNoOpenFrame marks an edit attempted with no open Editor frame.
	ErrNoOpenFrame = errors.New("core: no open edit frame")

	// ErrRootRemoval marks an attempt to remove the graph's root node.
	ErrRootRemoval = errors.New("core: cannot remove root node")

	// ErrFramesOpen marks Editor teardown with frames still on the stack;
	// this is a programmer-error assertion, not a recoverable condition.
	ErrFramesOpen = errors.New("core: editor torn down with open frames")
)
