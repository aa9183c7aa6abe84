package ordering

import "errors"

var (
	// ErrGraphNil is returned when Order is called with a nil graph.
	ErrGraphNil = errors.New("ordering: graph is nil")
	// ErrRanksMissing is returned when a live node has no rank recorded.
	ErrRanksMissing = errors.New("ordering: node has no assigned rank")
)
