package coordinate

import "errors"

var (
	// ErrGraphNil is returned when an operation is given a nil graph.
	ErrGraphNil = errors.New("coordinate: graph is nil")
	// ErrEditorNil is returned when SplitLongEdges is given a nil editor.
	ErrEditorNil = errors.New("coordinate: editor is nil")
	// ErrNotLayered is returned when an edge's endpoints have equal or
	// inverted rank, meaning layer assignment has not run (or did not
	// complete) for this graph.
	ErrNotLayered = errors.New("coordinate: edge does not span a positive rank difference")
)
