package sugiyama

import "errors"

var (
	// ErrEditorNil is returned when Run is given a nil editor.
	ErrEditorNil = errors.New("sugiyama: editor is nil")
	// ErrGraphNil is returned when Run is given a nil graph.
	ErrGraphNil = errors.New("sugiyama: graph is nil")
	// ErrNoRoot is returned when the graph has no root set.
	ErrNoRoot = errors.New("sugiyama: graph has no root")
)
