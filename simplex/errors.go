package simplex

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to Compute.
var ErrGraphNil = errors.New("simplex: graph is nil")

// ErrNoRoot is returned when g has no root set.
var ErrNoRoot = errors.New("simplex: graph has no root")

// ErrCyclic is returned when g contains a cycle; Compute requires an
// acyclic graph, since rank is only well-defined over a DAG.
var ErrCyclic = errors.New("simplex: graph is cyclic")
