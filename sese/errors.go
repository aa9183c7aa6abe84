package sese

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to Analyze.
var ErrGraphNil = errors.New("sese: graph is nil")

// ErrNoRoot is returned when g has no root set.
var ErrNoRoot = errors.New("sese: graph has no root")

// ErrUnreachableExit is returned, before preprocessing, when some node
// cannot be reached from the root even with every edge treated as
// undirected (spec.md §7 DegenerateInput).
var ErrUnreachableExit = errors.New("sese: node unreachable from root")
