package region

import "errors"

var (
	// ErrGraphNil is returned when Build is given a nil graph.
	ErrGraphNil = errors.New("region: graph is nil")
	// ErrTreeNil is returned when Build is given a nil PST.
	ErrTreeNil = errors.New("region: program structure tree is nil")
)
