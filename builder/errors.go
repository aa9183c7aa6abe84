package builder

import "errors"

// ErrTooFewNodes is returned when a fixture's size parameter is below
// the minimum the topology requires to be well-formed.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrNilConstructor is returned when BuildGraph is given a nil
// Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
