package builder

import (
	"fmt"

	"github.com/katalvlaran/cfgraph/core"
)

// Constructor applies a deterministic mutation to a graph under
// construction, using ed for every structural change as core requires.
// Constructors must validate their own parameters and return sentinel
// errors rather than panicking.
type Constructor func(ed *core.Editor, cfg Config) error

// BuildGraph creates a new core.Graph, resolves cfg from opts, and
// applies every constructor in order inside one edit frame, committing
// only if all constructors succeed. On the first failure the frame is
// popped, discarding any partial construction, and the error is wrapped
// with the constructor's index.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	cfg := newConfig(opts...)

	ed.Push()
	for i, fn := range cons {
		if fn == nil {
			_ = ed.Pop()
			return nil, fmt.Errorf("builder: BuildGraph: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(ed, cfg); err != nil {
			_ = ed.Pop()
			return nil, fmt.Errorf("builder: BuildGraph: constructor %d: %w", i, err)
		}
	}
	ed.Commit()
	return g, nil
}
