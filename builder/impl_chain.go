package builder

import (
	"fmt"

	"github.com/katalvlaran/cfgraph/core"
)

// ChainOfDiamonds builds count Diamond fixtures end-to-end, each one's
// exit node doubling as the next diamond's entry, exercising the
// region decomposer's handling of sibling SESE regions nested inside a
// single enclosing region. count must be at least 1.
func ChainOfDiamonds(count int) Constructor {
	return func(ed *core.Editor, _ Config) error {
		if count < 1 {
			return fmt.Errorf("builder: ChainOfDiamonds(%d): %w", count, ErrTooFewNodes)
		}
		g := ed.Graph()
		var root, entry core.NodeID
		for i := 0; i < count; i++ {
			if i == 0 {
				a, err := ed.MakeNode()
				if err != nil {
					return err
				}
				entry = a
				root = a
			}
			b, err := ed.MakeNode()
			if err != nil {
				return err
			}
			c, err := ed.MakeNode()
			if err != nil {
				return err
			}
			d, err := ed.MakeNode()
			if err != nil {
				return err
			}
			for _, e := range [][2]core.NodeID{{entry, b}, {entry, c}, {b, d}, {c, d}} {
				if _, err := ed.MakeEdge(e[0], e[1]); err != nil {
					return err
				}
			}
			entry = d
		}
		return g.SetRoot(root)
	}
}
