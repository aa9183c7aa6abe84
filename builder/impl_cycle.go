package builder

import (
	"fmt"

	"github.com/katalvlaran/cfgraph/core"
)

// MinCycleNodes is the fewest nodes Cycle accepts.
const MinCycleNodes = 2

// Cycle builds a simple directed cycle n0->n1->...->n(k-1)->n0, the
// smallest fixture whose single natural SCC forces cycle removal to run
// before any layering can proceed. Root is n0. k must be at least
// MinCycleNodes.
func Cycle(k int) Constructor {
	return func(ed *core.Editor, _ Config) error {
		if k < MinCycleNodes {
			return fmt.Errorf("builder: Cycle(%d): %w", k, ErrTooFewNodes)
		}
		g := ed.Graph()
		nodes := make([]core.NodeID, k)
		for i := range nodes {
			id, err := ed.MakeNode()
			if err != nil {
				return err
			}
			nodes[i] = id
		}
		for i := range nodes {
			if _, err := ed.MakeEdge(nodes[i], nodes[(i+1)%len(nodes)]); err != nil {
				return err
			}
		}
		return g.SetRoot(nodes[0])
	}
}
