package builder

import (
	"fmt"

	"github.com/katalvlaran/cfgraph/core"
)

// MinWheelSpokes is the fewest rim nodes Wheel accepts.
const MinWheelSpokes = 3

// Wheel builds a center node with an edge to every rim node, plus a rim
// cycle rim[0]->rim[1]->...->rim[n-1]->rim[0]. The closing rim edge is
// a genuine back edge, exercising cycle removal ahead of layer
// assignment. spokes must be at least MinWheelSpokes. Root is the
// center.
func Wheel(spokes int) Constructor {
	return func(ed *core.Editor, _ Config) error {
		if spokes < MinWheelSpokes {
			return fmt.Errorf("builder: Wheel(%d): %w", spokes, ErrTooFewNodes)
		}
		g := ed.Graph()
		center, err := ed.MakeNode()
		if err != nil {
			return err
		}
		rim := make([]core.NodeID, spokes)
		for i := range rim {
			id, err := ed.MakeNode()
			if err != nil {
				return err
			}
			rim[i] = id
			if _, err := ed.MakeEdge(center, id); err != nil {
				return err
			}
		}
		for i := range rim {
			if _, err := ed.MakeEdge(rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		return g.SetRoot(center)
	}
}
