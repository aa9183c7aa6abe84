package builder

import "github.com/katalvlaran/cfgraph/core"

// Diamond builds the canonical if/else-then fixture: an entry node
// branching to two arms that rejoin at a single exit (A->B, A->C,
// B->D, C->D), with A as root. This is the smallest graph containing a
// genuine SESE region with two members, and is used throughout
// cfgraph's own tests as the baseline sanity check.
func Diamond() Constructor {
	return func(ed *core.Editor, _ Config) error {
		g := ed.Graph()
		a, err := ed.MakeNode()
		if err != nil {
			return err
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
		for _, e := range [][2]core.NodeID{{a, b}, {a, c}, {b, d}, {c, d}} {
			if _, err := ed.MakeEdge(e[0], e[1]); err != nil {
				return err
			}
		}
		return g.SetRoot(a)
	}
}
