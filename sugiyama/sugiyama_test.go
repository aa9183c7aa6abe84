package sugiyama_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/sugiyama"
	"github.com/stretchr/testify/require"
)

func buildDiamond(t *testing.T) (*core.Graph, *core.Editor, core.NodeID, core.NodeID, core.NodeID, core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, _ := ed.MakeNode()
	b, _ := ed.MakeNode()
	c, _ := ed.MakeNode()
	d, _ := ed.MakeNode()
	require.NoError(t, g.SetRoot(a))
	for _, e := range [][2]core.NodeID{{a, b}, {a, c}, {b, d}, {c, d}} {
		_, err := ed.MakeEdge(e[0], e[1])
		require.NoError(t, err)
	}
	ed.Commit()
	return g, ed, a, b, c, d
}

func TestRunLaysOutDiamondOrthogonally(t *testing.T) {
	g, ed, a, b, c, d := buildDiamond(t)
	sizes := attribute.NewNodeAttribute(coordinate.Size{Width: 60, Height: 30})

	result, err := sugiyama.Run(ed, sizes, core.InvalidNodeID, core.InvalidNodeID)
	require.NoError(t, err)
	require.Greater(t, result.Width, 0)
	require.Greater(t, result.Height, 0)

	for _, n := range []core.NodeID{a, b, c, d} {
		_ = result.Pos.Get(n) // every original node must have a position
	}

	require.Len(t, result.Waypoints, len(g.Edges()))
	for eid, pts := range result.Waypoints {
		require.GreaterOrEqual(t, len(pts), 2, "edge %d should have at least two waypoints", eid)
		for i := 0; i+1 < len(pts); i++ {
			p, q := pts[i], pts[i+1]
			sameX := p.X == q.X
			sameY := p.Y == q.Y
			require.True(t, sameX || sameY, "waypoints %v -> %v on edge %d are not axis-aligned", p, q, eid)
			require.False(t, sameX && sameY, "waypoints %v -> %v on edge %d do not advance", p, q, eid)
		}
	}
}

func TestRunAttachesIOExtremityWaypoints(t *testing.T) {
	_, ed, a, _, _, d := buildDiamond(t)
	sizes := attribute.NewNodeAttribute(coordinate.Size{Width: 60, Height: 30})

	result, err := sugiyama.Run(ed, sizes, a, d)
	require.NoError(t, err)
	require.NotEmpty(t, result.EntryWaypoints)
	require.NotEmpty(t, result.ExitWaypoints)
}

func TestRunRejectsNilEditor(t *testing.T) {
	sizes := attribute.NewNodeAttribute(coordinate.Size{})
	_, err := sugiyama.Run(nil, sizes, core.InvalidNodeID, core.InvalidNodeID)
	require.ErrorIs(t, err, sugiyama.ErrEditorNil)
}
