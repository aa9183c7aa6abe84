package coordinate_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/stretchr/testify/require"
)

// buildSplitFixture builds r (rank 3) -> m (rank 2) -> l (rank 1), plus
// a direct r -> l edge spanning two layers that must be split.
func buildSplitFixture(t *testing.T) (*core.Editor, core.NodeID, core.NodeID, core.NodeID, core.EdgeID, attribute.NodeAttribute[int], attribute.NodeAttribute[coordinate.Priority]) {
	t.Helper()
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	r, _ := ed.MakeNode()
	m, _ := ed.MakeNode()
	l, _ := ed.MakeNode()
	require.NoError(t, g.SetRoot(r))
	_, err := ed.MakeEdge(r, m)
	require.NoError(t, err)
	_, err = ed.MakeEdge(m, l)
	require.NoError(t, err)
	longEdge, err := ed.MakeEdge(r, l)
	require.NoError(t, err)

	ranks := attribute.NewNodeAttribute(0)
	ranks.Set(r, 3)
	ranks.Set(m, 2)
	ranks.Set(l, 1)
	priority := attribute.NewNodeAttribute(coordinate.PriorityReal)

	return ed, r, m, l, longEdge, ranks, priority
}

func TestSplitLongEdgesInsertsOneDummy(t *testing.T) {
	ed, r, m, l, longEdge, ranks, priority := buildSplitFixture(t)

	segments, err := coordinate.SplitLongEdges(ed, ranks, priority)
	require.NoError(t, err)
	ed.Commit()

	require.Len(t, segments[longEdge], 2, "a rank-3-to-rank-1 edge needs one dummy, hence two segment edges")

	g := ed.Graph()
	first, ok := g.Edge(segments[longEdge][0])
	require.True(t, ok)
	require.Equal(t, r, first.From)
	dummy := first.To
	require.Equal(t, coordinate.PriorityDummy, priority.Get(dummy))
	require.Equal(t, 2, ranks.Get(dummy))

	second, ok := g.Edge(segments[longEdge][1])
	require.True(t, ok)
	require.Equal(t, dummy, second.From)
	require.Equal(t, l, second.To)

	require.False(t, g.HasEdge(longEdge), "the original long edge should have been removed")

	require.Equal(t, 1, len(g.Nodes())-3, "exactly one dummy node should have been created")
	_ = m
}

func TestSplitLongEdgesRejectsUnlayeredGraph(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, _ := ed.MakeNode()
	b, _ := ed.MakeNode()
	require.NoError(t, g.SetRoot(a))
	_, err := ed.MakeEdge(a, b)
	require.NoError(t, err)

	ranks := attribute.NewNodeAttribute(0) // both default to 0: zero span
	priority := attribute.NewNodeAttribute(coordinate.PriorityReal)

	_, err = coordinate.SplitLongEdges(ed, ranks, priority)
	require.ErrorIs(t, err, coordinate.ErrNotLayered)
}

func TestAssignYStacksLayersMonotonically(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, _ := ed.MakeNode()
	b, _ := ed.MakeNode()
	ed.Commit()

	layers := [][]core.NodeID{{a}, {b}}
	sizes := attribute.NewNodeAttribute(coordinate.Size{Width: 40, Height: 20})
	top, bottom := coordinate.AssignY(layers, sizes, []int{2}, coordinate.Config{EdgeHeight: 8, YGutter: 16})

	require.Len(t, top, 2)
	require.Less(t, top[0], bottom[0])
	require.Less(t, bottom[0], top[1])
}

func TestAssignXKeepsNodesNonOverlapping(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, _ := ed.MakeNode()
	b, _ := ed.MakeNode()
	c, _ := ed.MakeNode()
	ed.Commit()

	layers := [][]core.NodeID{{a, b, c}}
	sizes := attribute.NewNodeAttribute(coordinate.Size{Width: 40, Height: 20})
	priority := attribute.NewNodeAttribute(coordinate.PriorityReal)
	cfg := coordinate.Config{XGutter: 10, XPasses: 5}

	x := coordinate.AssignX(g, layers, sizes, priority, cfg)
	require.Less(t, x.Get(a), x.Get(b))
	require.Less(t, x.Get(b), x.Get(c))
	require.GreaterOrEqual(t, x.Get(b)-x.Get(a), 40+10)
}

func TestAssignChannelsCoversEveryGapEdge(t *testing.T) {
	ed, r, m, l, longEdge, ranks, priority := buildSplitFixture(t)
	segments, err := coordinate.SplitLongEdges(ed, ranks, priority)
	require.NoError(t, err)
	ed.Commit()
	g := ed.Graph()

	dummy := firstTo(t, g, segments[longEdge][0])
	gap0 := []core.EdgeID{segments[longEdge][0]}
	for _, eid := range g.Edges() {
		data, _ := g.Edge(eid)
		if data.From == r && data.To == m {
			gap0 = append(gap0, eid)
		}
	}
	gaps := [][]core.EdgeID{gap0}

	x := attribute.NewNodeAttribute(0)
	x.Set(r, 0)
	x.Set(m, 60)
	x.Set(dummy, 0)

	channels := coordinate.AssignChannels(g, x, gaps, nil)
	for _, eid := range gap0 {
		_, ok := channels[eid]
		require.True(t, ok)
	}
}

func firstTo(t *testing.T, g *core.Graph, eid core.EdgeID) core.NodeID {
	t.Helper()
	data, ok := g.Edge(eid)
	require.True(t, ok)
	return data.To
}
