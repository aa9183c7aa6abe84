package simplex_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/simplex"
	"github.com/stretchr/testify/require"
)

func TestComputeDiamondThreeLayers(t *testing.T) {
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

	ranks, layerCount, err := simplex.Compute(g, nil)
	require.NoError(t, err)
	require.Equal(t, 3, layerCount)
	require.Equal(t, 3, ranks.Get(a))
	require.Equal(t, 2, ranks.Get(b))
	require.Equal(t, 2, ranks.Get(c))
	require.Equal(t, 1, ranks.Get(d))

	for _, e := range g.Edges() {
		ed, _ := g.Edge(e)
		require.Less(t, ranks.Get(ed.To), ranks.Get(ed.From), "every edge must span at least one layer downward")
	}
}

func TestComputeRejectsCycle(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, _ := ed.MakeNode()
	b, _ := ed.MakeNode()
	require.NoError(t, g.SetRoot(a))
	_, err := ed.MakeEdge(a, b)
	require.NoError(t, err)
	_, err = ed.MakeEdge(b, a)
	require.NoError(t, err)
	ed.Commit()

	_, _, err = simplex.Compute(g, nil)
	require.Error(t, err)
}
