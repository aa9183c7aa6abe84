package dominator_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/dominator"
	"github.com/stretchr/testify/require"
)

func TestComputeDiamond(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, _ := ed.MakeNode()
	b, _ := ed.MakeNode()
	c, _ := ed.MakeNode()
	d, _ := ed.MakeNode()
	require.NoError(t, g.SetRoot(a))
	_, err := ed.MakeEdge(a, b)
	require.NoError(t, err)
	_, err = ed.MakeEdge(a, c)
	require.NoError(t, err)
	_, err = ed.MakeEdge(b, d)
	require.NoError(t, err)
	_, err = ed.MakeEdge(c, d)
	require.NoError(t, err)
	ed.Commit()

	idom, err := dominator.Compute(g)
	require.NoError(t, err)
	require.Equal(t, core.InvalidNodeID, idom.Get(a))
	require.Equal(t, a, idom.Get(b))
	require.Equal(t, a, idom.Get(c))
	require.Equal(t, a, idom.Get(d)) // D is reached via both B and C; only R=A dominates both
}

// TestComputeLengauerTarjanCanonicalGraph reproduces the 13-node graph
// from spec.md §8 scenario 4 (the canonical example from the
// Lengauer-Tarjan paper, which exercises an irreducible loop among
// F/G/I/J/K) and checks the eight immediate-dominator relations spec.md
// lists explicitly.
func TestComputeLengauerTarjanCanonicalGraph(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	names := []string{"R", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	n := make(map[string]core.NodeID, len(names))
	for _, name := range names {
		id, err := ed.MakeNode()
		require.NoError(t, err)
		n[name] = id
	}
	require.NoError(t, g.SetRoot(n["R"]))

	edges := [][2]string{
		{"R", "A"}, {"R", "B"}, {"R", "C"},
		{"A", "D"},
		{"B", "A"}, {"B", "D"}, {"B", "E"},
		{"C", "F"}, {"C", "G"},
		{"D", "L"},
		{"E", "H"},
		{"F", "I"},
		{"G", "I"}, {"G", "J"},
		{"H", "E"}, {"H", "K"},
		{"I", "K"},
		{"J", "I"},
		{"K", "I"}, {"K", "R"},
		{"L", "H"},
	}
	for _, e := range edges {
		_, err := ed.MakeEdge(n[e[0]], n[e[1]])
		require.NoError(t, err)
	}
	ed.Commit()

	idom, err := dominator.Compute(g)
	require.NoError(t, err)

	want := map[string]string{
		"A": "R", "B": "R", "C": "R",
		"F": "C", "G": "C", "J": "G", "L": "D", "H": "R",
	}
	for node, wantIdom := range want {
		require.Equalf(t, n[wantIdom], idom.Get(n[node]), "idom(%s)", node)
	}
}
