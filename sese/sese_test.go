package sese_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/sese"
	"github.com/stretchr/testify/require"
)

func collectMembers(r *sese.Region, into map[core.NodeID]int) {
	for _, m := range r.Members {
		into[m]++
	}
	for _, c := range r.Children {
		collectMembers(c, into)
	}
}

func TestAnalyzeDiamondCoversEveryNodeExactlyOnce(t *testing.T) {
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

	tree, err := sese.Analyze(g)
	require.NoError(t, err)
	require.NotNil(t, tree.Root)

	counts := map[core.NodeID]int{}
	collectMembers(tree.Root, counts)
	require.Equal(t, map[core.NodeID]int{a: 1, b: 1, c: 1, d: 1}, counts)

	// The graph is restored to its pre-analysis shape: no synthetic node
	// or edge survives Analyze's returned count.
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount())
}

func TestAnalyzeChainOfDiamondsProducesNestedRegions(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	nodes := make([]core.NodeID, 0, 9)
	mk := func() core.NodeID {
		id, err := ed.MakeNode()
		require.NoError(t, err)
		nodes = append(nodes, id)
		return id
	}
	a, b1, c1, d, b2, c2, e, b3, c3 := mk(), mk(), mk(), mk(), mk(), mk(), mk(), mk(), mk()
	require.NoError(t, g.SetRoot(a))
	edges := [][2]core.NodeID{
		{a, b1}, {a, c1}, {b1, d}, {c1, d},
		{d, b2}, {d, c2}, {b2, e}, {c2, e},
		{e, b3}, {e, c3},
	}
	last, err := ed.MakeNode()
	require.NoError(t, err)
	nodes = append(nodes, last)
	edges = append(edges, [2]core.NodeID{b3, last}, [2]core.NodeID{c3, last})
	for _, e := range edges {
		_, err := ed.MakeEdge(e[0], e[1])
		require.NoError(t, err)
	}
	ed.Commit()

	tree, err := sese.Analyze(g)
	require.NoError(t, err)

	counts := map[core.NodeID]int{}
	collectMembers(tree.Root, counts)
	require.Len(t, counts, len(nodes))
	for _, n := range nodes {
		require.Equal(t, 1, counts[n], "node %v should appear exactly once", n)
	}
}

// TestAnalyzeSiblingLoopsShareCappingBracket builds two sibling loops
// whose back edges both close on a node two levels above their shared
// header (R -> P -> H, with H's two branches each looping back to P
// rather than to H itself). At H, both branches report the same hi
// value pointing at P, so classify pushes a single hi2 capping bracket
// that must survive until P's own iteration removes it; before the fix
// that bracket was a bare, untracked core.InvalidEdgeID node that could
// never be found again, corrupting the cycle-equivalence classes above
// H for the rest of the walk.
func TestAnalyzeSiblingLoopsShareCappingBracket(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	r, _ := ed.MakeNode()
	p, _ := ed.MakeNode()
	h, _ := ed.MakeNode()
	b1, _ := ed.MakeNode()
	b2, _ := ed.MakeNode()
	c1, _ := ed.MakeNode()
	c2, _ := ed.MakeNode()
	d, _ := ed.MakeNode()
	require.NoError(t, g.SetRoot(r))

	edges := [][2]core.NodeID{
		{r, p}, {p, h},
		{h, b1}, {b1, b2}, {b2, p}, // sibling loop 1, closes on p
		{h, c1}, {c1, c2}, {c2, p}, // sibling loop 2, closes on p
		{h, d}, // dead end, becomes the synthetic exit's predecessor
	}
	for _, e := range edges {
		_, err := ed.MakeEdge(e[0], e[1])
		require.NoError(t, err)
	}
	ed.Commit()

	nodes := []core.NodeID{r, p, h, b1, b2, c1, c2, d}

	tree, err := sese.Analyze(g)
	require.NoError(t, err)
	require.NotNil(t, tree.Root)

	counts := map[core.NodeID]int{}
	collectMembers(tree.Root, counts)
	require.Len(t, counts, len(nodes))
	for _, n := range nodes {
		require.Equal(t, 1, counts[n], "node %v should appear exactly once", n)
	}

	require.Equal(t, len(nodes), g.NodeCount())
	require.Equal(t, len(edges), g.EdgeCount())
}

func TestAnalyzeRejectsUnreachableNode(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, _ := ed.MakeNode()
	_, _ = ed.MakeNode() // isolated, unreachable from a
	require.NoError(t, g.SetRoot(a))
	ed.Commit()

	_, err := sese.Analyze(g)
	require.Error(t, err)
	require.True(t, errors.Is(err, sese.ErrUnreachableExit))
}

func TestAnalyzeRejectsNilGraph(t *testing.T) {
	_, err := sese.Analyze(nil)
	require.True(t, errors.Is(err, sese.ErrGraphNil))
}
