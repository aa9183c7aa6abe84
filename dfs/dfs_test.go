package dfs_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/dfs"
	"github.com/stretchr/testify/require"
)

// wikipediaGraph builds the 8-node, 10-edge example from spec.md §8
// scenario 3 (Wikipedia's canonical DFS classification example), nodes
// numbered 1..8 in creation order mapped 0-indexed here.
func wikipediaGraph(t *testing.T) (*core.Graph, []core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	ids := make([]core.NodeID, 8)
	for i := range ids {
		id, err := ed.MakeNode()
		require.NoError(t, err)
		ids[i] = id
	}
	require.NoError(t, g.SetRoot(ids[0]))
	// 1-indexed edges from the canonical example, converted to 0-indexed.
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 4},
		{4, 1}, {0, 5}, {5, 6}, {6, 7}, {7, 5},
	}
	for _, e := range edges {
		_, err := ed.MakeEdge(ids[e[0]], ids[e[1]])
		require.NoError(t, err)
	}
	ed.Commit()
	return g, ids
}

func TestDFSClassifiesBackEdge(t *testing.T) {
	g, ids := wikipediaGraph(t)
	res, err := dfs.Run(g, ids[0])
	require.NoError(t, err)

	// 2->0 (index 2->0, i.e. node[2]->node[0]) must be a Back edge: node 0
	// is an ancestor of node 2 on the DFS stack.
	edgesOf, err := g.OutEdges(ids[2])
	require.NoError(t, err)
	require.Len(t, edgesOf, 1)
	require.Equal(t, dfs.Back, res.EdgeKinds[edgesOf[0]])
}

func TestDFSSelfLoopIsBack(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, err := ed.MakeNode()
	require.NoError(t, err)
	require.NoError(t, g.SetRoot(a))
	loop, err := ed.MakeEdge(a, a)
	require.NoError(t, err)
	ed.Commit()

	res, err := dfs.Run(g, a)
	require.NoError(t, err)
	require.Equal(t, dfs.Back, res.EdgeKinds[loop])
}

func TestDFSFullTraversalCoversDisconnected(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, _ := ed.MakeNode()
	b, _ := ed.MakeNode()
	require.NoError(t, g.SetRoot(a))
	ed.Commit()

	res, err := dfs.Run(g, a, dfs.WithFullTraversal())
	require.NoError(t, err)
	require.True(t, res.Visited(a))
	require.True(t, res.Visited(b))
}

func TestDFSRejectsUnknownStart(t *testing.T) {
	g := core.NewGraph()
	_, err := dfs.Run(g, core.NodeID(42))
	require.ErrorIs(t, err, dfs.ErrStartNotFound)
}
