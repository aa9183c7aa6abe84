package udfs_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/udfs"
	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) (*core.Graph, [3]core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	var ids [3]core.NodeID
	for i := range ids {
		id, err := ed.MakeNode()
		require.NoError(t, err)
		ids[i] = id
	}
	require.NoError(t, g.SetRoot(ids[0]))
	_, err := ed.MakeEdge(ids[0], ids[1])
	require.NoError(t, err)
	_, err = ed.MakeEdge(ids[1], ids[2])
	require.NoError(t, err)
	_, err = ed.MakeEdge(ids[2], ids[0]) // closes the cycle
	require.NoError(t, err)
	ed.Commit()
	return g, ids
}

func TestUDFSClassifiesTriangle(t *testing.T) {
	g, ids := buildTriangle(t)
	res, err := udfs.Run(g, ids[0], false)
	require.NoError(t, err)

	require.True(t, res.Visited(ids[0]))
	require.True(t, res.Visited(ids[1]))
	require.True(t, res.Visited(ids[2]))

	tree, back := 0, 0
	for _, k := range res.EdgeKinds {
		switch k {
		case udfs.UTree:
			tree++
		case udfs.UBack:
			back++
		}
	}
	require.Equal(t, 2, tree)
	require.Equal(t, 1, back)
}

func TestPatriarchalIsAncestor(t *testing.T) {
	g, ids := buildTriangle(t)
	res, err := udfs.Run(g, ids[0], false)
	require.NoError(t, err)

	require.True(t, res.IsAncestor(ids[0], ids[0]))
	require.True(t, res.IsAncestor(ids[0], ids[1]))
	require.False(t, res.IsAncestor(ids[2], ids[1]))
}

func TestUDFSFullTraversal(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, _ := ed.MakeNode()
	b, _ := ed.MakeNode()
	require.NoError(t, g.SetRoot(a))
	ed.Commit()

	res, err := udfs.Run(g, a, true)
	require.NoError(t, err)
	require.True(t, res.Visited(a))
	require.True(t, res.Visited(b))
}
