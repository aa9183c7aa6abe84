package subgraph_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/core"
	"github.com/katalvlaran/cfgraph/subgraph"
	"github.com/stretchr/testify/require"
)

func buildDiamond(t *testing.T) (*core.Graph, *core.Editor, [4]core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	var ids [4]core.NodeID
	for i := range ids {
		id, err := ed.MakeNode()
		require.NoError(t, err)
		ids[i] = id
	}
	require.NoError(t, g.SetRoot(ids[0]))
	for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_, err := ed.MakeEdge(ids[pair[0]], ids[pair[1]])
		require.NoError(t, err)
	}
	ed.Commit()
	return g, ed, ids
}

func TestSelectNodePullsInEdgesBetweenSelected(t *testing.T) {
	g, ed, ids := buildDiamond(t)
	sg := subgraph.New(g, ed)

	require.NoError(t, sg.SelectNode(ids[0]))
	require.NoError(t, sg.SelectNode(ids[1]))
	require.Len(t, sg.Edges(), 1, "selecting both endpoints of 0->1 pulls in that edge")

	require.NoError(t, sg.SelectNode(ids[3]))
	require.NoError(t, sg.SelectNode(ids[2]))
	require.Len(t, sg.Edges(), 4)
}

func TestUnselectNodeDropsIncidentEdges(t *testing.T) {
	g, ed, ids := buildDiamond(t)
	sg := subgraph.New(g, ed)
	for _, id := range ids {
		require.NoError(t, sg.SelectNode(id))
	}
	require.Len(t, sg.Edges(), 4)

	sg.UnselectNode(ids[1])
	require.False(t, sg.HasNode(ids[1]))
	for _, eid := range sg.Edges() {
		e, _ := g.Edge(eid)
		require.NotEqual(t, ids[1], e.From)
		require.NotEqual(t, ids[1], e.To)
	}
}

func TestPopPrunesDeselectedIds(t *testing.T) {
	g, ed, ids := buildDiamond(t)
	sg := subgraph.New(g, ed)
	for _, id := range ids {
		require.NoError(t, sg.SelectNode(id))
	}

	sg.Push()
	n, err := sg.MakeNode()
	require.NoError(t, err)
	require.NoError(t, ed.RemoveNode(ids[1]))
	require.NoError(t, sg.Pop())
	require.Error(t, sg.SetRoot(n), "a node created inside the popped frame is pruned from the selection")
	require.True(t, sg.HasNode(ids[1]), "pop undoes the removal, so the node is live and still selected")
}
