package core_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/core"
	"github.com/stretchr/testify/require"
)

// diamond builds A->B, A->C, B->D, C->D and returns the node IDs in that order.
func diamond(t *testing.T) (*core.Graph, *core.Editor, [4]core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	a, err := ed.MakeNode()
	require.NoError(t, err)
	b, err := ed.MakeNode()
	require.NoError(t, err)
	c, err := ed.MakeNode()
	require.NoError(t, err)
	d, err := ed.MakeNode()
	require.NoError(t, err)
	require.NoError(t, g.SetRoot(a))
	_, err = ed.MakeEdge(a, b)
	require.NoError(t, err)
	_, err = ed.MakeEdge(a, c)
	require.NoError(t, err)
	_, err = ed.MakeEdge(b, d)
	require.NoError(t, err)
	_, err = ed.MakeEdge(c, d)
	require.NoError(t, err)
	ed.Commit()
	return g, ed, [4]core.NodeID{a, b, c, d}
}

func TestMakeNodeRejectsNoOpenFrame(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	_, err := ed.MakeNode()
	require.ErrorIs(t, err, core.ErrNoOpenFrame)
}

func TestMakeEdgeRejectsUnknownEndpoint(t *testing.T) {
	g, ed, nodes := diamond(t)
	ed.Push()
	_, err := ed.MakeEdge(nodes[0], core.NodeID(999))
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	ed.Pop()
	require.NoError(t, ed.Close())
	_ = g
}

func TestEditorRoundTrip(t *testing.T) {
	// Scenario 6 from spec.md §8: push; remove_node(B); pop leaves edges
	// A->B and B->D intact and node_count unchanged.
	g, ed, nodes := diamond(t)
	wantNodes := g.NodeCount()
	wantEdges := g.EdgeCount()

	ed.Push()
	require.NoError(t, ed.RemoveNode(nodes[1]))
	require.Equal(t, wantNodes-1, g.NodeCount())
	require.NoError(t, ed.Pop())

	require.Equal(t, wantNodes, g.NodeCount())
	require.Equal(t, wantEdges, g.EdgeCount())
	require.True(t, g.HasNode(nodes[1]))

	inc, err := g.Incident(nodes[1])
	require.NoError(t, err)
	require.Len(t, inc, 2)
}

func TestEditorPopRestoresExactIncidentOrder(t *testing.T) {
	g, ed, nodes := diamond(t)
	before, err := g.Incident(nodes[3]) // D: [B->D, C->D]
	require.NoError(t, err)

	ed.Push()
	// Remove and recreate an edge touching D via RemoveNode(C) cascade.
	require.NoError(t, ed.RemoveNode(nodes[2]))
	require.NoError(t, ed.Pop())

	after, err := g.Incident(nodes[3])
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestEditEdgePreservesIdentity(t *testing.T) {
	g, ed, nodes := diamond(t)
	outs, err := g.OutEdges(nodes[0])
	require.NoError(t, err)
	require.NotEmpty(t, outs)
	eid := outs[0]

	ed.Push()
	require.NoError(t, ed.EditEdge(eid, nodes[1], nodes[2]))
	got, ok := g.Edge(eid)
	require.True(t, ok)
	require.Equal(t, nodes[1], got.From)
	require.Equal(t, nodes[2], got.To)
	require.NoError(t, ed.Pop())

	got, ok = g.Edge(eid)
	require.True(t, ok)
	require.Equal(t, nodes[0], got.From)
}

func TestRemoveRootRejected(t *testing.T) {
	g, ed, nodes := diamond(t)
	ed.Push()
	err := ed.RemoveNode(nodes[0])
	require.ErrorIs(t, err, core.ErrRootRemoval)
	ed.Pop()
	require.NoError(t, ed.Close())
	_ = g
}

func TestCommitWithNoOperationsIsNoOp(t *testing.T) {
	g, ed, _ := diamond(t)
	n, e := g.NodeCount(), g.EdgeCount()
	ed.Push()
	ed.Commit()
	require.Equal(t, n, g.NodeCount())
	require.Equal(t, e, g.EdgeCount())
}

func TestNestedFramesPopIndependently(t *testing.T) {
	g, ed, nodes := diamond(t)
	ed.Push()
	x, err := ed.MakeNode()
	require.NoError(t, err)
	ed.Push()
	_, err = ed.MakeEdge(nodes[0], x)
	require.NoError(t, err)
	require.NoError(t, ed.Pop()) // undo the edge only
	require.True(t, g.HasNode(x))
	require.NoError(t, ed.Pop()) // undo node x
	require.False(t, g.HasNode(x))
}

func TestCloseRejectsOpenFrames(t *testing.T) {
	g := core.NewGraph()
	ed := core.NewEditor(g)
	ed.Push()
	require.ErrorIs(t, ed.Close(), core.ErrFramesOpen)
	ed.Pop()
	require.NoError(t, ed.Close())
}
