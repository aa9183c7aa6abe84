package builder_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/builder"
	"github.com/stretchr/testify/require"
)

func TestDiamond(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Diamond())
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount())
	require.True(t, g.HasNode(g.Root()))
}

func TestChainOfDiamonds(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.ChainOfDiamonds(3))
	require.NoError(t, err)
	require.Equal(t, 1+3*3, g.NodeCount()) // entry + 3 nodes per diamond
	require.Equal(t, 3*4, g.EdgeCount())
}

func TestChainOfDiamondsRejectsZero(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.ChainOfDiamonds(0))
	require.Error(t, err)
}

func TestWheel(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Wheel(5))
	require.NoError(t, err)
	require.Equal(t, 6, g.NodeCount())
	require.Equal(t, 10, g.EdgeCount())
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount())
}

func TestBuildGraphRejectsNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Diamond(), nil)
	require.Error(t, err)
}
