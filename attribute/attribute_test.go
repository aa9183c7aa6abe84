package attribute_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/attribute"
	"github.com/katalvlaran/cfgraph/core"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaultAndGrowth(t *testing.T) {
	s := attribute.NewStore(-1)
	require.Equal(t, -1, s.Get(5))
	require.False(t, s.Has(5))

	s.Set(5, 42)
	require.Equal(t, 42, s.Get(5))
	require.True(t, s.Has(5))
	require.Equal(t, -1, s.Get(3))
	require.Equal(t, 6, s.Len())
}

func TestStoreGetGrowsBacking(t *testing.T) {
	s := attribute.NewStore(-1)
	require.Equal(t, 0, s.Len())
	require.Equal(t, -1, s.Get(4))
	require.Equal(t, 5, s.Len(), "a read past the backing size grows it, same as a write")
	require.False(t, s.Has(4))
}

func TestStoreUnset(t *testing.T) {
	s := attribute.NewStore(0)
	s.Set(2, 7)
	s.Unset(2)
	require.False(t, s.Has(2))
	require.Equal(t, 0, s.Get(2))
}

func TestNodeAttribute(t *testing.T) {
	a := attribute.NewNodeAttribute(core.InvalidNodeID)
	a.Set(core.NodeID(1), core.NodeID(0))
	require.Equal(t, core.NodeID(0), a.Get(core.NodeID(1)))
	require.Equal(t, core.InvalidNodeID, a.Get(core.NodeID(2)))
	require.ElementsMatch(t, []core.NodeID{1}, a.Ids())
}
