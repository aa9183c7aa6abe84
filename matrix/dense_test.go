package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cfgraph/matrix"
	"github.com/stretchr/testify/require"
)

func TestDenseSetAt(t *testing.T) {
	d, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, d.Set(1, 2, 7))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestDenseAddAccumulates(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Add(0, 0, 3))
	require.NoError(t, d.Add(0, 0, 4))
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestDenseRowSum(t *testing.T) {
	d, err := matrix.NewDense(1, 3)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 1))
	require.NoError(t, d.Set(0, 1, 2))
	require.NoError(t, d.Set(0, 2, 3))
	sum, err := d.RowSum(0)
	require.NoError(t, err)
	require.Equal(t, 6, sum)
}

func TestNewDenseRejectsBadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.Error(t, err)
}

func TestOutOfRange(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = d.At(5, 0)
	require.Error(t, err)
}
