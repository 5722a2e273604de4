package rfcmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rainflow/rfcmatrix"
)

func TestSymmetrize_AveragesWithTranspose(t *testing.T) {
	m := [][]float64{
		{0, 4},
		{0, 0},
	}

	sym, err := rfcmatrix.Symmetrize(m)
	require.NoError(t, err)
	require.Equal(t, 2.0, sym[0][1])
	require.Equal(t, 2.0, sym[1][0])
}

func TestDominantMode_DiagonalMatrixReturnsLargestEntry(t *testing.T) {
	m := [][]float64{
		{1, 0, 0},
		{0, 5, 0},
		{0, 0, 2},
	}

	value, vector, err := rfcmatrix.DominantMode(m, rfcmatrix.DefaultEigenTolerance, rfcmatrix.DefaultEigenMaxIter)
	require.NoError(t, err)
	require.InDelta(t, 5.0, value, 1e-6)
	require.Len(t, vector, 3)
}

func TestDominantMode_RejectsEmptyMatrix(t *testing.T) {
	_, _, err := rfcmatrix.DominantMode(nil, rfcmatrix.DefaultEigenTolerance, rfcmatrix.DefaultEigenMaxIter)
	require.ErrorIs(t, err, rfcmatrix.ErrEmptyMatrix)
}
