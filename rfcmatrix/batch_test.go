package rfcmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rainflow/rfcmatrix"
)

func TestBinCorrelation_IdenticalColumnsAreFullyCorrelated(t *testing.T) {
	batch := [][][]float64{
		{{1, 1}, {1, 1}},
		{{2, 2}, {2, 2}},
		{{3, 3}, {3, 3}},
	}

	corr, means, stds, err := rfcmatrix.BinCorrelation(batch)
	require.NoError(t, err)
	require.Len(t, corr, 4) // cellCount = n*n = 4 for n=2
	require.Len(t, means, 4)
	require.Len(t, stds, 4)

	for i := 0; i < 4; i++ {
		require.InDelta(t, 2.0, means[i], 1e-9) // mean of {1,2,3}
		for j := 0; j < 4; j++ {
			require.InDelta(t, 1.0, corr[i][j], 1e-9) // every cell tracks every other exactly
		}
	}
}

func TestBinCorrelation_RejectsEmptyBatch(t *testing.T) {
	_, _, _, err := rfcmatrix.BinCorrelation(nil)
	require.ErrorIs(t, err, rfcmatrix.ErrNoMatrices)
}

func TestBinCorrelation_RejectsRaggedMatrix(t *testing.T) {
	batch := [][][]float64{
		{{1, 2}, {3}},
	}
	_, _, _, err := rfcmatrix.BinCorrelation(batch)
	require.ErrorIs(t, err, rfcmatrix.ErrRaggedMatrix)
}

func TestBinCorrelation_RejectsShapeMismatchAcrossBatch(t *testing.T) {
	batch := [][][]float64{
		{{1, 2}, {3, 4}},
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	}
	_, _, _, err := rfcmatrix.BinCorrelation(batch)
	require.ErrorIs(t, err, rfcmatrix.ErrShapeMismatch)
}
