package rfcmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rainflow/rfcmatrix"
)

func TestSummarize_EmptyVectorReturnsSentinelPeak(t *testing.T) {
	s := rfcmatrix.Summarize(nil)
	require.Zero(t, s.Total)
	require.Equal(t, -1, s.PeakClass)
}

func TestSummarize_ComputesTotalPeakAndCumulative(t *testing.T) {
	s := rfcmatrix.Summarize([]float64{1, 3, 2})
	require.Equal(t, 6.0, s.Total)
	require.Equal(t, 1, s.PeakClass)
	require.Equal(t, 3.0, s.PeakCount)
	require.Equal(t, []float64{1, 4, 6}, s.CumulativeAt)
}
