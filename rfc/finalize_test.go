package rfc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rainflow/rfc"
)

// widening series the four-point method never closes a single cycle in:
// each successive quadruple's inner span straddles its outer span's edge
// rather than nesting inside it (e.g. inner=[-1,1] against outer=[0,2] for
// the first four points), so feeding it leaves every sample as residue.
// This isolates each residual policy's own behavior from any cycle the
// streaming counter itself would have already closed.
var wideningSeries = []float64{0, 1, -1, 2, -2, 3, -3}

// newWideningContext builds a context whose class partition maps each of
// wideningSeries' seven distinct values to its own class index 0..6
// (class(v) = floor(v+3.5)), with hysteresis far below the series' unit
// step so every reversal confirms.
func newWideningContext(t *testing.T, opts ...rfc.Option) *rfc.Context {
	t.Helper()
	c, err := rfc.New(7, 1, -3.5, 0.01, opts...)
	require.NoError(t, err)
	require.NoError(t, c.Feed(wideningSeries))
	return c
}

func matrixSum(m [][]float64) float64 {
	var sum float64
	for _, row := range m {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// ResNone/ResIgnore leave the residue exactly as the stream left it: no
// cycles are counted beyond whatever the streaming counter already closed
// (here, none).
func TestFinalize_IgnoreLeavesResidueUntouched(t *testing.T) {
	c := newWideningContext(t)
	require.NoError(t, c.Finalize(rfc.ResNone))

	require.Zero(t, matrixSum(c.Matrix()))

	residue := c.Residue()
	require.Len(t, residue, 7)
	for i, tp := range residue {
		require.Equal(t, wideningSeries[i], tp.Value)
	}
}

// ResDiscard drops the residue with no extra accounting.
func TestFinalize_DiscardClearsResidueWithoutCounting(t *testing.T) {
	c := newWideningContext(t)
	require.NoError(t, c.Finalize(rfc.ResDiscard))

	require.Zero(t, matrixSum(c.Matrix()))
	require.Empty(t, c.Residue())
}

// ResHalfCycles sweeps every adjacent residue pair, weighting each as a
// half cycle (0.5 in conventional units), and empties the residue.
func TestFinalize_HalfCyclesWeightsAdjacentPairs(t *testing.T) {
	c := newWideningContext(t)
	require.NoError(t, c.Finalize(rfc.ResHalfCycles))

	matrix := c.Matrix()
	require.Equal(t, 0.5, matrix[3][4])
	require.Equal(t, 0.5, matrix[4][2])
	require.Equal(t, 0.5, matrix[2][5])
	require.Equal(t, 0.5, matrix[5][1])
	require.Equal(t, 0.5, matrix[1][6])
	require.Equal(t, 0.5, matrix[6][0])
	require.Equal(t, 3.0, matrixSum(matrix))

	require.Empty(t, c.Residue())
}

// ResFullCycles is the same sweep, weighted as full cycles instead.
func TestFinalize_FullCyclesWeightsAdjacentPairs(t *testing.T) {
	c := newWideningContext(t)
	require.NoError(t, c.Finalize(rfc.ResFullCycles))

	matrix := c.Matrix()
	require.Equal(t, 1.0, matrix[3][4])
	require.Equal(t, 1.0, matrix[4][2])
	require.Equal(t, 1.0, matrix[2][5])
	require.Equal(t, 1.0, matrix[5][1])
	require.Equal(t, 1.0, matrix[1][6])
	require.Equal(t, 1.0, matrix[6][0])
	require.Equal(t, 6.0, matrixSum(matrix))

	require.Empty(t, c.Residue())
}

// ResClormannSeeger sweeps the residue for quadruples with opposing inner
// slope and a dominating outer range before weighting whatever remains as
// half cycles. On wideningSeries the first two quadruples qualify (their
// inner pairs (1,-1) and (2,-2) each have an outer range wide enough to
// dominate), closing two full cycles and leaving residue=[0,3,-3]; the
// half-cycle sweep over that remainder closes the last two transitions.
func TestFinalize_ClormannSeegerClosesQualifyingQuadruplesThenHalfWeights(t *testing.T) {
	c := newWideningContext(t)
	require.NoError(t, c.Finalize(rfc.ResClormannSeeger))

	matrix := c.Matrix()
	require.Equal(t, 1.0, matrix[4][2])
	require.Equal(t, 1.0, matrix[5][1])
	require.Equal(t, 0.5, matrix[3][6])
	require.Equal(t, 0.5, matrix[6][0])
	require.Equal(t, 3.0, matrixSum(matrix))

	require.Empty(t, c.Residue())
}

// ResRPDIN45667 matches adjacent slopes of equal class-distance and
// opposite sign into range-pair and level-crossing; on wideningSeries no
// two transitions share a class distance with opposite sign, so every
// residual pair instead falls through to the method's own outer sweep,
// which updates level-crossing only (never matrix or range-pair).
func TestFinalize_RPDIN45667UpdatesLevelCrossingOnly(t *testing.T) {
	c := newWideningContext(t)
	require.NoError(t, c.Finalize(rfc.ResRPDIN45667))

	require.Zero(t, matrixSum(c.Matrix()))
	for _, v := range c.RangePair() {
		require.Zero(t, v)
	}

	want := []float64{1, 3, 5, 6, 4, 2, 0}
	require.Equal(t, want, c.LevelCrossing())

	require.Empty(t, c.Residue())
}

// ResRepeated re-feeds the residue and pending interim on top of the
// engine's existing state, as though the load history repeated itself
// once: the repeat pass confirms the same reversals again, closing cycles
// the first pass left open, and whatever remains open afterward is
// discarded unconditionally.
func TestFinalize_RepeatedClosesCyclesFromSelfRepetition(t *testing.T) {
	c := newWideningContext(t)
	require.NoError(t, c.Finalize(rfc.ResRepeated))

	matrix := c.Matrix()
	require.Equal(t, 1.0, matrix[0][6])
	require.Equal(t, 1.0, matrix[4][2])
	require.Equal(t, 1.0, matrix[5][1])
	require.Equal(t, 3.0, matrixSum(matrix))

	rp := c.RangePair()
	require.Equal(t, 1.0, rp[2])
	require.Equal(t, 1.0, rp[4])
	require.Equal(t, 1.0, rp[6])

	require.Empty(t, c.Residue())
}

// Finalize may only run once; a second call on an already-finalized
// context is rejected regardless of which policy either call used.
func TestFinalize_SecondCallRejected(t *testing.T) {
	c := newWideningContext(t)
	require.NoError(t, c.Finalize(rfc.ResDiscard))

	err := c.Finalize(rfc.ResDiscard)
	require.Error(t, err)
	require.ErrorIs(t, err, rfc.ErrInvalidState)
}

// An unrecognized residual method is rejected before any counting work,
// and the context moves to StateError.
func TestFinalize_UnknownMethodRejected(t *testing.T) {
	c := newWideningContext(t)
	err := c.Finalize(rfc.ResidualMethod(99))
	require.Error(t, err)
	require.ErrorIs(t, err, rfc.ErrUnknownResidualMethod)
	require.Equal(t, rfc.StateError, c.State())
}
