package rfc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rainflow/rfc"
)

// A closing quadruple: B=3,C=2 nest inside A=1,D=4, so the inner pair
// closes as one cycle and D slides into B's slot, leaving residue=[1,4].
func TestFind4PTM_ClosesNestedRange(t *testing.T) {
	c, err := rfc.New(5, 1, 0, 0.5)
	require.NoError(t, err)

	require.NoError(t, c.Feed([]float64{1, 3, 2, 4}))
	require.NoError(t, c.Finalize(rfc.ResNone))

	matrix := c.Matrix()
	require.Equal(t, 1.0, matrix[3][2])

	residue := c.Residue()
	require.Len(t, residue, 2)
	require.Equal(t, 1.0, residue[0].Value)
	require.Equal(t, 4.0, residue[1].Value)
}

// A non-nesting quadruple: B=2,C=0 span [0,2], which is NOT contained in
// A=1,D=3's span [1,3] (0 < 1), so the inner pair never closes and all
// four points stay in the residue untouched.
func TestFind4PTM_NonNestingRangeStaysOpen(t *testing.T) {
	c, err := rfc.New(10, 1, -5, 0.1)
	require.NoError(t, err)

	require.NoError(t, c.Feed([]float64{1, 2, 0, 3}))
	require.NoError(t, c.Finalize(rfc.ResNone))

	for _, row := range c.Matrix() {
		for _, v := range row {
			require.Zero(t, v)
		}
	}

	residue := c.Residue()
	require.Len(t, residue, 4)
	want := []float64{1, 2, 0, 3}
	for i, tp := range residue {
		require.Equal(t, want[i], tp.Value)
	}
}

// The closing quadruple's own D point bounds the damage spread, not
// whatever live interim happens to be pending afterward: feeding a fifth
// sample (0) past the closing D (4) must not shift the spread span past
// D, since D is itself the turning point that follows "to" in the stream.
func TestFind4PTM_SpreadsDamageAgainstClosingQuadrupleD(t *testing.T) {
	c, err := rfc.New(5, 1, 0, 0.5, rfc.WithSpreadDamage(rfc.SpreadHalf23))
	require.NoError(t, err)

	require.NoError(t, c.Feed([]float64{1, 3, 2, 4, 0}))
	require.NoError(t, c.Finalize(rfc.ResNone))

	matrix := c.Matrix()
	require.Equal(t, 1.0, matrix[3][2])

	dh, err := c.DamageHistory()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(dh), 3)

	// from=position 2 (value 3), next=D=position 4 (value 4): SpreadHalf23
	// splits the cycle's damage between position 2 and position 3, the
	// span [2,4) bounded by D — not position 5's live interim (value 0).
	require.Greater(t, dh[1], 0.0)
	require.Greater(t, dh[2], 0.0)
	require.Zero(t, dh[0])
	if len(dh) > 3 {
		require.Zero(t, dh[3])
	}
}
