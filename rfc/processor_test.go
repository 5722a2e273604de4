package rfc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rainflow/rfc"
)

// A single closed cycle's pseudo-damage must equal the closed-form Wöhler
// power law exactly (within floating-point rounding): for amplitude Sa at
// or below SD, exp(|K2|*(ln(Sa)-ln(SD)) - ln(ND)).
func TestProcessCycle_WoehlerDamageExactFormula(t *testing.T) {
	c, err := rfc.New(5, 1, 0, 0.5, rfc.WithWoehler(rfc.WoehlerCurve{
		SD: 10, ND: 1e6, K: -4, K2: -4, Omission: 0,
	}))
	require.NoError(t, err)

	require.NoError(t, c.Feed([]float64{1, 3, 2, 4}))
	require.NoError(t, c.Finalize(rfc.ResNone))

	// Sa = 0.5 (class width 1, classes 3 and 2), well below SD=10.
	require.InDelta(t, 6.249999999999995e-12, c.PseudoDamage(), 1e-20)
}

// Amplitudes at or below Omission contribute no damage at all, matching
// the reference's omission-level gate ahead of the Wöhler evaluation.
func TestProcessCycle_OmissionSuppressesDamage(t *testing.T) {
	c, err := rfc.New(5, 1, 0, 0.5, rfc.WithWoehler(rfc.WoehlerCurve{
		SD: 10, ND: 1e6, K: -4, K2: -4, Omission: 1,
	}))
	require.NoError(t, err)

	require.NoError(t, c.Feed([]float64{1, 3, 2, 4}))
	require.NoError(t, c.Finalize(rfc.ResNone))

	require.Zero(t, c.PseudoDamage())
}

// Driving a histogram cell to its saturation ceiling surfaces
// ErrCounterOverflow rather than silently wrapping, and the context
// transitions to StateError.
func TestAccumulate_CounterOverflow(t *testing.T) {
	c, err := rfc.New(5, 1, 0, 0.5, rfc.WithCycleWeights(rfc.CountsLimit, 1))
	require.NoError(t, err)

	// [1,3,2,4,1,3,2,4,1] closes the (class 3 -> class 2) cycle twice
	// mid-stream (the trailing 1 confirms the last 4); the first closure
	// saturates the cell exactly at CountsLimit, the second must overflow it.
	err = c.Feed([]float64{1, 3, 2, 4, 1, 3, 2, 4, 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, rfc.ErrCounterOverflow))
	require.Equal(t, rfc.StateError, c.State())
	require.True(t, errors.Is(c.Err(), rfc.ErrCounterOverflow))
}

// Flags gate which histograms a closed cycle updates: with only CountRP
// set, the matrix and level-crossing histograms stay untouched while the
// range-pair histogram still accumulates.
func TestProcessCycle_FlagsGateHistograms(t *testing.T) {
	c, err := rfc.New(5, 1, 0, 0.5, rfc.WithFlags(rfc.CountRP))
	require.NoError(t, err)

	require.NoError(t, c.Feed([]float64{1, 3, 2, 4}))
	require.NoError(t, c.Finalize(rfc.ResNone))

	for _, row := range c.Matrix() {
		for _, v := range row {
			require.Zero(t, v)
		}
	}
	for _, v := range c.LevelCrossing() {
		require.Zero(t, v)
	}

	rp := c.RangePair()
	require.Equal(t, 1.0, rp[1])
}
