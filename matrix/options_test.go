// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rainflow/matrix"
)

func TestNewPreparedDense_DefaultsToStrictValidation(t *testing.T) {
	m, err := matrix.NewPreparedDense(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Set(0, 0, math.NaN()); err == nil {
		t.Fatalf("expected NaN to be rejected under default policy")
	}
}

func TestNewPreparedDense_NoValidateNaNInf_AllowsNonFinite(t *testing.T) {
	m, err := matrix.NewPreparedDense(2, 2, matrix.WithNoValidateNaNInf())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Set(0, 0, math.NaN()); err != nil {
		t.Fatalf("unexpected error setting NaN under relaxed policy: %v", err)
	}
	if err := m.Set(0, 1, math.Inf(1)); err != nil {
		t.Fatalf("unexpected error setting +Inf under relaxed policy: %v", err)
	}
}

func TestNewPreparedDense_LastOptionWins(t *testing.T) {
	m, err := matrix.NewPreparedDense(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Set(0, 0, math.NaN()); err == nil {
		t.Fatalf("expected NaN to be rejected: WithValidateNaNInf was the last option applied")
	}
}

func TestNewPreparedDense_RejectsBadShape(t *testing.T) {
	if _, err := matrix.NewPreparedDense(0, 3); err == nil {
		t.Fatalf("expected error for zero rows")
	}
}
