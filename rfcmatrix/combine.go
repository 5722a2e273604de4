package rfcmatrix

import (
	"fmt"

	"github.com/katalvlaran/rainflow/matrix"
)

// CombineWeighted blends several rainflow matrices of identical class
// count into one weighted aggregate: sum_i weights[i]*matrices[i].
// This is the usual way multi-channel fatigue analysis combines several
// independent engines' Matrix() output (one per measured channel or one
// per load case) into a single damage-equivalent matrix, instead of
// re-running the counter over a concatenated series that would mix
// unrelated channels' turning points together.
func CombineWeighted(matrices [][][]float64, weights []float64) ([][]float64, error) {
	if len(matrices) == 0 {
		return nil, ErrNoMatrices
	}
	if len(weights) != len(matrices) {
		return nil, ErrShapeMismatch
	}

	first, err := ToDense(matrices[0])
	if err != nil {
		return nil, err
	}

	acc, err := matrix.Scale(first, weights[0])
	if err != nil {
		return nil, fmt.Errorf("rfcmatrix: CombineWeighted: %w", err)
	}

	for i := 1; i < len(matrices); i++ {
		d, err := ToDense(matrices[i])
		if err != nil {
			return nil, err
		}
		if d.Rows() != acc.Rows() {
			return nil, ErrShapeMismatch
		}
		scaled, err := matrix.Scale(d, weights[i])
		if err != nil {
			return nil, fmt.Errorf("rfcmatrix: CombineWeighted: %w", err)
		}
		acc, err = matrix.Add(acc, scaled)
		if err != nil {
			return nil, fmt.Errorf("rfcmatrix: CombineWeighted: %w", err)
		}
	}

	return FromDense(acc)
}
