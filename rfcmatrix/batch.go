package rfcmatrix

import (
	"fmt"

	"github.com/katalvlaran/rainflow/matrix"
)

// BinCorrelation flattens a batch of same-shaped rainflow matrices (one per
// channel, load case, or test run) row-major into a sample-by-bin design
// matrix — one row per batch member, one column per (from-class, to-class)
// cell — and runs matrix.Correlation over it. The result is a cellCount x
// cellCount Pearson correlation matrix: entry (i, j) close to +1 means bins
// i and j tend to accumulate counts together across the batch (the same
// load cases stress both), close to -1 means they trade off against each
// other, and the returned means/stds are the per-bin sample mean and
// standard deviation the correlation was computed from.
//
// This is the batch-comparison counterpart to CombineWeighted: where
// CombineWeighted blends several matrices into one damage-equivalent
// aggregate, BinCorrelation instead asks which cells of the matrix co-vary
// across the batch, e.g. to spot a pair of stress-range classes that only
// ever fill together because they come from the same operating mode.
func BinCorrelation(matrices [][][]float64) (corr [][]float64, means, stds []float64, err error) {
	if len(matrices) == 0 {
		return nil, nil, nil, ErrNoMatrices
	}

	n := len(matrices[0])
	cellCount := n * n
	design, err := matrix.NewDense(len(matrices), cellCount)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("rfcmatrix: BinCorrelation: %w", err)
	}

	for row, m := range matrices {
		if len(m) != n {
			return nil, nil, nil, ErrShapeMismatch
		}
		for i, r := range m {
			if len(r) != n {
				return nil, nil, nil, ErrRaggedMatrix
			}
			for j, v := range r {
				if err := design.Set(row, i*n+j, v); err != nil {
					return nil, nil, nil, fmt.Errorf("rfcmatrix: BinCorrelation: %w", err)
				}
			}
		}
	}

	c, m, s, err := matrix.Correlation(design)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("rfcmatrix: BinCorrelation: %w", err)
	}

	flat, err := FromDense(c)
	if err != nil {
		return nil, nil, nil, err
	}

	return flat, m, s, nil
}
