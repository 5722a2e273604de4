package rfcmatrix

import (
	"fmt"

	"github.com/katalvlaran/rainflow/matrix"
)

// ToDense converts a rainflow matrix (rfc.Context.Matrix(), a
// [][]float64) into a *matrix.Dense,
// unlocking the package's linear-algebra kernels (Add, Scale, Transpose,
// Eigen, Correlation, ...) on top of it. m must be square: every row the
// same length as len(m).
func ToDense(m [][]float64) (*matrix.Dense, error) {
	n := len(m)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	for _, row := range m {
		if len(row) != n {
			return nil, ErrRaggedMatrix
		}
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("rfcmatrix: ToDense: %w", err)
	}
	for i, row := range m {
		for j, v := range row {
			if err := d.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("rfcmatrix: ToDense: %w", err)
			}
		}
	}
	return d, nil
}

// FromDense reads a matrix.Matrix back into a plain row-major [][]float64,
// the shape rfc.Context.Matrix() itself returns.
func FromDense(m matrix.Matrix) ([][]float64, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, ErrRaggedMatrix
	}
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("rfcmatrix: FromDense: %w", err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return rows, nil
}
