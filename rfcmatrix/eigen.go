package rfcmatrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rainflow/matrix"
)

// DefaultEigenTolerance and DefaultEigenMaxIter are reasonable defaults
// for Jacobi convergence on a rainflow matrix's class count (bounded by
// 512, per rfc.ClassParams), matching matrix.Eigen's own doc guidance of
// a tolerance scaled to expected magnitude and a generous iteration cap.
const (
	DefaultEigenTolerance = 1e-9
	DefaultEigenMaxIter   = 200
)

// Symmetrize returns (m+mT)/2, the standard way to feed a directed
// transition-count matrix (rainflow matrices are not symmetric in
// general — cycles have a from/to direction) into an eigensolver that,
// like matrix.Eigen, requires a symmetric operand.
func Symmetrize(m [][]float64) ([][]float64, error) {
	d, err := ToDense(m)
	if err != nil {
		return nil, err
	}
	t, err := matrix.Transpose(d)
	if err != nil {
		return nil, fmt.Errorf("rfcmatrix: Symmetrize: %w", err)
	}
	sum, err := matrix.Add(d, t)
	if err != nil {
		return nil, fmt.Errorf("rfcmatrix: Symmetrize: %w", err)
	}
	half, err := matrix.Scale(sum, 0.5)
	if err != nil {
		return nil, fmt.Errorf("rfcmatrix: Symmetrize: %w", err)
	}
	return FromDense(half)
}

// DominantMode symmetrizes m and runs matrix.Eigen's Jacobi eigensolver
// over it, returning the eigenvalue of largest magnitude and its
// eigenvector — a rough measure of which class-to-class transition
// pattern dominates the counted cycle population, useful for comparing
// two load histories' rainflow matrices without eyeballing every cell.
func DominantMode(m [][]float64, tol float64, maxIter int) (value float64, vector []float64, err error) {
	sym, err := Symmetrize(m)
	if err != nil {
		return 0, nil, err
	}
	d, err := ToDense(sym)
	if err != nil {
		return 0, nil, err
	}

	eigs, vectors, err := matrix.Eigen(d, tol, maxIter)
	if err != nil {
		return 0, nil, fmt.Errorf("rfcmatrix: DominantMode: %w", err)
	}

	best := 0
	for i, v := range eigs {
		if math.Abs(v) > math.Abs(eigs[best]) {
			best = i
		}
	}

	n := vectors.Rows()
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i], err = vectors.At(i, best)
		if err != nil {
			return 0, nil, fmt.Errorf("rfcmatrix: DominantMode: %w", err)
		}
	}

	return eigs[best], vec, nil
}
