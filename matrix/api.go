// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//

package matrix

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work;
// Complexity: O(rows*cols) zero-init (constructor).
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = I.Set(i, i, 1.0) // Set is bounds-safe; error is not expected after shape validation
	}

	// Return the identity matrix.
	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
//
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
//
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}
	// Construct the identity of matching dimension.
	return NewIdentity(m.Rows()) // returns (*Dense, error)
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
//
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
//
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
// Complexity: O(rc).
func HadamardProd(a, b Matrix) (Matrix, error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
//
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
// Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
// Complexity: O(rc).
//
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// EigenSym calls the canonical Jacobi eigen-decomposition (symmetric input).
// Complexity: O(maxIter · n^3). Numeric policy unchanged.
// Note: Under the hood it calls Eigen; symmetric validation lives in kernels.
func EigenSym(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	// Delegate directly to the kernel. The kernel performs ValidateNotNil/Square/Symmetric.
	return Eigen(m, tol, maxIter)
}

// InverseOf is an alias for Inverse: returns A^{-1} (no pivoting; deterministic).
// Complexity: O(n^3).
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// LUDecompose is an alias for LU: returns (L, U) with unit diagonal on L.
// Complexity: O(n^3).
func LUDecompose(m Matrix) (Matrix, Matrix, error) { return LU(m) }

// QRDecompose is an alias for QR: returns (Q, R) via Householder reflections.
// Complexity: O(n^3).
func QRDecompose(m Matrix) (Matrix, Matrix, error) { return QR(m) }

// ---------- Convenience facades (compositions only; no loop duplication) ----------

// Symmetrize returns (m + mᵀ)/2. Deterministic composition: Transpose → Add → Scale.
// Complexity: O(rc).
//
func Symmetrize(m Matrix) (Matrix, error) {
	// Transpose first; kernel validates non-nil input.
	mt, err := Transpose(m) // O(rc)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err) // wrap with context
	}
	// Add original and transpose; shapes are guaranteed identical.
	sum, err := Add(m, mt) // O(rc)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err) // wrap
	}

	// Scale by 0.5 to complete the symmetrization.
	return Scale(sum, 0.5) // O(rc)
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
//
func RowSums(m Matrix) ([]float64, error) {
	// Build an all-ones vector of length equal to the number of columns.
	cols := m.Cols()              // O(1) read of dimension
	ones := make([]float64, cols) // allocate the vector once
	for j := 0; j < cols; j++ {   // deterministic fill
		ones[j] = 1.0 // neutral element for summation
	}

	// Multiply m by the ones vector to get per-row sums.
	return MatVec(m, ones) // O(rc), kernel validates lengths
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: T(m) then MatVec with ones(rows).
// Complexity: O(rc).
//
func ColSums(m Matrix) ([]float64, error) {
	// Transpose m first.
	mt, err := Transpose(m) // O(rc)
	if err != nil {
		return nil, matrixErrorf("ColSums", err) // wrap with context
	}
	// Build an all-ones vector of length equal to the (transposed) number of columns,
	// which equals the original number of rows.
	rows := mt.Cols()             // == m.Rows()
	ones := make([]float64, rows) // allocate the vector once
	for i := 0; i < rows; i++ {   // deterministic fill
		ones[i] = 1.0 // neutral element for summation
	}
	// Multiply to get per-column sums of the original matrix.
	return MatVec(mt, ones) // O(rc)
}

// ---------- Sanitization & numeric compare (thin wrappers → ew*) ----------

// Clip returns a copy of m with elements clamped into [lo, hi] (both finite).
//
//	out[i,j] = min(max(A[i,j], lo), hi).
//
// Both bounds must be finite. Deterministic. O(r*c).
// Time: O(r*c). Space: O(r*c). Deterministic.
//
// Policy: If lo > hi, bounds are swapped (normalized). NaN/Inf bounds are rejected.
func Clip(m Matrix, lo, hi float64) (Matrix, error) {
	// Delegate to the private element-wise kernel (centralizes the loop).
	return ewClipRange(m, lo, hi) // errors are already wrapped with "Clip" tag inside
}

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by 'val' (finite).
// Time: O(r*c). Space: O(r*c). Deterministic.
//
// Policy: 'val' must be finite; otherwise ErrNaNInf is returned.
func ReplaceInfNaN(m Matrix, val float64) (Matrix, error) {
	// Delegate to the private ew* sanitizer (centralizes numeric checks and loops).
	return ewReplaceInfNaN(m, val) // errors are wrapped with "ReplaceInfNaN" tag inside
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	// ??
	return ewAllClose(a, b, rtol, atol)
}

// ---------- Statistics (public surface → internal implementations) ----------

// CenterColumns returns a centered copy: Xc = X − mean(X, by columns) and the column means.
// Returns Xc and the column means (length = Cols(X)).
// Implementation: column sums in one deterministic pass (Dense fast path; At fallback),
// divided by rows to get means; then ewBroadcastSubCols.
// Determinism: fixed loops and pure compositions. O(r*c).
// Time: O(r*c). Space: O(r*c).
//
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// CenterRows returns a centered copy: Xc[i,*] = X[i,*] − mean(X[i,*]) for each row.
// Returns Xc and the row means. O(r*c).
// Implementation: row sums in one deterministic pass (Dense fast path; At fallback),
// divided by cols; then ewBroadcastSubRows.
// Time: O(r*c). Space: O(r*c). Deterministic.
//
func CenterRows(X Matrix) (Matrix, []float64, error) { return centerRows(X) }

// NormalizeRowsL1 returns Y where each row i is scaled to L1-norm = 1 (if possible).
// Degenerate rows (norm==0) remain zero. Also returns the norms per row.
// Implementation: compute per-row L1 norms (fast-path for Dense), build scale factors 1/norm (or 1),
// then ewScaleRows to produce Y.
// Determinism: fixed i→j passes. O(r*c).
// Time: O(r*c). Space: O(r*c). Deterministic.
//
func NormalizeRowsL1(X Matrix) (Matrix, []float64, error) { return normalizeRowsL1(X) }

// NormalizeRowsL2 scales each row to have L2-norm == 1 when possible; returns Y and per-row norms.
// Degenerate rows (norm==0) remain zero rows by design.
// Implementation: compute per-row L2 norms via √(Σ v^2); then ewScaleRows with 1/norm (or 1).
// Time: O(r*c). Space: O(r*c). Deterministic.
//
func NormalizeRowsL2(X Matrix) (Matrix, []float64, error) { return normalizeRowsL2(X) }

// Covariance computes sample covariance of columns: Cov = (Xcᵀ Xc)/(n-1).
// Returns Cov and column means.
// Determinism: compositions only; all loops fixed. O(r*c + c^2*min(r,c)).
// Time: O(r*c + c^2) (via one Transpose + one Mul + one Scale). Space: O(r*c + c^2).
//
// Notes:
//   - Requires r >= 2 to avoid division by zero; else ErrDimensionMismatch.
//   - Uses CenterColumns then reuses canonical kernels (Transpose/Mul/Scale).
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }

// Correlation computes Pearson correlation of columns via z-scoring:
//
//	Z = (X - mean) / std,  std^2 = Σ (Xc)^2 / (n-1),  degenerate std==0 ⇒ column zeroed.
//	Corr = (Zᵀ Z)/(n-1).
//
// Returns Corr, means, stds.
// Time: O(r*c + c^2). Space: O(r*c + c^2).
func Correlation(X Matrix) (Matrix, []float64, []float64, error) { return correlation(X) }
