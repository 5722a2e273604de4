// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private ew* Kernels
//
// Purpose:
//   - Expose the unexported ew* micro-kernels (row/column broadcast, scale,
//     sanitize) to matrix_test only, so the *Dense fast-path and the generic
//     Matrix fallback can be checked bitwise against each other without
//     widening the public matrix surface for every caller (rfcmatrix's own
//     Symmetrize/DominantMode only ever go through the public Add/Scale/
//     Transpose/Eigen entry points).
//
// Build Policy:
//   - File name ends in _test.go, so it compiles only under `go test`; it is
//     invisible to production builds regardless.

// --- ew* micro-kernel bridges -------------------------------------------------

// EwBroadcastSubCols_TestOnly forwards to the private ewBroadcastSubCols kernel.
func EwBroadcastSubCols_TestOnly(X Matrix, colMeans []float64) (Matrix, error) {
	return ewBroadcastSubCols(X, colMeans)
}

// EwBroadcastSubRows_TestOnly forwards to ewBroadcastSubRows.
func EwBroadcastSubRows_TestOnly(X Matrix, rowMeans []float64) (Matrix, error) {
	return ewBroadcastSubRows(X, rowMeans)
}

// EwScaleCols_TestOnly forwards to ewScaleCols.
func EwScaleCols_TestOnly(X Matrix, scale []float64) (Matrix, error) {
	return ewScaleCols(X, scale)
}

// EwScaleRows_TestOnly forwards to ewScaleRows.
func EwScaleRows_TestOnly(X Matrix, scale []float64) (Matrix, error) {
	return ewScaleRows(X, scale)
}

// EwReplaceInfNaN_TestOnly forwards to ewReplaceInfNaN.
func EwReplaceInfNaN_TestOnly(X Matrix, val float64) (Matrix, error) {
	return ewReplaceInfNaN(X, val)
}

// EwClipRange_TestOnly forwards to ewClipRange.
func EwClipRange_TestOnly(X Matrix, lo, hi float64) (Matrix, error) {
	return ewClipRange(X, lo, hi)
}

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
