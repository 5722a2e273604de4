// Package matrix provides the dense linear-algebra primitives rfcmatrix
// adapts rainflow counting output onto: row-major Dense storage, the
// Add/Sub/Mul/Transpose/Scale/Hadamard kernels, a Jacobi eigensolver, and
// column statistics (covariance/correlation, centering, normalization).
//
// Matrices are best for the dense, modestly sized (bounded by rfc's own
// class-count cap) transition-count and statistics matrices rainflow
// post-processing produces — not for sparse or very large graphs.
package matrix
