// Package rfcmatrix adapts rainflow counting output onto the matrix
// package's dense linear-algebra primitives, instead of reimplementing a
// second dense-matrix type for post-processing.
//
// A finished rfc.Context's Matrix()/RawMatrix() is a plain [][]float64
// or [][]uint64 — enough for accumulation, but not for anything that
// wants matrix algebra on top of it: symmetrizing a directed transition
// count into something an eigensolver accepts, blending several
// channels' matrices into one weighted aggregate, or correlating bins
// across a batch of histograms to see which stress-range classes
// co-vary. This package wires those needs onto matrix.Dense, matrix.Eigen,
// matrix.Scale/Add/Transpose, and matrix.Correlation, plus gonum/floats
// for the simpler per-vector reductions (range-pair and level-crossing
// histograms are one-dimensional and don't warrant a Dense wrapper of
// their own).
package rfcmatrix
