package rfcmatrix

import "errors"

var (
	// ErrEmptyMatrix is returned when a 0x0 matrix is given to
	// a function that requires a well-formed square rainflow matrix.
	ErrEmptyMatrix = errors.New("rfcmatrix: matrix has no classes")

	// ErrRaggedMatrix is returned when a [][]float64 is not a consistent
	// n x n square (every row the same length as the class count).
	ErrRaggedMatrix = errors.New("rfcmatrix: matrix rows are not square")

	// ErrShapeMismatch is returned when combining matrices or vectors of
	// different class counts.
	ErrShapeMismatch = errors.New("rfcmatrix: shape mismatch")

	// ErrNoMatrices is returned by CombineWeighted when given an empty
	// batch.
	ErrNoMatrices = errors.New("rfcmatrix: no matrices to combine")
)
