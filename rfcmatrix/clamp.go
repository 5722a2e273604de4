package rfcmatrix

import "golang.org/x/exp/constraints"

// Number is the "ordered numeric" constraint
// (constraints.Float | constraints.Integer) Clamp is generic over.
type Number interface {
	constraints.Float | constraints.Integer
}

// Clamp restricts v to [lo, hi], for any float or integer type.
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
