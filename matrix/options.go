// SPDX-License-Identifier: MIT

// Package matrix: functional numeric-policy configuration for Dense
// construction.
//
// The only policy knob a fatigue-matrix pipeline needs is whether a Dense's
// Set rejects non-finite values outright. Everything downstream of a
// finished rfc.Context (rfcmatrix.ToDense, Symmetrize, DominantMode,
// CombineWeighted) works with fully-populated, finite histogram counts, so
// the default stays strict; NewPreparedDense with WithNoValidateNaNInf
// exists for callers staging a matrix incrementally where an unset cell may
// transiently hold NaN as a "not yet written" sentinel before Set is called
// again with a real value.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set.
const DefaultValidateNaNInf = true

// Option mutates internal numeric policy. Safe to apply repeatedly (last
// setter in the sequence wins).
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
// Its field is unexported so external code can't observe or mutate it directly; entry
// points accept ...Option and resolve it via gatherOptions.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// NaN and ±Inf are rejected by Set once this is in effect.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation. Use only when the
// caller sanitizes the matrix (ReplaceInfNaN, Clip) before it's read by any
// of the linear-algebra kernels, all of which assume finite input.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided Option setters on top of the default
// policy. This is the canonical internal entry point; NewPreparedDense is
// its only caller.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		set(&o)
	}

	return o
}
