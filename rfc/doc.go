// Package rfc implements a streaming rainflow cycle counter for fatigue
// analysis of one-dimensional real-valued load/stress time series.
//
// Feed it samples one at a time or in batches, and it extracts closed
// hysteresis cycles using either the four-point method (4PTM, ASTM E1049)
// or the Clormann-Seeger HCM stack method, accumulating a rainflow matrix,
// a range-pair histogram, a level-crossing histogram, and a pseudo-damage
// scalar driven by a configurable Woehler (S-N) curve.
//
// Memory is bounded by class count, not by stream length: the engine never
// buffers the raw series, only a residue of at most 2*classCount unclosed
// turning points.
//
//	ctx, err := rfc.New(100, 1.0, 0.0, 0.5)
//	if err != nil { ... }
//	defer ctx.Close()
//
//	if err := ctx.Feed(samples); err != nil { ... }
//	if err := ctx.Finalize(rfc.ResFullCycles); err != nil { ... }
//
//	fmt.Println(ctx.PseudoDamage())
//
// Feeding the same concatenated series in one call or split across many
// Feed calls produces bit-identical results (chunking invariance); see
// the package's example and chunking tests.
//
// Sub-packages:
//
//	rfcmatrix/ — adapts a finished rainflow matrix onto the matrix
//	             package's dense type for linear-algebra and statistics work.
//	rfcio/     — YAML configuration loading for class and Woehler
//	             parameters.
//
// # Damage-history spread modes
//
// WithSpreadDamage(mode) turns on an optional per-sample damage-history
// buffer (DamageHistory), filled in as 4PTM closes cycles, distributing
// each cycle's pseudo-damage across the sample span [from.Position,
// next.Position) it closed over. The reference declares a spread-mode
// enum and a dispatch function, RFC_dh_spread_damage, but the function
// body itself is absent from the reference source — only its prototype
// and a single call site exist — so the actual distribution curve for
// each mode is this package's own resolution of that open question:
//
//	SpreadNone            damage history disabled; the default.
//	SpreadHalf23           splits the damage evenly between the span's
//	                       first and last sample, ignoring any in between.
//	SpreadRampAmplitude23  ramps the damage linearly across every sample
//	                       in the span, weighted 1, 2, 3, ... so later
//	                       samples (closer to the cycle's confirming
//	                       reversal) absorb more of the damage.
//	SpreadTransient23      front-loads the damage exponentially, heaviest
//	                       at the span's first sample and decaying toward
//	                       the last — approximating a transient whose
//	                       local severity peaks at its onset.
//	SpreadTransient23C     SpreadTransient23 with each sample's share
//	                       capped at twice the even split, so a sample
//	                       shared with an adjacent cycle's span can't
//	                       absorb an outsized fraction of either cycle's
//	                       damage.
//
// See damage.go (spreadDamage, spreadTransient) for the implementation.
package rfc
