// Package rainflow is a streaming rainflow cycle counter for fatigue
// analysis: turning-point detection, four-point-method and
// Clormann-Seeger HCM cycle extraction, seven residue finalization
// policies, rainflow-matrix/range-pair/level-crossing histogram
// accumulation, and Wöhler-curve pseudo-damage, all bounded in memory by
// class count rather than stream length.
//
// Subpackages:
//
//	rfc/       — the counting engine: Context, New, Feed, Finalize
//	rfcmatrix/ — adapts a finished Context's matrix onto dense
//	             linear-algebra primitives (eigen-analysis, weighted
//	             multi-channel combination, vector summaries)
//	matrix/    — the dense Matrix/Dense type and linear-algebra kernels
//	             rfcmatrix builds on
//	rfcio/     — YAML configuration loading and a structured-log adapter
//
// A minimal run:
//
//	ctx, err := rfc.New(64, 0.5, -16, 0.1)
//	if err != nil { ... }
//	defer ctx.Close()
//	if err := ctx.Feed(series); err != nil { ... }
//	if err := ctx.Finalize(rfc.ResClormannSeeger); err != nil { ... }
//	matrix := ctx.Matrix()
package rainflow
