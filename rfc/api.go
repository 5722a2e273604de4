package rfc

// Feed consumes values as a contiguous continuation of the stream: each
// value is assigned the next 1-based position after whatever has already
// been fed. Feed is chunking-invariant — feed(A); feed(B) leaves the
// context in the same state as feed(A concatenated with B) — so callers
// may split input across calls however suits their I/O without affecting
// the final histograms, residue, or pseudo-damage.
func (c *Context) Feed(values []float64) error {
	if c.state == StateError {
		return c.err
	}
	for _, v := range values {
		c.pos++
		if err := c.feedPoint(TurningPoint{Value: v, Position: c.pos}); err != nil {
			return err
		}
	}
	return nil
}

// FeedTuple consumes samples carrying their own explicit positions,
// e.g. for resuming a stream whose earlier portion was counted elsewhere,
// or for re-presenting out-of-band data (as Finalize's REPEATED policy
// does internally). The running position counter advances to the highest
// position seen, so a subsequent Feed continues after it.
func (c *Context) FeedTuple(samples []Sample) error {
	if c.state == StateError {
		return c.err
	}
	for _, s := range samples {
		if s.Position > c.pos {
			c.pos = s.Position
		}
		if err := c.feedPoint(TurningPoint{Value: s.Value, Position: s.Position}); err != nil {
			return err
		}
	}
	return nil
}

// feedPoint runs one sample through the turning-point detector, the
// turning-point-store margin stage, and — whenever the detector confirmed
// a new point — the configured cycle finder. This is the single place
// every sample passes through, whether it arrives via Feed, FeedTuple, or
// the REPEATED finalizer's internal re-feed.
func (c *Context) feedPoint(pt TurningPoint) error {
	if c.state >= StateFinalize {
		return c.raise(ErrInvalidState)
	}

	pt.Class = c.class.Quantize(pt.Value)

	rawConfirmed := c.tpNext(pt)

	if storeConfirmed := c.applyMargin(pt, rawConfirmed); storeConfirmed != nil {
		c.pushTP(*storeConfirmed)
	}

	if rawConfirmed != nil {
		if err := c.cycleFind(); err != nil {
			return err
		}
	}

	return nil
}

// Finalize runs the chosen residual-method policy: it promotes the
// pending interim turning point, optionally sweeps or re-feeds the
// residue, and moves the context to StateFinished (or StateError on
// failure). Finalize may only be called once; the context must be
// recreated or Reset for another stream.
func (c *Context) Finalize(method ResidualMethod) error {
	if c.state >= StateFinalize {
		return c.raise(ErrInvalidState)
	}

	var err error
	switch method {
	case ResNone, ResIgnore:
		err = c.finalizeIgnore()
	case ResDiscard:
		err = c.finalizeDiscard()
	case ResHalfCycles:
		err = c.finalizeWeightCycles(c.halfInc)
	case ResFullCycles:
		err = c.finalizeWeightCycles(c.fullInc)
	case ResClormannSeeger:
		err = c.finalizeClormannSeeger()
	case ResRPDIN45667:
		err = c.finalizeRPDIN45667()
	case ResRepeated:
		err = c.finalizeRepeated()
	default:
		return c.raise(ErrUnknownResidualMethod)
	}

	if err != nil {
		return err
	}
	c.state = StateFinished
	return nil
}

// PseudoDamage returns the cumulative pseudo-damage accumulated so far.
// Valid at any time; the value only grows as cycles close.
func (c *Context) PseudoDamage() float64 {
	return c.pseudoDamage
}

// Residue returns the current residue (confirmed, unclosed turning
// points), oldest first. The returned slice is a copy; mutating it has no
// effect on the context.
func (c *Context) Residue() []TurningPoint {
	cp := make([]TurningPoint, len(c.residue))
	copy(cp, c.residue)
	return cp
}

// Matrix returns the rainflow matrix as a row-major [from][to] view,
// normalized to conventional cycle units: row i, column j is the number
// of cycles that ran from class i to class j (a residual half-cycle
// contributes 0.5). Internally counts accumulate in half-cycle increments
// (RawMatrix), and this divides by FullInc before returning, mirroring
// the reference's own MATLAB export (matrix[idx] / full_inc).
func (c *Context) Matrix() [][]float64 {
	n := c.class.Count
	rows := make([][]float64, n)
	full := float64(c.fullInc)
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = float64(c.matrix[i*n+j]) / full
		}
		rows[i] = row
	}
	return rows
}

// RangePair returns the range-pair histogram in conventional cycle units
// (see Matrix): index k holds the number of cycles whose class distance
// |to-from| equals k.
func (c *Context) RangePair() []float64 {
	return normalizeCounts(c.rp, c.fullInc)
}

// LevelCrossing returns the level-crossing histogram in conventional
// units (see Matrix): index k holds the number of crossings of class k's
// upper boundary, in the enabled direction(s).
func (c *Context) LevelCrossing() []float64 {
	return normalizeCounts(c.lc, c.fullInc)
}

func normalizeCounts(raw []uint64, fullInc uint64) []float64 {
	full := float64(fullInc)
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = float64(v) / full
	}
	return out
}

// RawMatrix returns the rainflow matrix's unnormalized backing storage:
// raw half-cycle increment counts, row-major [from][to]. Most callers
// want Matrix instead; RawMatrix exists for persistence and for feeding
// LCFromMatrix/RPFromMatrix, which (like the reference) operate on the
// same raw, pre-normalization representation.
func (c *Context) RawMatrix() [][]uint64 {
	n := c.class.Count
	rows := make([][]uint64, n)
	for i := 0; i < n; i++ {
		rows[i] = append([]uint64(nil), c.matrix[i*n:(i+1)*n]...)
	}
	return rows
}

// RawRangePair returns RangePair's unnormalized backing storage.
func (c *Context) RawRangePair() []uint64 {
	return append([]uint64(nil), c.rp...)
}

// RawLevelCrossing returns LevelCrossing's unnormalized backing storage.
func (c *Context) RawLevelCrossing() []uint64 {
	return append([]uint64(nil), c.lc...)
}

// FullInc returns the counter increment one full cycle contributes to the
// raw histograms, for callers working with Raw* accessors directly.
func (c *Context) FullInc() uint64 {
	return c.fullInc
}

// TurningPoints returns the recorded turning-point log. Requires the
// context to have been constructed with WithTurningPointStore.
func (c *Context) TurningPoints() ([]TurningPoint, error) {
	if !c.useTPStore {
		return nil, ErrNoTurningPointStore
	}
	return append([]TurningPoint(nil), c.tpStore...), nil
}

// DamageHistory returns the per-sample damage-history vector, aligned so
// that index 0 corresponds to stream position 1. Requires the context to
// have been constructed with WithSpreadDamage.
func (c *Context) DamageHistory() ([]float64, error) {
	if !c.useDH {
		return nil, ErrNoDamageHistory
	}
	return append([]float64(nil), c.dh...), nil
}

// LCFromMatrix reconstructs a level-crossing histogram purely from a raw
// rainflow matrix (RawMatrix, not the normalized Matrix), for hosts that
// persisted only the matrix and want level crossings without re-running
// the counting engine. countUp/countDown mirror CountLCUp/CountLCDn. This
// is a derivation distinct from the incrementally accumulated
// LevelCrossing(): it counts, for every class i, all matrix transitions
// between a class below i and a class at or above i (in the enabled
// direction), matching the reference's own RFC_lc_from_matrix formula.
// The result is in the same raw half-cycle units as RawLevelCrossing.
func LCFromMatrix(matrix [][]uint64, countUp, countDown bool) []uint64 {
	n := len(matrix)
	lc := make([]uint64, n)
	for i := 0; i < n; i++ {
		var counts uint64
		for j := i; j < n; j++ {
			for k := 0; k < i; k++ {
				if countUp {
					counts += matrix[k][j]
				}
				if countDown {
					counts += matrix[j][k]
				}
			}
		}
		lc[i] = counts
	}
	return lc
}

// RPFromMatrix reconstructs a range-pair-shaped histogram purely from a
// raw rainflow matrix (RawMatrix, not the normalized Matrix), matching
// the reference's own RFC_rp_from_matrix formula: index i accumulates
// every transition between class i and any class j >= i, in either
// direction. Index 0 is always zero. The result is in the same raw
// half-cycle units as RawRangePair.
func RPFromMatrix(matrix [][]uint64) []uint64 {
	n := len(matrix)
	rp := make([]uint64, n)
	for i := 1; i < n; i++ {
		var counts uint64
		for j := i; j < n; j++ {
			counts += matrix[i][j]
			counts += matrix[j][i]
		}
		rp[i] = counts
	}
	return rp
}
