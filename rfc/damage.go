package rfc

import "math"

// spreadDamage distributes weighted pseudo-damage across the damage-history
// buffer according to c.spreadMode, over sample positions in
// [from.Position, next.Position), where next is the closing quadruple's
// own D point for 4PTM (see processCycle). With no next point (every
// HCM-closed cycle) there is nothing to spread onto and the call is a
// no-op — damage history is therefore populated from 4PTM closures and
// from the residual finalizers that sweep the residue (half/full cycles,
// Clormann-Seeger, DIN 45667), which pass a next point where one exists.
//
// The four modes resolve an Open Question left by the reference, which
// declares RFC_dh_spread_damage but never defines it; see doc.go for the
// resolution rationale.
func (c *Context) spreadDamage(from, to TurningPoint, next *TurningPoint, weighted float64) {
	if next == nil || next.Position <= from.Position {
		return
	}

	lo, hi := from.Position, next.Position
	span := hi - lo
	c.ensureDH(hi)

	switch c.spreadMode {
	case SpreadHalf23:
		c.addDH(lo, weighted/2)
		c.addDH(hi-1, weighted/2)

	case SpreadRampAmplitude23:
		total := float64(span * (span + 1) / 2)
		for i := uint64(0); i < span; i++ {
			c.addDH(lo+i, weighted*float64(i+1)/total)
		}

	case SpreadTransient23, SpreadTransient23C:
		c.spreadTransient(lo, span, weighted, c.spreadMode == SpreadTransient23C)
	}
}

// spreadTransient front-loads the damage contribution: positions close to
// the cycle's starting reversal get a larger share, decaying exponentially
// across the span. A bounded-memory streaming counter only ever retains the
// cycle's two boundary values, not the intermediate raw samples, so the
// actual local rate of change within the span is unobservable; this decay
// curve approximates the common case where a transient's damage is
// concentrated near its onset. The clamped ("C") variant caps any single
// position's share at twice the even split, so a position shared with an
// adjacent cycle's span never absorbs an outsized fraction of either
// cycle's damage.
func (c *Context) spreadTransient(lo, span uint64, weighted float64, clamp bool) {
	if span == 1 {
		c.addDH(lo, weighted)
		return
	}

	const decay = 3.0
	weights := make([]float64, span)
	capShare := 2.0 / float64(span)
	var sum float64
	for i := uint64(0); i < span; i++ {
		w := math.Exp(-decay * float64(i) / float64(span-1))
		if clamp && w > capShare {
			w = capShare
		}
		weights[i] = w
		sum += w
	}
	for i := uint64(0); i < span; i++ {
		c.addDH(lo+i, weighted*weights[i]/sum)
	}
}

func (c *Context) addDH(pos uint64, v float64) {
	c.dh[pos-1-c.dhPos] += v
}

// ensureDH grows the damage-history buffer in fixed-size increments so that
// every position up to hi-1 has a backing cell.
func (c *Context) ensureDH(hi uint64) {
	need := int(hi - c.dhPos)
	if need <= len(c.dh) {
		return
	}
	const chunk = 4096
	grown := ((need-len(c.dh))/chunk + 1) * chunk
	c.dh = append(c.dh, make([]float64, grown)...)
}
