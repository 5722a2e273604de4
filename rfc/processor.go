package rfc

import "math"

// processCycle accounts for one closed cycle running from..to, weighted by
// curr_inc (c.currInc, set by the caller via c.flags/weight before invoking
// this). next is the turning point that follows to in the stream, used only
// to bound damage-history spreading; it is nil when no such point exists
// (e.g. every HCM-closed cycle, which the reference also spreads with a nil
// bound — damage history therefore comes from 4PTM closures and from the
// residual finalizers that pass a next point). For 4PTM,
// next is always the closing quadruple's own D point, not whatever interim
// turning point the stream happens to be building afterward.
func (c *Context) processCycle(from, to TurningPoint, next *TurningPoint, flags Flags) error {
	cf := c.class.Quantize(from.Value)
	ct := c.class.Quantize(to.Value)
	if cf == ct {
		return nil
	}

	rng := c.class.Width * absf(float64(ct-cf))
	amplitude := rng / 2

	var damage float64
	if amplitude > c.woehler.Omission {
		damage = woehlerDamage(c.woehler, amplitude)
	}

	weighted := damage * float64(c.currInc) / float64(c.fullInc)
	c.pseudoDamage += weighted

	if flags&CountMatrix != 0 {
		idx := cf*c.class.Count + ct
		if err := c.accumulate(&c.matrix[idx]); err != nil {
			return err
		}
	}

	if flags&CountRP != 0 {
		d := ct - cf
		if d < 0 {
			d = -d
		}
		if err := c.accumulate(&c.rp[d]); err != nil {
			return err
		}
	}

	if cf < ct && flags&CountLCUp != 0 {
		for i := cf; i < ct; i++ {
			if err := c.accumulate(&c.lc[i]); err != nil {
				return err
			}
		}
	} else if cf > ct && flags&CountLCDn != 0 {
		for i := ct; i < cf; i++ {
			if err := c.accumulate(&c.lc[i]); err != nil {
				return err
			}
		}
	}

	if c.useDH && weighted != 0 {
		c.spreadDamage(from, to, next, weighted)
	}

	return nil
}

// accumulate adds c.currInc to *cell, raising ErrCounterOverflow instead of
// wrapping when the result would exceed CountsLimit.
func (c *Context) accumulate(cell *uint64) error {
	if *cell > CountsLimit-c.currInc {
		return c.raise(ErrCounterOverflow)
	}
	*cell += c.currInc
	return nil
}

// woehlerDamage evaluates the fictive Wöhler power law in log-space: the
// primary slope K above the endurance amplitude SD, the secondary slope K2
// at or below it.
func woehlerDamage(w WoehlerCurve, amplitude float64) float64 {
	logTerm := math.Log(amplitude) - math.Log(w.SD)
	if amplitude > w.SD {
		return math.Exp(absf(w.K)*logTerm - math.Log(w.ND))
	}
	return math.Exp(absf(w.K2)*logTerm - math.Log(w.ND))
}
