package rfc

// feedFinalize promotes the interim turning point (if any) into the
// residue, resolves the turning-point-store margin delay stage, gives the
// cycle finder one last look at the enlarged residue, locks the
// turning-point store, and — for HCM — replaces the residue with whatever
// is still sitting on the HCM stack. Every residual-method finalizer
// starts here, mirroring RFC_feed_finalize.
func (c *Context) feedFinalize() error {
	if c.state >= StateFinalize {
		return c.raise(ErrInvalidState)
	}

	var interim *TurningPoint
	if c.state == StateBusyInterim {
		c.residue = append(c.residue, c.interim)
		interim = &c.residue[len(c.residue)-1]
		c.hasInterim = false
	}

	c.finalizeMargin(interim)

	if interim != nil {
		if err := c.cycleFind(); err != nil {
			return err
		}
	}

	c.Lock()

	if c.countingMethod == CountingHCM && c.hcmIZ >= 0 {
		stackCnt := c.hcmIZ + 1
		c.residue = append(c.residue[:0], c.hcmStack[:stackCnt]...)
		c.hcmIZ = -1
		c.hcmIR = 0
	}

	c.state = StateFinalize
	return nil
}

func (c *Context) finalizeIgnore() error {
	return c.feedFinalize()
}

func (c *Context) finalizeDiscard() error {
	if err := c.feedFinalize(); err != nil {
		return err
	}
	c.residue = c.residue[:0]
	return nil
}

// finalizeWeightCycles counts every adjacent residue pair as a cycle
// weighted by weight (half_inc for HALFCYCLES, full_inc for FULLCYCLES),
// then empties the residue.
func (c *Context) finalizeWeightCycles(weight uint64) error {
	// Clormann-Seeger has already run feedFinalize before delegating here.
	if c.state < StateFinalize {
		if err := c.feedFinalize(); err != nil {
			return err
		}
	}

	if len(c.residue) >= 2 {
		old := c.currInc
		c.currInc = weight
		for i := 0; i+1 < len(c.residue); i++ {
			from := c.residue[i]
			to := c.residue[i+1]
			var next *TurningPoint
			if i+2 < len(c.residue) {
				next = &c.residue[i+2]
			}
			if err := c.processCycle(from, to, next, c.flags); err != nil {
				c.currInc = old
				return err
			}
		}
		c.currInc = old
	}

	c.residue = c.residue[:0]
	return nil
}

// finalizeClormannSeeger sweeps the residue for quadruples (A,B,C,D) with
// opposing inner slope and a dominating outer range, closing B<->C as a
// full cycle and removing both; whatever remains is then weighted as half
// cycles. The sweep index is idx=i, not the reference's idx=residue_cnt+i
// — the reference reads past the residue's end there, which has no sound
// Go translation and is flagged in its own design notes as an intent bug.
func (c *Context) finalizeClormannSeeger() error {
	if err := c.feedFinalize(); err != nil {
		return err
	}

	if c.countingMethod == Counting4PTM {
		for i := 0; i+4 < len(c.residue); {
			a := c.residue[i+0].Value
			b := c.residue[i+1].Value
			cc := c.residue[i+2].Value
			d := c.residue[i+3].Value
			_ = a

			if b*cc < 0 && absf(d) >= absf(b) && absf(b) >= absf(cc) {
				from := c.residue[i+1]
				to := c.residue[i+2]
				var next *TurningPoint
				if i+3 < len(c.residue) {
					next = &c.residue[i+3]
				}
				if err := c.processCycle(from, to, next, c.flags); err != nil {
					return err
				}
				c.removeResidueRange(i+1, 2)
			} else {
				i++
			}
		}
	}

	return c.finalizeWeightCycles(c.halfInc)
}

// finalizeRPDIN45667 matches adjacent slopes of equal magnitude and
// opposite sign, counting each match into range-pair and level-crossing
// only (never matrix or damage), then clears whatever is left. The outer
// gate is Flags&(CountRP|CountLC), not the reference's duplicated
// CountRP|CountRP — almost certainly meant to include LC, matching the
// surrounding code's own later use of CountLC|CountRP.
func (c *Context) finalizeRPDIN45667() error {
	if err := c.feedFinalize(); err != nil {
		return err
	}

	if c.flags&(CountRP|CountLC) != 0 {
		for len(c.residue) >= 2 {
			fromI := c.residue[0]
			toI := c.residue[1]
			rangeI := c.class.Quantize(toI.Value) - c.class.Quantize(fromI.Value)

			for j := 1; j+1 < len(c.residue); j += 2 {
				fromJ := c.residue[j]
				toJ := c.residue[j+1]
				rangeJ := c.class.Quantize(toJ.Value) - c.class.Quantize(fromJ.Value)

				if rangeI == -rangeJ {
					var next *TurningPoint
					if j+2 < len(c.residue) {
						next = &c.residue[j+2]
					}
					if err := c.processCycle(fromJ, toJ, next, c.flags&(CountLC|CountRP)); err != nil {
						return err
					}
					c.removeResidueRange(j, 2)
				}
			}

			var next *TurningPoint
			if 2 < len(c.residue) {
				next = &c.residue[2]
			}
			if err := c.processCycle(fromI, toI, next, c.flags&CountLC); err != nil {
				return err
			}
			c.removeResidueRange(0, 1)
		}
	}

	c.residue = c.residue[:0]
	return nil
}

// finalizeRepeated implements Marsh's repeated-residue method: the residue
// (plus the interim, if one is pending) is re-fed through the ordinary
// counting pipeline as though the load history continued by repeating
// itself once, on top of whatever state the stream already left behind —
// it is deliberately not promoted or cleared first. Whatever the repeat
// pass still leaves open is then discarded, matching the reference's
// unconditional residue clear at the end of RFC_finalize_res_repeated.
func (c *Context) finalizeRepeated() error {
	pts := c.snapshotResidue()
	if c.hasInterim {
		pts = append(pts, c.interim)
	}

	for _, pt := range pts {
		if err := c.feedPoint(pt); err != nil {
			return err
		}
	}

	if err := c.feedFinalize(); err != nil {
		return err
	}

	c.residue = c.residue[:0]
	return nil
}
