package rfc

// find4PTM is the four-point method (ASTM E1049 / FVA): repeatedly
// examine the last four confirmed residue points A,B,C,D. The inner slope
// B->C closes as a cycle iff [min(B,C),max(B,C)] nests inside
// [min(A,D),max(A,D)]; B and C are then removed, D sliding into B's slot,
// and the window is re-examined from the new end of the residue.
func (c *Context) find4PTM() error {
	for len(c.residue) >= 4 {
		n := len(c.residue)
		a := c.residue[n-4]
		b := c.residue[n-3]
		cc := c.residue[n-2]
		d := c.residue[n-1]

		innerLo, innerHi := b.Value, cc.Value
		if innerLo > innerHi {
			innerLo, innerHi = innerHi, innerLo
		}
		outerLo, outerHi := a.Value, d.Value
		if outerLo > outerHi {
			outerLo, outerHi = outerHi, outerLo
		}

		if !(outerLo <= innerLo && innerHi <= outerHi) {
			break
		}

		if err := c.processCycle(b, cc, &d, c.flags); err != nil {
			return err
		}

		// Remove the two inner points (B,C); D slides into B's slot.
		c.residue = append(c.residue[:n-3], c.residue[n-1:]...)
	}
	return nil
}
