package rfc

// findHCM implements the Clormann-Seeger ("HCM") stack method: confirmed
// residue points are pushed one at a time onto an internal stack; each push
// first tries to close cycles against the top of the stack, retrying after
// every closed cycle since closing one may immediately expose another.
//
// hcmIZ is the stack's top index (-1 when empty) and hcmIR is the index of
// the lowest element eligible to close a cycle against the new point; both
// are 0-based translations of the reference's 1-based pointers. The
// reference expresses the retry with a goto back to its cycle-test label;
// here the same retry is a plain inner loop that keeps going as long as a
// pop or a cycle-close made progress, then falls through to the push.
func (c *Context) findHCM() error {
	for len(c.residue) > 0 {
		k := c.residue[0]

		// One-time bootstrap: the very first point the stack ever sees
		// is placed directly at hcmIR before the close/pop logic runs,
		// mirroring the reference's "if (!IR) stack[IR++] = *K". hcmIR
		// only ever increases afterward, so this fires at most once per
		// context lifetime.
		if c.hcmIR == 0 && c.hcmIZ == -1 && len(c.hcmStack) == 0 {
			c.hcmStack = append(c.hcmStack, k)
			c.hcmIR = 1
		}

		for {
			progressed := false

			switch {
			case c.hcmIZ > c.hcmIR:
				i := c.hcmStack[c.hcmIZ-1]
				j := c.hcmStack[c.hcmIZ]
				switch {
				case (k.Value-j.Value)*(j.Value-i.Value) >= 0:
					// k continues the stack's last slope: j cannot
					// close a cycle, discard it.
					c.hcmIZ--
					progressed = true
				case absf(k.Value-j.Value) >= absf(j.Value-i.Value):
					if err := c.processCycle(i, j, nil, c.flags); err != nil {
						return err
					}
					c.hcmIZ -= 2
					progressed = true
				}

			case c.hcmIZ == c.hcmIR && c.hcmIZ >= 0:
				j := c.hcmStack[c.hcmIZ]
				switch {
				case (k.Value-j.Value)*j.Value >= 0:
					c.hcmIZ--
					progressed = true
				case absf(k.Value) > absf(j.Value):
					c.hcmIR++
				}
			}

			if !progressed {
				break
			}
		}

		c.hcmIZ++
		if c.hcmIZ < len(c.hcmStack) {
			c.hcmStack[c.hcmIZ] = k
		} else {
			c.hcmStack = append(c.hcmStack, k)
		}

		c.residue = c.residue[1:]
	}
	return nil
}
