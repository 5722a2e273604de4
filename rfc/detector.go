package rfc

// tpNext implements the two-stage turning-point filter: global-extrema
// search for the very first turning point, then hysteresis + peak-valley
// filtering for every one after. It returns the turning point newly
// confirmed by pt (the previous interim, now promoted), or nil if pt only
// justified the existing interim or fell within the hysteresis band.
//
// Scenarios once an interim exists (mirrors RFC_tp_next's three-way split):
//  1. pt continues the current slope: the interim is replaced by pt.
//  2. pt reverses beyond hysteresis: the interim is confirmed, pt becomes
//     the new interim.
//  3. pt reverses but stays within the hysteresis band: no-op.
func (c *Context) tpNext(pt TurningPoint) *TurningPoint {
	if !c.sawFirstPoint {
		c.extremaMin = pt
		c.extremaMax = pt
		c.sawFirstPoint = true
		c.state = StateBusy
		return nil
	}

	if c.state == StateBusy {
		isFallingSlope := false
		if pt.Value < c.extremaMin.Value {
			isFallingSlope = true
			c.extremaMin = pt
		} else if pt.Value > c.extremaMax.Value {
			isFallingSlope = false
			c.extremaMax = pt
		}

		delta := absf(c.extremaMax.Value - c.extremaMin.Value)
		if delta <= c.hysteresis {
			return nil
		}

		var confirmed TurningPoint
		if isFallingSlope {
			confirmed = c.extremaMax
			c.slope = -1
		} else {
			confirmed = c.extremaMin
			c.slope = 1
		}
		c.residue = append(c.residue, confirmed)
		c.interim = pt
		c.hasInterim = true
		c.state = StateBusyInterim
		return &c.residue[len(c.residue)-1]
	}

	// StateBusyInterim: hysteresis + peak-valley filtering against the
	// current interim.
	delta, slope := valueDelta(c.interim.Value, pt.Value)

	if slope == c.slope {
		// Continuation: justify (possibly replace) the interim.
		if c.interim.Value != pt.Value {
			c.interim = pt
		}
		return nil
	}

	if delta > c.hysteresis {
		confirmed := c.interim
		c.residue = append(c.residue, confirmed)
		c.interim = pt
		c.slope = slope
		return &c.residue[len(c.residue)-1]
	}

	// Reversal within the hysteresis band: nothing to do.
	return nil
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// valueDelta returns |to-from| and the sign of (to-from), with zero delta
// reported as sign +1 (matching the reference's value_delta tie-break).
func valueDelta(from, to float64) (delta float64, sign int) {
	d := to - from
	if d < 0 {
		return -d, -1
	}
	return d, 1
}
