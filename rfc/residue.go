package rfc

// cycleFind dispatches to the configured counting method whenever a new
// turning point has just been confirmed (appended to the residue).
func (c *Context) cycleFind() error {
	switch c.countingMethod {
	case CountingNone:
		// No counting: drop whatever accumulated in the confirmed
		// residue, keeping only the interim.
		c.residue = c.residue[:0]
		return nil
	case Counting4PTM:
		return c.find4PTM()
	case CountingHCM:
		return c.findHCM()
	default:
		return c.raise(ErrUnknownCountingMethod)
	}
}

// removeResidueRange deletes count confirmed residue entries starting at
// index, shifting everything after them down. It is the generalized form
// of the reference's RFC_residue_remove_item, used by the finalizers that
// sweep the residue in place (ClormannSeeger, RPDIN45667).
func (c *Context) removeResidueRange(index, count int) {
	c.residue = append(c.residue[:index], c.residue[index+count:]...)
}

// snapshotResidue copies the current confirmed residue, for the REPEATED
// finalizer to restore engine state isn't needed (repeated re-feeds and
// keeps the result) but the copy itself is what gets re-fed.
func (c *Context) snapshotResidue() []TurningPoint {
	cp := make([]TurningPoint, len(c.residue))
	copy(cp, c.residue)
	return cp
}
