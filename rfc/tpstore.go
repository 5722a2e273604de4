package rfc

// pushTP appends pt to the turning-point store, if one is attached and not
// locked. Growth is geometric via Go's native append doubling, which
// generalizes the reference's fixed +1024-item growth step without
// changing anything observable at the package API.
func (c *Context) pushTP(pt TurningPoint) {
	if !c.useTPStore || c.tpLocked {
		return
	}
	c.tpStore = append(c.tpStore, pt)
}

// Lock freezes the turning-point store: further pushes are silently
// dropped. Locking is irreversible for the lifetime of the context short
// of Reset.
func (c *Context) Lock() {
	c.tpLocked = true
}

// Locked reports whether the turning-point store has been locked.
func (c *Context) Locked() bool {
	return c.tpLocked
}

// Refeed re-quantizes every stored turning point's Class field under
// newParams, without re-running the counting engine — useful for
// re-bucketing a finished run's turning-point log at a different
// resolution without re-feeding the raw sample stream. It does not touch
// the engine's own class parameters or any histogram, and works whether
// or not the store has been locked by Finalize.
func (c *Context) Refeed(newParams ClassParams) error {
	if !c.useTPStore {
		return ErrNoTurningPointStore
	}
	for i := range c.tpStore {
		c.tpStore[i].Class = newParams.Quantize(c.tpStore[i].Value)
	}
	return nil
}
