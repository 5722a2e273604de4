package rfc

// Option configures a Context at construction time, applied in the order
// given to New. Options never return errors directly; invalid values are
// recorded and surfaced by New once all options have been applied, the
// same deferred-validation idiom the rest of the module uses for its
// functional-option constructors.
type Option func(*Context)

// WithFlags overrides the default CountAll flag set.
func WithFlags(f Flags) Option {
	return func(c *Context) {
		c.flags = f
	}
}

// WithCountingMethod selects the cycle-extraction algorithm. Defaults to
// Counting4PTM.
func WithCountingMethod(m CountingMethod) Option {
	return func(c *Context) {
		c.countingMethod = m
	}
}

// WithWoehler overrides the fictive default Woehler curve. If w.K2 == 0
// it is set equal to w.K (Miner-elementary).
func WithWoehler(w WoehlerCurve) Option {
	return func(c *Context) {
		if w.K2 == 0 {
			w.K2 = w.K
		}
		c.woehler = w
	}
}

// WithSpreadDamage enables the per-sample damage-history buffer using the
// given spread mode. SpreadNone (the default) keeps the buffer disabled.
func WithSpreadDamage(mode SpreadMode) Option {
	return func(c *Context) {
		c.spreadMode = mode
		c.useDH = mode != SpreadNone
	}
}

// WithTurningPointStore attaches an append-only turning-point log with the
// given initial capacity hint (the store still grows geometrically beyond
// it). A capacity of 0 is a valid hint; the store allocates lazily.
func WithTurningPointStore(capacityHint int) Option {
	return func(c *Context) {
		c.useTPStore = true
		if capacityHint > 0 {
			c.tpStore = make([]TurningPoint, 0, capacityHint)
		}
	}
}

// WithEnforceMargin sets the EnforceMargin flag. It has effect only when
// combined with WithTurningPointStore; margin correction operates on the
// turning-point log, not on the rainflow residue.
func WithEnforceMargin() Option {
	return func(c *Context) {
		c.flags |= EnforceMargin
	}
}

// WithCycleWeights overrides the default counter increments (full=2,
// half=1). Most callers never need this; it exists for hosts that count
// in different units (e.g. already-halved amplitudes).
func WithCycleWeights(full, half uint64) Option {
	return func(c *Context) {
		c.fullInc = full
		c.halfInc = half
		c.currInc = full
	}
}
