package rfc

import "github.com/google/uuid"

// Context is the engine: one owns all mutable counting state for a single
// stream. It is not safe for concurrent use — exactly like the engine it
// generalizes, it is single-threaded cooperative with no interior
// suspension points (see package rfc's concurrency notes in doc.go).
// Multiple independent streams just mean multiple independent *Context
// values; there is no process-level shared state.
type Context struct {
	// ID identifies this engine instance, useful for correlating log
	// lines across many concurrent engines (one per channel or load
	// case). Set once in New; the zero Context has the nil UUID.
	ID uuid.UUID

	state State
	err   error

	class      ClassParams
	hysteresis float64
	woehler    WoehlerCurve

	flags          Flags
	countingMethod CountingMethod
	spreadMode     SpreadMode

	fullInc uint64
	halfInc uint64
	currInc uint64

	// Confirmed residue (strictly alternating peak/valley). The interim
	// turning point is tracked separately rather than co-located in the
	// same backing array the reference uses, since Go slices make that
	// indirection unnecessary: the 4PTM/HCM windows only ever examine
	// confirmed points, so splitting the two removes a whole class of
	// off-by-one bookkeeping the reference needs purely for C's flat
	// array storage.
	residue    []TurningPoint
	hasInterim bool
	interim    TurningPoint

	// Detector state (turning-point search, see detector.go).
	slope         int // -1, 0, +1; 0 only before the first TP is confirmed
	extremaMin    TurningPoint
	extremaMax    TurningPoint
	sawFirstPoint bool
	pos           uint64 // running 1-based sample position counter

	// HCM stack state (see cycle_hcm.go). Indices are 0-based; the
	// reference's 1-based IZ/IR bookkeeping is translated once here
	// rather than threaded through the algorithm.
	hcmStack []TurningPoint
	hcmIZ    int // -1 means empty
	hcmIR    int // -1 means empty

	matrix []uint64 // row-major class.Count x class.Count
	rp     []uint64 // length class.Count
	lc     []uint64 // length class.Count

	pseudoDamage float64

	// Margin enforcement (see margin.go). Active only when EnforceMargin
	// is set and useTPStore is true.
	marginLeft   *TurningPoint
	marginRight  *TurningPoint
	marginDelay  *TurningPoint
	marginActive bool

	useTPStore bool
	tpStore    []TurningPoint
	tpLocked   bool

	useDH bool
	dh    []float64
	dhPos uint64 // position of dh[0], i.e. dh[i] covers sample position dhPos+i
}

// New creates and initializes a Context for the given class discretization
// and hysteresis, applying opts in order. classCount must be in (1, 512]
// and classWidth must be > 0, matching ASTM E1049/FVA class-partition
// constraints; any violation returns ErrBadClassCount/ErrBadClassWidth
// wrapped in ErrInvalidArgument.
func New(classCount int, classWidth, classOffset, hysteresis float64, opts ...Option) (*Context, error) {
	if classCount <= 1 || classCount > 512 {
		return nil, ErrBadClassCount
	}
	if classWidth <= 0 {
		return nil, ErrBadClassWidth
	}

	c := &Context{
		ID:    uuid.New(),
		state: StateInit0,
		class: ClassParams{
			Offset: classOffset,
			Width:  classWidth,
			Count:  classCount,
		},
		hysteresis:     hysteresis,
		woehler:        DefaultWoehlerCurve(),
		flags:          CountAll,
		countingMethod: Counting4PTM,
		fullInc:        2,
		halfInc:        1,
		hcmIZ:          -1,
		hcmIR:          0,
	}
	c.currInc = c.fullInc

	for _, opt := range opts {
		opt(c)
	}

	if c.woehler.SD <= 0 || c.woehler.ND <= 0 || c.woehler.K >= 0 {
		return nil, ErrBadWoehler
	}
	if c.countingMethod < CountingNone || c.countingMethod > CountingHCM {
		return nil, ErrUnknownCountingMethod
	}

	c.residue = make([]TurningPoint, 0, 2*classCount)
	c.matrix = make([]uint64, classCount*classCount)
	c.rp = make([]uint64, classCount)
	c.lc = make([]uint64, classCount)
	if c.countingMethod == CountingHCM {
		c.hcmStack = make([]TurningPoint, 0, 2*classCount)
	}

	c.state = StateInit
	return c, nil
}

// Reset zeroes histograms, empties the residue and interim, resets the
// detector and HCM stack, but retains allocations, class parameters, and
// Woehler parameters. Returns the context to StateInit0. It is an error
// to Reset a context that was never successfully initialized.
func (c *Context) Reset() error {
	if c == nil {
		return ErrNilContext
	}
	if c.state == StateInit0 {
		return ErrInvalidState
	}

	for i := range c.matrix {
		c.matrix[i] = 0
	}
	for i := range c.rp {
		c.rp[i] = 0
	}
	for i := range c.lc {
		c.lc[i] = 0
	}
	c.residue = c.residue[:0]
	c.hasInterim = false
	c.interim = TurningPoint{}

	c.slope = 0
	c.sawFirstPoint = false
	c.extremaMin = TurningPoint{}
	c.extremaMax = TurningPoint{}
	c.pos = 0

	c.hcmStack = c.hcmStack[:0]
	c.hcmIZ = -1
	c.hcmIR = 0

	c.pseudoDamage = 0

	c.marginLeft = nil
	c.marginRight = nil
	c.marginDelay = nil

	if c.useTPStore {
		c.tpStore = c.tpStore[:0]
		c.tpLocked = false
	}
	if c.useDH {
		c.dh = c.dh[:0]
		c.dhPos = 0
	}

	c.err = nil
	c.state = StateInit0
	return nil
}

// Close releases the context's buffers. After Close the context must not
// be reused; create a new one with New instead. Go's garbage collector
// reclaims the backing arrays once dropped, but Close documents intent
// and severs the slices immediately, matching the reference's explicit
// deinit step.
func (c *Context) Close() {
	if c == nil {
		return
	}
	c.residue = nil
	c.matrix = nil
	c.rp = nil
	c.lc = nil
	c.hcmStack = nil
	c.tpStore = nil
	c.dh = nil
	c.state = StateInit0
}

// Err returns the error that moved the context into StateError, or nil.
func (c *Context) Err() error {
	if c == nil {
		return ErrNilContext
	}
	return c.err
}

// State returns the context's current lifecycle state.
func (c *Context) State() State {
	if c == nil {
		return StateError
	}
	return c.state
}

// raise records err, transitions to StateError, and returns err — the
// single place every internal failure funnels through, mirroring the
// reference's RFC_error_raise.
func (c *Context) raise(err error) error {
	c.err = err
	c.state = StateError
	return err
}
