package rfc

import "math"

// State is the engine's lifecycle stage. Transitions are monotonic forward
// except Reset, which always returns to StateInit0.
type State int

const (
	// StateInit0 is the state before Init/New has completed successfully.
	StateInit0 State = iota
	// StateInit is initialized with zero samples fed.
	StateInit
	// StateBusy is searching for the first turning point.
	StateBusy
	// StateBusyInterim has a non-empty residue plus an unconfirmed interim TP.
	StateBusyInterim
	// StateFinalize is running (or has run) a residual-method finalizer.
	StateFinalize
	// StateFinished is done; result accessors are valid.
	StateFinished
	// StateError is terminal; the context rejects further operations.
	StateError
)

// String renders the state for log lines and test failure messages.
func (s State) String() string {
	switch s {
	case StateInit0:
		return "INIT0"
	case StateInit:
		return "INIT"
	case StateBusy:
		return "BUSY"
	case StateBusyInterim:
		return "BUSY_INTERIM"
	case StateFinalize:
		return "FINALIZE"
	case StateFinished:
		return "FINISHED"
	case StateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Sample is one raw input value with its 1-based stream position.
type Sample struct {
	Value    float64
	Position uint64
}

// TurningPoint is a confirmed local extremum: its value, its 1-based
// position in the original sample stream, and its discretized class.
// Immutable once emitted by the detector.
type TurningPoint struct {
	Value    float64
	Position uint64
	Class    int
}

// ClassParams defines the uniform partition of the value axis used to
// discretize samples into classes. Class k covers [offset+k*width,
// offset+(k+1)*width). Width must be > 0 and Count in (1, 512].
type ClassParams struct {
	Offset float64
	Width  float64
	Count  int
}

// Quantize maps v to its class index, clamped to [0, Count-1]. Callers are
// expected to feed values strictly above Offset; Quantize only clamps, it
// does not validate that precondition.
func (c ClassParams) Quantize(v float64) int {
	class := int(math.Floor((v - c.Offset) / c.Width))
	if class < 0 {
		return 0
	}
	if class >= c.Count {
		return c.Count - 1
	}
	return class
}

// WoehlerCurve parameterizes the fictive S-N curve used to turn a closed
// cycle's amplitude into a pseudo-damage contribution. K2 defaults to K
// (Miner-elementary) when left at zero and set via WithWoehler with K2==K.
type WoehlerCurve struct {
	SD       float64 // endurance amplitude, SD > 0
	ND       float64 // endurance cycle count, ND > 0
	K        float64 // slope above SD, K < 0
	K2       float64 // slope at/below SD, defaults to K
	Omission float64 // amplitudes <= Omission contribute no damage
}

// DefaultWoehlerCurve mirrors the reference implementation's fictive
// defaults: a placeholder curve meant to be overridden via WithWoehler for
// any real fatigue analysis.
func DefaultWoehlerCurve() WoehlerCurve {
	return WoehlerCurve{SD: 1e3, ND: 1e7, K: -5.0, K2: -5.0, Omission: 0.0}
}

// Flags is a bitmask selecting which histograms are maintained and whether
// margin enforcement is active.
type Flags uint32

const (
	// CountMatrix enables the rainflow (from, to) matrix.
	CountMatrix Flags = 1 << iota
	// CountRP enables the range-pair histogram.
	CountRP
	// CountLCUp enables level-crossing counts for rising slopes.
	CountLCUp
	// CountLCDn enables level-crossing counts for falling slopes.
	CountLCDn
	// EnforceMargin forces the first and last samples to be recorded as
	// turning points, provided a turning-point store is attached.
	EnforceMargin
)

// CountLC is both level-crossing directions combined.
const CountLC = CountLCUp | CountLCDn

// CountAll enables every histogram (matrix, range-pair, level-crossing).
const CountAll = CountMatrix | CountRP | CountLC

// CountingMethod selects the cycle-extraction algorithm.
type CountingMethod int

const (
	// CountingNone discards the residue as it grows; no cycles are counted.
	CountingNone CountingMethod = iota
	// Counting4PTM is the symmetric four-point method (ASTM E1049).
	Counting4PTM
	// CountingHCM is the Clormann-Seeger three-point stack method.
	CountingHCM
)

// ResidualMethod selects how still-open cycles are handled at Finalize.
// Numeric values are canonical and exposed for interop with callers that
// serialize the method selector.
type ResidualMethod int

const (
	ResNone           ResidualMethod = 0
	ResIgnore         ResidualMethod = 1
	ResDiscard        ResidualMethod = 2
	ResHalfCycles     ResidualMethod = 3
	ResFullCycles     ResidualMethod = 4
	ResClormannSeeger ResidualMethod = 5
	ResRPDIN45667     ResidualMethod = 6
	ResRepeated       ResidualMethod = 7
)

// SpreadMode selects how a closed cycle's damage is distributed across the
// damage-history buffer, when enabled via WithSpreadDamage.
type SpreadMode int

const (
	// SpreadNone disables damage-history accumulation.
	SpreadNone SpreadMode = iota
	// SpreadHalf23 splits the damage evenly between the first and last
	// samples of the span (from.Position and next.Position-1).
	SpreadHalf23
	// SpreadRampAmplitude23 ramps the damage linearly across every sample
	// in [from.Position, next.Position).
	SpreadRampAmplitude23
	// SpreadTransient23 weights the span's samples by an exponential
	// decay starting at the first sample of the span.
	SpreadTransient23
	// SpreadTransient23C is SpreadTransient23 with each weight capped at
	// twice the even split before normalisation.
	SpreadTransient23C
)

// CountsLimit is the saturation ceiling for histogram cells. Reaching it
// is treated as a precondition violation (ErrCounterOverflow), not a
// silent wraparound.
const CountsLimit = math.MaxUint64 - 1<<20
