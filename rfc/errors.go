// Package rfc: sentinel error set.
//
// Every public entry point returns these sentinels (or a %w-wrapped form
// of one) rather than ad-hoc formatted errors. Callers match with
// errors.Is, never by comparing strings.
//
// Error priority, when more than one condition holds: argument validation
// (class/Woehler parameters, nil receiver) fires before state validation
// (wrong state for the requested operation), which fires before resource
// exhaustion (counter overflow, allocation limits).
package rfc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the umbrella sentinel for malformed
	// constructor/option arguments. More specific sentinels below narrow
	// the cause; errors.Is(err, ErrInvalidArgument) also matches those.
	ErrInvalidArgument = errors.New("rfc: invalid argument")

	// ErrBadClassCount is returned when class count is not in (1, 512].
	ErrBadClassCount = fmt.Errorf("rfc: class count must be in (1, 512]: %w", ErrInvalidArgument)

	// ErrBadClassWidth is returned when class width is <= 0.
	ErrBadClassWidth = fmt.Errorf("rfc: class width must be > 0: %w", ErrInvalidArgument)

	// ErrBadWoehler is returned when SD <= 0, ND <= 0, or K >= 0.
	ErrBadWoehler = fmt.Errorf("rfc: invalid Woehler curve parameters: %w", ErrInvalidArgument)

	// ErrNilContext is returned by methods invoked on a nil *Context.
	ErrNilContext = errors.New("rfc: nil context")

	// ErrInvalidState is returned when an operation is issued in a state
	// that forbids it, e.g. Feed after Finalize.
	ErrInvalidState = errors.New("rfc: operation not valid in current state")

	// ErrUnknownResidualMethod is returned by Finalize for an
	// out-of-range ResidualMethod code.
	ErrUnknownResidualMethod = errors.New("rfc: unknown residual method")

	// ErrUnknownCountingMethod is returned by New/options for an
	// out-of-range CountingMethod value.
	ErrUnknownCountingMethod = fmt.Errorf("rfc: unknown counting method: %w", ErrInvalidArgument)

	// ErrOutOfMemory names the allocation-failure error kind. No function
	// in this package returns it: Go allocation failures panic rather than
	// return an error.
	ErrOutOfMemory = errors.New("rfc: allocation limit exceeded")

	// ErrCounterOverflow is returned when a histogram cell would exceed
	// CountsLimit. This is a precondition violation, not a silent wrap.
	ErrCounterOverflow = errors.New("rfc: histogram counter at ceiling")

	// ErrNoTurningPointStore is returned by TurningPoints/Refeed when the
	// context was not constructed with WithTurningPointStore.
	ErrNoTurningPointStore = errors.New("rfc: turning-point store not enabled")

	// ErrNoDamageHistory is returned by DamageHistory when the context
	// was not constructed with WithSpreadDamage.
	ErrNoDamageHistory = errors.New("rfc: damage history not enabled")
)
