package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> Fulfilled
//	          └──> Cancelled
//
// Both Fulfilled and Cancelled are terminal; no edge leaves either of them,
// and no edge connects them to each other.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly opened order.
	// Items can only be added or removed while the order is pending.
	Pending

	// Fulfilled indicates the order has been committed and shipped.
	// Terminal state.
	Fulfilled

	// Cancelled indicates the order was abandoned and its stock returned.
	// Terminal state; items are retained for audit.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Fulfilled: "Fulfilled",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Fulfilled: "Fulfilled",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status name as received from an external caller.
// Values outside {Pending, Fulfilled, Cancelled} are rejected at the boundary.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is one of Pending, Fulfilled, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Fulfilled || s == Cancelled
}

// TransitionTo validates the edge from the current status to target and
// returns the new status.
//
// Allowed edges:
//   - Pending -> Fulfilled
//   - Pending -> Cancelled
//
// Any other jump fails with an InvalidTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s != Pending || target == Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
