package task

import (
	"errors"
	"fmt"

	"letterpost/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a lifecycle transition is attempted
// that the transition table does not allow. Terminal statuses allow none.
var ErrIllegalTransition = errors.New("illegal task status transition")

// Status represents the lifecycle state of a delivery task.
// It implements a state machine with defined transitions to ensure
// tasks follow the correct delivery workflow.
//
// State transitions:
//
//	Available ──┬──> Accepted ──┬──> Collected ──> InTransit ──┬──> Delivered
//	            │               │                              └──> Failed
//	            └───────────────┴──> Canceled
//
// Delivered, Failed and Canceled are terminal states with no further
// transitions. CanTransitionTo is a pure function of the current status and
// the table above; it never consults external state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAvailable is the initial status: the task is visible to eligible
	// couriers and waiting to be claimed.
	StatusAvailable

	// StatusAccepted indicates exactly one courier has claimed the task.
	StatusAccepted

	// StatusCollected indicates the courier has picked up the letter at the
	// pickup OP code.
	StatusCollected

	// StatusInTransit indicates the letter is moving toward its delivery OP code.
	StatusInTransit

	// StatusDelivered indicates successful delivery. Terminal.
	StatusDelivered

	// StatusFailed indicates the delivery could not be completed. Terminal.
	StatusFailed

	// StatusCanceled indicates the task was withdrawn before completion. Terminal.
	StatusCanceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusAvailable: "Available",
		StatusAccepted:  "Accepted",
		StatusCollected: "Collected",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusFailed:    "Failed",
		StatusCanceled:  "Canceled",
	}
}

// getTransitions returns the lifecycle transition table: source status to
// the set of allowed targets. Statuses absent from a source's set are
// unreachable from it; terminal statuses have empty sets.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusAvailable: {StatusAccepted, StatusCanceled},
		StatusAccepted:  {StatusCollected, StatusCanceled},
		StatusCollected: {StatusInTransit},
		StatusInTransit: {StatusDelivered, StatusFailed},
		StatusDelivered: {},
		StatusFailed:    {},
		StatusCanceled:  {},
	}
}

// Validate checks if the Status value is one of the lifecycle states.
func (s Status) Validate() error {
	if s < StatusAvailable || s > StatusCanceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid task status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the transition table allows moving from
// this status to the target. Pure; consults nothing but the table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the transition table allows it,
// or ErrIllegalTransition otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.String(), target.String())
	}
	return target, nil
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0 && s.Validate() == nil
}

// IsActive reports whether the task is still in flight:
// available, accepted, collected or in transit.
func (s Status) IsActive() bool {
	return s == StatusAvailable || s == StatusAccepted || s == StatusCollected || s == StatusInTransit
}
