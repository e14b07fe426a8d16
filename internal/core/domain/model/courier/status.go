package courier

import (
	"fmt"

	"letterpost/internal/pkg/errs"
)

// Status represents the activation state of a courier.
// It implements a small state machine so couriers are deactivated and
// re-activated through explicit transitions instead of field writes.
//
// State transitions:
//
//	PendingApproval ──> Active <──> Suspended
//
// Couriers are never deleted; Suspended is the soft terminal for
// decommissioned participants and can be reversed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPendingApproval indicates a courier created under a review policy
	// that has not been approved yet. Pending couriers cannot act.
	StatusPendingApproval

	// StatusActive indicates a fully operational courier.
	StatusActive

	// StatusSuspended indicates a deactivated courier. Suspended couriers
	// keep their record and history but cannot act.
	StatusSuspended
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusPendingApproval: "PendingApproval",
		StatusActive:          "Active",
		StatusSuspended:       "Suspended",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPendingApproval: "PendingApproval",
		StatusActive:          "Active",
		StatusSuspended:       "Suspended",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid courier status", s))
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

// Approve transitions the status from PendingApproval to Active.
func (s Status) Approve() (Status, error) {
	if s != StatusPendingApproval {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to approve", s.String()))
	}
	return StatusActive, nil
}

// Suspend transitions the status from Active to Suspended.
func (s Status) Suspend() (Status, error) {
	if s != StatusActive {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to suspend", s.String()))
	}
	return StatusSuspended, nil
}

// Activate transitions the status from Suspended back to Active.
func (s Status) Activate() (Status, error) {
	if s != StatusSuspended {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to activate", s.String()))
	}
	return StatusActive, nil
}
