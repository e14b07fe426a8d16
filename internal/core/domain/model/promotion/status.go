package promotion

import (
	"fmt"

	"letterpost/internal/pkg/errs"
)

// Status represents the review state of a promotion request.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Approved and Rejected are terminal; reviewed requests are immutable
// history.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending indicates a request awaiting review.
	StatusPending

	// StatusApproved indicates the request was approved and applied.
	StatusApproved

	// StatusRejected indicates the request was rejected and archived.
	StatusRejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusPending:  "Pending",
		StatusApproved: "Approved",
		StatusRejected: "Rejected",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusRejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid promotion request status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the status from Pending to Approved.
func (s Status) Approve() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to approve", s.String()))
	}
	return StatusApproved, nil
}

// Reject transitions the status from Pending to Rejected.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s.String()))
	}
	return StatusRejected, nil
}
