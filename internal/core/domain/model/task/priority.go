package task

import (
	"fmt"

	"letterpost/internal/pkg/errs"
)

// Priority represents the delivery urgency of a task. Priorities form a
// total order (Express > Urgent > Normal) used to rank claimable tasks
// deterministically.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityNormal is the default delivery priority.
	PriorityNormal

	// PriorityUrgent marks time-sensitive deliveries.
	PriorityUrgent

	// PriorityExpress marks the highest delivery priority.
	PriorityExpress
)

// getPriorityStrings returns a map of Priority values to their string representations.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityNormal:  "Normal",
		PriorityUrgent:  "Urgent",
		PriorityExpress: "Express",
	}
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p < PriorityNormal || p > PriorityExpress {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid task priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
// Implements the fmt.Stringer interface; safe to call on invalid values.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
