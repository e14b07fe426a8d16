// Package history provides the append-only audit records of the letter
// delivery platform: courier hierarchy events and task lifecycle
// transitions. Records are written together with the mutation that caused
// them and are never updated or deleted; external reporting consumes them as
// read-only ordered sequences.
package history

import (
	"fmt"
	"time"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/pkg/errs"
)

// CourierEventKind classifies hierarchy audit events.
type CourierEventKind int

const (
	// KindUnknown represents an invalid or undefined event kind.
	KindUnknown CourierEventKind = iota
	// KindCreated records the creation of a courier.
	KindCreated
	// KindApproved records the activation of a pending courier.
	KindApproved
	// KindSuspended records the deactivation of a courier.
	KindSuspended
	// KindPromotionRequested records the filing of a promotion request.
	KindPromotionRequested
	// KindPromotionApproved records an approved promotion.
	KindPromotionApproved
	// KindPromotionRejected records a rejected promotion.
	KindPromotionRejected
)

// getKindStrings returns a map of CourierEventKind values to their string representations.
func getKindStrings() map[CourierEventKind]string {
	return map[CourierEventKind]string{
		KindUnknown:            "Unknown",
		KindCreated:            "Created",
		KindApproved:           "Approved",
		KindSuspended:          "Suspended",
		KindPromotionRequested: "PromotionRequested",
		KindPromotionApproved:  "PromotionApproved",
		KindPromotionRejected:  "PromotionRejected",
	}
}

// Validate checks if the kind is one of the known audit event kinds.
func (k CourierEventKind) Validate() error {
	if k < KindCreated || k > KindPromotionRejected {
		return errs.NewValueIsInvalidErrorWithCause("event kind is invalid",
			fmt.Errorf("%d is not a valid courier event kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k CourierEventKind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// CourierEvent is one immutable hierarchy audit record.
type CourierEvent struct {
	ID kernel.UUID
	// CourierID is the courier the event is about.
	CourierID kernel.UUID
	// ActorID is the courier that performed the action, nil for out-of-band
	// administrative actions.
	ActorID    *kernel.UUID
	Kind       CourierEventKind
	Details    string
	OccurredAt time.Time
}

// NewCourierEvent creates a hierarchy audit record stamped with the current time.
func NewCourierEvent(courierID kernel.UUID, actorID *kernel.UUID, kind CourierEventKind, details string) (CourierEvent, error) {
	event := CourierEvent{
		ID:         kernel.NewUUID(),
		CourierID:  courierID,
		ActorID:    actorID,
		Kind:       kind,
		Details:    details,
		OccurredAt: time.Now().UTC(),
	}
	if err := event.Validate(); err != nil {
		return CourierEvent{}, err
	}
	return event, nil
}

// Validate checks the record's identifiers and kind.
func (e CourierEvent) Validate() error {
	if err := e.ID.Validate(); err != nil {
		return err
	}
	if err := e.CourierID.Validate(); err != nil {
		return err
	}
	if e.ActorID != nil {
		if err := e.ActorID.Validate(); err != nil {
			return err
		}
	}
	return e.Kind.Validate()
}

// TaskTransition is one immutable task lifecycle audit record: the task
// moved from one status to another, by which courier, and when. These are
// the state-change events the notification layer consumes.
type TaskTransition struct {
	ID     kernel.UUID
	TaskID kernel.UUID
	// CourierID is the courier driving the transition, nil for transitions
	// without an acting courier (creation, administrative cancelation).
	CourierID  *kernel.UUID
	From       task.Status
	To         task.Status
	OccurredAt time.Time
}

// NewTaskTransition creates a task audit record stamped with the current time.
func NewTaskTransition(taskID kernel.UUID, courierID *kernel.UUID, from, to task.Status) (TaskTransition, error) {
	transition := TaskTransition{
		ID:         kernel.NewUUID(),
		TaskID:     taskID,
		CourierID:  courierID,
		From:       from,
		To:         to,
		OccurredAt: time.Now().UTC(),
	}
	if err := transition.Validate(); err != nil {
		return TaskTransition{}, err
	}
	return transition, nil
}

// Validate checks the record's identifiers and statuses.
// From is allowed to be the same as To only for the creation record
// (available -> available); real transitions always differ.
func (t TaskTransition) Validate() error {
	if err := t.ID.Validate(); err != nil {
		return err
	}
	if err := t.TaskID.Validate(); err != nil {
		return err
	}
	if t.CourierID != nil {
		if err := t.CourierID.Validate(); err != nil {
			return err
		}
	}
	if err := t.From.Validate(); err != nil {
		return err
	}
	return t.To.Validate()
}
