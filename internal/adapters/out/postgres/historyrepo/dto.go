// Package historyrepo provides data transfer objects and mapping functions
// for the append-only audit log: courier hierarchy events and task lifecycle
// transitions.
package historyrepo

import (
	"time"

	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// CourierEventDTO represents the database structure for hierarchy audit
// records. Rows are inserted, never updated or deleted.
type CourierEventDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Kind       int        `gorm:"type:int;not null"`
	Details    string     `gorm:"type:text;not null"`
	OccurredAt time.Time  `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for courier audit records.
func (CourierEventDTO) TableName() string {
	return "courier_events"
}

// TaskTransitionDTO represents the database structure for task lifecycle
// audit records. Rows are inserted, never updated or deleted. The "from" and
// "to" statuses get explicit column names since FROM and TO are SQL keywords.
type TaskTransitionDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TaskID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID  *uuid.UUID `gorm:"type:uuid"`
	FromStatus int        `gorm:"column:from_status;type:int;not null"`
	ToStatus   int        `gorm:"column:to_status;type:int;not null"`
	OccurredAt time.Time  `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for task audit records.
func (TaskTransitionDTO) TableName() string {
	return "task_transitions"
}

// courierEventFromDomain converts a hierarchy audit record to its database representation.
func courierEventFromDomain(event history.CourierEvent) CourierEventDTO {
	var actorID *uuid.UUID
	if event.ActorID != nil {
		raw := event.ActorID.Bytes()
		actorID = &raw
	}

	return CourierEventDTO{
		ID:         event.ID.Bytes(),
		CourierID:  event.CourierID.Bytes(),
		ActorID:    actorID,
		Kind:       int(event.Kind),
		Details:    event.Details,
		OccurredAt: event.OccurredAt,
	}
}

// courierEventToDomain converts a database DTO to a hierarchy audit record.
func courierEventToDomain(dto CourierEventDTO) (history.CourierEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return history.CourierEvent{}, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return history.CourierEvent{}, err
	}

	var actorID *kernel.UUID
	if dto.ActorID != nil {
		aID, actorErr := kernel.UUIDFromBytes((*dto.ActorID)[:])
		if actorErr != nil {
			return history.CourierEvent{}, actorErr
		}
		actorID = &aID
	}

	return history.CourierEvent{
		ID:         id,
		CourierID:  courierID,
		ActorID:    actorID,
		Kind:       history.CourierEventKind(dto.Kind),
		Details:    dto.Details,
		OccurredAt: dto.OccurredAt,
	}, nil
}

// taskTransitionFromDomain converts a task audit record to its database representation.
func taskTransitionFromDomain(transition history.TaskTransition) TaskTransitionDTO {
	var courierID *uuid.UUID
	if transition.CourierID != nil {
		raw := transition.CourierID.Bytes()
		courierID = &raw
	}

	return TaskTransitionDTO{
		ID:         transition.ID.Bytes(),
		TaskID:     transition.TaskID.Bytes(),
		CourierID:  courierID,
		FromStatus: int(transition.From),
		ToStatus:   int(transition.To),
		OccurredAt: transition.OccurredAt,
	}
}

// taskTransitionToDomain converts a database DTO to a task audit record.
func taskTransitionToDomain(dto TaskTransitionDTO) (history.TaskTransition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return history.TaskTransition{}, err
	}

	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return history.TaskTransition{}, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return history.TaskTransition{}, courierErr
		}
		courierID = &cID
	}

	return history.TaskTransition{
		ID:         id,
		TaskID:     taskID,
		CourierID:  courierID,
		From:       task.Status(dto.FromStatus),
		To:         task.Status(dto.ToStatus),
		OccurredAt: dto.OccurredAt,
	}, nil
}
