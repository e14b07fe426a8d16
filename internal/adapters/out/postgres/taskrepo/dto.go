// Package taskrepo provides data transfer objects and mapping functions for task persistence.
// This package implements the repository pattern for the task domain aggregate, handling
// the conversion between domain entities and database representations.
package taskrepo

import (
	"time"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting task aggregates.
// OP codes are stored as plain text so scope filtering compiles to indexed
// LIKE 'prefix%' predicates; the (status, courier_id) pair is what the
// conditional claim and transition updates fence on.
type TaskDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LetterID       uuid.UUID  `gorm:"type:uuid;not null"`
	PickupOPCode   string     `gorm:"type:varchar(16);not null;index"`
	DeliveryOPCode string     `gorm:"type:varchar(16);not null"`
	CurrentOPCode  string     `gorm:"type:varchar(16);not null"`
	Status         int        `gorm:"type:int;not null;index"`
	CourierID      *uuid.UUID `gorm:"type:uuid;index"`
	RequiredLevel  int        `gorm:"type:int;not null"`
	Priority       int        `gorm:"type:int;not null"`
	Public         bool       `gorm:"type:boolean;not null"`
	CreatedAt      time.Time  `gorm:"type:timestamptz;not null"`
	AcceptedAt     *time.Time `gorm:"type:timestamptz"`
	CompletedAt    *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for task entities.
// Overrides GORM's default naming convention to use "tasks" instead of "task_dtos".
func (TaskDTO) TableName() string {
	return "tasks"
}

// fromDomain converts a task domain aggregate to its database representation.
func fromDomain(aggregate *task.Task) TaskDTO {
	var courierID *uuid.UUID
	if aggregate.Courier() != nil {
		raw := aggregate.Courier().Bytes()
		courierID = &raw
	}

	return TaskDTO{
		ID:             aggregate.ID().Bytes(),
		LetterID:       aggregate.LetterID().Bytes(),
		PickupOPCode:   aggregate.PickupOPCode().Value(),
		DeliveryOPCode: aggregate.DeliveryOPCode().Value(),
		CurrentOPCode:  aggregate.CurrentOPCode().Value(),
		Status:         int(aggregate.Status()),
		CourierID:      courierID,
		RequiredLevel:  int(aggregate.RequiredLevel()),
		Priority:       int(aggregate.Priority()),
		Public:         aggregate.IsPublic(),
		CreatedAt:      aggregate.CreatedAt(),
		AcceptedAt:     aggregate.AcceptedAt(),
		CompletedAt:    aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a task domain aggregate.
// Reconstructs the aggregate through RestoreTask so all invariants are
// re-validated on the way out of storage.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	letterID, err := kernel.UUIDFromBytes(dto.LetterID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewOPCode(dto.PickupOPCode)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewOPCode(dto.DeliveryOPCode)
	if err != nil {
		return nil, err
	}

	current, err := kernel.NewOPCode(dto.CurrentOPCode)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	return task.RestoreTask(id, letterID, pickup, delivery, current,
		task.Status(dto.Status), courierID,
		courier.Level(dto.RequiredLevel), task.Priority(dto.Priority), dto.Public,
		dto.CreatedAt, dto.AcceptedAt, dto.CompletedAt)
}
