// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The managed prefix is stored as plain text so scope checks compile to
// indexed LIKE 'prefix%' predicates.
type CourierDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Level         int        `gorm:"type:int;not null"`
	ManagedPrefix string     `gorm:"type:varchar(16);not null;index"`
	ParentID      *uuid.UUID `gorm:"type:uuid;index"`
	Status        int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	var parentID *uuid.UUID
	if aggregate.ParentID() != nil {
		raw := aggregate.ParentID().Bytes()
		parentID = &raw
	}

	return CourierDTO{
		ID:            aggregate.ID().Bytes(),
		Level:         int(aggregate.Level()),
		ManagedPrefix: aggregate.ManagedPrefix().Value(),
		ParentID:      parentID,
		Status:        int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the aggregate through RestoreCourier so all invariants are
// re-validated on the way out of storage.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	managedPrefix, err := kernel.NewPrefix(dto.ManagedPrefix)
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &pID
	}

	return courier.RestoreCourier(id, courier.Level(dto.Level), managedPrefix,
		parentID, courier.Status(dto.Status))
}
