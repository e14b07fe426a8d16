// Package promotionrepo provides data transfer objects and mapping functions
// for promotion request persistence.
package promotionrepo

import (
	"time"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/promotion"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting promotion
// request aggregates.
type RequestDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TargetLevel  int        `gorm:"type:int;not null"`
	TargetPrefix string     `gorm:"type:varchar(16);not null"`
	Evidence     string     `gorm:"type:text;not null"`
	Status       int        `gorm:"type:int;not null;index"`
	Reason       string     `gorm:"type:text;not null"`
	ReviewerID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time  `gorm:"type:timestamptz;not null"`
	ReviewedAt   *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for promotion request entities.
func (RequestDTO) TableName() string {
	return "promotion_requests"
}

// fromDomain converts a promotion request aggregate to its database representation.
func fromDomain(aggregate *promotion.Request) RequestDTO {
	var reviewerID *uuid.UUID
	if aggregate.ReviewerID() != nil {
		raw := aggregate.ReviewerID().Bytes()
		reviewerID = &raw
	}

	return RequestDTO{
		ID:           aggregate.ID().Bytes(),
		CourierID:    aggregate.CourierID().Bytes(),
		TargetLevel:  int(aggregate.TargetLevel()),
		TargetPrefix: aggregate.TargetPrefix().Value(),
		Evidence:     aggregate.Evidence(),
		Status:       int(aggregate.Status()),
		Reason:       aggregate.Reason(),
		ReviewerID:   reviewerID,
		CreatedAt:    aggregate.CreatedAt(),
		ReviewedAt:   aggregate.ReviewedAt(),
	}
}

// toDomain converts a database DTO to a promotion request aggregate.
func toDomain(dto RequestDTO) (*promotion.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	targetPrefix, err := kernel.NewPrefix(dto.TargetPrefix)
	if err != nil {
		return nil, err
	}

	var reviewerID *kernel.UUID
	if dto.ReviewerID != nil {
		rID, reviewerErr := kernel.UUIDFromBytes((*dto.ReviewerID)[:])
		if reviewerErr != nil {
			return nil, reviewerErr
		}
		reviewerID = &rID
	}

	return promotion.RestoreRequest(id, courierID, courier.Level(dto.TargetLevel),
		targetPrefix, dto.Evidence, promotion.Status(dto.Status), dto.Reason,
		reviewerID, dto.CreatedAt, dto.ReviewedAt)
}
