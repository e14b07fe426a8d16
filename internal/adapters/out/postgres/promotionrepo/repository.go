package promotionrepo

import (
	"context"
	"errors"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/promotion"
	"letterpost/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPromotionRepository implements PromotionRepository using GORM.
type GormPromotionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPromotionRepository creates a new GORM promotion request repository.
func NewGormPromotionRepository(db *gorm.DB, tracker aggregateTracker) *GormPromotionRepository {
	return &GormPromotionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new promotion request to the database.
func (r *GormPromotionRepository) Add(ctx context.Context, aggregate *promotion.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the review outcome of an existing request.
func (r *GormPromotionRepository) Update(ctx context.Context, aggregate *promotion.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a promotion request by ID.
func (r *GormPromotionRepository) Get(ctx context.Context, id kernel.UUID) (*promotion.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("promotion request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves all requests awaiting review, oldest first.
func (r *GormPromotionRepository) GetAllPending(ctx context.Context) ([]*promotion.Request, error) {
	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(promotion.StatusPending)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	requests := make([]*promotion.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
