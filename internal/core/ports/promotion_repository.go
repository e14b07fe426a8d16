package ports

import (
	"context"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/promotion"
)

// PromotionRepository defines the persistence contract for promotion
// request aggregates.
type PromotionRepository interface {
	// Add persists a new promotion request.
	Add(ctx context.Context, request *promotion.Request) error

	// Update persists the review outcome of an existing request.
	Update(ctx context.Context, request *promotion.Request) error

	// Get retrieves a promotion request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*promotion.Request, error)

	// GetAllPending retrieves all requests awaiting review.
	GetAllPending(ctx context.Context) ([]*promotion.Request, error)
}
