package commands

import (
	"context"
	"errors"
	"fmt"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/promotion"
	"letterpost/internal/core/ports"
)

var (
	// ErrReviewerIsNotAuthorized is returned when the reviewing courier does
	// not outrank the applicant, is not in the applicant's ancestor chain, or
	// (on approval) does not manage a scope containing the requested one.
	ErrReviewerIsNotAuthorized = errors.New("reviewer is not an authorized superior of the applicant")

	// ErrHierarchyIsCorrupted is returned when an applicant's parent chain is
	// longer than the four tiers the hierarchy allows.
	ErrHierarchyIsCorrupted = errors.New("courier parent chain exceeds the hierarchy depth")
)

// maxHierarchyDepth bounds the ancestor walk: the hierarchy is a forest of
// at most four tiers, so a longer parent chain indicates corrupted data.
const maxHierarchyDepth = 4

// ReviewPromotionCommandHandler handles the review of pending promotion
// requests. Only a strict superior in the applicant's own ancestor chain may
// decide a request. An approval atomically widens the applicant's scope,
// raises their level and re-parents them under the ancestor that now sits
// one tier above; a rejection archives the request with its reason and
// leaves the applicant untouched.
type ReviewPromotionCommandHandler struct {
	uowFactory PromotionUoWFactory
}

// NewReviewPromotionCommandHandler creates a handler for promotion review
// operations. Requires a PromotionUoWFactory for coordinating the request,
// the courier and the audit trail in one transaction.
func NewReviewPromotionCommandHandler(uowFactory PromotionUoWFactory) ReviewPromotionCommandHandler {
	return ReviewPromotionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
// Returns ErrReviewerIsNotAuthorized when the reviewer fails the superiority
// checks, and domain errors from the request aggregate when the request is no
// longer pending.
func (h ReviewPromotionCommandHandler) Handle(ctx context.Context, cmd ReviewPromotionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	promotionRepo := uow.PromotionRepository()

	request, err := promotionRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	reviewer, err := courierRepo.Get(ctx, cmd.ReviewerID())
	if err != nil {
		return err
	}

	applicant, err := courierRepo.Get(ctx, request.CourierID())
	if err != nil {
		return err
	}

	ancestors, err := ancestorChain(ctx, courierRepo, applicant)
	if err != nil {
		return err
	}

	if err = authorizeReviewer(reviewer, applicant, ancestors); err != nil {
		return err
	}

	if cmd.Approve() {
		err = h.approve(ctx, uow, request, reviewer, applicant, ancestors)
	} else {
		err = h.reject(ctx, uow, request, reviewer, applicant, cmd.Reason())
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// approve applies the requested scope to the applicant and re-parents them
// under the ancestor now one tier above. The request, the courier and the
// audit record are persisted in the surrounding transaction.
func (h ReviewPromotionCommandHandler) approve(
	ctx context.Context,
	uow PromotionUoW,
	request *promotion.Request,
	reviewer *courier.Courier,
	applicant *courier.Courier,
	ancestors []*courier.Courier,
) error {
	withinScope, err := reviewer.ManagedPrefix().CoversPrefix(request.TargetPrefix())
	if err != nil {
		return err
	}
	if !withinScope {
		return ErrReviewerIsNotAuthorized
	}

	if err = request.Approve(reviewer.ID()); err != nil {
		return err
	}

	newParentID := parentForLevel(ancestors, request.TargetLevel())
	if err = applicant.ApplyPromotion(request.TargetLevel(), request.TargetPrefix(), newParentID); err != nil {
		return err
	}

	if err = uow.PromotionRepository().Update(ctx, request); err != nil {
		return err
	}

	if err = uow.CourierRepository().Update(ctx, applicant); err != nil {
		return err
	}

	reviewerID := reviewer.ID()
	approved, err := history.NewCourierEvent(applicant.ID(), &reviewerID, history.KindPromotionApproved,
		fmt.Sprintf("promoted to level %s with scope %s", request.TargetLevel(), request.TargetPrefix()))
	if err != nil {
		return err
	}

	return uow.HistoryRepository().AppendCourierEvent(ctx, approved)
}

// reject archives the request with its reason; the applicant is untouched.
func (h ReviewPromotionCommandHandler) reject(
	ctx context.Context,
	uow PromotionUoW,
	request *promotion.Request,
	reviewer *courier.Courier,
	applicant *courier.Courier,
	reason string,
) error {
	if err := request.Reject(reviewer.ID(), reason); err != nil {
		return err
	}

	if err := uow.PromotionRepository().Update(ctx, request); err != nil {
		return err
	}

	reviewerID := reviewer.ID()
	rejected, err := history.NewCourierEvent(applicant.ID(), &reviewerID, history.KindPromotionRejected,
		fmt.Sprintf("promotion rejected: %s", reason))
	if err != nil {
		return err
	}

	return uow.HistoryRepository().AppendCourierEvent(ctx, rejected)
}

// ancestorChain walks the applicant's parent links from the immediate parent
// up to the hierarchy root, bounded by the four-tier depth limit.
func ancestorChain(ctx context.Context, repo ports.CourierRepository, c *courier.Courier) ([]*courier.Courier, error) {
	ancestors := make([]*courier.Courier, 0, maxHierarchyDepth-1)
	parentID := c.ParentID()
	for hops := 0; parentID != nil; hops++ {
		if hops >= maxHierarchyDepth {
			return nil, ErrHierarchyIsCorrupted
		}

		parent, err := repo.Get(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		ancestors = append(ancestors, parent)
		parentID = parent.ParentID()
	}
	return ancestors, nil
}

// authorizeReviewer enforces the superiority rules: the reviewer must be
// active, strictly outrank the applicant and sit in the applicant's own
// ancestor chain.
func authorizeReviewer(reviewer, applicant *courier.Courier, ancestors []*courier.Courier) error {
	if !reviewer.IsActive() {
		return ErrReviewerIsNotAuthorized
	}
	if reviewer.Level() <= applicant.Level() {
		return ErrReviewerIsNotAuthorized
	}
	for _, ancestor := range ancestors {
		if ancestor.IsEqual(reviewer) {
			return nil
		}
	}
	return ErrReviewerIsNotAuthorized
}

// parentForLevel picks the applicant's new parent after a promotion: the
// ancestor exactly one tier above the new level. City-level couriers are
// hierarchy roots and get none.
func parentForLevel(ancestors []*courier.Courier, newLevel courier.Level) *kernel.UUID {
	if newLevel == courier.LevelCity {
		return nil
	}
	for _, ancestor := range ancestors {
		if ancestor.Level() == newLevel+1 {
			id := ancestor.ID()
			return &id
		}
	}
	return nil
}
