package commands

import (
	"context"
	"fmt"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/promotion"
)

// RequestPromotionCommandHandler handles the filing of promotion requests.
// Filing is courier-initiated and cheap; all judgment happens later at review
// time. The handler only verifies the applicant exists, is active, and is
// actually applying upward.
type RequestPromotionCommandHandler struct {
	uowFactory PromotionUoWFactory
}

// NewRequestPromotionCommandHandler creates a handler for filing promotion
// requests. Requires a PromotionUoWFactory for transactional persistence.
func NewRequestPromotionCommandHandler(uowFactory PromotionUoWFactory) RequestPromotionCommandHandler {
	return RequestPromotionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the filing command.
// Creates the request in "pending" status and appends the filing record to
// the applicant's audit trail within the same transaction.
func (h RequestPromotionCommandHandler) Handle(ctx context.Context, cmd RequestPromotionCommand) error {
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

	applicant, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if !applicant.IsActive() {
		return courier.ErrCourierIsNotActive
	}
	if cmd.TargetLevel() <= applicant.Level() {
		return courier.ErrInvalidLevel
	}

	request, err := promotion.NewRequest(cmd.RequestID(), cmd.CourierID(),
		cmd.TargetLevel(), cmd.TargetPrefix(), cmd.Evidence())
	if err != nil {
		return err
	}

	if err = uow.PromotionRepository().Add(ctx, request); err != nil {
		return err
	}

	filed, err := history.NewCourierEvent(applicant.ID(), nil, history.KindPromotionRequested,
		fmt.Sprintf("applied for level %s with scope %s", cmd.TargetLevel(), cmd.TargetPrefix()))
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().AppendCourierEvent(ctx, filed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
