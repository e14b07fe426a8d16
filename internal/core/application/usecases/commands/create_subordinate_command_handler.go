package commands

import (
	"context"
	"fmt"

	"letterpost/internal/core/domain/model/history"
)

// CreateSubordinateCommandHandler handles the appointment of subordinate
// couriers. The hierarchy rules live in the courier aggregate; this handler
// adds the platform's review policy: when requireApproval is set, new
// couriers start pending and must be approved before they can act.
//
// Example:
//
//	handler := NewCreateSubordinateCommandHandler(uowFactory, cfg.SubordinateRequireApproval)
//	cmd, _ := NewCreateSubordinateCommand(parentID, kernel.NewUUID(), courier.LevelZone, prefix)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("appointment failed: %w", err)
//	}
type CreateSubordinateCommandHandler struct {
	uowFactory      CourierUoWFactory
	requireApproval bool
}

// NewCreateSubordinateCommandHandler creates a handler for subordinate
// appointment operations. requireApproval is the platform policy for whether
// new couriers start pending or active.
func NewCreateSubordinateCommandHandler(uowFactory CourierUoWFactory, requireApproval bool) CreateSubordinateCommandHandler {
	return CreateSubordinateCommandHandler{
		uowFactory:      uowFactory,
		requireApproval: requireApproval,
	}
}

// Handle processes the appointment command.
// Loads the appointing courier, delegates the hierarchy rules to its
// CreateSubordinate operation and persists the new courier together with the
// audit record of its creation.
func (h CreateSubordinateCommandHandler) Handle(ctx context.Context, cmd CreateSubordinateCommand) error {
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

	parent, err := courierRepo.Get(ctx, cmd.ParentID())
	if err != nil {
		return err
	}

	subordinate, err := parent.CreateSubordinate(cmd.SubordinateID(), cmd.Level(),
		cmd.ManagedPrefix(), h.requireApproval)
	if err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, subordinate); err != nil {
		return err
	}

	actorID := parent.ID()
	created, err := history.NewCourierEvent(subordinate.ID(), &actorID, history.KindCreated,
		fmt.Sprintf("appointed at level %s with scope %s", subordinate.Level(), subordinate.ManagedPrefix()))
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().AppendCourierEvent(ctx, created); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
