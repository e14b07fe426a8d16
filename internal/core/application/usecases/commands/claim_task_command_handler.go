package commands

import (
	"context"

	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/core/domain/services"
)

// ClaimTaskCommandHandler orchestrates the exclusive claim of a task.
//
// Permission is checked before availability, so a courier outside the task's
// scope gets services.ErrPermissionDenied even when the task is already gone.
// Exclusivity under concurrency is delegated to the repository's atomic
// conditional claim: of N concurrent claimers exactly one commits, the rest
// receive task.ErrAlreadyClaimed.
//
// Example:
//
//	handler := NewClaimTaskCommandHandler(uowFactory)
//	cmd, _ := NewClaimTaskCommand(taskID, courierID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrPermissionDenied):
//	    log.Println("Task is outside the courier's scope")
//	case errors.Is(err, task.ErrAlreadyClaimed):
//	    log.Println("Another courier was faster")
//	case err != nil:
//	    log.Printf("Claim failed: %v", err)
//	default:
//	    log.Println("Task claimed")
//	}
type ClaimTaskCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimTaskCommandHandler creates a handler for task claiming operations.
// Requires a UoWFactory for coordinating courier and task repositories in one
// transaction.
func NewClaimTaskCommandHandler(uowFactory UoWFactory) ClaimTaskCommandHandler {
	return ClaimTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
// Loads the courier and the task, runs the TaskMatcher eligibility rules,
// applies the Available -> Accepted transition and persists it through the
// atomic conditional claim. The lifecycle transition and its audit record
// commit together.
func (h ClaimTaskCommandHandler) Handle(ctx context.Context, cmd ClaimTaskCommand) error {
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
	taskRepo := uow.TaskRepository()

	claimer, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	claimedTask, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if err = services.NewTaskMatcher().CanClaim(claimer, claimedTask); err != nil {
		return err
	}

	if claimedTask.Status() == task.StatusAccepted {
		return task.ErrAlreadyClaimed
	}

	if err = claimedTask.Accept(cmd.CourierID()); err != nil {
		return err
	}

	if err = taskRepo.Claim(ctx, claimedTask); err != nil {
		return err
	}

	courierID := cmd.CourierID()
	claimed, err := history.NewTaskTransition(claimedTask.ID(), &courierID,
		task.StatusAvailable, task.StatusAccepted)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().AppendTaskTransition(ctx, claimed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
