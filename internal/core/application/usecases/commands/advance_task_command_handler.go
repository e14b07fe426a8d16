package commands

import (
	"context"

	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/core/domain/services"
)

// AdvanceTaskCommandHandler handles courier-driven lifecycle transitions:
// collection, transit, delivery, failure and cancelation.
//
// Transitions are idempotent: a retried command whose target status the task
// already reached is a no-op success, not an error. Concurrent writers are
// fenced by the repository's conditional update, so a transition is applied
// at most once even when two deliveries of the same message race.
type AdvanceTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewAdvanceTaskCommandHandler creates a handler for task lifecycle
// transitions. Requires a TaskUoWFactory for transactional persistence.
func NewAdvanceTaskCommandHandler(uowFactory TaskUoWFactory) AdvanceTaskCommandHandler {
	return AdvanceTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
// Only the courier bound to the task may drive it forward; cancelation of a
// still-available task is the one transition allowed without a binding.
// The transition and its audit record commit together.
func (h AdvanceTaskCommandHandler) Handle(ctx context.Context, cmd AdvanceTaskCommand) error {
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

	taskRepo := uow.TaskRepository()

	advancedTask, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	// Retried delivery of the same transition: already there, nothing to do.
	if advancedTask.Status() == cmd.Target() {
		return nil
	}

	if err = authorizeTransition(advancedTask, cmd); err != nil {
		return err
	}

	expected := advancedTask.Status()

	if cmd.Scan() != nil && advancedTask.Courier() != nil {
		if err = advancedTask.RecordScan(*cmd.Scan()); err != nil {
			return err
		}
	}

	if err = applyTransition(advancedTask, cmd.Target()); err != nil {
		return err
	}

	applied, err := taskRepo.UpdateIfStatus(ctx, advancedTask, expected)
	if err != nil {
		return err
	}
	if !applied {
		// Lost the race against another writer. If that writer applied the
		// same transition the command already succeeded; otherwise the task
		// moved somewhere this transition no longer fits.
		current, getErr := taskRepo.Get(ctx, cmd.TaskID())
		if getErr != nil {
			return getErr
		}
		if current.Status() == cmd.Target() {
			return nil
		}
		return task.ErrIllegalTransition
	}

	var actorID *kernel.UUID
	if advancedTask.Courier() != nil {
		actorID = advancedTask.Courier()
	}

	transition, err := history.NewTaskTransition(advancedTask.ID(), actorID, expected, cmd.Target())
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().AppendTaskTransition(ctx, transition); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// authorizeTransition enforces that only the bound courier drives a claimed
// task. Canceling a task nobody claimed yet needs no binding.
func authorizeTransition(t *task.Task, cmd AdvanceTaskCommand) error {
	if t.Courier() == nil {
		if cmd.Target() == task.StatusCanceled {
			return nil
		}
		return services.ErrPermissionDenied
	}
	if !t.Courier().IsEqual(cmd.CourierID()) {
		return services.ErrPermissionDenied
	}
	return nil
}

// applyTransition maps the target status onto the aggregate's transition
// methods, which enforce the lifecycle table.
func applyTransition(t *task.Task, target task.Status) error {
	switch target {
	case task.StatusCollected:
		return t.MarkCollected()
	case task.StatusInTransit:
		return t.StartTransit()
	case task.StatusDelivered:
		return t.MarkDelivered()
	case task.StatusFailed:
		return t.MarkFailed()
	case task.StatusCanceled:
		return t.Cancel()
	default:
		return ErrTargetStatusIsInvalid
	}
}
