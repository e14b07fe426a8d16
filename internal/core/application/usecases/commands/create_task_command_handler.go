package commands

import (
	"context"

	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/task"
)

// CreateTaskCommandHandler handles the business logic for task creation.
// New tasks start in "available" status at their pickup OP code, ready to be
// claimed by couriers whose scope covers them.
//
// Example:
//
//	handler := NewCreateTaskCommandHandler(uowFactory)
//	cmd, _ := NewCreateTaskCommand(taskID, letterID, pickup, delivery,
//	    task.PriorityUrgent, courier.LevelZone, false)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("task creation failed: %w", err)
//	}
//	// Task is now available for claiming
type CreateTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewCreateTaskCommandHandler creates a handler for task creation operations.
// Requires a TaskUoWFactory for transactional persistence.
func NewCreateTaskCommandHandler(uowFactory TaskUoWFactory) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task creation command.
// Creates the task in "available" status and appends the creation record to
// the audit log within the same transaction.
func (h CreateTaskCommandHandler) Handle(ctx context.Context, cmd CreateTaskCommand) error {
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
	newTask, err := task.NewTask(cmd.TaskID(), cmd.LetterID(),
		cmd.PickupOPCode(), cmd.DeliveryOPCode(),
		cmd.Priority(), cmd.RequiredLevel(), cmd.Public())
	if err != nil {
		return err
	}

	if err = taskRepo.Add(ctx, newTask); err != nil {
		return err
	}

	created, err := history.NewTaskTransition(newTask.ID(), nil,
		task.StatusAvailable, task.StatusAvailable)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().AppendTaskTransition(ctx, created); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
