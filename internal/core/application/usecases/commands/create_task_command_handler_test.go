package commands_test

import (
	"errors"
	"testing"

	"letterpost/internal/core/application/usecases/commands"
	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateTaskCommand(t *testing.T) commands.CreateTaskCommand {
	t.Helper()
	cmd, err := commands.NewCreateTaskCommand(kernel.NewUUID(), kernel.NewUUID(),
		mustOPCode(t, "BJDX5F01"), mustOPCode(t, "BJDX2A07"),
		task.PriorityNormal, courier.LevelBuilding, false)
	require.NoError(t, err)
	return cmd
}

func TestCreateTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTaskCommand(t)

	taskRepo := new(MockTaskRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("AppendTaskTransition", ctx, mock.AnythingOfType("history.TaskTransition")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTaskCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	taskRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	addedTask := taskRepo.Calls[0].Arguments[1].(*task.Task)
	require.Equal(t, task.StatusAvailable, addedTask.Status())
	require.Equal(t, cmd.TaskID(), addedTask.ID())
}

func TestCreateTaskCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateTaskCommand{} // not constructed properly

	factory := new(MockTaskUoWFactory)
	handler := commands.NewCreateTaskCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateTaskCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTaskCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTaskCommand(t)

	uow := new(MockUnitOfWork)
	factory := new(MockTaskUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateTaskCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCreateTaskCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTaskCommand(t)

	taskRepo := new(MockTaskRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTaskCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateTaskCommandHandler_Handle_AppendError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTaskCommand(t)

	taskRepo := new(MockTaskRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("AppendTaskTransition", ctx, mock.AnythingOfType("history.TaskTransition")).
			Return(errors.New("append error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTaskCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "append error")
}

func TestCreateTaskCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTaskCommand(t)

	taskRepo := new(MockTaskRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("AppendTaskTransition", ctx, mock.AnythingOfType("history.TaskTransition")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTaskCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
