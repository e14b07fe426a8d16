package commands_test

import (
	"errors"
	"testing"

	"letterpost/internal/core/application/usecases/commands"
	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/core/domain/services"
	"letterpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newClaimFixtures(t *testing.T) (*courier.Courier, *task.Task) {
	t.Helper()
	parentID := kernel.NewUUID()
	claimer, err := courier.NewCourier(kernel.NewUUID(), courier.LevelZone,
		mustPrefix(t, "BJDX5F"), &parentID)
	require.NoError(t, err)

	claimedTask, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(),
		mustOPCode(t, "BJDX5F01"), mustOPCode(t, "BJDX2A07"),
		task.PriorityNormal, courier.LevelBuilding, false)
	require.NoError(t, err)

	return claimer, claimedTask
}

func TestClaimTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	claimer, claimedTask := newClaimFixtures(t)
	cmd, err := commands.NewClaimTaskCommand(claimedTask.ID(), claimer.ID())
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	taskRepo := new(MockTaskRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		courierRepo.On("Get", ctx, claimer.ID()).Return(claimer, nil).Once(),
		taskRepo.On("Get", ctx, claimedTask.ID()).Return(claimedTask, nil).Once(),
		taskRepo.On("Claim", ctx, mock.AnythingOfType("*task.Task")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("AppendTaskTransition", ctx, mock.AnythingOfType("history.TaskTransition")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	courierRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	persisted := taskRepo.Calls[1].Arguments[1].(*task.Task)
	assert.Equal(t, task.StatusAccepted, persisted.Status())
	require.NotNil(t, persisted.Courier())
	assert.True(t, persisted.Courier().IsEqual(claimer.ID()))
}

func TestClaimTaskCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ClaimTaskCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewClaimTaskCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrClaimTaskCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestClaimTaskCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClaimTaskCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewClaimTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestClaimTaskCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClaimTaskCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	taskRepo := new(MockTaskRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		courierRepo.On("Get", ctx, cmd.CourierID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	taskRepo.AssertNotCalled(t, "Get", ctx, cmd.TaskID())
}

func TestClaimTaskCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	claimer, _ := newClaimFixtures(t)

	// pickup outside the claimer's zone scope
	outOfScope, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(),
		mustOPCode(t, "BJDX6A01"), mustOPCode(t, "BJDX2A07"),
		task.PriorityNormal, courier.LevelBuilding, false)
	require.NoError(t, err)

	cmd, err := commands.NewClaimTaskCommand(outOfScope.ID(), claimer.ID())
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	taskRepo := new(MockTaskRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		courierRepo.On("Get", ctx, claimer.ID()).Return(claimer, nil).Once(),
		taskRepo.On("Get", ctx, outOfScope.ID()).Return(outOfScope, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrPermissionDenied)
	taskRepo.AssertNotCalled(t, "Claim", ctx, mock.Anything)
}

func TestClaimTaskCommandHandler_Handle_AlreadyAcceptedTask(t *testing.T) {
	ctx := t.Context()
	claimer, claimedTask := newClaimFixtures(t)
	require.NoError(t, claimedTask.Accept(kernel.NewUUID()))

	cmd, err := commands.NewClaimTaskCommand(claimedTask.ID(), claimer.ID())
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	taskRepo := new(MockTaskRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		courierRepo.On("Get", ctx, claimer.ID()).Return(claimer, nil).Once(),
		taskRepo.On("Get", ctx, claimedTask.ID()).Return(claimedTask, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, task.ErrAlreadyClaimed)
	taskRepo.AssertNotCalled(t, "Claim", ctx, mock.Anything)
}

func TestClaimTaskCommandHandler_Handle_LostClaimRace(t *testing.T) {
	ctx := t.Context()
	claimer, claimedTask := newClaimFixtures(t)
	cmd, err := commands.NewClaimTaskCommand(claimedTask.ID(), claimer.ID())
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	taskRepo := new(MockTaskRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		courierRepo.On("Get", ctx, claimer.ID()).Return(claimer, nil).Once(),
		taskRepo.On("Get", ctx, claimedTask.ID()).Return(claimedTask, nil).Once(),
		taskRepo.On("Claim", ctx, mock.AnythingOfType("*task.Task")).Return(task.ErrAlreadyClaimed).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, task.ErrAlreadyClaimed)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestClaimTaskCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	claimer, claimedTask := newClaimFixtures(t)
	cmd, err := commands.NewClaimTaskCommand(claimedTask.ID(), claimer.ID())
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	taskRepo := new(MockTaskRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		courierRepo.On("Get", ctx, claimer.ID()).Return(claimer, nil).Once(),
		taskRepo.On("Get", ctx, claimedTask.ID()).Return(claimedTask, nil).Once(),
		taskRepo.On("Claim", ctx, mock.AnythingOfType("*task.Task")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("AppendTaskTransition", ctx, mock.AnythingOfType("history.TaskTransition")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
