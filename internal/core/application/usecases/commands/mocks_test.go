package commands_test

import (
	"context"
	"testing"
	"time"

	"letterpost/internal/core/application/usecases/commands"
	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/promotion"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustOPCode(t *testing.T, value string) kernel.OPCode {
	t.Helper()
	code, err := kernel.NewOPCode(value)
	require.NoError(t, err)
	return code
}

func mustPrefix(t *testing.T, value string) kernel.Prefix {
	t.Helper()
	prefix, err := kernel.NewPrefix(value)
	require.NoError(t, err)
	return prefix
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetByParent(ctx context.Context, parentID kernel.UUID) ([]*courier.Courier, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetAllAvailable(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetStaleAccepted(ctx context.Context, before time.Time) ([]*task.Task, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) Claim(ctx context.Context, aggregate *task.Task) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateIfStatus(ctx context.Context, aggregate *task.Task, expected task.Status) (bool, error) {
	args := m.Called(ctx, aggregate, expected)
	return args.Bool(0), args.Error(1)
}

type MockPromotionRepository struct{ mock.Mock }

func (m *MockPromotionRepository) Add(ctx context.Context, request *promotion.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockPromotionRepository) Update(ctx context.Context, request *promotion.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockPromotionRepository) Get(ctx context.Context, id kernel.UUID) (*promotion.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Request), args.Error(1)
}

func (m *MockPromotionRepository) GetAllPending(ctx context.Context) ([]*promotion.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*promotion.Request), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) AppendCourierEvent(ctx context.Context, event history.CourierEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockHistoryRepository) AppendTaskTransition(ctx context.Context, transition history.TaskTransition) error {
	args := m.Called(ctx, transition)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListCourierEvents(ctx context.Context, courierID kernel.UUID) ([]history.CourierEvent, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]history.CourierEvent), args.Error(1)
}

func (m *MockHistoryRepository) ListTaskTransitions(ctx context.Context, taskID kernel.UUID) ([]history.TaskTransition, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]history.TaskTransition), args.Error(1)
}

// MockUnitOfWork implements every unit-of-work shape the command handlers
// use, so one mock serves TaskUoW, CourierUoW, PromotionUoW and UoW tests.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUnitOfWork) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockUnitOfWork) PromotionRepository() ports.PromotionRepository {
	args := m.Called()
	return args.Get(0).(ports.PromotionRepository)
}

func (m *MockUnitOfWork) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockTaskUoWFactory struct{ mock.Mock }

func (m *MockTaskUoWFactory) Create() commands.TaskUoW {
	args := m.Called()
	return args.Get(0).(commands.TaskUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockPromotionUoWFactory struct{ mock.Mock }

func (m *MockPromotionUoWFactory) Create() commands.PromotionUoW {
	args := m.Called()
	return args.Get(0).(commands.PromotionUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
