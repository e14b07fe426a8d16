package taskrepo_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"letterpost/internal/adapters/out/postgres/taskrepo"
	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TaskRepositoryIntegrationTestSuite provides integration tests for TaskRepository
// using PostgreSQL containers to verify database persistence behavior.
type TaskRepositoryIntegrationTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	taskRepository *taskrepo.GormTaskRepository
	tracker        *MockAggregateTracker
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&taskrepo.TaskDTO{}))
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tasks").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.taskRepository = taskrepo.NewGormTaskRepository(suite.db, suite.tracker)
}

func (suite *TaskRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TaskRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestTask("BJDX5F01", task.PriorityUrgent)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()

	err := suite.taskRepository.Add(ctx, original)
	suite.Require().NoError(err)

	retrieved, err := suite.taskRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.LetterID(), retrieved.LetterID())
	suite.Equal("BJDX5F01", retrieved.PickupOPCode().Value())
	suite.Equal(original.DeliveryOPCode().Value(), retrieved.DeliveryOPCode().Value())
	suite.Equal(original.CurrentOPCode().Value(), retrieved.CurrentOPCode().Value())
	suite.Equal(task.StatusAvailable, retrieved.Status())
	suite.Equal(task.PriorityUrgent, retrieved.Priority())
	suite.Equal(original.RequiredLevel(), retrieved.RequiredLevel())
	suite.Equal(original.IsPublic(), retrieved.IsPublic())
	suite.Nil(retrieved.Courier())
	suite.Nil(retrieved.AcceptedAt())
	suite.Nil(retrieved.CompletedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGet_NonExistentTask_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.taskRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersClaimedTasks() {
	ctx := context.Background()

	available := suite.addTask("BJDX5F01", task.PriorityNormal)
	claimed := suite.addTask("BJDX5F02", task.PriorityNormal)

	suite.tracker.On("TrackAggregate", claimed.ID(), claimed).Once()
	err := claimed.Accept(kernel.NewUUID())
	suite.Require().NoError(err)
	err = suite.taskRepository.Update(ctx, claimed)
	suite.Require().NoError(err)

	result, err := suite.taskRepository.GetAllAvailable(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(available.ID(), result[0].ID())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGetStaleAccepted_HonorsCutoff() {
	ctx := context.Background()

	stale := suite.addTask("BJDX5F01", task.PriorityNormal)
	fresh := suite.addTask("BJDX5F02", task.PriorityNormal)
	suite.addTask("BJDX5F03", task.PriorityNormal) // never claimed

	for _, t := range []*task.Task{stale, fresh} {
		suite.tracker.On("TrackAggregate", t.ID(), t).Once()
		err := t.Accept(kernel.NewUUID())
		suite.Require().NoError(err)
		err = suite.taskRepository.Update(ctx, t)
		suite.Require().NoError(err)
	}

	// push the stale claim's accepted_at an hour into the past
	err := suite.db.Exec("UPDATE tasks SET accepted_at = accepted_at - interval '1 hour' WHERE id = ?",
		stale.ID().Bytes()).Error
	suite.Require().NoError(err)

	result, err := suite.taskRepository.GetStaleAccepted(ctx, time.Now().UTC().Add(-30*time.Minute))
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(stale.ID(), result[0].ID())
	suite.Equal(task.StatusAccepted, result[0].Status())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestClaim_AvailableTask_BindsCourier() {
	ctx := context.Background()

	t := suite.addTask("BJDX5F01", task.PriorityNormal)
	courierID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", t.ID(), t).Once()
	err := t.Accept(courierID)
	suite.Require().NoError(err)
	err = suite.taskRepository.Claim(ctx, t)
	suite.Require().NoError(err)

	retrieved, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(task.StatusAccepted, retrieved.Status())
	suite.Require().NotNil(retrieved.Courier())
	suite.True(retrieved.Courier().IsEqual(courierID))
	suite.NotNil(retrieved.AcceptedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestClaim_AlreadyClaimedTask_ReturnsAlreadyClaimed() {
	ctx := context.Background()

	t := suite.addTask("BJDX5F01", task.PriorityNormal)
	winner := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", t.ID(), mock.Anything).Once()
	firstCopy, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	err = firstCopy.Accept(winner)
	suite.Require().NoError(err)
	err = suite.taskRepository.Claim(ctx, firstCopy)
	suite.Require().NoError(err)

	// a second courier read the task before the first claim landed
	secondCopy, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(task.StatusAccepted, secondCopy.Status())

	staleCopy, err := toAvailableCopy(t)
	suite.Require().NoError(err)
	err = staleCopy.Accept(kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.taskRepository.Claim(ctx, staleCopy)
	suite.Require().ErrorIs(err, task.ErrAlreadyClaimed)

	// the winner's binding is untouched
	retrieved, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Courier().IsEqual(winner))
}

func (suite *TaskRepositoryIntegrationTestSuite) TestClaim_ConcurrentClaimers_ExactlyOneWins() {
	ctx := context.Background()

	t := suite.addTask("BJDX5F01", task.PriorityNormal)
	suite.tracker.On("TrackAggregate", t.ID(), mock.Anything).Maybe()

	const claimers = 10

	var wins, losses atomic.Int32
	var wg sync.WaitGroup

	for range claimers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			claimCopy, err := toAvailableCopy(t)
			if err != nil {
				return
			}
			if err = claimCopy.Accept(kernel.NewUUID()); err != nil {
				return
			}

			if err = suite.taskRepository.Claim(ctx, claimCopy); err == nil {
				wins.Add(1)
			} else {
				losses.Add(1)
			}
		}()
	}
	wg.Wait()

	suite.Equal(int32(1), wins.Load(), "exactly one claimer must win")
	suite.Equal(int32(claimers-1), losses.Load())

	retrieved, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(task.StatusAccepted, retrieved.Status())
	suite.NotNil(retrieved.Courier())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdateIfStatus_GuardMatches_Persists() {
	ctx := context.Background()

	t := suite.addTask("BJDX5F01", task.PriorityNormal)
	suite.tracker.On("TrackAggregate", t.ID(), t).Twice()

	err := t.Accept(kernel.NewUUID())
	suite.Require().NoError(err)
	err = suite.taskRepository.Claim(ctx, t)
	suite.Require().NoError(err)

	err = t.MarkCollected()
	suite.Require().NoError(err)

	applied, err := suite.taskRepository.UpdateIfStatus(ctx, t, task.StatusAccepted)
	suite.Require().NoError(err)
	suite.True(applied)

	retrieved, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(task.StatusCollected, retrieved.Status())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdateIfStatus_GuardMismatch_LeavesRowUntouched() {
	ctx := context.Background()

	t := suite.addTask("BJDX5F01", task.PriorityNormal)

	staleCopy, err := toAvailableCopy(t)
	suite.Require().NoError(err)
	err = staleCopy.Cancel()
	suite.Require().NoError(err)

	// the stored row is still available, not accepted
	applied, err := suite.taskRepository.UpdateIfStatus(ctx, staleCopy, task.StatusAccepted)
	suite.Require().NoError(err)
	suite.False(applied)

	retrieved, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(task.StatusAvailable, retrieved.Status())
}

// addTask creates and persists an available test task.
func (suite *TaskRepositoryIntegrationTestSuite) addTask(pickup string, priority task.Priority) *task.Task {
	t := suite.createTestTask(pickup, priority)

	suite.tracker.On("TrackAggregate", t.ID(), t).Once()
	err := suite.taskRepository.Add(context.Background(), t)
	suite.Require().NoError(err)

	return t
}

// createTestTask creates an available test task without persisting it.
func (suite *TaskRepositoryIntegrationTestSuite) createTestTask(pickup string, priority task.Priority) *task.Task {
	pickupCode, err := kernel.NewOPCode(pickup)
	suite.Require().NoError(err)
	deliveryCode, err := kernel.NewOPCode("SHFD1A01")
	suite.Require().NoError(err)

	t, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), pickupCode, deliveryCode,
		priority, courier.LevelBuilding, false)
	suite.Require().NoError(err)

	return t
}

// toAvailableCopy rebuilds an independent available aggregate for the same
// stored row, simulating a second courier that read the task before another
// claim landed.
func toAvailableCopy(t *task.Task) (*task.Task, error) {
	return task.RestoreTask(t.ID(), t.LetterID(), t.PickupOPCode(), t.DeliveryOPCode(),
		t.CurrentOPCode(), task.StatusAvailable, nil,
		t.RequiredLevel(), t.Priority(), t.IsPublic(),
		t.CreatedAt(), nil, nil)
}

func TestTaskRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryIntegrationTestSuite))
}
