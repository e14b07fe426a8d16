package queries_test

import (
	"context"
	"testing"
	"time"

	"letterpost/internal/adapters/out/postgres/historyrepo"
	"letterpost/internal/core/application/usecases/queries"
	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCourierHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetCourierHistoryQueryHandler
	historyRepo *historyrepo.GormHistoryRepository
}

func (suite *GetCourierHistoryQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&historyrepo.CourierEventDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCourierHistoryQueryHandler(db)
	suite.historyRepo = historyrepo.NewGormHistoryRepository(db)
}

func (suite *GetCourierHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCourierHistoryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE courier_events CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCourierHistoryQueryHandlerTestSuite) TestHandle_ReturnsEventsInOrder() {
	courierID := kernel.NewUUID()
	appointingParent := kernel.NewUUID()

	suite.appendEvent(courierID, &appointingParent, history.KindCreated, "appointed for BJDX5F")
	suite.appendEvent(courierID, nil, history.KindPromotionRequested, "school promotion filed")
	suite.appendEvent(courierID, &appointingParent, history.KindPromotionApproved, "promoted to school level")

	// another courier's trail must stay out of the listing
	suite.appendEvent(kernel.NewUUID(), nil, history.KindCreated, "")

	query, err := queries.NewGetCourierHistoryQuery(courierID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(history.KindCreated.String(), result[0].Kind)
	suite.Equal("appointed for BJDX5F", result[0].Details)
	suite.Require().NotNil(result[0].ActorID)
	suite.True(result[0].ActorID.IsEqual(appointingParent))

	suite.Equal(history.KindPromotionRequested.String(), result[1].Kind)
	suite.Nil(result[1].ActorID)

	suite.Equal(history.KindPromotionApproved.String(), result[2].Kind)

	for _, r := range result {
		suite.True(r.CourierID.IsEqual(courierID))
	}
}

func (suite *GetCourierHistoryQueryHandlerTestSuite) TestHandle_NoRecords_ReturnsEmptySlice() {
	query, err := queries.NewGetCourierHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCourierHistoryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCourierHistoryQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCourierHistoryQuery constructor")
}

func (suite *GetCourierHistoryQueryHandlerTestSuite) appendEvent(
	courierID kernel.UUID,
	actorID *kernel.UUID,
	kind history.CourierEventKind,
	details string,
) {
	event, err := history.NewCourierEvent(courierID, actorID, kind, details)
	suite.Require().NoError(err)

	err = suite.historyRepo.AppendCourierEvent(context.Background(), event)
	suite.Require().NoError(err)

	// occurred_at timestamps must differ for the ordering assertions
	time.Sleep(time.Millisecond)
}

func TestGetCourierHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCourierHistoryQueryHandlerTestSuite))
}
