package commands_test

import (
	"testing"

	"letterpost/internal/core/application/usecases/commands"
	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/promotion"
	"letterpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewFixtures is a minimal three-tier hierarchy: a city root, a school
// reviewer under it and a zone applicant under the reviewer, plus the
// applicant's pending request for the school tier.
type reviewFixtures struct {
	city      *courier.Courier
	reviewer  *courier.Courier
	applicant *courier.Courier
	request   *promotion.Request
}

func newReviewFixtures(t *testing.T) reviewFixtures {
	t.Helper()

	city, err := courier.NewCourier(kernel.NewUUID(), courier.LevelCity, mustPrefix(t, "BJ"), nil)
	require.NoError(t, err)

	cityID := city.ID()
	reviewer, err := courier.NewCourier(kernel.NewUUID(), courier.LevelSchool,
		mustPrefix(t, "BJDX"), &cityID)
	require.NoError(t, err)

	reviewerID := reviewer.ID()
	applicant, err := courier.NewCourier(kernel.NewUUID(), courier.LevelZone,
		mustPrefix(t, "BJDX5F"), &reviewerID)
	require.NoError(t, err)

	request, err := promotion.NewRequest(kernel.NewUUID(), applicant.ID(),
		courier.LevelSchool, mustPrefix(t, "BJDX"), "ran the zone for a full year")
	require.NoError(t, err)

	return reviewFixtures{city: city, reviewer: reviewer, applicant: applicant, request: request}
}

func TestReviewPromotionCommandHandler_Handle_ApproveSuccess(t *testing.T) {
	ctx := t.Context()
	f := newReviewFixtures(t)
	cmd, err := commands.NewReviewPromotionCommand(f.reviewer.ID(), f.request.ID(), true, "")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	promotionRepo := new(MockPromotionRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUnitOfWork)

	// repository accessors are re-read inside the approve branch
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("PromotionRepository").Return(promotionRepo)
	uow.On("HistoryRepository").Return(historyRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		promotionRepo.On("Get", ctx, f.request.ID()).Return(f.request, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.applicant.ID()).Return(f.applicant, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.city.ID()).Return(f.city, nil).Once(),
		promotionRepo.On("Update", ctx, mock.AnythingOfType("*promotion.Request")).Return(nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		historyRepo.On("AppendCourierEvent", ctx, mock.AnythingOfType("history.CourierEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewPromotionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	courierRepo.AssertExpectations(t)
	promotionRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	// the request carries the review outcome
	assert.Equal(t, promotion.StatusApproved, f.request.Status())
	require.NotNil(t, f.request.ReviewerID())
	assert.True(t, f.request.ReviewerID().IsEqual(f.reviewer.ID()))

	// the applicant was widened to school scope and re-parented under the city root
	assert.Equal(t, courier.LevelSchool, f.applicant.Level())
	assert.Equal(t, "BJDX", f.applicant.ManagedPrefix().Value())
	require.NotNil(t, f.applicant.ParentID())
	assert.True(t, f.applicant.ParentID().IsEqual(f.city.ID()))

	event := historyRepo.Calls[0].Arguments[1].(history.CourierEvent)
	assert.Equal(t, history.KindPromotionApproved, event.Kind)
}

func TestReviewPromotionCommandHandler_Handle_RejectSuccess(t *testing.T) {
	ctx := t.Context()
	f := newReviewFixtures(t)
	cmd, err := commands.NewReviewPromotionCommand(f.reviewer.ID(), f.request.ID(),
		false, "not enough completed deliveries")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	promotionRepo := new(MockPromotionRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUnitOfWork)

	uow.On("CourierRepository").Return(courierRepo)
	uow.On("PromotionRepository").Return(promotionRepo)
	uow.On("HistoryRepository").Return(historyRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		promotionRepo.On("Get", ctx, f.request.ID()).Return(f.request, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.applicant.ID()).Return(f.applicant, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.city.ID()).Return(f.city, nil).Once(),
		promotionRepo.On("Update", ctx, mock.AnythingOfType("*promotion.Request")).Return(nil).Once(),
		historyRepo.On("AppendCourierEvent", ctx, mock.AnythingOfType("history.CourierEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewPromotionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	courierRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)

	assert.Equal(t, promotion.StatusRejected, f.request.Status())
	assert.Equal(t, "not enough completed deliveries", f.request.Reason())

	// the applicant keeps their current scope
	assert.Equal(t, courier.LevelZone, f.applicant.Level())
	assert.Equal(t, "BJDX5F", f.applicant.ManagedPrefix().Value())

	event := historyRepo.Calls[0].Arguments[1].(history.CourierEvent)
	assert.Equal(t, history.KindPromotionRejected, event.Kind)
}

func TestReviewPromotionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReviewPromotionCommand{} // not constructed properly

	factory := new(MockPromotionUoWFactory)
	handler := commands.NewReviewPromotionCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReviewPromotionCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestReviewPromotionCommandHandler_Handle_RequestNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReviewPromotionCommand(kernel.NewUUID(), kernel.NewUUID(), true, "")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	promotionRepo := new(MockPromotionRepository)
	uow := new(MockUnitOfWork)

	uow.On("CourierRepository").Return(courierRepo)
	uow.On("PromotionRepository").Return(promotionRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		promotionRepo.On("Get", ctx, cmd.RequestID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewPromotionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestReviewPromotionCommandHandler_Handle_ReviewerOutsideAncestorChain(t *testing.T) {
	ctx := t.Context()
	f := newReviewFixtures(t)

	// a school courier from another campus, not in the applicant's chain
	cityID := f.city.ID()
	otherSchool, err := courier.NewCourier(kernel.NewUUID(), courier.LevelSchool,
		mustPrefix(t, "BJSH"), &cityID)
	require.NoError(t, err)

	cmd, err := commands.NewReviewPromotionCommand(otherSchool.ID(), f.request.ID(), true, "")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	promotionRepo := new(MockPromotionRepository)
	uow := new(MockUnitOfWork)

	uow.On("CourierRepository").Return(courierRepo)
	uow.On("PromotionRepository").Return(promotionRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		promotionRepo.On("Get", ctx, f.request.ID()).Return(f.request, nil).Once(),
		courierRepo.On("Get", ctx, otherSchool.ID()).Return(otherSchool, nil).Once(),
		courierRepo.On("Get", ctx, f.applicant.ID()).Return(f.applicant, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.city.ID()).Return(f.city, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewPromotionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReviewerIsNotAuthorized)
	assert.Equal(t, promotion.StatusPending, f.request.Status())
}

func TestReviewPromotionCommandHandler_Handle_ReviewerDoesNotOutrank(t *testing.T) {
	ctx := t.Context()
	f := newReviewFixtures(t)

	// a peer zone courier cannot review a zone applicant
	reviewerID := f.reviewer.ID()
	peer, err := courier.NewCourier(kernel.NewUUID(), courier.LevelZone,
		mustPrefix(t, "BJDX2A"), &reviewerID)
	require.NoError(t, err)

	cmd, err := commands.NewReviewPromotionCommand(peer.ID(), f.request.ID(), true, "")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	promotionRepo := new(MockPromotionRepository)
	uow := new(MockUnitOfWork)

	uow.On("CourierRepository").Return(courierRepo)
	uow.On("PromotionRepository").Return(promotionRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		promotionRepo.On("Get", ctx, f.request.ID()).Return(f.request, nil).Once(),
		courierRepo.On("Get", ctx, peer.ID()).Return(peer, nil).Once(),
		courierRepo.On("Get", ctx, f.applicant.ID()).Return(f.applicant, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.city.ID()).Return(f.city, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewPromotionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReviewerIsNotAuthorized)
}

func TestReviewPromotionCommandHandler_Handle_ApproveOutsideReviewerScope(t *testing.T) {
	ctx := t.Context()
	f := newReviewFixtures(t)

	// the applicant asks for a scope the reviewer does not manage
	request, err := promotion.NewRequest(kernel.NewUUID(), f.applicant.ID(),
		courier.LevelSchool, mustPrefix(t, "BJSH"), "ran the zone for a full year")
	require.NoError(t, err)

	cmd, err := commands.NewReviewPromotionCommand(f.reviewer.ID(), request.ID(), true, "")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	promotionRepo := new(MockPromotionRepository)
	uow := new(MockUnitOfWork)

	uow.On("CourierRepository").Return(courierRepo)
	uow.On("PromotionRepository").Return(promotionRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		promotionRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.applicant.ID()).Return(f.applicant, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.city.ID()).Return(f.city, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewPromotionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReviewerIsNotAuthorized)
	assert.Equal(t, promotion.StatusPending, request.Status())
}

func TestReviewPromotionCommandHandler_Handle_AlreadyDecidedRequest(t *testing.T) {
	ctx := t.Context()
	f := newReviewFixtures(t)
	require.NoError(t, f.request.Approve(f.reviewer.ID()))

	cmd, err := commands.NewReviewPromotionCommand(f.reviewer.ID(), f.request.ID(), true, "")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	promotionRepo := new(MockPromotionRepository)
	uow := new(MockUnitOfWork)

	uow.On("CourierRepository").Return(courierRepo)
	uow.On("PromotionRepository").Return(promotionRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		promotionRepo.On("Get", ctx, f.request.ID()).Return(f.request, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.applicant.ID()).Return(f.applicant, nil).Once(),
		courierRepo.On("Get", ctx, f.reviewer.ID()).Return(f.reviewer, nil).Once(),
		courierRepo.On("Get", ctx, f.city.ID()).Return(f.city, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewPromotionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	promotionRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
