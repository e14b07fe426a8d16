package http

import (
	"errors"
	"net/http"

	"letterpost/internal/core/application/usecases/commands"
	"letterpost/internal/core/application/usecases/queries"
	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/core/domain/services"
	"letterpost/internal/generated/servers"
	"letterpost/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createTaskHandler        commands.CreateTaskCommandHandler
	claimTaskHandler         commands.ClaimTaskCommandHandler
	advanceTaskHandler       commands.AdvanceTaskCommandHandler
	createSubordinateHandler commands.CreateSubordinateCommandHandler
	requestPromotionHandler  commands.RequestPromotionCommandHandler
	reviewPromotionHandler   commands.ReviewPromotionCommandHandler

	// Query handlers
	getClaimableTasksHandler queries.GetClaimableTasksQueryHandler
	getManagedTasksHandler   queries.GetManagedTasksQueryHandler
	getSubordinatesHandler   queries.GetSubordinatesQueryHandler
	getTaskHistoryHandler    queries.GetTaskHistoryQueryHandler
	getCourierHistoryHandler queries.GetCourierHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createTaskHandler commands.CreateTaskCommandHandler,
	claimTaskHandler commands.ClaimTaskCommandHandler,
	advanceTaskHandler commands.AdvanceTaskCommandHandler,
	createSubordinateHandler commands.CreateSubordinateCommandHandler,
	requestPromotionHandler commands.RequestPromotionCommandHandler,
	reviewPromotionHandler commands.ReviewPromotionCommandHandler,
	getClaimableTasksHandler queries.GetClaimableTasksQueryHandler,
	getManagedTasksHandler queries.GetManagedTasksQueryHandler,
	getSubordinatesHandler queries.GetSubordinatesQueryHandler,
	getTaskHistoryHandler queries.GetTaskHistoryQueryHandler,
	getCourierHistoryHandler queries.GetCourierHistoryQueryHandler,
) *Server {
	return &Server{
		createTaskHandler:        createTaskHandler,
		claimTaskHandler:         claimTaskHandler,
		advanceTaskHandler:       advanceTaskHandler,
		createSubordinateHandler: createSubordinateHandler,
		requestPromotionHandler:  requestPromotionHandler,
		reviewPromotionHandler:   reviewPromotionHandler,
		getClaimableTasksHandler: getClaimableTasksHandler,
		getManagedTasksHandler:   getManagedTasksHandler,
		getSubordinatesHandler:   getSubordinatesHandler,
		getTaskHistoryHandler:    getTaskHistoryHandler,
		getCourierHistoryHandler: getCourierHistoryHandler,
	}
}

// domainError maps use case failures to HTTP responses. Permission failures
// become 403, lost races and illegal transitions become 409, missing
// aggregates become 404 and everything else is treated as a server fault.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, services.ErrPermissionDenied),
		errors.Is(err, commands.ErrReviewerIsNotAuthorized),
		errors.Is(err, queries.ErrOversightNotAllowed),
		errors.Is(err, courier.ErrCourierIsNotActive):
		status = http.StatusForbidden
	case errors.Is(err, task.ErrAlreadyClaimed),
		errors.Is(err, task.ErrIllegalTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, courier.ErrInvalidLevel),
		errors.Is(err, courier.ErrPrefixOutOfScope):
		status = http.StatusForbidden
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message + ": " + err.Error(),
	})
}

func courierID(raw openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

// CreateTask handles POST /api/v1/tasks - registers a new delivery task.
func (s *Server) CreateTask(ctx echo.Context) error {
	var newTask servers.NewTask
	if err := ctx.Bind(&newTask); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	letterID, err := kernel.UUIDFromBytes(newTask.LetterId[:])
	if err != nil {
		return badRequest(ctx, "Invalid letter identifier", err)
	}

	pickup, err := kernel.NewOPCode(newTask.PickupOpCode)
	if err != nil {
		return badRequest(ctx, "Invalid pickup OP code", err)
	}

	delivery, err := kernel.NewOPCode(newTask.DeliveryOpCode)
	if err != nil {
		return badRequest(ctx, "Invalid delivery OP code", err)
	}

	priority := task.PriorityNormal
	if newTask.Priority != nil {
		switch *newTask.Priority {
		case servers.Normal:
			priority = task.PriorityNormal
		case servers.Urgent:
			priority = task.PriorityUrgent
		case servers.Express:
			priority = task.PriorityExpress
		default:
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Unknown priority: " + string(*newTask.Priority),
			})
		}
	}

	requiredLevel := courier.LevelBuilding
	if newTask.RequiredLevel != nil {
		requiredLevel = courier.Level(*newTask.RequiredLevel)
	}

	public := false
	if newTask.Public != nil {
		public = *newTask.Public
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewCreateTaskCommand(
		taskID, letterID, pickup, delivery, priority, requiredLevel, public)
	if err != nil {
		return badRequest(ctx, "Invalid task data", err)
	}

	if handleErr := s.createTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: taskID.Bytes()})
}

// GetClaimableTasks handles GET /api/v1/tasks/claimable - lists tasks the
// calling courier is eligible to claim.
func (s *Server) GetClaimableTasks(ctx echo.Context, params servers.GetClaimableTasksParams) error {
	callerID, err := courierID(params.XCourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier identifier", err)
	}

	query, err := queries.NewGetClaimableTasksQuery(callerID)
	if err != nil {
		return badRequest(ctx, "Invalid query", err)
	}

	tasks, err := s.getClaimableTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.ClaimableTask, len(tasks))
	for i, claimable := range tasks {
		response[i] = servers.ClaimableTask{
			Id:             claimable.ID.Bytes(),
			LetterId:       claimable.LetterID.Bytes(),
			PickupOpCode:   claimable.PickupOPCode,
			DeliveryOpCode: claimable.DeliveryOPCode,
			Priority:       claimable.Priority,
			RequiredLevel:  claimable.RequiredLevel,
			CreatedAt:      claimable.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetManagedTasks handles GET /api/v1/tasks/managed - lists every task in the
// calling courier's scope regardless of lifecycle state.
func (s *Server) GetManagedTasks(ctx echo.Context, params servers.GetManagedTasksParams) error {
	callerID, err := courierID(params.XCourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier identifier", err)
	}

	query, err := queries.NewGetManagedTasksQuery(callerID)
	if err != nil {
		return badRequest(ctx, "Invalid query", err)
	}

	tasks, err := s.getManagedTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.ManagedTask, len(tasks))
	for i, managed := range tasks {
		response[i] = servers.ManagedTask{
			Id:             managed.ID.Bytes(),
			LetterId:       managed.LetterID.Bytes(),
			PickupOpCode:   managed.PickupOPCode,
			DeliveryOpCode: managed.DeliveryOPCode,
			CurrentOpCode:  managed.CurrentOPCode,
			Status:         managed.Status,
			Priority:       managed.Priority,
			CreatedAt:      managed.CreatedAt,
		}
		if managed.CourierID != nil {
			claimedBy := managed.CourierID.Bytes()
			response[i].CourierId = &claimedBy
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimTask handles POST /api/v1/tasks/{taskId}/claim - claims a task for
// exclusive delivery by the calling courier.
func (s *Server) ClaimTask(ctx echo.Context, taskId openapi_types.UUID, params servers.ClaimTaskParams) error {
	targetID, err := kernel.UUIDFromBytes(taskId[:])
	if err != nil {
		return badRequest(ctx, "Invalid task identifier", err)
	}

	callerID, err := courierID(params.XCourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier identifier", err)
	}

	cmd, err := commands.NewClaimTaskCommand(targetID, callerID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data", err)
	}

	if handleErr := s.claimTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdvanceTask handles POST /api/v1/tasks/{taskId}/advance - moves a claimed
// task along its lifecycle.
func (s *Server) AdvanceTask(ctx echo.Context, taskId openapi_types.UUID, params servers.AdvanceTaskParams) error {
	var advance servers.AdvanceTask
	if err := ctx.Bind(&advance); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	targetID, err := kernel.UUIDFromBytes(taskId[:])
	if err != nil {
		return badRequest(ctx, "Invalid task identifier", err)
	}

	callerID, err := courierID(params.XCourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier identifier", err)
	}

	var target task.Status
	switch advance.Target {
	case servers.Collected:
		target = task.StatusCollected
	case servers.InTransit:
		target = task.StatusInTransit
	case servers.Delivered:
		target = task.StatusDelivered
	case servers.Failed:
		target = task.StatusFailed
	case servers.Canceled:
		target = task.StatusCanceled
	default:
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown target status: " + string(advance.Target),
		})
	}

	var scan *kernel.OPCode
	if advance.ScanOpCode != nil {
		scanned, scanErr := kernel.NewOPCode(*advance.ScanOpCode)
		if scanErr != nil {
			return badRequest(ctx, "Invalid scan OP code", scanErr)
		}
		scan = &scanned
	}

	cmd, err := commands.NewAdvanceTaskCommand(targetID, callerID, target, scan)
	if err != nil {
		return badRequest(ctx, "Invalid transition data", err)
	}

	if handleErr := s.advanceTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetTaskHistory handles GET /api/v1/tasks/{taskId}/history - lists a task's
// recorded lifecycle transitions.
func (s *Server) GetTaskHistory(ctx echo.Context, taskId openapi_types.UUID) error {
	targetID, err := kernel.UUIDFromBytes(taskId[:])
	if err != nil {
		return badRequest(ctx, "Invalid task identifier", err)
	}

	query, err := queries.NewGetTaskHistoryQuery(targetID)
	if err != nil {
		return badRequest(ctx, "Invalid query", err)
	}

	transitions, err := s.getTaskHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.TaskTransition, len(transitions))
	for i, transition := range transitions {
		response[i] = servers.TaskTransition{
			Id:         transition.ID.Bytes(),
			TaskId:     transition.TaskID.Bytes(),
			From:       transition.From,
			To:         transition.To,
			OccurredAt: transition.OccurredAt,
		}
		if transition.CourierID != nil {
			actor := transition.CourierID.Bytes()
			response[i].CourierId = &actor
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSubordinate handles POST /api/v1/couriers/{courierId}/subordinates -
// appoints a courier one level below the caller.
func (s *Server) CreateSubordinate(ctx echo.Context, courierId openapi_types.UUID) error {
	var newSubordinate servers.NewSubordinate
	if err := ctx.Bind(&newSubordinate); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	parentID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier identifier", err)
	}

	managedPrefix, err := kernel.NewPrefix(newSubordinate.ManagedPrefix)
	if err != nil {
		return badRequest(ctx, "Invalid managed prefix", err)
	}

	subordinateID := kernel.NewUUID()
	cmd, err := commands.NewCreateSubordinateCommand(
		parentID, subordinateID, courier.Level(newSubordinate.Level), managedPrefix)
	if err != nil {
		return badRequest(ctx, "Invalid subordinate data", err)
	}

	if handleErr := s.createSubordinateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: subordinateID.Bytes()})
}

// GetSubordinates handles GET /api/v1/couriers/{courierId}/subordinates -
// lists a courier's direct children in the hierarchy.
func (s *Server) GetSubordinates(ctx echo.Context, courierId openapi_types.UUID) error {
	parentID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier identifier", err)
	}

	query, err := queries.NewGetSubordinatesQuery(parentID)
	if err != nil {
		return badRequest(ctx, "Invalid query", err)
	}

	subordinates, err := s.getSubordinatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.Subordinate, len(subordinates))
	for i, subordinate := range subordinates {
		response[i] = servers.Subordinate{
			Id:            subordinate.ID.Bytes(),
			Level:         subordinate.Level,
			ManagedPrefix: subordinate.ManagedPrefix,
			Status:        subordinate.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourierHistory handles GET /api/v1/couriers/{courierId}/history - lists
// a courier's hierarchy audit records.
func (s *Server) GetCourierHistory(ctx echo.Context, courierId openapi_types.UUID) error {
	targetID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier identifier", err)
	}

	query, err := queries.NewGetCourierHistoryQuery(targetID)
	if err != nil {
		return badRequest(ctx, "Invalid query", err)
	}

	events, err := s.getCourierHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.CourierEvent, len(events))
	for i, event := range events {
		response[i] = servers.CourierEvent{
			Id:         event.ID.Bytes(),
			CourierId:  event.CourierID.Bytes(),
			Kind:       event.Kind,
			Details:    event.Details,
			OccurredAt: event.OccurredAt,
		}
		if event.ActorID != nil {
			actor := event.ActorID.Bytes()
			response[i].ActorId = &actor
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RequestPromotion handles POST /api/v1/promotions - files a promotion
// request for the calling courier.
func (s *Server) RequestPromotion(ctx echo.Context, params servers.RequestPromotionParams) error {
	var newRequest servers.NewPromotionRequest
	if err := ctx.Bind(&newRequest); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	callerID, err := courierID(params.XCourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier identifier", err)
	}

	targetPrefix, err := kernel.NewPrefix(newRequest.TargetPrefix)
	if err != nil {
		return badRequest(ctx, "Invalid target prefix", err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewRequestPromotionCommand(
		requestID, callerID, courier.Level(newRequest.TargetLevel), targetPrefix, newRequest.Evidence)
	if err != nil {
		return badRequest(ctx, "Invalid promotion data", err)
	}

	if handleErr := s.requestPromotionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: requestID.Bytes()})
}

// ReviewPromotion handles POST /api/v1/promotions/{requestId}/review -
// approves or rejects a pending promotion request.
func (s *Server) ReviewPromotion(ctx echo.Context, requestId openapi_types.UUID, params servers.ReviewPromotionParams) error {
	var review servers.PromotionReview
	if err := ctx.Bind(&review); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	targetID, err := kernel.UUIDFromBytes(requestId[:])
	if err != nil {
		return badRequest(ctx, "Invalid request identifier", err)
	}

	reviewerID, err := courierID(params.XCourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier identifier", err)
	}

	reason := ""
	if review.Reason != nil {
		reason = *review.Reason
	}

	cmd, err := commands.NewReviewPromotionCommand(reviewerID, targetID, review.Approve, reason)
	if err != nil {
		return badRequest(ctx, "Invalid review data", err)
	}

	if handleErr := s.reviewPromotionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}
