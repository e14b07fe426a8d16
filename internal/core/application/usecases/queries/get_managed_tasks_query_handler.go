package queries

import (
	"context"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetManagedTasksQueryHandler retrieves the subtree oversight view: every
// task whose pickup OP code falls under the courier's managed prefix, in any
// lifecycle state, newest first.
type GetManagedTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetManagedTasksQueryHandler creates a handler for subtree task queries.
// Requires a GORM database connection for query execution.
func NewGetManagedTasksQueryHandler(db *gorm.DB) GetManagedTasksQueryHandler {
	return GetManagedTasksQueryHandler{db: db}
}

// Handle executes the oversight query.
// Returns ErrOversightNotAllowed for building-level couriers; their scope is
// a single point and the claimable list already covers it.
func (h GetManagedTasksQueryHandler) Handle(
	ctx context.Context,
	query GetManagedTasksQuery,
) ([]GetManagedTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var level int
	var managedPrefix string

	row := h.db.WithContext(ctx).Raw(`
		SELECT level, managed_prefix
		FROM couriers
		WHERE id = ?
	`, query.CourierID().Bytes()).Row()
	if err := row.Scan(&level, &managedPrefix); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("courierID", query.CourierID(), err)
	}

	if !courier.Level(level).CanBatch() {
		return nil, ErrOversightNotAllowed
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			letter_id,
			pickup_op_code,
			delivery_op_code,
			current_op_code,
			status,
			courier_id,
			priority,
			created_at
		FROM tasks
		WHERE pickup_op_code LIKE ?
		ORDER BY created_at DESC, id ASC
	`, managedPrefix+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]GetManagedTasksQueryResponse, 0)
	for rows.Next() {
		var taskResp GetManagedTasksQueryResponse
		var id, letterID uuid.UUID
		var courierID *uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&letterID,
			&taskResp.PickupOPCode,
			&taskResp.DeliveryOPCode,
			&taskResp.CurrentOPCode,
			&status,
			&courierID,
			&taskResp.Priority,
			&taskResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		taskResp.ID = taskID

		letterUUID, idErr := kernel.UUIDFromBytes(letterID[:])
		if idErr != nil {
			return nil, idErr
		}
		taskResp.LetterID = letterUUID

		if courierID != nil {
			boundID, idErr := kernel.UUIDFromBytes(courierID[:])
			if idErr != nil {
				return nil, idErr
			}
			taskResp.CourierID = &boundID
		}

		taskResp.Status = task.Status(status).String()
		tasks = append(tasks, taskResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
