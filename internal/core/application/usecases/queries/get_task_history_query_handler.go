package queries

import (
	"context"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTaskHistoryQueryHandler reads a task's transition records straight from
// the audit table, ordered by occurrence.
type GetTaskHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTaskHistoryQueryHandler creates a handler for task history queries.
// Requires a GORM database connection for query execution.
func NewGetTaskHistoryQueryHandler(db *gorm.DB) GetTaskHistoryQueryHandler {
	return GetTaskHistoryQueryHandler{db: db}
}

// Handle executes the query for a task's lifecycle transitions.
// A task with no recorded transitions gets an empty list.
func (h GetTaskHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTaskHistoryQuery,
) ([]GetTaskHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			task_id,
			courier_id,
			from_status,
			to_status,
			occurred_at
		FROM task_transitions
		WHERE task_id = ?
		ORDER BY occurred_at
	`, query.TaskID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transitions := make([]GetTaskHistoryQueryResponse, 0)
	for rows.Next() {
		var transitionResp GetTaskHistoryQueryResponse
		var id, taskID uuid.UUID
		var courierID *uuid.UUID
		var fromStatus, toStatus int

		err = rows.Scan(
			&id,
			&taskID,
			&courierID,
			&fromStatus,
			&toStatus,
			&transitionResp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		transitionResp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		transitionResp.TaskID, err = kernel.UUIDFromBytes(taskID[:])
		if err != nil {
			return nil, err
		}
		if courierID != nil {
			actorID, actorErr := kernel.UUIDFromBytes(courierID[:])
			if actorErr != nil {
				return nil, actorErr
			}
			transitionResp.CourierID = &actorID
		}
		transitionResp.From = task.Status(fromStatus).String()
		transitionResp.To = task.Status(toStatus).String()

		transitions = append(transitions, transitionResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transitions, nil
}
