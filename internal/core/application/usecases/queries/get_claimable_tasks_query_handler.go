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

// GetClaimableTasksQueryHandler retrieves a courier's claimable work from
// the database. The filtering mirrors the TaskMatcher rules in SQL so the
// listing stays cheap: available status, pickup OP code under the courier's
// managed prefix, required level within reach.
//
// Listing is optimistic: a task another courier is about to claim still
// appears; exclusivity is enforced by the claim operation itself.
type GetClaimableTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableTasksQueryHandler creates a handler for claimable task queries.
// Requires a GORM database connection for query execution.
func NewGetClaimableTasksQueryHandler(db *gorm.DB) GetClaimableTasksQueryHandler {
	return GetClaimableTasksQueryHandler{db: db}
}

// Handle executes the query for the courier's claimable tasks.
// A suspended or pending courier gets an empty list, not an error; the
// listing is advisory and claims are re-checked anyway. Results are ordered
// by priority descending, then creation time, then ID.
func (h GetClaimableTasksQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableTasksQuery,
) ([]GetClaimableTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var level int
	var managedPrefix string
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT level, managed_prefix, status
		FROM couriers
		WHERE id = ?
	`, query.CourierID().Bytes()).Row()
	if err := row.Scan(&level, &managedPrefix, &status); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("courierID", query.CourierID(), err)
	}

	tasks := make([]GetClaimableTasksQueryResponse, 0)
	if courier.Status(status) != courier.StatusActive {
		return tasks, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			letter_id,
			pickup_op_code,
			delivery_op_code,
			priority,
			required_level,
			created_at
		FROM tasks
		WHERE status = ?
		  AND pickup_op_code LIKE ?
		  AND required_level <= ?
		ORDER BY priority DESC, created_at ASC, id ASC
	`, int(task.StatusAvailable), managedPrefix+"%", level).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var taskResp GetClaimableTasksQueryResponse
		var id, letterID uuid.UUID

		err = rows.Scan(
			&id,
			&letterID,
			&taskResp.PickupOPCode,
			&taskResp.DeliveryOPCode,
			&taskResp.Priority,
			&taskResp.RequiredLevel,
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

		tasks = append(tasks, taskResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
