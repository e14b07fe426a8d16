package queries

import (
	"errors"
	"time"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/guard"
)

var ErrGetTaskHistoryQueryIsNotConstructed = errors.New(
	"GetTaskHistoryQuery must be created via NewGetTaskHistoryQuery constructor",
)

// GetTaskHistoryQuery retrieves the lifecycle audit trail of a task: every
// recorded status transition in the order it happened.
type GetTaskHistoryQuery struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTaskHistoryQuery creates a query for a task's transition records.
// Validates that the task identifier is a valid UUID.
func NewGetTaskHistoryQuery(taskID kernel.UUID) (GetTaskHistoryQuery, error) {
	query := GetTaskHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTaskID(taskID); err != nil {
		return GetTaskHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTaskHistoryQueryIsNotConstructed if validation fails.
func (q GetTaskHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTaskHistoryQueryIsNotConstructed)
}

// TaskID returns the identifier of the task whose history is requested.
func (q GetTaskHistoryQuery) TaskID() kernel.UUID {
	return q.taskID
}

func (q *GetTaskHistoryQuery) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	q.taskID = taskID
	return nil
}

// GetTaskHistoryQueryResponse represents one recorded status transition.
// CourierID is nil for transitions that no courier drove, such as the
// creation record or a stale-claim release.
type GetTaskHistoryQueryResponse struct {
	ID         kernel.UUID
	TaskID     kernel.UUID
	CourierID  *kernel.UUID
	From       string
	To         string
	OccurredAt time.Time
}
