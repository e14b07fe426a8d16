package ports

import (
	"context"

	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the append-only
// audit log. Appends happen inside the same transaction as the mutation
// they record; reads return ordered sequences for external audit and
// reporting.
type HistoryRepository interface {
	// AppendCourierEvent appends one hierarchy audit record.
	AppendCourierEvent(ctx context.Context, event history.CourierEvent) error

	// AppendTaskTransition appends one task lifecycle audit record.
	AppendTaskTransition(ctx context.Context, transition history.TaskTransition) error

	// ListCourierEvents returns a courier's audit records ordered by occurrence.
	ListCourierEvents(ctx context.Context, courierID kernel.UUID) ([]history.CourierEvent, error)

	// ListTaskTransitions returns a task's lifecycle records ordered by occurrence.
	ListTaskTransitions(ctx context.Context, taskID kernel.UUID) ([]history.TaskTransition, error)
}
