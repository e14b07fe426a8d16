package ports

import (
	"context"
	"time"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for task aggregates.
// Beyond plain CRUD it carries the two conditional updates that implement
// the platform's concurrency discipline: the exactly-once claim and the
// idempotent lifecycle transition.
type TaskRepository interface {
	// Add persists a new task aggregate to storage.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists changes to an existing task aggregate unconditionally.
	Update(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a task aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetAllAvailable retrieves all tasks currently open for claiming.
	GetAllAvailable(ctx context.Context) ([]*task.Task, error)

	// GetStaleAccepted retrieves accepted tasks whose claim is older than
	// the given instant. Used by the scheduled claim-release job.
	GetStaleAccepted(ctx context.Context, before time.Time) ([]*task.Task, error)

	// Claim persists an accepted task with a single atomic conditional
	// update: the row is written only while it is still available and
	// unbound. Whichever concurrent caller matches first wins; all others
	// receive task.ErrAlreadyClaimed. The aggregate must already carry the
	// accepted state (courier bound, acceptedAt stamped).
	Claim(ctx context.Context, aggregate *task.Task) error

	// UpdateIfStatus persists the aggregate only while the stored row still
	// has the expected status. Returns false (without error) when the guard
	// did not match, letting callers treat retried transitions as no-ops
	// instead of failures.
	UpdateIfStatus(ctx context.Context, aggregate *task.Task, expected task.Status) (bool, error)
}
