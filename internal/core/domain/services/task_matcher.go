package services

import (
	"errors"
	"sort"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/task"
)

// ErrPermissionDenied is returned when a courier's scope or level does not
// allow claiming a task. It is a recoverable caller-facing outcome, never a
// process-fatal condition: callers typically move on to the next task.
var ErrPermissionDenied = errors.New("permission denied")

// TaskMatcher is a domain service that decides which tasks a courier may
// claim and in what order they should be offered.
//
// Business rules:
//   - Claiming requires scoped visibility of the pickup OP code; public
//     read-only visibility never grants a claim
//   - The courier's level must meet the task's required level (used to
//     escalate inter-zone and inter-school tasks to senior couriers)
//   - Only active couriers claim tasks
//   - Listing is optimistic: a task is never hidden because someone else is
//     about to claim it; exclusivity lives in the claim operation itself
//
// Example usage:
//
//	matcher := services.NewTaskMatcher()
//	if err := matcher.CanClaim(c, t); errors.Is(err, services.ErrPermissionDenied) {
//	    // outside scope or below required level
//	}
type TaskMatcher struct {
	resolver PermissionResolver
}

// NewTaskMatcher creates a new TaskMatcher instance.
func NewTaskMatcher() TaskMatcher {
	return TaskMatcher{resolver: NewPermissionResolver()}
}

// CanClaim reports whether the courier may claim the task.
// Returns nil when eligible, ErrPermissionDenied when the courier's scope,
// level or status forbids it, and a validation error for improperly
// constructed inputs. The lifecycle check (the task still being available)
// is deliberately not here: it belongs to the atomic claim operation.
func (m TaskMatcher) CanClaim(c *courier.Courier, t *task.Task) error {
	if err := errors.Join(c.Validate(), t.Validate()); err != nil {
		return err
	}

	if !c.IsActive() {
		return ErrPermissionDenied
	}

	scoped, err := c.ManagedPrefix().Covers(t.PickupOPCode())
	if err != nil {
		return err
	}
	if !scoped {
		return ErrPermissionDenied
	}

	if c.Level() < t.RequiredLevel() {
		return ErrPermissionDenied
	}

	return nil
}

// Claimable filters the given tasks down to those the courier may claim
// right now and orders them deterministically: priority descending (express
// before urgent before normal), then createdAt ascending (oldest first),
// then task ID as a total-order tie break so two callers always see the
// same ranking.
func (m TaskMatcher) Claimable(c *courier.Courier, tasks []*task.Task) ([]*task.Task, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	claimable := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if t.Status() != task.StatusAvailable {
			continue
		}

		err := m.CanClaim(c, t)
		if errors.Is(err, ErrPermissionDenied) {
			continue
		}
		if err != nil {
			return nil, err
		}

		claimable = append(claimable, t)
	}

	sort.Slice(claimable, func(i, j int) bool {
		a, b := claimable[i], claimable[j]
		if a.Priority() != b.Priority() {
			return a.Priority() > b.Priority()
		}
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().Before(b.CreatedAt())
		}
		return a.ID().String() < b.ID().String()
	})

	return claimable, nil
}
