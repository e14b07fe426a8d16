// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/guard"
)

var ErrGetClaimableTasksQueryIsNotConstructed = errors.New(
	"GetClaimableTasksQuery must be created via NewGetClaimableTasksQuery constructor",
)

// GetClaimableTasksQuery retrieves the tasks a courier may claim right now:
// available, inside the courier's managed scope and not above the courier's
// level. Public read-only tasks are deliberately absent; visibility never
// grants a claim.
//
// Example:
//
//	query, err := NewGetClaimableTasksQuery(courierID)
//	if err != nil {
//	    return err
//	}
//
//	tasks, err := NewGetClaimableTasksQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list claimable tasks: %w", err)
//	}
//	for _, t := range tasks {
//	    fmt.Printf("%s: %s -> %s\n", t.ID, t.PickupOPCode, t.DeliveryOPCode)
//	}
type GetClaimableTasksQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClaimableTasksQuery creates a query for a courier's claimable tasks.
// Validates that the courier identifier is a valid UUID.
func NewGetClaimableTasksQuery(courierID kernel.UUID) (GetClaimableTasksQuery, error) {
	query := GetClaimableTasksQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetClaimableTasksQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetClaimableTasksQueryIsNotConstructed if validation fails.
func (q GetClaimableTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimableTasksQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier asking for work.
func (q GetClaimableTasksQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetClaimableTasksQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

// GetClaimableTasksQueryResponse represents one claimable task in the read
// model, ordered the same way the TaskMatcher ranks offers: priority first,
// oldest first.
type GetClaimableTasksQueryResponse struct {
	ID             kernel.UUID
	LetterID       kernel.UUID
	PickupOPCode   string
	DeliveryOPCode string
	Priority       int
	RequiredLevel  int
	CreatedAt      time.Time
}
