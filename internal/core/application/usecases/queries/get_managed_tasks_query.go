package queries

import (
	"errors"
	"time"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/guard"
)

var (
	ErrGetManagedTasksQueryIsNotConstructed = errors.New(
		"GetManagedTasksQuery must be created via NewGetManagedTasksQuery constructor",
	)

	// ErrOversightNotAllowed is returned when a building-level courier asks
	// for the subtree view; oversight starts at zone level.
	ErrOversightNotAllowed = errors.New("task oversight requires zone level or above")
)

// GetManagedTasksQuery retrieves every task whose pickup falls under a
// courier's managed scope, regardless of lifecycle state. This is the
// oversight view senior couriers use to watch their subtree; building-level
// couriers have no subtree and are refused.
//
// Example:
//
//	query, err := NewGetManagedTasksQuery(courierID)
//	if err != nil {
//	    return err
//	}
//
//	tasks, err := NewGetManagedTasksQueryHandler(db).Handle(ctx, query)
//	if errors.Is(err, ErrOversightNotAllowed) {
//	    // building couriers only see their claimable list
//	}
type GetManagedTasksQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetManagedTasksQuery creates a query for a courier's subtree of tasks.
// Validates that the courier identifier is a valid UUID.
func NewGetManagedTasksQuery(courierID kernel.UUID) (GetManagedTasksQuery, error) {
	query := GetManagedTasksQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetManagedTasksQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetManagedTasksQueryIsNotConstructed if validation fails.
func (q GetManagedTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetManagedTasksQueryIsNotConstructed)
}

// CourierID returns the identifier of the overseeing courier.
func (q GetManagedTasksQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetManagedTasksQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

// GetManagedTasksQueryResponse represents one task in the oversight read
// model, including its lifecycle state and the courier currently carrying it.
type GetManagedTasksQueryResponse struct {
	ID             kernel.UUID
	LetterID       kernel.UUID
	PickupOPCode   string
	DeliveryOPCode string
	CurrentOPCode  string
	Status         string
	CourierID      *kernel.UUID
	Priority       int
	CreatedAt      time.Time
}
