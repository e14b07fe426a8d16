package queries

import (
	"errors"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/guard"
)

var ErrGetSubordinatesQueryIsNotConstructed = errors.New(
	"GetSubordinatesQuery must be created via NewGetSubordinatesQuery constructor",
)

// GetSubordinatesQuery retrieves the direct children of a courier in the
// hierarchy: the couriers one level below that it appointed.
//
// Example:
//
//	query, err := NewGetSubordinatesQuery(parentID)
//	if err != nil {
//	    return err
//	}
//
//	subordinates, err := NewGetSubordinatesQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list subordinates: %w", err)
//	}
type GetSubordinatesQuery struct { //nolint:recvcheck //using for validation
	parentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSubordinatesQuery creates a query for a courier's direct children.
// Validates that the parent identifier is a valid UUID.
func NewGetSubordinatesQuery(parentID kernel.UUID) (GetSubordinatesQuery, error) {
	query := GetSubordinatesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setParentID(parentID); err != nil {
		return GetSubordinatesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSubordinatesQueryIsNotConstructed if validation fails.
func (q GetSubordinatesQuery) Validate() error {
	return q.guard.Validate(ErrGetSubordinatesQueryIsNotConstructed)
}

// ParentID returns the identifier of the appointing courier.
func (q GetSubordinatesQuery) ParentID() kernel.UUID {
	return q.parentID
}

func (q *GetSubordinatesQuery) setParentID(parentID kernel.UUID) error {
	if err := parentID.Validate(); err != nil {
		return err
	}

	q.parentID = parentID
	return nil
}

// GetSubordinatesQueryResponse represents one subordinate courier in the
// read model.
type GetSubordinatesQueryResponse struct {
	ID            kernel.UUID
	Level         int
	ManagedPrefix string
	Status        string
}
