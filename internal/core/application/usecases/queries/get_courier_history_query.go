package queries

import (
	"errors"
	"time"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/guard"
)

var ErrGetCourierHistoryQueryIsNotConstructed = errors.New(
	"GetCourierHistoryQuery must be created via NewGetCourierHistoryQuery constructor",
)

// GetCourierHistoryQuery retrieves the hierarchy audit trail of a courier:
// appointments, approvals, suspensions and promotion decisions.
type GetCourierHistoryQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierHistoryQuery creates a query for a courier's audit records.
// Validates that the courier identifier is a valid UUID.
func NewGetCourierHistoryQuery(courierID kernel.UUID) (GetCourierHistoryQuery, error) {
	query := GetCourierHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierHistoryQueryIsNotConstructed if validation fails.
func (q GetCourierHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierHistoryQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier whose history is requested.
func (q GetCourierHistoryQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetCourierHistoryQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

// GetCourierHistoryQueryResponse represents one hierarchy audit record.
// ActorID is nil for events the courier triggered themselves, such as
// filing a promotion request.
type GetCourierHistoryQueryResponse struct {
	ID         kernel.UUID
	CourierID  kernel.UUID
	ActorID    *kernel.UUID
	Kind       string
	Details    string
	OccurredAt time.Time
}
