package queries

import (
	"context"

	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierHistoryQueryHandler reads a courier's audit records straight from
// the audit table, ordered by occurrence.
type GetCourierHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierHistoryQueryHandler creates a handler for courier history
// queries. Requires a GORM database connection for query execution.
func NewGetCourierHistoryQueryHandler(db *gorm.DB) GetCourierHistoryQueryHandler {
	return GetCourierHistoryQueryHandler{db: db}
}

// Handle executes the query for a courier's hierarchy audit records.
// A courier with no recorded events gets an empty list.
func (h GetCourierHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetCourierHistoryQuery,
) ([]GetCourierHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			courier_id,
			actor_id,
			kind,
			details,
			occurred_at
		FROM courier_events
		WHERE courier_id = ?
		ORDER BY occurred_at
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]GetCourierHistoryQueryResponse, 0)
	for rows.Next() {
		var eventResp GetCourierHistoryQueryResponse
		var id, courierID uuid.UUID
		var actorID *uuid.UUID
		var kind int

		err = rows.Scan(
			&id,
			&courierID,
			&actorID,
			&kind,
			&eventResp.Details,
			&eventResp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		eventResp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		eventResp.CourierID, err = kernel.UUIDFromBytes(courierID[:])
		if err != nil {
			return nil, err
		}
		if actorID != nil {
			actor, actorErr := kernel.UUIDFromBytes(actorID[:])
			if actorErr != nil {
				return nil, actorErr
			}
			eventResp.ActorID = &actor
		}
		eventResp.Kind = history.CourierEventKind(kind).String()

		events = append(events, eventResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
