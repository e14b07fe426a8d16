package queries

import (
	"context"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSubordinatesQueryHandler retrieves a courier's direct children from the
// database, ordered by their managed prefix for stable output.
type GetSubordinatesQueryHandler struct {
	db *gorm.DB
}

// NewGetSubordinatesQueryHandler creates a handler for subordinate queries.
// Requires a GORM database connection for query execution.
func NewGetSubordinatesQueryHandler(db *gorm.DB) GetSubordinatesQueryHandler {
	return GetSubordinatesQueryHandler{db: db}
}

// Handle executes the query for a courier's direct children.
// A courier with no subordinates gets an empty list.
func (h GetSubordinatesQueryHandler) Handle(
	ctx context.Context,
	query GetSubordinatesQuery,
) ([]GetSubordinatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			level,
			managed_prefix,
			status
		FROM couriers
		WHERE parent_id = ?
		ORDER BY managed_prefix
	`, query.ParentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subordinates := make([]GetSubordinatesQueryResponse, 0)
	for rows.Next() {
		var subResp GetSubordinatesQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&subResp.Level,
			&subResp.ManagedPrefix,
			&status,
		)
		if err != nil {
			return nil, err
		}

		subID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		subResp.ID = subID
		subResp.Status = courier.Status(status).String()

		subordinates = append(subordinates, subResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return subordinates, nil
}
