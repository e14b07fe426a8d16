package historyrepo

import (
	"context"

	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
// The audit tables are insert-only; there is no Update and no Delete.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM audit log repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// AppendCourierEvent appends one hierarchy audit record.
func (r *GormHistoryRepository) AppendCourierEvent(ctx context.Context, event history.CourierEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := courierEventFromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendTaskTransition appends one task lifecycle audit record.
func (r *GormHistoryRepository) AppendTaskTransition(ctx context.Context, transition history.TaskTransition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	dto := taskTransitionFromDomain(transition)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListCourierEvents returns a courier's audit records ordered by occurrence.
func (r *GormHistoryRepository) ListCourierEvents(ctx context.Context, courierID kernel.UUID) ([]history.CourierEvent, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CourierEventDTO
	if err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID.Bytes()).
		Order("occurred_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]history.CourierEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := courierEventToDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// ListTaskTransitions returns a task's lifecycle records ordered by occurrence.
func (r *GormHistoryRepository) ListTaskTransitions(ctx context.Context, taskID kernel.UUID) ([]history.TaskTransition, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TaskTransitionDTO
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID.Bytes()).
		Order("occurred_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	transitions := make([]history.TaskTransition, 0, len(dtos))
	for _, dto := range dtos {
		transition, err := taskTransitionToDomain(dto)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, transition)
	}

	return transitions, nil
}
