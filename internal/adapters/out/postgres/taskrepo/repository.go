package taskrepo

import (
	"context"
	"errors"
	"time"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM.
//
// The two conditional writes, Claim and UpdateIfStatus, are single UPDATE
// statements guarded by the row's current status. Under READ COMMITTED the
// database serializes the competing updates on the row lock, so of N
// concurrent claimers exactly one sees RowsAffected == 1; no advisory locks
// or SELECT FOR UPDATE needed.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new task to the database.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing task to the database unconditionally.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a task by ID.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all tasks currently open for claiming, oldest
// first.
func (r *GormTaskRepository) GetAllAvailable(ctx context.Context) ([]*task.Task, error) {
	var dtos []TaskDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(task.StatusAvailable)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStaleAccepted retrieves accepted tasks claimed before the given instant.
// Feeds the scheduled claim-release sweep.
func (r *GormTaskRepository) GetStaleAccepted(ctx context.Context, before time.Time) ([]*task.Task, error) {
	var dtos []TaskDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND accepted_at < ?", int(task.StatusAccepted), before).
		Order("accepted_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Claim persists an accepted task with a single atomic conditional update.
// The write lands only while the row is still available and unbound, which
// is what makes the claim exactly-once under concurrency: the database
// serializes the competing updates and only the first matches the guard.
//
// Example:
//
//	if err := t.Accept(courierID); err != nil {
//		return err
//	}
//	if err := repo.Claim(ctx, t); errors.Is(err, task.ErrAlreadyClaimed) {
//		// another courier won the race
//	}
func (r *GormTaskRepository) Claim(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ? AND status = ? AND courier_id IS NULL", dto.ID, int(task.StatusAvailable)).
		Updates(map[string]any{
			"status":      dto.Status,
			"courier_id":  dto.CourierID,
			"accepted_at": dto.AcceptedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return task.ErrAlreadyClaimed
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatus persists the aggregate only while the stored row still has
// the expected status. Returns false without error when the guard did not
// match, letting callers treat retried transitions as no-ops.
func (r *GormTaskRepository) UpdateIfStatus(
	ctx context.Context,
	aggregate *task.Task,
	expected task.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(map[string]any{
			"status":          dto.Status,
			"courier_id":      dto.CourierID,
			"current_op_code": dto.CurrentOPCode,
			"accepted_at":     dto.AcceptedAt,
			"completed_at":    dto.CompletedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// toDomainSlice converts a batch of DTOs, failing on the first bad row.
func toDomainSlice(dtos []TaskDTO) ([]*task.Task, error) {
	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
