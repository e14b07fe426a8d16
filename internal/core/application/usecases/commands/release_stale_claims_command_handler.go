package commands

import (
	"context"
	"time"

	"letterpost/internal/core/domain/model/history"
	"letterpost/internal/core/domain/model/task"
)

// ReleaseStaleClaimsCommandHandler returns tasks whose claim went stale to
// the available pool so other couriers can pick them up.
//
// Each release goes through the same conditional-update discipline as a
// claim: a task that was collected (or otherwise moved) between the sweep's
// read and its write is simply skipped, never force-released.
type ReleaseStaleClaimsCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewReleaseStaleClaimsCommandHandler creates a handler for the stale claim
// sweep. Requires a TaskUoWFactory for transactional persistence.
func NewReleaseStaleClaimsCommandHandler(uowFactory TaskUoWFactory) ReleaseStaleClaimsCommandHandler {
	return ReleaseStaleClaimsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
// Finds accepted tasks claimed before now minus the TTL, unbinds their
// couriers and records each release in the audit log. The whole sweep
// commits as one transaction.
func (h ReleaseStaleClaimsCommandHandler) Handle(ctx context.Context, cmd ReleaseStaleClaimsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	historyRepo := uow.HistoryRepository()

	cutoff := time.Now().UTC().Add(-cmd.ClaimTTL())
	staleTasks, err := taskRepo.GetStaleAccepted(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, staleTask := range staleTasks {
		courierID := staleTask.Courier()

		if err = staleTask.Release(); err != nil {
			return err
		}

		released, releaseErr := taskRepo.UpdateIfStatus(ctx, staleTask, task.StatusAccepted)
		if releaseErr != nil {
			return releaseErr
		}
		if !released {
			// The courier made progress between our read and write.
			continue
		}

		record, recordErr := history.NewTaskTransition(staleTask.ID(), courierID,
			task.StatusAccepted, task.StatusAvailable)
		if recordErr != nil {
			return recordErr
		}

		if err = historyRepo.AppendTaskTransition(ctx, record); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
