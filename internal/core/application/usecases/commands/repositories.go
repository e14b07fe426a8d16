// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"letterpost/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Audit appends always travel in the same transaction as the mutation they
// record, so every unit of work carries the history repository.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TaskRepoFactory provides access to the task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// PromotionRepoFactory provides access to the promotion repository within a transaction.
	PromotionRepoFactory interface {
		PromotionRepository() ports.PromotionRepository
	}

	// HistoryRepoFactory provides access to the audit log repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// TaskUoW manages transactions for task lifecycle operations.
	// Used when commands modify task aggregates and their audit trail only.
	TaskUoW interface {
		TxManager
		TaskRepoFactory
		HistoryRepoFactory
	}

	// TaskUoWFactory creates new task unit of work instances.
	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// CourierUoW manages transactions for hierarchy operations.
	// Used when commands modify courier aggregates and their audit trail only.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
		HistoryRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// PromotionUoW manages transactions for promotion review operations,
	// which touch the request, the applying courier and the audit trail
	// together.
	PromotionUoW interface {
		TxManager
		CourierRepoFactory
		PromotionRepoFactory
		HistoryRepoFactory
	}

	// PromotionUoWFactory creates new promotion unit of work instances.
	PromotionUoWFactory interface {
		Create() PromotionUoW
	}

	// UoW manages transactions across courier and task aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   courierRepo := uow.CourierRepository()
	//   taskRepo := uow.TaskRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CourierRepoFactory
		TaskRepoFactory
		HistoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
