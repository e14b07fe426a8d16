package commands

import (
	"errors"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/guard"
)

var ErrClaimTaskCommandIsNotConstructed = errors.New(
	"ClaimTaskCommand must be created via NewClaimTaskCommand constructor",
)

// ClaimTaskCommand represents a courier's attempt to claim an available task
// for exclusive delivery.
//
// Example:
//
//	cmd, err := NewClaimTaskCommand(taskID, courierID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewClaimTaskCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, task.ErrAlreadyClaimed):
//	    // another courier won the race
//	case errors.Is(err, services.ErrPermissionDenied):
//	    // outside scope or below required level
//	}
type ClaimTaskCommand struct { //nolint:recvcheck //using for validation
	taskID    kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimTaskCommand creates a command for a courier to claim a task.
// Validates that both identifiers are valid UUIDs.
func NewClaimTaskCommand(taskID kernel.UUID, courierID kernel.UUID) (ClaimTaskCommand, error) {
	claimCommand := ClaimTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setTaskID(taskID),
		claimCommand.setCourierID(courierID),
	); err != nil {
		return ClaimTaskCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClaimTaskCommandIsNotConstructed if validation fails.
func (c ClaimTaskCommand) Validate() error {
	return c.guard.Validate(ErrClaimTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being claimed.
func (c ClaimTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// CourierID returns the identifier of the claiming courier.
func (c ClaimTaskCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *ClaimTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *ClaimTaskCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
