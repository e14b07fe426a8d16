package commands

import (
	"errors"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/pkg/guard"
)

var (
	ErrAdvanceTaskCommandIsNotConstructed = errors.New(
		"AdvanceTaskCommand must be created via NewAdvanceTaskCommand constructor",
	)
	// ErrTargetStatusIsInvalid is returned when the requested target status is
	// not reachable through this command. Accepted is only entered through the
	// claim operation, never through a plain advance.
	ErrTargetStatusIsInvalid = errors.New(
		"target status must be one of: collected, in_transit, delivered, failed, canceled",
	)
)

// AdvanceTaskCommand represents a request to move a claimed task forward
// through its lifecycle: collection scan, transit, delivery, failure or
// cancelation. An optional scan OP code updates the letter's last known
// location in the same step.
//
// Example:
//
//	scan, _ := kernel.NewOPCode("BJDX2A07")
//	cmd, err := NewAdvanceTaskCommand(taskID, courierID, task.StatusInTransit, &scan)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdvanceTaskCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to advance task: %w", err)
//	}
type AdvanceTaskCommand struct { //nolint:recvcheck //using for validation
	taskID    kernel.UUID
	courierID kernel.UUID
	target    task.Status
	scan      *kernel.OPCode

	guard guard.ConstructorGuard
}

// NewAdvanceTaskCommand creates a command to advance a task's lifecycle.
// The target must be a status reachable by a courier-driven transition;
// scan is optional and records the letter's location at the time of the
// transition.
func NewAdvanceTaskCommand(
	taskID kernel.UUID,
	courierID kernel.UUID,
	target task.Status,
	scan *kernel.OPCode,
) (AdvanceTaskCommand, error) {
	advanceCommand := AdvanceTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setTaskID(taskID),
		advanceCommand.setCourierID(courierID),
		advanceCommand.setTarget(target),
		advanceCommand.setScan(scan),
	); err != nil {
		return AdvanceTaskCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceTaskCommandIsNotConstructed if validation fails.
func (c AdvanceTaskCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being advanced.
func (c AdvanceTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// CourierID returns the identifier of the acting courier.
func (c AdvanceTaskCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Target returns the lifecycle status the task should move to.
func (c AdvanceTaskCommand) Target() task.Status {
	return c.target
}

// Scan returns the optional OP code scanned during the transition, nil when
// no scan accompanies it.
func (c AdvanceTaskCommand) Scan() *kernel.OPCode {
	return c.scan
}

func (c *AdvanceTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *AdvanceTaskCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *AdvanceTaskCommand) setTarget(target task.Status) error {
	switch target {
	case task.StatusCollected, task.StatusInTransit, task.StatusDelivered,
		task.StatusFailed, task.StatusCanceled:
		c.target = target
		return nil
	default:
		return ErrTargetStatusIsInvalid
	}
}

func (c *AdvanceTaskCommand) setScan(scan *kernel.OPCode) error {
	if scan == nil {
		return nil
	}
	if err := scan.Validate(); err != nil {
		return err
	}

	c.scan = scan
	return nil
}
