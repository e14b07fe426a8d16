package commands

import (
	"errors"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"
	"letterpost/internal/pkg/guard"
)

var ErrCreateTaskCommandIsNotConstructed = errors.New(
	"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
)

// CreateTaskCommand represents a request to create a new delivery task for a
// letter. Encapsulates the route (pickup and delivery OP codes), the delivery
// urgency, the minimum courier level allowed to claim the task and the
// public-visibility flag.
//
// Example:
//
//	pickup, _ := kernel.NewOPCode("BJDX5F01")
//	delivery, _ := kernel.NewOPCode("BJDX2A07")
//	cmd, err := NewCreateTaskCommand(kernel.NewUUID(), kernel.NewUUID(),
//	    pickup, delivery, task.PriorityNormal, courier.LevelBuilding, false)
//	if err != nil {
//	    return fmt.Errorf("invalid task data: %w", err)
//	}
//
//	handler := NewCreateTaskCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create task: %w", err)
//	}
type CreateTaskCommand struct { //nolint:recvcheck //using for validation
	taskID         kernel.UUID
	letterID       kernel.UUID
	pickupOPCode   kernel.OPCode
	deliveryOPCode kernel.OPCode
	priority       task.Priority
	requiredLevel  courier.Level
	public         bool

	guard guard.ConstructorGuard
}

// NewCreateTaskCommand creates a command to register a new delivery task.
// Validates identifiers, both OP codes, the priority and the required level.
// Returns an error if any validation fails.
func NewCreateTaskCommand(
	taskID kernel.UUID,
	letterID kernel.UUID,
	pickupOPCode kernel.OPCode,
	deliveryOPCode kernel.OPCode,
	priority task.Priority,
	requiredLevel courier.Level,
	public bool,
) (CreateTaskCommand, error) {
	taskCommand := CreateTaskCommand{
		public: public,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskCommand.setTaskID(taskID),
		taskCommand.setLetterID(letterID),
		taskCommand.setRoute(pickupOPCode, deliveryOPCode),
		taskCommand.setPriority(priority),
		taskCommand.setRequiredLevel(requiredLevel),
	); err != nil {
		return CreateTaskCommand{}, err
	}

	return taskCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTaskCommandIsNotConstructed if validation fails.
func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

// TaskID returns the unique identifier for the task.
func (c CreateTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// LetterID returns the opaque reference to the letter content.
func (c CreateTaskCommand) LetterID() kernel.UUID {
	return c.letterID
}

// PickupOPCode returns where the letter starts.
func (c CreateTaskCommand) PickupOPCode() kernel.OPCode {
	return c.pickupOPCode
}

// DeliveryOPCode returns where the letter must arrive.
func (c CreateTaskCommand) DeliveryOPCode() kernel.OPCode {
	return c.deliveryOPCode
}

// Priority returns the delivery urgency.
func (c CreateTaskCommand) Priority() task.Priority {
	return c.priority
}

// RequiredLevel returns the minimum courier level allowed to claim the task.
func (c CreateTaskCommand) RequiredLevel() courier.Level {
	return c.requiredLevel
}

// Public reports whether the task is globally visible read-only outside its
// pickup scope.
func (c CreateTaskCommand) Public() bool {
	return c.public
}

func (c *CreateTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *CreateTaskCommand) setLetterID(letterID kernel.UUID) error {
	if err := letterID.Validate(); err != nil {
		return err
	}

	c.letterID = letterID
	return nil
}

func (c *CreateTaskCommand) setRoute(pickup, delivery kernel.OPCode) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	c.pickupOPCode = pickup
	c.deliveryOPCode = delivery
	return nil
}

func (c *CreateTaskCommand) setPriority(priority task.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateTaskCommand) setRequiredLevel(level courier.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}

	c.requiredLevel = level
	return nil
}
