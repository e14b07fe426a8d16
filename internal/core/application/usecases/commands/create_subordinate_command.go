package commands

import (
	"errors"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/guard"
)

var ErrCreateSubordinateCommandIsNotConstructed = errors.New(
	"CreateSubordinateCommand must be created via NewCreateSubordinateCommand constructor",
)

// CreateSubordinateCommand represents a courier's request to appoint a new
// courier one level below, scoped to a one-segment extension of the
// appointer's own prefix.
//
// Example:
//
//	prefix, _ := kernel.NewPrefix("BJDX5F")
//	cmd, err := NewCreateSubordinateCommand(parentID, subordinateID, courier.LevelZone, prefix)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCreateSubordinateCommandHandler(uowFactory, false)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, courier.ErrPrefixOutOfScope) {
//	    // requested scope is not inside the appointer's scope
//	}
type CreateSubordinateCommand struct { //nolint:recvcheck //using for validation
	parentID      kernel.UUID
	subordinateID kernel.UUID
	level         courier.Level
	managedPrefix kernel.Prefix

	guard guard.ConstructorGuard
}

// NewCreateSubordinateCommand creates a command to appoint a subordinate
// courier. Validates both identifiers, the level and the prefix; the
// hierarchy rules (level step, scope containment) are enforced by the courier
// aggregate when the command is handled.
func NewCreateSubordinateCommand(
	parentID kernel.UUID,
	subordinateID kernel.UUID,
	level courier.Level,
	managedPrefix kernel.Prefix,
) (CreateSubordinateCommand, error) {
	subordinateCommand := CreateSubordinateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		subordinateCommand.setParentID(parentID),
		subordinateCommand.setSubordinateID(subordinateID),
		subordinateCommand.setLevel(level),
		subordinateCommand.setManagedPrefix(managedPrefix),
	); err != nil {
		return CreateSubordinateCommand{}, err
	}

	return subordinateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateSubordinateCommandIsNotConstructed if validation fails.
func (c CreateSubordinateCommand) Validate() error {
	return c.guard.Validate(ErrCreateSubordinateCommandIsNotConstructed)
}

// ParentID returns the identifier of the appointing courier.
func (c CreateSubordinateCommand) ParentID() kernel.UUID {
	return c.parentID
}

// SubordinateID returns the identifier the new courier will carry.
func (c CreateSubordinateCommand) SubordinateID() kernel.UUID {
	return c.subordinateID
}

// Level returns the hierarchy level of the new courier.
func (c CreateSubordinateCommand) Level() courier.Level {
	return c.level
}

// ManagedPrefix returns the OP-code scope of the new courier.
func (c CreateSubordinateCommand) ManagedPrefix() kernel.Prefix {
	return c.managedPrefix
}

func (c *CreateSubordinateCommand) setParentID(parentID kernel.UUID) error {
	if err := parentID.Validate(); err != nil {
		return err
	}

	c.parentID = parentID
	return nil
}

func (c *CreateSubordinateCommand) setSubordinateID(subordinateID kernel.UUID) error {
	if err := subordinateID.Validate(); err != nil {
		return err
	}

	c.subordinateID = subordinateID
	return nil
}

func (c *CreateSubordinateCommand) setLevel(level courier.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}

	c.level = level
	return nil
}

func (c *CreateSubordinateCommand) setManagedPrefix(managedPrefix kernel.Prefix) error {
	if err := managedPrefix.Validate(); err != nil {
		return err
	}

	c.managedPrefix = managedPrefix
	return nil
}
