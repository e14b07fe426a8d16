package commands

import (
	"errors"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/guard"
)

var ErrRequestPromotionCommandIsNotConstructed = errors.New(
	"RequestPromotionCommand must be created via NewRequestPromotionCommand constructor",
)

// RequestPromotionCommand represents a courier's application for promotion to
// a higher hierarchy level with a wider managed scope, backed by free-form
// evidence for the reviewer.
//
// Example:
//
//	target, _ := kernel.NewPrefix("BJDX")
//	cmd, err := NewRequestPromotionCommand(kernel.NewUUID(), courierID,
//	    courier.LevelSchool, target, "covered 120 zone deliveries this term")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRequestPromotionCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to file promotion request: %w", err)
//	}
type RequestPromotionCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	courierID    kernel.UUID
	targetLevel  courier.Level
	targetPrefix kernel.Prefix
	evidence     string

	guard guard.ConstructorGuard
}

// NewRequestPromotionCommand creates a command to file a promotion request.
// Validates identifiers, the target level and prefix; the level/prefix
// consistency rule is enforced by the promotion aggregate when handled.
func NewRequestPromotionCommand(
	requestID kernel.UUID,
	courierID kernel.UUID,
	targetLevel courier.Level,
	targetPrefix kernel.Prefix,
	evidence string,
) (RequestPromotionCommand, error) {
	promotionCommand := RequestPromotionCommand{
		evidence: evidence,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		promotionCommand.setRequestID(requestID),
		promotionCommand.setCourierID(courierID),
		promotionCommand.setTargetLevel(targetLevel),
		promotionCommand.setTargetPrefix(targetPrefix),
	); err != nil {
		return RequestPromotionCommand{}, err
	}

	return promotionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestPromotionCommandIsNotConstructed if validation fails.
func (c RequestPromotionCommand) Validate() error {
	return c.guard.Validate(ErrRequestPromotionCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the promotion request.
func (c RequestPromotionCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CourierID returns the identifier of the applying courier.
func (c RequestPromotionCommand) CourierID() kernel.UUID {
	return c.courierID
}

// TargetLevel returns the hierarchy level applied for.
func (c RequestPromotionCommand) TargetLevel() courier.Level {
	return c.targetLevel
}

// TargetPrefix returns the managed scope applied for.
func (c RequestPromotionCommand) TargetPrefix() kernel.Prefix {
	return c.targetPrefix
}

// Evidence returns the applicant's free-form justification.
func (c RequestPromotionCommand) Evidence() string {
	return c.evidence
}

func (c *RequestPromotionCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RequestPromotionCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RequestPromotionCommand) setTargetLevel(targetLevel courier.Level) error {
	if err := targetLevel.Validate(); err != nil {
		return err
	}

	c.targetLevel = targetLevel
	return nil
}

func (c *RequestPromotionCommand) setTargetPrefix(targetPrefix kernel.Prefix) error {
	if err := targetPrefix.Validate(); err != nil {
		return err
	}

	c.targetPrefix = targetPrefix
	return nil
}
