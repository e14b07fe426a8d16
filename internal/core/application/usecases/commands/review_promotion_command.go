package commands

import (
	"errors"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/promotion"
	"letterpost/internal/pkg/guard"
)

var ErrReviewPromotionCommandIsNotConstructed = errors.New(
	"ReviewPromotionCommand must be created via NewReviewPromotionCommand constructor",
)

// ReviewPromotionCommand represents a senior courier's decision on a pending
// promotion request: approval, or rejection with a mandatory reason.
//
// Example:
//
//	cmd, err := NewReviewPromotionCommand(reviewerID, requestID, false, "scope overlaps an existing school courier")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewReviewPromotionCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("review failed: %w", err)
//	}
type ReviewPromotionCommand struct { //nolint:recvcheck //using for validation
	reviewerID kernel.UUID
	requestID  kernel.UUID
	approve    bool
	reason     string

	guard guard.ConstructorGuard
}

// NewReviewPromotionCommand creates a command to decide a promotion request.
// A rejection without a reason is refused up front; approvals carry no
// reason.
func NewReviewPromotionCommand(
	reviewerID kernel.UUID,
	requestID kernel.UUID,
	approve bool,
	reason string,
) (ReviewPromotionCommand, error) {
	reviewCommand := ReviewPromotionCommand{
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setReviewerID(reviewerID),
		reviewCommand.setRequestID(requestID),
		reviewCommand.setReason(approve, reason),
	); err != nil {
		return ReviewPromotionCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReviewPromotionCommandIsNotConstructed if validation fails.
func (c ReviewPromotionCommand) Validate() error {
	return c.guard.Validate(ErrReviewPromotionCommandIsNotConstructed)
}

// ReviewerID returns the identifier of the reviewing courier.
func (c ReviewPromotionCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// RequestID returns the identifier of the request under review.
func (c ReviewPromotionCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Approve reports whether the reviewer approved the request.
func (c ReviewPromotionCommand) Approve() bool {
	return c.approve
}

// Reason returns the rejection reason, empty for approvals.
func (c ReviewPromotionCommand) Reason() string {
	return c.reason
}

func (c *ReviewPromotionCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}

func (c *ReviewPromotionCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ReviewPromotionCommand) setReason(approve bool, reason string) error {
	if !approve && reason == "" {
		return promotion.ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
