package promotion

import (
	"errors"
	"time"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/errs"
	"letterpost/internal/pkg/guard"
)

// Domain errors for promotion requests.
var (
	// ErrRequestIsNotConstructed is returned when using an improperly initialized Request.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
	// ErrEvidenceIsRequired is returned when a request is filed without supporting evidence.
	ErrEvidenceIsRequired = errs.NewValueIsRequiredError("evidence")
	// ErrReasonIsRequired is returned when a request is rejected without a reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// Request represents a courier's application for promotion to a higher
// hierarchy level with a wider managed scope. It is an aggregate root with
// an immutable review outcome: once approved or rejected the request only
// serves as history.
type Request struct {
	// id uniquely identifies the request
	id kernel.UUID
	// courierID is the courier applying for promotion
	courierID kernel.UUID
	// targetLevel is the level applied for
	targetLevel courier.Level
	// targetPrefix is the managed scope applied for
	targetPrefix kernel.Prefix
	// evidence is the applicant's free-form justification
	evidence string
	// status is the review state
	status Status
	// reason records why a request was rejected
	reason string
	// reviewerID is the courier that reviewed the request, nil while pending
	reviewerID *kernel.UUID
	// createdAt is when the request was filed
	createdAt time.Time
	// reviewedAt is when the request was decided, nil while pending
	reviewedAt *time.Time
	// guard ensures the request was properly constructed
	guard guard.ConstructorGuard
}

// NewRequest files a new pending promotion request.
// The target prefix depth must match the target level, the same consistency
// rule the courier aggregate enforces on its own scope.
func NewRequest(
	id kernel.UUID,
	courierID kernel.UUID,
	targetLevel courier.Level,
	targetPrefix kernel.Prefix,
	evidence string,
) (*Request, error) {
	now := time.Now().UTC()
	return RestoreRequest(id, courierID, targetLevel, targetPrefix, evidence,
		StatusPending, "", nil, now, nil)
}

// RestoreRequest reconstructs a Request aggregate from persistent storage.
func RestoreRequest(
	id kernel.UUID,
	courierID kernel.UUID,
	targetLevel courier.Level,
	targetPrefix kernel.Prefix,
	evidence string,
	status Status,
	reason string,
	reviewerID *kernel.UUID,
	createdAt time.Time,
	reviewedAt *time.Time,
) (*Request, error) {
	r := &Request{
		reason:     reason,
		reviewerID: reviewerID,
		createdAt:  createdAt,
		reviewedAt: reviewedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCourierID(courierID),
		r.setTarget(targetLevel, targetPrefix),
		r.setEvidence(evidence),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// CourierID returns the applying courier's identifier.
func (r *Request) CourierID() kernel.UUID {
	return r.courierID
}

// TargetLevel returns the level applied for.
func (r *Request) TargetLevel() courier.Level {
	return r.targetLevel
}

// TargetPrefix returns the managed scope applied for.
func (r *Request) TargetPrefix() kernel.Prefix {
	return r.targetPrefix
}

// Evidence returns the applicant's justification.
func (r *Request) Evidence() string {
	return r.evidence
}

// Status returns the review state of the request.
func (r *Request) Status() Status {
	return r.status
}

// Reason returns the rejection reason, empty unless rejected.
func (r *Request) Reason() string {
	return r.reason
}

// ReviewerID returns the reviewing courier, nil while pending.
func (r *Request) ReviewerID() *kernel.UUID {
	return r.reviewerID
}

// CreatedAt returns when the request was filed.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// ReviewedAt returns when the request was decided, nil while pending.
func (r *Request) ReviewedAt() *time.Time {
	return r.reviewedAt
}

// Approve marks the request approved by the given reviewer.
// The caller is responsible for applying the new scope to the courier in the
// same transaction.
func (r *Request) Approve(reviewerID kernel.UUID) error {
	if err := errors.Join(r.Validate(), reviewerID.Validate()); err != nil {
		return err
	}

	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.reviewerID = &reviewerID
	now := time.Now().UTC()
	r.reviewedAt = &now
	return nil
}

// Reject archives the request with a mandatory reason.
// The applying courier's state is left untouched.
func (r *Request) Reject(reviewerID kernel.UUID, reason string) error {
	if err := errors.Join(r.Validate(), reviewerID.Validate()); err != nil {
		return err
	}
	if reason == "" {
		return ErrReasonIsRequired
	}

	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.reason = reason
	r.reviewerID = &reviewerID
	now := time.Now().UTC()
	r.reviewedAt = &now
	return nil
}

// setID validates and sets the request's unique identifier.
func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setCourierID validates and sets the applying courier.
func (r *Request) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	r.courierID = courierID
	return nil
}

// setTarget validates level/prefix consistency of the requested scope.
func (r *Request) setTarget(level courier.Level, prefix kernel.Prefix) error {
	if err := errors.Join(level.Validate(), prefix.Validate()); err != nil {
		return err
	}

	expectedDepth, err := level.PrefixDepth()
	if err != nil {
		return err
	}
	if prefix.Depth() != expectedDepth {
		return errs.NewValueIsInvalidError("target prefix depth does not match target level")
	}

	r.targetLevel = level
	r.targetPrefix = prefix
	return nil
}

// setEvidence requires non-empty free-form evidence.
func (r *Request) setEvidence(evidence string) error {
	if evidence == "" {
		return ErrEvidenceIsRequired
	}
	r.evidence = evidence
	return nil
}

// setStatus validates and sets the review state.
func (r *Request) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
