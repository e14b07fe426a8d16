package task

import (
	"errors"
	"time"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/guard"
)

// Domain errors for task lifecycle operations.
var (
	// ErrTaskIsNotConstructed is returned when using an improperly initialized Task.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")
	// ErrAlreadyClaimed is returned when a claim loses the race for an
	// available task: exactly one concurrent claimer wins, the rest get this.
	ErrAlreadyClaimed = errors.New("task already claimed by another courier")
	// ErrTaskIsNotAccepted is returned when releasing a claim on a task that
	// is not currently accepted.
	ErrTaskIsNotAccepted = errors.New("task is not in accepted status")
	// ErrTaskIsNotBound is returned when recording a scan on a task without a
	// bound courier.
	ErrTaskIsNotBound = errors.New("task has no bound courier")
)

// Task represents one physical letter-delivery unit. It is the aggregate
// root that drives the letter from its pickup OP code to its delivery
// OP code through the lifecycle state machine.
//
// Task follows these invariants:
//   - A courier is bound iff the task has been accepted (a task canceled
//     before acceptance never had one)
//   - createdAt, acceptedAt and completedAt are set exactly once, on the
//     transition that defines them
//   - Once a terminal status is reached the task is immutable
//
// Claim exclusivity under concurrency is the persistence layer's conditional
// update; this aggregate only validates the transition itself.
type Task struct {
	// id uniquely identifies the task
	id kernel.UUID
	// letterID is an opaque reference to the letter content, owned externally
	letterID kernel.UUID
	// pickupOPCode is where the letter starts
	pickupOPCode kernel.OPCode
	// deliveryOPCode is where the letter must arrive
	deliveryOPCode kernel.OPCode
	// currentOPCode tracks physical progress, initialized to the pickup code
	currentOPCode kernel.OPCode
	// status is the lifecycle state
	status Status
	// courierID is the claiming courier, nil until accepted
	courierID *kernel.UUID
	// requiredLevel is the minimum courier level needed to claim the task
	requiredLevel courier.Level
	// priority is the delivery urgency
	priority Priority
	// public marks the task globally visible read-only outside its scope
	public bool
	// createdAt is when the task was created
	createdAt time.Time
	// acceptedAt is when the task was claimed, nil until then
	acceptedAt *time.Time
	// completedAt is when the task was delivered, nil until then
	completedAt *time.Time
	// guard ensures the task was properly constructed
	guard guard.ConstructorGuard
}

// NewTask creates a new available Task for the given letter and route.
//
// requiredLevel sets the minimum courier level needed to claim the task;
// pass courier.LevelBuilding for ordinary intra-building deliveries and a
// higher level for inter-zone or inter-school long hauls. public marks the
// task globally visible (read-only) outside its pickup scope.
func NewTask(
	id kernel.UUID,
	letterID kernel.UUID,
	pickupOPCode kernel.OPCode,
	deliveryOPCode kernel.OPCode,
	priority Priority,
	requiredLevel courier.Level,
	public bool,
) (*Task, error) {
	return RestoreTask(id, letterID, pickupOPCode, deliveryOPCode, pickupOPCode,
		StatusAvailable, nil, requiredLevel, priority, public,
		time.Now().UTC(), nil, nil)
}

// RestoreTask reconstructs a Task aggregate from persistent storage,
// preserving its lifecycle state, courier binding and timestamps.
func RestoreTask(
	id kernel.UUID,
	letterID kernel.UUID,
	pickupOPCode kernel.OPCode,
	deliveryOPCode kernel.OPCode,
	currentOPCode kernel.OPCode,
	status Status,
	courierID *kernel.UUID,
	requiredLevel courier.Level,
	priority Priority,
	public bool,
	createdAt time.Time,
	acceptedAt *time.Time,
	completedAt *time.Time,
) (*Task, error) {
	t := &Task{
		public:      public,
		createdAt:   createdAt,
		acceptedAt:  acceptedAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setLetterID(letterID),
		t.setRoute(pickupOPCode, deliveryOPCode, currentOPCode),
		t.setStatus(status),
		t.setCourierID(courierID),
		t.setRequiredLevel(requiredLevel),
		t.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Task instance was properly constructed.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// IsEqual compares two tasks by their unique identifiers.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// LetterID returns the opaque reference to the letter content.
func (t *Task) LetterID() kernel.UUID {
	return t.letterID
}

// PickupOPCode returns where the letter starts.
func (t *Task) PickupOPCode() kernel.OPCode {
	return t.pickupOPCode
}

// DeliveryOPCode returns where the letter must arrive.
func (t *Task) DeliveryOPCode() kernel.OPCode {
	return t.deliveryOPCode
}

// CurrentOPCode returns the letter's last known location.
func (t *Task) CurrentOPCode() kernel.OPCode {
	return t.currentOPCode
}

// Status returns the current lifecycle state.
func (t *Task) Status() Status {
	return t.status
}

// Courier returns the claiming courier's ID, nil until accepted.
func (t *Task) Courier() *kernel.UUID {
	return t.courierID
}

// RequiredLevel returns the minimum courier level needed to claim the task.
func (t *Task) RequiredLevel() courier.Level {
	return t.requiredLevel
}

// Priority returns the delivery urgency.
func (t *Task) Priority() Priority {
	return t.priority
}

// IsPublic reports whether the task is globally visible read-only outside
// its pickup scope.
func (t *Task) IsPublic() bool {
	return t.public
}

// CreatedAt returns when the task was created.
func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

// AcceptedAt returns when the task was claimed, nil until then.
func (t *Task) AcceptedAt() *time.Time {
	return t.acceptedAt
}

// CompletedAt returns when the task was delivered, nil until then.
func (t *Task) CompletedAt() *time.Time {
	return t.completedAt
}

// IsActive reports whether the task is still in flight.
func (t *Task) IsActive() bool {
	return t.status.IsActive()
}

// IsCompleted reports whether the task was delivered successfully.
func (t *Task) IsCompleted() bool {
	return t.status == StatusDelivered
}

// Accept claims the task for the given courier: Available -> Accepted.
// Binds the courier and stamps acceptedAt. Permission checks (scope and
// required level) belong to the claiming use case and happen before this
// transition is attempted.
func (t *Task) Accept(courierID kernel.UUID) error {
	if err := errors.Join(t.Validate(), courierID.Validate()); err != nil {
		return err
	}

	newStatus, err := t.status.TransitionTo(StatusAccepted)
	if err != nil {
		return err
	}

	t.status = newStatus
	t.courierID = &courierID
	now := time.Now().UTC()
	t.acceptedAt = &now
	return nil
}

// MarkCollected records the physical pickup scan: Accepted -> Collected.
func (t *Task) MarkCollected() error {
	if err := t.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.TransitionTo(StatusCollected)
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// StartTransit moves the task on the road: Collected -> InTransit.
func (t *Task) StartTransit() error {
	if err := t.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.TransitionTo(StatusInTransit)
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// MarkDelivered completes the delivery: InTransit -> Delivered.
// Stamps completedAt and moves the current OP code to the delivery code.
func (t *Task) MarkDelivered() error {
	if err := t.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.TransitionTo(StatusDelivered)
	if err != nil {
		return err
	}

	t.status = newStatus
	t.currentOPCode = t.deliveryOPCode
	now := time.Now().UTC()
	t.completedAt = &now
	return nil
}

// MarkFailed records a delivery failure: InTransit -> Failed.
func (t *Task) MarkFailed() error {
	if err := t.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.TransitionTo(StatusFailed)
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Cancel withdraws the task: Available|Accepted -> Canceled.
// A task canceled before acceptance never had a courier; a task canceled
// after acceptance keeps its binding for the audit trail.
func (t *Task) Cancel() error {
	if err := t.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.TransitionTo(StatusCanceled)
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Release returns an accepted task to the available pool, unbinding its
// courier and clearing acceptedAt so the next claim stamps it again.
//
// This is not part of the lifecycle transition table: it exists for the
// scheduled stale-claim job that reclaims tasks whose courier went silent,
// and it goes through the same conditional-update discipline as a claim.
func (t *Task) Release() error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.status != StatusAccepted {
		return ErrTaskIsNotAccepted
	}

	t.status = StatusAvailable
	t.courierID = nil
	t.acceptedAt = nil
	return nil
}

// RecordScan updates the letter's last known location from a courier scan.
// Scans are accepted only while the task is claimed and in flight.
func (t *Task) RecordScan(code kernel.OPCode) error {
	if err := errors.Join(t.Validate(), code.Validate()); err != nil {
		return err
	}
	if t.courierID == nil {
		return ErrTaskIsNotBound
	}
	if !t.IsActive() {
		return ErrTaskIsNotAccepted
	}

	t.currentOPCode = code
	return nil
}

// setID validates and sets the task's unique identifier.
func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

// setLetterID validates and sets the letter reference.
func (t *Task) setLetterID(letterID kernel.UUID) error {
	if err := letterID.Validate(); err != nil {
		return err
	}
	t.letterID = letterID
	return nil
}

// setRoute validates and sets the pickup, delivery and current OP codes.
func (t *Task) setRoute(pickup, delivery, current kernel.OPCode) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate(), current.Validate()); err != nil {
		return err
	}
	t.pickupOPCode = pickup
	t.deliveryOPCode = delivery
	t.currentOPCode = current
	return nil
}

// setStatus validates and sets the lifecycle state.
func (t *Task) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

// setCourierID validates the optional courier binding.
func (t *Task) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	t.courierID = courierID
	return nil
}

// setRequiredLevel validates and sets the minimum claiming level.
func (t *Task) setRequiredLevel(level courier.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}
	t.requiredLevel = level
	return nil
}

// setPriority validates and sets the delivery urgency.
func (t *Task) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	t.priority = priority
	return nil
}
