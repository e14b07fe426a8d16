package courier

import (
	"errors"
	"fmt"

	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/pkg/errs"
	"letterpost/internal/pkg/guard"
)

// Domain errors for courier hierarchy operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrInvalidLevel is returned when a subordinate's level is not exactly one below its creator's.
	ErrInvalidLevel = errors.New("subordinate level must be exactly one below the parent level")
	// ErrPrefixOutOfScope is returned when a subordinate's prefix does not extend
	// the creator's prefix by exactly one segment.
	ErrPrefixOutOfScope = errors.New("subordinate prefix must extend the parent prefix by exactly one segment")
	// ErrParentIsRequired is returned when a non-root courier is created without a parent.
	ErrParentIsRequired = errs.NewValueIsRequiredError("parentID")
	// ErrRootHasParent is returned when a city-level courier is created with a parent.
	// City couriers are appointed out-of-band and are the roots of the hierarchy forest.
	ErrRootHasParent = errors.New("city-level couriers are hierarchy roots and cannot have a parent")
	// ErrCourierIsNotActive is returned when a pending or suspended courier
	// attempts a hierarchy operation.
	ErrCourierIsNotActive = errors.New("courier is not active")
)

// Courier represents one participant of the delivery hierarchy.
// It is an aggregate root holding the courier's level, the OP-code prefix
// scope the courier is authorized over, the link to the courier that
// appointed it, and its activation status.
//
// Key invariants:
//   - The managed prefix depth is fully determined by the level
//     (city manages one segment, building the full code)
//   - parent.level == self.level + 1; only city-level couriers have no parent
//   - The parent links form a forest of depth at most four
//
// Couriers are mutated through promotion approval and status transitions;
// they are never deleted.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// level is the courier's tier in the hierarchy
	level Level
	// managedPrefix is the OP-code scope the courier is authorized over
	managedPrefix kernel.Prefix
	// parentID is the courier that appointed this one, nil for city-level roots
	parentID *kernel.UUID
	// status is the courier's activation state
	status Status
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new active Courier with the specified parameters.
//
// Validation applied:
//   - id must be a valid UUID
//   - level must be one of the four hierarchy tiers
//   - managedPrefix depth must match the level's prefix depth
//   - parentID is required below city level and forbidden at city level
//
// City-level couriers are created this way by an external administrative
// action; everyone below enters through CreateSubordinate on their parent.
func NewCourier(id kernel.UUID, level Level, managedPrefix kernel.Prefix, parentID *kernel.UUID) (*Courier, error) {
	return RestoreCourier(id, level, managedPrefix, parentID, StatusActive)
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its status at the time of persistence. The restored courier
// behaves identically to one created through normal domain operations.
func RestoreCourier(
	id kernel.UUID,
	level Level,
	managedPrefix kernel.Prefix,
	parentID *kernel.UUID,
	status Status,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setScope(level, managedPrefix),
		c.setParentID(level, parentID),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Level returns the courier's hierarchy level.
func (c *Courier) Level() Level {
	return c.level
}

// ManagedPrefix returns the OP-code scope the courier is authorized over.
func (c *Courier) ManagedPrefix() kernel.Prefix {
	return c.managedPrefix
}

// ParentID returns the ID of the courier that appointed this one.
// Returns nil for city-level roots.
func (c *Courier) ParentID() *kernel.UUID {
	return c.parentID
}

// Status returns the courier's activation state.
func (c *Courier) Status() Status {
	return c.status
}

// IsActive reports whether the courier may currently act.
func (c *Courier) IsActive() bool {
	return c.status == StatusActive
}

// CreateSubordinate provisions a new courier one level below this one.
//
// Business rules:
//   - Only an active courier may appoint subordinates
//   - newLevel must be exactly one below this courier's level (ErrInvalidLevel)
//   - newPrefix must be a proper one-segment extension of this courier's
//     managed prefix (ErrPrefixOutOfScope)
//   - The subordinate starts active, or pending approval when the platform
//     review policy requires it (requireApproval is a policy decision of the
//     caller, not a hard-coded rule)
//
// Example:
//
//	zonePrefix, _ := kernel.NewPrefix("BJDX5F")
//	sub, err := schoolCourier.CreateSubordinate(kernel.NewUUID(), courier.LevelZone, zonePrefix, false)
//	if errors.Is(err, courier.ErrInvalidLevel) {
//	    // attempted to skip a tier
//	}
func (c *Courier) CreateSubordinate(
	id kernel.UUID,
	newLevel Level,
	newPrefix kernel.Prefix,
	requireApproval bool,
) (*Courier, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !c.IsActive() {
		return nil, ErrCourierIsNotActive
	}
	if err := newLevel.Validate(); err != nil {
		return nil, err
	}
	if newLevel != c.level-1 {
		return nil, ErrInvalidLevel
	}

	extends, err := newPrefix.IsDirectExtensionOf(c.managedPrefix)
	if err != nil {
		return nil, err
	}
	if !extends {
		return nil, ErrPrefixOutOfScope
	}

	status := StatusActive
	if requireApproval {
		status = StatusPendingApproval
	}

	parentID := c.id
	return RestoreCourier(id, newLevel, newPrefix, &parentID, status)
}

// ApplyPromotion updates the courier's level, managed prefix and parent
// link after an approved promotion review. The new prefix depth must match
// the new level; the new parent must satisfy the root rule for the new
// level. Authorization of the reviewer is the caller's responsibility; this
// method only enforces the scope/level consistency invariants.
func (c *Courier) ApplyPromotion(newLevel Level, newPrefix kernel.Prefix, newParentID *kernel.UUID) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := c.setScope(newLevel, newPrefix); err != nil {
		return err
	}
	return c.setParentID(newLevel, newParentID)
}

// Approve activates a courier that is pending approval.
func (c *Courier) Approve() error {
	if err := c.Validate(); err != nil {
		return err
	}

	newStatus, err := c.status.Approve()
	if err != nil {
		return err
	}
	c.status = newStatus
	return nil
}

// Suspend deactivates the courier. The record and its history are kept.
func (c *Courier) Suspend() error {
	if err := c.Validate(); err != nil {
		return err
	}

	newStatus, err := c.status.Suspend()
	if err != nil {
		return err
	}
	c.status = newStatus
	return nil
}

// Activate reinstates a suspended courier.
func (c *Courier) Activate() error {
	if err := c.Validate(); err != nil {
		return err
	}

	newStatus, err := c.status.Activate()
	if err != nil {
		return err
	}
	c.status = newStatus
	return nil
}

// setID validates and sets the courier's unique identifier.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setScope validates level and prefix together: the prefix depth must be the
// one the level owns.
func (c *Courier) setScope(level Level, managedPrefix kernel.Prefix) error {
	if err := errors.Join(level.Validate(), managedPrefix.Validate()); err != nil {
		return err
	}

	expectedDepth, err := level.PrefixDepth()
	if err != nil {
		return err
	}
	if managedPrefix.Depth() != expectedDepth {
		return errs.NewValueIsInvalidErrorWithCause("managed prefix",
			fmt.Errorf("%s level requires a depth-%d prefix, got depth %d",
				level, expectedDepth, managedPrefix.Depth()))
	}

	c.level = level
	c.managedPrefix = managedPrefix
	return nil
}

// setParentID enforces the root rule: city-level couriers have no parent,
// everyone else must have one.
func (c *Courier) setParentID(level Level, parentID *kernel.UUID) error {
	if level == LevelCity {
		if parentID != nil {
			return ErrRootHasParent
		}
		c.parentID = nil
		return nil
	}

	if parentID == nil {
		return ErrParentIsRequired
	}
	if err := parentID.Validate(); err != nil {
		return err
	}
	c.parentID = parentID
	return nil
}

// setStatus validates and sets the courier's activation state.
func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
