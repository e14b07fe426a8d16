package services

import (
	"errors"

	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
)

// Permissions is the capability set a courier holds over one addressed
// entity. Absence of a permission is expressed as false, never as an error:
// permission checks run on every list and render path and must stay cheap
// and total.
type Permissions struct {
	// CanView grants read access. Inside the courier's scope it is always
	// true; outside it is true only for entities marked public (read-only
	// situational awareness of the wider network).
	CanView bool
	// CanEdit grants mutation of entities at or below the courier's managed
	// depth. A courier never edits above its own depth.
	CanEdit bool
	// CanCreate grants provisioning of entities exactly one segment depth
	// below the courier's own, i.e. addresses for its immediate subordinate
	// scope.
	CanCreate bool
	// CanDelete mirrors CanEdit.
	CanDelete bool
	// CanBatch grants batch operations, available from zone level upward.
	CanBatch bool
}

// PermissionResolver is the single place where a courier's managed scope and
// level are turned into concrete capabilities. All level-gated behavior in
// the platform is expressed through this resolver instead of per-feature
// level switches.
//
// The model is two-tier: scoped access (prefix containment) versus
// public-read access (explicit public marking). Public visibility never
// grants any acting capability.
//
// Example usage:
//
//	resolver := services.NewPermissionResolver()
//	perms, err := resolver.Resolve(zoneCourier, pickupCode, task.IsPublic())
//	if err != nil {
//	    // a zero-value courier or code reached the resolver
//	}
//	if perms.CanView {
//	    // render the task
//	}
type PermissionResolver struct{}

// NewPermissionResolver creates a new PermissionResolver instance.
func NewPermissionResolver() PermissionResolver {
	return PermissionResolver{}
}

// Resolve computes the capability set a courier holds over a fully addressed
// entity (a complete OP code). public marks entities with read-only global
// visibility.
//
// Errors are returned only for improperly constructed inputs; a valid
// courier outside the entity's scope simply gets an all-false set (plus
// public view where applicable).
func (r PermissionResolver) Resolve(c *courier.Courier, code kernel.OPCode, public bool) (Permissions, error) {
	if err := errors.Join(c.Validate(), code.Validate()); err != nil {
		return Permissions{}, err
	}

	covered, err := c.ManagedPrefix().Covers(code)
	if err != nil {
		return Permissions{}, err
	}

	return r.resolveDepth(c, covered, code.Depth(), public), nil
}

// ResolveScope computes the capability set a courier holds over a scope
// entity addressed by a prefix (a zone or school scope rather than a single
// point). Same rules as Resolve with the entity depth taken from the prefix.
func (r PermissionResolver) ResolveScope(c *courier.Courier, scope kernel.Prefix, public bool) (Permissions, error) {
	if err := errors.Join(c.Validate(), scope.Validate()); err != nil {
		return Permissions{}, err
	}

	covered, err := c.ManagedPrefix().CoversPrefix(scope)
	if err != nil {
		return Permissions{}, err
	}

	return r.resolveDepth(c, covered, scope.Depth(), public), nil
}

// resolveDepth applies the capability thresholds given containment and the
// entity's segment depth. The courier's own depth comes from its managed
// prefix; entities above that depth belong to superiors and are view-only.
func (r PermissionResolver) resolveDepth(c *courier.Courier, covered bool, entityDepth int, public bool) Permissions {
	if !covered {
		return Permissions{CanView: public}
	}

	courierDepth := c.ManagedPrefix().Depth()
	atOrBelow := entityDepth >= courierDepth

	return Permissions{
		CanView:   true,
		CanEdit:   atOrBelow,
		CanDelete: atOrBelow,
		CanCreate: entityDepth == courierDepth+1,
		CanBatch:  c.Level().CanBatch(),
	}
}
