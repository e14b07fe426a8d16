// Package courier provides domain entities and business logic for the
// volunteer courier hierarchy of the letter delivery platform. It implements
// the Courier aggregate root with hierarchy levels, managed address scopes,
// and subordinate provisioning.
//
// The package includes:
//   - Courier: The aggregate root holding level, managed prefix, parent link and status
//   - Level: The four-tier hierarchy level (1 = building ... 4 = city)
//   - Status: The courier activation state machine (pending approval, active, suspended)
//
// Key business rules:
//   - A courier's managed prefix depth is fully determined by its level
//   - A subordinate is exactly one level below its creator and its prefix
//     extends the creator's prefix by exactly one segment
//   - Level-4 couriers are roots appointed out-of-band and have no parent
//   - Couriers are never deleted, only suspended
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
