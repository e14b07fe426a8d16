// Package services provides stateless domain services of the letter delivery
// platform: operations that span multiple aggregates and therefore belong to
// neither of them.
//
// The package includes:
//   - PermissionResolver: answers capability questions from a courier's
//     managed scope and an OP code, in one place, so level thresholds are
//     never re-implemented per feature
//   - TaskMatcher: decides claim eligibility and produces the deterministic
//     claimable-task ordering
//
// Both services are pure: they consult only their inputs and never touch
// repositories or external state.
package services
