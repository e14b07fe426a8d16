// Package task provides the delivery-task aggregate of the letter delivery
// platform. A task tracks one physical letter from its pickup OP code to its
// delivery OP code through a strict lifecycle state machine.
//
// The package includes:
//   - Task: The aggregate root binding a letter, its route, and the claiming courier
//   - Status: The lifecycle state machine with its transition table
//   - Priority: The delivery priority used for deterministic task ordering
//
// Key business rules:
//   - A task is claimed exactly once; claim exclusivity is enforced by the
//     persistence layer's conditional update, not by this package
//   - Timestamps are set exactly once, on the transition that defines them
//   - Terminal tasks (delivered, failed, canceled) are immutable
package task
