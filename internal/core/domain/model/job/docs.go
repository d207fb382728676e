// Package job provides domain entities and business logic for job management
// in the matching system. It implements the Job aggregate root with lifecycle
// management, state transitions and time-gated location disclosure.
//
// The package includes:
//   - Job: The aggregate root that manages job identity, properties, and lifecycle
//   - Status: A state machine that enforces valid job status transitions
//
// Key business rules:
//   - Jobs must have a valid unique identifier, poster, location, address,
//     category and a non-negative budget
//   - Job status follows a defined workflow: Pending -> InProgress -> Completed,
//     with cancellation possible from either non-terminal state
//   - Accepting a job assigns the worker atomically with the status change;
//     a second accept fails and leaves the assignment unchanged
//   - The exact location is revealed to the assigned worker three hours before
//     the scheduled start, computed from the deadline date and timeStart clock
//   - A completed job accepts exactly one rating/review pair
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package job
