// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the job matching system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - JobMatcher: Pairs jobs with workers, with a fuzzy mode for notification
//     fan-out and a strict mode for proximity listings
//   - DisclosureGate: Decides whether a requester may see a job's exact location
//   - RatingAggregator: Recomputes a worker's aggregate rating from rated jobs
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
