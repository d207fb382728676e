// Package jobs provides scheduled background tasks for the job matching system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. RatingReconciliationJob - Runs nightly to recompute every worker's rating from their reviewed jobs
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileRatingsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reconciliation job uses the cron expression "0 0 3 * * *" to run once a
// night at 03:00. Ratings are maintained synchronously at review submission;
// the nightly pass only repairs drift, so low frequency is sufficient.
//
// # Error Handling
//
// Per-worker reconciliation failures are logged and skipped inside the
// handler; only pass-level failures surface to the job log.
package jobs
