// Package jobs provides scheduled background tasks for the letter delivery platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. ClaimReleaseJob - Runs every minute to return tasks with stale claims to
// the available pool so other couriers can pick them up
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseStaleClaimsHandler, claimTTL, logger)
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
// The claim release job uses the cron expression "0 * * * * *", running at
// the top of every minute. Claims are judged stale against the configured
// TTL, so the sweep frequency only bounds how quickly a stale task returns
// to the pool, not how long claims live.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - A task whose courier made progress mid-sweep is skipped, never force-released
// - Failed job starts will stop any already running jobs
package jobs
