// Package jobs provides scheduled background tasks for the delivery order
// tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. TokenCleanupJob - Runs hourly to purge expired password reset tokens
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, logger)
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
// The cleanup job uses the cron expression "0 0 * * * *", the top of every
// hour. Reset tokens live for one hour, so an hourly sweep keeps the table
// bounded without racing active tokens.
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next tick. A run that
// removes nothing is normal and logs nothing.
package jobs
