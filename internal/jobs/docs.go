// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order workflow.
//
// # Available Jobs
//
// 1. LeadAssignmentJob - Runs every minute to distribute unassigned orders across the agent rotation
// 2. RefundReminderJob - Runs daily at 09:00 to report vendor refunds still owed after cancellations
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignLeadsHandler, pendingRefundsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The assignment job ignores the expected no-rotation state; orders stay unassigned until agents join
// - The reminder job logs query failures and stays silent when nothing is owed
// - Failed job starts will stop any already running jobs
package jobs
