package jobs

import (
	"fmt"
	"log/slog"

	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	leadAssignmentJob *LeadAssignmentJob
	refundReminderJob *RefundReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignLeadsHandler commands.AssignLeadsCommandHandler,
	pendingRefundsHandler queries.GetPendingRefundsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		leadAssignmentJob: NewLeadAssignmentJob(assignLeadsHandler, logger),
		refundReminderJob: NewRefundReminderJob(pendingRefundsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.leadAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start lead assignment job: %w", err)
	}

	if err := jm.refundReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.leadAssignmentJob.Stop()
		return fmt.Errorf("failed to start refund reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.leadAssignmentJob.Stop()
	jm.refundReminderJob.Stop()
}
