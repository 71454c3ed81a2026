package jobs

import (
	"context"
	"errors"
	"log/slog"

	"partsflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LeadAssignmentJob periodically sweeps unassigned orders and distributes
// them across the agent rotation.
type LeadAssignmentJob struct {
	handler commands.AssignLeadsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLeadAssignmentJob creates a job that runs the lead assignment sweep
// every minute.
func NewLeadAssignmentJob(handler commands.AssignLeadsCommandHandler, logger *slog.Logger) *LeadAssignmentJob {
	return &LeadAssignmentJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "lead_assignment_job"),
	}
}

// Start begins the lead assignment job.
func (j *LeadAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignLeadsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A missing rotation is an expected state until an admin sets one up.
			if !errors.Is(err, commands.ErrNoRotationConfigured) {
				j.logger.ErrorContext(ctx, "Lead assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Lead assignment job started (running every minute)")
	return nil
}

// Stop stops the lead assignment job.
func (j *LeadAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Lead assignment job stopped")
}
