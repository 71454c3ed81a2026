package jobs

import (
	"context"
	"log/slog"

	"partsflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RefundReminderJob reports outstanding vendor refunds once a day so money
// owed after cancellations does not silently go stale.
type RefundReminderJob struct {
	handler queries.GetPendingRefundsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRefundReminderJob creates a job that logs the pending refund report
// every morning at 09:00.
func NewRefundReminderJob(handler queries.GetPendingRefundsQueryHandler, logger *slog.Logger) *RefundReminderJob {
	return &RefundReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "refund_reminder_job"),
	}
}

// Start begins the refund reminder job.
func (j *RefundReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 9 * * *", func() {
		ctx := context.Background()

		report, err := j.handler.Handle(ctx, queries.NewGetPendingRefundsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Refund reminder job failed", "error", err)
			return
		}
		if len(report.Refunds) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Vendor refunds outstanding",
			"count", len(report.Refunds),
			"total_owed_cents", report.TotalOwedCents,
		)
		for _, refund := range report.Refunds {
			j.logger.InfoContext(ctx, "Pending refund",
				"entry_id", refund.EntryID.String(),
				"vendor", refund.VendorBusinessName,
				"amount_cents", refund.AmountCents,
				"since", refund.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Refund reminder job started (running daily at 09:00)")
	return nil
}

// Stop stops the refund reminder job.
func (j *RefundReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Refund reminder job stopped")
}
