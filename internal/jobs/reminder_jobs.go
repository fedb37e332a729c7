package jobs

import (
	"context"

	"github.com/kidiezyllex/real-estate-BE/internal/logger"
)

const JobDispatchPaymentReminders = "dispatch-payment-reminders"

// DispatchPaymentReminders notifies guests of payments whose reminder date is today
func (jr *JobRunner) DispatchPaymentReminders() error {
	return jr.runWithRecovery(JobDispatchPaymentReminders, func(ctx context.Context) error {
		result, err := jr.services.Reminders.DispatchReminders(ctx)
		if err != nil {
			return err
		}

		failed := result.Count - result.Notified - result.Skipped
		jr.metrics.AddReminders("notified", result.Notified)
		jr.metrics.AddReminders("skipped", result.Skipped)
		jr.metrics.AddReminders("failed", failed)

		logger.WithJob(JobDispatchPaymentReminders).Info("Payment reminders processed",
			"count", result.Count,
			"notified", result.Notified,
			"skipped", result.Skipped,
			"failed", failed)
		return nil
	})
}
