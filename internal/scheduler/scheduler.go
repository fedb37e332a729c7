package scheduler

import (
	"fmt"
	"time"

	"github.com/kidiezyllex/real-estate-BE/internal/jobs"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/robfig/cron/v3"
)

// DefaultReminderSpec fires daily at 08:00 business time.
const DefaultReminderSpec = "0 0 8 * * *"

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler that triggers the reminder job on reminderSpec, a
// six-field cron expression evaluated in loc.
func NewScheduler(jobRunner *jobs.JobRunner, reminderSpec string, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	if reminderSpec == "" {
		reminderSpec = DefaultReminderSpec
	}
	// Seconds precision, matching the config format
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}
	if err := s.registerJobs(reminderSpec); err != nil {
		return nil, err
	}
	return s, nil
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs(reminderSpec string) error {
	_, err := s.cron.AddFunc(reminderSpec, func() {
		// Failures are already logged and counted by the runner.
		_ = s.jobs.DispatchPaymentReminders()
	})
	if err != nil {
		logger.Error("Failed to register DispatchPaymentReminders job", "spec", reminderSpec, "error", err)
		return fmt.Errorf("invalid reminder schedule %q: %w", reminderSpec, err)
	}

	logger.Info("All cron jobs registered successfully", "reminders", reminderSpec)
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// NextRun reports when the reminder job fires next, zero before Start.
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// IsRunning returns true if the scheduler has jobs registered
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
