package jobs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/service"
)

const defaultJobTimeout = 10 * time.Minute

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	metrics  *Metrics
	timeout  time.Duration
	jobs     map[string]func() error
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Reminders service.ReminderService
}

// NewJobRunner creates a new job runner. A nil metrics disables instrumentation.
func NewJobRunner(services *Services, metrics *Metrics) *JobRunner {
	jr := &JobRunner{
		services: services,
		metrics:  metrics,
		timeout:  defaultJobTimeout,
	}
	jr.jobs = map[string]func() error{
		JobDispatchPaymentReminders: jr.DispatchPaymentReminders,
	}
	return jr
}

// runWithRecovery wraps job execution with panic recovery and metrics
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) (err error) {
	tracker := jr.metrics.Track(jobName)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = fmt.Errorf("job %s panicked: %v", jobName, r)
		}
		_ = tracker.End(err)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
	defer cancel()

	log := logger.WithJob(jobName)
	log.Info("Starting job")
	if err = jobFunc(ctx); err != nil {
		log.Error("Job failed", "error", err)
		return err
	}
	log.Info("Job completed")
	return nil
}

// RunJob runs a registered job by name (for manual execution)
func (jr *JobRunner) RunJob(name string) error {
	job, ok := jr.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job %q", name)
	}
	return job()
}

// JobNames lists the jobs RunJob accepts.
func (jr *JobRunner) JobNames() []string {
	names := make([]string, 0, len(jr.jobs))
	for name := range jr.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
