package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stocksense/advisor/pkg/logger"
)

// jobTimeout bounds a single scheduled run.
const jobTimeout = 10 * time.Minute

// Scheduler runs the report job on a cron schedule.
type Scheduler struct {
	job      *Job
	schedule string
	cron     *cron.Cron
}

// NewScheduler creates a scheduler. schedule is a standard 5-field cron
// expression; an empty schedule disables in-process runs.
func NewScheduler(job *Job, schedule string) *Scheduler {
	return &Scheduler{
		job:      job,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the schedule and starts the cron loop in the background.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.schedule == "" {
		logger.Info("report schedule empty, in-process reports disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()

		if err := s.job.Run(runCtx); err != nil {
			logger.Error("scheduled report run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid report schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	logger.Info("report scheduler started", zap.String("schedule", s.schedule))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	logger.Info("report scheduler stopped")
}
