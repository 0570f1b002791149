// Package worker runs the periodic deadline and cycle-closing sweeps.
package worker

import (
	"context"
	"fmt"
	"time"

	"workflow-portal-backend/internal/logger"
	"workflow-portal-backend/internal/service"

	"github.com/getsentry/sentry-go"
)

// Job is one named sweep
type Job struct {
	Name string
	Run  func(ctx context.Context, now time.Time) (int, error)
}

// Scheduler runs the sweep jobs on a fixed interval
type Scheduler struct {
	interval time.Duration
	jobs     []Job
	now      func() time.Time
	log      *logger.Logger
}

// NewScheduler builds the scheduler with the deadline reminder, missed deadline
// and auto-close jobs, in that order
func NewScheduler(workCycles service.WorkCycleServiceInterface, notifications service.NotificationServiceInterface, interval time.Duration, reminderDays int) *Scheduler {
	return &Scheduler{
		interval: interval,
		now:      time.Now,
		log:      logger.Component("scheduler"),
		jobs: []Job{
			{
				Name: "deadline_reminders",
				Run: func(ctx context.Context, now time.Time) (int, error) {
					return notifications.RemindDeadlineNear(ctx, now, reminderDays)
				},
			},
			{
				Name: "missed_deadlines",
				Run: func(ctx context.Context, now time.Time) (int, error) {
					return notifications.NotifyMissedDeadlines(ctx, now)
				},
			},
			{
				Name: "auto_close_cycles",
				Run: func(ctx context.Context, _ time.Time) (int, error) {
					return workCycles.AutoCloseCompleted(ctx)
				},
			},
		},
	}
}

// Jobs returns the configured jobs
func (s *Scheduler) Jobs() []Job {
	return s.jobs
}

// Start runs every job once, then on each tick until ctx is cancelled
func (s *Scheduler) Start(ctx context.Context) {
	s.log.WithField("interval", s.interval.String()).Info("Scheduler started")
	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce runs every job in order; a failing job does not stop the rest.
// It returns the number of jobs that failed.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	now := s.now()
	failed := 0
	for _, job := range s.jobs {
		if ctx.Err() != nil {
			return failed
		}
		if err := s.run(ctx, job, now); err != nil {
			failed++
			s.log.WithError(err).WithField("job", job.Name).Error("Scheduled job failed")
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("job", job.Name)
				sentry.CaptureException(err)
			})
		}
	}
	return failed
}

func (s *Scheduler) run(ctx context.Context, job Job, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
	}()

	start := time.Now()
	count, err := job.Run(ctx, now)
	if err != nil {
		return err
	}
	s.log.WithFields(map[string]interface{}{
		"job":      job.Name,
		"affected": count,
		"duration": time.Since(start).String(),
	}).Debug("Scheduled job finished")
	return nil
}
