package scheduler

import (
	"time"

	"greenfield-hub-backend/internal/logger"
	"greenfield-hub-backend/internal/mailer"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron  *cron.Cron
	queue *mailer.Queue
}

// NewScheduler creates a scheduler over the mail queue. redeliverSpec is a
// cron expression with seconds precision.
func NewScheduler(queue *mailer.Queue, redeliverSpec string) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:  c,
		queue: queue,
	}

	if _, err := c.AddFunc(redeliverSpec, s.redeliverDeadLetters); err != nil {
		logger.Error("Failed to register dead-letter redelivery job", "error", err, "spec", redeliverSpec)
	}

	return s
}

func (s *Scheduler) redeliverDeadLetters() {
	if n := s.queue.RedeliverDeadLetters(); n > 0 {
		logger.Info("Redelivered dead-lettered emails", "count", n)
	}
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
