package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"greenfield-hub-backend/internal/logger"

	"github.com/google/uuid"
)

// Job is an email queued for asynchronous delivery.
type Job struct {
	ID        string
	Email     Email
	Retries   int
	CreatedAt time.Time
}

// Queue is a bounded in-process delivery queue. Enqueue never blocks the
// caller: a full queue drops the job with a log line. Delivery failures are
// retried with exponential backoff; jobs that exhaust their retries land in
// the dead-letter list and can be redelivered later.
type Queue struct {
	sender     Sender
	jobs       chan Job
	maxRetries int
	workers    int

	mu   sync.Mutex
	dead []Job

	log *slog.Logger
}

func NewQueue(sender Sender, workers, queueSize, maxRetries int) *Queue {
	return &Queue{
		sender:     sender,
		jobs:       make(chan Job, queueSize),
		maxRetries: maxRetries,
		workers:    workers,
		log:        logger.WithService("mailer"),
	}
}

// Start launches the delivery workers. They stop when ctx is cancelled.
func (q *Queue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		go q.worker(ctx, i)
	}
}

func (q *Queue) worker(ctx context.Context, id int) {
	q.log.Info("email worker started", "worker", id)
	for {
		select {
		case <-ctx.Done():
			q.log.Info("email worker stopping", "worker", id)
			return
		case job := <-q.jobs:
			q.processJob(ctx, job)
		}
	}
}

func (q *Queue) processJob(ctx context.Context, job Job) {
	err := q.sender.Send(ctx, job.Email)
	if err == nil {
		q.log.Info("email sent", "job", job.ID, "to", job.Email.To)
		return
	}

	q.log.Warn("email delivery failed", "job", job.ID, "to", job.Email.To, "error", err)
	if job.Retries < q.maxRetries {
		job.Retries++
		backoff := time.Duration(job.Retries*job.Retries) * time.Second
		q.log.Info("retrying email", "job", job.ID, "in", backoff, "attempt", job.Retries, "max", q.maxRetries)
		time.AfterFunc(backoff, func() {
			select {
			case q.jobs <- job:
			default:
				q.addDeadLetter(job)
			}
		})
		return
	}

	q.log.Error("email failed after retries", "job", job.ID, "to", job.Email.To, "retries", job.Retries)
	q.addDeadLetter(job)
}

// Enqueue adds an email to the queue without blocking.
func (q *Queue) Enqueue(email Email) error {
	job := Job{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return fmt.Errorf("email queue is full")
	}
}

func (q *Queue) addDeadLetter(job Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dead = append(q.dead, job)
}

// DeadLetters returns a snapshot of the jobs that exhausted their retries.
func (q *Queue) DeadLetters() []Job {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Job, len(q.dead))
	copy(out, q.dead)
	return out
}

// RedeliverDeadLetters re-enqueues dead-lettered jobs with a fresh retry
// budget and returns how many were requeued. Jobs that do not fit back on
// the queue stay dead.
func (q *Queue) RedeliverDeadLetters() int {
	q.mu.Lock()
	pending := q.dead
	q.dead = nil
	q.mu.Unlock()

	requeued := 0
	var still []Job
	for _, job := range pending {
		job.Retries = 0
		select {
		case q.jobs <- job:
			requeued++
		default:
			still = append(still, job)
		}
	}

	if len(still) > 0 {
		q.mu.Lock()
		q.dead = append(q.dead, still...)
		q.mu.Unlock()
	}
	if requeued > 0 {
		q.log.Info("dead letters requeued", "count", requeued, "remaining", len(still))
	}
	return requeued
}
