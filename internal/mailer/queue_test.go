package mailer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSender struct {
	mu       sync.Mutex
	sent     []Email
	failures int // fail this many sends before succeeding
}

func (f *fakeSender) Send(ctx context.Context, email Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("delivery refused")
	}
	f.sent = append(f.sent, email)
	return nil
}

func (f *fakeSender) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func TestQueue_DeliversEnqueuedEmail(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{}
	queue := NewQueue(sender, 1, 10, 3)
	queue.Start(ctx)

	err := queue.Enqueue(Email{To: "asha@example.com", Subject: "Tractor Registration Successful"})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return sender.sentCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "asha@example.com", sender.sent[0].To)
}

func TestQueue_RetriesThenDelivers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{failures: 1}
	queue := NewQueue(sender, 1, 10, 3)
	queue.Start(ctx)

	assert.NoError(t, queue.Enqueue(Email{To: "asha@example.com"}))

	// First attempt fails; the retry fires after ~1s of backoff.
	assert.Eventually(t, func() bool {
		return sender.sentCount() == 1
	}, 5*time.Second, 50*time.Millisecond)
	assert.Empty(t, queue.DeadLetters())
}

func TestQueue_DeadLettersAfterRetriesExhausted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{failures: 100}
	queue := NewQueue(sender, 1, 10, 0) // no retries
	queue.Start(ctx)

	assert.NoError(t, queue.Enqueue(Email{To: "asha@example.com"}))

	assert.Eventually(t, func() bool {
		return len(queue.DeadLetters()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, sender.sentCount())
}

func TestQueue_RedeliverDeadLetters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{failures: 1}
	queue := NewQueue(sender, 1, 10, 0)
	queue.Start(ctx)

	assert.NoError(t, queue.Enqueue(Email{To: "asha@example.com"}))
	assert.Eventually(t, func() bool {
		return len(queue.DeadLetters()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Sender recovered; redelivery drains the dead letters.
	requeued := queue.RedeliverDeadLetters()
	assert.Equal(t, 1, requeued)

	assert.Eventually(t, func() bool {
		return sender.sentCount() == 1 && len(queue.DeadLetters()) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestQueue_EnqueueFailsWhenFull(t *testing.T) {
	// No workers started: the channel fills up.
	queue := NewQueue(&fakeSender{}, 0, 1, 3)

	assert.NoError(t, queue.Enqueue(Email{To: "first@example.com"}))
	err := queue.Enqueue(Email{To: "second@example.com"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "queue is full")
}
