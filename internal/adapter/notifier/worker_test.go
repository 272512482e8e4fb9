package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lets-heal/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memQueue struct {
	mu      sync.Mutex
	items   []domain.Notification
	popErrs int
}

func (q *memQueue) Push(_ context.Context, n domain.Notification) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
	return nil
}

func (q *memQueue) Pop(ctx context.Context, timeout time.Duration) (*domain.Notification, error) {
	q.mu.Lock()
	if q.popErrs > 0 {
		q.popErrs--
		q.mu.Unlock()
		return nil, errors.New("connection refused")
	}
	if len(q.items) > 0 {
		n := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()
		return &n, nil
	}
	q.mu.Unlock()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(timeout):
		return nil, nil
	}
}

func (q *memQueue) Len(context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.items)), nil
}

type recordingSender struct {
	mu   sync.Mutex
	sent []domain.Notification
	fail map[string]bool
	done chan struct{}
	want int
}

func (r *recordingSender) Send(_ context.Context, n domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	if len(r.sent) == r.want {
		close(r.done)
	}
	if r.fail[n.Recipient] {
		return errors.New("smtp unavailable")
	}
	return nil
}

func TestWorker_Run(t *testing.T) {
	q := &memQueue{popErrs: 1}
	ctx := context.Background()
	for _, r := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_ = q.Push(ctx, domain.Notification{Subject: "Appointment Confirmation", Recipient: r})
	}
	sender := &recordingSender{fail: map[string]bool{"b@example.com": true}, done: make(chan struct{}), want: 3}

	w := NewWorker(q, sender, zap.NewNop())
	w.pollTimeout = 10 * time.Millisecond
	w.backoff = time.Millisecond

	runCtx, cancel := context.WithCancel(ctx)
	finished := make(chan error, 1)
	go func() { finished <- w.Run(runCtx) }()

	select {
	case <-sender.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not deliver all notifications")
	}
	cancel()

	select {
	case err := <-finished:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}

	sender.mu.Lock()
	defer sender.mu.Unlock()
	recipients := make([]string, 0, len(sender.sent))
	for _, n := range sender.sent {
		recipients = append(recipients, n.Recipient)
	}
	assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, recipients)
}
