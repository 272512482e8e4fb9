package notifier

import (
	"context"

	"lets-heal/internal/domain"
)

// QueueNotifier defers delivery to the notifier worker through a queue.
type QueueNotifier struct {
	queue domain.NotificationQueue
}

func NewQueueNotifier(queue domain.NotificationQueue) *QueueNotifier {
	return &QueueNotifier{queue: queue}
}

// Send implements domain.Notifier
func (q *QueueNotifier) Send(ctx context.Context, n domain.Notification) error {
	return q.queue.Push(ctx, n)
}
