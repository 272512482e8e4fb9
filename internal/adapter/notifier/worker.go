package notifier

import (
	"context"
	"errors"
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/metrics"

	"go.uber.org/zap"
)

const (
	defaultPollTimeout = 5 * time.Second
	popErrorBackoff    = time.Second
)

// Worker drains a notification queue into a delivering notifier.
type Worker struct {
	queue       domain.NotificationQueue
	sender      domain.Notifier
	logger      *zap.Logger
	pollTimeout time.Duration
	backoff     time.Duration
}

func NewWorker(queue domain.NotificationQueue, sender domain.Notifier, logger *zap.Logger) *Worker {
	return &Worker{
		queue:       queue,
		sender:      sender,
		logger:      logger,
		pollTimeout: defaultPollTimeout,
		backoff:     popErrorBackoff,
	}
}

// Run pops and delivers notifications until ctx is cancelled. A failed
// delivery is logged and dropped.
func (w *Worker) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		n, err := w.queue.Pop(ctx, w.pollTimeout)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			w.logger.Warn("Failed to pop notification", zap.Error(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(w.backoff):
			}
			continue
		}
		if n == nil {
			continue
		}

		if err := w.sender.Send(ctx, *n); err != nil {
			metrics.Notifications.WithLabelValues(metrics.OutcomeFailure).Inc()
			w.logger.Error("Failed to deliver notification",
				zap.String("recipient", n.Recipient),
				zap.String("subject", n.Subject),
				zap.Error(err))
			continue
		}
		metrics.Notifications.WithLabelValues(metrics.OutcomeSuccess).Inc()
		w.logger.Debug("Notification delivered", zap.String("recipient", n.Recipient))
	}
}
