// Package notifier delivers booking and cancellation notifications over
// SMTP, a Redis-backed queue, AMQP, or the log.
package notifier

import (
	"context"
	"fmt"
	"io"

	"lets-heal/internal/adapter"
	"lets-heal/internal/config"
	"lets-heal/internal/domain"
	"lets-heal/internal/queue"

	"go.uber.org/zap"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the notifier selected by cfg.Transport. The returned closer
// releases transport resources and is never nil.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (domain.Notifier, io.Closer, error) {
	n := cfg.Notification
	switch n.Transport {
	case config.TransportSMTP:
		return NewSMTPNotifier(n.SMTP, n.From), nopCloser{}, nil
	case config.TransportRedis:
		client, err := queue.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewQueueNotifier(adapter.NewRedisQueueAdapter(client, QueueKey(n.Queue))), client, nil
	case config.TransportAMQP:
		a, err := NewAMQPNotifier(n.AMQP.URL, n.AMQP.Exchange)
		if err != nil {
			return nil, nil, err
		}
		return a, a, nil
	case config.TransportLog:
		return NewLogNotifier(logger), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported notification transport %q", n.Transport)
	}
}

// QueueKey returns the configured Redis list name or the default one.
func QueueKey(cfg config.QueueConfig) string {
	if cfg.Key != "" {
		return cfg.Key
	}
	return queue.NotificationQueueKey("email")
}
