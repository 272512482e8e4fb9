package notifier

import (
	"context"

	"lets-heal/internal/domain"

	"go.uber.org/zap"
)

// LogNotifier only logs notifications. Used in development.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send implements domain.Notifier
func (l *LogNotifier) Send(_ context.Context, n domain.Notification) error {
	l.logger.Info("Notification",
		zap.String("recipient", n.Recipient),
		zap.String("subject", n.Subject),
		zap.String("body", n.Body))
	return nil
}
