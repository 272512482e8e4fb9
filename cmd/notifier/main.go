package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"lets-heal/internal/adapter"
	"lets-heal/internal/adapter/notifier"
	"lets-heal/internal/config"
	"lets-heal/internal/logger"
	"lets-heal/internal/queue"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// The notifier drains the Redis notification queue filled by the API when
// notification.transport is "redis" and delivers each message over SMTP.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := queue.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	key := notifier.QueueKey(cfg.Notification.Queue)
	notificationQueue := adapter.NewRedisQueueAdapter(redisClient, key)
	sender := notifier.NewSMTPNotifier(cfg.Notification.SMTP, cfg.Notification.From)

	workers := cfg.Notification.Queue.Workers
	if workers < 1 {
		workers = 1
	}
	if pending, err := notificationQueue.Len(ctx); err == nil {
		appLogger.Info("Starting notification workers",
			zap.String("queue", key),
			zap.Int("workers", workers),
			zap.Int64("pending", pending))
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		worker := notifier.NewWorker(notificationQueue, sender, appLogger.With(zap.Int("worker", i)))
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		appLogger.Error("Notification worker stopped with error", zap.Error(err))
	}
	appLogger.Info("Notifier exited gracefully")
}
