package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lets-heal/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisQueueAdapter implements domain.NotificationQueue on a Redis list.
// Producers LPUSH and consumers BRPOP, so delivery is FIFO.
type RedisQueueAdapter struct {
	client *redis.Client
	key    string
}

// NewRedisQueueAdapter creates a new instance of RedisQueueAdapter.
// It expects a connected *redis.Client.
func NewRedisQueueAdapter(client *redis.Client, key string) domain.NotificationQueue {
	return &RedisQueueAdapter{client: client, key: key}
}

// Push appends a notification to the queue.
func (r *RedisQueueAdapter) Push(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := r.client.LPush(ctx, r.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push notification to %s: %w", r.key, err)
	}
	return nil
}

// Pop waits up to timeout for the oldest notification.
func (r *RedisQueueAdapter) Pop(ctx context.Context, timeout time.Duration) (*domain.Notification, error) {
	res, err := r.client.BRPop(ctx, timeout, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop notification from %s: %w", r.key, err)
	}
	// BRPOP replies with [key, value]
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected BRPOP reply of length %d", len(res))
	}
	var n domain.Notification
	if err := json.Unmarshal([]byte(res[1]), &n); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	return &n, nil
}

// Len reports how many notifications are waiting.
func (r *RedisQueueAdapter) Len(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, r.key).Result()
}
