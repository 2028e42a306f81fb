package notifications

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Queue операции Redis, используемые очередью писем
type Queue interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	LLen(ctx context.Context, key string) *redis.IntCmd
}

// QueueMetrics метрика длины очереди писем
type QueueMetrics interface {
	SetEmailQueueLength(n int64)
}

// Sender доставка письма
type Sender interface {
	Send(to, subject, body string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
