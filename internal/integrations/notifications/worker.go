package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// MaxTries количество попыток отправки письма
	MaxTries = 3

	pollTimeout = 2 * time.Second

	defaultRetryDelay    = time.Second
	defaultMaxRetryDelay = 30 * time.Second
)

// Worker забирает письма из очереди и отправляет их через Sender.
// Неудачные письма возвращаются в очередь, после MaxTries попыток переносятся в <key>:failed.
// Пока очередь недоступна, опрос повторяется с растущей паузой.
type Worker struct {
	queue    Queue
	queueKey string
	sender   Sender
	metrics  QueueMetrics
	log      Logger

	retryDelay    time.Duration
	maxRetryDelay time.Duration
}

// NewWorker создает новый экземпляр Worker
func NewWorker(queue Queue, queueKey string, sender Sender, metrics QueueMetrics, log Logger) *Worker {
	if queueKey == "" {
		queueKey = DefaultQueueKey
	}
	return &Worker{
		queue:         queue,
		queueKey:      queueKey,
		sender:        sender,
		metrics:       metrics,
		log:           log,
		retryDelay:    defaultRetryDelay,
		maxRetryDelay: defaultMaxRetryDelay,
	}
}

// Run обрабатывает очередь до отмены ctx
func (w *Worker) Run(ctx context.Context) {
	w.log.Info("Notification worker started: queue=%s", w.queueKey)

	delay := w.retryDelay
	for {
		if ctx.Err() != nil {
			w.log.Info("Notification worker stopped")
			return
		}

		_, err := w.ProcessNext(ctx)
		if err == nil {
			delay = w.retryDelay
			continue
		}
		w.log.Warn("Notification queue unavailable, retry in %s: %v", delay, err)

		select {
		case <-ctx.Done():
			w.log.Info("Notification worker stopped")
			return
		case <-time.After(delay):
		}

		delay *= 2
		if delay > w.maxRetryDelay {
			delay = w.maxRetryDelay
		}
	}
}

// ProcessNext обрабатывает одно письмо. Возвращает false, если очередь пуста.
// Ошибка возвращается только при недоступной очереди.
func (w *Worker) ProcessNext(ctx context.Context) (bool, error) {
	result, err := w.queue.BRPop(ctx, pollTimeout, w.queueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			w.reportQueueLength(ctx)
			return false, nil
		}
		if ctx.Err() != nil {
			return false, nil
		}
		return false, err
	}
	defer w.reportQueueLength(ctx)

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		w.log.Error("Bad email job payload: %v", err)
		return true, nil
	}

	job.Tries++
	if err := w.sender.Send(job.To, job.Subject, job.Body); err != nil {
		w.log.Warn("Failed to send email: to=%s, attempt=%d, error=%v", job.To, job.Tries, err)
		if job.Tries < MaxTries {
			w.push(ctx, w.queueKey, job)
		} else {
			w.push(ctx, w.queueKey+":failed", failedJob{Job: job, Error: err.Error(), Failed: time.Now()})
			w.log.Error("Email moved to failed queue: to=%s", job.To)
		}
		return true, nil
	}

	w.log.Info("Email sent: to=%s", job.To)
	return true, nil
}

func (w *Worker) reportQueueLength(ctx context.Context) {
	length, err := w.queue.LLen(ctx, w.queueKey).Result()
	if err != nil {
		return
	}
	w.metrics.SetEmailQueueLength(length)
}

func (w *Worker) push(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		w.log.Error("Failed to marshal email job: %v", err)
		return
	}
	if err := w.queue.LPush(ctx, key, data).Err(); err != nil {
		w.log.Error("Failed to push email job: key=%s, error=%v", key, err)
	}
}
