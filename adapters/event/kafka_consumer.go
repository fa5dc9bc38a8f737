package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/internal/config"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

// MessageReader is the subset of *kafka.Reader the consume loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

func NewKafkaReader(cfg config.Config, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    topic,
		GroupID:  cfg.Kafka.GroupID + "-" + topic,
		MinBytes: 10e3,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
}

var (
	retryBackoff    = time.Second
	maxRetryBackoff = 30 * time.Second
)

// Consume decodes every message on r as T and passes it to handle until ctx
// is cancelled. Undecodable messages are committed and skipped. A message
// whose handler fails is retried with backoff and is never committed or
// passed over until it succeeds.
func Consume[T any](ctx context.Context, r MessageReader, log logger.Logger, handle func(context.Context, T) error) error {
	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error("Failed to read message from Kafka", err)
			if !sleep(ctx, time.Second) {
				return nil
			}
			continue
		}

		l := log.With(zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)), zap.Int64("offset", msg.Offset))
		l.Info("Received message")

		var payload T
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			l.Error("Failed to unmarshal event, skipping", err)
			commitMessage(ctx, r, msg, l)
			continue
		}

		if !handleWithRetry(ctx, payload, handle, l) {
			return nil
		}

		commitMessage(ctx, r, msg, l)
	}
}

// handleWithRetry reports false when ctx ended before handle succeeded.
func handleWithRetry[T any](ctx context.Context, payload T, handle func(context.Context, T) error, log logger.Logger) bool {
	wait := retryBackoff
	for attempt := 1; ; attempt++ {
		err := handle(ctx, payload)
		if err == nil {
			return true
		}
		log.Error("Failed to process event, retrying", err, zap.Int("attempt", attempt), zap.Duration("backoff", wait))
		if !sleep(ctx, wait) {
			return false
		}
		wait = min(wait*2, maxRetryBackoff)
	}
}

func commitMessage(ctx context.Context, r MessageReader, msg kafka.Message, log logger.Logger) {
	if err := r.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
