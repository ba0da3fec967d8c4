package nats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abgdnv/inventory/pkg/config"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// MessageHandler processes one message. A returned error is logged and the watch continues.
type MessageHandler func(ctx context.Context, msg jetstream.Msg) error

// Watch follows cfg.Subject on cfg.Stream with an ordered consumer and passes each message
// to handle until ctx is done. Only new messages are delivered unless cfg.DeliverAll is set.
func Watch(ctx context.Context, js jetstream.JetStream, cfg config.SubscriberConfig, logger *slog.Logger, handle MessageHandler) error {
	deliver := jetstream.DeliverNewPolicy
	if cfg.DeliverAll {
		deliver = jetstream.DeliverAllPolicy
	}
	consumer, err := js.OrderedConsumer(ctx, cfg.Stream, jetstream.OrderedConsumerConfig{
		FilterSubjects: []string{cfg.Subject},
		DeliverPolicy:  deliver,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer on %s: %w", cfg.Stream, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch, err := consumer.Fetch(cfg.Batch, jetstream.FetchMaxWait(cfg.Timeout))
		if err != nil {
			if errors.Is(err, nats.ErrTimeout) {
				continue
			}
			logger.ErrorContext(ctx, "failed to fetch messages", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.Interval):
			}
			continue
		}
		for msg := range batch.Messages() {
			if err := handle(ctx, msg); err != nil {
				logger.ErrorContext(ctx, "failed to handle message", "subject", msg.Subject(), "error", err)
			}
		}
		if err := batch.Error(); err != nil && !errors.Is(err, nats.ErrTimeout) && ctx.Err() == nil {
			logger.WarnContext(ctx, "fetch finished with error", "error", err)
		}
	}
}
