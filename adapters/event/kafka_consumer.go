package event

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/revalidate"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ContentEventHandler interface {
	Execute(ctx context.Context, evt service.ContentEvent) error
}

const (
	DefaultMaxAttempts = 5
	DefaultRetryDelay  = time.Second
)

// ContentEventConsumer feeds content events to a handler one at a time.
// An event is committed only after it was handled or found malformed. When
// the handler keeps failing, Run returns and the offset stays uncommitted,
// so the group redelivers the event on the next start.
type ContentEventConsumer struct {
	reader      MessageReader
	handler     ContentEventHandler
	logger      logger.Logger
	MaxAttempts int
	RetryDelay  time.Duration
}

func NewContentEventConsumer(reader MessageReader, handler ContentEventHandler, log logger.Logger) *ContentEventConsumer {
	return &ContentEventConsumer{
		reader:      reader,
		handler:     handler,
		logger:      log,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// Run consumes until ctx is cancelled (nil) or an event exhausts its retries.
func (c *ContentEventConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		if err := c.handle(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := c.reader.CommitMessages(context.Background(), msg); err != nil {
			c.logger.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
		}
	}
}

func (c *ContentEventConsumer) handle(ctx context.Context, msg kafka.Message) error {
	evt, err := revalidate.Decode(msg.Value)
	if err != nil {
		c.logger.Warn("Skipping malformed content event",
			zap.String("key", string(msg.Key)),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return nil
	}

	maxAttempts := max(c.MaxAttempts, 1)
	for attempt := 1; ; attempt++ {
		err := c.handler.Execute(ctx, evt)
		if err == nil {
			return nil
		}
		if attempt >= maxAttempts {
			return fmt.Errorf("content event %s/%s at offset %d failed after %d attempts: %w",
				evt.Resource, evt.Action, msg.Offset, attempt, err)
		}

		c.logger.Warn("Retrying content event",
			zap.String("resource", evt.Resource),
			zap.String("id", evt.ID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		timer := time.NewTimer(c.RetryDelay * time.Duration(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
