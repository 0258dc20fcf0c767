package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ContentEvent announces that a portfolio record changed.
type ContentEvent struct {
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, evt ContentEvent) error
}

// PublishAsync sends evt in the background. The request that triggered it
// has already succeeded, so failures are only logged.
func PublishAsync(pub EventPublisher, log logger.Logger, evt ContentEvent) {
	if pub == nil {
		return
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	go func() {
		if err := pub.Publish(context.Background(), evt); err != nil {
			log.Error("Failed to publish content event", err,
				zap.String("resource", evt.Resource),
				zap.String("action", evt.Action),
				zap.String("id", evt.ID),
			)
		}
	}()
}
