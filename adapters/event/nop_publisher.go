package event

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/application/service"
)

// NopPublisher drops every event. Used when no Kafka brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, service.ContentEvent) error {
	return nil
}
