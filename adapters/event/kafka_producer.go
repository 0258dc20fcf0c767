package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// KafkaProducerClient publishes content events keyed by resource, so every
// change to one collection lands on the same partition in order.
type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer for content events
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.Kafka.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka producer successfully.", zap.Strings("brokers", brokers), zap.String("topic", cfg.Kafka.Topic))

	return &KafkaProducerClient{ContentEventsWriter: writer, logger: log}, nil
}

func (c *KafkaProducerClient) Publish(ctx context.Context, evt service.ContentEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal content event: %w", err)
	}
	err = c.ContentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.Resource),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write content event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		if err := c.ContentEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka producer")
}
