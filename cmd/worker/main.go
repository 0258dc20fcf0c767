package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/adapters/webhook"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/revalidate"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

const serviceName = "portfolio-revalidator"

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio Revalidation Worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("KAFKA_BROKERS must be set for the worker", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(cfg, appLogger, serviceName)
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer shutdownTracing(context.Background())

	// Revalidation webhook
	revalidator, err := webhook.NewRevalidateClient(cfg.Worker.RevalidateURL)
	if err != nil {
		appLogger.Fatal("Failed to initialize revalidate client", err)
	}

	// Worker Use Case
	processEventUC := revalidate.NewProcessContentEventUseCase(revalidator, appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.Topic,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", cfg.Kafka.Topic), zap.String("group_id", cfg.Kafka.GroupID))

	if err := event.NewContentEventConsumer(consumer, processEventUC, appLogger).Run(ctx); err != nil {
		// Exit without committing; the event is redelivered on restart.
		appLogger.Fatal("Worker stopped on a failing content event", err)
	}
	appLogger.Info("Worker stopped")
}
