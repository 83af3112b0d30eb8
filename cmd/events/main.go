package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/kafka"
	"github.com/emuhs/s2p-api/pkg/config"
	"github.com/emuhs/s2p-api/pkg/logger"
	"github.com/emuhs/s2p-api/pkg/tracing"
)

var eventTypes = []string{
	domain.EventSupplierCreated,
	domain.EventSupplierUpdated,
	domain.EventSupplierDeleted,
	domain.EventPurchaseOrderCreated,
	domain.EventPurchaseOrderUpdated,
	domain.EventPurchaseOrderDeleted,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("s2p-events", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.ServiceName+"-events", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Fatal().Msg("KAFKA_BROKERS is required")
	}

	tp, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.ServiceName + "-events",
		Enabled:        cfg.TracingEnabled,
		JaegerEndpoint: cfg.JaegerEndpoint,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tracing.Shutdown(ctx, tp)
	}()

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{cfg.KafkaTopic})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	for _, eventType := range eventTypes {
		consumer.RegisterHandler(eventType, logEvent)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Consumer stopped with error")
	}
	logger.Logger.Info().Msg("Shutting down event consumer...")
}

func logEvent(ctx context.Context, event kafka.ProcurementEvent) error {
	logger.Info(ctx).
		Str("event_id", event.EventID).
		Str("event_type", event.EventType).
		Str("entity", event.Entity()).
		Uint("entity_id", event.EntityID).
		RawJSON("payload", payloadOrNull(event.Payload)).
		Time("published_at", event.Timestamp).
		Msg("Procurement event received")
	return nil
}

func payloadOrNull(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
