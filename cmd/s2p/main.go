package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"google.golang.org/grpc"

	_ "github.com/emuhs/s2p-api/docs"
	"github.com/emuhs/s2p-api/internal/procurement"
	grpcDelivery "github.com/emuhs/s2p-api/internal/procurement/delivery/grpc"
	httpDelivery "github.com/emuhs/s2p-api/internal/procurement/delivery/http"
	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/repository"
	"github.com/emuhs/s2p-api/kafka"
	"github.com/emuhs/s2p-api/pkg/config"
	"github.com/emuhs/s2p-api/pkg/database"
	"github.com/emuhs/s2p-api/pkg/logger"
	"github.com/emuhs/s2p-api/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("s2p-api", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting S2P service")

	// Initialize tracer
	tp, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.ServiceName,
		Enabled:        cfg.TracingEnabled,
		JaegerEndpoint: cfg.JaegerEndpoint,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Error shutting down tracer")
		}
	}()

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
		logger.Logger.Info().Msg("Database schema migrated")
	}

	publisher, closePublisher := newPublisher(cfg)
	defer closePublisher()

	limiter, closeRedis := newRateLimiter(cfg)
	defer closeRedis()

	// Initialize handler with Wire DI
	handler, err := procurement.InitializeHTTPHandler(db, publisher, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	router := httpDelivery.NewRouter(
		handler,
		database.NewGateway(db),
		httpDelivery.DefaultMiddlewareConfig(cfg.RequestTimeout, limiter),
		promhttp.Handler(),
		httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	healthServer := procurement.InitializeHealthServer(db, 10*time.Second)
	go healthServer.Run(ctx)
	grpcServer := grpcDelivery.NewServer(healthServer)
	go startGRPCServer(grpcServer, cfg.GRPCPort)

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	grpcServer.GracefulStop()
}

// newPublisher returns the Kafka publisher when brokers are configured
func newPublisher(cfg *config.Config) (domain.EventPublisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, events are not published")
		return domain.NoopPublisher{}, func() {}
	}

	publisher, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Error closing Kafka publisher")
		}
	}
}

// newRateLimiter returns a Redis-backed limiter when REDIS_ADDR is configured
func newRateLimiter(cfg *config.Config) (*httpDelivery.RateLimiter, func()) {
	if cfg.RedisAddr == "" {
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unreachable, rate limiter fails open")
	}

	logger.Logger.Info().
		Str("addr", cfg.RedisAddr).
		Int("max_requests", cfg.RateLimit).
		Dur("window", cfg.RateLimitWindow).
		Bool("trust_proxy", cfg.TrustProxy).
		Msg("Rate limiter enabled")
	limiter := httpDelivery.NewRateLimiter(client, cfg.RateLimit, cfg.RateLimitWindow).TrustProxy(cfg.TrustProxy)
	return limiter, func() { _ = client.Close() }
}

func startGRPCServer(server *grpc.Server, port string) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("port", port).Msg("Failed to listen")
	}

	logger.Logger.Info().Str("port", port).Msg("gRPC health server started")
	if err := server.Serve(lis); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start gRPC server")
	}
}
