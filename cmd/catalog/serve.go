package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/product-catalog/docs"
	"github.com/tair/product-catalog/internal/catalog"
	"github.com/tair/product-catalog/internal/catalog/cache"
	httpDelivery "github.com/tair/product-catalog/internal/catalog/delivery/http"
	"github.com/tair/product-catalog/internal/catalog/storage"
	"github.com/tair/product-catalog/internal/catalog/usecase/command"
	"github.com/tair/product-catalog/internal/config"
	"github.com/tair/product-catalog/kafka"
	"github.com/tair/product-catalog/pkg/database"
	"github.com/tair/product-catalog/pkg/logger"
	"github.com/tair/product-catalog/pkg/tracing"
)

type eventPublisher interface {
	command.EventPublisher
	Close() error
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cobraflags.RegisterMap(cmd, envFileFlags())
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("db_driver", cfg.Database.Driver).
		Msg("Starting catalog service")

	tp, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.ServiceName,
		JaegerEndpoint: cfg.JaegerEndpoint,
		Environment:    cfg.Environment,
		Enabled:        cfg.TracingEnabled,
		SampleRatio:    cfg.SampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := catalog.Migrate(db); err != nil {
		return err
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	productCache := connectCache(ctx, cfg)
	defer productCache.Close()

	publisher := connectPublisher(cfg)
	defer publisher.Close()

	store := storage.NewOSImageStore(cfg.UploadDir)

	handler, err := catalog.InitializeHTTPHandler(db, store, productCache, publisher, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	router := mux.NewRouter()
	mwConfig := httpDelivery.DefaultMiddlewareConfig(cfg.RequestTimeout)
	httpDelivery.RegisterMiddlewares(router, mwConfig)

	handler.RegisterRoutes(router)
	optional := map[string]httpDelivery.Pinger{}
	if productCache != nil {
		optional["cache"] = productCache
	}
	handler.RegisterHealthCheck(router, sqlDB, optional)
	router.Handle("/metrics", promhttp.Handler())
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           httpDelivery.SetupCORS(mwConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// connectCache returns nil when Redis is not configured or unreachable
func connectCache(ctx context.Context, cfg *config.Config) *cache.ProductCache {
	productCache, err := cache.Connect(ctx, cfg.RedisAddr, cfg.CacheTTL)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Product cache disabled")
		return nil
	}
	if productCache != nil {
		logger.Logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("Product cache enabled")
	}
	return productCache
}

// connectPublisher falls back to dropping events when Kafka is not available
func connectPublisher(cfg *config.Config) eventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Info().Msg("No Kafka brokers configured, catalog events disabled")
		return kafka.NoopPublisher{}
	}

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaTopic,
		ClientID: cfg.ServiceName,
	})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, catalog events disabled")
		return kafka.NoopPublisher{}
	}
	return publisher
}
