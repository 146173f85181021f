// Package main wires the quotes service together and runs it.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claudeomosa/NETconf25/internal/adapters/catalog"
	"github.com/claudeomosa/NETconf25/internal/adapters/http"
	"github.com/claudeomosa/NETconf25/internal/adapters/http/handlers"
	"github.com/claudeomosa/NETconf25/internal/adapters/stats"
	"github.com/claudeomosa/NETconf25/internal/app"
	"github.com/claudeomosa/NETconf25/internal/platform/config"
	"github.com/claudeomosa/NETconf25/internal/platform/logging"
	"github.com/claudeomosa/NETconf25/internal/platform/telemetry"
	"github.com/claudeomosa/NETconf25/internal/ports"
)

// Stamped by the build:
//
//	go build -ldflags "-X main.Version=1.4.0 -X main.Commit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load and validate configuration (fail fast)
	cfg, err := config.Load(config.ProfileFromEnv())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 3. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 4. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 5. Create the quote catalog (fails fast on an empty seed)
	quoteCatalog, err := catalog.New(catalog.Config{
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating quote catalog: %w", err)
	}

	if err := healthRegistry.Register(quoteCatalog); err != nil {
		return fmt.Errorf("registering catalog health check: %w", err)
	}

	logger.Info("quote catalog loaded", slog.Int("quotes", quoteCatalog.Len()))

	// 6. Create the process stats source
	statsSource := stats.New(stats.Config{
		Logger: logger,
	})

	if err := healthRegistry.Register(statsSource); err != nil {
		return fmt.Errorf("registering stats health check: %w", err)
	}

	// 7. Create application services
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Catalog: quoteCatalog,
		Logger:  logger,
	})

	statsService := app.NewStatsService(app.StatsServiceConfig{
		Source: statsSource,
		Logger: logger,
	})

	// 8. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	indexHandler := handlers.NewIndexHandler()
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// 9. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 10. Setup router with all middleware and routes
	routerCfg := http.NewDefaultRouterConfig(
		logger,
		&cfg.App,
		healthHandler,
		indexHandler,
		quoteHandler,
		statsHandler,
	)
	http.SetupRouter(server.Engine(), routerCfg)

	// 11. Start server (non-blocking)
	serverErr := server.Start()

	// 12. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown parks until SIGINT or SIGTERM arrives, or the server
// fails on its own, then drains in-flight requests within
// shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// The listener died; there is nothing left to drain.
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Refuse new connections, let in-flight requests finish.
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
