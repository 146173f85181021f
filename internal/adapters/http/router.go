package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/claudeomosa/NETconf25/internal/adapters/http/dto"
	"github.com/claudeomosa/NETconf25/internal/adapters/http/handlers"
	"github.com/claudeomosa/NETconf25/internal/adapters/http/middleware"
	"github.com/claudeomosa/NETconf25/internal/platform/config"
	"github.com/claudeomosa/NETconf25/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds public API requests when the caller does
// not pick a timeout.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig carries everything SetupRouter needs. Nil handlers skip
// their routes, which lets tests assemble partial routers.
type RouterConfig struct {
	Logger *slog.Logger

	AppConfig *config.AppConfig

	// HealthHandler serves the operational endpoints under /-/.
	HealthHandler *handlers.HealthHandler

	// IndexHandler serves the API discovery document.
	IndexHandler *handlers.IndexHandler

	// QuoteHandler serves the quote catalog endpoints.
	QuoteHandler *handlers.QuoteHandler

	// StatsHandler serves the process statistics endpoint.
	StatsHandler *handlers.StatsHandler

	// Timeout is the per-request deadline on the public routes.
	// Zero disables the deadline middleware.
	Timeout time.Duration
}

// SetupRouter mounts the middleware chain and every route on the engine.
//
// Chain order, first to last: context logger (seeds the request context
// with the service logger), recovery (catches panics from everything
// downstream), request ID, correlation ID, OpenTelemetry span and
// metrics, trace-ID response header, request logging. Health routes
// under /-/ stay outside the API deadline so probes never time out
// behind a slow catalog.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.ContextLogger(cfg.Logger),
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		telemetry.TraceHeader(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// The public API lives at the root of the path space.
	api := engine.Group("")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	setupAPIRoutes(api, cfg)

	// Unknown paths get the same error envelope as everything else.
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("route not found"))
	})
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.IndexHandler != nil {
		cfg.IndexHandler.RegisterIndexRoutes(rg)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	}

	if cfg.StatsHandler != nil {
		cfg.StatsHandler.RegisterStatsRoutes(rg)
	}
}

// NewDefaultRouterConfig assembles a RouterConfig with the default
// request timeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	indexHandler *handlers.IndexHandler,
	quoteHandler *handlers.QuoteHandler,
	statsHandler *handlers.StatsHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		IndexHandler:  indexHandler,
		QuoteHandler:  quoteHandler,
		StatsHandler:  statsHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
