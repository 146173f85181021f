// Package http hosts the Gin engine, route table, and middleware chain.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claudeomosa/NETconf25/internal/platform/config"
)

// Server couples a gin.Engine to an http.Server and owns the listen and
// shutdown lifecycle.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	config     *config.ServerConfig
	logger     *slog.Logger
}

// New builds a server from the listener settings. Routes are registered
// afterwards through Engine.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	// Release mode silences gin's own logging; request logging is handled
	// by the logging middleware.
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	// The API is read-only, so request bodies have no legitimate size.
	engine.Use(maxBodySize(cfg.MaxRequestSize))

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		config: cfg,
		logger: logger,
	}
}

// Engine exposes the Gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Config returns the listener settings the server was built with.
func (s *Server) Config() *config.ServerConfig {
	return s.config
}

// Start serves in a background goroutine and returns immediately. The
// returned channel carries a listen failure, if any, and is closed once
// the server stops.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	s.logger.Info("starting HTTP server",
		slog.String("addr", s.httpServer.Addr),
		slog.Duration("read_timeout", s.config.ReadTimeout),
		slog.Duration("write_timeout", s.config.WriteTimeout),
	)

	go func() {
		defer close(errCh)

		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	return errCh
}

// Shutdown stops accepting connections and drains in-flight requests
// until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.Info("HTTP server stopped")

	return nil
}

// Addr returns the host:port the server binds.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// maxBodySize caps request bodies at maxBytes before any handler reads
// them.
func maxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
