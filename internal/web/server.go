// Package web serves the color and mascot pages over HTTP.
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hue/internal/logging"
	"hue/internal/mascot"

	"github.com/klauspost/compress/gzhttp"
)

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Addr          string
	EnableMetrics bool
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:          "localhost:8080",
		EnableMetrics: true,
	}
}

// Server represents the HTTP server
type Server struct {
	router  *http.ServeMux
	server  *http.Server
	addr    string
	logger  *logging.Logger
	mascots *mascot.Source
	metrics *MetricsCollector
}

// NewServer creates a new HTTP server instance
func NewServer(cfg ServerConfig, mascots *mascot.Source, logger *logging.Logger) *Server {
	s := &Server{
		addr:    cfg.Addr,
		logger:  logger,
		mascots: mascots,
		router:  http.NewServeMux(),
	}
	if cfg.EnableMetrics {
		s.metrics = NewMetricsCollector()
	}

	// Register routes
	s.registerRoutes()

	// Create HTTP server with configured router and middleware
	handler := s.applyMiddleware(s.router)
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", map[string]interface{}{
		"addr":   s.addr,
		"source": s.mascots.Path(),
	})

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", nil)

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("Server shut down successfully", nil)
	return nil
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// applyMiddleware wraps the handler with middleware in the correct order
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	// Apply middleware in reverse order (last one wraps first)
	handler = MethodGuardMiddleware()(handler)
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = gzhttp.GzipHandler(handler)
	if s.metrics != nil {
		handler = MetricsMiddleware(s.metrics)(handler)
	}
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware()(handler)
	return handler
}
