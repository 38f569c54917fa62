package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/amaumene/seerrctl/internal/api/handlers"
	"github.com/amaumene/seerrctl/internal/api/middleware"
	"github.com/amaumene/seerrctl/internal/config"
	"github.com/amaumene/seerrctl/internal/controllers"
	"github.com/amaumene/seerrctl/internal/models"
	"github.com/amaumene/seerrctl/internal/services/seerr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server exposed while watching
type Server struct {
	server    *http.Server
	db        *models.Database
	watchCtrl *controllers.WatchController
	logger    *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, db *models.Database, watchCtrl *controllers.WatchController, logger *logrus.Logger) *Server {
	s := &Server{
		db:        db,
		watchCtrl: watchCtrl,
		logger:    logger,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.Logging(mux, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux) {
	// Health check
	healthHandler := handlers.NewHealthHandler(seerr.Version, s.logger)
	mux.HandleFunc("/health", healthHandler.ServeHTTP)

	// Watcher status
	statusHandler := handlers.NewStatusHandler(s.db, s.watchCtrl, s.logger)
	mux.HandleFunc("/status", statusHandler.ServeHTTP)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())
}

// Handler returns the routed handler, for tests
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
