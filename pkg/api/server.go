// Package api serves a puzzle library over HTTP.
//
// Routes live under /api/v1 and require an X-API-Key header. Uploads are
// raw .tgg bytes; responses are JSON except for the raw download.
// Prometheus metrics are exposed unauthenticated on /metrics.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the chi router for s. metricsHandler is mounted on /metrics.
func NewRouter(s *Server, metricsHandler http.Handler) http.Handler {
	m := s.metrics

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(m.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		r.Get("/health", m.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		r.Post("/puzzles", m.InstrumentHandler("POST", "/api/v1/puzzles", s.handleCreate))
		r.Post("/puzzles/validate", m.InstrumentHandler("POST", "/api/v1/puzzles/validate", s.handleValidate))
		r.Get("/puzzles", m.InstrumentHandler("GET", "/api/v1/puzzles", s.handleList))
		r.Get("/puzzles/{id}", m.InstrumentHandler("GET", "/api/v1/puzzles/{id}", s.handleGet))
		r.Get("/puzzles/{id}/raw", m.InstrumentHandler("GET", "/api/v1/puzzles/{id}/raw", s.handleGetRaw))
		r.Delete("/puzzles/{id}", m.InstrumentHandler("DELETE", "/api/v1/puzzles/{id}", s.handleDelete))
	})

	return r
}

// StartServer serves library until ctx is cancelled, then shuts down gracefully
func StartServer(ctx context.Context, library PuzzleLibrary, config ServerConfig, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := NewMetrics(registry)

	server := NewServer(library, config, metrics, logger)
	server.refreshLibrarySize()

	addr := net.JoinHostPort(config.Bind, strconv.Itoa(config.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(server, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting TGG puzzle server", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down TGG puzzle server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
