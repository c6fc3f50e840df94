// Package http provides HTTP routing and middleware configuration
// for the portal backend.
package http

import (
	"net/http"

	"github.com/angussewell/lead-magnet-library/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs and returns an HTTP handler that serves the
// portal backend API.
//
// Routes:
//
//	GET /api/products → productsHandler.List
//	GET /metrics      → Prometheus scrape endpoint
//
// Middleware chain (applied in order):
//  1. WithRequestLogging(logger) — request id + structured request log
//  2. Instrument                 — Prometheus HTTP metrics
func NewRouter(productsHandler *ProductsHandler, logger *zap.Logger) http.Handler {
	middleware.InitMetrics()

	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Measure request counts, latency, and in-flight requests
	r.Use(middleware.Instrument)

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productsHandler.List)
	})

	r.Method(http.MethodGet, "/metrics", middleware.MetricsHandler())

	return r
}
