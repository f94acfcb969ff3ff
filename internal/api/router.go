// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avesmap/avesmap/internal/config"
	"github.com/avesmap/avesmap/internal/middleware"
)

// NewRouter builds the chi router with all routes and middleware.
func NewRouter(handler *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware. Order matters: the request ID must exist before
	// anything logs, and metrics wrap everything that follows.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Security.RateLimitEnabled {
		r.Use(httprate.LimitByIP(
			cfg.Security.RateLimitRequests,
			cfg.Security.RateLimitWindow,
		))
	}

	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health probes sit outside the API version prefix so orchestrators
	// can reach them at a stable path.
	r.Get("/health", handler.Health)
	r.Get("/health/live", handler.HealthLive)
	r.Get("/health/ready", handler.HealthReady)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ebird", handler.ForwardEBird)
	})

	return r
}
