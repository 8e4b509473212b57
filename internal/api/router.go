// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/occupatus/internal/middleware"
)

// NewRouter builds the Chi router with the full middleware stack. CORS is
// global so OPTIONS preflight requests are answered on every path; rate
// limiting and Prometheus instrumentation only wrap the /api/v1 group.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.Security.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Get("/", h.Welcome)

	r.Route("/api/v1", func(r chi.Router) {
		if !h.config.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(
				h.config.Security.RateLimitRequests,
				h.config.Security.RateLimitWindow,
			))
		}
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", h.Health)
		r.Post("/recommend", h.Recommend)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
