// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

// Package metrics provides Prometheus instrumentation for Occupatus.
//
// Instrumented surfaces:
//   - API endpoint latency and throughput
//   - DuckDB query performance (startup join, per-request posting reload)
//   - Recommendation pipeline latency and outcomes
//   - Posting source circuit breaker state
//   - Corpus gauges (occupations, vocabulary size, distinct titles)
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	// Recommendation Pipeline Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "validation", "insufficient_results", "data_source", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "End-to-end duration of the recommendation pipeline in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PostingReloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "posting_reload_duration_seconds",
			Help:    "Duration of per-request posting corpus reloads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PostingReloadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posting_reload_errors_total",
			Help: "Total number of failed posting corpus reloads",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Corpus Gauges (set once at startup)
	CorpusOccupations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_occupations",
			Help: "Number of occupations in the fitted corpus",
		},
	)

	CorpusDistinctTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_distinct_titles",
			Help: "Number of distinct occupation titles in the fitted corpus",
		},
	)

	CorpusVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_vocabulary_size",
			Help: "Number of terms in the fitted vector space vocabulary",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDBQuery records a DuckDB query metric.
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordRecommendRequest records the outcome and latency of one recommendation request.
func RecordRecommendRequest(outcome string, duration time.Duration) {
	RecommendRequestsTotal.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}
