// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

// Package api provides the HTTP surface of Occupatus: the recommendation
// endpoint, health and greeting endpoints, and Prometheus metrics, routed
// through Chi with CORS, rate limiting and request ID middleware.
package api
