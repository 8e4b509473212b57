// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

// Package models defines the API response envelope shared by all endpoints.
package models

import "time"

// APIResponse is the standard envelope for all API responses.
//
// Example success:
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-02-11T12:00:00Z", "query_time_ms": 12}
//	}
//
// Example error:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-02-11T12:00:00Z"},
//	  "error": {"code": "VALIDATION_ERROR", "message": "top_k must be greater than 0"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when the response was generated
//   - QueryTimeMS: Total server-side processing time in milliseconds
//   - RequestID: The request ID assigned by the request-ID middleware
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - INSUFFICIENT_RESULTS: More distinct titles requested than the corpus holds
//   - DATA_SOURCE_UNAVAILABLE: Posting corpus unreadable at request time
//   - RECOMMENDATION_ERROR: Unexpected pipeline failure
//   - NOT_FOUND: Resource doesn't exist
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
