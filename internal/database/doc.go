// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

// Package database loads occupation and job posting data through an
// in-memory DuckDB instance. The occupation corpus is assembled once at
// startup by joining the occupation, skill, experience and education CSV
// files over the occupation code. Job postings are re-read from disk on
// every request, behind a circuit breaker, so new postings appear without
// a restart.
package database
