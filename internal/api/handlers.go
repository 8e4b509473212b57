// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package api

import (
	"time"

	"github.com/tomtom215/occupatus/internal/config"
	"github.com/tomtom215/occupatus/internal/recommend"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_recommend.go: the recommendation endpoint
//   - handlers_health.go: greeting and health endpoints
type Handler struct {
	engine    *recommend.Engine
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
func NewHandler(engine *recommend.Engine, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		config:    cfg,
		startTime: time.Now(),
	}
}
