// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/occupatus/internal/middleware"
	"github.com/tomtom215/occupatus/internal/models"
	"github.com/tomtom215/occupatus/internal/recommend"
)

// WelcomeMessage is returned by the root endpoint.
const WelcomeMessage = "Welcome to our Recommender System's API!"

// Welcome handles GET /. Kept as a cheap liveness probe for load
// balancers that only speak GET on the root path.
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"message": WelcomeMessage},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: middleware.GetRequestID(r.Context()),
		},
	})
}

// healthData is the payload of the health endpoint.
type healthData struct {
	Status        string          `json:"status"`
	UptimeSeconds int64           `json:"uptime_seconds"`
	Corpus        recommend.Stats `json:"corpus"`
}

// Health handles GET /api/v1/health, reporting uptime and the fitted
// corpus dimensions.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: healthData{
			Status:        "healthy",
			UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
			Corpus:        h.engine.Stats(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: middleware.GetRequestID(r.Context()),
		},
	})
}
