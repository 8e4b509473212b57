// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/occupatus/internal/logging"
	"github.com/tomtom215/occupatus/internal/metrics"
	"github.com/tomtom215/occupatus/internal/middleware"
	"github.com/tomtom215/occupatus/internal/models"
	"github.com/tomtom215/occupatus/internal/recommend"
)

// RecommendResponse is the data payload of a successful recommendation.
type RecommendResponse struct {
	Jobs []recommend.Recommendation `json:"jobs"`
}

// Recommend handles POST /api/v1/recommend. The request body carries the
// user profile and the number of occupation titles wanted; the response
// lists those titles best-first, each with its reconciled job postings.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordRecommendRequest("validation", time.Since(start))
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
			"request body is not valid JSON", nil)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRecommendRequest("validation", time.Since(start))
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	if maxTopK := h.config.Recommend.MaxTopK; req.TopK > maxTopK {
		metrics.RecordRecommendRequest("validation", time.Since(start))
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("top_k must not exceed %d", maxTopK), nil)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		Skills:     req.Skills,
		Education:  req.EducationLevel,
		Experience: req.ExperienceLevel,
		TopK:       req.TopK,
	})
	if err != nil {
		h.respondRecommendError(w, r, err, start)
		return
	}

	metrics.RecordRecommendRequest("ok", time.Since(start))
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   RecommendResponse{Jobs: resp.Jobs},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			RequestID:   middleware.GetRequestID(r.Context()),
		},
	})
}

// respondRecommendError maps pipeline errors onto HTTP statuses: invalid
// requests to 400, an over-large top_k to 422, an unreadable posting
// source to 503 and anything else to 500.
func (h *Handler) respondRecommendError(w http.ResponseWriter, r *http.Request, err error, start time.Time) {
	var invalid *recommend.InvalidRequestError

	switch {
	case errors.As(err, &invalid):
		metrics.RecordRecommendRequest("validation", time.Since(start))
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", invalid.Error(), nil)

	case errors.Is(err, recommend.ErrInsufficientResults):
		metrics.RecordRecommendRequest("insufficient_results", time.Since(start))
		respondError(w, r, http.StatusUnprocessableEntity, "INSUFFICIENT_RESULTS", err.Error(), nil)

	case errors.Is(err, recommend.ErrDataSourceUnavailable):
		metrics.RecordRecommendRequest("data_source", time.Since(start))
		respondError(w, r, http.StatusServiceUnavailable, "DATA_SOURCE_UNAVAILABLE",
			"job postings are temporarily unavailable", nil)

	default:
		metrics.RecordRecommendRequest("error", time.Since(start))
		// The wrapped chain can carry request-derived text; sanitize it
		// before it reaches the log stream.
		logging.Ctx(r.Context()).Error().
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Recommendation pipeline failed")
		respondError(w, r, http.StatusInternalServerError, "RECOMMENDATION_ERROR",
			"failed to compute recommendations", nil)
	}
}
