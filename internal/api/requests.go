// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package api

// RecommendRequest is the JSON body of POST /api/v1/recommend. All four
// fields must be present; top_k must be a positive integer. An omitted
// top_k decodes to zero and is rejected by the required tag.
type RecommendRequest struct {
	Skills          string `json:"skills" validate:"required"`
	EducationLevel  string `json:"education_level" validate:"required"`
	ExperienceLevel string `json:"experience_level" validate:"required"`
	TopK            int    `json:"top_k" validate:"required,gt=0"`
}
