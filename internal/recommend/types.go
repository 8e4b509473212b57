// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import "context"

// Occupation is one corpus entry assembled at startup from the joined
// occupation, skill, experience and education tables. Skill, Description
// and EducationLevel feed the vector space; Title is what requests get
// back and what postings are reconciled against.
type Occupation struct {
	Code           string
	Title          string
	Description    string
	Skill          string
	Experience     string
	EducationLevel string
}

// Posting is a single job advertisement.
type Posting struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PostingSource supplies the current set of job postings. Implementations
// are expected to re-read the underlying source on every call so that
// freshly published postings show up without a restart.
type PostingSource interface {
	LoadPostings(ctx context.Context) ([]Posting, error)
}

// Request is a fully validated recommendation query. Skills, Education and
// Experience are free text; TopK is the number of distinct occupation
// titles the caller wants back.
type Request struct {
	Skills     string
	Education  string
	Experience string
	TopK       int
}

// Recommendation pairs one occupation title with the postings whose
// titles reconcile against it.
type Recommendation struct {
	Title    string    `json:"title"`
	Postings []Posting `json:"postings"`
}

// Response is the ordered result of a recommendation query. Jobs is
// sorted by descending similarity to the request profile.
type Response struct {
	Jobs     []Recommendation `json:"jobs"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata carries per-request diagnostics.
type ResponseMetadata struct {
	RequestID string  `json:"request_id,omitempty"`
	LatencyMS float64 `json:"latency_ms"`
}

// RankedDoc is one corpus document with its similarity to a query.
type RankedDoc struct {
	// Index is the document position in the corpus passed to FitVectorSpace.
	Index int
	// Score is the cosine similarity in [0, 1].
	Score float64
}

// Stats describes the fitted corpus. Exposed on the health endpoint.
type Stats struct {
	Occupations    int `json:"occupations"`
	DistinctTitles int `json:"distinct_titles"`
	VocabularySize int `json:"vocabulary_size"`
}

// SparseVector maps vocabulary term indices to weights. Only non-zero
// entries are stored.
type SparseVector map[int]float64
