// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Engine ranks occupations against user profiles and reconciles job
// postings with the winners. The corpus and vector space are fixed at
// construction; only postings are re-read per request, so Engine is safe
// for concurrent use.
type Engine struct {
	occupations    []Occupation
	space          *VectorSpace
	docs           []SparseVector
	distinctTitles int

	source PostingSource
	logger zerolog.Logger
}

// NewEngine fits a vector space over the occupation corpus and wires in
// the posting source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(occupations []Occupation, source PostingSource, logger zerolog.Logger) *Engine {
	space, docs := FitVectorSpace(BuildCorpus(occupations))

	titles := make(map[string]struct{}, len(occupations))
	for _, o := range occupations {
		titles[o.Title] = struct{}{}
	}

	e := &Engine{
		occupations:    occupations,
		space:          space,
		docs:           docs,
		distinctTitles: len(titles),
		source:         source,
		logger:         logger.With().Str("component", "recommend").Logger(),
	}
	e.logger.Info().
		Int("occupations", len(occupations)).
		Int("distinct_titles", e.distinctTitles).
		Int("vocabulary_size", space.VocabularySize()).
		Msg("recommendation engine ready")
	return e
}

// Stats describes the fitted corpus.
func (e *Engine) Stats() Stats {
	return Stats{
		Occupations:    len(e.occupations),
		DistinctTitles: e.distinctTitles,
		VocabularySize: e.space.VocabularySize(),
	}
}

// Recommend runs the full pipeline for one request: normalize the
// profile, rank the corpus, take the top K distinct titles, then attach
// reconciled postings from a fresh read of the posting source.
//
// Returns *InvalidRequestError for a non-positive TopK,
// ErrInsufficientResults when TopK exceeds the number of distinct titles
// in the corpus, and ErrDataSourceUnavailable when postings cannot be
// read. Repeated identical requests against an unchanged posting source
// return identical responses.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	if req.TopK <= 0 {
		return nil, &InvalidRequestError{
			Field:  "top_k",
			Reason: fmt.Sprintf("must be a positive integer, got %d", req.TopK),
		}
	}
	if req.TopK > e.distinctTitles {
		return nil, fmt.Errorf("%w: requested %d, corpus has %d",
			ErrInsufficientResults, req.TopK, e.distinctTitles)
	}

	profile := req.Skills + " " + req.Education + " " + req.Experience
	query := strings.Join(NormalizeQuery(profile), " ")
	ranked := Rank(e.space.Transform(query), e.docs)

	titles := e.topTitles(ranked, req.TopK)

	postings, err := e.source.LoadPostings(ctx)
	if err != nil {
		e.logger.Error().Err(err).Msg("posting source read failed")
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	jobs := make([]Recommendation, 0, len(titles))
	for _, title := range titles {
		jobs = append(jobs, Recommendation{
			Title:    title,
			Postings: CollectPostings(title, postings),
		})
	}

	elapsed := time.Since(start)
	e.logger.Debug().
		Int("top_k", req.TopK).
		Int("postings", len(postings)).
		Dur("elapsed", elapsed).
		Msg("recommendation served")

	return &Response{
		Jobs: jobs,
		Metadata: ResponseMetadata{
			LatencyMS: float64(elapsed.Microseconds()) / 1000.0,
		},
	}, nil
}

// topTitles walks the ranking in order and returns the first k distinct
// occupation titles. Duplicate titles further down the ranking are
// skipped so each title appears once, at its best rank.
func (e *Engine) topTitles(ranked []RankedDoc, k int) []string {
	seen := make(map[string]struct{}, k)
	titles := make([]string, 0, k)
	for _, rd := range ranked {
		title := e.occupations[rd.Index].Title
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
		if len(titles) == k {
			break
		}
	}
	return titles
}
