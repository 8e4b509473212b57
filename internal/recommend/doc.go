// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

// Package recommend implements the two-stage occupation matching pipeline.
//
// Stage one ranks every occupation in the corpus against a free-text
// profile (skills, education level, experience level) using a TF-IDF
// vector space and cosine similarity. Stage two reconciles live job
// postings against the top-ranked occupation titles with a word-level
// heuristic matcher.
//
// The package has no dependency on other internal packages. Posting data
// enters through the PostingSource interface so the database layer can
// plug in without a circular import.
package recommend
