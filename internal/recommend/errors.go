// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recommendation pipeline. Callers map these onto
// transport-level responses with errors.Is.
var (
	// ErrInsufficientResults means the request asked for more distinct
	// occupation titles than the corpus contains.
	ErrInsufficientResults = errors.New("not enough distinct occupation titles to satisfy request")

	// ErrDataSourceUnavailable means the posting source could not be read.
	ErrDataSourceUnavailable = errors.New("job posting source unavailable")
)

// InvalidRequestError reports a request that fails structural validation
// before any ranking work happens.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}
