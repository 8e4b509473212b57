// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/occupatus/internal/logging"
	"github.com/tomtom215/occupatus/internal/metrics"
	"github.com/tomtom215/occupatus/internal/recommend"
)

const postingBreakerName = "posting-source"

// postingBreaker shields recommendation requests from a broken posting
// file. After three consecutive read failures the breaker opens and
// requests fail fast for thirty seconds instead of hammering the disk.
type postingBreaker struct {
	cb *gobreaker.CircuitBreaker[[]recommend.Posting]
}

func newPostingBreaker() *postingBreaker {
	settings := gobreaker.Settings{
		Name:        postingBreakerName,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Posting source circuit breaker changed state")
		},
	}
	metrics.CircuitBreakerState.WithLabelValues(postingBreakerName).Set(breakerStateValue(gobreaker.StateClosed))
	return &postingBreaker{cb: gobreaker.NewCircuitBreaker[[]recommend.Posting](settings)}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}

// LoadPostings reads the job posting file from disk through the circuit
// breaker. Implements recommend.PostingSource. Each call re-parses the
// file so freshly published postings are visible immediately.
func (db *DB) LoadPostings(ctx context.Context) ([]recommend.Posting, error) {
	start := time.Now()
	postings, err := db.postingBreaker.cb.Execute(func() ([]recommend.Posting, error) {
		return db.readPostings(ctx)
	})
	metrics.PostingReloadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PostingReloadErrors.Inc()
		return nil, err
	}
	return postings, nil
}

// readPostings parses the posting CSV. Columns are addressed by position,
// not name: the second column is the posting title, the third the URL.
// Files with fewer than three columns are rejected.
func (db *DB) readPostings(ctx context.Context) ([]recommend.Posting, error) {
	query := fmt.Sprintf("SELECT * FROM %s", db.readCSVExpr(db.dataPath(db.data.PostingFile)))
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read posting file %s: %w", db.data.PostingFile, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read posting header: %w", err)
	}
	if len(cols) < 3 {
		return nil, fmt.Errorf("posting file %s has %d columns, need at least 3", db.data.PostingFile, len(cols))
	}

	scan := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range scan {
		dest[i] = &scan[i]
	}

	var postings []recommend.Posting
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan posting row: %w", err)
		}
		postings = append(postings, recommend.Posting{
			Title: scan[1].String,
			URL:   scan[2].String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posting rows: %w", err)
	}

	logging.Debug().Int("postings", len(postings)).Msg("Posting file reloaded")
	return postings, nil
}
