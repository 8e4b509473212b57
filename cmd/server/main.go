// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

// Package main is the entry point for the Occupatus server.
//
// Occupatus recommends occupations from a free-text user profile and
// attaches matching live job postings to each recommendation.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered defaults, config file and environment (Koanf v2)
//  2. Logging: zerolog global logger
//  3. Database: in-memory DuckDB for CSV parsing and joins
//  4. Corpus: occupation files joined and the TF-IDF space fitted once
//  5. HTTP server: Chi router with CORS, rate limiting and Prometheus metrics
//
// A malformed occupation file is fatal at startup. The job posting file is
// re-read per request behind a circuit breaker, so posting problems only
// degrade the posting side of responses while the service stays up.
//
// The server shuts down gracefully on SIGINT and SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/occupatus/internal/api"
	"github.com/tomtom215/occupatus/internal/config"
	"github.com/tomtom215/occupatus/internal/database"
	"github.com/tomtom215/occupatus/internal/logging"
	"github.com/tomtom215/occupatus/internal/metrics"
	"github.com/tomtom215/occupatus/internal/recommend"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	db, err := database.New(&cfg.Data, &cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	startupCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	occupations, err := db.LoadOccupations(startupCtx)
	if err != nil {
		var schemaErr *database.SchemaError
		if errors.As(err, &schemaErr) {
			logging.Fatal().Err(schemaErr).Msg("Occupation data does not match the expected schema")
		}
		return fmt.Errorf("loading occupation corpus: %w", err)
	}

	engine := recommend.NewEngine(occupations, db, logging.Logger())

	stats := engine.Stats()
	metrics.CorpusOccupations.Set(float64(stats.Occupations))
	metrics.CorpusDistinctTitles.Set(float64(stats.DistinctTitles))
	metrics.CorpusVocabularySize.Set(float64(stats.VocabularySize))

	handler := api.NewHandler(engine, cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		return err
	}

	logging.Info().Msg("Server stopped")
	return nil
}
