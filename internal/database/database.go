// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package database

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/occupatus/internal/config"
	"github.com/tomtom215/occupatus/internal/logging"
)

// DB wraps an in-memory DuckDB connection used to read and join the
// occupation CSV files. No data is persisted; DuckDB acts as the CSV
// parsing and join engine.
type DB struct {
	conn *sql.DB
	data *config.DataConfig

	postingBreaker *postingBreaker
}

// New opens an in-memory DuckDB instance tuned from the database config.
func New(dataCfg *config.DataConfig, dbCfg *config.DatabaseConfig) (*DB, error) {
	numThreads := dbCfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Disable auto-install/auto-load to prevent hangs in restricted network
	// environments. Plain CSV reading needs no extensions.
	connStr := fmt.Sprintf("?threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		numThreads, dbCfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{
		conn: conn,
		data: dataCfg,
	}
	db.postingBreaker = newPostingBreaker()

	logging.Info().
		Int("threads", numThreads).
		Str("max_memory", dbCfg.MaxMemory).
		Str("data_dir", dataCfg.Dir).
		Msg("Database initialized")
	return db, nil
}

// Close releases the DuckDB connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// dataPath resolves a CSV file name against the configured data directory.
func (db *DB) dataPath(name string) string {
	return filepath.Join(db.data.Dir, name)
}

// readCSVExpr builds a read_csv table expression for the given file.
// all_varchar keeps numeric-looking occupation codes as strings so joins
// never depend on type inference.
func (db *DB) readCSVExpr(path string) string {
	return fmt.Sprintf("read_csv(%s, delim=%s, header=true, all_varchar=true)",
		quoteLiteral(path), quoteLiteral(db.data.Delimiter))
}

// quoteLiteral renders s as a single-quoted SQL string literal. File paths
// and delimiters come from configuration, not user input, but they are
// escaped regardless because read_csv arguments cannot be bound as
// placeholders.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
