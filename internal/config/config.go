// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

// Package config provides layered configuration for Occupatus using Koanf v2.
//
// Configuration is loaded from three sources (highest priority wins):
//   - Environment variables (HTTP_PORT, DATA_DIR, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// The occupation tables are read once at startup; the posting table path is
// also configured here but is re-read by the database layer on every
// recommendation request.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DataConfig locates the pipe-delimited occupation and posting tables.
//
// The four occupation files are row-aligned sources joined on OccupationCode
// at startup. The posting file is read fresh on every recommendation call so
// on-disk updates are visible without a restart.
type DataConfig struct {
	Dir            string `koanf:"dir"`
	OccupationFile string `koanf:"occupation_file"`
	SkillFile      string `koanf:"skill_file"`
	ExperienceFile string `koanf:"experience_file"`
	EducationFile  string `koanf:"education_file"`
	PostingFile    string `koanf:"posting_file"`
	Delimiter      string `koanf:"delimiter"`
}

// DatabaseConfig holds DuckDB tuning settings. The database is in-memory;
// it exists only to run read_csv joins over the data files.
type DatabaseConfig struct {
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// MaxTopK caps the number of distinct titles a single request may ask for.
	// Requests above the cap are rejected before any ranking work happens.
	MaxTopK int `koanf:"max_top_k"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for invalid or inconsistent values.
// It fails fast with a message naming the offending key.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}

	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	for key, name := range map[string]string{
		"data.occupation_file": c.Data.OccupationFile,
		"data.skill_file":      c.Data.SkillFile,
		"data.experience_file": c.Data.ExperienceFile,
		"data.education_file":  c.Data.EducationFile,
		"data.posting_file":    c.Data.PostingFile,
	} {
		if name == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	if len(c.Data.Delimiter) != 1 {
		return fmt.Errorf("data.delimiter must be a single character, got %q", c.Data.Delimiter)
	}

	if c.Database.Threads < 0 {
		return fmt.Errorf("database.threads must not be negative, got %d", c.Database.Threads)
	}

	if c.Recommend.MaxTopK < 1 {
		return fmt.Errorf("recommend.max_top_k must be at least 1, got %d", c.Recommend.MaxTopK)
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitRequests < 1 {
			return fmt.Errorf("security.rate_limit_requests must be at least 1, got %d", c.Security.RateLimitRequests)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}

	return nil
}
