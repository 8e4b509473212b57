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

	"github.com/tomtom215/occupatus/internal/logging"
	"github.com/tomtom215/occupatus/internal/metrics"
	"github.com/tomtom215/occupatus/internal/recommend"
)

// SchemaError reports an occupation source file that does not match the
// expected layout. It is raised at startup and treated as fatal: a corpus
// built from a malformed file would silently produce wrong rankings.
type SchemaError struct {
	Source string
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema violation in %s: column %q: %s", e.Source, e.Column, e.Reason)
	}
	return fmt.Sprintf("schema violation in %s: %s", e.Source, e.Reason)
}

// Required columns per occupation source file. OccupationCode is the join
// key everywhere.
var occupationSchemas = []struct {
	file    func(*DB) string
	columns []string
}{
	{func(db *DB) string { return db.data.OccupationFile }, []string{"OccupationCode", "Title", "Description"}},
	{func(db *DB) string { return db.data.SkillFile }, []string{"OccupationCode", "Skill"}},
	{func(db *DB) string { return db.data.ExperienceFile }, []string{"OccupationCode", "ExperienceLevel"}},
	{func(db *DB) string { return db.data.EducationFile }, []string{"OccupationCode", "EducationLevel"}},
}

// LoadOccupations joins the four occupation source files over the
// occupation code and returns the corpus rows ordered by code, so the
// corpus layout is deterministic across restarts. Every schema problem is
// returned as a *SchemaError.
func (db *DB) LoadOccupations(ctx context.Context) ([]recommend.Occupation, error) {
	start := time.Now()
	occupations, err := db.loadOccupations(ctx)
	metrics.RecordDBQuery("load_occupations", time.Since(start), err)
	return occupations, err
}

func (db *DB) loadOccupations(ctx context.Context) ([]recommend.Occupation, error) {
	for _, schema := range occupationSchemas {
		if err := db.checkColumns(ctx, schema.file(db), schema.columns); err != nil {
			return nil, err
		}
	}

	query := fmt.Sprintf(`
		SELECT o.OccupationCode, o.Title, o.Description,
		       s.Skill, x.ExperienceLevel, e.EducationLevel
		FROM %s AS o
		JOIN %s AS s USING (OccupationCode)
		JOIN %s AS x USING (OccupationCode)
		JOIN %s AS e USING (OccupationCode)
		ORDER BY o.OccupationCode`,
		db.readCSVExpr(db.dataPath(db.data.OccupationFile)),
		db.readCSVExpr(db.dataPath(db.data.SkillFile)),
		db.readCSVExpr(db.dataPath(db.data.ExperienceFile)),
		db.readCSVExpr(db.dataPath(db.data.EducationFile)))

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to join occupation files: %w", err)
	}
	defer rows.Close()

	var occupations []recommend.Occupation
	for rows.Next() {
		var code, title sql.NullString
		var description, skill, experience, education sql.NullString
		if err := rows.Scan(&code, &title, &description, &skill, &experience, &education); err != nil {
			return nil, fmt.Errorf("failed to scan occupation row: %w", err)
		}
		// A NULL or blank field would silently weaken the corpus document
		// for this occupation, so it is a schema problem, not data noise.
		for _, field := range []struct {
			source string
			column string
			value  sql.NullString
		}{
			{db.data.OccupationFile, "Title", title},
			{db.data.OccupationFile, "Description", description},
			{db.data.SkillFile, "Skill", skill},
			{db.data.ExperienceFile, "ExperienceLevel", experience},
			{db.data.EducationFile, "EducationLevel", education},
		} {
			if !field.value.Valid || field.value.String == "" {
				return nil, &SchemaError{
					Source: field.source,
					Column: field.column,
					Reason: fmt.Sprintf("blank value for occupation code %q", code.String),
				}
			}
		}
		occupations = append(occupations, recommend.Occupation{
			Code:           code.String,
			Title:          title.String,
			Description:    description.String,
			Skill:          skill.String,
			Experience:     experience.String,
			EducationLevel: education.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read occupation rows: %w", err)
	}
	if len(occupations) == 0 {
		return nil, &SchemaError{
			Source: db.data.OccupationFile,
			Reason: "join over OccupationCode produced no rows",
		}
	}

	logging.Info().
		Int("occupations", len(occupations)).
		Msg("Occupation corpus loaded")
	return occupations, nil
}

// checkColumns verifies the file exposes every required column. A LIMIT 0
// query parses the header without materializing any rows.
func (db *DB) checkColumns(ctx context.Context, file string, required []string) error {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT 0", db.readCSVExpr(db.dataPath(file)))
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return &SchemaError{Source: file, Reason: fmt.Sprintf("unreadable: %v", err)}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return &SchemaError{Source: file, Reason: fmt.Sprintf("header unavailable: %v", err)}
	}
	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c] = struct{}{}
	}
	for _, want := range required {
		if _, ok := present[want]; !ok {
			return &SchemaError{Source: file, Column: want, Reason: "required column missing"}
		}
	}
	return rows.Err()
}
