package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"
)

// SchemaSeeder creates the tables the service depends on when they do not
// exist yet. It never alters existing tables.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY,
			source TEXT NOT NULL,
			external_id TEXT NOT NULL,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			skills TEXT[] NOT NULL DEFAULT '{}',
			experience_min INT,
			experience_max INT,
			seniority TEXT,
			location TEXT,
			remote BOOLEAN NOT NULL DEFAULT FALSE,
			salary_min INT,
			salary_max INT,
			posted_date TIMESTAMPTZ,
			url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (source, external_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_posted_date ON jobs (posted_date DESC NULLS LAST)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id UUID PRIMARY KEY,
			skills TEXT[] NOT NULL DEFAULT '{}',
			experience_years INT NOT NULL DEFAULT 0,
			seniority TEXT,
			location_preference TEXT,
			remote_preferred BOOLEAN NOT NULL DEFAULT FALSE,
			salary_expected INT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS candidate_weights (
			candidate_id UUID PRIMARY KEY REFERENCES candidates (id) ON DELETE CASCADE,
			skill_weight DOUBLE PRECISION NOT NULL,
			experience_weight DOUBLE PRECISION NOT NULL,
			seniority_weight DOUBLE PRECISION NOT NULL,
			location_weight DOUBLE PRECISION NOT NULL,
			salary_weight DOUBLE PRECISION NOT NULL,
			preset TEXT,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id BIGSERIAL PRIMARY KEY,
			candidate_id UUID NOT NULL,
			job_id UUID NOT NULL,
			feedback_type TEXT NOT NULL CHECK (feedback_type IN ('like', 'dislike')),
			preset_used TEXT,
			weights_used JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_candidate ON feedback (candidate_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
