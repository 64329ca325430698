package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"
)

// DemoCandidateSeeder inserts a small set of fixed-ID candidate profiles so a
// fresh database has something to rank against. Inserts are idempotent.
type DemoCandidateSeeder struct{}

func (DemoCandidateSeeder) Name() string { return "demo_candidates" }

func (DemoCandidateSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "candidates",
		"id", "skills", "experience_years", "seniority",
		"location_preference", "remote_preferred", "salary_expected", "created_at",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		ID         string
		Skills     []string
		Years      int
		Seniority  string
		Location   string
		Remote     bool
		SalaryWant int
	}{
		{
			ID:         "8c9e2f1a-0b3d-4e5f-9a7b-1c2d3e4f5a6b",
			Skills:     []string{"Python", "Django", "PostgreSQL", "AWS"},
			Years:      5,
			Seniority:  "senior",
			Location:   "Remote",
			Remote:     true,
			SalaryWant: 130000,
		},
		{
			ID:         "d4f8a1b2-6c7e-4d9f-8b0a-2e3f4a5b6c7d",
			Skills:     []string{"Go", "Kubernetes", "Terraform"},
			Years:      3,
			Seniority:  "mid",
			Location:   "Berlin, Germany",
			Remote:     false,
			SalaryWant: 75000,
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO candidates
				(id, skills, experience_years, seniority, location_preference, remote_preferred, salary_expected)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO NOTHING`,
			it.ID,
			it.Skills,
			it.Years,
			it.Seniority,
			it.Location,
			it.Remote,
			it.SalaryWant,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
