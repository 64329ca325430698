package repository

import (
	"context"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
)

type CandidateRepository interface {
	Create(ctx context.Context, c candidate.Profile) (candidate.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
	Update(ctx context.Context, c candidate.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Profile) (candidate.Profile, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Skills == nil {
		c.Skills = make([]string, 0)
	}
	var seniority *string
	if c.Seniority != nil {
		s := string(*c.Seniority)
		seniority = &s
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO candidates
			(id, skills, experience_years, seniority, location_preference, remote_preferred, salary_expected)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		c.ID, c.Skills, c.ExperienceYears, seniority,
		c.LocationPreference, c.RemotePreferred, c.SalaryExpected,
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return candidate.Profile{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, skills, experience_years, seniority, location_preference,
			remote_preferred, salary_expected, created_at
		 FROM candidates WHERE id = $1`, id)

	var c candidate.Profile
	var seniority *string
	err := row.Scan(
		&c.ID, &c.Skills, &c.ExperienceYears, &seniority,
		&c.LocationPreference, &c.RemotePreferred, &c.SalaryExpected, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, err
	}
	if seniority != nil {
		if lvl, ok := job.ParseSeniority(*seniority); ok {
			c.Seniority = &lvl
		}
	}
	if c.Skills == nil {
		c.Skills = make([]string, 0)
	}
	return c, nil
}

func (r *PostgresCandidateRepository) Update(ctx context.Context, c candidate.Profile) error {
	var seniority *string
	if c.Seniority != nil {
		s := string(*c.Seniority)
		seniority = &s
	}
	affected, err := r.db.Exec(ctx,
		`UPDATE candidates SET
			skills = $2,
			experience_years = $3,
			seniority = $4,
			location_preference = $5,
			remote_preferred = $6,
			salary_expected = $7
		 WHERE id = $1`,
		c.ID, c.Skills, c.ExperienceYears, seniority,
		c.LocationPreference, c.RemotePreferred, c.SalaryExpected,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}
