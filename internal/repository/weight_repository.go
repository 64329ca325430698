package repository

import (
	"context"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/ranking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrWeightsNotFound = errors.New("weights not found")
)

// StoredWeights is a candidate's saved weight configuration. Preset is the
// matched preset name, or "custom" when no preset fits.
type StoredWeights struct {
	CandidateID uuid.UUID       `json:"candidate_id"`
	Weights     ranking.Weights `json:"weights"`
	Preset      string          `json:"preset"`
}

type WeightRepository interface {
	Get(ctx context.Context, candidateID uuid.UUID) (StoredWeights, error)
	Save(ctx context.Context, sw StoredWeights) error
	Delete(ctx context.Context, candidateID uuid.UUID) error
}

type PostgresWeightRepository struct {
	db database.DB
}

func NewPostgresWeightRepository(db database.DB) *PostgresWeightRepository {
	return &PostgresWeightRepository{db: db}
}

func (r *PostgresWeightRepository) Get(ctx context.Context, candidateID uuid.UUID) (StoredWeights, error) {
	row := r.db.QueryRow(ctx,
		`SELECT candidate_id, skill_weight, experience_weight, seniority_weight,
			location_weight, salary_weight, COALESCE(preset, '')
		 FROM candidate_weights WHERE candidate_id = $1`, candidateID)

	var sw StoredWeights
	err := row.Scan(
		&sw.CandidateID,
		&sw.Weights.Skill, &sw.Weights.Experience, &sw.Weights.Seniority,
		&sw.Weights.Location, &sw.Weights.Salary,
		&sw.Preset,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return StoredWeights{}, ErrWeightsNotFound
		}
		return StoredWeights{}, err
	}
	return sw, nil
}

func (r *PostgresWeightRepository) Save(ctx context.Context, sw StoredWeights) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidate_weights
			(candidate_id, skill_weight, experience_weight, seniority_weight,
			 location_weight, salary_weight, preset, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		 ON CONFLICT (candidate_id) DO UPDATE SET
			skill_weight = EXCLUDED.skill_weight,
			experience_weight = EXCLUDED.experience_weight,
			seniority_weight = EXCLUDED.seniority_weight,
			location_weight = EXCLUDED.location_weight,
			salary_weight = EXCLUDED.salary_weight,
			preset = EXCLUDED.preset,
			updated_at = NOW()`,
		sw.CandidateID,
		sw.Weights.Skill, sw.Weights.Experience, sw.Weights.Seniority,
		sw.Weights.Location, sw.Weights.Salary,
		sw.Preset,
	)
	return err
}

func (r *PostgresWeightRepository) Delete(ctx context.Context, candidateID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM candidate_weights WHERE candidate_id = $1`, candidateID)
	return err
}
