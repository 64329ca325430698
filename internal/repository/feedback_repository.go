package repository

import (
	"context"
	"encoding/json"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/feedback"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/ranking"

	"github.com/google/uuid"
)

type PresetStats struct {
	TotalInteractions int     `json:"total_interactions"`
	LikeRate          float64 `json:"like_rate"`
}

type FeedbackRepository interface {
	Create(ctx context.Context, rec feedback.Record) (feedback.Record, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]feedback.Record, error)
	ListLikedJobs(ctx context.Context, candidateID uuid.UUID, limit int) ([]job.StructuredJob, error)
	CountByCandidate(ctx context.Context, candidateID uuid.UUID, feedbackType string) (int, error)
	PresetEffectiveness(ctx context.Context) (map[string]PresetStats, error)
}

type PostgresFeedbackRepository struct {
	db database.DB
}

func NewPostgresFeedbackRepository(db database.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Create(ctx context.Context, rec feedback.Record) (feedback.Record, error) {
	var weightsJSON any
	if rec.WeightsUsed != nil {
		b, err := json.Marshal(rec.WeightsUsed)
		if err != nil {
			return feedback.Record{}, err
		}
		weightsJSON = b
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO feedback (candidate_id, job_id, feedback_type, preset_used, weights_used)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		rec.CandidateID, rec.JobID, rec.Type, rec.PresetUsed, weightsJSON,
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return feedback.Record{}, err
	}
	return rec, nil
}

func (r *PostgresFeedbackRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]feedback.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, candidate_id, job_id, feedback_type, preset_used, weights_used, created_at
		 FROM feedback WHERE candidate_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		candidateID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedback.Record, 0)
	for rows.Next() {
		var rec feedback.Record
		var weightsJSON []byte
		if err := rows.Scan(&rec.ID, &rec.CandidateID, &rec.JobID, &rec.Type,
			&rec.PresetUsed, &weightsJSON, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if len(weightsJSON) > 0 {
			var w ranking.Weights
			if err := json.Unmarshal(weightsJSON, &w); err == nil {
				rec.WeightsUsed = &w
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresFeedbackRepository) ListLikedJobs(ctx context.Context, candidateID uuid.UUID, limit int) ([]job.StructuredJob, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.source, j.external_id, j.title, j.company, COALESCE(j.description, ''),
			j.skills, j.experience_min, j.experience_max, j.seniority, j.location, j.remote,
			j.salary_min, j.salary_max, j.posted_date, j.url, j.created_at
		 FROM feedback f
		 JOIN jobs j ON j.id = f.job_id
		 WHERE f.candidate_id = $1 AND f.feedback_type = $2
		 ORDER BY f.created_at DESC LIMIT $3`,
		candidateID, feedback.TypeLike, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresFeedbackRepository) PresetEffectiveness(ctx context.Context) (map[string]PresetStats, error) {
	rows, err := r.db.Query(ctx,
		`SELECT preset_used,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE feedback_type = $1) AS likes
		 FROM feedback
		 WHERE preset_used IS NOT NULL
		 GROUP BY preset_used`,
		feedback.TypeLike,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]PresetStats{}
	for rows.Next() {
		var preset string
		var total, likes int
		if err := rows.Scan(&preset, &total, &likes); err != nil {
			return nil, err
		}
		st := PresetStats{TotalInteractions: total}
		if total > 0 {
			st.LikeRate = float64(likes) / float64(total)
		}
		out[preset] = st
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresFeedbackRepository) CountByCandidate(ctx context.Context, candidateID uuid.UUID, feedbackType string) (int, error) {
	var c int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM feedback WHERE candidate_id = $1 AND feedback_type = $2`,
		candidateID, feedbackType,
	).Scan(&c)
	if err != nil {
		return 0, err
	}
	return c, nil
}
