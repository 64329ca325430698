package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/domain/feedback"
	"jobmatch/internal/domain/ranking"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

type FeedbackInput struct {
	JobID       uuid.UUID
	Type        string
	PresetUsed  string
	WeightsUsed *ranking.Weights
}

type FeedbackUsecase interface {
	Record(ctx context.Context, candidateID uuid.UUID, in FeedbackInput) (feedback.Record, error)
	History(ctx context.Context, candidateID uuid.UUID, limit int) ([]feedback.Record, error)
}

type Feedback struct {
	feedback   repository.FeedbackRepository
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	cache      RecommendationCache
}

func NewFeedbackUsecase(
	fb repository.FeedbackRepository,
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	cache RecommendationCache,
) *Feedback {
	return &Feedback{feedback: fb, candidates: candidates, jobs: jobs, cache: cache}
}

func (u *Feedback) Record(ctx context.Context, candidateID uuid.UUID, in FeedbackInput) (feedback.Record, error) {
	if candidateID == uuid.Nil || in.JobID == uuid.Nil {
		return feedback.Record{}, ErrInvalidInput
	}
	if !feedback.ValidType(in.Type) {
		return feedback.Record{}, ErrInvalidInput
	}

	if _, err := u.candidates.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return feedback.Record{}, ErrCandidateNotFound
		}
		return feedback.Record{}, ErrInternal
	}
	if _, err := u.jobs.GetByID(ctx, in.JobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return feedback.Record{}, ErrJobNotFound
		}
		return feedback.Record{}, ErrInternal
	}

	rec := feedback.Record{
		CandidateID: candidateID,
		JobID:       in.JobID,
		Type:        in.Type,
		WeightsUsed: in.WeightsUsed,
	}
	if in.PresetUsed != "" {
		preset := in.PresetUsed
		rec.PresetUsed = &preset
	}

	created, err := u.feedback.Create(ctx, rec)
	if err != nil {
		return feedback.Record{}, ErrInternal
	}

	// New feedback changes the derived pattern profile.
	if u.cache != nil {
		_ = u.cache.Delete(ctx, CandidatePatternsCacheKey(candidateID))
	}

	return created, nil
}

func (u *Feedback) History(ctx context.Context, candidateID uuid.UUID, limit int) ([]feedback.Record, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	out, err := u.feedback.ListByCandidate(ctx, candidateID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
