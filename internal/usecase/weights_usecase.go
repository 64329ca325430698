package usecase

import (
	"context"
	"errors"
	"log"

	"jobmatch/internal/domain/ranking"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

type PresetInfo struct {
	Name    string          `json:"name"`
	Weights ranking.Weights `json:"weights"`
}

type WeightsUsecase interface {
	ListPresets() []PresetInfo
	Get(ctx context.Context, candidateID uuid.UUID) (repository.StoredWeights, error)
	SavePreset(ctx context.Context, candidateID uuid.UUID, preset string) (repository.StoredWeights, error)
	SaveCustom(ctx context.Context, candidateID uuid.UUID, w ranking.Weights) (repository.StoredWeights, error)
	Reset(ctx context.Context, candidateID uuid.UUID) error
}

type Weights struct {
	candidates repository.CandidateRepository
	weights    repository.WeightRepository
	cache      RecommendationCache
	logger     *log.Logger
}

func NewWeightsUsecase(
	candidates repository.CandidateRepository,
	weights repository.WeightRepository,
	cache RecommendationCache,
	logger *log.Logger,
) *Weights {
	return &Weights{candidates: candidates, weights: weights, cache: cache, logger: logger}
}

func (u *Weights) ListPresets() []PresetInfo {
	names := ranking.PresetNames()
	out := make([]PresetInfo, 0, len(names))
	for _, name := range names {
		w, err := ranking.Preset(name)
		if err != nil {
			continue
		}
		out = append(out, PresetInfo{Name: name, Weights: w})
	}
	return out
}

// Get returns the candidate's saved weights, falling back to the balanced
// preset when nothing has been saved yet.
func (u *Weights) Get(ctx context.Context, candidateID uuid.UUID) (repository.StoredWeights, error) {
	if candidateID == uuid.Nil {
		return repository.StoredWeights{}, ErrInvalidInput
	}

	sw, err := u.weights.Get(ctx, candidateID)
	if err == nil {
		return sw, nil
	}
	if !errors.Is(err, repository.ErrWeightsNotFound) {
		return repository.StoredWeights{}, ErrInternal
	}

	if _, err := u.candidates.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return repository.StoredWeights{}, ErrCandidateNotFound
		}
		return repository.StoredWeights{}, ErrInternal
	}

	w, _ := ranking.Preset(ranking.DefaultPreset)
	return repository.StoredWeights{
		CandidateID: candidateID,
		Weights:     w,
		Preset:      ranking.DefaultPreset,
	}, nil
}

func (u *Weights) SavePreset(ctx context.Context, candidateID uuid.UUID, preset string) (repository.StoredWeights, error) {
	if candidateID == uuid.Nil {
		return repository.StoredWeights{}, ErrInvalidInput
	}
	w, err := ranking.Preset(preset)
	if err != nil {
		return repository.StoredWeights{}, ErrUnknownPreset
	}
	return u.save(ctx, repository.StoredWeights{CandidateID: candidateID, Weights: w, Preset: preset})
}

// SaveCustom normalizes the supplied weights and, when they land within
// tolerance of a published preset, records that preset's name instead of
// "custom".
func (u *Weights) SaveCustom(ctx context.Context, candidateID uuid.UUID, w ranking.Weights) (repository.StoredWeights, error) {
	if candidateID == uuid.Nil {
		return repository.StoredWeights{}, ErrInvalidInput
	}
	if w.Skill < 0 || w.Experience < 0 || w.Seniority < 0 || w.Location < 0 || w.Salary < 0 {
		return repository.StoredWeights{}, ErrInvalidInput
	}

	normalized := ranking.NormalizeWeights(w)
	preset := PresetCustom
	if name, ok := ranking.MatchPresetName(normalized); ok {
		preset = name
	}
	return u.save(ctx, repository.StoredWeights{CandidateID: candidateID, Weights: normalized, Preset: preset})
}

func (u *Weights) Reset(ctx context.Context, candidateID uuid.UUID) error {
	if candidateID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.weights.Delete(ctx, candidateID); err != nil {
		return ErrInternal
	}
	u.invalidate(ctx, candidateID)
	return nil
}

func (u *Weights) save(ctx context.Context, sw repository.StoredWeights) (repository.StoredWeights, error) {
	if _, err := u.candidates.GetByID(ctx, sw.CandidateID); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return repository.StoredWeights{}, ErrCandidateNotFound
		}
		return repository.StoredWeights{}, ErrInternal
	}
	if err := u.weights.Save(ctx, sw); err != nil {
		return repository.StoredWeights{}, ErrInternal
	}
	u.invalidate(ctx, sw.CandidateID)
	return sw, nil
}

func (u *Weights) invalidate(ctx context.Context, candidateID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, "rec:"+candidateID.String()+":*"); err != nil && u.logger != nil {
		u.logger.Printf("[Weights] cache invalidation failed candidate=%s err=%v", candidateID, err)
	}
}
