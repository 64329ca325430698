package usecase

import (
	"context"
	"errors"
	"log"

	"jobmatch/internal/domain/ranking"
	"jobmatch/internal/domain/recommendation"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
	skillGapWindow             = 10
)

// PresetCustom is reported when caller-supplied weights match no preset.
const PresetCustom = "custom"

type RecommendationParams struct {
	Preset  string
	Weights *ranking.Weights
	Limit   int
}

type RecommendationResult struct {
	CandidateID       uuid.UUID                       `json:"candidate_id"`
	PresetUsed        string                          `json:"preset_used"`
	Weights           ranking.Weights                 `json:"weights"`
	TotalJobsAnalyzed int                             `json:"total_jobs_analyzed"`
	Recommendations   []recommendation.Recommendation `json:"recommendations"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) (RecommendationResult, error)
}

type Recommendation struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	weights    repository.WeightRepository
	cache      RecommendationCache
	logger     *log.Logger
}

func NewRecommendationUsecase(
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	weights repository.WeightRepository,
	cache RecommendationCache,
	logger *log.Logger,
) *Recommendation {
	return &Recommendation{candidates: candidates, jobs: jobs, weights: weights, cache: cache, logger: logger}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) (RecommendationResult, error) {
	if candidateID == uuid.Nil {
		return RecommendationResult{}, ErrInvalidInput
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultRecommendationLimit
	}
	if limit < 1 || limit > maxRecommendationLimit {
		return RecommendationResult{}, ErrInvalidInput
	}

	cand, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return RecommendationResult{}, ErrCandidateNotFound
		}
		return RecommendationResult{}, ErrInternal
	}

	weights, presetUsed, err := u.resolveWeights(ctx, candidateID, params)
	if err != nil {
		return RecommendationResult{}, err
	}

	cacheKey := RecommendationCacheKey(candidateID, presetUsed, weights, limit)
	if u.cache != nil {
		var cached RecommendationResult
		if ok, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		return RecommendationResult{}, ErrInternal
	}
	if len(jobs) == 0 {
		return RecommendationResult{}, ErrNoJobsFound
	}

	ranked := ranking.Rank(cand, jobs, weights)
	top := ranked
	if len(top) > limit {
		top = top[:limit]
	}

	window := skillGapWindow
	if window > len(top) {
		window = len(top)
	}

	result := RecommendationResult{
		CandidateID:       candidateID,
		PresetUsed:        presetUsed,
		Weights:           weights,
		TotalJobsAnalyzed: len(jobs),
		Recommendations:   recommendation.GenerateBatch(cand, top, window),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, result, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Recommendation] cache write failed candidate=%s err=%v", candidateID, err)
		}
	}

	return result, nil
}

// resolveWeights picks, in order: caller-supplied weights, a named preset,
// the candidate's saved configuration, then the balanced default.
func (u *Recommendation) resolveWeights(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) (ranking.Weights, string, error) {
	if params.Weights != nil {
		w := ranking.NormalizeWeights(*params.Weights)
		if name, ok := ranking.MatchPresetName(w); ok {
			return w, name, nil
		}
		return w, PresetCustom, nil
	}

	if params.Preset != "" {
		w, err := ranking.Preset(params.Preset)
		if err != nil {
			return ranking.Weights{}, "", ErrUnknownPreset
		}
		return w, params.Preset, nil
	}

	if u.weights != nil {
		if sw, err := u.weights.Get(ctx, candidateID); err == nil {
			preset := sw.Preset
			if preset == "" {
				preset = PresetCustom
			}
			return ranking.NormalizeWeights(sw.Weights), preset, nil
		}
	}

	w, _ := ranking.Preset(ranking.DefaultPreset)
	return w, ranking.DefaultPreset, nil
}
