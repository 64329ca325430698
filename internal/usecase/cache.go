package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"jobmatch/internal/domain/ranking"

	"github.com/google/uuid"
)

// RecommendationCache is the subset of the cache the usecases depend on.
// Implementations may degrade to no-ops when the backing store is down.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type recommendationCacheKeyInput struct {
	CandidateID string          `json:"candidate_id"`
	Preset      string          `json:"preset"`
	Weights     ranking.Weights `json:"weights"`
	Limit       int             `json:"limit"`
}

func RecommendationCacheKey(candidateID uuid.UUID, preset string, weights ranking.Weights, limit int) string {
	in := recommendationCacheKeyInput{
		CandidateID: candidateID.String(),
		Preset:      preset,
		Weights:     weights,
		Limit:       limit,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "rec:" + candidateID.String() + ":" + hex.EncodeToString(sum[:])
}

func CandidatePatternsCacheKey(candidateID uuid.UUID) string {
	return "patterns:" + candidateID.String()
}
