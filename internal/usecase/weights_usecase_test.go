package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"testing"

	"github.com/google/uuid"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/ranking"
	"jobmatch/internal/repository"
)

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestWeightsListPresets(t *testing.T) {
	u := NewWeightsUsecase(newMockCandidateRepo(), newMockWeightRepo(), nil, discardLogger())

	presets := u.ListPresets()
	if len(presets) != 5 {
		t.Fatalf("got %d presets, want 5", len(presets))
	}
	if presets[len(presets)-1].Name != "balanced" {
		t.Fatalf("last preset = %q, want balanced", presets[len(presets)-1].Name)
	}
	for _, p := range presets {
		if math.Abs(p.Weights.Sum()-1.0) > 0.001 {
			t.Fatalf("preset %q weights sum to %v", p.Name, p.Weights.Sum())
		}
	}
}

func TestWeightsGet_FallsBackToBalanced(t *testing.T) {
	cand := candidate.Profile{ID: uuid.New()}
	u := NewWeightsUsecase(newMockCandidateRepo(cand), newMockWeightRepo(), nil, discardLogger())

	sw, err := u.Get(context.Background(), cand.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if sw.Preset != "balanced" {
		t.Fatalf("preset = %q, want balanced", sw.Preset)
	}
}

func TestWeightsGet_UnknownCandidate(t *testing.T) {
	u := NewWeightsUsecase(newMockCandidateRepo(), newMockWeightRepo(), nil, discardLogger())

	_, err := u.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("err = %v, want ErrCandidateNotFound", err)
	}
}

func TestWeightsSavePreset(t *testing.T) {
	cand := candidate.Profile{ID: uuid.New()}
	weights := newMockWeightRepo()
	u := NewWeightsUsecase(newMockCandidateRepo(cand), weights, nil, discardLogger())

	sw, err := u.SavePreset(context.Background(), cand.ID, "skill_focused")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if sw.Preset != "skill_focused" || sw.Weights.Skill != 0.50 {
		t.Fatalf("stored %+v", sw)
	}

	if _, err := u.SavePreset(context.Background(), cand.ID, "no_such_preset"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestWeightsSaveCustom_NormalizesAndMatchesPreset(t *testing.T) {
	cand := candidate.Profile{ID: uuid.New()}
	u := NewWeightsUsecase(newMockCandidateRepo(cand), newMockWeightRepo(), nil, discardLogger())

	// Doubled balanced values normalize back onto the balanced preset.
	sw, err := u.SaveCustom(context.Background(), cand.ID, ranking.Weights{
		Skill: 0.60, Experience: 0.50, Seniority: 0.30, Location: 0.30, Salary: 0.30,
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if sw.Preset != "balanced" {
		t.Fatalf("preset = %q, want balanced after normalization", sw.Preset)
	}

	sw, err = u.SaveCustom(context.Background(), cand.ID, ranking.Weights{
		Skill: 0.70, Experience: 0.10, Seniority: 0.10, Location: 0.05, Salary: 0.05,
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if sw.Preset != PresetCustom {
		t.Fatalf("preset = %q, want custom", sw.Preset)
	}
	if math.Abs(sw.Weights.Sum()-1.0) > 0.001 {
		t.Fatalf("custom weights not normalized: sum = %v", sw.Weights.Sum())
	}
}

func TestWeightsSaveCustom_RejectsNegative(t *testing.T) {
	cand := candidate.Profile{ID: uuid.New()}
	u := NewWeightsUsecase(newMockCandidateRepo(cand), newMockWeightRepo(), nil, discardLogger())

	_, err := u.SaveCustom(context.Background(), cand.ID, ranking.Weights{Skill: -0.1, Experience: 0.5})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestWeightsSave_InvalidatesRecommendationCache(t *testing.T) {
	cand := candidate.Profile{ID: uuid.New()}
	cache := newMemoryCache()
	u := NewWeightsUsecase(newMockCandidateRepo(cand), newMockWeightRepo(), cache, discardLogger())

	key := RecommendationCacheKey(cand.ID, "balanced", ranking.Weights{}, 10)
	_ = cache.SetJSON(context.Background(), key, "cached", 0)
	otherKey := RecommendationCacheKey(uuid.New(), "balanced", ranking.Weights{}, 10)
	_ = cache.SetJSON(context.Background(), otherKey, "cached", 0)

	if _, err := u.SavePreset(context.Background(), cand.ID, "balanced"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if cache.size() != 1 {
		t.Fatalf("cache has %d entries, want 1 (other candidate untouched)", cache.size())
	}
}

func TestWeightsReset(t *testing.T) {
	cand := candidate.Profile{ID: uuid.New()}
	weights := newMockWeightRepo()
	weights.stored[cand.ID] = repository.StoredWeights{CandidateID: cand.ID, Preset: "skill_focused"}
	u := NewWeightsUsecase(newMockCandidateRepo(cand), weights, nil, discardLogger())

	if err := u.Reset(context.Background(), cand.ID); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, ok := weights.stored[cand.ID]; ok {
		t.Fatal("weights still stored after reset")
	}
}
