package usecase

import (
	"context"
	"errors"
	"strings"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

type CandidateInput struct {
	Skills             []string
	ExperienceYears    int
	Seniority          string
	LocationPreference string
	RemotePreferred    bool
	SalaryExpected     *int
}

type CandidateUsecase interface {
	Create(ctx context.Context, in CandidateInput) (candidate.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
	Update(ctx context.Context, id uuid.UUID, in CandidateInput) (candidate.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Candidate struct {
	candidates repository.CandidateRepository
	cache      RecommendationCache
}

func NewCandidateUsecase(candidates repository.CandidateRepository, cache RecommendationCache) *Candidate {
	return &Candidate{candidates: candidates, cache: cache}
}

func (u *Candidate) Create(ctx context.Context, in CandidateInput) (candidate.Profile, error) {
	profile, err := profileFromInput(in)
	if err != nil {
		return candidate.Profile{}, err
	}

	created, err := u.candidates.Create(ctx, profile)
	if err != nil {
		return candidate.Profile{}, ErrInternal
	}
	return created, nil
}

func (u *Candidate) Get(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	if id == uuid.Nil {
		return candidate.Profile{}, ErrInvalidInput
	}
	c, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, ErrInternal
	}
	return c, nil
}

func (u *Candidate) Update(ctx context.Context, id uuid.UUID, in CandidateInput) (candidate.Profile, error) {
	if id == uuid.Nil {
		return candidate.Profile{}, ErrInvalidInput
	}

	profile, err := profileFromInput(in)
	if err != nil {
		return candidate.Profile{}, err
	}
	profile.ID = id

	if err := u.candidates.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, ErrInternal
	}

	u.invalidate(ctx, id)

	updated, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		return candidate.Profile{}, ErrInternal
	}
	return updated, nil
}

func (u *Candidate) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.candidates.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return ErrCandidateNotFound
		}
		return ErrInternal
	}
	u.invalidate(ctx, id)
	return nil
}

func (u *Candidate) invalidate(ctx context.Context, id uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, "rec:"+id.String()+":*")
	_ = u.cache.Delete(ctx, CandidatePatternsCacheKey(id))
}

func profileFromInput(in CandidateInput) (candidate.Profile, error) {
	if in.ExperienceYears < 0 {
		return candidate.Profile{}, ErrInvalidInput
	}
	if in.SalaryExpected != nil && *in.SalaryExpected < 0 {
		return candidate.Profile{}, ErrInvalidInput
	}

	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	profile := candidate.Profile{
		Skills:          skills,
		ExperienceYears: in.ExperienceYears,
		RemotePreferred: in.RemotePreferred,
		SalaryExpected:  in.SalaryExpected,
	}

	if loc := strings.TrimSpace(in.LocationPreference); loc != "" {
		profile.LocationPreference = &loc
	}
	if s := strings.TrimSpace(in.Seniority); s != "" {
		lvl, ok := job.ParseSeniority(s)
		if !ok {
			return candidate.Profile{}, ErrInvalidInput
		}
		profile.Seniority = &lvl
	}
	return profile, nil
}
