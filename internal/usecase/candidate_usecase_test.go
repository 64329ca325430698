package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"jobmatch/internal/domain/job"
)

func TestCandidateCreate(t *testing.T) {
	repo := newMockCandidateRepo()
	u := NewCandidateUsecase(repo, nil)

	created, err := u.Create(context.Background(), CandidateInput{
		Skills:             []string{" Python ", "", "SQL"},
		ExperienceYears:    4,
		Seniority:          "mid",
		LocationPreference: "Berlin",
		RemotePreferred:    true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected an assigned id")
	}
	if len(created.Skills) != 2 {
		t.Fatalf("skills = %v, want blanks dropped", created.Skills)
	}
	if created.Seniority == nil || *created.Seniority != job.SeniorityMid {
		t.Fatalf("seniority = %v, want mid", created.Seniority)
	}
}

func TestCandidateCreate_Validation(t *testing.T) {
	u := NewCandidateUsecase(newMockCandidateRepo(), nil)

	if _, err := u.Create(context.Background(), CandidateInput{ExperienceYears: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative experience: err = %v", err)
	}
	neg := -1
	if _, err := u.Create(context.Background(), CandidateInput{SalaryExpected: &neg}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative salary: err = %v", err)
	}
	if _, err := u.Create(context.Background(), CandidateInput{Seniority: "wizard"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown seniority: err = %v", err)
	}
}

func TestCandidateUpdate_InvalidatesCaches(t *testing.T) {
	repo := newMockCandidateRepo()
	cache := newMemoryCache()
	u := NewCandidateUsecase(repo, cache)

	created, err := u.Create(context.Background(), CandidateInput{Skills: []string{"go"}})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_ = cache.SetJSON(context.Background(), "rec:"+created.ID.String()+":abc", "x", 0)
	_ = cache.SetJSON(context.Background(), CandidatePatternsCacheKey(created.ID), "x", 0)

	if _, err := u.Update(context.Background(), created.ID, CandidateInput{Skills: []string{"rust"}}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if cache.size() != 0 {
		t.Fatalf("cache has %d entries after update, want 0", cache.size())
	}
}

func TestCandidateGetAndDelete(t *testing.T) {
	repo := newMockCandidateRepo()
	u := NewCandidateUsecase(repo, nil)

	created, err := u.Create(context.Background(), CandidateInput{Skills: []string{"go"}})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := u.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatal("id mismatch")
	}

	if err := u.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := u.Get(context.Background(), created.ID); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("err after delete = %v, want ErrCandidateNotFound", err)
	}
	if err := u.Delete(context.Background(), created.ID); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("second delete err = %v, want ErrCandidateNotFound", err)
	}
}
