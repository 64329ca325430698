package aggregator

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/google/uuid"

	"jobmatch/internal/config"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/repository"
)

type stubFetcher struct {
	name string
	raws []job.RawPosting
	err  error
}

func (s *stubFetcher) Name() string { return s.name }

func (s *stubFetcher) Fetch(ctx context.Context) ([]job.RawPosting, error) {
	return s.raws, s.err
}

type captureJobRepo struct {
	upserted []job.StructuredJob
	err      error
}

func (m *captureJobRepo) UpsertBatch(ctx context.Context, jobs []job.StructuredJob) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.upserted = append(m.upserted, jobs...)
	return len(jobs), nil
}

func (m *captureJobRepo) GetByID(ctx context.Context, id uuid.UUID) (job.StructuredJob, error) {
	return job.StructuredJob{}, repository.ErrJobNotFound
}

func (m *captureJobRepo) List(ctx context.Context, f repository.JobFilter) ([]job.StructuredJob, error) {
	return nil, nil
}

func (m *captureJobRepo) ListAll(ctx context.Context) ([]job.StructuredJob, error) {
	return nil, nil
}

func (m *captureJobRepo) Count(ctx context.Context) (int, error) { return len(m.upserted), nil }

func (m *captureJobRepo) SourceStats(ctx context.Context) ([]repository.SourceStat, error) {
	return nil, nil
}

func (m *captureJobRepo) SkillDemand(ctx context.Context, limit int) ([]repository.SkillDemand, error) {
	return nil, nil
}

func testAggregator(repo repository.JobRepository) *Aggregator {
	cfg := config.AggregatorConfig{Workers: 2, TechOnly: true}
	return New(repo, nil, cfg, log.New(io.Discard, "", 0))
}

func TestAggregatorRun_Pipeline(t *testing.T) {
	repo := &captureJobRepo{}
	agg := testAggregator(repo)

	fetchers := []Fetcher{
		&stubFetcher{name: "one", raws: []job.RawPosting{
			rawJob("one", "Backend Engineer", "Acme", "Remote", "Python and Go, 3-5 years."),
			rawJob("one", "Registered Nurse", "Hospital", "NYC", "not a tech job"),
			{Source: "one", Title: "X", Company: ""}, // fails validation
		}},
		&stubFetcher{name: "two", raws: []job.RawPosting{
			rawJob("two", "Backend Engineer", "Acme Inc", "Remote", "Python and Go."), // duplicate of the first
			rawJob("two", "DevOps Engineer", "Globex", "Remote", "Kubernetes, Terraform."),
		}},
	}

	stats, err := agg.Run(context.Background(), fetchers)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if stats.Fetched != 5 {
		t.Fatalf("fetched = %d, want 5", stats.Fetched)
	}
	if stats.Invalid != 1 {
		t.Fatalf("invalid = %d, want 1", stats.Invalid)
	}
	if stats.NonTech != 1 {
		t.Fatalf("non_tech = %d, want 1", stats.NonTech)
	}
	if stats.Duplicates != 1 {
		t.Fatalf("duplicates = %d, want 1", stats.Duplicates)
	}
	if stats.Upserted != 2 {
		t.Fatalf("upserted = %d, want 2", stats.Upserted)
	}
	if len(repo.upserted) != 2 {
		t.Fatalf("repo received %d jobs, want 2", len(repo.upserted))
	}

	for _, j := range repo.upserted {
		if len(j.Requirements.Skills) == 0 {
			t.Fatalf("job %q has no extracted skills", j.Title)
		}
	}
}

func TestAggregatorRun_FetchErrorDoesNotAbort(t *testing.T) {
	repo := &captureJobRepo{}
	agg := testAggregator(repo)

	fetchers := []Fetcher{
		&stubFetcher{name: "down", err: errors.New("connection refused")},
		&stubFetcher{name: "up", raws: []job.RawPosting{
			rawJob("up", "Backend Engineer", "Acme", "Remote", "Go services."),
		}},
	}

	stats, err := agg.Run(context.Background(), fetchers)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(stats.FetchErrors) != 1 {
		t.Fatalf("fetch errors = %v, want 1 entry", stats.FetchErrors)
	}
	if stats.Upserted != 1 {
		t.Fatalf("upserted = %d, want 1", stats.Upserted)
	}
}

func TestAggregatorRun_NoFetchers(t *testing.T) {
	agg := testAggregator(&captureJobRepo{})
	if _, err := agg.Run(context.Background(), nil); err == nil {
		t.Fatal("expected an error with no fetchers")
	}
}

func TestAggregatorRun_UpsertErrorPropagates(t *testing.T) {
	repo := &captureJobRepo{err: errors.New("db down")}
	agg := testAggregator(repo)

	fetchers := []Fetcher{
		&stubFetcher{name: "up", raws: []job.RawPosting{
			rawJob("up", "Backend Engineer", "Acme", "Remote", "Go services."),
		}},
	}
	if _, err := agg.Run(context.Background(), fetchers); err == nil {
		t.Fatal("expected upsert error to propagate")
	}
}
