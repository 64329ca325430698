package aggregator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"jobmatch/internal/config"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/repository"
	"jobmatch/internal/ws"
)

// RunStats summarizes one aggregation pass.
type RunStats struct {
	Fetched     int            `json:"fetched"`
	Invalid     int            `json:"invalid"`
	NonTech     int            `json:"non_tech"`
	Duplicates  int            `json:"duplicates"`
	Upserted    int            `json:"upserted"`
	PerSource   map[string]int `json:"per_source"`
	FetchErrors []string       `json:"fetch_errors,omitempty"`
}

// Aggregator pulls postings from the configured boards, cleans them up, and
// writes them into Postgres.
type Aggregator struct {
	jobs    repository.JobRepository
	cache   *cache.Redis
	cfg     config.AggregatorConfig
	logger  *log.Logger
	deduper *Deduper
}

func New(jobs repository.JobRepository, c *cache.Redis, cfg config.AggregatorConfig, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	return &Aggregator{
		jobs:    jobs,
		cache:   c,
		cfg:     cfg,
		logger:  logger,
		deduper: NewDeduper(),
	}
}

// DefaultFetchers returns the standard set of boards for a scheduled run.
// golang.cafe renders listings server-side today but has shipped JS-only
// layouts before, so its fetcher carries a headless browser fallback.
func DefaultFetchers() []Fetcher {
	return []Fetcher{
		NewRemotiveFetcher(),
		NewRemoteOKFetcher(),
		WithHeadlessFallback(
			NewGolangCafeFetcher(0),
			NewHeadlessBoardFetcher("golangcafe", golangCafeBaseURL, "/job/", 0),
		),
	}
}

// Run fetches all boards concurrently, then pipes the postings through
// validation, the tech-title filter, deduplication, and requirement
// extraction before upserting them. A board failing to fetch is recorded in
// the stats but does not abort the run.
func (a *Aggregator) Run(ctx context.Context, fetchers []Fetcher) (RunStats, error) {
	stats := RunStats{PerSource: map[string]int{}}
	if len(fetchers) == 0 {
		return stats, fmt.Errorf("aggregator: no fetchers configured")
	}

	pool := NewWorkerPool(a.cfg.Workers, len(fetchers))
	if a.cfg.RatePerSecond > 0 {
		pool.SetRateLimit(a.cfg.RatePerSecond)
	}

	var (
		mu   sync.Mutex
		raws []job.RawPosting
	)
	results := pool.Run(ctx)
	for _, f := range fetchers {
		f := f
		pool.Submit(func(taskCtx context.Context) error {
			batch, err := f.Fetch(taskCtx)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Name(), err)
			}
			a.logger.Printf("aggregator: fetched %d postings from %s", len(batch), f.Name())
			mu.Lock()
			raws = append(raws, batch...)
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	for res := range results {
		if res.Err != nil {
			stats.FetchErrors = append(stats.FetchErrors, res.Err.Error())
			a.logger.Printf("aggregator: fetch failed: %v", res.Err)
		}
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	stats.Fetched = len(raws)

	valid := raws[:0:len(raws)]
	for _, raw := range raws {
		res := ValidateRaw(raw)
		if !res.Valid() {
			stats.Invalid++
			a.logger.Printf("aggregator: rejected %q from %s: %s", raw.Title, raw.Source, strings.Join(res.Errors, "; "))
			continue
		}
		if a.cfg.TechOnly && !IsTechJob(raw.Title) {
			stats.NonTech++
			continue
		}
		valid = append(valid, raw)
	}

	deduped := a.deduper.Dedupe(valid)
	stats.Duplicates = len(valid) - len(deduped)

	structured := make([]job.StructuredJob, 0, len(deduped))
	for _, raw := range deduped {
		j := job.StructuredJob{
			Source:       raw.Source,
			ExternalID:   raw.ExternalID,
			Title:        strings.TrimSpace(raw.Title),
			Company:      strings.TrimSpace(raw.Company),
			Description:  raw.Description,
			Requirements: ExtractRequirements(raw),
			PostedAt:     raw.PostedAt,
			URL:          raw.URL,
		}
		if res := ValidateStructured(j); !res.Valid() {
			stats.Invalid++
			continue
		}
		structured = append(structured, j)
		stats.PerSource[raw.Source]++
	}

	written, err := a.jobs.UpsertBatch(ctx, structured)
	if err != nil {
		return stats, fmt.Errorf("aggregator: upsert: %w", err)
	}
	stats.Upserted = written

	if written > 0 {
		for source, count := range stats.PerSource {
			ws.NotifyJobsIngested(source, count)
		}
		if a.cache != nil {
			if err := a.cache.InvalidateRecommendations(ctx); err != nil {
				a.logger.Printf("aggregator: cache invalidation failed: %v", err)
			}
		}
	}

	a.logger.Printf("aggregator: run complete: fetched=%d invalid=%d non_tech=%d duplicates=%d upserted=%d",
		stats.Fetched, stats.Invalid, stats.NonTech, stats.Duplicates, stats.Upserted)
	return stats, nil
}
