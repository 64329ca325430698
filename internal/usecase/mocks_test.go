package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/feedback"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/repository"
)

type mockCandidateRepo struct {
	profiles map[uuid.UUID]candidate.Profile
	err      error
}

func newMockCandidateRepo(profiles ...candidate.Profile) *mockCandidateRepo {
	m := &mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{}}
	for _, p := range profiles {
		m.profiles[p.ID] = p
	}
	return m
}

func (m *mockCandidateRepo) Create(ctx context.Context, c candidate.Profile) (candidate.Profile, error) {
	if m.err != nil {
		return candidate.Profile{}, m.err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.profiles[c.ID] = c
	return c, nil
}

func (m *mockCandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	if m.err != nil {
		return candidate.Profile{}, m.err
	}
	p, ok := m.profiles[id]
	if !ok {
		return candidate.Profile{}, repository.ErrCandidateNotFound
	}
	return p, nil
}

func (m *mockCandidateRepo) Update(ctx context.Context, c candidate.Profile) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.profiles[c.ID]; !ok {
		return repository.ErrCandidateNotFound
	}
	m.profiles[c.ID] = c
	return nil
}

func (m *mockCandidateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.profiles[id]; !ok {
		return repository.ErrCandidateNotFound
	}
	delete(m.profiles, id)
	return nil
}

type mockJobRepo struct {
	jobs []job.StructuredJob
	err  error
}

func (m *mockJobRepo) UpsertBatch(ctx context.Context, jobs []job.StructuredJob) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.jobs = append(m.jobs, jobs...)
	return len(jobs), nil
}

func (m *mockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (job.StructuredJob, error) {
	if m.err != nil {
		return job.StructuredJob{}, m.err
	}
	for _, j := range m.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.StructuredJob{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) List(ctx context.Context, f repository.JobFilter) ([]job.StructuredJob, error) {
	return m.jobs, m.err
}

func (m *mockJobRepo) ListAll(ctx context.Context) ([]job.StructuredJob, error) {
	return m.jobs, m.err
}

func (m *mockJobRepo) Count(ctx context.Context) (int, error) {
	return len(m.jobs), m.err
}

func (m *mockJobRepo) SourceStats(ctx context.Context) ([]repository.SourceStat, error) {
	return nil, m.err
}

func (m *mockJobRepo) SkillDemand(ctx context.Context, limit int) ([]repository.SkillDemand, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := map[string]int{}
	for _, j := range m.jobs {
		for _, s := range j.Requirements.Skills {
			counts[strings.ToLower(s)]++
		}
	}
	out := make([]repository.SkillDemand, 0, len(counts))
	for skill, n := range counts {
		out = append(out, repository.SkillDemand{Skill: skill, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type mockWeightRepo struct {
	stored map[uuid.UUID]repository.StoredWeights
	err    error
}

func newMockWeightRepo() *mockWeightRepo {
	return &mockWeightRepo{stored: map[uuid.UUID]repository.StoredWeights{}}
}

func (m *mockWeightRepo) Get(ctx context.Context, candidateID uuid.UUID) (repository.StoredWeights, error) {
	if m.err != nil {
		return repository.StoredWeights{}, m.err
	}
	sw, ok := m.stored[candidateID]
	if !ok {
		return repository.StoredWeights{}, repository.ErrWeightsNotFound
	}
	return sw, nil
}

func (m *mockWeightRepo) Save(ctx context.Context, sw repository.StoredWeights) error {
	if m.err != nil {
		return m.err
	}
	m.stored[sw.CandidateID] = sw
	return nil
}

func (m *mockWeightRepo) Delete(ctx context.Context, candidateID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.stored, candidateID)
	return nil
}

type mockFeedbackRepo struct {
	records     []feedback.Record
	likedJobs   []job.StructuredJob
	presetStats map[string]repository.PresetStats
	err         error
	nextID      int64
}

func (m *mockFeedbackRepo) Create(ctx context.Context, rec feedback.Record) (feedback.Record, error) {
	if m.err != nil {
		return feedback.Record{}, m.err
	}
	m.nextID++
	rec.ID = m.nextID
	m.records = append(m.records, rec)
	return rec, nil
}

func (m *mockFeedbackRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]feedback.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []feedback.Record
	for _, r := range m.records {
		if r.CandidateID == candidateID {
			out = append(out, r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockFeedbackRepo) ListLikedJobs(ctx context.Context, candidateID uuid.UUID, limit int) ([]job.StructuredJob, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := m.likedJobs
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockFeedbackRepo) CountByCandidate(ctx context.Context, candidateID uuid.UUID, feedbackType string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, r := range m.records {
		if r.CandidateID == candidateID && r.Type == feedbackType {
			n++
		}
	}
	return n, nil
}

func (m *mockFeedbackRepo) PresetEffectiveness(ctx context.Context) (map[string]repository.PresetStats, error) {
	return m.presetStats, m.err
}

// memoryCache is an in-process RecommendationCache for tests. Pattern deletes
// use a trailing-star prefix match only, which is all the usecases produce.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = b
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *memoryCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
