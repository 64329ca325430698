package ranking

import (
	"runtime"
	"sort"
	"sync"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
)

type RankedJob struct {
	Job    job.StructuredJob `json:"job"`
	Scores Breakdown         `json:"scores"`
}

// Rank scores every job for the candidate under the given weights and returns
// the list sorted by composite score descending. Jobs with equal composite
// scores keep their input order. The weights are an explicit parameter so one
// call never observes another call's configuration.
func Rank(cand candidate.Profile, jobs []job.StructuredJob, weights Weights) []RankedJob {
	ranked := make([]RankedJob, len(jobs))

	workers := runtime.NumCPU()
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range indexes {
				ranked[idx] = RankedJob{
					Job:    jobs[idx],
					Scores: scoreOne(cand, jobs[idx], weights),
				}
			}
		}()
	}
	for i := range jobs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.Composite > ranked[j].Scores.Composite
	})
	return ranked
}

// scoreOne never lets a single pathological job abort the batch: a panic
// while scoring yields a zero breakdown for that job only.
func scoreOne(cand candidate.Profile, j job.StructuredJob, weights Weights) (b Breakdown) {
	defer func() {
		if r := recover(); r != nil {
			b = Breakdown{}
		}
	}()

	req := j.Requirements
	b = Breakdown{
		Skill:      SkillScore(cand.Skills, req.Skills),
		Experience: ExperienceScore(cand.ExperienceYears, req.ExperienceMin, req.ExperienceMax),
		Seniority:  SeniorityScore(cand.Seniority, req.Seniority),
		Location:   LocationScore(cand.LocationPreference, req.Location, req.Remote),
		Salary:     SalaryScore(cand.SalaryExpected, req.SalaryMin, req.SalaryMax),
	}
	b.Composite = Composite(b, weights)
	return b
}
