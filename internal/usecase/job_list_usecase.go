package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

type JobListParams struct {
	Source string
	Remote *bool
	Search string
	Limit  int
	Offset int
}

type JobStats struct {
	TotalJobs int                      `json:"total_jobs"`
	Sources   []repository.SourceStat  `json:"sources"`
	TopSkills []repository.SkillDemand `json:"top_skills"`
}

const topSkillsLimit = 10

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]job.StructuredJob, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.StructuredJob, error)
	Stats(ctx context.Context) (JobStats, error)
}

type JobList struct {
	jobs repository.JobRepository
}

func NewJobListUsecase(jobs repository.JobRepository) *JobList {
	return &JobList{jobs: jobs}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]job.StructuredJob, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	out, err := u.jobs.List(ctx, repository.JobFilter{
		Source: params.Source,
		Remote: params.Remote,
		Search: params.Search,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *JobList) GetJob(ctx context.Context, id uuid.UUID) (job.StructuredJob, error) {
	if id == uuid.Nil {
		return job.StructuredJob{}, ErrInvalidInput
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.StructuredJob{}, ErrJobNotFound
		}
		return job.StructuredJob{}, ErrInternal
	}
	return j, nil
}

func (u *JobList) Stats(ctx context.Context) (JobStats, error) {
	total, err := u.jobs.Count(ctx)
	if err != nil {
		return JobStats{}, ErrInternal
	}
	sources, err := u.jobs.SourceStats(ctx)
	if err != nil {
		return JobStats{}, ErrInternal
	}
	skills, err := u.jobs.SkillDemand(ctx, topSkillsLimit)
	if err != nil {
		return JobStats{}, ErrInternal
	}
	return JobStats{TotalJobs: total, Sources: sources, TopSkills: skills}, nil
}
