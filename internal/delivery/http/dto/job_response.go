package dto

import (
	"time"

	"jobmatch/internal/domain/job"
)

type JobResponse struct {
	ID           string           `json:"id"`
	Source       string           `json:"source"`
	Title        string           `json:"title"`
	Company      string           `json:"company"`
	Description  string           `json:"description,omitempty"`
	Requirements job.Requirements `json:"requirements"`
	PostedDate   string           `json:"posted_date,omitempty"`
	URL          string           `json:"url,omitempty"`
}

func FromJob(j job.StructuredJob) JobResponse {
	out := JobResponse{
		ID:           j.ID.String(),
		Source:       j.Source,
		Title:        j.Title,
		Company:      j.Company,
		Description:  j.Description,
		Requirements: j.Requirements,
	}
	if j.PostedAt != nil && !j.PostedAt.IsZero() {
		out.PostedDate = j.PostedAt.UTC().Format(time.RFC3339)
	}
	if j.URL != nil {
		out.URL = *j.URL
	}
	return out
}

func FromJobs(jobs []job.StructuredJob) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
