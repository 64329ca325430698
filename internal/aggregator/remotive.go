package aggregator

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jobmatch/internal/domain/job"
)

const remotiveAPIURL = "https://remotive.com/api/remote-jobs?category=software-dev"

type RemotiveFetcher struct {
	client *http.Client
	apiURL string
}

func NewRemotiveFetcher() *RemotiveFetcher {
	return &RemotiveFetcher{client: newHTTPClient(), apiURL: remotiveAPIURL}
}

func (f *RemotiveFetcher) Name() string { return "remotive" }

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	ID                        int      `json:"id"`
	URL                       string   `json:"url"`
	Title                     string   `json:"title"`
	CompanyName               string   `json:"company_name"`
	CandidateRequiredLocation string   `json:"candidate_required_location"`
	Tags                      []string `json:"tags"`
	PublicationDate           string   `json:"publication_date"`
	Salary                    string   `json:"salary"`
	Description               string   `json:"description"`
}

func (f *RemotiveFetcher) Fetch(ctx context.Context) ([]job.RawPosting, error) {
	var resp remotiveResponse
	if err := fetchJSON(ctx, f.client, f.apiURL, &resp); err != nil {
		return nil, err
	}

	out := make([]job.RawPosting, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		if j.ID == 0 || strings.TrimSpace(j.Title) == "" {
			continue
		}

		raw := job.RawPosting{
			Source:      f.Name(),
			ExternalID:  strconv.Itoa(j.ID),
			Title:       strings.TrimSpace(j.Title),
			Company:     strings.TrimSpace(j.CompanyName),
			Description: stripHTML(j.Description),
			Tags:        j.Tags,
			SalaryText:  j.Salary,
		}

		// Remotive postings are remote by definition; the required-location
		// field narrows the hiring region.
		loc := strings.TrimSpace(j.CandidateRequiredLocation)
		if loc == "" {
			loc = "Remote"
		} else if !strings.Contains(strings.ToLower(loc), "remote") {
			loc = "Remote (" + loc + ")"
		}
		raw.Location = &loc

		if j.URL != "" {
			u := j.URL
			raw.URL = &u
		}
		if t, err := time.Parse("2006-01-02T15:04:05", j.PublicationDate); err == nil {
			raw.PostedAt = &t
		}

		out = append(out, raw)
	}
	return out, nil
}
