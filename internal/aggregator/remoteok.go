package aggregator

import (
	"context"
	"net/http"
	"strings"
	"time"

	"jobmatch/internal/domain/job"
)

const remoteOKAPIURL = "https://remoteok.com/api"

type RemoteOKFetcher struct {
	client *http.Client
	apiURL string
}

func NewRemoteOKFetcher() *RemoteOKFetcher {
	return &RemoteOKFetcher{client: newHTTPClient(), apiURL: remoteOKAPIURL}
}

func (f *RemoteOKFetcher) Name() string { return "remoteok" }

type remoteOKJob struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Date        string   `json:"date"`
	SalaryMin   int      `json:"salary_min"`
	SalaryMax   int      `json:"salary_max"`
}

func (f *RemoteOKFetcher) Fetch(ctx context.Context) ([]job.RawPosting, error) {
	// The first array element is a legal notice, not a posting.
	var items []remoteOKJob
	if err := fetchJSON(ctx, f.client, f.apiURL, &items); err != nil {
		return nil, err
	}

	out := make([]job.RawPosting, 0, len(items))
	for _, j := range items {
		if j.ID == "" || strings.TrimSpace(j.Position) == "" {
			continue
		}

		raw := job.RawPosting{
			Source:      f.Name(),
			ExternalID:  j.ID,
			Title:       strings.TrimSpace(j.Position),
			Company:     strings.TrimSpace(j.Company),
			Description: stripHTML(j.Description),
			Tags:        j.Tags,
		}

		loc := strings.TrimSpace(j.Location)
		if loc == "" {
			loc = "Remote"
		}
		raw.Location = &loc

		if j.SalaryMin > 0 && j.SalaryMax > 0 {
			raw.SalaryText = formatSalaryRange(j.SalaryMin, j.SalaryMax)
		}
		if j.URL != "" {
			u := j.URL
			raw.URL = &u
		}
		if t, err := time.Parse(time.RFC3339, j.Date); err == nil {
			raw.PostedAt = &t
		}

		out = append(out, raw)
	}
	return out, nil
}
