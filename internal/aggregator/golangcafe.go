package aggregator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"jobmatch/internal/domain/job"
)

const (
	golangCafeHost    = "golang.cafe"
	golangCafeBaseURL = "https://golang.cafe"
)

// GolangCafeFetcher scrapes golang.cafe job listings. The board has no JSON
// API, so the listing page is parsed directly.
type GolangCafeFetcher struct {
	allowedHost string
	baseURL     string
	maxJobs     int
}

func NewGolangCafeFetcher(maxJobs int) *GolangCafeFetcher {
	if maxJobs <= 0 {
		maxJobs = 50
	}
	return &GolangCafeFetcher{
		allowedHost: golangCafeHost,
		baseURL:     golangCafeBaseURL,
		maxJobs:     maxJobs,
	}
}

func (f *GolangCafeFetcher) Name() string { return "golangcafe" }

func (f *GolangCafeFetcher) Fetch(ctx context.Context) ([]job.RawPosting, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(f.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*golang.cafe*", Parallelism: 2, RandomDelay: 600 * time.Millisecond, Delay: 350 * time.Millisecond})

	raws := make([]job.RawPosting, 0, f.maxJobs)
	seen := map[string]struct{}{}

	c.OnHTML("div.job-listing, li.job, tr.job", func(e *colly.HTMLElement) {
		if len(raws) >= f.maxJobs {
			return
		}
		href := strings.TrimSpace(e.ChildAttr("a[href]", "href"))
		if href == "" || !strings.Contains(href, "/job/") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		id := externalIDFromURL(abs)
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}

		title := strings.TrimSpace(e.ChildText("h2, h3, .job-title"))
		company := strings.TrimSpace(e.ChildText(".company, .job-company"))
		if title == "" || company == "" {
			return
		}
		seen[id] = struct{}{}

		location := strings.TrimSpace(e.ChildText(".location, .job-location"))
		if location == "" {
			location = "Remote"
		}

		raw := job.RawPosting{
			Source:      f.Name(),
			ExternalID:  id,
			Title:       title,
			Company:     company,
			Location:    &location,
			Description: stripHTML(e.ChildText(".description, .job-description")),
			URL:         &abs,
			SalaryText:  strings.TrimSpace(e.ChildText(".salary, .job-salary")),
		}
		for _, tag := range e.ChildTexts(".tag, .job-tag") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				raw.Tags = append(raw.Tags, tag)
			}
		}
		raws = append(raws, raw)
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", aggregatorUserAgent)
		r.Headers.Set("Accept", "text/html")
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(f.baseURL + "/"); err != nil {
		return nil, fmt.Errorf("golangcafe: visit listing: %w", err)
	}
	c.Wait()
	if reqErr != nil {
		return nil, fmt.Errorf("golangcafe: %w", reqErr)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("golangcafe: no jobs found on listing page")
	}
	return raws, nil
}

// externalIDFromURL takes the last non-empty path segment as the board's job id.
func externalIDFromURL(u string) string {
	u = strings.TrimRight(u, "/")
	if i := strings.Index(u, "?"); i >= 0 {
		u = u[:i]
	}
	if i := strings.LastIndex(u, "/"); i >= 0 {
		return u[i+1:]
	}
	return ""
}
