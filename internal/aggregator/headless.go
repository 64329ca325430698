package aggregator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"jobmatch/internal/domain/job"
)

// HeadlessBoardFetcher drives a headless browser against boards that render
// listings client-side, where plain HTTP fetches return an empty shell.
type HeadlessBoardFetcher struct {
	name     string
	siteBase string
	linkHint string
	maxJobs  int
}

func NewHeadlessBoardFetcher(name, siteBase, linkHint string, maxJobs int) *HeadlessBoardFetcher {
	if maxJobs <= 0 {
		maxJobs = 30
	}
	return &HeadlessBoardFetcher{
		name:     name,
		siteBase: strings.TrimRight(siteBase, "/"),
		linkHint: linkHint,
		maxJobs:  maxJobs,
	}
}

func (f *HeadlessBoardFetcher) Name() string { return f.name }

type headlessListing struct {
	Href    string `json:"href"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

func (f *HeadlessBoardFetcher) Fetch(ctx context.Context) ([]job.RawPosting, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	script := fmt.Sprintf(`Array.from(document.querySelectorAll('a[href]'))
		.filter(a => a.getAttribute('href') && a.getAttribute('href').includes(%q))
		.map(a => ({
			href: a.getAttribute('href'),
			title: (a.textContent || '').trim(),
			company: (a.closest('li,article,div') ? (a.closest('li,article,div').querySelector('.company, [data-company]') || {textContent: ''}).textContent : '').trim(),
		}))`, f.linkHint)

	var listings []headlessListing
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(f.siteBase+"/"),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(script, &listings),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: headless fetch: %w", f.name, err)
	}

	seen := map[string]struct{}{}
	raws := make([]job.RawPosting, 0, f.maxJobs)
	for _, l := range listings {
		if len(raws) >= f.maxJobs {
			break
		}
		href := strings.TrimSpace(l.Href)
		if href == "" {
			continue
		}
		if strings.HasPrefix(href, "/") {
			href = f.siteBase + href
		} else if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			href = f.siteBase + "/" + href
		}
		id := externalIDFromURL(href)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		title := strings.TrimSpace(l.Title)
		if title == "" {
			continue
		}
		seen[id] = struct{}{}
		loc := "Remote"
		link := href
		raws = append(raws, job.RawPosting{
			Source:     f.name,
			ExternalID: id,
			Title:      title,
			Company:    strings.TrimSpace(l.Company),
			Location:   &loc,
			URL:        &link,
		})
	}

	if len(raws) == 0 {
		return nil, fmt.Errorf("%s: no job links found (headless)", f.name)
	}
	return raws, nil
}
