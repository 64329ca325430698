package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobmatch/internal/domain/job"
)

const aggregatorUserAgent = "jobmatch-aggregator/1.0"

// Fetcher pulls raw postings from one external job board.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]job.RawPosting, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 25 * time.Second}
}

func fetchJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", aggregatorUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
