package aggregator

import (
	"context"

	"jobmatch/internal/domain/job"
)

// fallbackFetcher runs a primary fetcher and, when it errors or comes back
// empty, retries the board through a secondary fetcher. Boards that move
// their listings behind client-side rendering keep working without a config
// change.
type fallbackFetcher struct {
	primary   Fetcher
	secondary Fetcher
}

// WithHeadlessFallback chains a plain fetcher with a headless one under the
// primary fetcher's name.
func WithHeadlessFallback(primary, secondary Fetcher) Fetcher {
	return &fallbackFetcher{primary: primary, secondary: secondary}
}

func (f *fallbackFetcher) Name() string { return f.primary.Name() }

func (f *fallbackFetcher) Fetch(ctx context.Context) ([]job.RawPosting, error) {
	raws, err := f.primary.Fetch(ctx)
	if err == nil && len(raws) > 0 {
		return raws, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return f.secondary.Fetch(ctx)
}
