package http

import (
	"context"
	"time"

	"github.com/fwojciec/monoread"
)

// Ensure RetryFetcher implements monoread.Fetcher at compile time.
var _ monoread.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries fetches that fail with ENETWORK. Responses with any
// HTTP status, including 5xx, are returned as is.
type RetryFetcher struct {
	next   monoread.Fetcher
	delays []time.Duration
}

// NewRetryFetcher wraps next. One retry is made per delay, after waiting
// that long.
func NewRetryFetcher(next monoread.Fetcher, delays ...time.Duration) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays}
}

// RetryDelays returns n exponential backoff delays starting at 1s: 1s, 2s, 4s...
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// Fetch implements monoread.Fetcher.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (*monoread.Response, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		resp, err := f.next.Fetch(ctx, url)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt >= len(f.delays) || monoread.ErrorCode(err) != monoread.ENETWORK {
			return nil, lastErr
		}

		select {
		case <-ctx.Done():
			return nil, monoread.Errorf(monoread.ENETWORK, "fetch canceled: %v", ctx.Err())
		case <-time.After(f.delays[attempt]):
		}
	}
}
