package mock

import (
	"context"

	"github.com/fwojciec/monoread"
)

var _ monoread.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of monoread.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*monoread.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*monoread.Response, error) {
	return f.FetchFn(ctx, url)
}
