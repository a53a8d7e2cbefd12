package mock

import (
	"context"

	"github.com/fwojciec/monoread"
)

var _ monoread.NotionPageFetcher = (*NotionPageFetcher)(nil)

// NotionPageFetcher is a mock implementation of monoread.NotionPageFetcher.
type NotionPageFetcher struct {
	FetchPageMarkdownFn func(ctx context.Context, pageID string) (string, string, error)
}

func (f *NotionPageFetcher) FetchPageMarkdown(ctx context.Context, pageID string) (string, string, error) {
	return f.FetchPageMarkdownFn(ctx, pageID)
}
