package mock

import (
	"context"

	"github.com/fwojciec/monoread"
)

var _ monoread.ContentWriter = (*ContentWriter)(nil)

// ContentWriter is a mock implementation of monoread.ContentWriter.
type ContentWriter struct {
	WriteContentFn func(ctx context.Context, content *monoread.Content) (string, error)
}

func (w *ContentWriter) WriteContent(ctx context.Context, content *monoread.Content) (string, error) {
	return w.WriteContentFn(ctx, content)
}
