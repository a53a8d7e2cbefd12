package mock

import (
	"context"

	"github.com/fwojciec/monoread"
)

var _ monoread.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of monoread.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, url string) (*monoread.Content, error)
}

func (r *Resolver) Resolve(ctx context.Context, url string) (*monoread.Content, error) {
	return r.ResolveFn(ctx, url)
}
