package mock

import (
	"context"

	"github.com/fwojciec/monoread"
)

var _ monoread.Provider = (*Provider)(nil)

// Provider is a mock implementation of monoread.Provider.
type Provider struct {
	NameValue   string
	CanHandleFn func(url string) bool
	ExtractFn   func(ctx context.Context, url string) (*monoread.Content, error)
}

func (p *Provider) Name() string {
	return p.NameValue
}

func (p *Provider) CanHandle(url string) bool {
	return p.CanHandleFn(url)
}

func (p *Provider) Extract(ctx context.Context, url string) (*monoread.Content, error) {
	return p.ExtractFn(ctx, url)
}
