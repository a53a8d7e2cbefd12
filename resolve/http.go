package resolve

import (
	"context"
	"strings"

	"github.com/fwojciec/monoread"
)

// Ensure HTTPProvider implements monoread.Provider at compile time.
var _ monoread.Provider = (*HTTPProvider)(nil)

// HTTPProvider returns the raw response body of a URL. It is the last
// resort for plain-text resources that extraction strategies reject.
type HTTPProvider struct {
	fetcher monoread.Fetcher
}

// NewHTTPProvider creates an HTTPProvider.
func NewHTTPProvider(fetcher monoread.Fetcher) *HTTPProvider {
	return &HTTPProvider{fetcher: fetcher}
}

// Name returns the provider name used in logs.
func (p *HTTPProvider) Name() string { return "http" }

// CanHandle accepts any http or https URL.
func (p *HTTPProvider) CanHandle(url string) bool {
	return monoread.IsHTTPURL(url)
}

// Extract implements monoread.Provider.
func (p *HTTPProvider) Extract(ctx context.Context, url string) (*monoread.Content, error) {
	resp, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fetchError(err, "HTTP extraction failed")
	}
	if !resp.OK() {
		return nil, monoread.Errorf(monoread.StatusCode(resp.StatusCode), "HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	if monoread.IsContentEmpty(resp.Body) {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "Empty content received from HTTP response")
	}

	return &monoread.Content{
		Text:     strings.TrimSpace(resp.Body),
		Source:   url,
		Provider: p.Name(),
	}, nil
}
