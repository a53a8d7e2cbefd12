package resolve

import (
	"context"

	"github.com/fwojciec/monoread"
)

// Ensure ReadabilityProvider implements monoread.Provider at compile time.
var _ monoread.Provider = (*ReadabilityProvider)(nil)

// ReadabilityProvider fetches a page, extracts its main content and
// converts it to Markdown.
type ReadabilityProvider struct {
	fetcher   monoread.Fetcher
	extractor monoread.Extractor
	converter monoread.Converter
}

// NewReadabilityProvider creates a ReadabilityProvider.
func NewReadabilityProvider(fetcher monoread.Fetcher, extractor monoread.Extractor, converter monoread.Converter) *ReadabilityProvider {
	return &ReadabilityProvider{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
	}
}

// Name returns the provider name used in logs.
func (p *ReadabilityProvider) Name() string { return "readability" }

// CanHandle accepts any http or https URL.
func (p *ReadabilityProvider) CanHandle(url string) bool {
	return monoread.IsHTTPURL(url)
}

// Extract implements monoread.Provider.
func (p *ReadabilityProvider) Extract(ctx context.Context, url string) (*monoread.Content, error) {
	resp, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fetchError(err, "Readability extraction failed")
	}
	if !resp.OK() {
		return nil, monoread.Errorf(monoread.StatusCode(resp.StatusCode), "HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	result, err := p.extractor.Extract(resp.Body, url)
	if err != nil {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "Readability extraction failed: %s", monoread.ErrorMessage(err))
	}
	if monoread.IsContentEmpty(result.ContentHTML) {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "Empty content extracted from readability")
	}

	md, err := p.converter.Convert(result.ContentHTML, url)
	if err != nil {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "Readability extraction failed: %s", monoread.ErrorMessage(err))
	}
	if monoread.IsContentEmpty(md) {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "Empty content extracted from readability")
	}

	return &monoread.Content{
		Text:     md,
		Title:    result.Title,
		Source:   url,
		Provider: p.Name(),
	}, nil
}
