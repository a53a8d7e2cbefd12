package resolve

import (
	"context"
	"strings"

	"github.com/fwojciec/monoread"
)

// Ensure LLMsTxtProvider implements monoread.Provider at compile time.
var _ monoread.Provider = (*LLMsTxtProvider)(nil)

// LLMsTxtProvider reads the llms.txt file published next to a URL.
type LLMsTxtProvider struct {
	fetcher monoread.Fetcher
}

// NewLLMsTxtProvider creates an LLMsTxtProvider.
func NewLLMsTxtProvider(fetcher monoread.Fetcher) *LLMsTxtProvider {
	return &LLMsTxtProvider{fetcher: fetcher}
}

// Name returns the provider name used in logs.
func (p *LLMsTxtProvider) Name() string { return "llms-txt" }

// CanHandle accepts any http or https URL.
func (p *LLMsTxtProvider) CanHandle(url string) bool {
	return monoread.IsHTTPURL(url)
}

// Extract fetches the sibling llms.txt and returns it when it looks like
// plain text.
func (p *LLMsTxtProvider) Extract(ctx context.Context, url string) (*monoread.Content, error) {
	llmsURL, err := monoread.LLMsTxtURL(url)
	if err != nil {
		return nil, err
	}

	resp, err := p.fetcher.Fetch(ctx, llmsURL)
	if err != nil {
		return nil, fetchError(err, "Failed to fetch llms.txt")
	}

	switch {
	case resp.OK():
	case resp.StatusCode == 404:
		return nil, monoread.Errorf(monoread.ENOTFOUND, "llms.txt not found")
	case resp.StatusCode == 401 || resp.StatusCode == 403:
		return nil, monoread.Errorf(monoread.EAUTH, "Access denied to llms.txt: %d", resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, monoread.Errorf(monoread.ENETWORK, "Server error accessing llms.txt: %d", resp.StatusCode)
	default:
		return nil, monoread.Errorf(monoread.ENETWORK, "HTTP %d when accessing llms.txt", resp.StatusCode)
	}

	if !monoread.IsWellFormedTextContent(resp.Body) {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "llms.txt contains invalid or empty content")
	}

	return &monoread.Content{
		Text:     strings.TrimSpace(resp.Body),
		Source:   url,
		Provider: p.Name(),
	}, nil
}
