package notion

import (
	"context"
	"strings"

	"github.com/fwojciec/monoread"
)

// Ensure Provider implements monoread.Provider at compile time.
var _ monoread.Provider = (*Provider)(nil)

// Provider extracts Notion pages as Markdown.
type Provider struct {
	apiKey string
	pages  monoread.NotionPageFetcher
}

// NewProvider creates a Provider. An empty apiKey makes every extraction
// fail without contacting Notion. The failure is reported as EAUTH rather
// than EUNKNOWN so the CLI prints the NOTION_API_KEY hint.
func NewProvider(apiKey string, pages monoread.NotionPageFetcher) *Provider {
	return &Provider{apiKey: apiKey, pages: pages}
}

// Name returns the provider name used in logs.
func (p *Provider) Name() string { return "notion" }

// CanHandle accepts notion.so and notion.site URLs.
func (p *Provider) CanHandle(url string) bool {
	return monoread.IsNotionURL(url)
}

// Extract implements monoread.Provider.
func (p *Provider) Extract(ctx context.Context, url string) (*monoread.Content, error) {
	if p.apiKey == "" {
		return nil, monoread.Errorf(monoread.EAUTH,
			"NOTION_API_KEY environment variable is required for Notion pages. Please set it and try again.")
	}

	pageID, err := monoread.NotionPageID(url)
	if err != nil {
		return nil, err
	}

	title, markdown, err := p.pages.FetchPageMarkdown(ctx, pageID)
	if err != nil {
		return nil, monoread.Errorf(monoread.ErrorCode(err), "Failed to fetch Notion page: %s", monoread.ErrorMessage(err))
	}

	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "Notion page has no content")
	}

	return &monoread.Content{
		Text:     markdown,
		Title:    title,
		Source:   url,
		Provider: p.Name(),
	}, nil
}
