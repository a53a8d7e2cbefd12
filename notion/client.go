// Package notion reads Notion pages through the public API and exposes them
// as a monoread.Provider.
package notion

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/monoread"
	"github.com/jomei/notionapi"
)

// DefaultMaxDepth limits how deep nested blocks are followed.
const DefaultMaxDepth = 10

// DefaultTimeout bounds each Notion API request.
const DefaultTimeout = 30 * time.Second

const pageSize = 100

// Ensure Client implements monoread.NotionPageFetcher at compile time.
var _ monoread.NotionPageFetcher = (*Client)(nil)

// Client loads Notion pages and renders their blocks as Markdown.
type Client struct {
	api      *notionapi.Client
	maxDepth int
}

type config struct {
	httpClient *http.Client
	maxDepth   int
}

// Option configures a Client.
type Option func(*config)

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithMaxDepth sets how many levels of nested blocks are read.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) {
		cfg.maxDepth = depth
	}
}

// NewClient creates a Client authenticated with an integration token.
func NewClient(apiKey string, opts ...Option) *Client {
	cfg := &config{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		maxDepth:   DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Client{
		api:      notionapi.NewClient(notionapi.Token(apiKey), notionapi.WithHTTPClient(cfg.httpClient)),
		maxDepth: cfg.maxDepth,
	}
}

// FetchPageMarkdown implements monoread.NotionPageFetcher.
func (c *Client) FetchPageMarkdown(ctx context.Context, pageID string) (string, string, error) {
	page, err := c.api.Page.Get(ctx, notionapi.PageID(pageID))
	if err != nil {
		return "", "", apiError(err)
	}

	var b strings.Builder
	if err := c.render(ctx, &b, notionapi.BlockID(pageID), 0); err != nil {
		return "", "", err
	}

	return pageTitle(page), strings.TrimSpace(b.String()), nil
}

// render writes the children of parent, descending into nested blocks until
// maxDepth is reached.
func (c *Client) render(ctx context.Context, b *strings.Builder, parent notionapi.BlockID, depth int) error {
	var cursor notionapi.Cursor
	for {
		resp, err := c.api.Block.GetChildren(ctx, parent, &notionapi.Pagination{
			StartCursor: cursor,
			PageSize:    pageSize,
		})
		if err != nil {
			return apiError(err)
		}

		for _, block := range resp.Results {
			writeBlock(b, block, depth)
			if block.GetHasChildren() && depth+1 < c.maxDepth {
				if err := c.render(ctx, b, block.GetID(), depth+1); err != nil {
					return err
				}
			}
		}

		if !resp.HasMore || resp.NextCursor == "" {
			return nil
		}
		cursor = notionapi.Cursor(resp.NextCursor)
	}
}

func pageTitle(page *notionapi.Page) string {
	for _, prop := range page.Properties {
		if title, ok := prop.(*notionapi.TitleProperty); ok {
			return plainText(title.Title)
		}
	}
	return ""
}

func apiError(err error) error {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		return monoread.Errorf(monoread.StatusCode(apiErr.Status), "%s", apiErr.Message)
	}
	return monoread.Errorf(monoread.ENETWORK, "%v", err)
}
