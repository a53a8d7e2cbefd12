package monoread

import (
	"context"
	"fmt"
)

// Content is the successful outcome of a content extraction.
// Text is never empty and has no leading or trailing whitespace once it
// leaves a Resolver.
type Content struct {
	Text string

	// Title is the page or document title when the provider knows it.
	Title string

	// Source is the URL the content was resolved for.
	Source string

	// Provider names the strategy that produced the content.
	Provider string
}

// Provider is a content-extraction strategy for a class of URLs.
// Implementations are stateless and safe for concurrent use.
type Provider interface {
	// CanHandle reports whether the provider applies to the URL.
	// It must be cheap and must not perform I/O.
	CanHandle(url string) bool

	// Extract fetches and converts the content behind the URL.
	// Failures are returned as *Error values carrying an error code.
	Extract(ctx context.Context, url string) (*Content, error)
}

// ProviderName returns the name a provider reports for logging, falling
// back to its Go type when it does not implement Name.
func ProviderName(p Provider) string {
	if n, ok := p.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}

// Resolver resolves a URL into the best available text content.
// This is the entry point used by the CLI and the MCP server.
type Resolver interface {
	Resolve(ctx context.Context, url string) (*Content, error)
}
