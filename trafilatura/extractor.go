// Package trafilatura implements monoread.Extractor with go-trafilatura.
// It is an alternative to the readability extractor that tends to do better
// on news and blog layouts.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/monoread"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements monoread.Extractor at compile time.
var _ monoread.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*monoread.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeLinks:   true,
	}
	if sourceURL != "" {
		u, err := url.Parse(sourceURL)
		if err != nil {
			return nil, monoread.Errorf(monoread.EINVALID, "invalid source URL %q", sourceURL)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "trafilatura: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &monoread.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
