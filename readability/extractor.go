// Package readability implements monoread.Extractor with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/monoread"
	"github.com/go-shiori/go-readability"
)

// DefaultCharThreshold is the minimum article length, in characters, for
// the parser to accept its first candidate.
const DefaultCharThreshold = 100

// Ensure Extractor implements monoread.Extractor at compile time.
var _ monoread.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	charThreshold int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCharThreshold overrides DefaultCharThreshold.
func WithCharThreshold(n int) Option {
	return func(e *Extractor) {
		e.charThreshold = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{charThreshold: DefaultCharThreshold}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
// Relative links in the content are resolved against sourceURL.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*monoread.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "empty HTML input")
	}

	var pageURL *url.URL
	if sourceURL != "" {
		u, err := url.Parse(sourceURL)
		if err != nil {
			return nil, monoread.Errorf(monoread.EINVALID, "invalid source URL %q", sourceURL)
		}
		pageURL = u
	}

	parser := readability.NewParser()
	parser.CharThresholds = e.charThreshold

	article, err := parser.Parse(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "readability: %v", err)
	}

	return &monoread.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
