package mock

import "github.com/fwojciec/monoread"

var _ monoread.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of monoread.Extractor.
type Extractor struct {
	ExtractFn func(html, sourceURL string) (*monoread.ExtractResult, error)
}

func (e *Extractor) Extract(html, sourceURL string) (*monoread.ExtractResult, error) {
	return e.ExtractFn(html, sourceURL)
}
