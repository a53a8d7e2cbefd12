package mock

import "github.com/fwojciec/monoread"

var _ monoread.Converter = (*Converter)(nil)

// Converter is a mock implementation of monoread.Converter.
type Converter struct {
	ConvertFn func(html, sourceURL string) (string, error)
}

func (c *Converter) Convert(html, sourceURL string) (string, error) {
	return c.ConvertFn(html, sourceURL)
}
