// Package resolve implements the content-resolution pipeline: an ordered
// list of monoread.Provider values tried one after another until one
// returns usable content.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/monoread"
)

// Ensure Pipeline implements monoread.Resolver at compile time.
var _ monoread.Resolver = (*Pipeline)(nil)

// FailureMessage is the message of the error returned when every eligible
// provider failed.
const FailureMessage = "failed to extract content"

// Pipeline runs providers in order and returns the first success.
// The provider list is fixed at construction, so a Pipeline is safe for
// concurrent use by multiple goroutines.
type Pipeline struct {
	providers []monoread.Provider
}

// NewPipeline returns a Pipeline over providers in precedence order.
func NewPipeline(providers ...monoread.Provider) *Pipeline {
	return &Pipeline{providers: append([]monoread.Provider(nil), providers...)}
}

// Providers returns a copy of the provider list.
func (p *Pipeline) Providers() []monoread.Provider {
	return append([]monoread.Provider(nil), p.providers...)
}

// Resolve tries every provider whose CanHandle accepts rawURL, sequentially
// and in order, and returns the first non-empty content with surrounding
// whitespace trimmed.
//
// When all providers fail the error message is FailureMessage and its code is
// the code of the first provider failure, or EUNKNOWN if no provider was
// eligible. Individual provider errors are not returned. A provider panic
// counts as an EUNKNOWN failure of that provider.
func (p *Pipeline) Resolve(ctx context.Context, rawURL string) (*monoread.Content, error) {
	if err := monoread.ValidateURL(rawURL); err != nil {
		return nil, err
	}
	rawURL = strings.TrimSpace(rawURL)

	var firstErr error
	for _, provider := range p.providers {
		if err := ctx.Err(); err != nil {
			return nil, monoread.Errorf(monoread.ENETWORK, "%s: %v", FailureMessage, err)
		}

		if !canHandle(provider, rawURL) {
			continue
		}

		content, err := extract(ctx, provider, rawURL)
		if err == nil {
			return content, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	code := monoread.EUNKNOWN
	if firstErr != nil {
		code = monoread.ErrorCode(firstErr)
	}
	return nil, monoread.Errorf(code, FailureMessage)
}

func canHandle(provider monoread.Provider, rawURL string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return provider.CanHandle(rawURL)
}

// extract runs one provider and normalizes its outcome.
func extract(ctx context.Context, provider monoread.Provider, rawURL string) (content *monoread.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			content, err = nil, monoread.Errorf(monoread.EUNKNOWN, "%s", fmt.Sprint(r))
		}
	}()

	c, err := provider.Extract(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if c == nil || monoread.IsContentEmpty(c.Text) {
		return nil, monoread.Errorf(monoread.EUNKNOWN, "Empty content")
	}

	out := *c
	out.Text = strings.TrimSpace(c.Text)
	if out.Source == "" {
		out.Source = rawURL
	}
	if out.Provider == "" {
		out.Provider = monoread.ProviderName(provider)
	}
	return &out, nil
}
