// Package slog provides log/slog decorators for the monoread interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/monoread"
)

// Ensure LoggingProvider implements monoread.Provider.
var _ monoread.Provider = (*LoggingProvider)(nil)

// LoggingProvider wraps a Provider with debug logging.
type LoggingProvider struct {
	next   monoread.Provider
	name   string
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
func NewLoggingProvider(next monoread.Provider, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, name: monoread.ProviderName(next), logger: logger}
}

// Name returns the name of the wrapped provider.
func (p *LoggingProvider) Name() string {
	return p.name
}

// CanHandle delegates to the wrapped provider and logs the decision.
func (p *LoggingProvider) CanHandle(url string) bool {
	ok := p.next.CanHandle(url)
	p.logger.Debug("provider can handle", "provider", p.name, "url", url, "ok", ok)
	return ok
}

// Extract delegates to the wrapped provider and logs the outcome.
func (p *LoggingProvider) Extract(ctx context.Context, url string) (content *monoread.Content, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		n := 0
		if content != nil {
			n = len(content.Text)
		}
		p.logger.Log(ctx, level, "provider extract",
			"provider", p.name,
			"url", url,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Extract(ctx, url)
}
