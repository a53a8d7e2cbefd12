package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/monoread"
)

// Ensure LoggingResolver implements monoread.Resolver.
var _ monoread.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   monoread.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next monoread.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the result.
func (r *LoggingResolver) Resolve(ctx context.Context, url string) (content *monoread.Content, err error) {
	defer func(begin time.Time) {
		if err != nil {
			r.logger.Error("resolve",
				"url", url,
				"code", monoread.ErrorCode(err),
				"duration", time.Since(begin),
				"err", monoread.ErrorMessage(err),
			)
			return
		}
		var provider string
		var n int
		if content != nil {
			provider, n = content.Provider, len(content.Text)
		}
		r.logger.Info("resolve",
			"url", url,
			"provider", provider,
			"bytes", n,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Resolve(ctx, url)
}
