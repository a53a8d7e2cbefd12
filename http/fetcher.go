// Package http provides a net/http implementation of monoread.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/monoread"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies monoread to remote servers.
const DefaultUserAgent = "monoread (+https://github.com/fwojciec/monoread)"

// Ensure Fetcher implements monoread.Fetcher at compile time.
var _ monoread.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves URLs with plain HTTP GET requests.
// It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string

	// Per-host token buckets; nil when rate limiting is disabled.
	mu       sync.Mutex
	rps      float64
	limiters map[string]*rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit limits requests to rps per host. Zero or less disables
// limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.rps = rps
			f.limiters = make(map[string]*rate.Limiter)
		} else {
			f.rps = 0
			f.limiters = nil
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET request and returns the response whatever its status.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*monoread.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, monoread.Errorf(monoread.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	if err := f.wait(ctx, req.URL.Host); err != nil {
		return nil, monoread.Errorf(monoread.ENETWORK, "rate limiter: %v", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, monoread.Errorf(monoread.ENETWORK, "GET %s: %v", redact(req.URL), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, monoread.Errorf(monoread.ENETWORK, "read body of %s: %v", redact(req.URL), err)
	}

	return &monoread.Response{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
		Body:       string(body),
	}, nil
}

// redact drops credentials and query from a URL for error messages.
func redact(u *url.URL) string {
	c := *u
	c.User = nil
	c.RawQuery = ""
	return c.String()
}

// wait blocks until host's bucket allows another request. Each host gets its
// own bucket with a burst of 1, so different hosts never wait on each other.
func (f *Fetcher) wait(ctx context.Context, host string) error {
	if f.limiters == nil {
		return nil
	}
	f.mu.Lock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[host] = limiter
	}
	f.mu.Unlock()

	return limiter.Wait(ctx)
}
