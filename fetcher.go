package monoread

import "context"

// Response is the outcome of a completed HTTP exchange.
type Response struct {
	URL        string
	StatusCode int
	Status     string
	Body       string
}

// OK reports whether the response has a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher performs GET requests.
type Fetcher interface {
	// Fetch returns the response for the URL whatever its status.
	// An error means no response was received (DNS, connection, timeout).
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)
}
