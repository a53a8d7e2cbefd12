package monoread

import (
	"net/url"
	"strings"
)

// ValidateURL returns EINVALID unless rawURL is an absolute http or https
// URL with a host.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Errorf(EINVALID, "Invalid URL format: %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "Invalid URL format: %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "Invalid URL format: %q: missing host", rawURL)
	}
	return nil
}

// IsHTTPURL reports whether rawURL has an http or https scheme.
func IsHTTPURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
