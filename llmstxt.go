package monoread

import (
	"net/url"
	"strings"
)

// LLMsTxtFilename is the conventional name of a site's AI-facing summary.
const LLMsTxtFilename = "llms.txt"

// LLMsTxtURL returns the URL of the llms.txt file that sits in the same
// directory as rawURL. Query and fragment are dropped. A final path segment
// containing a "." is taken to be a file name and removed; any other final
// segment is treated as a directory.
//
// Returns EINVALID when rawURL is not an absolute URL.
func LLMsTxtURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALID, "invalid URL for llms.txt generation: %q", rawURL)
	}

	return u.Scheme + "://" + u.Host + directoryPath(u.EscapedPath()) + LLMsTxtFilename, nil
}

// directoryPath returns p reduced to its directory, always ending in "/".
func directoryPath(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	i := strings.LastIndex(p, "/")
	if strings.Contains(p[i+1:], ".") {
		p = p[:i+1]
	} else {
		p += "/"
	}
	if p == "" {
		return "/"
	}
	return p
}
