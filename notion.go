package monoread

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NotionPageFetcher loads a Notion page and renders it as Markdown.
type NotionPageFetcher interface {
	// FetchPageMarkdown returns the page title and body as Markdown.
	// pageID is in the form returned by NotionPageID.
	FetchPageMarkdown(ctx context.Context, pageID string) (title, markdown string, err error)
}

var notionHostRe = regexp.MustCompile(`^https?://([\w-]+\.)?notion\.(so|site)/`)

// IsNotionURL reports whether rawURL points at notion.so or notion.site,
// including workspace subdomains.
func IsNotionURL(rawURL string) bool {
	return notionHostRe.MatchString(rawURL)
}

// notionPageIDPatterns are tried in order; the first match wins.
var notionPageIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`notion\.(?:so|site)/(?:[\w-]+/)?([a-fA-F0-9]{32})`),
	regexp.MustCompile(`notion\.(?:so|site)/(?:[\w-]+/)?[\w-]+-([a-fA-F0-9]{32})`),
	regexp.MustCompile(`notion\.(?:so|site)/([a-fA-F0-9]+)`),
	regexp.MustCompile(`notion\.(?:so|site)/[\w-]+-([a-fA-F0-9]+)`),
}

// NotionPageID extracts the page identifier from a Notion URL and normalizes
// it with NormalizeNotionPageID. Returns EINVALID when no pattern matches.
func NotionPageID(rawURL string) (string, error) {
	for _, re := range notionPageIDPatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil && m[1] != "" {
			return NormalizeNotionPageID(m[1]), nil
		}
	}
	return "", Errorf(EINVALID, "Invalid Notion URL format. Could not extract page ID.")
}

// NormalizeNotionPageID formats a 32-hex identifier as a dashed 8-4-4-4-12
// UUID. Identifiers that are not 32 hex digits once dashes are removed are
// returned unchanged.
func NormalizeNotionPageID(id string) string {
	clean := strings.ReplaceAll(id, "-", "")
	if len(clean) != 32 {
		return id
	}
	u, err := uuid.Parse(clean)
	if err != nil {
		return id
	}
	return u.String()
}
