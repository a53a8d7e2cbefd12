package monoread

import (
	"regexp"
	"strings"
)

// MinTextContentLength is the shortest trimmed text accepted as content.
const MinTextContentLength = 10

// htmlTagRe matches an opening, closing or self-closing tag. A "<" must be
// followed directly by a letter or "/" so comparisons like "a < b" pass.
var htmlTagRe = regexp.MustCompile(`<[A-Za-z/][^<>]*>`)

// IsContentEmpty reports whether text is empty after trimming whitespace.
func IsContentEmpty(text string) bool {
	return strings.TrimSpace(text) == ""
}

// IsWellFormedTextContent reports whether text looks like usable plain text:
// non-empty, free of HTML tags, and at least MinTextContentLength characters
// once trimmed. HTML error pages served with 200 OK fail this check.
func IsWellFormedTextContent(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if htmlTagRe.MatchString(trimmed) {
		return false
	}
	return len([]rune(trimmed)) >= MinTextContentLength
}
