package monoread

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Relative links are made absolute against sourceURL when it is set.
	Convert(html, sourceURL string) (string, error)
}
