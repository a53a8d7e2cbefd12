// Package monoread resolves a URL into a single block of AI-readable text.
// It tries a fixed, ordered list of content providers (GitHub, Notion,
// readability extraction, llms.txt, raw HTTP) and returns the first usable
// result.
//
// This package contains domain types, interfaces and the pure URL
// transformations shared by providers. Implementations live in
// subdirectories named after their primary dependency (e.g., github/,
// notion/, readability/).
package monoread
