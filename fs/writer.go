// Package fs saves resolved content as Markdown files.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/monoread"
	"gopkg.in/yaml.v3"
)

// URLToPath converts a URL to a relative file path rooted at its host.
// Example: https://example.com/docs/api/users → example.com/docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", monoread.Errorf(monoread.EINVALID, "Invalid URL format: %v", err)
	}
	if u.Host == "" {
		return "", monoread.Errorf(monoread.EINVALID, "Invalid URL format: missing host")
	}

	host := strings.ReplaceAll(u.Host, ":", "_")
	path := strings.TrimPrefix(u.Path, "/")

	switch {
	case path == "":
		return filepath.Join(host, "index.md"), nil
	case strings.HasSuffix(path, "/"):
		return filepath.Join(host, filepath.FromSlash(path), "index.md"), nil
	default:
		return filepath.Join(host, filepath.FromSlash(path)+".md"), nil
	}
}

// frontmatter is the YAML header written before the content body.
type frontmatter struct {
	Source   string `yaml:"source"`
	Title    string `yaml:"title,omitempty"`
	Provider string `yaml:"provider"`
}

// FormatContent formats content with YAML frontmatter.
func FormatContent(c *monoread.Content) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:   c.Source,
		Title:    c.Title,
		Provider: c.Provider,
	})
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(c.Text)
	b.WriteString("\n")
	return b.String(), nil
}

// Ensure Writer implements monoread.ContentWriter at compile time.
var _ monoread.ContentWriter = (*Writer)(nil)

// Writer writes content as Markdown files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteContent writes content to a file derived from its source URL.
// The file is written to a temporary name first and renamed into place.
func (w *Writer) WriteContent(ctx context.Context, c *monoread.Content) (string, error) {
	relPath, err := URLToPath(c.Source)
	if err != nil {
		return "", err
	}

	formatted, err := FormatContent(c)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(formatted); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}
