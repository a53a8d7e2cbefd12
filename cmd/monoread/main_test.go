package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/monoread"
	main "github.com/fwojciec/monoread/cmd/monoread"
	"github.com/fwojciec/monoread/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolverReturning(content *monoread.Content, err error) *mock.Resolver {
	return &mock.Resolver{
		ResolveFn: func(ctx context.Context, url string) (*monoread.Content, error) {
			return content, err
		},
	}
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	for _, want := range []string{"read", "mcp", "--log-level", "--github-token", "--notion-api-key"} {
		assert.Contains(t, stdout.String(), want)
	}
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no URL specified")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestMain_Run_Version(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Version = "1.2.3"
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--version"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", stdout.String())
}

func TestMain_Run_Read(t *testing.T) {
	t.Parallel()

	t.Run("prints content for bare url", func(t *testing.T) {
		t.Parallel()

		var got string
		m := main.NewMain()
		m.Resolver = &mock.Resolver{
			ResolveFn: func(ctx context.Context, url string) (*monoread.Content, error) {
				got = url
				return &monoread.Content{Text: "# Title\n\nBody"}, nil
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"https://example.com/post"}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/post", got)
		assert.Equal(t, "# Title\n\nBody\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("accepts explicit read command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = resolverReturning(&monoread.Content{Text: "hello"}, nil)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"read", "https://example.com"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "hello\n", stdout.String())
	})

	t.Run("silent suppresses output", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = resolverReturning(&monoread.Content{Text: "hello"}, nil)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"read", "--silent", "https://example.com"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("saves content to output directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := main.NewMain()
		m.Resolver = resolverReturning(&monoread.Content{
			Text:     "hello",
			Source:   "https://example.com/docs/intro",
			Provider: "readability",
		}, nil)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"read", "-o", dir, "https://example.com/docs/intro"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		path := filepath.Join(dir, "example.com", "docs", "intro.md")
		assert.Equal(t, path+"\n", stdout.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "provider: readability")
	})

	t.Run("prints path returned by content writer", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := &monoread.Content{Text: "hello", Source: "https://example.com/docs/intro", Provider: "readability"}
		var gotDir string
		var written *monoread.Content
		m := main.NewMain()
		m.Resolver = resolverReturning(content, nil)
		m.NewWriter = func(d string) monoread.ContentWriter {
			gotDir = d
			return &mock.ContentWriter{
				WriteContentFn: func(ctx context.Context, c *monoread.Content) (string, error) {
					written = c
					return "/saved/intro.md", nil
				},
			}
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"read", "-o", dir, "https://example.com/docs/intro"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, dir, gotDir)
		assert.Same(t, content, written)
		assert.Equal(t, "/saved/intro.md\n", stdout.String())
	})

	t.Run("silent save prints nothing", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = resolverReturning(&monoread.Content{Text: "hello", Source: "https://example.com/"}, nil)
		m.NewWriter = func(string) monoread.ContentWriter {
			return &mock.ContentWriter{
				WriteContentFn: func(ctx context.Context, c *monoread.Content) (string, error) {
					return "/saved/index.md", nil
				},
			}
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"read", "--silent", "-o", t.TempDir(), "https://example.com/"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("returns error when saving fails", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = resolverReturning(&monoread.Content{Text: "hello", Source: "https://example.com/"}, nil)
		m.NewWriter = func(string) monoread.ContentWriter {
			return &mock.ContentWriter{
				WriteContentFn: func(ctx context.Context, c *monoread.Content) (string, error) {
					return "", monoread.Errorf(monoread.EUNKNOWN, "disk full")
				},
			}
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"read", "-o", t.TempDir(), "https://example.com/"}, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save content")
		assert.Equal(t, "disk full", monoread.ErrorMessage(err))
		assert.Empty(t, stdout.String())
	})

	t.Run("returns failure with hint", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = resolverReturning(nil, monoread.Errorf(monoread.EAUTH, "failed to extract content"))
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"https://www.notion.so/Page-0123abcd0123abcd0123abcd0123abcd"}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, monoread.EAUTH, monoread.ErrorCode(err))
		assert.Equal(t, "failed to extract content", monoread.ErrorMessage(err))
		assert.Contains(t, stderr.String(), "Hint: Set GITHUB_TOKEN")
		assert.Empty(t, stdout.String())
	})

	t.Run("no hint for unknown failure", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = resolverReturning(nil, monoread.Errorf(monoread.EUNKNOWN, "failed to extract content"))
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"https://example.com"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.NotContains(t, stderr.String(), "Hint:")
	})

	t.Run("logs resolution at debug level", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = resolverReturning(&monoread.Content{Text: "hello", Provider: "http"}, nil)
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--log-level=debug", "https://example.com"}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "resolve")
		assert.Contains(t, stderr.String(), "provider=http")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Resolver = resolverReturning(&monoread.Content{Text: "hello"}, nil)

		err := m.Run(context.Background(), []string{"--log-level=verbose", "https://example.com"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})
}

func TestMain_Run_InvalidURL(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"not-a-url"}, &bytes.Buffer{}, stderr)

	require.Error(t, err)
	assert.Equal(t, monoread.EINVALID, monoread.ErrorCode(err))
	assert.Contains(t, stderr.String(), "Hint: URLs must start with http:// or https://")
}
