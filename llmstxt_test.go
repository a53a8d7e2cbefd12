package monoread_test

import (
	"testing"

	"github.com/fwojciec/monoread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMsTxtURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"drops file name with extension", "https://example.com/docs/api.html", "https://example.com/docs/llms.txt"},
		{"treats extensionless segment as directory", "https://example.com/a/b/c/d", "https://example.com/a/b/c/d/llms.txt"},
		{"keeps trailing slash directory", "https://example.com/docs/", "https://example.com/docs/llms.txt"},
		{"root without path", "https://example.com", "https://example.com/llms.txt"},
		{"root with slash", "https://example.com/", "https://example.com/llms.txt"},
		{"file at root", "https://example.com/index.html", "https://example.com/llms.txt"},
		{"strips query", "https://example.com/docs/page?lang=en", "https://example.com/docs/page/llms.txt"},
		{"strips fragment", "https://example.com/docs/guide.md#intro", "https://example.com/docs/llms.txt"},
		{"keeps port", "http://localhost:8080/api/v1", "http://localhost:8080/api/v1/llms.txt"},
		{"dot in directory name", "https://example.com/v1.2/", "https://example.com/v1.2/llms.txt"},
		{"dot in earlier segment only", "https://example.com/v1.2/guide", "https://example.com/v1.2/guide/llms.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := monoread.LLMsTxtURL(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLLMsTxtURL_IgnoresQueryAndFragment(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"https://example.com/docs/api.html?x=1#top", "https://example.com/docs/api.html"},
		{"https://example.com/a/b?y=2", "https://example.com/a/b"},
		{"https://example.com/#frag", "https://example.com/"},
		{"https://example.com/dir/?q=a&r=b#c", "https://example.com/dir/"},
	}
	for _, p := range pairs {
		withExtras, err := monoread.LLMsTxtURL(p[0])
		require.NoError(t, err)
		stripped, err := monoread.LLMsTxtURL(p[1])
		require.NoError(t, err)

		assert.Equal(t, stripped, withExtras, p[0])

		again, err := monoread.LLMsTxtURL(p[0])
		require.NoError(t, err)
		assert.Equal(t, withExtras, again)
	}
}

func TestLLMsTxtURL_RejectsMalformedURL(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "not a url", "/relative/path", "http://[::1"} {
		_, err := monoread.LLMsTxtURL(in)

		require.Error(t, err, in)
		assert.Equal(t, monoread.EINVALID, monoread.ErrorCode(err))
	}
}
