package monoread_test

import (
	"testing"

	"github.com/fwojciec/monoread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitHubURL(t *testing.T) {
	t.Parallel()

	t.Run("classifies blob URL", func(t *testing.T) {
		t.Parallel()

		info, err := monoread.ParseGitHubURL("https://github.com/o/r/blob/main/f.ts")

		require.NoError(t, err)
		assert.Equal(t, &monoread.GitHubURL{Owner: "o", Repo: "r", Branch: "main", Path: "f.ts", Kind: monoread.GitHubBlob}, info)
	})

	t.Run("classifies nested blob URL", func(t *testing.T) {
		t.Parallel()

		info, err := monoread.ParseGitHubURL("https://github.com/o/r/blob/v1.0/src/lib/util.go?plain=1#L10")

		require.NoError(t, err)
		assert.Equal(t, monoread.GitHubBlob, info.Kind)
		assert.Equal(t, "v1.0", info.Branch)
		assert.Equal(t, "src/lib/util.go", info.Path)
	})

	t.Run("classifies tree URL", func(t *testing.T) {
		t.Parallel()

		info, err := monoread.ParseGitHubURL("https://github.com/o/r/tree/main/src")

		require.NoError(t, err)
		assert.Equal(t, &monoread.GitHubURL{Owner: "o", Repo: "r", Branch: "main", Path: "src", Kind: monoread.GitHubTree}, info)
	})

	t.Run("classifies tree URL without path", func(t *testing.T) {
		t.Parallel()

		info, err := monoread.ParseGitHubURL("https://github.com/o/r/tree/develop/")

		require.NoError(t, err)
		assert.Equal(t, monoread.GitHubTree, info.Kind)
		assert.Equal(t, "develop", info.Branch)
		assert.Empty(t, info.Path)
	})

	t.Run("classifies top-level URL", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"https://github.com/o/r",
			"https://github.com/o/r/",
			"https://github.com/o/r?tab=readme-ov-file",
		} {
			info, err := monoread.ParseGitHubURL(u)

			require.NoError(t, err, u)
			assert.Equal(t, &monoread.GitHubURL{Owner: "o", Repo: "r", Kind: monoread.GitHubTopLevel}, info, u)
		}
	})

	t.Run("rejects unsupported shapes", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"https://github.com/",
			"https://github.com/o",
			"https://github.com/o/r/issues/1",
			"https://github.com/o/r/blob/main",
			"https://github.com/o/r/tree",
			"https://gist.github.com/o/r",
			"https://example.com/o/r/blob/main/f.ts",
			"not a url",
		} {
			_, err := monoread.ParseGitHubURL(u)

			require.Error(t, err, u)
			assert.Equal(t, monoread.EINVALID, monoread.ErrorCode(err), u)
			assert.False(t, monoread.IsGitHubURL(u), u)
		}
	})
}

func TestGitHubContentsPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "repos/o/r/contents/src/main.go?ref=main", monoread.GitHubContentsPath("o", "r", "src/main.go", "main"))
	assert.Equal(t, "repos/o/r/contents?ref=main", monoread.GitHubContentsPath("o", "r", "", "main"))
	assert.Equal(t, "repos/o/r/contents/docs?ref=release%2F1.0", monoread.GitHubContentsPath("o", "r", "docs", "release/1.0"))
	assert.Equal(t, "repos/o/r/contents/my%20dir/a.md?ref=main", monoread.GitHubContentsPath("o", "r", "my dir/a.md", "main"))
}

func TestFormatFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1234, "1.21 KB"},
		{1048576, "1 MB"},
		{5 * 1024 * 1024 * 1024, "5 GB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3072 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, monoread.FormatFileSize(tt.in), "bytes %d", tt.in)
	}
}

func TestSortGitHubEntries(t *testing.T) {
	t.Parallel()

	entries := []monoread.GitHubEntry{
		{Name: "zeta.go", Type: monoread.GitHubFile},
		{Name: "src", Type: monoread.GitHubDir},
		{Name: "Alpha.md", Type: monoread.GitHubFile},
		{Name: "beta.txt", Type: monoread.GitHubFile},
		{Name: "docs", Type: monoread.GitHubDir},
		{Name: "link", Type: "symlink"},
	}

	dirs, files := monoread.SortGitHubEntries(entries)

	assert.Equal(t, []monoread.GitHubEntry{
		{Name: "docs", Type: monoread.GitHubDir},
		{Name: "src", Type: monoread.GitHubDir},
	}, dirs)
	assert.Equal(t, []monoread.GitHubEntry{
		{Name: "Alpha.md", Type: monoread.GitHubFile},
		{Name: "beta.txt", Type: monoread.GitHubFile},
		{Name: "zeta.go", Type: monoread.GitHubFile},
	}, files)
}

func TestFindReadme(t *testing.T) {
	t.Parallel()

	name, ok := monoread.FindReadme([]monoread.GitHubEntry{
		{Name: "LICENSE", Type: monoread.GitHubFile},
		{Name: "README.md", Type: monoread.GitHubFile},
	})
	assert.True(t, ok)
	assert.Equal(t, "README.md", name)

	for _, n := range []string{"readme", "Readme.markdown", "README.TXT"} {
		got, ok := monoread.FindReadme([]monoread.GitHubEntry{{Name: n, Type: monoread.GitHubFile}})
		assert.True(t, ok, n)
		assert.Equal(t, n, got)
	}

	_, ok = monoread.FindReadme([]monoread.GitHubEntry{{Name: "README.rst", Type: monoread.GitHubFile}})
	assert.False(t, ok)
}

func TestGitHubListing_Format(t *testing.T) {
	t.Parallel()

	t.Run("renders directories before files with sizes", func(t *testing.T) {
		t.Parallel()

		l := &monoread.GitHubListing{
			Owner: "o",
			Repo:  "r",
			Path:  "src",
			Entries: []monoread.GitHubEntry{
				{Name: "main.go", Type: monoread.GitHubFile, Size: 1536},
				{Name: "empty.txt", Type: monoread.GitHubFile},
				{Name: "internal", Type: monoread.GitHubDir},
			},
		}

		want := "<repository>\no/r\n</repository>\n\n" +
			"<path>\n/src\n</path>\n\n" +
			"<files>\n📁 internal/\n📄 empty.txt\n📄 main.go (1.5 KB)\n</files>"
		assert.Equal(t, want, l.Format())
	})

	t.Run("renders root path, description and readme", func(t *testing.T) {
		t.Parallel()

		l := &monoread.GitHubListing{
			Owner:       "o",
			Repo:        "r",
			Description: "A tool",
			Entries:     []monoread.GitHubEntry{{Name: "README.md", Type: monoread.GitHubFile, Size: 10}},
			Readme:      "# Hello",
		}

		want := "<repository>\no/r\n</repository>\n\n" +
			"<description>\nA tool\n</description>\n\n" +
			"<path>\n/\n</path>\n\n" +
			"<files>\n📄 README.md (10 B)\n</files>\n\n" +
			"<readme>\n# Hello\n</readme>"
		assert.Equal(t, want, l.Format())
	})
}

func TestFormatGitHubFile(t *testing.T) {
	t.Parallel()

	got := monoread.FormatGitHubFile("o", "r", "src/a.ts", "export {}")

	assert.Equal(t, "<repository>\no/r\n</repository>\n\n<path>\n/src/a.ts\n</path>\n\n<content>\nexport {}\n</content>", got)
}
