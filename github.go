package monoread

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GitHubHost is the only host the GitHub provider accepts.
const GitHubHost = "github.com"

// GitHubURLKind classifies a GitHub web URL.
type GitHubURLKind string

// GitHubURLKind constants.
const (
	GitHubBlob     GitHubURLKind = "blob"
	GitHubTree     GitHubURLKind = "tree"
	GitHubTopLevel GitHubURLKind = "top-level"
)

// GitHubURL is a parsed GitHub web URL.
type GitHubURL struct {
	Owner  string
	Repo   string
	Branch string // empty for top-level URLs
	Path   string // no leading or trailing slash
	Kind   GitHubURLKind
}

// ParseGitHubURL classifies a github.com web URL.
// Supported shapes are /{owner}/{repo}, /{owner}/{repo}/tree/{ref}[/{path}]
// and /{owner}/{repo}/blob/{ref}/{path}. Query and fragment are ignored.
// Returns EINVALID for any other URL.
func ParseGitHubURL(rawURL string) (*GitHubURL, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host != GitHubHost || (u.Scheme != "https" && u.Scheme != "http") {
		return nil, Errorf(EINVALID, "not a GitHub URL: %q", rawURL)
	}

	segs := splitPath(u.Path)
	if len(segs) < 2 {
		return nil, Errorf(EINVALID, "GitHub URL has no repository: %q", rawURL)
	}

	info := &GitHubURL{Owner: segs[0], Repo: segs[1]}
	switch {
	case len(segs) == 2:
		info.Kind = GitHubTopLevel
	case segs[2] == "blob" && len(segs) >= 5:
		info.Kind = GitHubBlob
		info.Branch = segs[3]
		info.Path = strings.Join(segs[4:], "/")
	case segs[2] == "tree" && len(segs) >= 4:
		info.Kind = GitHubTree
		info.Branch = segs[3]
		info.Path = strings.Join(segs[4:], "/")
	default:
		return nil, Errorf(EINVALID, "unsupported GitHub URL: %q", rawURL)
	}
	return info, nil
}

func splitPath(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// IsGitHubURL reports whether ParseGitHubURL accepts rawURL.
func IsGitHubURL(rawURL string) bool {
	_, err := ParseGitHubURL(rawURL)
	return err == nil
}

// GitHubContentsPath returns the REST contents endpoint path, relative to
// the API root, for a path in a repository at ref. An empty path addresses
// the repository root and yields no trailing slash.
func GitHubContentsPath(owner, repo, path, ref string) string {
	p := fmt.Sprintf("repos/%s/%s/contents", url.PathEscape(owner), url.PathEscape(repo))
	if path != "" {
		p += "/" + escapePath(path)
	}
	return p + "?ref=" + url.QueryEscape(ref)
}

func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// GitHubEntryType is the type of a repository contents entry.
type GitHubEntryType string

// GitHubEntryType constants.
const (
	GitHubFile GitHubEntryType = "file"
	GitHubDir  GitHubEntryType = "dir"
)

// GitHubEntry is one item of a repository directory listing.
type GitHubEntry struct {
	Name string
	Type GitHubEntryType
	Size int
}

// GitHubListing is a rendered directory of a repository.
type GitHubListing struct {
	Owner       string
	Repo        string
	Description string
	Path        string
	Entries     []GitHubEntry
	Readme      string
}

// SortGitHubEntries splits entries into directories and files, each sorted by
// name with locale-aware collation. Entries of other types are dropped.
func SortGitHubEntries(entries []GitHubEntry) (dirs, files []GitHubEntry) {
	for _, e := range entries {
		switch e.Type {
		case GitHubDir:
			dirs = append(dirs, e)
		case GitHubFile:
			files = append(files, e)
		}
	}
	sortByName(dirs)
	sortByName(files)
	return dirs, files
}

func sortByName(entries []GitHubEntry) {
	c := collate.New(language.Und)
	names := make([]string, len(entries))
	byName := make(map[string][]GitHubEntry, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		byName[e.Name] = append(byName[e.Name], e)
	}
	c.SortStrings(names)
	for i, name := range names {
		entries[i] = byName[name][0]
		byName[name] = byName[name][1:]
	}
}

// FindReadme returns the name of the first file that is a README
// (case-insensitive readme, readme.md, readme.markdown or readme.txt).
func FindReadme(files []GitHubEntry) (string, bool) {
	for _, f := range files {
		switch strings.ToLower(f.Name) {
		case "readme", "readme.md", "readme.markdown", "readme.txt":
			return f.Name, true
		}
	}
	return "", false
}

// Format renders the listing as tagged text sections.
func (l *GitHubListing) Format() string {
	dirs, files := SortGitHubEntries(l.Entries)

	var b strings.Builder
	fmt.Fprintf(&b, "<repository>\n%s/%s\n</repository>\n\n", l.Owner, l.Repo)
	if l.Description != "" {
		fmt.Fprintf(&b, "<description>\n%s\n</description>\n\n", l.Description)
	}
	fmt.Fprintf(&b, "<path>\n/%s\n</path>\n\n<files>\n", l.Path)
	for _, d := range dirs {
		fmt.Fprintf(&b, "📁 %s/\n", d.Name)
	}
	for _, f := range files {
		if f.Size > 0 {
			fmt.Fprintf(&b, "📄 %s (%s)\n", f.Name, FormatFileSize(f.Size))
		} else {
			fmt.Fprintf(&b, "📄 %s\n", f.Name)
		}
	}
	b.WriteString("</files>")
	if l.Readme != "" {
		fmt.Fprintf(&b, "\n\n<readme>\n%s\n</readme>", l.Readme)
	}
	return b.String()
}

// FormatGitHubFile renders a single repository file as tagged text sections.
func FormatGitHubFile(owner, repo, path, content string) string {
	return fmt.Sprintf("<repository>\n%s/%s\n</repository>\n\n<path>\n/%s\n</path>\n\n<content>\n%s\n</content>",
		owner, repo, path, content)
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize renders a byte count in binary units rounded to two
// decimals, e.g. 1536 -> "1.5 KB".
func FormatFileSize(bytes int) string {
	if bytes <= 0 {
		return "0 B"
	}
	exp := 0
	for v := bytes; v >= 1024 && exp < len(sizeUnits)-1; v /= 1024 {
		exp++
	}
	value := math.Round(float64(bytes)/math.Pow(1024, float64(exp))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[exp]
}
