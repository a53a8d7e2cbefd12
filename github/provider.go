// Package github implements a monoread.Provider backed by the GitHub REST
// API. It renders files, directory listings and repository front pages as
// tagged plain text.
package github

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/monoread"
	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds each GitHub API request.
const DefaultTimeout = 30 * time.Second

const rawMediaType = "application/vnd.github.raw+json"

// Ensure Provider implements monoread.Provider at compile time.
var _ monoread.Provider = (*Provider)(nil)

// Provider extracts content from github.com blob, tree and repository URLs.
type Provider struct {
	client *github.Client
	logger *slog.Logger
}

type config struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// Option configures a Provider.
type Option func(*config)

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithBaseURL points the provider at a different API root, such as a GitHub
// Enterprise server or a test server.
func WithBaseURL(u string) Option {
	return func(cfg *config) {
		cfg.baseURL = u
	}
}

// WithLogger sets the logger for non-fatal problems such as a README that
// could not be read.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// NewProvider creates a Provider. An empty token limits the provider to
// public repositories and the anonymous rate limit.
func NewProvider(token string, opts ...Option) (*Provider, error) {
	cfg := &config{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	client := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		base := cfg.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, monoread.Errorf(monoread.EINVALID, "invalid GitHub API URL %q", cfg.baseURL)
		}
		client.BaseURL = u
	}

	return &Provider{client: client, logger: cfg.logger}, nil
}

// Name returns the provider name used in logs.
func (p *Provider) Name() string { return "github" }

// CanHandle accepts github.com blob, tree and repository URLs.
func (p *Provider) CanHandle(url string) bool {
	return monoread.IsGitHubURL(url)
}

// Extract implements monoread.Provider.
func (p *Provider) Extract(ctx context.Context, url string) (*monoread.Content, error) {
	info, err := monoread.ParseGitHubURL(url)
	if err != nil {
		return nil, err
	}

	var text string
	switch info.Kind {
	case monoread.GitHubBlob:
		text, err = p.file(ctx, info)
	case monoread.GitHubTree:
		text, err = p.directory(ctx, info.Owner, info.Repo, info.Branch, info.Path, "")
	default:
		text, err = p.repository(ctx, info)
	}
	if err != nil {
		return nil, err
	}

	return &monoread.Content{
		Text:     text,
		Title:    info.Owner + "/" + info.Repo,
		Source:   url,
		Provider: p.Name(),
	}, nil
}

func (p *Provider) file(ctx context.Context, info *monoread.GitHubURL) (string, error) {
	raw, err := p.readRaw(ctx, info.Owner, info.Repo, info.Path, info.Branch)
	if err != nil {
		return "", apiError(err, "GitHub file not found")
	}
	return monoread.FormatGitHubFile(info.Owner, info.Repo, info.Path, raw), nil
}

func (p *Provider) repository(ctx context.Context, info *monoread.GitHubURL) (string, error) {
	repo, _, err := p.client.Repositories.Get(ctx, info.Owner, info.Repo)
	if err != nil {
		return "", apiError(err, "GitHub repository not found")
	}
	return p.directory(ctx, info.Owner, info.Repo, repo.GetDefaultBranch(), "", repo.GetDescription())
}

func (p *Provider) directory(ctx context.Context, owner, repo, ref, path, description string) (string, error) {
	req, err := p.client.NewRequest(http.MethodGet, monoread.GitHubContentsPath(owner, repo, path, ref), nil)
	if err != nil {
		return "", monoread.Errorf(monoread.EINVALID, "build GitHub request: %v", err)
	}

	var items []*github.RepositoryContent
	if _, err := p.client.Do(ctx, req, &items); err != nil {
		return "", apiError(err, "GitHub directory not found")
	}

	listing := &monoread.GitHubListing{
		Owner:       owner,
		Repo:        repo,
		Description: description,
		Path:        path,
		Entries:     make([]monoread.GitHubEntry, 0, len(items)),
	}
	for _, item := range items {
		listing.Entries = append(listing.Entries, monoread.GitHubEntry{
			Name: item.GetName(),
			Type: monoread.GitHubEntryType(item.GetType()),
			Size: item.GetSize(),
		})
	}

	_, files := monoread.SortGitHubEntries(listing.Entries)
	if name, ok := monoread.FindReadme(files); ok {
		readmePath := name
		if path != "" {
			readmePath = path + "/" + name
		}
		readme, err := p.readRaw(ctx, owner, repo, readmePath, ref)
		if err != nil {
			p.logger.Warn("github readme", "repo", owner+"/"+repo, "path", readmePath, "err", err)
		} else {
			listing.Readme = readme
		}
	}

	return listing.Format(), nil
}

// readRaw returns the raw bytes of a repository file.
func (p *Provider) readRaw(ctx context.Context, owner, repo, path, ref string) (string, error) {
	req, err := p.client.NewRequest(http.MethodGet, monoread.GitHubContentsPath(owner, repo, path, ref), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", rawMediaType)

	var buf bytes.Buffer
	if _, err := p.client.Do(ctx, req, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// apiError converts a go-github error into a monoread error.
func apiError(err error, notFound string) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse
	switch {
	case errors.As(err, &rateErr):
		return monoread.Errorf(monoread.ERATELIMIT, "GitHub API rate limit exceeded: %s", rateErr.Message)
	case errors.As(err, &abuseErr):
		return monoread.Errorf(monoread.ERATELIMIT, "GitHub secondary rate limit exceeded: %s", abuseErr.Message)
	case errors.As(err, &respErr) && respErr.Response != nil:
		status := respErr.Response.StatusCode
		switch status {
		case http.StatusNotFound:
			return monoread.Errorf(monoread.ENOTFOUND, "%s", notFound)
		case http.StatusUnauthorized, http.StatusForbidden:
			return monoread.Errorf(monoread.EAUTH, "Access denied. This may be a private repository.")
		default:
			return monoread.Errorf(monoread.ENETWORK, "GitHub API error: %d %s", status, http.StatusText(status))
		}
	default:
		return monoread.Errorf(monoread.ENETWORK, "Failed to fetch GitHub content: %v", err)
	}
}
