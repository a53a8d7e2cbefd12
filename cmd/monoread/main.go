package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/monoread"
	"github.com/fwojciec/monoread/fs"
	"github.com/fwojciec/monoread/github"
	"github.com/fwojciec/monoread/htmltomarkdown"
	"github.com/fwojciec/monoread/http"
	"github.com/fwojciec/monoread/notion"
	"github.com/fwojciec/monoread/readability"
	"github.com/fwojciec/monoread/resolve"
	monoslog "github.com/fwojciec/monoread/slog"
	"github.com/fwojciec/monoread/trafilatura"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", monoread.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Version reported by --version and the MCP server.
	Version string

	// Resolver replaces the provider pipeline when set. Used by tests.
	Resolver monoread.Resolver

	// NewWriter builds the writer used by --output-dir.
	NewWriter func(dir string) monoread.ContentWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Version: version,
		NewWriter: func(dir string) monoread.ContentWriter {
			return fs.NewWriter(dir)
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("monoread"),
		kong.Description("Read the content of a URL as plain text or Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"version": m.Version},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL specified. Run 'monoread --help' for usage")
	}

	if len(args) == 1 {
		switch args[0] {
		case "help", "--help", "-h":
			_, _ = parser.Parse([]string{"--help"})
			return nil
		case "--version":
			fmt.Fprintln(stdout, m.Version)
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cli.LogLevel, stderr)
	if err != nil {
		return err
	}

	resolver := m.Resolver
	if resolver == nil {
		resolver, err = newPipeline(cli, logger)
		if err != nil {
			return err
		}
	}

	newWriter := m.NewWriter
	if newWriter == nil {
		newWriter = func(dir string) monoread.ContentWriter { return fs.NewWriter(dir) }
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Version:   m.Version,
		Resolver:  monoslog.NewLoggingResolver(resolver, logger),
		NewWriter: newWriter,
	}
	return kongCtx.Run(deps)
}

// newPipeline wires the providers in precedence order: source-specific
// providers first, then the generic strategies.
func newPipeline(cli *CLI, logger *slog.Logger) (*resolve.Pipeline, error) {
	fetcher := http.NewRetryFetcher(
		monoslog.NewLoggingFetcher(http.NewFetcher(
			http.WithTimeout(cli.Timeout),
			http.WithRateLimit(cli.RateLimit),
		), logger),
		http.RetryDelays(cli.Retries)...,
	)

	githubProvider, err := github.NewProvider(cli.GitHubToken,
		github.WithHTTPClient(&nethttp.Client{Timeout: cli.Timeout}),
		github.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	notionProvider := notion.NewProvider(cli.NotionAPIKey,
		notion.NewClient(cli.NotionAPIKey, notion.WithHTTPClient(&nethttp.Client{Timeout: cli.Timeout})),
	)

	var extractor monoread.Extractor = readability.NewExtractor()
	if cli.Extractor == "trafilatura" {
		extractor = trafilatura.NewExtractor()
	}

	providers := []monoread.Provider{
		githubProvider,
		notionProvider,
		resolve.NewReadabilityProvider(fetcher, extractor, htmltomarkdown.NewConverter()),
		resolve.NewLLMsTxtProvider(fetcher),
		resolve.NewHTTPProvider(fetcher),
	}
	for i, p := range providers {
		providers[i] = monoslog.NewLoggingProvider(p, logger)
	}
	return resolve.NewPipeline(providers...), nil
}
