package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/monoread"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Version  string
	Resolver monoread.Resolver

	// NewWriter returns the writer that saves content under dir.
	NewWriter func(dir string) monoread.ContentWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel     string           `enum:"silent,debug,info,warn,error" default:"silent" help:"Log level (${enum})"`
	Timeout      time.Duration    `default:"30s" help:"Timeout for each HTTP request"`
	Extractor    string           `enum:"readability,trafilatura" default:"readability" help:"Main-content extractor (${enum})"`
	RateLimit    float64          `default:"0" help:"Requests per second per host for web pages (0 = unlimited)"`
	Retries      int              `default:"0" help:"Retries with exponential backoff after a network failure"`
	GitHubToken  string           `name:"github-token" env:"GITHUB_TOKEN" help:"GitHub token for private repositories and higher rate limits"`
	NotionAPIKey string           `name:"notion-api-key" env:"NOTION_API_KEY" help:"Notion integration token, required for Notion pages"`
	Version      kong.VersionFlag `help:"Show version"`

	Read ReadCmd `cmd:"" default:"withargs" help:"Read a URL and print its content"`
	MCP  MCPCmd  `cmd:"" name:"mcp" help:"Start an MCP server on stdio"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger returns a text logger on w, or a discarding logger for "silent".
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	if level == "" || level == "silent" {
		return slog.New(slog.DiscardHandler), nil
	}
	l, ok := logLevels[level]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
