// Package mcp exposes monoread over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/fwojciec/monoread"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolName is the name of the single tool the server offers.
const ToolName = "read_url_content"

// Server serves the read_url_content tool.
type Server struct {
	server   *mcp.Server
	resolver monoread.Resolver
}

// Option configures a Server.
type Option func(*mcp.ServerOptions)

// WithLogger logs server activity, such as session start and end, to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *mcp.ServerOptions) {
		o.Logger = l
	}
}

// NewServer creates a Server resolving URLs with resolver.
func NewServer(resolver monoread.Resolver, version string, opts ...Option) *Server {
	options := &mcp.ServerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	s := &Server{
		server:   mcp.NewServer(&mcp.Implementation{Name: "monoread", Version: version}, options),
		resolver: resolver,
	}
	s.server.AddTool(&mcp.Tool{
		Name:        ToolName,
		Description: "Extract content from a URL using readability",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"url": {Type: "string", Description: "The URL to read content from"},
			},
			Required: []string{"url"},
		},
	}, s.readURLContent)
	return s
}

// Run serves a single session over stdin and stdout until the client
// disconnects or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over t. It is used to attach the server to
// transports other than stdio.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

type readURLArgs struct {
	URL string `json:"url"`
}

func (s *Server) readURLContent(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args readURLArgs
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return errorResult("Invalid arguments: " + err.Error()), nil
		}
	}
	if args.URL == "" {
		return errorResult("Invalid arguments: url is required"), nil
	}
	if err := monoread.ValidateURL(args.URL); err != nil {
		return errorResult("Invalid arguments: " + monoread.ErrorMessage(err)), nil
	}

	logger := slog.New(mcp.NewLoggingHandler(req.Session, &mcp.LoggingHandlerOptions{LoggerName: "monoread"}))
	logger.Debug("Processing read_url_content request", "url", args.URL)

	content, err := s.resolver.Resolve(ctx, args.URL)
	if err != nil {
		logger.Warn("Content extraction failed", "url", args.URL, "code", monoread.ErrorCode(err), "err", monoread.ErrorMessage(err))
		return errorResult("Failed to extract content: " + monoread.ErrorMessage(err)), nil
	}

	logger.Debug("Content extraction successful", "url", args.URL, "provider", content.Provider)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: content.Text}},
	}, nil
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
