package main

import (
	"github.com/fwojciec/monoread/mcp"
)

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}

// Run serves the read_url_content tool on stdio until the client disconnects.
func (c *MCPCmd) Run(deps *Dependencies) error {
	return mcp.NewServer(deps.Resolver, deps.Version, mcp.WithLogger(deps.Logger)).Run(deps.Ctx)
}
