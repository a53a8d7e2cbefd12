package main

import (
	"fmt"

	"github.com/fwojciec/monoread"
)

// ReadCmd is the "read" subcommand, run when no subcommand is given.
type ReadCmd struct {
	URL       string `arg:"" help:"URL to read"`
	Silent    bool   `help:"Extract content but do not output the result"`
	OutputDir string `short:"o" type:"path" help:"Save content as Markdown under this directory instead of printing it"`
}

// Run resolves the URL and prints or saves its content.
func (c *ReadCmd) Run(deps *Dependencies) error {
	content, err := deps.Resolver.Resolve(deps.Ctx, c.URL)
	if err != nil {
		if hint := hints[monoread.ErrorCode(err)]; hint != "" {
			fmt.Fprintln(deps.Stderr, "Hint:", hint)
		}
		return err
	}

	if c.OutputDir != "" {
		path, err := deps.NewWriter(c.OutputDir).WriteContent(deps.Ctx, content)
		if err != nil {
			return fmt.Errorf("failed to save content: %w", err)
		}
		if !c.Silent {
			fmt.Fprintln(deps.Stdout, path)
		}
		return nil
	}

	if !c.Silent {
		fmt.Fprintln(deps.Stdout, content.Text)
	}
	return nil
}

var hints = map[string]string{
	monoread.EINVALID:   "URLs must start with http:// or https://",
	monoread.ENOTFOUND:  "Check that the URL exists and is publicly accessible",
	monoread.EAUTH:      "Set GITHUB_TOKEN for private GitHub repositories or NOTION_API_KEY for Notion pages",
	monoread.ERATELIMIT: "Set GITHUB_TOKEN to raise the GitHub API rate limit, or try again later",
	monoread.ENETWORK:   "Check your network connection or raise --timeout",
}
