// Package htmltomarkdown implements monoread.Converter with
// html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/monoread"
)

// Ensure Converter implements monoread.Converter at compile time.
var _ monoread.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with CommonMark and table support.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Relative links and image
// sources are made absolute against sourceURL when it is set.
func (c *Converter) Convert(html, sourceURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", monoread.Errorf(monoread.EUNKNOWN, "empty HTML input")
	}

	var md string
	var err error
	if sourceURL != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(sourceURL))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", monoread.Errorf(monoread.EUNKNOWN, "convert to markdown: %v", err)
	}

	return strings.TrimSpace(md), nil
}
