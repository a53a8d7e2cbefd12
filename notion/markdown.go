package notion

import (
	"strings"

	"github.com/jomei/notionapi"
)

// writeBlock appends the Markdown form of a single block. Nested blocks are
// indented two spaces per level. Unsupported block types are skipped.
func writeBlock(b *strings.Builder, block notionapi.Block, depth int) {
	var line string
	switch v := block.(type) {
	case *notionapi.ParagraphBlock:
		line = plainText(v.Paragraph.RichText)
	case *notionapi.Heading1Block:
		line = "# " + plainText(v.Heading1.RichText)
	case *notionapi.Heading2Block:
		line = "## " + plainText(v.Heading2.RichText)
	case *notionapi.Heading3Block:
		line = "### " + plainText(v.Heading3.RichText)
	case *notionapi.BulletedListItemBlock:
		line = "- " + plainText(v.BulletedListItem.RichText)
	case *notionapi.NumberedListItemBlock:
		line = "1. " + plainText(v.NumberedListItem.RichText)
	case *notionapi.ToDoBlock:
		box := "[ ]"
		if v.ToDo.Checked {
			box = "[x]"
		}
		line = "- " + box + " " + plainText(v.ToDo.RichText)
	case *notionapi.ToggleBlock:
		line = "- " + plainText(v.Toggle.RichText)
	case *notionapi.QuoteBlock:
		line = "> " + plainText(v.Quote.RichText)
	case *notionapi.CalloutBlock:
		line = "> " + plainText(v.Callout.RichText)
	case *notionapi.CodeBlock:
		line = "```" + v.Code.Language + "\n" + plainText(v.Code.RichText) + "\n```"
	case *notionapi.DividerBlock:
		line = "---"
	default:
		return
	}

	if line == "" {
		return
	}
	indent := strings.Repeat("  ", depth)
	for i, l := range strings.Split(line, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if l != "" {
			b.WriteString(indent)
		}
		b.WriteString(l)
	}
	b.WriteString("\n\n")
}

func plainText(rt []notionapi.RichText) string {
	var b strings.Builder
	for _, t := range rt {
		b.WriteString(t.PlainText)
	}
	return b.String()
}
