package monoread

import "context"

// ContentWriter persists resolved content.
type ContentWriter interface {
	// WriteContent stores content and returns the location it was written to.
	WriteContent(ctx context.Context, content *Content) (string, error)
}
