package quotegen

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// notesRenderer abstracts Markdown to HTML conversion for the notes section.
type notesRenderer interface {
	RenderNotes(ctx context.Context, content string) (string, error)
}

// goldmarkNotes renders the request's free-form notes as an HTML fragment
// using goldmark (pure Go). The fragment lands in the template's {{notes}}
// token; templates without that token simply never show notes.
type goldmarkNotes struct {
	md goldmark.Markdown
}

// newGoldmarkNotes creates a goldmarkNotes with GFM extensions.
func newGoldmarkNotes() *goldmarkNotes {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &goldmarkNotes{md: md}
}

// RenderNotes converts Markdown notes to an HTML fragment. Empty input yields
// an empty fragment. Supports context cancellation via goroutine + select
// pattern since goldmark doesn't natively support context.
func (r *goldmarkNotes) RenderNotes(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrNotesRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// Compile-time interface check.
var _ notesRenderer = (*goldmarkNotes)(nil)
