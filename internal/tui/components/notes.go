package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// NotesProps configures the markdown rendering of entry notes.
// Style names a glamour standard style ("dark", "light", "notty");
// empty picks one from the terminal.
type NotesProps struct {
	Notes string
	Width int
	Style string
}

type rendererKey struct {
	width int
	style string
}

// Cache Glamour renderers by width and style to avoid expensive re-creation
var (
	rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width and style
func getRenderer(width int, style string) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: style}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderNotes renders notes as markdown, falling back to the raw text.
// Empty notes render as an empty string.
func RenderNotes(props NotesProps) string {
	if strings.TrimSpace(props.Notes) == "" {
		return ""
	}

	renderer, err := getRenderer(max(props.Width, 10), props.Style)
	if err == nil {
		rendered, err := renderer.Render(props.Notes)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return props.Notes
}
