package topics

import (
	"github.com/charmbracelet/glamour"
)

// Markdown is the format GlamourRenderer transforms; others pass through.
const Markdown = ".md"

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour default)
}

// NewGlamourRenderer creates a markdown renderer using glamour with auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// NewGlamourRendererFor picks the auto style when color is on and the
// plain "notty" style otherwise.
func NewGlamourRendererFor(color bool, width int) *GlamourRenderer {
	r := &GlamourRenderer{Style: "notty", Width: width}
	if color {
		r.Style = "auto"
	}
	return r
}

// Render converts markdown to styled terminal output. Any glamour failure
// falls back to the raw content.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != Markdown {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
