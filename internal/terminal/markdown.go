package terminal

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders Markdown for the terminal. An empty style detects
// the terminal background; "notty" renders plain text.
func RenderMarkdown(body string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(body)
}
