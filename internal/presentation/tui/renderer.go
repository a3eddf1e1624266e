package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// With color it adapts to the terminal background; without it uses the notty style.
func NewRenderer(color bool) func(string) (string, error) {
	opt := glamour.WithAutoStyle()
	if !color {
		opt = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))
	if err != nil {
		// Fall back to raw markdown; it is readable as-is.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
