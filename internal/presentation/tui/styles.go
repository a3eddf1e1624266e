package tui

import (
	"github.com/muesli/termenv"
)

// Styler decorates output text for the terminal.
// With color disabled every method returns its input unchanged.
type Styler struct {
	profile termenv.Profile
}

// NewStyler detects the terminal color profile, or forces plain text when color is false.
func NewStyler(color bool) *Styler {
	if !color {
		return &Styler{profile: termenv.Ascii}
	}
	return &Styler{profile: termenv.ColorProfile()}
}

// Success styles a computed result (green, bold).
func (s *Styler) Success(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("2")).Bold().String()
}

// Failure styles an error message (red, bold).
func (s *Styler) Failure(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("1")).Bold().String()
}

// Prompt styles the input prompt (magenta, bold).
func (s *Styler) Prompt(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("5")).Bold().String()
}

// Accent styles headings such as the program name (blue, bold).
func (s *Styler) Accent(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("4")).Bold().String()
}

// Bold styles text in bold only.
func (s *Styler) Bold(text string) string {
	return s.profile.String(text).Bold().String()
}

// Italic styles text in italics.
func (s *Styler) Italic(text string) string {
	return s.profile.String(text).Italic().String()
}
