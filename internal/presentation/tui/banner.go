package tui

import (
	"fmt"
	"io"
)

// PrintBanner writes the program name and a usage hint.
func PrintBanner(w io.Writer, s *Styler, version string) {
	fmt.Fprint(w, s.Accent("calcli"))
	fmt.Fprintln(w, s.Bold(" – calculator for the command line"))
	if version != "" {
		fmt.Fprintf(w, "version %s\n", version)
	}
	fmt.Fprintf(w, "Enter a mathematical expression to evaluate it or %s for more information.\n\n", s.Italic(":h"))
}
