package runner

import (
	"context"
	"errors"
)

// ErrInterrupted is returned by a LineReader when the user pressed Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// LineReader yields the next line of user input.
// It returns ErrInterrupted on Ctrl-C and io.EOF at end of input.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Styler decorates text before it is printed.
type Styler interface {
	Success(text string) string
	Failure(text string) string
}

// ContentRenderer transforms markdown before it is printed (e.g. to ANSI).
type ContentRenderer func(string) (string, error)

type plainStyler struct{}

func (plainStyler) Success(text string) string { return text }
func (plainStyler) Failure(text string) string { return text }
