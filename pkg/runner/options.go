package runner

import (
	"io"
	"log/slog"

	"github.com/aretw0/calcli/pkg/observability"
)

// DefaultMaxInputSize is the longest accepted input line, in bytes.
const DefaultMaxInputSize = 4096

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithReader configures the line source.
func WithReader(reader LineReader) Option {
	return func(r *Runner) {
		r.Reader = reader
	}
}

// WithOutput configures where results and errors are written.
func WithOutput(out, errOut io.Writer) Option {
	return func(r *Runner) {
		r.Out = out
		r.ErrOut = errOut
	}
}

// WithStyler configures result and error decoration.
func WithStyler(s Styler) Option {
	return func(r *Runner) {
		r.Styler = s
	}
}

// WithRenderer configures the markdown renderer used for help.
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithHelpText replaces the markdown shown by :h.
func WithHelpText(text string) Option {
	return func(r *Runner) {
		r.HelpText = text
	}
}

// WithMetrics records processed lines.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithMaxInputSize overrides DefaultMaxInputSize.
func WithMaxInputSize(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.MaxInputSize = n
		}
	}
}

// WithInteractive enables exit notices meant for a human at a terminal.
func WithInteractive(interactive bool) Option {
	return func(r *Runner) {
		r.Interactive = interactive
	}
}
