package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/calcli/internal/logging"
	"github.com/aretw0/calcli/internal/presentation/tui"
	"github.com/aretw0/calcli/pkg/commands"
	"github.com/aretw0/calcli/pkg/observability"
	"github.com/aretw0/calcli/pkg/parser"
)

// Runner owns one calculator session and its display format.
// It is not safe for concurrent use; lines are processed one at a time.
type Runner struct {
	Reader       LineReader
	Out          io.Writer
	ErrOut       io.Writer
	Styler       Styler
	Renderer     ContentRenderer
	HelpText     string
	Metrics      *observability.Metrics
	Logger       *slog.Logger
	MaxInputSize int
	Interactive  bool

	parser   *parser.Parser
	commands *commands.Handler
}

// Outcome is what a dispatched line produced.
type Outcome struct {
	// Text is the message to print. Empty means nothing to print.
	Text string

	// Raw marks pre-rendered text (help) that must not be styled.
	Raw bool

	// Quit asks the loop to stop.
	Quit bool
}

// NewRunner creates a Runner over p and h reading from Stdin.
func NewRunner(p *parser.Parser, h *commands.Handler, opts ...Option) *Runner {
	r := &Runner{
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		Styler:       plainStyler{},
		HelpText:     tui.HelpText,
		Logger:       logging.NewNop(),
		MaxInputSize: DefaultMaxInputSize,
		parser:       p,
		commands:     h,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Reader == nil {
		r.Reader = NewTextHandler(os.Stdin, nil)
	}
	return r
}

// Run reads and dispatches lines until quit, interrupt, end of input or ctx cancellation.
// Quit, interrupt and end of input return nil.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.Reader.ReadLine(ctx)
		if err != nil {
			return r.handleReadError(err)
		}

		line, err = SanitizeInput(strings.TrimSpace(line), r.MaxInputSize)
		if err != nil {
			r.printError(err)
			continue
		}
		if line == "" {
			continue
		}

		out, err := r.Dispatch(line)
		if err != nil {
			r.printError(err)
			continue
		}
		if out.Quit {
			r.notice("Exiting ...")
			return nil
		}
		r.print(out)
	}
}

// Exec dispatches each line in order, printing results, and stops at the
// first error or quit command. It is the non-interactive counterpart of Run.
func (r *Runner) Exec(ctx context.Context, lines []string) error {
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := SanitizeInput(strings.TrimSpace(line), r.MaxInputSize)
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		out, err := r.Dispatch(line)
		if err != nil {
			return err
		}
		if out.Quit {
			return nil
		}
		r.print(out)
	}
	return nil
}

// Dispatch processes one non-empty line: commands go to the handler,
// everything else to the parser. Successful values are formatted with the
// current display format.
func (r *Runner) Dispatch(line string) (Outcome, error) {
	start := time.Now()

	if commands.IsCommand(line) {
		res, err := r.commands.Execute(line)
		if err != nil {
			r.observeError(line, err, start)
			return Outcome{}, err
		}
		r.observe("command_"+res.Kind.String(), start)

		switch res.Kind {
		case commands.KindQuit:
			return Outcome{Quit: true}, nil
		case commands.KindHelp:
			return Outcome{Text: r.renderHelp(), Raw: true}, nil
		default:
			return Outcome{Text: res.Message}, nil
		}
	}

	res, err := r.parser.Parse(line)
	if err != nil {
		r.observeError(line, err, start)
		return Outcome{}, err
	}
	r.observe(res.Kind.String(), start)
	r.Metrics.SetVariables(len(r.parser.Session().Variables()))

	return Outcome{Text: r.present(res)}, nil
}

func (r *Runner) present(res parser.Result) string {
	value := r.commands.FormatNumber(res.Value)
	switch res.Kind {
	case parser.KindAssignment:
		return res.Name + " = " + value
	case parser.KindSave:
		return "saved " + res.Name + " = " + value
	default:
		return "= " + value
	}
}

func (r *Runner) renderHelp() string {
	if r.Renderer == nil {
		return r.HelpText
	}
	rendered, err := r.Renderer(r.HelpText)
	if err != nil {
		r.Logger.Warn("Help Render Failed", "err", err)
		return r.HelpText
	}
	return rendered
}

func (r *Runner) handleReadError(err error) error {
	switch {
	case errors.Is(err, ErrInterrupted):
		r.notice("(CTRL-C) Exiting...")
		return nil
	case errors.Is(err, io.EOF):
		r.notice("\n(CTRL-D) Exiting...")
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("input error: %w", err)
	}
}

func (r *Runner) observe(kind string, start time.Time) {
	d := time.Since(start)
	r.Metrics.ObserveLine(kind, d)
	r.Logger.Debug("Line Processed", "kind", kind, "duration", d)
}

func (r *Runner) observeError(line string, err error, start time.Time) {
	r.Metrics.ObserveError(err, time.Since(start))
	r.Logger.Debug("Line Rejected", "line", line, "err", err)
}

func (r *Runner) print(out Outcome) {
	if out.Text == "" {
		return
	}
	if out.Raw {
		fmt.Fprintln(r.Out, strings.TrimRight(out.Text, "\n"))
		return
	}
	fmt.Fprintln(r.Out, r.Styler.Success(out.Text))
}

func (r *Runner) printError(err error) {
	fmt.Fprintln(r.ErrOut, r.Styler.Failure(err.Error()))
}

func (r *Runner) notice(msg string) {
	if r.Interactive {
		fmt.Fprintln(r.Out, msg)
	}
}
