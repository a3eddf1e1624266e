package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/calcli"
	"github.com/aretw0/calcli/internal/config"
	"github.com/aretw0/calcli/internal/presentation/tui"
	"github.com/aretw0/calcli/pkg/commands"
	"github.com/aretw0/calcli/pkg/evaluator"
	"github.com/aretw0/calcli/pkg/parser"
	"github.com/aretw0/calcli/pkg/runner"
)

// sessionIO is the input and output chosen for a session.
type sessionIO struct {
	reader      runner.LineReader
	out         io.Writer
	errOut      io.Writer
	interactive bool
	close       func() error
}

// openSessionIO uses a raw-mode line editor when Stdin is a terminal and
// plain buffered reading otherwise.
func openSessionIO(cfg config.Config, styler *tui.Styler) (*sessionIO, error) {
	if runner.IsTerminal(os.Stdin) {
		t, err := runner.OpenTerminal(os.Stdin, os.Stdout, styler.Prompt(cfg.Prompt))
		if err == nil {
			return &sessionIO{reader: t, out: t, errOut: t, interactive: true, close: t.Close}, nil
		}
		if !errors.Is(err, runner.ErrNotTerminal) {
			return nil, err
		}
	}
	return &sessionIO{
		reader: runner.NewTextHandler(os.Stdin, os.Stdout),
		out:    os.Stdout,
		errOut: os.Stderr,
		close:  func() error { return nil },
	}, nil
}

// RunSession runs the interactive calculator until quit, interrupt or end of input.
func RunSession(opts RunOptions) error {
	cfg := opts.Config
	format, err := cfg.DisplayFormat()
	if err != nil {
		return err
	}
	styler := tui.NewStyler(cfg.Color)

	sio, err := openSessionIO(cfg, styler)
	if err != nil {
		return fmt.Errorf("failed to initialize input: %w", err)
	}
	defer func() { _ = sio.close() }()

	logger := createLogger(opts.Debug, cfg.LogLevel, sio.errOut)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	metrics := setupMetrics(sigCtx, cfg.MetricsAddr, logger)

	if cfg.Banner && sio.interactive {
		tui.PrintBanner(sio.out, styler, calcli.Version)
	}

	r := runner.NewRunner(
		parser.New(evaluator.New(), parser.WithLogger(logger)),
		commands.NewHandler(commands.WithFormat(format), commands.WithLogger(logger)),
		runner.WithReader(sio.reader),
		runner.WithOutput(sio.out, sio.errOut),
		runner.WithStyler(styler),
		runner.WithRenderer(tui.NewRenderer(cfg.Color)),
		runner.WithMetrics(metrics),
		runner.WithLogger(logger),
		runner.WithMaxInputSize(cfg.MaxInputSize),
		runner.WithInteractive(sio.interactive),
	)

	logger.Info("Session Started", "interactive", sio.interactive, "notation", format.Notation.String(), "decimals", format.DecimalPlaces)
	runErr := r.Run(sigCtx)

	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	logCompletion(sio.out, runErr, sigCtx.Signal(), sio.interactive)

	return handleExecutionError(runErr)
}
