package cli

import (
	"context"
	"io"

	"github.com/aretw0/calcli/internal/config"
	"github.com/aretw0/calcli/internal/presentation/tui"
	"github.com/aretw0/calcli/pkg/commands"
	"github.com/aretw0/calcli/pkg/evaluator"
	"github.com/aretw0/calcli/pkg/parser"
	"github.com/aretw0/calcli/pkg/runner"
)

// RunOptions contains all the configuration for the REPL and eval commands.
type RunOptions struct {
	Config config.Config
	Debug  bool
}

// RunEval evaluates each line of exprs in one session, as if typed at the
// prompt, writing results to out. It stops at the first error.
func RunEval(ctx context.Context, opts RunOptions, exprs []string, out, errOut io.Writer) error {
	cfg := opts.Config
	format, err := cfg.DisplayFormat()
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug, cfg.LogLevel, errOut)

	r := runner.NewRunner(
		parser.New(evaluator.New(), parser.WithLogger(logger)),
		commands.NewHandler(commands.WithFormat(format), commands.WithLogger(logger)),
		runner.WithOutput(out, errOut),
		runner.WithStyler(tui.NewStyler(cfg.Color)),
		runner.WithRenderer(tui.NewRenderer(cfg.Color)),
		runner.WithLogger(logger),
		runner.WithMaxInputSize(cfg.MaxInputSize),
	)
	return r.Exec(ctx, exprs)
}
