package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/calcli/internal/logging"
	"github.com/aretw0/calcli/pkg/observability"
	"github.com/aretw0/calcli/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// Without debug it discards everything so the REPL output stays clean.
func createLogger(debug bool, level string, w io.Writer) *slog.Logger {
	if debug {
		return logging.NewWithWriter(w, logging.ParseLevel(level))
	}
	return logging.NewNop()
}

// setupMetrics registers the collectors and, when addr is set, serves them until ctx ends.
func setupMetrics(ctx context.Context, addr string, logger *slog.Logger) *observability.Metrics {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	if addr == "" {
		return metrics
	}
	go func() {
		if err := observability.Serve(ctx, addr, observability.NewHandler(reg), logger); err != nil {
			logger.Error("Metrics Server Failed", "addr", addr, "err", err)
		}
	}()
	return metrics
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, runner.ErrInterrupted) ||
		errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}

// logCompletion prints an exit notice when a signal, not the user at the prompt, ended the session.
func logCompletion(w io.Writer, err error, sig os.Signal, interactive bool) {
	if !interactive || !isInterrupted(err) || sig == nil {
		return
	}
	if sig == os.Interrupt {
		fmt.Fprintln(w, "\n(CTRL-C) Exiting...")
		return
	}
	fmt.Fprintf(w, "\n(%v) Exiting...\n", sig)
}
