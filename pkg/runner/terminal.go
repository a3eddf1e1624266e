package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by OpenTerminal when the input is not a TTY.
var ErrNotTerminal = errors.New("input is not a terminal")

const keyCtrlC = 3

// Terminal is a LineReader with line editing and in-memory history.
// It puts the terminal in raw mode until Close; output written through
// Terminal keeps the prompt intact.
type Terminal struct {
	fd    int
	state *term.State
	term  *term.Terminal
	keys  *keySniffer

	requests  chan struct{}
	results   chan inputResult
	pending   bool
	startOnce sync.Once
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// OpenTerminal switches in to raw mode and prepares line editing with prompt.
func OpenTerminal(in *os.File, out io.Writer, prompt string) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	keys := &keySniffer{r: in}
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{keys, out}, prompt)
	if width, height, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(width, height)
	}

	return &Terminal{
		fd:       fd,
		state:    state,
		term:     t,
		keys:     keys,
		requests: make(chan struct{}),
		results:  make(chan inputResult),
	}, nil
}

func (t *Terminal) initPump() {
	t.startOnce.Do(func() {
		go t.pump()
	})
}

// pump reads one line per request so that at most one ReadLine is active.
func (t *Terminal) pump() {
	for range t.requests {
		line, err := t.term.ReadLine()
		t.results <- inputResult{text: line, err: err}
	}
}

// ReadLine shows the prompt and returns the edited line.
// Ctrl-C yields ErrInterrupted, Ctrl-D on an empty line yields io.EOF.
// If ctx is cancelled mid-read, the read stays pending and the next call
// picks up its result.
func (t *Terminal) ReadLine(ctx context.Context) (string, error) {
	t.initPump()

	if !t.pending {
		t.keys.reset()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case t.requests <- struct{}{}:
			t.pending = true
		}
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-t.results:
		t.pending = false
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && t.keys.interrupted() {
				return "", ErrInterrupted
			}
			return "", res.err
		}
		return res.text, nil
	}
}

// Write prints p above the prompt, translating newlines for raw mode.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.term.Write(p)
}

// Close restores the terminal to its previous mode.
func (t *Terminal) Close() error {
	return term.Restore(t.fd, t.state)
}

// keySniffer notices Ctrl-C in raw input. term.Terminal reports both
// Ctrl-C and Ctrl-D as io.EOF; this tells them apart.
type keySniffer struct {
	r   io.Reader
	hit atomic.Bool
}

func (k *keySniffer) Read(p []byte) (int, error) {
	n, err := k.r.Read(p)
	for _, b := range p[:n] {
		if b == keyCtrlC {
			k.hit.Store(true)
			break
		}
	}
	return n, err
}

func (k *keySniffer) reset() {
	k.hit.Store(false)
}

func (k *keySniffer) interrupted() bool {
	return k.hit.Load()
}
