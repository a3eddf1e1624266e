// Package commands interprets ':'-prefixed control input: quit, help and the
// display format commands :d[N] and :s[N].
package commands

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/calcli/internal/logging"
	"github.com/aretw0/calcli/pkg/domain"
)

// Prefix marks a line as a command rather than an expression.
const Prefix = ":"

// Kind is the effect of a recognized command.
type Kind int

const (
	KindQuit Kind = iota
	KindHelp
	KindFormatChanged
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindHelp:
		return "help"
	default:
		return "format"
	}
}

// Result describes what a command did.
type Result struct {
	Kind    Kind
	Message string
}

// Handler owns the display format state.
type Handler struct {
	format domain.DisplayFormat
	logger *slog.Logger
}

// Option configures the Handler.
type Option func(*Handler)

// WithFormat sets the initial display format.
func WithFormat(f domain.DisplayFormat) Option {
	return func(h *Handler) {
		h.format = f
	}
}

// WithLogger configures a logger for format changes.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a Handler with normal notation and three decimals.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		format: domain.DefaultDisplayFormat(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// IsCommand reports whether input should be routed to a Handler.
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), Prefix)
}

// Execute runs a command. On error the display format is left unchanged.
func (h *Handler) Execute(input string) (Result, error) {
	input = strings.TrimSpace(input)

	switch {
	case strings.EqualFold(input, ":q"):
		return Result{Kind: KindQuit}, nil
	case input == ":h":
		return Result{Kind: KindHelp}, nil
	case strings.HasPrefix(input, ":d"):
		return h.setFormat(domain.NotationNormal, input[2:])
	case strings.HasPrefix(input, ":s"):
		return h.setFormat(domain.NotationScientific, input[2:])
	}
	return Result{}, fmt.Errorf("%w: '%s'", domain.ErrUnknownCommand, input)
}

func (h *Handler) setFormat(n domain.Notation, suffix string) (Result, error) {
	places, err := parseDecimals(suffix)
	if err != nil {
		return Result{}, err
	}
	h.format = domain.DisplayFormat{Notation: n, DecimalPlaces: places}
	h.logger.Debug("Display Format Changed", "notation", n.String(), "decimals", places)
	return Result{
		Kind:    KindFormatChanged,
		Message: fmt.Sprintf("Set to %s notation with %d decimal places", n, places),
	}, nil
}

// parseDecimals accepts an empty suffix (the default) or [0-9]+ no larger
// than domain.MaxDecimalPlaces.
func parseDecimals(suffix string) (int, error) {
	if suffix == "" {
		return domain.DefaultDecimalPlaces, nil
	}
	n, err := strconv.ParseUint(suffix, 10, 16)
	if err != nil || n > domain.MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: '%s'", domain.ErrInvalidDecimalCount, suffix)
	}
	return int(n), nil
}

// Format returns the current display format.
func (h *Handler) Format() domain.DisplayFormat {
	return h.format
}

// FormatNumber renders v with the current display format.
func (h *Handler) FormatNumber(v float64) string {
	return h.format.Format(v)
}
