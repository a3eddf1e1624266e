package parser

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/aretw0/calcli/internal/logging"
	"github.com/aretw0/calcli/pkg/domain"
)

// Evaluator evaluates a normalized arithmetic expression.
// Errors are opaque and suitable for direct display.
type Evaluator interface {
	Evaluate(expression string) (float64, error)
}

// Kind tells what a successful Parse did.
type Kind int

const (
	KindEvaluation Kind = iota
	KindAssignment
	KindSave
)

func (k Kind) String() string {
	switch k {
	case KindAssignment:
		return "assignment"
	case KindSave:
		return "save"
	default:
		return "evaluation"
	}
}

// Result is the outcome of one successful Parse.
type Result struct {
	Kind Kind

	// Name is the variable written by an assignment or save.
	Name string

	// Value is the computed (or saved) number.
	Value float64

	// Expression is the text handed to the Evaluator. Empty for a save.
	Expression string

	// Message is the plain-text confirmation, e.g. "= 4" or "x = 4".
	Message string
}

// Parser runs the rewrite pipeline against a Session.
type Parser struct {
	session   *domain.Session
	evaluator Evaluator
	logger    *slog.Logger
}

// Option configures the Parser.
type Option func(*Parser)

// WithSession makes the Parser operate on an existing session.
func WithSession(s *domain.Session) Option {
	return func(p *Parser) {
		p.session = s
	}
}

// WithLogger configures a logger for stage tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates a Parser with a fresh session.
func New(evaluator Evaluator, opts ...Option) *Parser {
	p := &Parser{
		evaluator: evaluator,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.session == nil {
		p.session = domain.NewSession()
	}
	return p
}

// Session returns the state the Parser reads and writes.
func (p *Parser) Session() *domain.Session {
	return p.session
}

// Parse runs input through every stage until one terminates.
func (p *Parser) Parse(input string) (Result, error) {
	line := strings.TrimSpace(input)
	for _, st := range pipeline {
		next, res, err := st.run(p, line)
		if err != nil {
			p.logger.Debug("Stage Failed", "stage", st.name, "line", line, "err", err)
			return Result{}, err
		}
		if res != nil {
			p.logger.Debug("Stage Terminated", "stage", st.name, "kind", res.Kind.String(), "value", res.Value)
			return *res, nil
		}
		if next != line {
			p.logger.Debug("Stage Rewrote", "stage", st.name, "from", line, "to", next)
		}
		line = next
	}
	// evaluateLine always terminates, so this is only reached with an empty pipeline.
	return Result{}, fmt.Errorf("pipeline did not produce a result for %q", input)
}

func (p *Parser) evaluate(expression string) (float64, error) {
	v, err := p.evaluator.Evaluate(expression)
	if err != nil {
		return 0, &domain.EvalError{Expression: expression, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &domain.EvalError{
			Expression: expression,
			Err:        fmt.Errorf("%w: %v", domain.ErrNonFiniteResult, v),
		}
	}
	return v, nil
}
