package parser

import (
	"fmt"
	"strings"

	"github.com/aretw0/calcli/pkg/domain"
)

// ansToken is the word that refers to the previous answer.
const ansToken = "ans"

// stage returns either the rewritten line, a terminal Result, or an error.
type stage struct {
	name string
	run  func(p *Parser, line string) (string, *Result, error)
}

var pipeline = []stage{
	{"continuation", continueOperator},
	{"save", saveAnswer},
	{"locale", func(_ *Parser, line string) (string, *Result, error) {
		return NormalizeLocale(line), nil, nil
	}},
	{"assignment", assign},
	{"substitution", func(p *Parser, line string) (string, *Result, error) {
		out, err := Substitute(p.session, line)
		return out, nil, err
	}},
	{"evaluation", evaluateLine},
}

func continueOperator(p *Parser, line string) (string, *Result, error) {
	if line == "" || !strings.ContainsRune("+-*/", rune(line[0])) {
		return line, nil, nil
	}
	if _, ok := p.session.Answer(); !ok {
		return line, nil, nil
	}
	return ansToken + line, nil, nil
}

func saveAnswer(p *Parser, line string) (string, *Result, error) {
	if !strings.HasPrefix(line, "=") {
		return line, nil, nil
	}
	answer, ok := p.session.Answer()
	if !ok {
		return "", nil, domain.ErrNothingToSave
	}
	name := strings.TrimSpace(line[1:])
	if err := validateName(name); err != nil {
		return "", nil, err
	}
	p.session.SetVariable(name, answer)
	return "", &Result{
		Kind:    KindSave,
		Name:    name,
		Value:   answer,
		Message: fmt.Sprintf("saved %s = %s", name, domain.FormatValue(answer)),
	}, nil
}

// NormalizeLocale turns decimal commas into points and then semicolons into
// argument commas. Text without commas or semicolons is returned unchanged.
func NormalizeLocale(line string) string {
	line = strings.ReplaceAll(line, ",", ".")
	return strings.ReplaceAll(line, ";", ",")
}

// assign handles "name = expression". The name side is split off before
// substitution so that re-assigning an existing variable targets the name,
// not its current value.
func assign(p *Parser, line string) (string, *Result, error) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return line, nil, nil
	}
	name := strings.TrimSpace(line[:idx])
	if err := validateName(name); err != nil {
		return "", nil, err
	}
	expression, err := Substitute(p.session, strings.TrimSpace(line[idx+1:]))
	if err != nil {
		return "", nil, err
	}
	v, err := p.evaluate(expression)
	if err != nil {
		return "", nil, err
	}
	p.session.SetVariable(name, v)
	p.session.SetAnswer(v)
	return "", &Result{
		Kind:       KindAssignment,
		Name:       name,
		Value:      v,
		Expression: expression,
		Message:    fmt.Sprintf("%s = %s", name, domain.FormatValue(v)),
	}, nil
}

func evaluateLine(p *Parser, line string) (string, *Result, error) {
	v, err := p.evaluate(line)
	if err != nil {
		return "", nil, err
	}
	p.session.SetAnswer(v)
	return "", &Result{
		Kind:       KindEvaluation,
		Value:      v,
		Expression: line,
		Message:    "= " + domain.FormatValue(v),
	}, nil
}

// validateName rejects names outside [A-Za-z0-9_]+ and the reserved ans,
// which would always be shadowed by the previous answer.
func validateName(name string) error {
	if !domain.IsVariableName(name) || name == ansToken {
		return fmt.Errorf("%w: '%s'", domain.ErrInvalidVariableName, name)
	}
	return nil
}
