// Package evaluator adapts github.com/expr-lang/expr into the calculator's
// arithmetic evaluator.
//
// Expressions support + - * / and ^ or ** for powers, parentheses, the
// constants pi and e, and the functions listed in Functions. Integer
// literals are compiled as floats, so all arithmetic is float64 and large
// products lose precision instead of wrapping around.
package evaluator

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
)

// Evaluator evaluates arithmetic expressions with a fixed set of functions and constants.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	env     map[string]any
	options []expr.Option
}

// New creates an Evaluator with the default constants and functions.
func New() *Evaluator {
	env := map[string]any{
		"pi": math.Pi,
		"e":  math.E,
	}
	options := []expr.Option{
		expr.Env(env),
		expr.DisableAllBuiltins(),
		expr.Patch(floatLiterals{}),
	}
	for _, fn := range Functions() {
		options = append(options, expr.Function(fn.Name, fn.Call))
	}
	return &Evaluator{env: env, options: options}
}

// Evaluate compiles and runs expression, returning its numeric value.
func (e *Evaluator) Evaluate(expression string) (float64, error) {
	program, err := expr.Compile(expression, e.options...)
	if err != nil {
		return 0, err
	}
	out, err := expr.Run(program, e.env)
	if err != nil {
		return 0, err
	}
	v, err := toFloat(out)
	if err != nil {
		return 0, fmt.Errorf("result is not a number: %w", err)
	}
	return v, nil
}

// floatLiterals rewrites integer literals into float literals.
type floatLiterals struct{}

func (floatLiterals) Visit(node *ast.Node) {
	if n, ok := (*node).(*ast.IntegerNode); ok {
		ast.Patch(node, &ast.FloatNode{Value: float64(n.Value)})
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("unexpected %T", v)
}
