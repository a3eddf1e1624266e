package evaluator

import (
	"fmt"
	"math"
)

// Function is a named function exposed to expressions.
type Function struct {
	Name string
	Call func(params ...any) (any, error)
}

// Functions returns the functions available to expressions.
func Functions() []Function {
	return []Function{
		unary("sqrt", math.Sqrt),
		unary("cbrt", math.Cbrt),
		unary("exp", math.Exp),
		unary("ln", math.Log),
		unary("log", math.Log10),
		unary("log2", math.Log2),
		unary("log10", math.Log10),
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("tan", math.Tan),
		unary("asin", math.Asin),
		unary("acos", math.Acos),
		unary("atan", math.Atan),
		unary("sinh", math.Sinh),
		unary("cosh", math.Cosh),
		unary("tanh", math.Tanh),
		unary("abs", math.Abs),
		unary("floor", math.Floor),
		unary("ceil", math.Ceil),
		unary("round", math.Round),
		unary("trunc", math.Trunc),
		unary("signum", signum),
		binary("atan2", math.Atan2),
		binary("hypot", math.Hypot),
		binary("pow", math.Pow),
		binary("mod", math.Mod),
		variadic("min", math.Min),
		variadic("max", math.Max),
	}
}

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x
}

func unary(name string, fn func(float64) float64) Function {
	return Function{Name: name, Call: func(params ...any) (any, error) {
		args, err := floats(name, params, 1)
		if err != nil {
			return nil, err
		}
		return fn(args[0]), nil
	}}
}

func binary(name string, fn func(float64, float64) float64) Function {
	return Function{Name: name, Call: func(params ...any) (any, error) {
		args, err := floats(name, params, 2)
		if err != nil {
			return nil, err
		}
		return fn(args[0], args[1]), nil
	}}
}

// variadic folds fn over one or more arguments.
func variadic(name string, fn func(float64, float64) float64) Function {
	return Function{Name: name, Call: func(params ...any) (any, error) {
		if len(params) == 0 {
			return nil, fmt.Errorf("%s: expected at least 1 argument", name)
		}
		args, err := floats(name, params, len(params))
		if err != nil {
			return nil, err
		}
		acc := args[0]
		for _, x := range args[1:] {
			acc = fn(acc, x)
		}
		return acc, nil
	}}
}

func floats(name string, params []any, want int) ([]float64, error) {
	if len(params) != want {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", name, want, len(params))
	}
	out := make([]float64, len(params))
	for i, p := range params {
		v, err := toFloat(p)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
