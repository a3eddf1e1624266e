package domain

import "errors"

// Missing-context errors.
var (
	// ErrNoPreviousAnswer is returned when a line references ans before anything was computed.
	ErrNoPreviousAnswer = errors.New("no previous answer available for 'ans'")

	// ErrNothingToSave is returned by the =name shortcut when there is no answer to store.
	ErrNothingToSave = errors.New("no previous answer to save")
)

// Validation errors.
var (
	// ErrInvalidVariableName is returned when an assignment target is not [A-Za-z0-9_]+.
	ErrInvalidVariableName = errors.New("invalid variable name")

	// ErrInvalidDecimalCount is returned when a :d/:s suffix is not an integer
	// between 0 and MaxDecimalPlaces.
	ErrInvalidDecimalCount = errors.New("invalid decimal count")
)

// ErrUnknownCommand is returned for ':' input that matches no command.
var ErrUnknownCommand = errors.New("unknown command")

// ErrNonFiniteResult is returned when an expression evaluates to NaN or an infinity.
var ErrNonFiniteResult = errors.New("result is not a finite number")

// EvalError carries a failure reported by the expression evaluator.
// Its message is the evaluator's own, unchanged.
type EvalError struct {
	Expression string
	Err        error
}

func (e *EvalError) Error() string {
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// ErrorClass names the category of a pipeline or command error.
type ErrorClass string

const (
	ClassMissingContext ErrorClass = "missing_context"
	ClassValidation     ErrorClass = "validation"
	ClassEvaluation     ErrorClass = "evaluation"
	ClassUnknownCommand ErrorClass = "unknown_command"
	ClassOther          ErrorClass = "other"
)

// Classify maps an error to its ErrorClass.
func Classify(err error) ErrorClass {
	var evalErr *EvalError
	switch {
	case errors.Is(err, ErrNoPreviousAnswer), errors.Is(err, ErrNothingToSave):
		return ClassMissingContext
	case errors.Is(err, ErrInvalidVariableName), errors.Is(err, ErrInvalidDecimalCount):
		return ClassValidation
	case errors.Is(err, ErrUnknownCommand):
		return ClassUnknownCommand
	case errors.As(err, &evalErr):
		return ClassEvaluation
	default:
		return ClassOther
	}
}
