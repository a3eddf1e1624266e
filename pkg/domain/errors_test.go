package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorClass
	}{
		{ErrNoPreviousAnswer, ClassMissingContext},
		{ErrNothingToSave, ClassMissingContext},
		{fmt.Errorf("%w: '1x y'", ErrInvalidVariableName), ClassValidation},
		{fmt.Errorf("%w: 'x'", ErrInvalidDecimalCount), ClassValidation},
		{fmt.Errorf("%w: ':z'", ErrUnknownCommand), ClassUnknownCommand},
		{&EvalError{Expression: "1+", Err: errors.New("unexpected end")}, ClassEvaluation},
		{errors.New("boom"), ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestEvalError_MessageUnchanged(t *testing.T) {
	inner := errors.New("unknown name foo (1:1)")
	err := &EvalError{Expression: "foo", Err: inner}

	assert.Equal(t, "unknown name foo (1:1)", err.Error())
	assert.ErrorIs(t, err, inner)
}
