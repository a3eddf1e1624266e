package parser_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/calcli/pkg/domain"
	"github.com/aretw0/calcli/pkg/evaluator"
	"github.com/aretw0/calcli/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_WithExprEvaluator(t *testing.T) {
	p := parser.New(evaluator.New())

	steps := []struct {
		in      string
		message string
	}{
		{"1 + 2", "= 3"},
		{"+4", "= 7"},
		{"*2", "= 14"},
		{"=total", "saved total = 14"},
		{"x = 5", "x = 5"},
		{"max(x;1)", "= 5"},
		{"total / x", "= 2.8"},
		{"y = x^2 + ans", "y = 27.8"},
		{"1,5 * 2", "= 3"},
		{"x = x + 1", "x = 6"},
		{"-x", "= 0"},
	}

	for _, step := range steps {
		res, err := p.Parse(step.in)
		require.NoError(t, err, step.in)
		assert.Equal(t, step.message, res.Message, step.in)
	}
}

func TestPipeline_ContinuationAddsToAnswer(t *testing.T) {
	for _, tc := range []struct{ a, b float64 }{{1, 2}, {-4, 1.5}, {0, 0}, {2.5, -1}} {
		t.Run(fmt.Sprintf("%v+%v", tc.a, tc.b), func(t *testing.T) {
			s := domain.NewSession()
			s.SetAnswer(tc.a)
			p := parser.New(evaluator.New(), parser.WithSession(s))

			res, err := p.Parse("+" + domain.FormatValue(tc.b))
			require.NoError(t, err)
			assert.InDelta(t, tc.a+tc.b, res.Value, 1e-12)

			ans, _ := s.Answer()
			assert.Equal(t, res.Value, ans)
		})
	}
}

func TestPipeline_WordBoundarySubstitution(t *testing.T) {
	p := parser.New(evaluator.New())

	_, err := p.Parse("x = 5")
	require.NoError(t, err)

	res, err := p.Parse("max(x,1)")
	require.NoError(t, err)
	// "," is a decimal separator here, so the evaluator sees max(5.1).
	assert.Equal(t, "max(5.1)", res.Expression)
	assert.Equal(t, 5.1, res.Value)

	res, err = p.Parse("max(x;1)")
	require.NoError(t, err)
	assert.Equal(t, "max(5,1)", res.Expression)
	assert.Equal(t, 5.0, res.Value)
}

func TestPipeline_EvaluatorErrorsSurface(t *testing.T) {
	p := parser.New(evaluator.New())

	_, err := p.Parse("2 * unknown")
	require.Error(t, err)
	assert.Equal(t, domain.ClassEvaluation, domain.Classify(err))

	_, ok := p.Session().Answer()
	assert.False(t, ok)
}

func TestPipeline_LargeIntegersStayExact(t *testing.T) {
	p := parser.New(evaluator.New())

	res, err := p.Parse("10000000000*10000000000")
	require.NoError(t, err)
	assert.Equal(t, 1e20, res.Value)

	res, err = p.Parse("ans+1")
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000000.0+1", res.Expression)
	assert.Equal(t, 1e20, res.Value)

	_, err = p.Parse("=big")
	require.NoError(t, err)
	res, err = p.Parse("big/1e10")
	require.NoError(t, err)
	assert.Equal(t, 1e10, res.Value)

	res, err = p.Parse("9223372036854775807+1")
	require.NoError(t, err)
	assert.Equal(t, 9223372036854775808.0, res.Value)
	assert.Positive(t, res.Value)
}

func TestPipeline_NonFiniteResultsAreRejected(t *testing.T) {
	p := parser.New(evaluator.New())

	_, err := p.Parse("2")
	require.NoError(t, err)

	for _, in := range []string{"sqrt(-1)", "1/0", "-1/0", "x = ln(0)"} {
		_, err := p.Parse(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, domain.ErrNonFiniteResult, in)
		assert.Equal(t, domain.ClassEvaluation, domain.Classify(err), in)
	}

	ans, ok := p.Session().Answer()
	require.True(t, ok)
	assert.Equal(t, 2.0, ans, "a rejected result must not replace the answer")
	assert.Empty(t, p.Session().Variables())

	res, err := p.Parse("ans+1")
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Value)
}
