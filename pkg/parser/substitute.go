package parser

import (
	"math"
	"strings"

	"github.com/aretw0/calcli/pkg/domain"
)

// maxIntLiteral is 2^63, the first magnitude an integer literal cannot hold.
const maxIntLiteral = 1 << 63

// Substitute replaces every whole word that is ans or a known variable with
// its value. Words are maximal runs of [A-Za-z0-9_]; "x" never matches
// inside "xy", "max" or "1x". The same holds for ans: "answer" and "2ans"
// are left untouched and reach the evaluator as written. Each word is looked at once, so a substituted
// value is never rewritten again.
//
// A word ans with no previous answer fails with domain.ErrNoPreviousAnswer.
func Substitute(s *domain.Session, line string) (string, error) {
	var b strings.Builder
	b.Grow(len(line))

	for i := 0; i < len(line); {
		if !domain.IsWordByte(line[i]) {
			b.WriteByte(line[i])
			i++
			continue
		}
		j := i
		for j < len(line) && domain.IsWordByte(line[j]) {
			j++
		}
		word := line[i:j]
		i = j

		if word == ansToken {
			answer, ok := s.Answer()
			if !ok {
				return "", domain.ErrNoPreviousAnswer
			}
			b.WriteString(literal(answer))
			continue
		}
		if v, ok := s.Variable(word); ok {
			b.WriteString(literal(v))
			continue
		}
		b.WriteString(word)
	}
	return b.String(), nil
}

// literal renders v for insertion into an expression.
// Whole numbers outside the int64 range get a ".0" suffix so they are read
// as float literals. Negative values are parenthesized so "x^2" with x=-3
// stays (-3)^2.
func literal(v float64) string {
	s := domain.FormatValue(v)
	if math.Abs(v) >= maxIntLiteral && !strings.Contains(s, ".") {
		s += ".0"
	}
	if strings.HasPrefix(s, "-") {
		return "(" + s + ")"
	}
	return s
}
