package domain

import (
	"sort"
	"strconv"
)

// Session holds the mutable state of one calculator session.
// It is owned by a single goroutine and is not safe for concurrent use.
type Session struct {
	answer    float64
	hasAnswer bool
	variables map[string]float64
}

// NewSession creates an empty session with no previous answer.
func NewSession() *Session {
	return &Session{
		variables: make(map[string]float64),
	}
}

// Answer returns the previous answer and whether one exists.
func (s *Session) Answer() (float64, bool) {
	return s.answer, s.hasAnswer
}

// SetAnswer records v as the previous answer.
func (s *Session) SetAnswer(v float64) {
	s.answer = v
	s.hasAnswer = true
}

// Variable returns the value stored under name.
func (s *Session) Variable(name string) (float64, bool) {
	v, ok := s.variables[name]
	return v, ok
}

// SetVariable stores v under name, overwriting any previous value.
func (s *Session) SetVariable(name string, v float64) {
	s.variables[name] = v
}

// Variables returns the defined variable names in sorted order.
func (s *Session) Variables() []string {
	names := make([]string, 0, len(s.variables))
	for name := range s.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatValue renders v as the plain decimal string used for substitution and messages.
// It never uses exponent notation, so the result is always a valid numeric literal
// for finite values.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IsVariableName reports whether name matches [A-Za-z0-9_]+.
func IsVariableName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !IsWordByte(name[i]) {
			return false
		}
	}
	return true
}

// IsWordByte reports whether c belongs to [A-Za-z0-9_].
func IsWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
