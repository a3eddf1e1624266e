package domain

import (
	"fmt"
	"strconv"
)

// Notation selects how numbers are rendered for display.
type Notation int

const (
	NotationNormal Notation = iota
	NotationScientific
)

func (n Notation) String() string {
	switch n {
	case NotationScientific:
		return "scientific"
	default:
		return "normal"
	}
}

// ParseNotation converts "normal" or "scientific" into a Notation.
func ParseNotation(s string) (Notation, error) {
	switch s {
	case "", "normal":
		return NotationNormal, nil
	case "scientific":
		return NotationScientific, nil
	}
	return NotationNormal, fmt.Errorf("unknown notation %q (want normal or scientific)", s)
}

// DefaultDecimalPlaces is used when a format command carries no count.
const DefaultDecimalPlaces = 3

// MaxDecimalPlaces bounds the decimal count accepted by format commands and config.
const MaxDecimalPlaces = 1000

// DisplayFormat is the display format state. Both fields change together.
type DisplayFormat struct {
	Notation      Notation
	DecimalPlaces int
}

// DefaultDisplayFormat is normal notation with three decimals.
func DefaultDisplayFormat() DisplayFormat {
	return DisplayFormat{Notation: NotationNormal, DecimalPlaces: DefaultDecimalPlaces}
}

// Format renders v with exactly DecimalPlaces fractional digits,
// in fixed-point or exponential notation.
func (f DisplayFormat) Format(v float64) string {
	if f.Notation == NotationScientific {
		return strconv.FormatFloat(v, 'e', f.DecimalPlaces, 64)
	}
	return strconv.FormatFloat(v, 'f', f.DecimalPlaces, 64)
}
