package context

import "strings"

// Condition is a bit set of exceptional conditions raised by operations
// on a Context.
type Condition uint8

// Conditions that operations can raise.
const (
	// Invalid is raised when an operation on non-NaN operands produces
	// a NaN, such as 0/0 or Inf - Inf.
	Invalid Condition = 1 << iota
	// Overflow is raised when a result is too large for the context's
	// exponent range; the result is set to an infinity.
	Overflow
	// Underflow is raised when a nonzero result is too small for the
	// context's exponent range; the result is set to a zero.
	Underflow
	// DivisionByZero is raised when a finite nonzero value is divided
	// by a zero.
	DivisionByZero
	// Inexact is raised when a result had to be rounded.
	Inexact
)

// Any reports whether any condition is set.
func (c Condition) Any() bool { return c != 0 }

func (c Condition) String() string {
	if c == 0 {
		return ""
	}
	var names []string
	for d := Condition(1); d != 0 && d <= c; d <<= 1 {
		if c&d == 0 {
			continue
		}
		switch d {
		case Invalid:
			names = append(names, "invalid operation")
		case Overflow:
			names = append(names, "overflow")
		case Underflow:
			names = append(names, "underflow")
		case DivisionByZero:
			names = append(names, "division by zero")
		case Inexact:
			names = append(names, "inexact")
		}
	}
	return strings.Join(names, ", ")
}
