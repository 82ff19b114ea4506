package mpf

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error classes returned by conversion, configuration, codec and
// rational-approximation operations. Arithmetic on special values never
// produces an error: NaN and infinities propagate through operations
// instead. Use errs.Class.Has (or errors.Is) to test an error against a
// class.
var (
	// ErrInvalidLiteral reports malformed textual input to Parse and
	// friends.
	ErrInvalidLiteral = errs.Class("mpf: invalid literal")

	// ErrUnsupportedBase reports a conversion base outside [2, MaxBase]
	// (and different from 0 where base detection is allowed).
	ErrUnsupportedBase = errs.Class("mpf: unsupported base")

	// ErrRange reports an out-of-range argument, such as a negative
	// digit count or invalid exponent bounds.
	ErrRange = errs.Class("mpf: range error")

	// ErrInvalidConfiguration reports a degenerate precision or rounding
	// mode.
	ErrInvalidConfiguration = errs.Class("mpf: invalid configuration")

	// ErrCorrupt reports a malformed binary encoding.
	ErrCorrupt = errs.Class("mpf: corrupt encoding")

	// ErrDomain reports an operation whose result is mathematically
	// undefined for the given operands, such as the rational
	// approximation of a NaN.
	ErrDomain = errs.Class("mpf: domain error")
)

// scan errors
var (
	errNoDigits = errors.New("number has no digits")
	errInvalSep = errors.New("'_' must separate successive digits")
)
