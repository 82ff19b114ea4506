package mpf

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"math/bits"
	"strings"
)

var _ fmt.Scanner = (*Float)(nil) // *Float must implement fmt.Scanner

// SetString sets z to the value of s and returns z and a boolean
// indicating success. s must be a floating-point number of the same
// format as accepted by Parse, with base argument 0. The entire string
// (not just a prefix) must be valid for success. If the operation
// failed, the value of z is undefined but the returned value is nil.
func (z *Float) SetString(s string) (*Float, bool) {
	if f, _, err := z.Parse(s, 0); err == nil {
		return f, true
	}
	return nil, false
}

// scan is like Parse but instead of a string it reads the longest
// possible prefix of a valid floating-point number from r.
// It does not handle ±Inf and NaN spellings.
func (z *Float) scan(r io.ByteScanner, base int) (f *Float, b int, err error) {
	prec := z.prec
	if prec == 0 {
		prec = DefaultPrec
	}

	// sign
	z.neg, err = scanSign(r)
	if err != nil {
		return
	}

	// mantissa
	var d big.Int
	var fcount int // fractional digit count
	b, _, fcount, err = scanMantissa(r, base, &d)
	if err != nil {
		return
	}

	// exponent; 'e'/'E' and 'p'/'P' markers are recognized only in
	// bases where they cannot be digits
	var exp int64
	var ebase int
	exp, ebase, err = scanExponent(r, b <= 14, b <= 25, base == 0)
	if err != nil {
		return
	}

	z.prec = prec

	// special-case 0
	if d.Sign() == 0 {
		z.acc = Exact
		z.form = zero
		f = z
		return
	}

	// The mantissa digits give the value d·b**-fcount so far. A marker
	// exponent in ebase 10 (which includes '@') scales by the mantissa
	// base b; a 'p' exponent (ebase 2) scales by 2.
	var exp2, expB int64
	if ebase == 2 {
		exp2 = exp
	} else {
		expB = exp
	}
	expB -= int64(fcount)

	// avoid astronomic intermediate values for exponents far outside
	// the representable range; borderline cases fall through to the
	// exact computation and are clamped during rounding
	const slack = 100
	mag := float64(d.BitLen()) + float64(expB)*math.Log2(float64(b)) + float64(exp2)
	switch {
	case mag > MaxExp+slack:
		z.acc = makeAcc(!z.neg)
		z.form = inf
		f = z
		return
	case mag < MinExp-slack:
		z.acc = makeAcc(z.neg)
		z.form = zero
		f = z
		return
	}

	if b&(b-1) == 0 {
		// power-of-two bases scale exactly in binary
		k := int64(bits.TrailingZeros(uint(b)))
		z.setIntExp(z.neg, &d, expB*k+exp2, false)
	} else if expB >= 0 {
		m := new(big.Int).Exp(big.NewInt(int64(b)), big.NewInt(expB), nil)
		z.setIntExp(z.neg, m.Mul(&d, m), exp2, false)
	} else {
		q := new(big.Int).Exp(big.NewInt(int64(b)), big.NewInt(-expB), nil)
		z.quoIntExp(z.neg, &d, q, exp2)
	}
	f = z
	return
}

// Parse parses s which must contain a text representation of a
// floating-point number with a mantissa in the given conversion base
// (the exponent is always a decimal number), or a string representing
// an infinite or NaN value. For base 0, an underscore character "_" may
// appear between successive digits; such underscores do not change the
// value of the number, or the number of mantissa digits.
//
// It sets z to the (possibly rounded) value of the corresponding
// floating-point value, and returns z, the actual base b, and an error
// err, if any. The entire string (not just a prefix) must be valid for
// success. If z's precision is 0, it is changed to DefaultPrec before
// rounding takes effect. The number must be of the form:
//
//	number    = [ sign ] ( mantissa | "inf" | "infinity" | "nan" ) .
//	sign      = "+" | "-" .
//	mantissa  = [ prefix ] digits [ "." [ digits ] ] [ exponent ] .
//	prefix    = "0" [ "b" | "B" | "o" | "O" | "x" | "X" ] .
//	exponent  = ( "e" | "E" | "p" | "P" | "@" ) [ sign ] decimals .
//
// The base argument must be 0, or a value between 2 and MaxBase.
// For base 0, the mantissa prefix determines the actual base: a prefix
// of "0b" or "0B" selects base 2, "0o" or "0O" selects base 8, and
// "0x" or "0X" selects base 16. Otherwise, the actual base is 10 and
// no prefix is accepted.
//
// Digit values above 9 are denoted by the letters a-z for values 10
// through 35; for bases above 36, A-Z denote the values 36 through 61.
// In bases up to 36, upper-case letters are accepted as their
// lower-case equivalents. The "e"/"E" and "@" exponent markers scale
// the mantissa by powers of the mantissa base; "p"/"P" scales by powers
// of two. An "e"/"E" marker is only recognized in bases up to 14, and
// "p"/"P" in bases up to 25, where the letters cannot be mantissa
// digits; "@" works in every base. Exponent digits are always decimal.
//
// The spellings "inf" and "infinity" (producing ±Inf) and "nan" are
// accepted in any capitalization when base is 0 or 10.
//
// Errors belong to the ErrInvalidLiteral class, or ErrUnsupportedBase
// for an invalid base argument.
func (z *Float) Parse(s string, base int) (f *Float, b int, err error) {
	if base == 0 || base == 10 {
		t := s
		neg := false
		if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
			neg = t[0] == '-'
			t = t[1:]
		}
		switch strings.ToLower(t) {
		case "inf", "infinity":
			if z.prec == 0 {
				z.prec = DefaultPrec
			}
			return z.SetInf(neg), 10, nil
		case "nan":
			if z.prec == 0 {
				z.prec = DefaultPrec
			}
			return z.SetNaN(), 10, nil
		}
	}

	r := strings.NewReader(s)
	if f, b, err = z.scan(r, base); err != nil {
		if !ErrUnsupportedBase.Has(err) {
			err = ErrInvalidLiteral.Wrap(fmt.Errorf("%q: %w", s, err))
		}
		return nil, 0, err
	}

	// entire string must have been consumed
	if ch, err2 := r.ReadByte(); err2 == nil {
		return nil, 0, ErrInvalidLiteral.New("%q: unexpected character %q", s, ch)
	} else if err2 != io.EOF {
		return nil, 0, ErrInvalidLiteral.Wrap(err2)
	}

	return
}

// ParseFloat is like f.Parse(s, base) with f set to the given precision
// and rounding mode.
func ParseFloat(s string, base int, prec uint, mode RoundingMode) (f *Float, b int, err error) {
	return new(Float).SetPrec(prec).SetMode(mode).Parse(s, base)
}

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number. It accepts any of the formats whose verbs are
// supported by fmt.Scan for floating point values. Scan doesn't handle
// ±Inf or NaN.
func (z *Float) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	_, _, err := z.scan(byteReader{s}, 0)
	return err
}

// digitVal returns the value of digit ch in the given base, or -1 if ch
// is not a digit. In bases up to 36, upper-case letters denote the same
// values as their lower-case equivalents; in larger bases 'a' denotes
// 10 and 'A' denotes 36.
func digitVal(ch byte, b int) int {
	var d int
	switch {
	case '0' <= ch && ch <= '9':
		d = int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		d = int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		if b <= maxBaseSmall {
			d = int(ch-'A') + 10
		} else {
			d = int(ch-'A') + maxBaseSmall
		}
	default:
		return -1
	}
	if d >= b {
		return -1
	}
	return d
}

// maxPow returns (b**n, n) such that b**n is the largest power of b
// that fits in a Word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for max := _M / b; p <= max; {
		p *= b
		n++
	}
	return
}

// scanMantissa reads a mantissa in the given base from r into d and
// returns the effective base, the total digit count, and the number of
// fractional digits. A base of 0 selects base detection with the
// prefixes 0b, 0o and 0x and permits '_' separators between successive
// digits.
func scanMantissa(r io.ByteScanner, base int, d *big.Int) (b, dcount, fcount int, err error) {
	if base != 0 && (base < 2 || base > MaxBase) {
		return 0, 0, 0, ErrUnsupportedBase.New("base %d", base)
	}

	baseOk := base != 0
	b = base
	if !baseOk {
		b = 10
	}

	// digits are batched into a Word before they are pushed into d
	bb, bn := maxPow(Word(b))
	bigB := new(big.Int).SetUint64(uint64(bb))
	var tmp big.Int
	var chunk Word
	var pending int

	// prev encodes the previously seen char: one of '0' (a digit),
	// '_' (a separator), or '.' (anything else). A valid separator
	// may only occur between digits.
	prev := '.'
	invalSep := false
	hasPoint := false

	var ch byte
	ch, err = r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return
	}

	if !baseOk && ch == '0' {
		// a leading 0 is a digit unless it starts a base prefix
		dcount = 1
		prev = '0'
		ch, err = r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = nil // the number 0
			}
			return
		}
		switch ch {
		case 'b', 'B':
			b = 2
		case 'o', 'O':
			b = 8
		case 'x', 'X':
			b = 16
		}
		if b != 10 {
			dcount = 0
			prev = '0' // a separator may follow the base prefix
			bb, bn = maxPow(Word(b))
			bigB.SetUint64(uint64(bb))
			ch, err = r.ReadByte()
			if err != nil {
				if err == io.EOF {
					err = errNoDigits // prefix without digits
				}
				return
			}
		}
	}

	for err == nil {
		if v := digitVal(ch, b); v >= 0 {
			dcount++
			if hasPoint {
				fcount++
			}
			prev = '0'
			chunk = chunk*Word(b) + Word(v)
			pending++
			if pending == bn {
				d.Mul(d, bigB)
				d.Add(d, tmp.SetUint64(uint64(chunk)))
				chunk, pending = 0, 0
			}
		} else if ch == '.' && !hasPoint {
			if prev == '_' {
				invalSep = true
			}
			hasPoint = true
			prev = '.'
		} else if ch == '_' && !baseOk {
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		} else {
			_ = r.UnreadByte() // ch does not belong to mantissa anymore
			break
		}
		ch, err = r.ReadByte()
	}
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return
	}

	// flush the partial batch
	if pending > 0 {
		p := Word(1)
		for i := 0; i < pending; i++ {
			p *= Word(b)
		}
		d.Mul(d, tmp.SetUint64(uint64(p)))
		d.Add(d, tmp.SetUint64(uint64(chunk)))
	}

	if dcount == 0 {
		err = errNoDigits
		return
	}
	if invalSep || prev == '_' {
		err = errInvalSep
		return
	}
	return
}
