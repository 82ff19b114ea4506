package mpf

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var _ fmt.Formatter = (*Float)(nil) // *Float must implement fmt.Formatter

// Text converts the floating-point number x to a string according to
// the given format and precision prec. The format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent, at least two exponent digits
//	'E'	-d.ddddE±dd, decimal exponent, at least two exponent digits
//	'f'	-ddddd.dddd, no exponent
//	'g'	like 'e' for large exponents, like 'f' otherwise
//	'G'	like 'E' for large exponents, like 'f' otherwise
//	'b'	-ddddddp±dd, binary exponent, decimal integer mantissa
//	'p'	-0x.dddp±dd, binary exponent, hexadecimal mantissa
//
// For the binary exponent formats, the mantissa is printed in
// normalized form. The precision prec controls the number of digits
// (excluding the exponent) printed by the 'e', 'E', 'f', 'g', and 'G'
// formats. For 'e', 'E', and 'f' it is the number of digits after the
// radix point. For 'g' and 'G' it is the total number of digits. A
// negative precision selects the smallest number of digits necessary to
// represent the value x uniquely at x's precision. The prec value is
// ignored for the 'b' and 'p' formats.
//
// Digit conversion is exact: digits are correctly rounded to nearest
// with ties to even.
func (x *Float) Text(format byte, prec int) string {
	capacity := 10
	if prec > 0 {
		capacity += prec
	}
	return string(x.Append(make([]byte, 0, capacity), format, prec))
}

// String formats x like x.Text('g', -1), i.e. with the smallest digit
// string that identifies the value uniquely. NaN renders as "NaN",
// infinities as "+Inf" and "-Inf", zeros as "0" and "-0".
func (x *Float) String() string {
	return x.Text('g', -1)
}

// Append appends to buf the string form of the floating-point number x,
// as generated by x.Text, and returns the extended buffer.
func (x *Float) Append(buf []byte, format byte, prec int) []byte {
	if debugFloat {
		x.validate()
	}

	// sign
	if x.neg {
		buf = append(buf, '-')
	}

	switch x.form {
	case inf:
		if !x.neg {
			buf = append(buf, '+')
		}
		return append(buf, "Inf"...)
	case nan:
		return append(buf, "NaN"...)
	}

	switch format {
	case 'b':
		return x.fmtB(buf)
	case 'p':
		return x.fmtP(buf)
	case 'e', 'E', 'f', 'g', 'G':
		// handled below
	default:
		if x.neg {
			buf = buf[:len(buf)-1] // sign was added prematurely
		}
		return append(append(append(append(append(buf,
			'%', '!'), format), "(*mpf.Float="...), x.String()...), ')')
	}

	var digs string
	var dexp int
	if x.form == finite {
		switch {
		case format == 'f' && prec >= 0:
			digs, dexp = x.fracDigits(10, prec)
		case prec < 0:
			digs, dexp = x.shortestDigits(10)
		default:
			n := prec + 1 // 'e', 'E'
			if format == 'g' || format == 'G' {
				n = max(prec, 1)
			}
			digs, dexp = x.decDigits(10, n)
		}
	}

	switch format {
	case 'e', 'E':
		p := prec
		if p < 0 {
			p = max(len(digs)-1, 0)
		}
		return fmtE(buf, format, p, digs, dexp)
	case 'f':
		p := prec
		if p < 0 {
			p = max(len(digs)-dexp, 0)
		}
		return fmtF(buf, p, digs, dexp)
	}

	// format == 'g' || format == 'G'
	eprec := prec
	if eprec < 0 {
		eprec = 6 // default precision for the exponent choice below
	}
	digs = strings.TrimRight(digs, "0")
	if x.form == zero {
		return append(buf, '0')
	}
	if exp10 := dexp - 1; exp10 < -4 || exp10 >= eprec {
		return fmtE(buf, format+'e'-'g', max(len(digs)-1, 0), digs, dexp)
	}
	return fmtF(buf, max(len(digs)-dexp, 0), digs, dexp)
}

// Digits returns the significant digits of x in the given base, the
// position of the radix point relative to the start of the digits, and
// the precision of x in bits, such that x = ±0.digits · base**point.
// For n > 0 the digit string has exactly n digits, correctly rounded;
// n == 0 requests the shortest digit string that parses back to exactly
// x at x's precision. The digit string carries a leading "-" for
// negative x; the point position does not count the sign.
//
// For a NaN, an infinity, or a zero the digit string is the String
// rendering and the point is 0.
//
// Digits panics if base is outside [2, MaxBase] or n is negative; the
// panic values are errors of the ErrUnsupportedBase and ErrRange
// classes.
func (x *Float) Digits(base, n int) (digs string, point int, prec uint) {
	if base < 2 || base > MaxBase {
		panic(ErrUnsupportedBase.New("base %d", base))
	}
	if n < 0 {
		panic(ErrRange.New("digit count %d", n))
	}
	prec = uint(x.prec)
	if x.form != finite {
		return x.String(), 0, prec
	}
	if n == 0 {
		digs, point = x.shortestDigits(base)
	} else {
		digs, point = x.decDigits(base, n)
	}
	if x.neg {
		digs = "-" + digs
	}
	return digs, point, prec
}

// Format implements fmt.Formatter. It accepts all the regular formats
// for floating-point numbers ('b', 'e', 'E', 'f', 'F', 'g', 'G') as
// well as 'p' and 'v'. Width, precision, and the '+', ' ', '-', and '0'
// flags follow the fmt package conventions.
func (x *Float) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6 // default precision for the hardware floats in fmt
	}

	switch format {
	case 'e', 'E', 'f', 'b', 'p':
		// nothing to do
	case 'F':
		// (*Float).Text doesn't support 'F'; handle like 'f'
		format = 'f'
	case 'v':
		// handle like 'g'
		format = 'g'
		fallthrough
	case 'g', 'G':
		if !hasPrec {
			prec = -1 // default precision for 'g', 'G'
		}
	default:
		fmt.Fprintf(s, "%%!%c(*mpf.Float=%s)", format, x.String())
		return
	}
	var buf []byte
	buf = x.Append(buf, byte(format), prec)

	// insert "+" or " " sign if needed
	if len(buf) > 0 && buf[0] != '-' && buf[0] != '+' && (s.Flag('+') || s.Flag(' ')) {
		sign := byte('+')
		if s.Flag(' ') && !s.Flag('+') {
			sign = ' '
		}
		buf = append(buf, 0)
		copy(buf[1:], buf)
		buf[0] = sign
	}

	var left, right int
	if width, hasWidth := s.Width(); hasWidth && width > len(buf) {
		switch {
		case s.Flag('-'):
			right = width - len(buf)
		case s.Flag('0') && x.form == finite:
			// pad with zeros after any sign
			n := 0
			if len(buf) > 0 && (buf[0] == '-' || buf[0] == '+' || buf[0] == ' ') {
				n = 1
			}
			s.Write(buf[:n])
			for i := len(buf); i < width; i++ {
				s.Write([]byte{'0'})
			}
			s.Write(buf[n:])
			return
		default:
			left = width - len(buf)
		}
	}
	for ; left > 0; left-- {
		s.Write([]byte{' '})
	}
	s.Write(buf)
	for ; right > 0; right-- {
		s.Write([]byte{' '})
	}
}

// roundQuot rounds the truncated quotient q with remainder r of a
// division by den to the nearest integer, ties to even.
func roundQuot(q, r, den *big.Int) {
	r.Lsh(r, 1)
	if c := r.Cmp(den); c > 0 || c == 0 && q.Bit(0) == 1 {
		q.Add(q, natOne)
	}
}

// decDigits returns the n most significant base-b digits of |x|,
// correctly rounded, and the radix point position dexp such that
// |x| = 0.digits · b**dexp. x must be finite and nonzero, and n > 0.
func (x *Float) decDigits(b, n int) (digs string, dexp int) {
	// estimate the digit count before the point; the loop below
	// corrects the estimate and absorbs rounding carries
	logB := math.Log2(float64(b))
	dexp = int(math.Floor(float64(int64(x.exp)-1)/logB)) + 1
	bigb := big.NewInt(int64(b))
	e := int64(x.exp) - int64(len(x.mant))*_W
	for {
		// I = round(|x| · b**(n-dexp)) computed exactly
		k := int64(n - dexp)
		var num, den big.Int
		x.mant.toInt(&num)
		den.SetInt64(1)
		if k >= 0 {
			num.Mul(&num, new(big.Int).Exp(bigb, big.NewInt(k), nil))
		} else {
			den.Exp(bigb, big.NewInt(-k), nil)
		}
		if e >= 0 {
			num.Lsh(&num, uint(e))
		} else {
			den.Lsh(&den, uint(-e))
		}
		var r big.Int
		num.QuoRem(&num, &den, &r)
		roundQuot(&num, &r, &den)
		if num.Sign() == 0 {
			dexp--
			continue
		}
		digs = num.Text(b)
		if d := len(digs); d != n {
			dexp += d - n
			continue
		}
		return digs, dexp
	}
}

// fracDigits returns the digits of |x| rounded at prec digits after the
// radix point, for fixed-point formatting. The digit string is empty if
// |x| rounds to zero at that position.
func (x *Float) fracDigits(b, prec int) (string, int) {
	var num, den big.Int
	x.mant.toInt(&num)
	den.SetInt64(1)
	num.Mul(&num, new(big.Int).Exp(big.NewInt(int64(b)), big.NewInt(int64(prec)), nil))
	if e := int64(x.exp) - int64(len(x.mant))*_W; e >= 0 {
		num.Lsh(&num, uint(e))
	} else {
		den.Lsh(&den, uint(-e))
	}
	var r big.Int
	num.QuoRem(&num, &den, &r)
	roundQuot(&num, &r, &den)
	if num.Sign() == 0 {
		return "", 0
	}
	s := num.Text(b)
	return s, len(s) - prec
}

// roundTrips reports whether the n-digit base-b representation of x
// parses back to exactly x at x's precision.
func (x *Float) roundTrips(b, n int) bool {
	digs, dexp := x.decDigits(b, n)
	var i big.Int
	i.SetString(digs, b)
	var v Float
	v.prec = x.prec
	k := int64(dexp - n)
	bigb := big.NewInt(int64(b))
	if k >= 0 {
		m := new(big.Int).Exp(bigb, big.NewInt(k), nil)
		v.setIntExp(false, m.Mul(&i, m), 0, false)
	} else {
		q := new(big.Int).Exp(bigb, big.NewInt(-k), nil)
		v.quoIntExp(false, &i, q, 0)
	}
	return v.form == finite && v.ucmp(x) == 0
}

// shortestDigits returns the smallest digit string (and radix point)
// that parses back to exactly x at its precision. x must be finite and
// nonzero.
func (x *Float) shortestDigits(b int) (digs string, dexp int) {
	// this many digits always identify a value of x's precision
	limit := int(math.Ceil(float64(x.prec)*math.Ln2/math.Log(float64(b)))) + 1
	if limit < 1 {
		limit = 1
	}
	lo, hi := 1, limit
	for lo < hi {
		mid := (lo + hi) / 2
		if x.roundTrips(b, mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	// the parse-back predicate can have isolated early hits; make sure
	// the count found is minimal
	for lo > 1 && x.roundTrips(b, lo-1) {
		lo--
	}
	return x.decDigits(b, lo)
}

// fmtE formats like strconv.FormatFloat's 'e' format: d.ddde±dd with
// prec digits after the radix point.
func fmtE(buf []byte, format byte, prec int, digs string, dexp int) []byte {
	ch := byte('0')
	if len(digs) > 0 {
		ch = digs[0]
	}
	buf = append(buf, ch)
	if prec > 0 {
		buf = append(buf, '.')
		i := 1
		m := min(len(digs), prec+1)
		if i < m {
			buf = append(buf, digs[i:m]...)
		}
		for ; m <= prec; m++ {
			buf = append(buf, '0')
		}
	}
	buf = append(buf, format)
	var e int64
	if len(digs) > 0 {
		e = int64(dexp) - 1
	}
	if e < 0 {
		buf = append(buf, '-')
		e = -e
	} else {
		buf = append(buf, '+')
	}
	if e < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, e, 10)
}

// fmtF formats like strconv.FormatFloat's 'f' format: ddddd.dddd with
// prec digits after the radix point.
func fmtF(buf []byte, prec int, digs string, dexp int) []byte {
	if dexp > 0 {
		m := min(len(digs), dexp)
		buf = append(buf, digs[:m]...)
		for ; m < dexp; m++ {
			buf = append(buf, '0')
		}
	} else {
		buf = append(buf, '0')
	}
	if prec > 0 {
		buf = append(buf, '.')
		for i := 0; i < prec; i++ {
			ch := byte('0')
			if j := dexp + i; 0 <= j && j < len(digs) {
				ch = digs[j]
			}
			buf = append(buf, ch)
		}
	}
	return buf
}

// fmtB appends the string of x in the format mantissa p±exponent with a
// decimal integer mantissa carrying exactly x.prec bits and a binary
// exponent.
func (x *Float) fmtB(buf []byte) []byte {
	if x.form == zero {
		return append(buf, '0')
	}
	// x.form == finite
	var m big.Int
	x.mant.toInt(&m)
	w := uint32(len(x.mant)) * _W
	switch {
	case w < x.prec:
		m.Lsh(&m, uint(x.prec-w))
	case w > x.prec:
		m.Rsh(&m, uint(w-x.prec)) // bits below the precision are zero
	}
	buf = m.Append(buf, 10)
	buf = append(buf, 'p')
	e := int64(x.exp) - int64(x.prec)
	if e >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, e, 10)
}

// fmtP appends the string of x in the format 0x.mantissa p±exponent
// with a hexadecimal mantissa (trailing zero nibbles stripped) and a
// binary exponent.
func (x *Float) fmtP(buf []byte) []byte {
	if x.form == zero {
		return append(buf, '0')
	}
	// x.form == finite
	var m big.Int
	x.mant.toInt(&m)
	w := uint(len(x.mant)) * _W
	n4 := (w - x.mant.trailingZeroBits() + 3) / 4 // hex digit count
	m.Rsh(&m, w-4*n4)
	buf = append(buf, "0x."...)
	buf = append(buf, m.Text(16)...)
	buf = append(buf, 'p')
	e := int64(x.exp)
	if e >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, e, 10)
}
