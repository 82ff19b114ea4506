package mpf

import (
	"fmt"
	"math"
	"math/big"
)

// A Float represents a multiple-precision binary floating-point number
// with a sign, an arbitrary bit precision, and one of four kinds of
// values: finite, ±0, ±Inf, or NaN. Operations always compute the
// mathematically exact result first and round it once to the target
// precision using the receiver's rounding mode.
//
// The zero value for a Float corresponds to +0 with precision 0; a
// precision of 0 means that the precision is adopted from the first
// operand (or DefaultPrec where there is none).
//
// Floats are not mutated by operations on other values: operations set
// the receiver only. A Float that is never used as a receiver after
// construction is safe for concurrent use.
type Float struct {
	mant nat
	exp  int32
	prec uint32
	mode RoundingMode
	acc  Accuracy
	form form
	neg  bool
}

// NewFloat allocates and returns a new Float set to x with precision 53
// and rounding mode ToNearestEven. NewFloat(math.NaN()) returns a NaN
// Float.
func NewFloat(x float64) *Float {
	return new(Float).SetFloat64(x)
}

// Prec returns the mantissa precision of x in bits.
// The result may be 0 for |x| == 0 and |x| == Inf.
func (x *Float) Prec() uint {
	return uint(x.prec)
}

// MinPrec returns the minimum precision required to represent x exactly
// (i.e., the smallest prec before x.SetPrec(prec) would start rounding x).
// The result is 0 for |x| == 0, |x| == Inf, and NaN.
func (x *Float) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return uint(len(x.mant))*_W - x.mant.trailingZeroBits()
}

// Mode returns the rounding mode of x.
func (x *Float) Mode() RoundingMode {
	return x.mode
}

// Acc returns the accuracy of x produced by the most recent operation.
func (x *Float) Acc() Accuracy {
	return x.acc
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0
//	+1 if x >   0
//
// The sign of a NaN is 0; use IsNaN to tell NaN apart from zero.
func (x *Float) Sign() int {
	if debugFloat {
		x.validate()
	}
	if x.form == zero || x.form == nan {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero.
// The result for NaN is false.
func (x *Float) Signbit() bool {
	return x.form != nan && x.neg
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	return x.form == inf
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	return x.form == nan
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	return x.form == zero
}

// IsInt reports whether x is an integer. ±0 is an integer; ±Inf and
// NaN are not.
func (x *Float) IsInt() bool {
	if debugFloat {
		x.validate()
	}
	switch x.form {
	case zero:
		return true
	case finite:
		if x.exp <= 0 {
			return false
		}
		w := uint(len(x.mant)) * _W
		if uint(x.exp) >= w {
			return true
		}
		return !x.mant.sticky(w - uint(x.exp))
	}
	return false
}

// SetPrec sets z's precision to prec and returns the (possibly) rounded
// value of z. Rounding occurs according to z's rounding mode if the
// mantissa cannot be represented in prec bits without loss of precision.
// SetPrec(0) maps z to ±0 and the precision stays 0; any other prec is
// clamped to [MinPrec, MaxPrec].
func (z *Float) SetPrec(prec uint) *Float {
	z.acc = Exact // optimistically assume no rounding is needed

	// special case
	if prec == 0 {
		z.prec = 0
		if z.form == finite {
			// truncate z to 0
			z.acc = makeAcc(z.neg)
			z.form = zero
		}
		return z
	}

	// general case
	switch {
	case prec < MinPrec:
		prec = MinPrec
	case prec > MaxPrec:
		prec = MaxPrec
	}
	old := z.prec
	z.prec = uint32(prec)
	if z.prec < old {
		z.round(false)
	}
	return z
}

// SetMode sets z's rounding mode to mode and returns an exact z.
// z remains unchanged otherwise.
// z.SetMode(z.Mode()) is a cheap way to set z's accuracy to Exact.
func (z *Float) SetMode(mode RoundingMode) *Float {
	z.mode = mode
	z.acc = Exact
	return z
}

// SetInf sets z to the infinite Float -Inf if signbit is
// set, or +Inf if signbit is not set, and returns z. The
// precision of z is unchanged and the result is always
// Exact.
func (z *Float) SetInf(signbit bool) *Float {
	z.acc = Exact
	z.form = inf
	z.neg = signbit
	return z
}

// SetNaN sets z to NaN and returns z. The precision of z is unchanged
// and the result is always Exact.
func (z *Float) SetNaN() *Float {
	z.acc = Exact
	z.form = nan
	z.neg = false
	return z
}

// Set sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the precision of x
// before setting z (and rounding will have no effect).
// Rounding is performed according to z's precision and rounding
// mode; and z's accuracy reports the result error relative to the
// exact (not rounded) result.
func (z *Float) Set(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	z.acc = Exact
	if z != x {
		z.form = x.form
		z.neg = x.neg
		if x.form == finite {
			z.exp = x.exp
			z.mant = z.mant.set(x.mant)
		}
		if z.prec == 0 {
			z.prec = x.prec
		} else if z.prec < x.prec {
			z.round(false)
		}
	}
	return z
}

// Copy sets z to x, with the same precision, rounding mode, and
// accuracy as x, and returns z. x is not changed even if z and
// x are the same.
func (z *Float) Copy(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z != x {
		z.prec = x.prec
		z.mode = x.mode
		z.acc = x.acc
		z.form = x.form
		z.neg = x.neg
		if z.form == finite {
			z.mant = z.mant.set(x.mant)
			z.exp = x.exp
		}
	}
	return z
}

// SetUint64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have
// no effect).
func (z *Float) SetUint64(x uint64) *Float {
	if z.prec == 0 {
		z.prec = 64
	}
	z.acc = Exact
	z.neg = false
	if x == 0 {
		z.form = zero
		return z
	}
	return z.setIntExp(false, new(big.Int).SetUint64(x), 0, false)
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have
// no effect).
func (z *Float) SetInt64(x int64) *Float {
	u := x
	if u < 0 {
		u = -u
	}
	// We cannot simply call z.SetUint64(uint64(u)) and change
	// the sign afterwards because the sign affects rounding.
	if z.prec == 0 {
		z.prec = 64
	}
	z.acc = Exact
	z.neg = x < 0
	if x == 0 {
		z.form = zero
		return z
	}
	return z.setIntExp(x < 0, new(big.Int).SetUint64(uint64(u)), 0, false)
}

// SetFloat64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 53 (and rounding will have
// no effect). A NaN argument yields a NaN z.
func (z *Float) SetFloat64(x float64) *Float {
	if z.prec == 0 {
		z.prec = 53
	}
	if math.IsNaN(x) {
		return z.SetNaN()
	}
	z.acc = Exact
	z.neg = math.Signbit(x) // handle -0, -Inf correctly
	if x == 0 {
		z.form = zero
		return z
	}
	if math.IsInf(x, 0) {
		z.form = inf
		return z
	}
	// normal or denormal
	fmant, exp := math.Frexp(x) // 0.5 <= |fmant| < 1.0
	m := uint64(math.Ldexp(math.Abs(fmant), 53))
	return z.setIntExp(z.neg, new(big.Int).SetUint64(m), int64(exp)-53, false)
}

// SetInt sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the larger of x.BitLen()
// or 64 (and rounding will have no effect).
func (z *Float) SetInt(x *big.Int) *Float {
	bits := uint32(x.BitLen())
	if z.prec == 0 {
		z.prec = umax32(bits, 64)
	}
	z.acc = Exact
	z.neg = x.Sign() < 0
	if bits == 0 {
		z.form = zero
		return z
	}
	return z.setIntExp(z.neg, new(big.Int).Abs(x), 0, false)
}

// SetRat sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the largest of a.BitLen(),
// b.BitLen(), or 64; with x = a/b.
func (z *Float) SetRat(x *big.Rat) *Float {
	if x.IsInt() {
		return z.SetInt(x.Num())
	}
	if z.prec == 0 {
		z.prec = umax32(umax32(uint32(x.Num().BitLen()), uint32(x.Denom().BitLen())), 64)
	}
	z.neg = x.Sign() < 0
	return z.quoIntExp(z.neg, new(big.Int).Abs(x.Num()), x.Denom(), 0)
}

// SetMantExp sets z to mant × 2**exp and returns z.
// The result z has the same precision and rounding mode
// as mant. SetMantExp is an inverse of MantExp but does
// not require 0.5 <= |mant| < 1.0. Specifically, for a
// given x of type *Float, SetMantExp relates to MantExp
// as follows:
//
//	mant := new(Float)
//	new(Float).SetMantExp(mant, x.MantExp(mant)).Cmp(x) == 0
//
// Special cases are:
//
//	z.SetMantExp(  ±0, exp) =   ±0
//	z.SetMantExp(±Inf, exp) = ±Inf
//	z.SetMantExp( NaN, exp) =  NaN
func (z *Float) SetMantExp(mant *Float, exp int) *Float {
	if debugFloat {
		mant.validate()
	}
	z.Copy(mant)
	if z.form != finite {
		return z
	}
	z.setExpAndRound(int64(z.exp)+int64(exp), false)
	return z
}

// MantExp breaks x into its mantissa and exponent components
// and returns the exponent. If a non-nil mant argument is
// provided its value is set to the mantissa of x, with the
// same precision and rounding mode as x. The components
// satisfy x == mant × 2**exp, with 0.5 <= |mant| < 1.0.
// Calling MantExp with a nil argument is an efficient way to
// get the exponent of the receiver.
//
// Special cases are:
//
//	(  ±0).MantExp(mant) = 0, with mant set to   ±0
//	(±Inf).MantExp(mant) = 0, with mant set to ±Inf
//	( NaN).MantExp(mant) = 0, with mant set to  NaN
//
// x and mant may be the same in which case x is set to its
// mantissa value.
func (x *Float) MantExp(mant *Float) (exp int) {
	if debugFloat {
		x.validate()
	}
	if x.form == finite {
		exp = int(x.exp)
	}
	if mant != nil {
		mant.Copy(x)
		if mant.form == finite {
			mant.exp = 0
		}
	}
	return
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z. The negation of a NaN is NaN.
func (z *Float) Neg(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	z.Set(x)
	if z.form != nan {
		z.neg = !z.neg
	}
	return z
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z. The absolute value of a NaN is NaN.
func (z *Float) Abs(x *Float) *Float {
	z.Set(x)
	if z.form != nan {
		z.neg = false
	}
	return z
}

// setIntExp sets z to ±m·2**lshift where m > 0, rounded to z's
// precision. The extra sticky bit sbit accounts for nonzero value bits
// below the integer m.
func (z *Float) setIntExp(neg bool, m *big.Int, lshift int64, sbit bool) *Float {
	z.neg = neg
	z.mant = z.mant.setInt(m)
	s := fnorm(z.mant)
	z.setExpAndRound(int64(len(z.mant))*_W-s+lshift, sbit)
	return z
}

func (z *Float) setExpAndRound(exp int64, sbit bool) {
	if exp < MinExp {
		// underflow
		z.acc = makeAcc(z.neg)
		z.form = zero
		return
	}

	if exp > MaxExp {
		// overflow
		z.acc = makeAcc(!z.neg)
		z.form = inf
		return
	}

	z.form = finite
	z.exp = int32(exp)
	z.round(sbit)
}

// quoIntExp sets z to ±(a/b)·2**lshift with a, b > 0, rounded to z's
// precision. The quotient is computed with enough guard bits that the
// single rounding step in round is exact-then-round.
func (z *Float) quoIntExp(neg bool, a, b *big.Int, lshift int64) *Float {
	// shift the dividend such that the integer quotient carries the
	// target precision plus guard bits
	k := int64(z.prec) + 3 - int64(a.BitLen()) + int64(b.BitLen())
	if k < 0 {
		k = 0
	}
	n := new(big.Int).Lsh(a, uint(k))
	q, r := n.QuoRem(n, b, new(big.Int))
	return z.setIntExp(neg, q, lshift-k, r.Sign() != 0)
}

// round rounds z according to z.mode to z.prec bits and sets z.acc
// accordingly. z's mantissa must be normalized or empty. sbit reports
// whether there are any nonzero value bits below the stored mantissa.
//
// CAUTION: The rounding modes ToNegativeInf, ToPositiveInf are affected
// by the sign of z. For correct rounding, the sign of z must be set
// correctly before calling round.
func (z *Float) round(sbit bool) {
	if debugFloat {
		z.validate()
	}

	z.acc = Exact
	if z.form != finite {
		// ±0, ±Inf or NaN => nothing left to do
		return
	}
	// z.form == finite && len(z.mant) > 0
	// m > 0 implies z.prec > 0 (checked by validate)

	m := uint32(len(z.mant)) // present mantissa length in words
	bits := m * _W           // present mantissa bits; bits > 0
	if bits <= z.prec && !sbit {
		// mantissa fits and is exact => nothing to do
		return
	}

	n := (z.prec + (_W - 1)) / _W // mantissa length in words for desired precision

	var rbit uint
	if bits > z.prec {
		r := uint(bits - z.prec - 1) // rounding bit position; r >= 0
		rbit = z.mant.bit(r)
		if !sbit {
			sbit = z.mant.sticky(r)
		}
		// cut off extra words
		if m > n {
			copy(z.mant, z.mant[m-n:]) // move n last words to front
			z.mant = z.mant[:n]
		}
	} else if m < n {
		// grow the mantissa with zero-valued low words so the
		// increment below lands on the correct bit
		t := nat(nil).make(int(n))
		copy(t[n-m:], z.mant)
		clear(t[:n-m])
		natRelease(z.mant)
		z.mant = t
	}

	// determine number of trailing zero bits (ntz) and compute lsb mask of mantissa's least-significant word
	ntz := uint(n)*_W - uint(z.prec) // 0 <= ntz < _W
	lsb := Word(1) << ntz

	if rbit != 0 || sbit {
		inc := false
		switch z.mode {
		case ToNegativeInf:
			inc = z.neg
		case ToZero:
			// nothing to do
		case ToNearestEven:
			inc = rbit != 0 && (sbit || z.mant[0]&lsb != 0)
		case ToNearestAway:
			inc = rbit != 0
		case AwayFromZero:
			inc = true
		case ToPositiveInf:
			inc = !z.neg
		default:
			panic("unreachable")
		}
		z.acc = makeAcc(inc != z.neg)
		if inc {
			// add 1 to mantissa
			if addVW(z.mant, z.mant, lsb) != 0 {
				// mantissa overflow => shift mantissa right by 1 and add carry bit
				if z.exp == MaxExp {
					// overflow
					z.form = inf
					return
				}
				z.exp++
				shrVU(z.mant, z.mant, 1)
				z.mant[n-1] |= 1 << (_W - 1)
			}
		}
	}

	// zero out trailing bits
	z.mant[0] &^= lsb - 1

	if debugFloat {
		z.validate()
	}
}

func (x *Float) validate() {
	if !debugFloat {
		// avoid performance bugs
		panic("validate called but debugFloat is not set")
	}
	if x.form != finite {
		return
	}
	m := len(x.mant)
	if m == 0 {
		panic("nonzero finite number with empty mantissa")
	}
	const msb = 1 << (_W - 1)
	if x.mant[m-1]&msb == 0 {
		panic(fmt.Sprintf("msb not set in last word %#x of mantissa", uint(x.mant[m-1])))
	}
	if x.prec == 0 {
		panic("zero precision finite number")
	}
}

// ord classifies x into one of five ordered categories. x must not be
// NaN.
func (x *Float) ord() int {
	var m int
	switch x.form {
	case zero:
		return 0
	case finite:
		m = 1
	case inf:
		m = 2
	}
	if x.neg {
		m = -m
	}
	return m
}

// ucmp compares |x| and |y|; both must be finite and nonzero.
func (x *Float) ucmp(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	}
	// x.exp == y.exp

	// compare mantissas
	i := len(x.mant)
	j := len(y.mant)
	for i > 0 || j > 0 {
		var xm, ym Word
		if i > 0 {
			i--
			xm = x.mant[i]
		}
		if j > 0 {
			j--
			ym = y.mant[j]
		}
		switch {
		case xm < ym:
			return -1
		case xm > ym:
			return +1
		}
	}
	return 0
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// Equality is mathematical: operands of different precisions compare
// equal when they denote the same value. If either operand is a NaN the
// result is 0 even though NaN is not equal to anything, itself
// included; use Unordered (or Eq) to distinguish the two cases.
func (x *Float) Cmp(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if x.form == nan || y.form == nan {
		return 0
	}

	mx, my := x.ord(), y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}
	// mx == my

	// only if |mx| == 1 we have to compare the mantissae
	switch mx {
	case -1:
		return y.ucmp(x)
	case +1:
		return x.ucmp(y)
	}

	return 0
}

// CmpAbs compares |x| and |y| with the same conventions as Cmp.
func (x *Float) CmpAbs(y *Float) int {
	if x.form == nan || y.form == nan {
		return 0
	}
	mx, my := x.ord(), y.ord()
	if mx < 0 {
		mx = -mx
	}
	if my < 0 {
		my = -my
	}
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}
	if mx == 1 {
		return x.ucmp(y)
	}
	return 0
}

// Unordered reports whether x and y cannot be ordered, which is the
// case exactly when at least one of them is a NaN.
func (x *Float) Unordered(y *Float) bool {
	return x.form == nan || y.form == nan
}

// Eq reports whether x and y denote the same mathematical value.
// A NaN is never equal to anything, itself included; +0 and -0 are
// equal.
func (x *Float) Eq(y *Float) bool {
	return !x.Unordered(y) && x.Cmp(y) == 0
}

// Float64 returns the float64 value nearest to x, rounding to nearest
// even regardless of x's rounding mode, and an indication of the
// rounding error. If x is too small to be a float64 the result is ±0
// with accuracy reflecting the truncation; if x is too large it is
// ±Inf. Float64(NaN) is NaN with accuracy Exact.
func (x *Float) Float64() (float64, Accuracy) {
	if debugFloat {
		x.validate()
	}

	sgn := 1.0
	if x.neg {
		sgn = -1
	}
	switch x.form {
	case zero:
		return math.Copysign(0, sgn), Exact
	case inf:
		return math.Inf(int(sgn)), Exact
	case nan:
		return math.NaN(), Exact
	}

	e := int64(x.exp)
	p := int64(53)
	if e < -1021 {
		// the result is denormal (or zero) and holds fewer bits
		p = e + 1074
	}
	switch {
	case p < 0, p == 0 && x.MinPrec() <= 1:
		// |x| is at most half the smallest denormal
		return math.Copysign(0, sgn), makeAcc(x.neg)
	case p == 0:
		// |x| rounds up to the smallest denormal
		return sgn * math.Ldexp(1, -1074), makeAcc(!x.neg)
	}

	var t Float
	t.prec = uint32(p)
	t.Set(x) // rounds to nearest even
	e = int64(t.exp)
	if t.form == inf || e > 1024 {
		return math.Inf(int(sgn)), makeAcc(!x.neg)
	}

	// assemble the result from the top mantissa bits; bits below the
	// 53 kept here are zero after the rounding above
	m := msb64(t.mant)
	f := sgn * math.Ldexp(float64(m>>11), int(e)-53)
	return f, t.acc
}

// Int64 returns the integer resulting from truncating x towards zero.
// If the result is smaller than math.MinInt64 or larger than
// math.MaxInt64 the corresponding bound is returned instead, with the
// accuracy describing the direction of the error. Int64(NaN) is 0 with
// accuracy Exact.
func (x *Float) Int64() (int64, Accuracy) {
	if debugFloat {
		x.validate()
	}
	switch x.form {
	case zero, nan:
		return 0, Exact
	case inf:
		if x.neg {
			return math.MinInt64, Above
		}
		return math.MaxInt64, Below
	}

	var i big.Int
	acc := Exact
	if x.intFrac(&i) {
		acc = makeAcc(x.neg) // truncation moves toward zero
	}
	if x.neg {
		i.Neg(&i)
	}
	if i.IsInt64() {
		return i.Int64(), acc
	}
	if x.neg {
		return math.MinInt64, Above
	}
	return math.MaxInt64, Below
}

// Uint64 returns the unsigned integer resulting from truncating x
// towards zero, clamping to [0, math.MaxUint64] as for Int64.
func (x *Float) Uint64() (uint64, Accuracy) {
	if debugFloat {
		x.validate()
	}
	switch x.form {
	case zero, nan:
		return 0, Exact
	case inf:
		if x.neg {
			return 0, Above
		}
		return math.MaxUint64, Below
	}
	if x.neg {
		return 0, Above
	}

	var i big.Int
	acc := Exact
	if x.intFrac(&i) {
		acc = Below
	}
	if i.IsUint64() {
		return i.Uint64(), acc
	}
	return math.MaxUint64, Below
}

// Int returns the integer resulting from truncating x towards zero.
// If a non-nil *big.Int argument z is provided, Int stores the result
// in z instead of allocating a new big.Int. The result is nil if x is
// an infinity or NaN.
func (x *Float) Int(z *big.Int) (*big.Int, Accuracy) {
	if debugFloat {
		x.validate()
	}
	switch x.form {
	case inf:
		return nil, makeAcc(x.neg)
	case nan:
		return nil, Exact
	}
	if z == nil {
		z = new(big.Int)
	}
	if x.form == zero {
		return z.SetInt64(0), Exact
	}

	acc := Exact
	if x.intFrac(z) {
		acc = makeAcc(x.neg)
	}
	if x.neg {
		z.Neg(z)
	}
	return z, acc
}

// Rat returns the rational number corresponding to x; the result is
// always exact since every finite Float is a dyadic rational. If a
// non-nil *big.Rat argument z is provided, Rat stores the result in z.
// The result is nil if x is an infinity or NaN.
func (x *Float) Rat(z *big.Rat) (*big.Rat, Accuracy) {
	if debugFloat {
		x.validate()
	}
	if x.form == inf || x.form == nan {
		return nil, Exact
	}
	if z == nil {
		z = new(big.Rat)
	}
	if x.form == zero {
		return z.SetInt64(0), Exact
	}

	var num big.Int
	x.mant.toInt(&num)
	if x.neg {
		num.Neg(&num)
	}
	e := int64(x.exp) - int64(len(x.mant))*_W
	if e >= 0 {
		num.Lsh(&num, uint(e))
		return z.SetInt(&num), Exact
	}
	den := new(big.Int).Lsh(natOne, uint(-e))
	return z.SetFrac(&num, den), Exact
}
