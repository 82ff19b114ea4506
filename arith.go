package mpf

import (
	"math/big"
)

// uadd sets z to |x| + |y|, rounded to z's precision. x and y must be
// finite and nonzero, and z.neg must be set before the call.
func (z *Float) uadd(x, y *Float) {
	// order the operands by exponent
	if x.exp < y.exp {
		x, y = y, x
	}
	ex := int64(x.exp)
	ey := int64(y.exp)
	wx := int64(len(x.mant)) * _W
	wy := int64(len(y.mant)) * _W
	k := int64(z.prec) + 4

	var a big.Int
	x.mant.toInt(&a)

	if ey <= ex-wx-k {
		// y lies entirely below the rounding position of the result
		// and contributes only a sticky bit
		a.Lsh(&a, uint(k))
		z.setIntExp(z.neg, &a, ex-wx-k, true)
		return
	}

	// align the mantissas on their common least significant bit scale
	var b big.Int
	y.mant.toInt(&b)
	lx := ex - wx
	ly := ey - wy
	l := lx
	if ly < lx {
		l = ly
	}
	a.Lsh(&a, uint(lx-l))
	b.Lsh(&b, uint(ly-l))
	a.Add(&a, &b)
	z.setIntExp(z.neg, &a, l, false)
}

// usub sets z to |x| - |y|, rounded to z's precision. x and y must be
// finite with |x| > |y|, and z.neg must be set before the call.
func (z *Float) usub(x, y *Float) {
	ex := int64(x.exp)
	ey := int64(y.exp)
	wx := int64(len(x.mant)) * _W
	wy := int64(len(y.mant)) * _W
	k := int64(z.prec) + 4

	var a big.Int
	x.mant.toInt(&a)

	if ey <= ex-wx-k {
		// y only nibbles at bits below the rounding position
		a.Lsh(&a, uint(k))
		a.Sub(&a, natOne)
		z.setIntExp(z.neg, &a, ex-wx-k, true)
		return
	}

	var b big.Int
	y.mant.toInt(&b)
	lx := ex - wx
	ly := ey - wy
	l := lx
	if ly < lx {
		l = ly
	}
	a.Lsh(&a, uint(lx-l))
	b.Lsh(&b, uint(ly-l))
	a.Sub(&a, &b)
	// a > 0 since |x| > |y|
	z.setIntExp(z.neg, &a, l, false)
}

var natOne = big.NewInt(1)

// Add sets z to the rounded sum x+y and returns z. If z's precision is
// 0, it is changed to the larger of x's or y's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode, and z's accuracy reports the result error relative to
// the exact (not rounded) result.
//
// Special cases, following IEEE 754-2008 semantics:
//
//	 NaN +    y =  NaN
//	+Inf + +Inf = +Inf
//	-Inf + -Inf = -Inf
//	+Inf + -Inf =  NaN
//	  ±0 +   ±0 =   +0 (-0 when both operands are -0, or in ToNegativeInf mode)
func (z *Float) Add(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.form == nan || y.form == nan {
		return z.SetNaN()
	}

	if x.form == finite && y.form == finite {
		// x + y (common case)
		neg := x.neg
		if x.neg == y.neg {
			// x + y == x + y
			// (-x) + (-y) == -(x + y)
			z.neg = neg
			z.uadd(x, y)
		} else {
			// x + (-y) == x - y == -(y - x)
			// (-x) + y == y - x == -(x - y)
			switch x.ucmp(y) {
			case 0:
				// exact cancellation
				z.acc = Exact
				z.form = zero
				z.neg = z.mode == ToNegativeInf
			case +1:
				z.neg = neg
				z.usub(x, y)
			case -1:
				z.neg = !neg
				z.usub(y, x)
			}
		}
		return z
	}

	if x.form == inf && y.form == inf && x.neg != y.neg {
		// +Inf + -Inf has no usable answer
		return z.SetNaN()
	}

	if x.form == inf || y.form == inf {
		f := x
		if y.form == inf {
			f = y
		}
		z.acc = Exact
		z.form = inf
		z.neg = f.neg
		return z
	}

	if x.form == zero && y.form == zero {
		z.acc = Exact
		z.form = zero
		z.neg = x.neg && y.neg || x.neg != y.neg && z.mode == ToNegativeInf
		return z
	}

	if x.form == zero {
		return z.Set(y)
	}
	return z.Set(x)
}

// Sub sets z to the rounded difference x-y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
// Sub follows the same special case rules as Add with y negated;
// in particular +Inf - +Inf = NaN.
func (z *Float) Sub(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.form == nan || y.form == nan {
		return z.SetNaN()
	}

	if x.form == finite && y.form == finite {
		// x - y (common case)
		neg := x.neg
		if x.neg != y.neg {
			// x - (-y) == x + y
			// (-x) - y == -(x + y)
			z.neg = neg
			z.uadd(x, y)
		} else {
			// x - y == x - y == -(y - x)
			// (-x) - (-y) == y - x == -(x - y)
			switch x.ucmp(y) {
			case 0:
				// exact cancellation
				z.acc = Exact
				z.form = zero
				z.neg = z.mode == ToNegativeInf
			case +1:
				z.neg = neg
				z.usub(x, y)
			case -1:
				z.neg = !neg
				z.usub(y, x)
			}
		}
		return z
	}

	if x.form == inf && y.form == inf && x.neg == y.neg {
		return z.SetNaN()
	}

	if y.form == inf {
		z.acc = Exact
		z.form = inf
		z.neg = !y.neg
		return z
	}
	if x.form == inf {
		z.acc = Exact
		z.form = inf
		z.neg = x.neg
		return z
	}

	if x.form == zero && y.form == zero {
		z.acc = Exact
		z.form = zero
		z.neg = x.neg && !y.neg || x.neg == y.neg && z.mode == ToNegativeInf
		return z
	}

	if x.form == zero {
		return z.Neg(y)
	}
	return z.Set(x)
}

// Mul sets z to the rounded product x*y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
//
// Special cases, following IEEE 754-2008 semantics:
//
//	NaN  *    y = NaN
//	±Inf *   ±y = ±Inf (sign by the usual sign rule)
//	±Inf *   ±0 = NaN
func (z *Float) Mul(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.form == nan || y.form == nan {
		return z.SetNaN()
	}

	neg := x.neg != y.neg

	if x.form == finite && y.form == finite {
		// x * y (common case)
		var a, b big.Int
		x.mant.toInt(&a)
		y.mant.toInt(&b)
		a.Mul(&a, &b)
		lx := int64(x.exp) - int64(len(x.mant))*_W
		ly := int64(y.exp) - int64(len(y.mant))*_W
		return z.setIntExp(neg, &a, lx+ly, false)
	}

	if x.form == inf && y.form == zero || x.form == zero && y.form == inf {
		// ±Inf * ±0 has no usable answer
		return z.SetNaN()
	}

	z.acc = Exact
	z.neg = neg
	if x.form == inf || y.form == inf {
		z.form = inf
	} else {
		z.form = zero
	}
	return z
}

// Quo sets z to the rounded quotient x/y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
//
// Special cases, following IEEE 754-2008 semantics:
//
//	 NaN /    y = NaN
//	±Inf / ±Inf = NaN
//	  ±0 /   ±0 = NaN
//	   x /   ±0 = ±Inf (sign by the usual sign rule)
//	±Inf /    y = ±Inf
//	   x / ±Inf = ±0
func (z *Float) Quo(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.form == nan || y.form == nan {
		return z.SetNaN()
	}

	neg := x.neg != y.neg

	if x.form == finite && y.form == finite {
		// x / y (common case)
		var a, b big.Int
		x.mant.toInt(&a)
		y.mant.toInt(&b)
		lx := int64(x.exp) - int64(len(x.mant))*_W
		ly := int64(y.exp) - int64(len(y.mant))*_W
		return z.quoIntExp(neg, &a, &b, lx-ly)
	}

	if x.form == inf && y.form == inf || x.form == zero && y.form == zero {
		return z.SetNaN()
	}

	z.acc = Exact
	z.neg = neg
	if x.form == inf || y.form == zero {
		z.form = inf
	} else {
		z.form = zero
	}
	return z
}

// intFrac extracts the integer part of |x| into i and reports whether x
// has a nonzero fractional part. x must be finite and nonzero.
func (x *Float) intFrac(i *big.Int) (frac bool) {
	e := int64(x.exp)
	if e <= 0 {
		// |x| < 1
		i.SetInt64(0)
		return true
	}
	w := int64(len(x.mant)) * _W
	x.mant.toInt(i)
	if e >= w {
		i.Lsh(i, uint(e-w))
		return false
	}
	frac = x.mant.sticky(uint(w - e))
	i.Rsh(i, uint(w-e))
	return frac
}

// setIntPart sets z to the integer part of x, incrementing its
// magnitude by one when up is set and x has a fractional part.
func (z *Float) setIntPart(x *Float, up bool) *Float {
	if debugFloat {
		x.validate()
	}
	if z.prec == 0 {
		z.prec = x.prec
	}
	if x.form != finite {
		if x.form == nan {
			return z.SetNaN()
		}
		z.acc = Exact
		z.form = x.form
		z.neg = x.neg
		return z
	}
	var i big.Int
	frac := x.intFrac(&i)
	if up && frac {
		i.Add(&i, natOne)
	}
	if i.Sign() == 0 {
		// keep the sign of x so that Ceil(-0.5) == -0
		z.acc = Exact
		z.form = zero
		z.neg = x.neg
		return z
	}
	return z.setIntExp(x.neg, &i, 0, false)
}

// Floor sets z to the largest integer value not greater than x, and
// returns z. Floor(±0) = ±0, Floor(±Inf) = ±Inf, Floor(NaN) = NaN.
func (z *Float) Floor(x *Float) *Float {
	return z.setIntPart(x, x.Signbit())
}

// Ceil sets z to the smallest integer value not less than x, and
// returns z. Ceil of a value in (-1, 0) is -0.
func (z *Float) Ceil(x *Float) *Float {
	return z.setIntPart(x, !x.Signbit())
}

// Trunc sets z to the integer value of x rounded toward zero, and
// returns z.
func (z *Float) Trunc(x *Float) *Float {
	return z.setIntPart(x, false)
}

// RelDiff sets z to the relative difference (x-y)/x taken in absolute
// value of the numerator, i.e. |x-y|/x, and returns z. If z's precision
// is 0, it is changed to the larger of x's or y's precision. The result
// is NaN if x is NaN, y is NaN, or x is zero and x == y.
func (z *Float) RelDiff(x, y *Float) *Float {
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}
	var d Float
	d.prec = z.prec + 8
	if d.prec > MaxPrec {
		d.prec = MaxPrec
	}
	d.Sub(x, y)
	d.Abs(&d)
	return z.Quo(&d, x)
}
