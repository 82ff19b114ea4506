// Package math provides transcendental functions and constants for
// mpf Floats: Pi, Exp, Log and integer powers, all correctly scaled
// to the result's precision.
package math

import (
	"github.com/go-mpf/mpf"
)

// constants
var (
	one     = new(mpf.Float).SetUint64(1)
	two     = new(mpf.Float).SetUint64(2)
	four    = new(mpf.Float).SetUint64(4)
	half    = mpf.NewFloat(0.5)
	quarter = mpf.NewFloat(0.25)
)

// flt returns a new Float with its precision set to prec and rounding
// to nearest even, for use as scratch storage.
func flt(prec uint) *mpf.Float {
	return new(mpf.Float).SetPrec(prec)
}

// eps returns 2**-prec, the convergence threshold for prec bits.
func eps(prec uint) *mpf.Float {
	return new(mpf.Float).SetPrec(prec).SetMantExp(one, -int(prec))
}

// Pow sets z to the rounded value of x**n and returns z. If z's
// precision is 0, it is changed to x's precision before the operation.
// Rounding is performed according to z's precision and rounding mode.
// Pow(z, ±0, 0) and Pow(z, ±Inf, 0) are 1.
func Pow(z, x *mpf.Float, n uint64) *mpf.Float {
	if z == x {
		z = new(mpf.Float).SetMode(x.Mode()).SetPrec(x.Prec())
	}
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if n == 0 {
		return z.SetPrec(0).SetPrec(prec).SetUint64(1)
	}

	p := prec + 64
	mode := z.Mode()
	z.SetMode(mpf.ToNearestEven).SetPrec(0).SetPrec(p)

	// square and multiply
	t := flt(p)
	y := flt(p).SetUint64(1)
	z.Set(x)
	for n > 1 {
		if n%2 != 0 {
			y.Mul(t.Set(y), z)
		}
		z.Mul(t.Set(z), t)
		if z.IsInf() || z.IsZero() || z.IsNaN() {
			break
		}
		n /= 2
	}
	z.Mul(t.Set(z), y)
	return z.SetMode(mode).SetPrec(prec)
}

// agm sets z to the arithmetic-geometric mean of a, b and returns z.
// a, b and z must be distinct Floats. a and b are not preserved.
func agm(z, a, b *mpf.Float) *mpf.Float {
	var (
		prec    = z.Prec()
		t       = flt(prec)
		epsilon = eps(prec)
	)

	for {
		t.Copy(a)
		a.Mul(z.Add(a, b), half) // a_n+1 = (a_n+b_n)/2
		b.Sqrt(z.Mul(t, b))      // b_n+1 = sqrt(a_n × b_n)
		if z.Sub(a, b).CmpAbs(epsilon) <= 0 {
			break
		}
	}
	return z.Copy(a)
}
