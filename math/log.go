// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"sync"

	"github.com/go-mpf/mpf"
)

var (
	ln2Mu sync.Mutex
	_ln2  = new(mpf.Float)
)

// ln2 returns log(2) rounded to at least prec bits. The returned Float
// must not be modified.
func ln2(prec uint) *mpf.Float {
	ln2Mu.Lock()
	if _ln2.Prec() < prec {
		logPow2(_ln2.SetPrec(0).SetPrec(prec))
	}
	z := flt(prec).Set(_ln2)
	ln2Mu.Unlock()
	return z
}

// logPow2 sets z to log(2) computed to z's precision and returns z.
//
// log(2) = log(2**n)/n for any n, and for 2**n large enough relative
// to the working precision the AGM identity used by Log applies
// directly, with no need for scaling.
func logPow2(z *mpf.Float) *mpf.Float {
	prec := z.Prec()
	p := prec + 64
	n := int(p+1)/2 + 2

	x := flt(p).SetMantExp(one, n) // 2**n
	t := flt(p).SetUint64(1)
	u := flt(p).Quo(four, x)
	agm(z.SetPrec(0).SetPrec(p), t, u)
	z.Quo(piAt(p), t.Mul(z, two))                     // log(2**n) = π/2M(1, 4/2**n)
	return z.Quo(z, t.SetUint64(uint64(n))).SetPrec(prec) // log(2) = log(2**n)/n
}

// Log sets z to the rounded value of the natural logarithm of x and
// returns z. If z's precision is 0, it is changed to x's precision
// before the operation. Rounding is performed according to z's
// precision and rounding mode.
//
// Log(±0) is -Inf, Log(+Inf) is +Inf, and the logarithm of a negative
// number or of a NaN is NaN.
func Log(z, x *mpf.Float) *mpf.Float {
	if z == x {
		z = new(mpf.Float).SetMode(x.Mode()).SetPrec(x.Prec())
	}
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() || x.Sign() < 0 {
		return z.SetNaN().SetPrec(prec)
	}
	if x.IsZero() {
		return z.SetInf(true).SetPrec(prec)
	}
	if x.IsInf() {
		return z.SetInf(false).SetPrec(prec)
	}

	p := prec + 64
	mode := z.Mode()
	z.SetMode(mpf.ToNearestEven).SetPrec(0).SetPrec(p)

	neg := false
	switch x.Cmp(one) {
	case 0:
		return z.SetUint64(0).SetMode(mode).SetPrec(prec)
	case -1:
		// log(x) = -log(1/x), keeping the argument above 1 so that
		// the scaling below always moves it further from the AGM
		// singularity at 1.
		neg = true
		z.Quo(one, x)
	default:
		z.Set(x)
	}

	// Scale the argument to y = x×2**m with y > 2**((p+1)/2 + 2), the
	// domain where log(y) = π/2M(1, 4/y) holds to p bits, and undo the
	// scaling at the end: log(x) = log(y) - m log(2).
	m := int(p+1)/2 + 2 - z.MantExp(nil)
	if m > 0 {
		z.SetMantExp(z, m)
	}

	t := flt(p).SetUint64(1)
	u := flt(p).Quo(four, z)
	agm(z, t, u)
	z.Quo(piAt(p), t.Mul(z, two))
	if m > 0 {
		z.Sub(z, t.Mul(u.SetUint64(uint64(m)), ln2(p)))
	}
	if neg {
		z.Neg(z)
	}
	return z.SetMode(mode).SetPrec(prec)
}
