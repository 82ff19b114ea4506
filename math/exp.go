// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/go-mpf/mpf"
)

// Exp sets z to the rounded value of e**x and returns z. If z's
// precision is 0, it is changed to x's precision before the operation.
// Rounding is performed according to z's precision and rounding mode.
//
// Exp(+Inf) is +Inf, Exp(-Inf) is +0, and Exp(NaN) is NaN. Results too
// large for the exponent range overflow to +Inf, results too small
// underflow to +0.
func Exp(z, x *mpf.Float) *mpf.Float {
	if z == x {
		z = new(mpf.Float).SetMode(x.Mode()).SetPrec(x.Prec())
	}
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() {
		return z.SetNaN().SetPrec(prec)
	}
	if x.IsZero() {
		return z.SetPrec(0).SetPrec(prec).SetUint64(1)
	}
	if x.IsInf() {
		if x.Signbit() {
			return z.SetPrec(0).SetPrec(prec).SetUint64(0)
		}
		return z.SetInf(false).SetPrec(prec)
	}

	p := prec + 64
	mode := z.Mode()
	z.SetMode(mpf.ToNearestEven).SetPrec(0).SetPrec(p)

	// Argument reduction: x = k log(2) + r with |r| ≤ log(2)/2, so
	// that e**x = 2**k × e**r and the series for e**r converges with
	// one bit per term or better.
	//
	// The extra guard bits on log(2) absorb the cancellation in
	// x - k log(2), which loses about log2(k) ≤ 33 bits.
	l2 := ln2(p + 64)
	q := flt(64).Quo(x, l2)
	if q.Signbit() {
		q.Sub(q, half)
	} else {
		q.Add(q, half)
	}
	k, _ := q.Int64() // truncation of q±1/2 rounds x/log(2) to nearest

	// 2**k is the binary magnitude of the result. Int64 saturates, so
	// arguments of any size land in one of these two branches before k
	// can be used as a shift count.
	if k > mpf.MaxExp+1 {
		return z.SetInf(false).SetMode(mode).SetPrec(prec)
	}
	if k < mpf.MinExp-1 {
		return z.SetPrec(0).SetPrec(prec).SetMode(mode).SetUint64(0)
	}

	r := flt(p + 64)
	if k != 0 {
		r.Sub(x, r.Mul(l2, flt(64).SetInt64(k)))
	} else {
		r.Set(x)
	}
	expT(z, r)
	z.SetMantExp(z, int(k))
	return z.SetMode(mode).SetPrec(prec)
}

// expT sets z to e**x computed with the Taylor series of the
// exponential function:
//
//	e**x = 1 + x + x²/2! + x³/3! + ...
//
// and returns z. z must have a non-zero precision that includes the
// caller's guard bits, and |x| ≤ 1.
func expT(z, x *mpf.Float) *mpf.Float {
	var (
		p       = z.Prec()
		q       = flt(p).SetUint64(1) // term index
		fact    = flt(p).SetUint64(1) // q!
		xn      = flt(p).Set(x)       // x**q
		s       = flt(p).Add(one, x)  // partial sum
		t       = flt(p)
		epsilon = eps(p)
	)
	for {
		xn.Copy(t.Mul(xn, x))
		fact.Copy(t.Mul(fact, q.Add(q, one)))
		z.Set(s)
		s.Add(z, t.Quo(xn, fact))
		if t.Sub(z, s).CmpAbs(epsilon) <= 0 {
			break
		}
	}
	return z
}
