// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math/big"
)

// Sqrt sets z to the rounded square root of x, and returns it.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode.
//
// The function returns NaN if x < 0. Special cases are:
//
//	z.Sqrt(  ±0) =   ±0
//	z.Sqrt(+Inf) = +Inf
//	z.Sqrt(-Inf) =  NaN
//	z.Sqrt( NaN) =  NaN
func (z *Float) Sqrt(x *Float) *Float {
	if debugFloat {
		x.validate()
	}

	if z.prec == 0 {
		z.prec = x.prec
	}

	if x.form != finite {
		if x.form == inf && x.neg || x.form == nan {
			return z.SetNaN()
		}
		// ±0 or +Inf
		z.acc = Exact
		z.form = x.form
		z.neg = x.neg
		return z
	}
	if x.neg {
		return z.SetNaN()
	}

	// x = m·2**e with m the mantissa read as an integer. Scale m so
	// that the radicand is wide enough for the integer square root to
	// carry the target precision plus guard bits, and so that the
	// remaining exponent is even.
	var m big.Int
	x.mant.toInt(&m)
	w := int64(len(x.mant)) * _W
	e := int64(x.exp) - w
	t := 2*(int64(z.prec)+2) - w
	if t < 0 {
		t = 0
	}
	if (e-t)&1 != 0 {
		t++
	}
	m.Lsh(&m, uint(t))

	var r big.Int
	s := new(big.Int).Sqrt(&m)
	r.Mul(s, s).Sub(&m, &r)
	return z.setIntExp(false, s, (e-t)/2, r.Sign() != 0)
}
