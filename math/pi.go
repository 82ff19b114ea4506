// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"sync"

	"github.com/go-mpf/mpf"
)

var (
	piMu sync.Mutex
	_pi  = pi(flt(mpf.DefaultPrec * 2))
)

// Pi sets z to the rounded value of π and returns z. If z's precision
// is 0, it is changed to DefaultPrec.
//
// Computed values are cached, so calling Pi repeatedly at the same or
// a lower precision only pays for the rounding. Pi is safe for
// concurrent use.
func Pi(z *mpf.Float) *mpf.Float {
	if z.Prec() == 0 {
		z.SetPrec(mpf.DefaultPrec)
	}
	piMu.Lock()
	if z.Prec() > _pi.Prec() {
		pi(_pi.SetPrec(0).SetPrec(z.Prec()))
	}
	z.Set(_pi)
	piMu.Unlock()
	return z
}

// piAt returns π to at least prec bits, going through the Pi cache.
func piAt(prec uint) *mpf.Float {
	return Pi(flt(prec))
}

// pi sets z to π computed to z's precision with the Gauss-Legendre
// algorithm and returns z. The number of exact bits in the result is
// at least z.Prec() - 1.
func pi(z *mpf.Float) *mpf.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = mpf.DefaultPrec
	}
	// Each iteration doubles the number of exact bits, so the usual
	// 64 guard bits are plenty.
	p := prec + 64
	var (
		a       = flt(p).SetUint64(1)        // a_0 = 1
		u       = flt(p).Sqrt(two)           // √2
		b       = flt(p).Quo(one, u)         // b_0 = 1/√2
		t       = flt(p).Set(quarter)        // t_0 = 1/4
		q       = flt(p).SetUint64(1)        // p_0 = 1
		epsilon = eps(p)
	)
	z.SetMode(mpf.ToNearestEven).SetPrec(0).SetPrec(p)

	for {
		u.Copy(a)
		a.Mul(z.Add(a, b), half)                        // a_n+1 = (a_n+b_n)/2
		b.Sqrt(z.Mul(u, b))                             // b_n+1 = sqrt(a_n × b_n)
		t.Copy(u.Sub(t, z.Mul(u.Mul(z.Sub(u, a), z), q))) // t_n+1 = t_n - p_n(a_n - a_n+1)²
		if z.Sub(a, b).CmpAbs(epsilon) <= 0 {
			break
		}
		q.Copy(z.Mul(q, two)) // p_n+1 = 2p_n
	}
	z.Add(a, b)
	a.Mul(z, z)       // (a_n + b_n)²
	t.Mul(t, four)    // 4t_n
	return z.Quo(a, t).SetPrec(prec) // π = (a_n + b_n)²/4t_n
}
