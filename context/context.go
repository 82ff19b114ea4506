// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Floats.
//
// A Context bundles a precision, a rounding mode and an exponent range
// into an explicit configuration value. All factory functions of the
// form
//
//	func (c *Context) NewT(x T) *mpf.Float
//
// create a new mpf.Float set to the value of x, rounded using c's
// precision and rounding mode. Operators that set a receiver z to a
// function of other Float arguments like
//
//	func (c *Context) UnaryOp(z, x *mpf.Float) *mpf.Float
//	func (c *Context) BinaryOp(z, x, y *mpf.Float) *mpf.Float
//
// set z to the result of z.Op(args), rounded using c's precision and
// rounding mode and constrained to c's exponent range, and return z.
//
// Exceptional outcomes raise Condition flags on the context. The flags
// are sticky: they accumulate until ClearFlags or Err is called.
// Conditions listed in the context's trap set turn into errors reported
// by Err; otherwise operations silently continue with the usual IEEE
// results (NaN, infinities, zeros).
//
// Contexts are independent values: two contexts never share flags.
// A Context is not safe for concurrent use.
package context

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/go-mpf/mpf"
)

// ErrTrapped is the class of errors returned by Err for conditions that
// are both raised and trapped.
var ErrTrapped = errs.Class("mpf/context: trapped condition")

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, precision, exponent range and condition flags.
type Context struct {
	prec  uint32
	mode  mpf.RoundingMode
	emin  int32
	emax  int32
	traps Condition
	flags Condition
}

// New creates a new context with the given precision and rounding mode
// and the widest exponent range. The error is of the
// mpf.ErrInvalidConfiguration class if prec is below mpf.MinPrec or
// above mpf.MaxPrec, or if mode is not a known rounding mode.
func New(prec uint, mode mpf.RoundingMode) (*Context, error) {
	if prec < mpf.MinPrec || prec > mpf.MaxPrec {
		return nil, mpf.ErrInvalidConfiguration.New("precision %d out of [%d, %d]", prec, mpf.MinPrec, uint(mpf.MaxPrec))
	}
	if mode > mpf.ToPositiveInf {
		return nil, mpf.ErrInvalidConfiguration.New("unknown rounding mode %d", mode)
	}
	return &Context{
		prec: uint32(prec),
		mode: mode,
		emin: mpf.MinExp,
		emax: mpf.MaxExp,
	}, nil
}

// Prec returns the precision of c in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() mpf.RoundingMode {
	return c.mode
}

// SetPrec sets c's precision to prec. The error is of the
// mpf.ErrInvalidConfiguration class if prec is outside
// [mpf.MinPrec, mpf.MaxPrec]; c is left unchanged in that case. An
// invalid precision is never replaced with a default. Values already
// constructed through c keep their precision.
func (c *Context) SetPrec(prec uint) error {
	if prec < mpf.MinPrec || prec > mpf.MaxPrec {
		return mpf.ErrInvalidConfiguration.New("precision %d out of [%d, %d]", prec, mpf.MinPrec, uint(mpf.MaxPrec))
	}
	c.prec = uint32(prec)
	return nil
}

// SetMode sets c's rounding mode to mode. The error is of the
// mpf.ErrInvalidConfiguration class if mode is not a known rounding
// mode; c is left unchanged in that case.
func (c *Context) SetMode(mode mpf.RoundingMode) error {
	if mode > mpf.ToPositiveInf {
		return mpf.ErrInvalidConfiguration.New("unknown rounding mode %d", mode)
	}
	c.mode = mode
	return nil
}

// ExpRange returns the exponent range of c. Finite nonzero results x
// produced through c satisfy emin <= x.MantExp(nil) <= emax.
func (c *Context) ExpRange() (emin, emax int) {
	return int(c.emin), int(c.emax)
}

// SetExpRange sets the exponent range of c. The error is of the
// mpf.ErrRange class if emin >= emax or either bound is outside
// [mpf.MinExp, mpf.MaxExp].
func (c *Context) SetExpRange(emin, emax int) error {
	if emin >= emax || emin < mpf.MinExp || emax > mpf.MaxExp {
		return mpf.ErrRange.New("exponent range [%d, %d]", emin, emax)
	}
	c.emin = int32(emin)
	c.emax = int32(emax)
	return nil
}

// Traps returns the set of trapped conditions.
func (c *Context) Traps() Condition {
	return c.traps
}

// SetTraps sets the conditions reported as errors by Err and returns c.
func (c *Context) SetTraps(traps Condition) *Context {
	c.traps = traps
	return c
}

// Flags returns the conditions raised since the last ClearFlags.
func (c *Context) Flags() Condition {
	return c.flags
}

// ClearFlags clears all condition flags.
func (c *Context) ClearFlags() {
	c.flags = 0
}

// Err returns an error of the ErrTrapped class if any trapped condition
// has been raised, and clears those flags. Untrapped flags are left
// set.
func (c *Context) Err() error {
	t := c.flags & c.traps
	if t == 0 {
		return nil
	}
	c.flags &^= t
	return ErrTrapped.New("%s", t)
}

// New returns a new mpf.Float with value 0, precision and rounding mode
// set to c's precision and rounding mode.
func (c *Context) New() *mpf.Float {
	return new(mpf.Float).SetMode(c.mode).SetPrec(uint(c.prec))
}

// NewInt returns a new *mpf.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewInt(x *big.Int) *mpf.Float {
	return c.round(c.New().SetInt(x), false)
}

// NewInt64 returns a new *mpf.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) *mpf.Float {
	return c.round(c.New().SetInt64(x), false)
}

// NewUint64 returns a new *mpf.Float set to the (possibly rounded)
// value of x.
func (c *Context) NewUint64(x uint64) *mpf.Float {
	return c.round(c.New().SetUint64(x), false)
}

// NewFloat64 returns a new *mpf.Float set to the (possibly rounded)
// value of x. A NaN argument yields a NaN without raising Invalid.
func (c *Context) NewFloat64(x float64) *mpf.Float {
	return c.round(c.New().SetFloat64(x), x != x)
}

// NewRat returns a new *mpf.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewRat(x *big.Rat) *mpf.Float {
	return c.round(c.New().SetRat(x), false)
}

// NewString returns a new Float with the value of s and a boolean
// indicating success. s must be a floating-point number of the same
// format as accepted by (*mpf.Float).Parse, with base argument 0.
func (c *Context) NewString(s string) (f *mpf.Float, success bool) {
	f, ok := c.New().SetString(s)
	if !ok {
		return nil, false
	}
	return c.round(f, f.IsNaN()), true
}

// Parse is like f.Parse(s, base) with f set to c's precision and
// rounding mode, and the result constrained to c's exponent range.
func (c *Context) Parse(s string, base int) (f *mpf.Float, b int, err error) {
	f, b, err = c.New().Parse(s, base)
	if err != nil {
		return nil, b, err
	}
	return c.round(f, f.IsNaN()), b, nil
}

// Round sets z to the value of x rounded using c's precision and
// rounding mode and returns z.
func (c *Context) Round(z, x *mpf.Float) *mpf.Float {
	r := c.res(z)
	return c.fin(z, r.Set(x), x.IsNaN())
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *mpf.Float) *mpf.Float {
	r := c.res(z)
	return c.fin(z, r.Add(x, y), x.IsNaN() || y.IsNaN())
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *mpf.Float) *mpf.Float {
	r := c.res(z)
	return c.fin(z, r.Sub(x, y), x.IsNaN() || y.IsNaN())
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *mpf.Float) *mpf.Float {
	r := c.res(z)
	return c.fin(z, r.Mul(x, y), x.IsNaN() || y.IsNaN())
}

// Quo sets z to the rounded quotient x/y and returns z. Dividing a
// finite nonzero value by a zero raises DivisionByZero.
func (c *Context) Quo(z, x, y *mpf.Float) *mpf.Float {
	if y.IsZero() && !x.IsZero() && !x.IsNaN() && !x.IsInf() {
		c.flags |= DivisionByZero
	}
	r := c.res(z)
	return c.fin(z, r.Quo(x, y), x.IsNaN() || y.IsNaN())
}

// Sqrt sets z to the rounded square root of x and returns z. The square
// root of a negative value raises Invalid.
func (c *Context) Sqrt(z, x *mpf.Float) *mpf.Float {
	r := c.res(z)
	return c.fin(z, r.Sqrt(x), x.IsNaN())
}

// Neg sets z to the (possibly rounded) value of x with its sign
// negated, and returns z.
func (c *Context) Neg(z, x *mpf.Float) *mpf.Float {
	r := c.res(z)
	return c.fin(z, r.Neg(x), x.IsNaN())
}

// Abs sets z to the (possibly rounded) value |x| and returns z.
func (c *Context) Abs(z, x *mpf.Float) *mpf.Float {
	r := c.res(z)
	return c.fin(z, r.Abs(x), x.IsNaN())
}

// res returns the Float an operation under c computes into: z itself
// when its precision already matches c's, or a fresh Float otherwise.
// A receiver whose precision differs must not be reconfigured in place:
// it may alias an operand, whose value the operation still has to read.
func (c *Context) res(z *mpf.Float) *mpf.Float {
	if z.SetMode(c.mode).Prec() == uint(c.prec) {
		return z
	}
	return c.New()
}

// fin moves the result r into z if they are distinct, then raises the
// matching condition flags and enforces c's exponent range.
func (c *Context) fin(z, r *mpf.Float, nanIn bool) *mpf.Float {
	if r != z {
		z.Copy(r)
	}
	return c.round(z, nanIn)
}

// round inspects the result of an operation, raises the matching
// condition flags, and enforces c's exponent range. nanIn reports
// whether an operand already was a NaN, in which case the NaN result is
// mere propagation, not a new Invalid condition.
func (c *Context) round(z *mpf.Float, nanIn bool) *mpf.Float {
	if z.Acc() != mpf.Exact {
		c.flags |= Inexact
	}
	if z.IsNaN() {
		if !nanIn {
			c.flags |= Invalid
		}
		return z
	}
	if z.IsInf() {
		if z.Acc() != mpf.Exact {
			// the exact result was finite; rounding overflowed
			c.flags |= Overflow
		}
		return z
	}
	if z.IsZero() {
		if z.Acc() != mpf.Exact {
			c.flags |= Underflow
		}
		return z
	}

	switch e := z.MantExp(nil); {
	case e > int(c.emax):
		c.flags |= Overflow | Inexact
		z.SetInf(z.Signbit())
	case e < int(c.emin):
		c.flags |= Underflow | Inexact
		neg := z.Signbit()
		z.SetInt64(0)
		if neg {
			z.Neg(z)
		}
	}
	return z
}
