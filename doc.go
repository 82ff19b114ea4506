// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mpf implements arbitrary-precision binary floating-point
arithmetic in the tradition of GMP's mpf layer.

The API is modeled after math/big's *big.Float: values are represented
as a sign, an arbitrary-length binary mantissa and a 32-bit exponent,
and every value carries its own precision in bits and rounding mode.
Unlike big.Float, a Float has the full IEEE 754 special value set:
besides ±Inf there are NaN and a signed zero, and no operation ever
panics on a special value; NaN propagates through arithmetic instead.

All operations compute the mathematically exact result first and round
it exactly once to the precision of the result, so results are always
correctly rounded in the selected rounding mode; the Accuracy of the
receiver reports the direction of the rounding error.

The zero value for a Float corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	x := new(Float)  // x is a *Float of value 0

Setters, numeric operations and predicates are represented as methods
of the form:

	func (z *Float) SetV(v V) *Float            // z = v
	func (z *Float) Unary(x *Float) *Float      // z = unary x
	func (z *Float) Binary(x, y *Float) *Float  // z = x binary y
	func (x *Float) Pred() P                    // p = pred(x)

For unary and binary operations, the result is the receiver; if the
receiver is one of the operands it may be safely overwritten (and its
memory reused). Arithmetic expressions are written as sequences of
individual method calls:

	c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever
value was held in c before. Operations permit aliasing of parameters,
so it is perfectly ok to write

	sum.Add(sum, x)

to accumulate values x in a sum.

Beyond arithmetic, the package provides exact conversions from and to
the math/big types and strings in any base from 2 to 62, a versioned
canonical binary encoding (Encode, DecodeFloat), continued-fraction
rational approximation (F2Q), and a precision-independent value hash
(Hash).

The subpackage context bundles a precision, a rounding mode and an
exponent range into an explicit, injectable configuration with IEEE
style condition flags; the subpackage math computes elementary
functions (Pi, Exp, Log, Sqrt) correctly for any target precision.

Mantissa storage draws fixed-size buffers from a bounded internal
cache to reduce allocation churn in computation loops; SetCacheLimits
and CacheStats expose its configuration and counters. The cache is
transparent: it never changes results.
*/
package mpf
