// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"testing"
)

func TestFloatAdd(t *testing.T) {
	for _, test := range []struct {
		x, y, want string
	}{
		{"1", "2", "3"},
		{"-1", "-2", "-3"},
		{"1.5", "2.25", "3.75"},
		{"123.456", "789.123", "912.579"},
		{"0.1", "0.2", "0.30000000000000004"},
		{"1e100", "1", "1e+100"},
		{"0", "-5", "-5"},
		{"-5", "0", "-5"},
	} {
		x, _, err := ParseFloat(test.x, 0, 53, ToNearestEven)
		if err != nil {
			t.Fatal(err)
		}
		y, _, err := ParseFloat(test.y, 0, 53, ToNearestEven)
		if err != nil {
			t.Fatal(err)
		}
		z := new(Float).SetPrec(53).Add(x, y)
		if got := z.String(); got != test.want {
			t.Errorf("%s + %s = %s; want %s", test.x, test.y, got, test.want)
		}
	}
}

func TestFloatAddSpecial(t *testing.T) {
	for _, test := range []struct {
		x, y, want string
	}{
		{"+Inf", "+Inf", "+Inf"},
		{"-Inf", "-Inf", "-Inf"},
		{"+Inf", "-Inf", "NaN"},
		{"-Inf", "+Inf", "NaN"},
		{"+Inf", "123", "+Inf"},
		{"123", "-Inf", "-Inf"},
		{"NaN", "1", "NaN"},
		{"1", "NaN", "NaN"},
		{"NaN", "+Inf", "NaN"},
		{"0", "0", "0"},
		{"0", "-0", "0"},
		{"-0", "0", "0"},
		{"-0", "-0", "-0"},
	} {
		z := new(Float).Add(makeFloat(test.x), makeFloat(test.y))
		if !alike(z, makeFloat(test.want)) {
			t.Errorf("%s + %s = %s; want %s", test.x, test.y, z.String(), test.want)
		}
	}

	// exact cancellation produces +0, or -0 when rounding toward -Inf
	x := makeFloat("1.5")
	y := makeFloat("-1.5")
	if z := new(Float).Add(x, y); !z.IsZero() || z.Signbit() {
		t.Errorf("1.5 + -1.5 = %s; want 0", z.String())
	}
	if z := new(Float).SetMode(ToNegativeInf).Add(x, y); !z.IsZero() || !z.Signbit() {
		t.Errorf("1.5 + -1.5 (ToNegativeInf) = %s; want -0", z.String())
	}
	if z := new(Float).SetMode(ToNegativeInf).Add(makeFloat("0"), makeFloat("-0")); !z.Signbit() {
		t.Errorf("0 + -0 (ToNegativeInf) = %s; want -0", z.String())
	}
}

func TestFloatSubSpecial(t *testing.T) {
	for _, test := range []struct {
		x, y, want string
	}{
		{"+Inf", "+Inf", "NaN"},
		{"-Inf", "-Inf", "NaN"},
		{"+Inf", "-Inf", "+Inf"},
		{"-Inf", "+Inf", "-Inf"},
		{"123", "+Inf", "-Inf"},
		{"+Inf", "123", "+Inf"},
		{"NaN", "1", "NaN"},
		{"0", "0", "0"},
		{"0", "-0", "0"},
		{"-0", "0", "-0"},
		{"-0", "-0", "0"},
		{"0", "-5", "5"},
		{"5", "0", "5"},
	} {
		z := new(Float).Sub(makeFloat(test.x), makeFloat(test.y))
		if !alike(z, makeFloat(test.want)) {
			t.Errorf("%s - %s = %s; want %s", test.x, test.y, z.String(), test.want)
		}
	}

	if z := new(Float).Sub(makeFloat("2"), makeFloat("2")); !z.IsZero() || z.Signbit() {
		t.Errorf("2 - 2 = %s; want 0", z.String())
	}
}

func TestFloatMul(t *testing.T) {
	for _, test := range []struct {
		x, y, want string
	}{
		{"2", "3", "6"},
		{"-2", "3", "-6"},
		{"-2", "-3", "6"},
		{"1.5", "1.5", "2.25"},
		{"0", "5", "0"},
		{"-0", "5", "-0"},
		{"-0", "-5", "0"},
		{"+Inf", "2", "+Inf"},
		{"+Inf", "-2", "-Inf"},
		{"-Inf", "-Inf", "+Inf"},
		{"+Inf", "0", "NaN"},
		{"0", "-Inf", "NaN"},
		{"NaN", "2", "NaN"},
	} {
		z := new(Float).Mul(makeFloat(test.x), makeFloat(test.y))
		if !alike(z, makeFloat(test.want)) {
			t.Errorf("%s * %s = %s; want %s", test.x, test.y, z.String(), test.want)
		}
	}
}

func TestFloatQuo(t *testing.T) {
	for _, test := range []struct {
		x, y, want string
	}{
		{"6", "3", "2"},
		{"-6", "3", "-2"},
		{"1", "4", "0.25"},
		{"1", "0", "+Inf"},
		{"-1", "0", "-Inf"},
		{"1", "-0", "-Inf"},
		{"-1", "-0", "+Inf"},
		{"0", "0", "NaN"},
		{"0", "-0", "NaN"},
		{"+Inf", "+Inf", "NaN"},
		{"+Inf", "-Inf", "NaN"},
		{"+Inf", "2", "+Inf"},
		{"-Inf", "2", "-Inf"},
		{"2", "+Inf", "0"},
		{"-2", "+Inf", "-0"},
		{"2", "-Inf", "-0"},
		{"NaN", "2", "NaN"},
		{"2", "NaN", "NaN"},
	} {
		z := new(Float).Quo(makeFloat(test.x), makeFloat(test.y))
		if !alike(z, makeFloat(test.want)) {
			t.Errorf("%s / %s = %s; want %s", test.x, test.y, z.String(), test.want)
		}
	}
}

func TestFloatQuoExact(t *testing.T) {
	// quotients with terminating binary expansions are exact
	for _, test := range []struct {
		x, y, want string
		acc        Accuracy
	}{
		{"1", "2", "0.5", Exact},
		{"3", "8", "0.375", Exact},
		{"1", "3", "0.3333333333333333", Below},
	} {
		z := new(Float).SetPrec(53).Quo(makeFloat(test.x), makeFloat(test.y))
		if got := z.Text('g', -1); got != test.want {
			t.Errorf("%s / %s = %s; want %s", test.x, test.y, got, test.want)
		}
		if z.Acc() != test.acc {
			t.Errorf("%s / %s accuracy = %s; want %s", test.x, test.y, z.Acc(), test.acc)
		}
	}
}

func TestFloatRoundingModes(t *testing.T) {
	// 5 has three significant bits; rounding it to two bits lands on
	// either 4 or 6 depending on the mode.
	for _, test := range []struct {
		mode      RoundingMode
		pos, negv int64
	}{
		{ToNearestEven, 4, -4},
		{ToNearestAway, 6, -6},
		{ToZero, 4, -4},
		{AwayFromZero, 6, -6},
		{ToNegativeInf, 4, -6},
		{ToPositiveInf, 6, -4},
	} {
		z := makeFloat("5").SetMode(test.mode).SetPrec(2)
		if got, acc := z.Int64(); got != test.pos || acc != Exact {
			t.Errorf("5 rounded to 2 bits (%s) = %d; want %d", test.mode, got, test.pos)
		}
		z = makeFloat("-5").SetMode(test.mode).SetPrec(2)
		if got, acc := z.Int64(); got != test.negv || acc != Exact {
			t.Errorf("-5 rounded to 2 bits (%s) = %d; want %d", test.mode, got, test.negv)
		}
	}
}

func TestFloatAddFarOperands(t *testing.T) {
	// adding an operand too small to be seen at the target precision
	// must still steer directed rounding through the sticky bit
	one := makeFloat("1")
	tiny := makeFloat("0x1p-200")

	z := new(Float).SetPrec(53).Add(one, tiny)
	if z.Cmp(one) != 0 || z.Acc() != Below {
		t.Errorf("1 + 2**-200 = %s (%s); want 1 (Below)", z.Text('p', 0), z.Acc())
	}

	z = new(Float).SetPrec(53).SetMode(AwayFromZero).Add(one, tiny)
	want := makeFloat("0x1.0000000000001p0").SetPrec(53)
	if z.Cmp(want) != 0 || z.Acc() != Above {
		t.Errorf("1 + 2**-200 (AwayFromZero) = %s (%s); want %s (Above)",
			z.Text('p', 0), z.Acc(), want.Text('p', 0))
	}

	// same in subtraction: 1 - 2**-200 rounds to 1 to nearest, and to
	// the next representable value below 1 toward zero
	z = new(Float).SetPrec(53).Sub(one, tiny)
	if z.Cmp(one) != 0 || z.Acc() != Above {
		t.Errorf("1 - 2**-200 = %s (%s); want 1 (Above)", z.Text('p', 0), z.Acc())
	}
	z = new(Float).SetPrec(53).SetMode(ToZero).Sub(one, tiny)
	want = makeFloat("0x1.fffffffffffffp-1").SetPrec(53)
	if z.Cmp(want) != 0 || z.Acc() != Below {
		t.Errorf("1 - 2**-200 (ToZero) = %s (%s); want %s (Below)",
			z.Text('p', 0), z.Acc(), want.Text('p', 0))
	}
}

func TestFloatFloorCeilTrunc(t *testing.T) {
	for _, test := range []struct {
		x, floor, ceil, trunc string
	}{
		{"0", "0", "0", "0"},
		{"-0", "-0", "-0", "-0"},
		{"2", "2", "2", "2"},
		{"1.5", "1", "2", "1"},
		{"-1.5", "-2", "-1", "-1"},
		{"0.5", "0", "1", "0"},
		{"-0.5", "-1", "-0", "-0"},
		{"123.456", "123", "124", "123"},
		{"-123.456", "-124", "-123", "-123"},
		{"+Inf", "+Inf", "+Inf", "+Inf"},
		{"-Inf", "-Inf", "-Inf", "-Inf"},
		{"NaN", "NaN", "NaN", "NaN"},
	} {
		x := makeFloat(test.x)
		if z := new(Float).Floor(x); !alike(z, makeFloat(test.floor)) {
			t.Errorf("Floor(%s) = %s; want %s", test.x, z.String(), test.floor)
		}
		if z := new(Float).Ceil(x); !alike(z, makeFloat(test.ceil)) {
			t.Errorf("Ceil(%s) = %s; want %s", test.x, z.String(), test.ceil)
		}
		if z := new(Float).Trunc(x); !alike(z, makeFloat(test.trunc)) {
			t.Errorf("Trunc(%s) = %s; want %s", test.x, z.String(), test.trunc)
		}
	}
}

func TestFloatRelDiff(t *testing.T) {
	for _, test := range []struct {
		x, y, want string
	}{
		{"2", "1", "0.5"},
		{"1", "2", "1"},
		{"4", "3", "0.25"},
		{"1", "1", "0"},
		{"100", "110", "0.1"},
	} {
		z := new(Float).SetPrec(53).RelDiff(makeFloat(test.x), makeFloat(test.y))
		if got := z.String(); got != test.want {
			t.Errorf("RelDiff(%s, %s) = %s; want %s", test.x, test.y, got, test.want)
		}
	}
	if z := new(Float).RelDiff(makeFloat("NaN"), makeFloat("1")); !z.IsNaN() {
		t.Errorf("RelDiff(NaN, 1) = %s; want NaN", z.String())
	}
}

func TestFloatAliasing(t *testing.T) {
	// receivers may alias any operand
	x := makeFloat("3").SetPrec(53)
	x.Add(x, x)
	if got := x.int64(); got != 6 {
		t.Errorf("x.Add(x, x) = %d; want 6", got)
	}
	x.Mul(x, x)
	if got := x.int64(); got != 36 {
		t.Errorf("x.Mul(x, x) = %d; want 36", got)
	}
	x.Sub(x, x)
	if !x.IsZero() {
		t.Errorf("x.Sub(x, x) = %s; want 0", x.String())
	}
	y := makeFloat("7").SetPrec(53)
	y.Quo(y, y)
	if got := y.int64(); got != 1 {
		t.Errorf("y.Quo(y, y) = %d; want 1", got)
	}
}
