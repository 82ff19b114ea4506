// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"fmt"
	"testing"
)

func TestFloatSetString(t *testing.T) {
	for _, test := range []struct {
		s    string
		ok   bool
		want string
	}{
		{"0", true, "0"},
		{"-0", true, "-0"},
		{"+0", true, "0"},
		{"1.5", true, "1.5"},
		{"-1.5", true, "-1.5"},
		{"1e10", true, "1e+10"},
		{"1E10", true, "1e+10"},
		{"1e-10", true, "1e-10"},
		{"1.", true, "1"},
		{".5", true, "0.5"},
		{"0b101", true, "5"},
		{"0B101", true, "5"},
		{"0o17", true, "15"},
		{"0x10", true, "16"},
		{"0x1.8p1", true, "3"},
		{"0x1p-2", true, "0.25"},
		{"1p4", true, "16"},
		{"1@2", true, "100"},
		{"1_000_000", true, "1e+06"},

		{"", false, ""},
		{".", false, ""},
		{"+", false, ""},
		{"1e", false, ""},
		{"1e+", false, ""},
		{"1..2", false, ""},
		{"1.2.3", false, ""},
		{" 1", false, ""},
		{"1 ", false, ""},
		{"x", false, ""},
		{"0xg", false, ""},
	} {
		f, ok := new(Float).SetPrec(53).SetString(test.s)
		if ok != test.ok {
			t.Errorf("SetString(%q) ok = %v; want %v", test.s, ok, test.ok)
			continue
		}
		if !ok {
			if f != nil {
				t.Errorf("SetString(%q) returned non-nil on failure", test.s)
			}
			continue
		}
		if got := f.String(); got != test.want {
			t.Errorf("SetString(%q) = %s; want %s", test.s, got, test.want)
		}
	}
}

func TestFloatSetStringSeparators(t *testing.T) {
	// '_' separators are a base-0 convenience only, and must sit
	// between successive digits
	for _, test := range []struct {
		s    string
		base int
		ok   bool
	}{
		{"1_000", 0, true},
		{"0x_dead_beef", 0, true},
		{"1_000", 10, false},
		{"_1", 0, false},
		{"1_", 0, false},
		{"1__0", 0, false},
		{"1._5", 0, false},
	} {
		_, _, err := new(Float).SetPrec(53).Parse(test.s, test.base)
		if ok := err == nil; ok != test.ok {
			t.Errorf("Parse(%q, %d) error = %v; want ok = %v", test.s, test.base, err, test.ok)
		}
	}
}

func TestFloatParseBase(t *testing.T) {
	for _, test := range []struct {
		s     string
		base  int
		wantB int
		want  int64
	}{
		{"101", 2, 2, 5},
		{"77", 8, 8, 63},
		{"ff", 16, 16, 255},
		{"FF", 16, 16, 255},
		{"zz", 36, 36, 1295},
		{"z", 62, 62, 35},
		{"Z", 62, 62, 61},
		{"10", 62, 62, 62},
		{"0x10", 0, 16, 16},
		{"0b11", 0, 2, 3},
		{"0o17", 0, 8, 15},
		{"42", 0, 10, 42},

		// 'e' is an exponent marker only where it cannot be a digit
		{"1e2", 14, 14, 196},
		{"1e2", 16, 16, 0x1e2},

		// same for 'p', a digit from base 26 up
		{"101p3", 2, 2, 40},
		{"1p1", 26, 26, 1327},

		// '@' scales by the mantissa base in any base
		{"1@2", 10, 10, 100},
		{"1@2", 16, 16, 256},
	} {
		f, b, err := new(Float).SetPrec(100).Parse(test.s, test.base)
		if err != nil {
			t.Errorf("Parse(%q, %d): %v", test.s, test.base, err)
			continue
		}
		if b != test.wantB {
			t.Errorf("Parse(%q, %d) base = %d; want %d", test.s, test.base, b, test.wantB)
		}
		if got := f.int64(); got != test.want {
			t.Errorf("Parse(%q, %d) = %d; want %d", test.s, test.base, got, test.want)
		}
	}
}

func TestFloatParseBaseError(t *testing.T) {
	for _, base := range []int{-1, 1, 63, 100} {
		_, _, err := new(Float).Parse("1", base)
		if err == nil || !ErrUnsupportedBase.Has(err) {
			t.Errorf("Parse(1, %d) error = %v; want ErrUnsupportedBase", base, err)
		}
	}
	_, _, err := new(Float).Parse("zz", 10)
	if err == nil || !ErrInvalidLiteral.Has(err) {
		t.Errorf("Parse(zz, 10) error = %v; want ErrInvalidLiteral", err)
	}
}

func TestFloatParseSpecial(t *testing.T) {
	for _, test := range []struct {
		s    string
		base int
		want string
	}{
		{"inf", 0, "+Inf"},
		{"Inf", 0, "+Inf"},
		{"INFINITY", 0, "+Inf"},
		{"-inf", 0, "-Inf"},
		{"-Infinity", 10, "-Inf"},
		{"+inf", 10, "+Inf"},
		{"nan", 0, "NaN"},
		{"NaN", 10, "NaN"},
		{"-nan", 0, "NaN"},
	} {
		f, _, err := new(Float).Parse(test.s, test.base)
		if err != nil {
			t.Errorf("Parse(%q, %d): %v", test.s, test.base, err)
			continue
		}
		if got := f.String(); got != test.want {
			t.Errorf("Parse(%q, %d) = %s; want %s", test.s, test.base, got, test.want)
		}
	}

	// the special spellings are decimal only
	if _, _, err := new(Float).Parse("inf", 16); err == nil {
		t.Error("Parse(inf, 16) did not fail")
	}
}

func TestFloatParseHugeExponents(t *testing.T) {
	// exponents far outside the representable range saturate without
	// computing astronomic intermediate values
	f, _, err := new(Float).SetPrec(53).Parse("1e1000000000000", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsInf() || f.Signbit() {
		t.Errorf("1e1000000000000 = %s; want +Inf", f.String())
	}
	if f.Acc() != Below {
		t.Errorf("overflow accuracy = %s; want Below", f.Acc())
	}

	f, _, err = new(Float).SetPrec(53).Parse("-1e-1000000000000", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsZero() || !f.Signbit() {
		t.Errorf("-1e-1000000000000 = %s; want -0", f.String())
	}
	if f.Acc() != Above {
		t.Errorf("underflow accuracy = %s; want Above", f.Acc())
	}
}

func TestFloatScanner(t *testing.T) {
	var x, y Float
	n, err := fmt.Sscan("1.5e4 -0x20", &x, &y)
	if err != nil || n != 2 {
		t.Fatalf("Sscan: n = %d, err = %v", n, err)
	}
	if got := x.int64(); got != 15000 {
		t.Errorf("scanned %d; want 15000", got)
	}
	if got := y.int64(); got != -32 {
		t.Errorf("scanned %d; want -32", got)
	}
}

func TestFloatTextRoundTrip(t *testing.T) {
	for _, s := range []string{
		"0",
		"-0",
		"1",
		"0.1",
		"-0.1",
		"123.456",
		"-912.579",
		"3.141592653589793",
		"1e100",
		"1e-100",
		"0x1.fffffffffffffp1023",
		"+Inf",
		"-Inf",
		"NaN",
	} {
		for _, prec := range []uint{24, 53, 100} {
			x, _, err := ParseFloat(s, 0, prec, ToNearestEven)
			if err != nil {
				t.Fatal(err)
			}
			out := x.Text('g', -1)
			y, _, err := ParseFloat(out, 0, prec, ToNearestEven)
			if err != nil {
				t.Fatalf("round-trip parse of %q (from %q at prec %d): %v", out, s, prec, err)
			}
			if !alike(x, y) {
				t.Errorf("%q at prec %d: %s does not parse back to the same value", s, prec, out)
			}
		}
	}
}
