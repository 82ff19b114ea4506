// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math/big"
	"testing"
)

func TestFloatHashPrecisionIndependent(t *testing.T) {
	for _, s := range []string{"1.5", "-123.456", "0.25", "1e100", "-0x1p-500"} {
		ref := makeFloat(s).SetPrec(1000).Hash()
		for _, prec := range []uint{24, 53, 100} {
			x := makeFloat(s).SetPrec(1000).SetPrec(prec).SetPrec(1000)
			// only compare when the rounding kept the value intact
			if x.Cmp(makeFloat(s).SetPrec(1000)) != 0 {
				continue
			}
			if got := x.Hash(); got != ref {
				t.Errorf("%s: hash at prec %d = %#x; want %#x", s, prec, got, ref)
			}
		}
	}

	// directly: same value stored at different precisions
	a := makeFloat("1.5").SetPrec(24)
	b := makeFloat("1.5").SetPrec(1000)
	if a.Hash() != b.Hash() {
		t.Error("1.5 hashes differently at 24 and 1000 bits")
	}
}

func TestFloatHashIgnoresModeAndAcc(t *testing.T) {
	a := makeFloat("123.456").SetPrec(53)
	b := makeFloat("123.456").SetPrec(53).SetMode(ToZero)
	b.Add(b, makeFloat("0")) // sets a fresh accuracy
	if a.Cmp(b) == 0 && a.Hash() != b.Hash() {
		t.Error("hash depends on rounding mode or accuracy")
	}
}

func TestFloatHashInt(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 23, -23, 1 << 40, -(1 << 40), 123456789} {
		x := new(Float).SetPrec(100).SetInt64(n)
		if got, want := x.Hash(), HashInt(big.NewInt(n)); got != want {
			t.Errorf("Hash(%d) = %#x; HashInt(%d) = %#x", n, got, n, want)
		}
	}

	// a value needing more than one word
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	huge.Add(huge, big.NewInt(12345))
	x := new(Float).SetPrec(200).SetInt(huge)
	if x.Hash() != HashInt(huge) {
		t.Error("Hash and HashInt disagree on 2**100 + 12345")
	}
}

func TestFloatHashSpecial(t *testing.T) {
	zero := makeFloat("0")
	negZero := makeFloat("-0")
	if zero.Hash() != negZero.Hash() {
		t.Error("0 and -0 hash differently")
	}
	if zero.Hash() != HashInt(big.NewInt(0)) {
		t.Error("0 and HashInt(0) hash differently")
	}

	if makeFloat("NaN").Hash() != makeFloat("NaN").Hash() {
		t.Error("NaN hash is not stable")
	}

	// distinct value classes give distinct digests
	digests := map[uint64]string{}
	for _, s := range []string{"0", "1", "-1", "2", "0.5", "+Inf", "-Inf", "NaN"} {
		h := makeFloat(s).Hash()
		if prev, ok := digests[h]; ok {
			t.Errorf("%s and %s collide on %#x", s, prev, h)
		}
		digests[h] = s
	}
}
