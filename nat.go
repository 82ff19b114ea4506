package mpf

import (
	"math/big"
	"math/bits"
)

const debugFloat = false

// A Word is a single limb of a mantissa.
type Word = big.Word

const (
	_W = bits.UintSize // word size in bits
	_S = _W / 8        // word size in bytes
	_M = ^Word(0)      // digit mask
)

// nat is the mantissa store: an unsigned integer x of the form
//
//   x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with _B = 2**_W, stored in a slice of length n with the least
// significant word first. A mantissa attached to a finite nonzero Float
// is normalized such that the msb of x[n-1] is set; low-order words may
// be zero (they pad the significand to the Float's precision).
type nat []Word

// make returns a nat of len n, drawing the backing array from the
// allocation cache when possible. The contents are not zeroed.
func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	return natAcquire(n)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// setWord sets z to the single word x, which must not be 0.
func (z nat) setWord(x Word) nat {
	z = z.make(1)
	z[0] = x
	return z
}

// bit returns the value of the i'th bit, with lsb == bit 0.
func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % _W) & 1)
}

// sticky reports whether any of the i least significant bits of x are
// set.
func (x nat) sticky(i uint) bool {
	j := i / _W
	if j >= uint(len(x)) {
		for _, w := range x {
			if w != 0 {
				return true
			}
		}
		return false
	}
	for _, w := range x[:j] {
		if w != 0 {
			return true
		}
	}
	return x[j]<<(_W-i%_W) != 0
}

// trailingZeroBits returns the number of zero bits below the least
// significant set bit of x. The result is 0 if x == 0.
func (x nat) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_W + uint(bits.TrailingZeros(uint(w)))
		}
	}
	return 0
}

// setInt sets z to the absolute value of x.
func (z nat) setInt(x *big.Int) nat {
	b := x.Bits()
	z = z.make(len(b))
	copy(z, b)
	return z
}

// toInt sets z to the integer formed by the words of x and returns z.
func (x nat) toInt(z *big.Int) *big.Int {
	return z.SetBits(append(make([]big.Word, 0, len(x)), x...))
}

// msb64 returns the top 64 bits of the normalized mantissa x.
func msb64(x nat) uint64 {
	i := len(x)
	if i == 0 {
		return 0
	}
	v := uint64(x[i-1])
	if _W == 32 {
		v <<= 32
		if i > 1 {
			v |= uint64(x[i-2])
		}
	}
	return v
}

// fnorm normalizes mantissa m by shifting it to the left until the msb
// of the most significant word is set, and returns the shift amount.
// m must not be empty and its most significant word must not be 0.
func fnorm(m nat) int64 {
	if debugFloat && (len(m) == 0 || m[len(m)-1] == 0) {
		panic("msw of mantissa is 0")
	}
	s := _W - uint(bits.Len(uint(m[len(m)-1])))
	if s > 0 {
		c := shlVU(m, m, s)
		if debugFloat && c != 0 {
			panic("nonzero carry in fnorm")
		}
	}
	return int64(s)
}

// shlVU sets z = x<<s for 0 <= s < _W and returns the carried-out word.
// z and x must have the same length; they may be the same slice.
func shlVU(z, x nat, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	n := len(z)
	ŝ := _W - s
	c = x[n-1] >> ŝ
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z = x>>s for 0 <= s < _W and returns the shifted-out word
// (aligned at the top).
func shrVU(z, x nat, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	n := len(z)
	ŝ := _W - s
	c = x[0] << ŝ
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[n-1] = x[n-1] >> s
	return
}

// addVW sets z = x + y and returns the final carry. z and x must have
// the same length.
func addVW(z, x nat, y Word) (c Word) {
	c = y
	for i := range z {
		s, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(s)
		c = Word(cc)
	}
	return
}
