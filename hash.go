package mpf

import (
	"encoding/binary"
	"math/big"

	"github.com/cespare/xxhash/v2"
)

// hash tags keep the digests of the value classes disjoint.
const (
	hashTagFinite = iota
	hashTagZero
	hashTagInf
	hashTagNaN
)

// Hash returns a 64-bit digest of the mathematical value of x.
// Mathematically equal values produce equal digests regardless of
// precision, rounding mode or accuracy; +0 and -0 hash equally, and
// every NaN hashes to the same digest. A Float holding an integer value
// hashes like the corresponding big.Int does under HashInt.
func (x *Float) Hash() uint64 {
	if debugFloat {
		x.validate()
	}
	switch x.form {
	case zero:
		return hashValue(hashTagZero, false, 0, nil)
	case inf:
		return hashValue(hashTagInf, x.neg, 0, nil)
	case nan:
		return hashValue(hashTagNaN, false, 0, nil)
	}
	var m big.Int
	x.mant.toInt(&m)
	if tz := m.TrailingZeroBits(); tz > 0 {
		m.Rsh(&m, tz)
	}
	return hashValue(hashTagFinite, x.neg, int64(x.exp), &m)
}

// HashInt returns the digest that a Float holding exactly the value of
// n would return from Hash. HashInt(0) equals the Hash of ±0.
func HashInt(n *big.Int) uint64 {
	if n.Sign() == 0 {
		return hashValue(hashTagZero, false, 0, nil)
	}
	var m big.Int
	m.Abs(n)
	exp := int64(m.BitLen())
	if tz := m.TrailingZeroBits(); tz > 0 {
		m.Rsh(&m, tz)
	}
	return hashValue(hashTagFinite, n.Sign() < 0, exp, &m)
}

// hashValue digests the canonical form tag, sign, exponent and minimal
// mantissa (trailing zero bits stripped, big-endian bytes).
func hashValue(tag byte, neg bool, exp int64, m *big.Int) uint64 {
	var hdr [10]byte
	hdr[0] = tag
	if neg {
		hdr[1] = 1
	}
	binary.LittleEndian.PutUint64(hdr[2:], uint64(exp))

	var d xxhash.Digest
	d.Reset()
	_, _ = d.Write(hdr[:])
	if m != nil {
		_, _ = d.Write(m.Bytes())
	}
	return d.Sum64()
}
