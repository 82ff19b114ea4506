// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"encoding/binary"
	"math/big"
)

// Binary encoding of a Float. The encoding is versioned, self-
// describing and canonical: every value has exactly one valid encoding
// and the decoder rejects everything else.
//
//	flag     byte: bits 7..6 version, bits 3..2 form, bit 0 sign
//	prec     uvarint, all forms
//	exp      zigzag varint  \
//	mlen     uvarint         } finite form only
//	mantissa mlen bytes     /
//
// The mantissa bytes are the value bits most significant byte first,
// with trailing zero bytes stripped; normalization requires the high
// bit of the first byte to be set. A NaN has no sign.
const (
	codecVersion = 0

	flagVersionShift = 6
	flagFormShift    = 2
	flagSign         = 1 << 0
	flagReserved     = 0b0011_0010
)

// Encode returns the binary encoding of x. The precision, value and
// sign are encoded; the rounding mode and accuracy are not.
func (x *Float) Encode() []byte {
	b, _ := x.AppendBinary(make([]byte, 0, 16+len(x.mant)*_S))
	return b
}

// AppendBinary appends the binary encoding of x to b and returns the
// extended buffer. The error is always nil; the signature matches
// encoding.BinaryAppender.
func (x *Float) AppendBinary(b []byte) ([]byte, error) {
	if debugFloat {
		x.validate()
	}
	flag := byte(codecVersion<<flagVersionShift) | byte(x.form)<<flagFormShift
	if x.form != nan && x.neg {
		flag |= flagSign
	}
	b = append(b, flag)
	b = binary.AppendUvarint(b, uint64(x.prec))
	if x.form != finite {
		return b, nil
	}
	b = binary.AppendVarint(b, int64(x.exp))
	var m big.Int
	x.mant.toInt(&m)
	mb := m.Bytes()
	i := len(mb)
	for mb[i-1] == 0 {
		i--
	}
	b = binary.AppendUvarint(b, uint64(i))
	return append(b, mb[:i]...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x *Float) MarshalBinary() ([]byte, error) {
	return x.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The entire
// input must be consumed; errors belong to the ErrCorrupt class.
func (z *Float) UnmarshalBinary(data []byte) error {
	rest, err := z.decode(data)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return ErrCorrupt.New("%d trailing bytes", len(rest))
	}
	return nil
}

// DecodeFloat decodes a Float from the binary encoding produced by
// Encode. The entire input must be consumed; errors belong to the
// ErrCorrupt class.
func DecodeFloat(data []byte) (*Float, error) {
	z := new(Float)
	if err := z.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return z, nil
}

// decode sets z from the leading encoded Float in data and returns the
// remaining bytes. The rounding mode of z is left unchanged.
func (z *Float) decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrCorrupt.New("empty input")
	}
	flag := data[0]
	data = data[1:]
	if v := flag >> flagVersionShift; v != codecVersion {
		return nil, ErrCorrupt.New("unsupported encoding version %d", v)
	}
	if flag&flagReserved != 0 {
		return nil, ErrCorrupt.New("reserved flag bits set")
	}
	f := form(flag >> flagFormShift & 3)
	neg := flag&flagSign != 0
	if f == nan && neg {
		return nil, ErrCorrupt.New("signed NaN")
	}

	prec, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, ErrCorrupt.New("truncated precision")
	}
	data = data[n:]
	if prec > MaxPrec {
		return nil, ErrCorrupt.New("precision %d out of range", prec)
	}

	if f != finite {
		z.prec = uint32(prec)
		z.acc = Exact
		z.form = f
		z.neg = neg
		return data, nil
	}

	if prec < MinPrec {
		return nil, ErrCorrupt.New("precision %d below minimum", prec)
	}
	exp, n := binary.Varint(data)
	if n <= 0 {
		return nil, ErrCorrupt.New("truncated exponent")
	}
	data = data[n:]
	if exp < MinExp || exp > MaxExp {
		return nil, ErrCorrupt.New("exponent %d out of range", exp)
	}

	mlen, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, ErrCorrupt.New("truncated mantissa length")
	}
	data = data[n:]
	if mlen == 0 || mlen > (prec+7)/8 {
		return nil, ErrCorrupt.New("mantissa length %d inconsistent with precision %d", mlen, prec)
	}
	if uint64(len(data)) < mlen {
		return nil, ErrCorrupt.New("truncated mantissa")
	}
	mb := data[:mlen]
	data = data[mlen:]
	if mb[0]&0x80 == 0 {
		return nil, ErrCorrupt.New("denormalized mantissa")
	}
	if mb[len(mb)-1] == 0 {
		return nil, ErrCorrupt.New("mantissa has trailing zero byte")
	}

	var m big.Int
	m.SetBytes(mb)
	if 8*mlen-uint64(m.TrailingZeroBits()) > prec {
		return nil, ErrCorrupt.New("mantissa wider than precision")
	}

	z.prec = uint32(prec)
	z.setIntExp(neg, &m, exp-int64(8*mlen), false)
	return data, nil
}
