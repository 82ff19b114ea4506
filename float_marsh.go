// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"encoding"
	"fmt"
)

var _ encoding.TextMarshaler = (*Float)(nil)
var _ encoding.TextUnmarshaler = (*Float)(nil)

// GobEncode implements the gob.GobEncoder interface.
// The Float value and all its attributes (precision,
// rounding mode, accuracy) are marshaled.
func (x *Float) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	b, err := x.AppendBinary(nil)
	if err != nil {
		return nil, err
	}
	return append(b, byte(x.mode)<<2|byte(x.acc+1)), nil
}

// GobDecode implements the gob.GobDecoder interface.
// The result is rounded per the precision and rounding mode of
// z unless z's precision is 0, in which case z is set exactly
// to the decoded value.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Float{}
		return nil
	}
	oldPrec := z.prec
	oldMode := z.mode

	rest, err := z.decode(buf)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return ErrCorrupt.New("gob: %d trailing bytes", len(rest))
	}
	ma := rest[0]
	if acc := ma & 3; acc > 2 {
		return ErrCorrupt.New("gob: invalid accuracy")
	}
	mode := RoundingMode(ma >> 2)
	if mode > ToPositiveInf {
		return ErrCorrupt.New("gob: invalid rounding mode %d", mode)
	}
	z.mode = mode
	z.acc = Accuracy(ma&3) - 1

	if oldPrec != 0 {
		z.mode = oldMode
		z.SetPrec(uint(oldPrec))
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only the Float value is marshaled (in full precision), other
// attributes such as precision or accuracy are ignored.
func (x *Float) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The result is rounded per the precision and rounding mode of z.
// If z's precision is 0, it is changed to DefaultPrec before rounding
// takes effect.
func (z *Float) UnmarshalText(text []byte) error {
	_, _, err := z.Parse(string(text), 0)
	if err != nil {
		err = fmt.Errorf("cannot unmarshal %q into a *mpf.Float (%w)", text, err)
	}
	return err
}
