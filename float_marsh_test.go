// Copyright 2025 The mpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"
)

func TestFloatGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, test := range []string{
		"0",
		"-0",
		"1",
		"-1.5",
		"123.456",
		"1e-1000",
		"+Inf",
		"-Inf",
		"NaN",
	} {
		for _, mode := range []RoundingMode{ToNearestEven, ToZero, AwayFromZero} {
			medium.Reset() // empty buffer for each test case (in case of failures)
			tx, _, err := ParseFloat(test, 0, 100, mode)
			if err != nil {
				t.Fatal(err)
			}
			if err := enc.Encode(tx); err != nil {
				t.Errorf("encoding of %s (%s) failed: %v", test, mode, err)
				continue
			}
			rx := new(Float)
			if err := dec.Decode(rx); err != nil {
				t.Errorf("decoding of %s (%s) failed: %v", test, mode, err)
				continue
			}
			if rx.Mode() != mode {
				t.Errorf("decoding of %s uses %s mode; want %s mode", test, rx.Mode(), mode)
			}
			if rx.Prec() != 100 {
				t.Errorf("decoding of %s gives precision %d; want 100", test, rx.Prec())
			}
			if !alike(rx, tx) {
				t.Errorf("transmission of %s failed: got %s want %s", test, rx.String(), tx.String())
			}
		}
	}
}

func TestFloatCorruptGob(t *testing.T) {
	x := makeFloat("123.456").SetPrec(53)
	b, err := x.GobEncode()
	if err != nil {
		t.Fatal(err)
	}
	// truncated streams must error out, not panic; an empty stream is
	// the gob encoding of the zero value and stays valid
	for i := 1; i < len(b); i++ {
		if err := new(Float).GobDecode(b[:i]); err == nil {
			t.Errorf("got no error decoding prefix of length %d", i)
		}
	}
}

func TestFloatJSONEncoding(t *testing.T) {
	for _, test := range []string{
		"0",
		"-0",
		"1",
		"-1.5",
		"123.456",
		"1e1000",
		"+Inf",
		"-Inf",
		"NaN",
	} {
		tx := makeFloat(test).SetPrec(100)
		b, err := json.Marshal(tx)
		if err != nil {
			t.Errorf("marshaling of %s failed: %v", test, err)
			continue
		}
		rx := new(Float).SetPrec(100)
		if err := json.Unmarshal(b, rx); err != nil {
			t.Errorf("unmarshaling of %s failed: %v", test, err)
			continue
		}
		if !alike(rx, tx) {
			t.Errorf("JSON transmission of %s failed: got %s want %s", test, rx.String(), tx.String())
		}
	}
}

func TestFloatUnmarshalTextError(t *testing.T) {
	if err := new(Float).UnmarshalText([]byte("not a number")); err == nil {
		t.Error("UnmarshalText accepted garbage")
	}
}
