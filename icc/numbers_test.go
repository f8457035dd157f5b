// seehuhn.de/go/achroma - ICC profile data model
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package icc

import (
	"math"
	"testing"
	"time"
)

func TestS15Fixed16(t *testing.T) {
	cases := []struct {
		integer    int16
		fractional uint16
		raw        int32
		value      float64
	}{
		{0, 0, 0, 0},
		{1, 0, 0x10000, 1},
		{-1, 0x8000, -0x8000, -0.5},
		{-32768, 0, math.MinInt32, -32768},
		{32767, 0xFFFF, math.MaxInt32, 32767 + 65535.0/65536},
	}
	for _, c := range cases {
		v := S15Fixed16FromParts(c.integer, c.fractional)
		if v.Raw() != c.raw {
			t.Errorf("FromParts(%d, %d).Raw() = %d, want %d", c.integer, c.fractional, v.Raw(), c.raw)
		}
		if v.Float64() != c.value {
			t.Errorf("FromParts(%d, %d) = %g, want %g", c.integer, c.fractional, v.Float64(), c.value)
		}
		if v.IntegerPart() != c.integer || v.FractionalPart() != c.fractional {
			t.Errorf("parts of %g: %d %d", c.value, v.IntegerPart(), v.FractionalPart())
		}
		if S15Fixed16FromFloat(c.value) != v {
			t.Errorf("FromFloat(%g) = %d, want %d", c.value, S15Fixed16FromFloat(c.value), v)
		}
	}

	if got := S15Fixed16FromFloat(1e10); got.Raw() != math.MaxInt32 {
		t.Errorf("large values are not clamped: %d", got)
	}
	if got := S15Fixed16FromFloat(-1e10); got.Raw() != math.MinInt32 {
		t.Errorf("small values are not clamped: %d", got)
	}
	if got := S15Fixed16FromFloat(math.NaN()); got != 0 {
		t.Errorf("NaN converted to %d", got)
	}
}

func TestUnsignedFixed(t *testing.T) {
	if v := U16Fixed16FromParts(0xFFFF, 0xFFFF); v.Raw() != 0xFFFFFFFF || v.Float64() != 65535+65535.0/65536 {
		t.Errorf("U16Fixed16 maximum: %d %g", v.Raw(), v.Float64())
	}
	if v := U16Fixed16FromFloat(-1); v != 0 {
		t.Errorf("U16Fixed16FromFloat(-1) = %d", v)
	}

	if v := U1Fixed15FromParts(1, 0x7FFF); v.Raw() != 0xFFFF || v.IntegerPart() != 1 || v.FractionalPart() != 0x7FFF {
		t.Errorf("U1Fixed15 maximum: %d", v.Raw())
	}
	if v := U1Fixed15FromFloat(0.5); v.Raw() != 0x4000 {
		t.Errorf("U1Fixed15FromFloat(0.5) = %d", v.Raw())
	}
	if v := U1Fixed15FromFloat(3); v.Raw() != 0xFFFF {
		t.Errorf("U1Fixed15FromFloat(3) = %d", v.Raw())
	}

	if v := U8Fixed8FromFloat(2.2); v.Raw() != 0x0233 || v != U8Fixed8FromParts(2, 0x33) {
		t.Errorf("U8Fixed8FromFloat(2.2) = 0x%04X", v.Raw())
	}
	if v := U8Fixed8FromParts(0xFF, 0xFF); v.Float64() != 255+255.0/256 {
		t.Errorf("U8Fixed8 maximum: %g", v.Float64())
	}
}

func TestDateTime(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2020, 1, 2, 6, 5, 6, 999, loc)
	d := DateTimeFromTime(in)
	want := DateTimeNumber{Year: 2020, Month: 1, Day: 2, Hour: 4, Minute: 5, Second: 6}
	if d != want {
		t.Fatalf("got %+v, want %+v", d, want)
	}
	got := d.Time().String()
	if got != "2020-01-02 04:05:06 +0000 UTC" {
		t.Errorf("got %q", got)
	}

	if !(DateTimeNumber{}).Time().IsZero() {
		t.Error("zero DateTimeNumber does not give the zero time")
	}
	if !(DateTimeNumber{Year: 2020, Month: 13, Day: 1}).Time().IsZero() {
		t.Error("invalid month accepted")
	}
	if DateTimeFromTime(time.Time{}) != (DateTimeNumber{}) {
		t.Error("zero time not mapped to zero DateTimeNumber")
	}
}

func TestASCII7(t *testing.T) {
	cc, err := ASCII7FromString("Hello")
	if err != nil {
		t.Fatal(err)
	}
	if s := ASCII7String(cc); s != "Hello" {
		t.Errorf("got %q", s)
	}
	for _, bad := range []string{"\x00", "é", "a\x80"} {
		if _, err := ASCII7FromString(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestSignature(t *testing.T) {
	s, err := SignatureFromString("acsp")
	if err != nil {
		t.Fatal(err)
	}
	if s != fileSignature {
		t.Errorf("got 0x%08X", uint32(s))
	}
	if s.String() != "acsp" || s.Bytes() != [4]byte{'a', 'c', 's', 'p'} {
		t.Errorf("unexpected representation %q %v", s.String(), s.Bytes())
	}
	if got := Signature(0x01020304).String(); got != "0x01020304" {
		t.Errorf("got %q", got)
	}
	for _, bad := range []string{"abc", "abcde", "ab\x00c"} {
		if _, err := SignatureFromString(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}

	if RedTRCTag.String() != "rTRC" || RedTRCTag.Name() != "redTRC" {
		t.Errorf("unexpected tag names %q %q", RedTRCTag.String(), RedTRCTag.Name())
	}
	if TagSignature(0x70726976).Name() != "" {
		t.Error("private tag has a name")
	}
}
