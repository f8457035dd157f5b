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
	"strings"
	"time"
)

// S15Fixed16 is a signed fixed-point number with 16 fractional bits.
// Two values are equal if and only if their encodings are equal.
type S15Fixed16 int32

// NewS15Fixed16 returns the number with the given encoding.
func NewS15Fixed16(raw int32) S15Fixed16 { return S15Fixed16(raw) }

// S15Fixed16FromParts combines a signed integer part and a fractional part
// (in units of 1/65536).
func S15Fixed16FromParts(integer int16, fractional uint16) S15Fixed16 {
	return S15Fixed16(int32(integer)<<16 | int32(fractional))
}

// S15Fixed16FromFloat returns the number closest to x.
// Values outside the representable range are clamped.
func S15Fixed16FromFloat(x float64) S15Fixed16 {
	return S15Fixed16(int32(roundClamp(x*65536, math.MinInt32, math.MaxInt32)))
}

// Raw returns the encoding of v.
func (v S15Fixed16) Raw() int32 { return int32(v) }

// IntegerPart returns the integer bits of v.  For negative values this is
// the floor of the number.
func (v S15Fixed16) IntegerPart() int16 { return int16(v >> 16) }

// FractionalPart returns the 16 fractional bits of v.
func (v S15Fixed16) FractionalPart() uint16 { return uint16(v) }

// Float64 returns the value of v.
func (v S15Fixed16) Float64() float64 { return float64(v) / 65536 }

// U16Fixed16 is an unsigned fixed-point number with 16 fractional bits.
type U16Fixed16 uint32

// NewU16Fixed16 returns the number with the given encoding.
func NewU16Fixed16(raw uint32) U16Fixed16 { return U16Fixed16(raw) }

// U16Fixed16FromParts combines an integer part and a fractional part
// (in units of 1/65536).
func U16Fixed16FromParts(integer, fractional uint16) U16Fixed16 {
	return U16Fixed16(uint32(integer)<<16 | uint32(fractional))
}

// U16Fixed16FromFloat returns the number closest to x.
// Values outside the representable range are clamped.
func U16Fixed16FromFloat(x float64) U16Fixed16 {
	return U16Fixed16(uint32(roundClamp(x*65536, 0, math.MaxUint32)))
}

// Raw returns the encoding of v.
func (v U16Fixed16) Raw() uint32 { return uint32(v) }

// IntegerPart returns the integer bits of v.
func (v U16Fixed16) IntegerPart() uint16 { return uint16(v >> 16) }

// FractionalPart returns the 16 fractional bits of v.
func (v U16Fixed16) FractionalPart() uint16 { return uint16(v) }

// Float64 returns the value of v.
func (v U16Fixed16) Float64() float64 { return float64(v) / 65536 }

// U1Fixed15 is an unsigned fixed-point number with one integer bit and 15
// fractional bits.
type U1Fixed15 uint16

// NewU1Fixed15 returns the number with the given encoding.
func NewU1Fixed15(raw uint16) U1Fixed15 { return U1Fixed15(raw) }

// U1Fixed15FromParts combines an integer part and a fractional part (in
// units of 1/32768).  Only the lowest bit of integer and the lowest 15 bits
// of fractional are used.
func U1Fixed15FromParts(integer uint8, fractional uint16) U1Fixed15 {
	return U1Fixed15(uint16(integer&1)<<15 | fractional&0x7FFF)
}

// U1Fixed15FromFloat returns the number closest to x.
// Values outside the representable range are clamped.
func U1Fixed15FromFloat(x float64) U1Fixed15 {
	return U1Fixed15(uint16(roundClamp(x*32768, 0, math.MaxUint16)))
}

// Raw returns the encoding of v.
func (v U1Fixed15) Raw() uint16 { return uint16(v) }

// IntegerPart returns the integer bit of v.
func (v U1Fixed15) IntegerPart() uint8 { return uint8(v >> 15) }

// FractionalPart returns the 15 fractional bits of v.
func (v U1Fixed15) FractionalPart() uint16 { return uint16(v) & 0x7FFF }

// Float64 returns the value of v.
func (v U1Fixed15) Float64() float64 { return float64(v) / 32768 }

// U8Fixed8 is an unsigned fixed-point number with 8 integer and 8
// fractional bits.  It is used for the gamma value of single-entry curves.
type U8Fixed8 uint16

// NewU8Fixed8 returns the number with the given encoding.
func NewU8Fixed8(raw uint16) U8Fixed8 { return U8Fixed8(raw) }

// U8Fixed8FromParts combines an integer part and a fractional part (in
// units of 1/256).
func U8Fixed8FromParts(integer, fractional uint8) U8Fixed8 {
	return U8Fixed8(uint16(integer)<<8 | uint16(fractional))
}

// U8Fixed8FromFloat returns the number closest to x.
// Values outside the representable range are clamped.
func U8Fixed8FromFloat(x float64) U8Fixed8 {
	return U8Fixed8(uint16(roundClamp(x*256, 0, math.MaxUint16)))
}

// Raw returns the encoding of v.
func (v U8Fixed8) Raw() uint16 { return uint16(v) }

// IntegerPart returns the integer bits of v.
func (v U8Fixed8) IntegerPart() uint8 { return uint8(v >> 8) }

// FractionalPart returns the fractional bits of v.
func (v U8Fixed8) FractionalPart() uint8 { return uint8(v) }

// Float64 returns the value of v.
func (v U8Fixed8) Float64() float64 { return float64(v) / 256 }

func roundClamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	x = math.Round(x)
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// XYZNumber is a CIE XYZ tristimulus triple.
type XYZNumber [3]S15Fixed16

// XYZFromFloats returns the XYZ number closest to (x, y, z).
func XYZFromFloats(x, y, z float64) XYZNumber {
	return XYZNumber{S15Fixed16FromFloat(x), S15Fixed16FromFloat(y), S15Fixed16FromFloat(z)}
}

func (v XYZNumber) X() S15Fixed16 { return v[0] }
func (v XYZNumber) Y() S15Fixed16 { return v[1] }
func (v XYZNumber) Z() S15Fixed16 { return v[2] }

// Float64s returns the three components as floating point values.
func (v XYZNumber) Float64s() [3]float64 {
	return [3]float64{v[0].Float64(), v[1].Float64(), v[2].Float64()}
}

// D50 is the PCS illuminant required in the profile header.
var D50 = XYZNumber{0x0000F6D6, 0x00010000, 0x0000D32D}

// PositionNumber locates a block of data relative to the start of the
// enclosing record.
type PositionNumber struct {
	Offset uint32
	Size   uint32
}

// DateTimeNumber is the 12-byte date and time encoding used in ICC
// profiles.  All values are in UTC.
type DateTimeNumber struct {
	Year   uint16
	Month  uint16 // 1 to 12
	Day    uint16 // 1 to 31
	Hour   uint16 // 0 to 23
	Minute uint16 // 0 to 59
	Second uint16 // 0 to 59
}

// DateTimeFromTime converts t to UTC and stores it as a DateTimeNumber.
// Fractional seconds are discarded.
func DateTimeFromTime(t time.Time) DateTimeNumber {
	if t.IsZero() {
		return DateTimeNumber{}
	}
	t = t.UTC()
	return DateTimeNumber{
		Year:   uint16(t.Year()),
		Month:  uint16(t.Month()),
		Day:    uint16(t.Day()),
		Hour:   uint16(t.Hour()),
		Minute: uint16(t.Minute()),
		Second: uint16(t.Second()),
	}
}

// Time returns d as a time.Time.  If the fields do not describe a
// plausible date, the zero time is returned.
func (d DateTimeNumber) Time() time.Time {
	if d.Year < 1970 || d.Year > 3000 ||
		d.Month < 1 || d.Month > 12 ||
		d.Day < 1 || d.Day > 31 ||
		d.Hour > 23 || d.Minute > 59 || d.Second > 61 {
		return time.Time{}
	}
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(d.Hour), int(d.Minute), int(d.Second), 0, time.UTC)
}

// ASCII7 is a 7-bit ASCII character, as used in textType records.
type ASCII7 byte

// ASCII7FromString converts s to a sequence of 7-bit characters.
// An error is returned if s contains a byte outside the range 1 to 127.
func ASCII7FromString(s string) ([]ASCII7, error) {
	res := make([]ASCII7, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 0 || c >= 0x80 {
			return nil, &InvalidValueError{Field: "text", Reason: "not a 7-bit ASCII character"}
		}
		res[i] = ASCII7(c)
	}
	return res, nil
}

// ASCII7String converts a sequence of 7-bit characters to a string.
func ASCII7String(cc []ASCII7) string {
	var b strings.Builder
	b.Grow(len(cc))
	for _, c := range cc {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// Response16Number is one measurement of a response curve: a device code
// together with the measured value.
type Response16Number struct {
	Device      uint16
	Measurement S15Fixed16
}

// checkASCII7 reports an error for a string which cannot be stored in a
// fixed-size NUL-terminated field of n bytes.
func checkASCII7(s string, n int, typ TypeSignature, field string) error {
	if len(s) > n-1 {
		return &InvalidValueError{Type: typ, Field: field, Reason: "too long"}
	}
	for i := 0; i < len(s); i++ {
		if s[i] == 0 || s[i] >= 0x80 {
			return &InvalidValueError{Type: typ, Field: field, Reason: "not 7-bit ASCII"}
		}
	}
	return nil
}
