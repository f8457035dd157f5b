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
	"bytes"
	"encoding/binary"
	"math"
)

// reader is a bounds-checked big-endian cursor over the bytes of one record.
//
// The first failure is kept in err.  After a failure all reads return zero
// values, so that decoders can read a whole structure and check err once.
type reader struct {
	data []byte
	pos  int
	base int // position of data[0] within the enclosing record
	typ  TypeSignature
	err  error
}

func newReader(data []byte, typ TypeSignature) *reader {
	return &reader{data: data, typ: typ}
}

// sub returns a reader for data[start:end].  Errors of the sub-reader
// must be passed back with r.fail.
func (r *reader) sub(start, end int) *reader {
	if r.err != nil {
		return &reader{typ: r.typ, err: r.err}
	}
	if start < 0 || end < start || end > len(r.data) {
		r.err = &TruncatedRecordError{
			Type:   r.typ,
			Offset: r.base + start,
			Need:   uint64(max(end-start, 0)),
			Have:   max(len(r.data)-start, 0),
		}
		return &reader{typ: r.typ, err: r.err}
	}
	return &reader{data: r.data[start:end], base: r.base + start, typ: r.typ}
}

// span checks that size bytes at offset lie inside the data, starting no
// earlier than lo.  An offset outside [lo, len(r.data)] gives an
// [InvalidOffsetError]; an element which starts inside the data but
// extends past its end gives a [TruncatedRecordError].
func (r *reader) span(field string, offset, size, lo uint64) bool {
	if r.err != nil {
		return false
	}
	end := uint64(len(r.data))
	if offset < lo || offset > end {
		r.err = &InvalidOffsetError{Type: r.typ, Field: field, Offset: offset, Min: lo, Max: end}
		return false
	}
	if size > end-offset {
		r.err = &TruncatedRecordError{
			Type:   r.typ,
			Offset: r.base + int(offset),
			Need:   size,
			Have:   int(end - offset),
		}
		return false
	}
	return true
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

// need checks that n more bytes are available.
func (r *reader) need(n uint64) bool {
	if r.err != nil {
		return false
	}
	if n > uint64(r.remaining()) {
		r.err = &TruncatedRecordError{
			Type:   r.typ,
			Offset: r.base + r.pos,
			Need:   n,
			Have:   r.remaining(),
		}
		return false
	}
	return true
}

// needItems checks that count items of the given size are available.
// This is used before allocating slices for declared counts.
func (r *reader) needItems(count uint64, size int) bool {
	if r.err != nil {
		return false
	}
	avail := uint64(r.remaining())
	if size > 0 && count > avail/uint64(size) {
		need := count * uint64(size)
		if count > (1<<63)/uint64(size) {
			need = 1<<64 - 1
		}
		r.err = &TruncatedRecordError{
			Type:   r.typ,
			Offset: r.base + r.pos,
			Need:   need,
			Have:   r.remaining(),
		}
		return false
	}
	return true
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// seek moves the cursor to an absolute position within the record.
func (r *reader) seek(pos int) {
	if r.err != nil {
		return
	}
	if pos < 0 || pos > len(r.data) {
		r.err = &TruncatedRecordError{Type: r.typ, Offset: r.base + pos, Need: 0, Have: 0}
		return
	}
	r.pos = pos
}

func (r *reader) skip(n int) {
	if r.need(uint64(n)) {
		r.pos += n
	}
}

func (r *reader) u8() uint8 {
	if !r.need(1) {
		return 0
	}
	v := r.data[r.pos]
	r.pos++
	return v
}

func (r *reader) u16() uint16 {
	if !r.need(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v
}

func (r *reader) u32() uint32 {
	if !r.need(4) {
		return 0
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v
}

func (r *reader) u64() uint64 {
	if !r.need(8) {
		return 0
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v
}

func (r *reader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *reader) s15() S15Fixed16 {
	return S15Fixed16(int32(r.u32()))
}

func (r *reader) u16f16() U16Fixed16 {
	return U16Fixed16(r.u32())
}

func (r *reader) xyz() XYZNumber {
	return XYZNumber{r.s15(), r.s15(), r.s15()}
}

func (r *reader) dateTime() DateTimeNumber {
	return DateTimeNumber{
		Year:   r.u16(),
		Month:  r.u16(),
		Day:    r.u16(),
		Hour:   r.u16(),
		Minute: r.u16(),
		Second: r.u16(),
	}
}

// bytes returns the next n bytes.  The result shares memory with the
// record data.
func (r *reader) bytes(n int) []byte {
	if n < 0 || !r.need(uint64(n)) {
		return nil
	}
	v := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return v
}

// fixedASCII reads an n-byte NUL-padded 7-bit ASCII field.  The field
// must contain at least one NUL byte.
func (r *reader) fixedASCII(n int, field string) string {
	b := r.bytes(n)
	if b == nil {
		return ""
	}
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		r.fail(&InvalidValueError{Type: r.typ, Field: field, Reason: "not NUL-terminated"})
		return ""
	}
	b = b[:i]
	for _, c := range b {
		if c >= 0x80 {
			r.fail(&InvalidValueError{Type: r.typ, Field: field, Reason: "not 7-bit ASCII"})
			return ""
		}
	}
	return string(b)
}

// writer accumulates the big-endian encoding of a record.
type writer struct {
	buf []byte

	// canonical makes head write zero reserved fields.  This is used to
	// compare records while ignoring the reserved bytes.
	canonical bool
}

func (w *writer) len() int {
	return len(w.buf)
}

func (w *writer) head(t TypeSignature, reserved uint32) {
	if w.canonical {
		reserved = 0
	}
	w.u32(uint32(t))
	w.u32(reserved)
}

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) u16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

func (w *writer) u32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *writer) u64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

func (w *writer) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *writer) s15(v S15Fixed16) {
	w.u32(uint32(v))
}

func (w *writer) u16f16(v U16Fixed16) {
	w.u32(uint32(v))
}

func (w *writer) xyz(v XYZNumber) {
	w.s15(v[0])
	w.s15(v[1])
	w.s15(v[2])
}

func (w *writer) dateTime(d DateTimeNumber) {
	w.u16(d.Year)
	w.u16(d.Month)
	w.u16(d.Day)
	w.u16(d.Hour)
	w.u16(d.Minute)
	w.u16(d.Second)
}

func (w *writer) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *writer) zeros(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// pad4 appends zero bytes until the length is a multiple of four.
func (w *writer) pad4() {
	for len(w.buf)%4 != 0 {
		w.buf = append(w.buf, 0)
	}
}

// fixedASCII writes s into an n-byte NUL-padded field.  At most n-1 bytes
// of s are kept, so that the field is always NUL-terminated.
func (w *writer) fixedASCII(s string, n int) {
	if len(s) > n-1 {
		s = s[:n-1]
	}
	w.buf = append(w.buf, s...)
	w.zeros(n - len(s))
}

// patch32 overwrites the four bytes at pos.
func (w *writer) patch32(pos int, v uint32) {
	binary.BigEndian.PutUint32(w.buf[pos:], v)
}

func align4(n int) int {
	return (n + 3) &^ 3
}
