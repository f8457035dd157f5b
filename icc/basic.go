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
	"fmt"
)

// checkBodySize reports an error if the record body does not consist of
// whole elements of the given size.
func checkBodySize(r *reader, size int) int {
	n := r.remaining()
	if n%size != 0 {
		r.fail(&InvalidValueError{Type: r.typ, Field: "data size",
			Reason: fmt.Sprintf("%d bytes is not a multiple of %d", n, size)})
		return 0
	}
	return n / size
}

// XYZ is an XYZType record ('XYZ '), holding one or more XYZ values.
type XYZ struct {
	recordHead
	Values []XYZNumber
}

func (x *XYZ) TypeSignature() TypeSignature { return XYZType }

func decodeXYZ(r *reader, h recordHead) Record {
	n := checkBodySize(r, 12)
	values := make([]XYZNumber, n)
	for i := range values {
		values[i] = r.xyz()
	}
	return &XYZ{recordHead: h, Values: values}
}

func (x *XYZ) encode(w *writer) {
	w.head(XYZType, x.reserved)
	for _, v := range x.Values {
		w.xyz(v)
	}
}

// S15Fixed16Array is an s15Fixed16ArrayType record ('sf32').
type S15Fixed16Array struct {
	recordHead
	Values []S15Fixed16
}

func (a *S15Fixed16Array) TypeSignature() TypeSignature { return S15Fixed16ArrayType }

func decodeS15Fixed16Array(r *reader, h recordHead) Record {
	values := make([]S15Fixed16, checkBodySize(r, 4))
	for i := range values {
		values[i] = r.s15()
	}
	return &S15Fixed16Array{recordHead: h, Values: values}
}

func (a *S15Fixed16Array) encode(w *writer) {
	w.head(S15Fixed16ArrayType, a.reserved)
	for _, v := range a.Values {
		w.s15(v)
	}
}

// U16Fixed16Array is a u16Fixed16ArrayType record ('uf32').
type U16Fixed16Array struct {
	recordHead
	Values []U16Fixed16
}

func (a *U16Fixed16Array) TypeSignature() TypeSignature { return U16Fixed16ArrayType }

func decodeU16Fixed16Array(r *reader, h recordHead) Record {
	values := make([]U16Fixed16, checkBodySize(r, 4))
	for i := range values {
		values[i] = r.u16f16()
	}
	return &U16Fixed16Array{recordHead: h, Values: values}
}

func (a *U16Fixed16Array) encode(w *writer) {
	w.head(U16Fixed16ArrayType, a.reserved)
	for _, v := range a.Values {
		w.u16f16(v)
	}
}

// UInt8Array is a uInt8ArrayType record ('ui08').
type UInt8Array struct {
	recordHead
	Values []uint8
}

func (a *UInt8Array) TypeSignature() TypeSignature { return UInt8ArrayType }

func decodeUInt8Array(r *reader, h recordHead) Record {
	b := r.bytes(r.remaining())
	values := make([]uint8, len(b))
	copy(values, b)
	return &UInt8Array{recordHead: h, Values: values}
}

func (a *UInt8Array) encode(w *writer) {
	w.head(UInt8ArrayType, a.reserved)
	w.bytes(a.Values)
}

// UInt16Array is a uInt16ArrayType record ('ui16').
type UInt16Array struct {
	recordHead
	Values []uint16
}

func (a *UInt16Array) TypeSignature() TypeSignature { return UInt16ArrayType }

func decodeUInt16Array(r *reader, h recordHead) Record {
	values := make([]uint16, checkBodySize(r, 2))
	for i := range values {
		values[i] = r.u16()
	}
	return &UInt16Array{recordHead: h, Values: values}
}

func (a *UInt16Array) encode(w *writer) {
	w.head(UInt16ArrayType, a.reserved)
	for _, v := range a.Values {
		w.u16(v)
	}
}

// UInt32Array is a uInt32ArrayType record ('ui32').
type UInt32Array struct {
	recordHead
	Values []uint32
}

func (a *UInt32Array) TypeSignature() TypeSignature { return UInt32ArrayType }

func decodeUInt32Array(r *reader, h recordHead) Record {
	values := make([]uint32, checkBodySize(r, 4))
	for i := range values {
		values[i] = r.u32()
	}
	return &UInt32Array{recordHead: h, Values: values}
}

func (a *UInt32Array) encode(w *writer) {
	w.head(UInt32ArrayType, a.reserved)
	for _, v := range a.Values {
		w.u32(v)
	}
}

// UInt64Array is a uInt64ArrayType record ('ui64').
type UInt64Array struct {
	recordHead
	Values []uint64
}

func (a *UInt64Array) TypeSignature() TypeSignature { return UInt64ArrayType }

func decodeUInt64Array(r *reader, h recordHead) Record {
	values := make([]uint64, checkBodySize(r, 8))
	for i := range values {
		values[i] = r.u64()
	}
	return &UInt64Array{recordHead: h, Values: values}
}

func (a *UInt64Array) encode(w *writer) {
	w.head(UInt64ArrayType, a.reserved)
	for _, v := range a.Values {
		w.u64(v)
	}
}

// SignatureRecord is a signatureType record ('sig ').  It is used for the
// 'tech', 'ciis', 'rig0' and 'rig2' tags; use [TechnologyFromCode] or
// [ImageStateFromCode] to interpret the value.
type SignatureRecord struct {
	recordHead
	Signature Signature
}

func (s *SignatureRecord) TypeSignature() TypeSignature { return SignatureType }

func decodeSignature(r *reader, h recordHead) Record {
	sig := Signature(r.u32())
	return &SignatureRecord{recordHead: h, Signature: sig}
}

func (s *SignatureRecord) encode(w *writer) {
	w.head(SignatureType, s.reserved)
	w.u32(uint32(s.Signature))
}

// DateTime is a dateTimeType record ('dtim').
type DateTime struct {
	recordHead
	Value DateTimeNumber
}

func (d *DateTime) TypeSignature() TypeSignature { return DateTimeType }

func decodeDateTime(r *reader, h recordHead) Record {
	return &DateTime{recordHead: h, Value: r.dateTime()}
}

func (d *DateTime) encode(w *writer) {
	w.head(DateTimeType, d.reserved)
	w.dateTime(d.Value)
}

// Data is a dataType record ('data'), holding either ASCII text or binary
// data.
type Data struct {
	recordHead
	Binary bool
	Bytes  []byte
}

func (d *Data) TypeSignature() TypeSignature { return DataType }

func decodeData(r *reader, h recordHead) Record {
	flag := r.u32()
	if r.err == nil && flag > 1 {
		r.fail(&InvalidValueError{Type: DataType, Field: "data flag",
			Reason: fmt.Sprintf("0x%08X is neither ASCII (0) nor binary (1)", flag)})
	}
	b := bytes.Clone(r.bytes(r.remaining()))
	return &Data{recordHead: h, Binary: flag == 1, Bytes: b}
}

func (d *Data) encode(w *writer) {
	w.head(DataType, d.reserved)
	if d.Binary {
		w.u32(1)
	} else {
		w.u32(0)
	}
	w.bytes(d.Bytes)
}

// CICP is a cicpType record ('cicp'), holding the coding-independent code
// points of ITU-T H.273 for video signal type identification.
type CICP struct {
	recordHead
	ColorPrimaries          uint8
	TransferCharacteristics uint8
	MatrixCoefficients      uint8
	VideoFullRange          bool
}

func (c *CICP) TypeSignature() TypeSignature { return CICPType }

func decodeCICP(r *reader, h recordHead) Record {
	c := &CICP{
		recordHead:              h,
		ColorPrimaries:          r.u8(),
		TransferCharacteristics: r.u8(),
		MatrixCoefficients:      r.u8(),
	}
	flag := r.u8()
	if r.err == nil && flag > 1 {
		r.fail(&InvalidValueError{Type: CICPType, Field: "video full range flag",
			Reason: fmt.Sprintf("%d is not 0 or 1", flag)})
	}
	c.VideoFullRange = flag == 1
	return c
}

func (c *CICP) encode(w *writer) {
	w.head(CICPType, c.reserved)
	w.u8(c.ColorPrimaries)
	w.u8(c.TransferCharacteristics)
	w.u8(c.MatrixCoefficients)
	if c.VideoFullRange {
		w.u8(1)
	} else {
		w.u8(0)
	}
}
