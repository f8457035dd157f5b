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
)

// These are the type signatures of the tagged data records defined in
// ICC.1:2022, section 10, together with the version 2 'desc' type.
const (
	ChromaticityType              TypeSignature = 0x6368726D // "chrm"
	CICPType                      TypeSignature = 0x63696370 // "cicp"
	ColorantOrderType             TypeSignature = 0x636C726F // "clro"
	ColorantTableType             TypeSignature = 0x636C7274 // "clrt"
	CurveType                     TypeSignature = 0x63757276 // "curv"
	DataType                      TypeSignature = 0x64617461 // "data"
	DateTimeType                  TypeSignature = 0x6474696D // "dtim"
	Lut16Type                     TypeSignature = 0x6D667432 // "mft2"
	Lut8Type                      TypeSignature = 0x6D667431 // "mft1"
	LutAToBType                   TypeSignature = 0x6D414220 // "mAB "
	LutBToAType                   TypeSignature = 0x6D424120 // "mBA "
	MeasurementType               TypeSignature = 0x6D656173 // "meas"
	MultiLocalizedUnicodeType     TypeSignature = 0x6D6C7563 // "mluc"
	MultiProcessElementsType      TypeSignature = 0x6D706574 // "mpet"
	NamedColor2Type               TypeSignature = 0x6E636C32 // "ncl2"
	ParametricCurveType           TypeSignature = 0x70617261 // "para"
	ProfileSequenceDescType       TypeSignature = 0x70736571 // "pseq"
	ProfileSequenceIdentifierType TypeSignature = 0x70736964 // "psid"
	ResponseCurveSet16Type        TypeSignature = 0x72637332 // "rcs2"
	S15Fixed16ArrayType           TypeSignature = 0x73663332 // "sf32"
	SignatureType                 TypeSignature = 0x73696720 // "sig "
	TextType                      TypeSignature = 0x74657874 // "text"
	TextDescriptionType           TypeSignature = 0x64657363 // "desc"
	U16Fixed16ArrayType           TypeSignature = 0x75663332 // "uf32"
	UInt16ArrayType               TypeSignature = 0x75693136 // "ui16"
	UInt32ArrayType               TypeSignature = 0x75693332 // "ui32"
	UInt64ArrayType               TypeSignature = 0x75693634 // "ui64"
	UInt8ArrayType                TypeSignature = 0x75693038 // "ui08"
	ViewingConditionsType         TypeSignature = 0x76696577 // "view"
	XYZType                       TypeSignature = 0x58595A20 // "XYZ "

	// processing elements, only found inside 'mpet' records
	CurveSetElementType TypeSignature = 0x63767374 // "cvst"
	SegmentedCurveType  TypeSignature = 0x63757266 // "curf"
	FormulaSegmentType  TypeSignature = 0x70617266 // "parf"
	SampledSegmentType  TypeSignature = 0x73616D66 // "samf"
	MatrixElementType   TypeSignature = 0x6D617466 // "matf"
	CLUTElementType     TypeSignature = 0x636C7574 // "clut"
	BeginACSElementType TypeSignature = 0x62414353 // "bACS"
	EndACSElementType   TypeSignature = 0x65414353 // "eACS"
)

// Record is a tagged data record: the value stored under a tag in an ICC
// profile.  Every record starts with its four-byte type signature and four
// reserved bytes.
//
// The set of implementations is closed; unknown types are represented by
// [RawRecord].
type Record interface {
	TypeSignature() TypeSignature

	// Reserved returns the reserved bytes 4 to 7 of the record.  These are
	// zero for records constructed in memory and are preserved for
	// records read from a profile.
	Reserved() uint32

	encode(w *writer)
}

// validator is implemented by records with invariants which are not
// expressed by their Go types.  Records returned by the constructors and
// by the decoders of this package are always valid, but zero values may
// not be.
type validator interface {
	valid() error
}

// checkValid returns an error if rec would not encode to a decodable
// record.
func checkValid(rec Record) error {
	if v, ok := rec.(validator); ok {
		return v.valid()
	}
	return nil
}

type recordHead struct {
	reserved uint32
}

func (h recordHead) Reserved() uint32 { return h.reserved }

type decodeFunc func(r *reader, h recordHead) Record

// recordDecoders is filled in by init, since some decoders call readRecord
// for nested records.
var recordDecoders map[TypeSignature]decodeFunc

func init() {
	recordDecoders = map[TypeSignature]decodeFunc{
		ChromaticityType:              decodeChromaticity,
		CICPType:                      decodeCICP,
		ColorantOrderType:             decodeColorantOrder,
		ColorantTableType:             decodeColorantTable,
		CurveType:                     decodeCurve,
		DataType:                      decodeData,
		DateTimeType:                  decodeDateTime,
		Lut16Type:                     decodeLut16,
		Lut8Type:                      decodeLut8,
		LutAToBType:                   decodeLutAToB,
		LutBToAType:                   decodeLutBToA,
		MeasurementType:               decodeMeasurement,
		MultiLocalizedUnicodeType:     decodeMLUC,
		MultiProcessElementsType:      decodeMPET,
		NamedColor2Type:               decodeNamedColor2,
		ParametricCurveType:           decodeParametricCurve,
		ProfileSequenceDescType:       decodeProfileSequenceDesc,
		ProfileSequenceIdentifierType: decodeProfileSequenceIdentifier,
		ResponseCurveSet16Type:        decodeResponseCurveSet16,
		S15Fixed16ArrayType:           decodeS15Fixed16Array,
		SignatureType:                 decodeSignature,
		TextType:                      decodeText,
		TextDescriptionType:           decodeTextDescription,
		U16Fixed16ArrayType:           decodeU16Fixed16Array,
		UInt16ArrayType:               decodeUInt16Array,
		UInt32ArrayType:               decodeUInt32Array,
		UInt64ArrayType:               decodeUInt64Array,
		UInt8ArrayType:                decodeUInt8Array,
		ViewingConditionsType:         decodeViewingConditions,
		XYZType:                       decodeXYZ,
	}
}

// DecodeRecord decodes a single tagged data record.  Records of unknown
// type are returned as [*RawRecord].
//
// The returned record does not share memory with data.
func DecodeRecord(data []byte) (Record, error) {
	r := newReader(data, 0)
	rec := readRecord(r)
	if r.err != nil {
		return nil, r.err
	}
	return rec, nil
}

// readRecord decodes the record which starts at the beginning of r.data.
// On return, r.pos is the end of the data used by the record.
func readRecord(r *reader) Record {
	if len(r.data) >= 4 {
		r.typ = TypeSignature(uint32(r.data[0])<<24 | uint32(r.data[1])<<16 |
			uint32(r.data[2])<<8 | uint32(r.data[3]))
	}
	if !r.need(8) {
		return nil
	}
	r.skip(4)
	h := recordHead{reserved: r.u32()}
	dec, ok := recordDecoders[r.typ]
	if !ok {
		return decodeRaw(r, h)
	}
	rec := dec(r, h)
	if r.err != nil {
		return nil
	}
	return rec
}

// readNested decodes a record embedded at position start of r.  It returns
// the record and the position just after its data.
func readNested(r *reader, start int, allowed ...TypeSignature) (Record, int) {
	sub := r.sub(start, len(r.data))
	rec := readRecord(sub)
	if sub.err != nil {
		r.fail(sub.err)
		return nil, start
	}
	if len(allowed) > 0 && !containsType(allowed, rec.TypeSignature()) {
		r.fail(&UnexpectedTypeError{Want: allowed, Got: rec.TypeSignature()})
		return nil, start
	}
	return rec, start + sub.pos
}

func containsType(list []TypeSignature, t TypeSignature) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}

// EncodeRecord returns the binary form of a record.
//
// Records must be obtained from a constructor or a decoder, or be of a
// type with only exported fields.  Zero values of other record types,
// for example &Lut8{}, encode to data which cannot be decoded; such
// records are rejected by [Profile.SetTag] and [Profile.ReplaceTag].
func EncodeRecord(rec Record) []byte {
	w := &writer{}
	rec.encode(w)
	return w.buf
}

// EqualRecords reports whether two records have the same content.
// Reserved fields are ignored.
func EqualRecords(a, b Record) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.TypeSignature() != b.TypeSignature() {
		return false
	}
	wa := &writer{canonical: true}
	a.encode(wa)
	wb := &writer{canonical: true}
	b.encode(wb)
	return bytes.Equal(wa.buf, wb.buf)
}

// RawRecord holds a record of a type which is not known to this package.
type RawRecord struct {
	recordHead

	// Type is the type signature of the record.
	Type TypeSignature

	// Data is the record body following the reserved bytes.
	Data []byte
}

func (rec *RawRecord) TypeSignature() TypeSignature { return rec.Type }

func decodeRaw(r *reader, h recordHead) Record {
	Logger().Debug("icc: unknown record type", "type", r.typ.String(), "size", len(r.data))
	return &RawRecord{recordHead: h, Type: r.typ, Data: bytes.Clone(r.bytes(r.remaining()))}
}

func (rec *RawRecord) encode(w *writer) {
	w.head(rec.Type, rec.reserved)
	w.bytes(rec.Data)
}
