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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// must returns v, panicking if err is non-nil.  It is used for
// constructor calls whose arguments are known to be valid.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func ramp8(n int) []uint8 {
	res := make([]uint8, n)
	for i := range res {
		res[i] = uint8(i)
	}
	return res
}

func ramp16(n int) []uint16 {
	res := make([]uint16, n)
	for i := range res {
		res[i] = uint16(i * 257)
	}
	return res
}

func gammaCurves(n int) []CurveRecord {
	res := make([]CurveRecord, n)
	for i := range res {
		res[i] = &ParametricCurve{funcType: 0, params: []S15Fixed16{S15Fixed16FromFloat(2.2)}}
	}
	return res
}

var identity3 = [9]S15Fixed16{0x10000, 0, 0, 0, 0x10000, 0, 0, 0, 0x10000}

func exampleMLUC() *MultiLocalizedUnicode {
	return must(NewMultiLocalizedUnicode(
		LocalizedUnicode{Language: "en", Country: "US", Value: "Test Profile"},
		LocalizedUnicode{Language: "de", Country: "DE", Value: "Testprofil ✓ 😀"},
	))
}

// exampleLutAToB returns a 'mAB ' record with all five stages.
func exampleLutAToB() *LutAToB {
	data := make([]uint16, 2*2*2*3)
	for i := range data {
		data[i] = uint16(10 * i)
	}
	clut := must(NewCLUT([]uint8{2, 2, 2}, 3, 1, data))
	matrix := [12]S15Fixed16{0x10000, 0, 0, 0, 0x10000, 0, 0, 0, 0x10000, 0, 0, 0}
	return must(NewLutAToB(3, 3, LutStages{
		A:      []CurveRecord{NewGammaCurve(0x0200), &Curve{Entries: []uint16{0, 0xFFFF}}, &Curve{}},
		CLUT:   clut,
		M:      gammaCurves(3),
		Matrix: &matrix,
		B:      gammaCurves(3),
	}))
}

// fixedLayoutRecords returns records where every proper prefix of the
// encoding is invalid.
func fixedLayoutRecords() []Record {
	clut8 := make([]uint16, 27*2)
	for i := range clut8 {
		clut8[i] = uint16(i)
	}
	mpet := must(NewMultiProcessElements(3, 2,
		&ACSElement{Channels: 3, Signature: 0x74657374},
		must(NewCurveSetElement(
			must(NewSegmentedCurve(nil, FormulaSegment{Function: 0, Params: []float32{1, 1, 0, 0}})),
			must(NewSegmentedCurve([]float32{0, 1},
				FormulaSegment{Function: 1, Params: []float32{1, 2, 3, 4, 5}},
				SampledSegment{Values: []float32{0.25, 0.5, 0.75}},
				FormulaSegment{Function: 2, Params: []float32{1, 2, 3, 4, 5}})),
			must(NewSegmentedCurve(nil, FormulaSegment{Function: 0, Params: []float32{2.2, 1, 0, 0}})),
		)),
		must(NewMatrixElement(3, 3, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, []float32{0, 0.5, 0})),
		must(NewCLUTElement([]uint8{2, 2, 2}, 2, make([]float32, 16))),
		&ACSElement{End: true, Channels: 2, Signature: 0x74657374},
	))

	return []Record{
		&SignatureRecord{Signature: 0x72686F63},
		&DateTime{Value: DateTimeNumber{Year: 2024, Month: 2, Day: 29, Hour: 23, Minute: 59, Second: 58}},
		&CICP{ColorPrimaries: 9, TransferCharacteristics: 16, MatrixCoefficients: 0, VideoFullRange: true},
		&Curve{Entries: []uint16{0, 0x1000, 0x8000, 0xFFFF}},
		must(NewParametricCurve(4, 1, 2, 3, 4, 5, 6, 7)),
		&Measurement{Observer: ObserverCIE1931, Backing: D50, Geometry: Geometry0_45,
			Flare: U16Fixed16FromFloat(0.01), Illuminant: IlluminantD65},
		&ViewingConditions{Illuminant: D50, Surround: XYZFromFloats(0.2, 0.2, 0.2), IlluminantType: IlluminantD50},
		must(NewChromaticity(PhosphorColorant(1),
			[2]U16Fixed16{U16Fixed16FromFloat(0.64), U16Fixed16FromFloat(0.33)},
			[2]U16Fixed16{U16Fixed16FromFloat(0.3), U16Fixed16FromFloat(0.6)},
			[2]U16Fixed16{U16Fixed16FromFloat(0.15), U16Fixed16FromFloat(0.06)})),
		&ColorantOrder{Order: []uint8{2, 0, 1}},
		must(NewColorantTable(Colorant{Name: "Cyan", PCS: [3]uint16{1, 2, 3}}, Colorant{Name: "Magenta"})),
		must(NewNamedColor2(0, "Pan", "C", 2,
			NamedColor{Name: "Red", PCS: [3]uint16{0x8000, 0xC000, 0x9000}, Device: []uint16{1, 2}},
			NamedColor{Name: "Blue", Device: []uint16{3, 4}})),
		exampleMLUC(),
		must(NewTextDescription("sRGB", "sRGB ✓", 0)),
		must(NewLut8(identity3, 3, 2, 3, ramp8(3*256), make([]uint8, 27*2), ramp8(2*256))),
		must(NewLut16(identity3, 3, 2, 3, 2, 4, ramp16(6), clut8, ramp16(8))),
		exampleLutAToB(),
		must(NewLutBToA(3, 3, LutStages{B: gammaCurves(3)})),
		must(NewProfileSequenceDesc(
			ProfileDescription{Manufacturer: 0x41424344, Model: 0x45464748,
				Attributes: AttrMatte | AttrSelfLuminous, Technology: VideoMonitor,
				ManufacturerDesc: must(NewTextDescription("ACME", "", 0)),
				ModelDesc:        exampleMLUC()},
			ProfileDescription{ManufacturerDesc: exampleMLUC(), ModelDesc: exampleMLUC()})),
		must(NewProfileSequenceIdentifier(
			ProfileIdentifier{ID: ProfileID{1, 2, 3}, Description: exampleMLUC()},
			ProfileIdentifier{Description: exampleMLUC()})),
		must(NewResponseCurveSet16(2,
			ResponseCurve{Unit: StatusA, Maximum: []XYZNumber{D50, D50},
				Responses: [][]Response16Number{{{0, 0}, {0xFFFF, 0x10000}}, {{0x8000, 0x8000}}}},
			ResponseCurve{Unit: StatusT, Maximum: []XYZNumber{D50, D50},
				Responses: [][]Response16Number{{{1, 1}}, {{2, 2}}}})),
		mpet,
	}
}

// variableLayoutRecords returns records where some prefixes of the encoding
// are valid records in their own right.
func variableLayoutRecords() []Record {
	return []Record{
		&XYZ{Values: []XYZNumber{D50, XYZFromFloats(0.9642, 1, 0.8249)}},
		&S15Fixed16Array{Values: []S15Fixed16{-0x10000, 0, 0x7FFFFFFF}},
		&U16Fixed16Array{Values: []U16Fixed16{0, 0xFFFFFFFF}},
		&UInt8Array{Values: []uint8{1, 2, 3}},
		&UInt16Array{Values: []uint16{1, 2, 3}},
		&UInt32Array{Values: []uint32{1, 2, 3}},
		&UInt64Array{Values: []uint64{1, 2, 1 << 63}},
		&Data{Binary: true, Bytes: []byte{0, 1, 2, 0xFF}},
		&Data{Bytes: []byte("hello")},
		must(NewText("Copyright (c) 2024 Nobody")),
		&RawRecord{Type: 0x7A7A7A7A, Data: []byte{1, 2, 3, 4, 5}},
	}
}

func TestRecordRoundTrip(t *testing.T) {
	records := append(fixedLayoutRecords(), variableLayoutRecords()...)
	for _, rec := range records {
		t.Run(rec.TypeSignature().String(), func(t *testing.T) {
			data := EncodeRecord(rec)
			decoded, err := DecodeRecord(data)
			require.NoError(t, err)
			require.Equal(t, rec.TypeSignature(), decoded.TypeSignature())
			require.True(t, EqualRecords(rec, decoded), "records differ after round trip")
			require.Equal(t, data, EncodeRecord(decoded))
		})
	}
}

// offsetAddressed lists the record types which locate (some of) their
// elements through offsets.  Cutting such a record before the start of an
// element leaves an offset which points past the end of the data.
var offsetAddressed = map[TypeSignature]bool{
	MultiLocalizedUnicodeType:     true,
	LutAToBType:                   true,
	LutBToAType:                   true,
	MultiProcessElementsType:      true,
	ProfileSequenceDescType:       true, // nested 'mluc' records
	ProfileSequenceIdentifierType: true,
	ResponseCurveSet16Type:        true,
}

func TestTruncatedRecords(t *testing.T) {
	for _, rec := range fixedLayoutRecords() {
		data := EncodeRecord(rec)
		typ := rec.TypeSignature()
		asciiOnly := -1
		if d, ok := rec.(*TextDescription); ok {
			asciiOnly = 12 + len(d.ASCII()) + 1
		}
		for n := 0; n < len(data); n++ {
			if n == asciiOnly {
				continue
			}
			_, err := DecodeRecord(data[:n])
			if err == nil {
				t.Errorf("%s: prefix of length %d/%d decoded without error", typ, n, len(data))
				continue
			}
			var truncErr *TruncatedRecordError
			var offErr *InvalidOffsetError
			if errors.As(err, &truncErr) || offsetAddressed[typ] && errors.As(err, &offErr) {
				continue
			}
			t.Errorf("%s: prefix of length %d: got %v, want TruncatedRecordError", typ, n, err)
		}
	}
}

func TestMLUCStringPastEnd(t *testing.T) {
	data := EncodeRecord(exampleMLUC())

	// cut inside the first string
	_, err := DecodeRecord(data[:16+2*12+4])
	var truncErr *TruncatedRecordError
	require.ErrorAs(t, err, &truncErr)
	require.Equal(t, MultiLocalizedUnicodeType, truncErr.Type)

	// a string offset inside the record header is still an offset error
	bad := bytes.Clone(data)
	bad[16+8+3] = 8
	_, err = DecodeRecord(bad)
	var offErr *InvalidOffsetError
	require.ErrorAs(t, err, &offErr)
	require.Equal(t, uint64(8), offErr.Offset)
}

func TestInvalidRecordsRejected(t *testing.T) {
	const privateTag TagSignature = 0x70726976
	records := []Record{
		&Lut8{},
		&Lut16{},
		&LutAToB{},
		&LutBToA{},
		&ParametricCurve{},
		&MultiProcessElements{},
		&ResponseCurveSet16{},
		&LutBToA{lutAB{inputChannels: 1, outputChannels: 1,
			stages: LutStages{B: []CurveRecord{&ParametricCurve{}}}}},
		&MultiProcessElements{inputChannels: 1, outputChannels: 1,
			elements: []ProcessElement{&MatrixElement{}}},
		&ProfileSequenceIdentifier{profiles: []ProfileIdentifier{{}}},
		&ColorantTable{colorants: []Colorant{{Name: strings.Repeat("x", 32)}}},
	}
	p := New(testHeader())
	for _, rec := range records {
		err := p.SetTag(privateTag, rec)
		var valErr *InvalidValueError
		var countErr *CountMismatchError
		if !errors.As(err, &valErr) && !errors.As(err, &countErr) {
			t.Errorf("%T: got %v, want InvalidValueError or CountMismatchError", rec, err)
		}
		require.Error(t, p.ReplaceTag(privateTag, rec), "%T", rec)
	}
	require.Empty(t, p.Tags())

	// zero values of these types are complete records
	for _, rec := range []Record{&XYZ{}, &Curve{}, &Text{}, &ColorantTable{}, &MultiLocalizedUnicode{}} {
		require.NoError(t, p.ReplaceTag(privateTag, rec), "%T", rec)
		_, err := DecodeRecord(EncodeRecord(rec))
		require.NoError(t, err, "%T", rec)
	}
}

func TestFixedNameNotTerminated(t *testing.T) {
	data := EncodeRecord(must(NewColorantTable(Colorant{Name: "Cyan"})))
	name := data[12 : 12+32]
	for i := range name {
		name[i] = 'x'
	}
	_, err := DecodeRecord(data)
	var valErr *InvalidValueError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, ColorantTableType, valErr.Type)

	name[31] = 0
	rec, err := DecodeRecord(data)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("x", 31), rec.(*ColorantTable).Colorants()[0].Name)

	_, err = NewColorantTable(Colorant{Name: strings.Repeat("x", 32)})
	require.ErrorAs(t, err, &valErr)
	_, err = NewNamedColor2(0, strings.Repeat("p", 32), "", 0)
	require.ErrorAs(t, err, &valErr)
}

func TestTextDescriptionASCIIOnly(t *testing.T) {
	data := []byte{'d', 'e', 's', 'c', 0, 0, 0, 0, 0, 0, 0, 4, 'a', 'b', 'c', 0}
	rec, err := DecodeRecord(data)
	require.NoError(t, err)
	d := rec.(*TextDescription)
	require.Equal(t, "abc", d.ASCII())
	require.Equal(t, "abc", d.String())
}

func TestReservedBytes(t *testing.T) {
	data := []byte{'s', 'i', 'g', ' ', 1, 2, 3, 4, 'r', 'h', 'o', 'c'}
	rec, err := DecodeRecord(data)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), rec.Reserved())
	require.Equal(t, data, EncodeRecord(rec))

	other := &SignatureRecord{Signature: 0x72686F63}
	require.True(t, EqualRecords(rec, other))
	require.False(t, EqualRecords(rec, &SignatureRecord{Signature: 0x72686F64}))
}

func TestUnknownRecordType(t *testing.T) {
	data := []byte{'z', 'z', 'z', 'z', 0, 0, 0, 0, 9, 8, 7}
	rec, err := DecodeRecord(data)
	require.NoError(t, err)
	raw, ok := rec.(*RawRecord)
	require.True(t, ok)
	require.Equal(t, TypeSignature(0x7A7A7A7A), raw.Type)
	require.Equal(t, []byte{9, 8, 7}, raw.Data)
	require.Equal(t, data, EncodeRecord(rec))
}

func TestLutAToBInvalidOffset(t *testing.T) {
	data := EncodeRecord(exampleLutAToB())

	for _, field := range []int{12, 16, 20, 24, 28} {
		for _, offset := range []uint32{8, 31, uint32(len(data)), 0xFFFFFFF0} {
			bad := bytes.Clone(data)
			bad[field] = byte(offset >> 24)
			bad[field+1] = byte(offset >> 16)
			bad[field+2] = byte(offset >> 8)
			bad[field+3] = byte(offset)

			_, err := DecodeRecord(bad)
			var offErr *InvalidOffsetError
			if !errors.As(err, &offErr) {
				t.Fatalf("offset field %d = %d: got %v, want InvalidOffsetError", field, offset, err)
			}
			if offErr.Offset != uint64(offset) || offErr.Type != LutAToBType {
				t.Errorf("unexpected error details: %+v", offErr)
			}
		}
	}
}

func TestLutAToBStages(t *testing.T) {
	l := exampleLutAToB()
	rec, err := DecodeRecord(EncodeRecord(l))
	require.NoError(t, err)
	dec := rec.(*LutAToB)

	s := dec.Stages()
	require.Len(t, s.A, 3)
	require.Len(t, s.M, 3)
	require.Len(t, s.B, 3)
	require.NotNil(t, s.Matrix)
	require.Equal(t, []uint8{2, 2, 2}, s.CLUT.GridPoints())
	require.Equal(t, 1, s.CLUT.Precision())
	require.Equal(t, l.Stages().CLUT.Data(), s.CLUT.Data())

	// the returned stages are copies
	s.B[0] = nil
	require.NotNil(t, dec.Stages().B[0])
}

func TestLutConstructors(t *testing.T) {
	clut := must(NewCLUT([]uint8{2, 2, 2}, 1, 2, make([]uint16, 8)))

	cases := []struct {
		name   string
		create func() error
	}{
		{"mft1 channels", func() error {
			_, err := NewLut8(identity3, 0, 3, 2, nil, nil, nil)
			return err
		}},
		{"mft1 grid points", func() error {
			_, err := NewLut8(identity3, 1, 1, 256, ramp8(256), make([]uint8, 256), ramp8(256))
			return err
		}},
		{"mft1 CLUT size", func() error {
			_, err := NewLut8(identity3, 1, 1, 3, ramp8(256), make([]uint8, 2), ramp8(256))
			return err
		}},
		{"mft2 entries", func() error {
			_, err := NewLut16(identity3, 1, 1, 2, 1, 2, ramp16(1), ramp16(2), ramp16(2))
			return err
		}},
		{"mft2 tables", func() error {
			_, err := NewLut16(identity3, 1, 1, 2, 2, 2, ramp16(3), ramp16(2), ramp16(2))
			return err
		}},
		{"CLUT precision", func() error {
			_, err := NewCLUT([]uint8{2}, 1, 3, make([]uint16, 2))
			return err
		}},
		{"CLUT 8 bit range", func() error {
			_, err := NewCLUT([]uint8{2}, 1, 1, []uint16{0, 256})
			return err
		}},
		{"mAB missing B", func() error {
			_, err := NewLutAToB(3, 3, LutStages{})
			return err
		}},
		{"mAB M without matrix", func() error {
			_, err := NewLutAToB(3, 3, LutStages{M: gammaCurves(3), B: gammaCurves(3)})
			return err
		}},
		{"mAB A without CLUT", func() error {
			_, err := NewLutAToB(3, 3, LutStages{A: gammaCurves(3), B: gammaCurves(3)})
			return err
		}},
		{"mAB channel mismatch without CLUT", func() error {
			_, err := NewLutAToB(3, 1, LutStages{B: gammaCurves(1)})
			return err
		}},
		{"mAB CLUT shape", func() error {
			_, err := NewLutAToB(3, 3, LutStages{A: gammaCurves(3), CLUT: clut, B: gammaCurves(3)})
			return err
		}},
		{"mBA wrong number of B curves", func() error {
			_, err := NewLutBToA(3, 1, LutStages{A: gammaCurves(1), CLUT: clut, B: gammaCurves(1)})
			return err
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Error(t, c.create())
		})
	}

	// a 3 → 1 CLUT with three B curves is valid for 'mBA '
	_, err := NewLutBToA(3, 1, LutStages{A: gammaCurves(1), CLUT: clut, B: gammaCurves(3)})
	require.NoError(t, err)
}

func TestMPEConstructors(t *testing.T) {
	formula := FormulaSegment{Function: 0, Params: []float32{1, 1, 0, 0}}

	_, err := NewSegmentedCurve([]float32{0}, formula)
	var countErr *CountMismatchError
	require.ErrorAs(t, err, &countErr)

	_, err = NewSegmentedCurve([]float32{1, 0}, formula, formula, formula)
	require.Error(t, err)

	_, err = NewSegmentedCurve(nil, SampledSegment{Values: []float32{1}})
	require.Error(t, err)

	_, err = NewSegmentedCurve(nil, FormulaSegment{Function: 1, Params: []float32{1}})
	require.ErrorAs(t, err, &countErr)

	_, err = NewMatrixElement(2, 2, []float32{1, 0, 0}, []float32{0, 0})
	require.ErrorAs(t, err, &countErr)

	_, err = NewCLUTElement([]uint8{1, 2}, 1, make([]float32, 2))
	require.Error(t, err)

	_, err = NewMultiProcessElements(3, 3)
	require.Error(t, err)

	m := must(NewMatrixElement(3, 1, []float32{0.2, 0.7, 0.1}, []float32{0}))
	_, err = NewMultiProcessElements(3, 3, m)
	require.ErrorAs(t, err, &countErr)
	_, err = NewMultiProcessElements(1, 1, m)
	require.ErrorAs(t, err, &countErr)
	_, err = NewMultiProcessElements(3, 1, m)
	require.NoError(t, err)
}

func TestMPEUnknownElement(t *testing.T) {
	m := must(NewMultiProcessElements(1, 1, &ACSElement{Channels: 1}))
	data := EncodeRecord(m)
	// the element follows the 16-byte header and the 8-byte position table
	copy(data[24:28], "xxxx")
	_, err := DecodeRecord(data)
	var typeErr *UnexpectedTypeError
	require.ErrorAs(t, err, &typeErr)
	require.Equal(t, TypeSignature(0x78787878), typeErr.Got)
}

func TestConstructorsCopyInput(t *testing.T) {
	entries := []LocalizedUnicode{{Language: "en", Country: "US", Value: "a"}}
	m := must(NewMultiLocalizedUnicode(entries...))
	entries[0].Value = "b"
	if d := cmp.Diff([]LocalizedUnicode{{Language: "en", Country: "US", Value: "a"}}, m.Entries()); d != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", d)
	}

	tables := ramp8(256)
	l := must(NewLut8(identity3, 1, 1, 2, tables, []uint8{0, 255}, ramp8(256)))
	tables[5] = 0
	require.Equal(t, uint8(5), l.InputTable(0)[5])
}

func TestTextValidation(t *testing.T) {
	_, err := NewText("café")
	require.Error(t, err)
	_, err = NewText("a\x00b")
	require.Error(t, err)

	_, err = NewMultiLocalizedUnicode(LocalizedUnicode{Language: "eng", Country: "US"})
	require.Error(t, err)
	_, err = NewMultiLocalizedUnicode(LocalizedUnicode{Language: "en", Country: "US", Value: "\xff"})
	require.Error(t, err)

	_, err = NewColorantTable(Colorant{Name: "a very long colorant name which does not fit"})
	require.Error(t, err)

	_, err = NewNamedColor2(0, "", "", 1, NamedColor{Name: "x", Device: []uint16{1, 2}})
	require.Error(t, err)

	// high-bit bytes are rejected when decoding 'text'
	_, err = DecodeRecord([]byte{'t', 'e', 'x', 't', 0, 0, 0, 0, 'a', 0x80, 0})
	var valErr *InvalidValueError
	require.ErrorAs(t, err, &valErr)
}

func TestMLUCLookup(t *testing.T) {
	m := must(NewMultiLocalizedUnicode(
		LocalizedUnicode{Language: "de", Country: "AT", Value: "Grüß Gott"},
		LocalizedUnicode{Language: "de", Country: "DE", Value: "Guten Tag"},
		LocalizedUnicode{Language: "fr", Country: "FR", Value: "Bonjour"},
	))

	cases := []struct {
		language, country string
		want              string
		ok                bool
	}{
		{"de", "DE", "Guten Tag", true},
		{"de", "CH", "Grüß Gott", true},
		{"fr", "CA", "Bonjour", true},
		{"en", "US", "", false},
	}
	for _, c := range cases {
		got, ok := m.Lookup(c.language, c.country)
		if got != c.want || ok != c.ok {
			t.Errorf("Lookup(%q, %q) = %q, %t; want %q, %t",
				c.language, c.country, got, ok, c.want, c.ok)
		}
	}
	require.Equal(t, "Grüß Gott", m.String())
}

func TestArrayBodySize(t *testing.T) {
	_, err := DecodeRecord([]byte{'u', 'i', '3', '2', 0, 0, 0, 0, 1, 2, 3})
	var valErr *InvalidValueError
	require.ErrorAs(t, err, &valErr)
}

func FuzzDecodeRecord(f *testing.F) {
	for _, rec := range fixedLayoutRecords() {
		f.Add(EncodeRecord(rec))
	}
	for _, rec := range variableLayoutRecords() {
		f.Add(EncodeRecord(rec))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		rec, err := DecodeRecord(data)
		if err != nil {
			return
		}
		encoded := EncodeRecord(rec)
		rec2, err := DecodeRecord(encoded)
		if err != nil {
			t.Fatalf("re-decoding %s failed: %v", rec.TypeSignature(), err)
		}
		if !EqualRecords(rec, rec2) {
			t.Fatalf("%s records differ after round trip", rec.TypeSignature())
		}
	})
}
