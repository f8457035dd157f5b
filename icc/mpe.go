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
	"fmt"
	"math"
)

// ProcessElement is one stage of a [MultiProcessElements] record.  The
// implementations are [*CurveSetElement], [*MatrixElement], [*CLUTElement]
// and [*ACSElement].
type ProcessElement interface {
	Record
	InputChannels() int
	OutputChannels() int
}

type elementDecodeFunc func(r *reader, h recordHead, inputs, outputs int) ProcessElement

var elementDecoders = map[TypeSignature]elementDecodeFunc{
	CurveSetElementType: decodeCurveSetElement,
	MatrixElementType:   decodeMatrixElement,
	CLUTElementType:     decodeCLUTElement,
	BeginACSElementType: decodeACSElement,
	EndACSElementType:   decodeACSElement,
}

var elementTypes = []TypeSignature{
	CurveSetElementType, MatrixElementType, CLUTElementType, BeginACSElementType, EndACSElementType,
}

// MultiProcessElements is a multiProcessElementsType record ('mpet'): a
// chain of processing elements operating on 32-bit floating point values.
type MultiProcessElements struct {
	recordHead
	inputChannels  int
	outputChannels int
	elements       []ProcessElement
}

// NewMultiProcessElements returns an 'mpet' record.  There must be at
// least one element, and the channel counts of consecutive elements must
// match.
func NewMultiProcessElements(inputs, outputs int, elements ...ProcessElement) (*MultiProcessElements, error) {
	m := &MultiProcessElements{
		inputChannels:  inputs,
		outputChannels: outputs,
		elements:       append([]ProcessElement(nil), elements...),
	}
	if err := m.valid(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MultiProcessElements) valid() error {
	return checkElementChain(m.inputChannels, m.outputChannels, m.elements)
}

func checkElementChain(inputs, outputs int, elements []ProcessElement) error {
	if inputs < 1 || inputs > 0xFFFF || outputs < 1 || outputs > 0xFFFF {
		return &InvalidValueError{Type: MultiProcessElementsType, Field: "channel count",
			Reason: fmt.Sprintf("%d inputs and %d outputs", inputs, outputs)}
	}
	if len(elements) == 0 {
		return &InvalidValueError{Type: MultiProcessElementsType, Field: "elements", Reason: "no processing elements"}
	}
	channels := inputs
	for i, e := range elements {
		if e == nil {
			return &InvalidValueError{Type: MultiProcessElementsType, Field: "elements",
				Reason: fmt.Sprintf("element %d is nil", i)}
		}
		if err := checkValid(e); err != nil {
			return err
		}
		if e.InputChannels() != channels {
			return &CountMismatchError{Type: MultiProcessElementsType,
				Field:    fmt.Sprintf("input channels of element %d", i),
				Declared: uint64(e.InputChannels()), Actual: uint64(channels)}
		}
		channels = e.OutputChannels()
	}
	if channels != outputs {
		return &CountMismatchError{Type: MultiProcessElementsType, Field: "output channels",
			Declared: uint64(outputs), Actual: uint64(channels)}
	}
	return nil
}

func (m *MultiProcessElements) TypeSignature() TypeSignature { return MultiProcessElementsType }
func (m *MultiProcessElements) InputChannels() int           { return m.inputChannels }
func (m *MultiProcessElements) OutputChannels() int          { return m.outputChannels }

// Elements returns the processing elements, in the order they are applied.
func (m *MultiProcessElements) Elements() []ProcessElement {
	return append([]ProcessElement(nil), m.elements...)
}

func decodeMPET(r *reader, h recordHead) Record {
	inputs := int(r.u16())
	outputs := int(r.u16())
	n := r.u32()
	table := readPositionTable(r, n)
	if r.err != nil {
		return nil
	}
	m := &MultiProcessElements{
		recordHead:     h,
		inputChannels:  inputs,
		outputChannels: outputs,
		elements:       make([]ProcessElement, n),
	}
	for i, pos := range table {
		sub := r.sub(int(pos.Offset), int(pos.Offset+pos.Size))
		m.elements[i] = readElement(sub)
		if sub.err != nil {
			r.fail(sub.err)
			return nil
		}
	}
	if err := checkElementChain(inputs, outputs, m.elements); err != nil {
		r.fail(err)
		return nil
	}
	return m
}

// readElement decodes the processing element at the start of r.
func readElement(r *reader) ProcessElement {
	typ := TypeSignature(r.u32())
	h := recordHead{reserved: r.u32()}
	inputs := int(r.u16())
	outputs := int(r.u16())
	if r.err != nil {
		return nil
	}
	dec, ok := elementDecoders[typ]
	if !ok {
		r.fail(&UnexpectedTypeError{Want: elementTypes, Got: typ})
		return nil
	}
	r.typ = typ
	e := dec(r, h, inputs, outputs)
	if r.err != nil {
		return nil
	}
	return e
}

func (m *MultiProcessElements) encode(w *writer) {
	start := w.len()
	w.head(MultiProcessElementsType, m.reserved)
	w.u16(uint16(m.inputChannels))
	w.u16(uint16(m.outputChannels))
	w.u32(uint32(len(m.elements)))
	table := w.len()
	w.zeros(8 * len(m.elements))
	for i, e := range m.elements {
		w.pad4()
		elemStart := w.len()
		e.encode(w)
		w.patch32(table+8*i, uint32(elemStart-start))
		w.patch32(table+8*i+4, uint32(w.len()-elemStart))
	}
}

// ----------------------------------------------------------------------------
// Curve set element (cvst)
// ----------------------------------------------------------------------------

// CurveSetElement applies one [SegmentedCurve] to each channel.
type CurveSetElement struct {
	recordHead
	curves []*SegmentedCurve
}

// NewCurveSetElement returns a curve set element with one curve per
// channel.
func NewCurveSetElement(curves ...*SegmentedCurve) (*CurveSetElement, error) {
	e := &CurveSetElement{curves: append([]*SegmentedCurve(nil), curves...)}
	if err := e.valid(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *CurveSetElement) valid() error {
	if len(e.curves) < 1 || len(e.curves) > 0xFFFF {
		return &InvalidValueError{Type: CurveSetElementType, Field: "curve count",
			Reason: fmt.Sprintf("%d is not in the range 1 to 65535", len(e.curves))}
	}
	for _, c := range e.curves {
		if c == nil {
			return &InvalidValueError{Type: CurveSetElementType, Field: "curves", Reason: "nil curve"}
		}
		if err := checkSegments(c.breakPoints, c.segments); err != nil {
			return err
		}
	}
	return nil
}

func (e *CurveSetElement) TypeSignature() TypeSignature { return CurveSetElementType }
func (e *CurveSetElement) InputChannels() int           { return len(e.curves) }
func (e *CurveSetElement) OutputChannels() int          { return len(e.curves) }

// Curves returns the curves, one per channel.
func (e *CurveSetElement) Curves() []*SegmentedCurve {
	return append([]*SegmentedCurve(nil), e.curves...)
}

func decodeCurveSetElement(r *reader, h recordHead, inputs, outputs int) ProcessElement {
	if inputs != outputs || inputs == 0 {
		r.fail(&InvalidValueError{Type: CurveSetElementType, Field: "channel count",
			Reason: fmt.Sprintf("%d inputs and %d outputs", inputs, outputs)})
		return nil
	}
	table := readPositionTable(r, uint32(inputs))
	if r.err != nil {
		return nil
	}
	e := &CurveSetElement{recordHead: h, curves: make([]*SegmentedCurve, inputs)}
	for i, pos := range table {
		sub := r.sub(int(pos.Offset), int(pos.Offset+pos.Size))
		e.curves[i] = readSegmentedCurve(sub)
		if sub.err != nil {
			r.fail(sub.err)
			return nil
		}
	}
	return e
}

func (e *CurveSetElement) encode(w *writer) {
	start := w.len()
	w.head(CurveSetElementType, e.reserved)
	w.u16(uint16(len(e.curves)))
	w.u16(uint16(len(e.curves)))
	table := w.len()
	w.zeros(8 * len(e.curves))
	for i, c := range e.curves {
		w.pad4()
		curveStart := w.len()
		c.encode(w)
		w.patch32(table+8*i, uint32(curveStart-start))
		w.patch32(table+8*i+4, uint32(w.len()-curveStart))
	}
}

// CurveSegment is one segment of a [SegmentedCurve], either a
// [FormulaSegment] or a [SampledSegment].
type CurveSegment interface {
	isSegment()
}

// FormulaSegment is a curve segment given by a formula, with parameters
// [g, a, b, c, d] (and e for type 1):
//   - type 0: y = (a*x + b)^g + c
//   - type 1: y = a*log10(b*x^g + c) + d
//   - type 2: y = a*b^(c*x + d) + e
type FormulaSegment struct {
	Function uint16
	Params   []float32
}

// SampledSegment is a curve segment given by equally spaced samples.  The
// value at the start of the segment is implied by the preceding segment
// and is not stored.
type SampledSegment struct {
	Values []float32
}

func (FormulaSegment) isSegment() {}
func (SampledSegment) isSegment() {}

var formulaSegmentParams = []int{4, 5, 5}

// SegmentedCurve is a one-dimensional function made of segments.  The
// segment boundaries are given by the break points; the first segment
// starts at -∞ and the last one ends at +∞.
type SegmentedCurve struct {
	breakPoints []float32
	segments    []CurveSegment
}

// NewSegmentedCurve returns a segmented curve.  There must be one break
// point fewer than segments, the break points must be non-decreasing, and
// the first segment must be a formula.
func NewSegmentedCurve(breakPoints []float32, segments ...CurveSegment) (*SegmentedCurve, error) {
	if err := checkSegments(breakPoints, segments); err != nil {
		return nil, err
	}
	c := &SegmentedCurve{
		breakPoints: append([]float32(nil), breakPoints...),
		segments:    make([]CurveSegment, len(segments)),
	}
	for i, s := range segments {
		switch s := s.(type) {
		case FormulaSegment:
			c.segments[i] = FormulaSegment{Function: s.Function, Params: append([]float32(nil), s.Params...)}
		case SampledSegment:
			c.segments[i] = SampledSegment{Values: append([]float32(nil), s.Values...)}
		}
	}
	return c, nil
}

func checkSegments(breakPoints []float32, segments []CurveSegment) error {
	if len(segments) < 1 || len(segments) > 0xFFFF {
		return &InvalidValueError{Type: SegmentedCurveType, Field: "segment count",
			Reason: fmt.Sprintf("%d is not in the range 1 to 65535", len(segments))}
	}
	if len(breakPoints) != len(segments)-1 {
		return &CountMismatchError{Type: SegmentedCurveType, Field: "break points",
			Declared: uint64(len(breakPoints)), Actual: uint64(len(segments) - 1)}
	}
	for i := 1; i < len(breakPoints); i++ {
		if !(breakPoints[i-1] <= breakPoints[i]) {
			return &InvalidValueError{Type: SegmentedCurveType, Field: "break points", Reason: "not increasing"}
		}
	}
	for _, b := range breakPoints {
		if math.IsNaN(float64(b)) {
			return &InvalidValueError{Type: SegmentedCurveType, Field: "break points", Reason: "NaN"}
		}
	}
	for i, s := range segments {
		switch s := s.(type) {
		case FormulaSegment:
			if int(s.Function) >= len(formulaSegmentParams) {
				return &InvalidValueError{Type: FormulaSegmentType, Field: "function type",
					Reason: fmt.Sprintf("%d is not in the range 0 to 2", s.Function)}
			}
			if want := formulaSegmentParams[s.Function]; len(s.Params) != want {
				return &CountMismatchError{Type: FormulaSegmentType, Field: "parameter count",
					Declared: uint64(want), Actual: uint64(len(s.Params))}
			}
		case SampledSegment:
			if i == 0 {
				return &InvalidValueError{Type: SegmentedCurveType, Field: "segments",
					Reason: "first segment must be a formula"}
			}
			if len(s.Values) == 0 {
				return &InvalidValueError{Type: SampledSegmentType, Field: "sample count", Reason: "no samples"}
			}
		default:
			return &InvalidValueError{Type: SegmentedCurveType, Field: "segments",
				Reason: fmt.Sprintf("unsupported segment %T", s)}
		}
	}
	return nil
}

// BreakPoints returns the boundaries between the segments.
func (c *SegmentedCurve) BreakPoints() []float32 {
	return append([]float32(nil), c.breakPoints...)
}

// Segments returns the segments of the curve.
func (c *SegmentedCurve) Segments() []CurveSegment {
	return append([]CurveSegment(nil), c.segments...)
}

func readSegmentedCurve(r *reader) *SegmentedCurve {
	typ := TypeSignature(r.u32())
	r.skip(4) // reserved
	if r.err == nil && typ != SegmentedCurveType {
		r.fail(&UnexpectedTypeError{Want: []TypeSignature{SegmentedCurveType}, Got: typ})
	}
	r.typ = SegmentedCurveType
	n := int(r.u16())
	r.skip(2) // reserved
	if r.err != nil {
		return nil
	}
	if n == 0 {
		r.fail(&InvalidValueError{Type: SegmentedCurveType, Field: "segment count", Reason: "no segments"})
		return nil
	}
	if !r.needItems(uint64(n-1), 4) {
		return nil
	}
	c := &SegmentedCurve{
		breakPoints: make([]float32, n-1),
		segments:    make([]CurveSegment, n),
	}
	for i := range c.breakPoints {
		c.breakPoints[i] = r.f32()
	}
	for i := range c.segments {
		c.segments[i] = readSegment(r)
		if r.err != nil {
			return nil
		}
	}
	if err := checkSegments(c.breakPoints, c.segments); err != nil {
		r.fail(err)
		return nil
	}
	return c
}

func readSegment(r *reader) CurveSegment {
	typ := TypeSignature(r.u32())
	r.skip(4) // reserved
	if r.err != nil {
		return nil
	}
	switch typ {
	case FormulaSegmentType:
		fn := r.u16()
		r.skip(2) // reserved
		if r.err != nil {
			return nil
		}
		if int(fn) >= len(formulaSegmentParams) {
			r.fail(&InvalidValueError{Type: FormulaSegmentType, Field: "function type",
				Reason: fmt.Sprintf("%d is not in the range 0 to 2", fn)})
			return nil
		}
		s := FormulaSegment{Function: fn, Params: make([]float32, formulaSegmentParams[fn])}
		for i := range s.Params {
			s.Params[i] = r.f32()
		}
		return s
	case SampledSegmentType:
		n := r.u32()
		if !r.needItems(uint64(n), 4) {
			return nil
		}
		s := SampledSegment{Values: make([]float32, n)}
		for i := range s.Values {
			s.Values[i] = r.f32()
		}
		return s
	default:
		r.fail(&UnexpectedTypeError{Want: []TypeSignature{FormulaSegmentType, SampledSegmentType}, Got: typ})
		return nil
	}
}

func (c *SegmentedCurve) encode(w *writer) {
	w.head(SegmentedCurveType, 0)
	w.u16(uint16(len(c.segments)))
	w.u16(0)
	for _, b := range c.breakPoints {
		w.f32(b)
	}
	for _, s := range c.segments {
		switch s := s.(type) {
		case FormulaSegment:
			w.head(FormulaSegmentType, 0)
			w.u16(s.Function)
			w.u16(0)
			for _, p := range s.Params {
				w.f32(p)
			}
		case SampledSegment:
			w.head(SampledSegmentType, 0)
			w.u32(uint32(len(s.Values)))
			for _, v := range s.Values {
				w.f32(v)
			}
		}
	}
}

// ----------------------------------------------------------------------------
// Matrix element (matf)
// ----------------------------------------------------------------------------

// MatrixElement multiplies the input vector by a matrix and adds a
// constant vector.
type MatrixElement struct {
	recordHead
	inputs  int
	outputs int
	matrix  []float32 // outputs rows of inputs entries
	offsets []float32
}

// NewMatrixElement returns a matrix element.  The matrix has one row of
// length inputs for each output channel, stored row by row, and there is
// one offset per output channel.
func NewMatrixElement(inputs, outputs int, matrix, offsets []float32) (*MatrixElement, error) {
	e := &MatrixElement{
		inputs:  inputs,
		outputs: outputs,
		matrix:  append([]float32(nil), matrix...),
		offsets: append([]float32(nil), offsets...),
	}
	if err := e.valid(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *MatrixElement) valid() error {
	if e.inputs < 1 || e.inputs > 0xFFFF || e.outputs < 1 || e.outputs > 0xFFFF {
		return &InvalidValueError{Type: MatrixElementType, Field: "channel count",
			Reason: fmt.Sprintf("%d inputs and %d outputs", e.inputs, e.outputs)}
	}
	if err := checkLen(MatrixElementType, "matrix entries", len(e.matrix), uint64(e.inputs)*uint64(e.outputs)); err != nil {
		return err
	}
	return checkLen(MatrixElementType, "offsets", len(e.offsets), uint64(e.outputs))
}

func (e *MatrixElement) TypeSignature() TypeSignature { return MatrixElementType }
func (e *MatrixElement) InputChannels() int           { return e.inputs }
func (e *MatrixElement) OutputChannels() int          { return e.outputs }

// Matrix returns the matrix entries, row by row.
func (e *MatrixElement) Matrix() []float32 { return append([]float32(nil), e.matrix...) }

// Offsets returns the constant vector.
func (e *MatrixElement) Offsets() []float32 { return append([]float32(nil), e.offsets...) }

func decodeMatrixElement(r *reader, h recordHead, inputs, outputs int) ProcessElement {
	if inputs == 0 || outputs == 0 {
		r.fail(&InvalidValueError{Type: MatrixElementType, Field: "channel count", Reason: "must be positive"})
		return nil
	}
	n := uint64(inputs) * uint64(outputs)
	if !r.needItems(n+uint64(outputs), 4) {
		return nil
	}
	e := &MatrixElement{
		recordHead: h,
		inputs:     inputs,
		outputs:    outputs,
		matrix:     make([]float32, n),
		offsets:    make([]float32, outputs),
	}
	for i := range e.matrix {
		e.matrix[i] = r.f32()
	}
	for i := range e.offsets {
		e.offsets[i] = r.f32()
	}
	return e
}

func (e *MatrixElement) encode(w *writer) {
	w.head(MatrixElementType, e.reserved)
	w.u16(uint16(e.inputs))
	w.u16(uint16(e.outputs))
	for _, v := range e.matrix {
		w.f32(v)
	}
	for _, v := range e.offsets {
		w.f32(v)
	}
}

// ----------------------------------------------------------------------------
// CLUT element (clut)
// ----------------------------------------------------------------------------

// CLUTElement is a multi-dimensional lookup table with floating point
// values.
type CLUTElement struct {
	recordHead
	gridPoints []uint8
	outputs    int
	data       []float32
}

// NewCLUTElement returns a CLUT element.  The grid has one entry per input
// channel, at most 16, each at least 2.  The data holds one value per
// output channel for each grid point, with the first input varying
// slowest.
func NewCLUTElement(gridPoints []uint8, outputs int, data []float32) (*CLUTElement, error) {
	e := &CLUTElement{
		gridPoints: append([]uint8(nil), gridPoints...),
		outputs:    outputs,
		data:       append([]float32(nil), data...),
	}
	if err := e.valid(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *CLUTElement) valid() error {
	if err := checkCLUTElementShape(e.gridPoints, e.outputs); err != nil {
		return err
	}
	n, ok := clutEntries(gridInts(e.gridPoints), e.outputs)
	if !ok {
		return &InvalidValueError{Type: CLUTElementType, Field: "CLUT", Reason: "too large"}
	}
	return checkLen(CLUTElementType, "CLUT entries", len(e.data), n)
}

func checkCLUTElementShape(gridPoints []uint8, outputs int) error {
	if len(gridPoints) < 1 || len(gridPoints) > 16 {
		return &InvalidValueError{Type: CLUTElementType, Field: "input channels",
			Reason: fmt.Sprintf("%d is not in the range 1 to 16", len(gridPoints))}
	}
	for _, g := range gridPoints {
		if g < 2 {
			return &InvalidValueError{Type: CLUTElementType, Field: "grid points", Reason: "must be at least 2"}
		}
	}
	if outputs < 1 || outputs > 0xFFFF {
		return &InvalidValueError{Type: CLUTElementType, Field: "output channels",
			Reason: fmt.Sprintf("%d is not in the range 1 to 65535", outputs)}
	}
	return nil
}

func (e *CLUTElement) TypeSignature() TypeSignature { return CLUTElementType }
func (e *CLUTElement) InputChannels() int           { return len(e.gridPoints) }
func (e *CLUTElement) OutputChannels() int          { return e.outputs }

// GridPoints returns the number of grid points for each input channel.
func (e *CLUTElement) GridPoints() []uint8 { return append([]uint8(nil), e.gridPoints...) }

// Data returns the table values.
func (e *CLUTElement) Data() []float32 { return append([]float32(nil), e.data...) }

func decodeCLUTElement(r *reader, h recordHead, inputs, outputs int) ProcessElement {
	grid := r.bytes(16)
	if r.err != nil {
		return nil
	}
	if inputs > 16 {
		r.fail(&InvalidValueError{Type: CLUTElementType, Field: "input channels",
			Reason: fmt.Sprintf("%d is larger than 16", inputs)})
		return nil
	}
	e := &CLUTElement{
		recordHead: h,
		gridPoints: append([]uint8(nil), grid[:inputs]...),
		outputs:    outputs,
	}
	if err := checkCLUTElementShape(e.gridPoints, outputs); err != nil {
		r.fail(err)
		return nil
	}
	n, ok := clutEntries(gridInts(e.gridPoints), outputs)
	if !ok {
		n = 1 << 40
	}
	if !r.needItems(n, 4) {
		return nil
	}
	e.data = make([]float32, n)
	for i := range e.data {
		e.data[i] = r.f32()
	}
	return e
}

func (e *CLUTElement) encode(w *writer) {
	w.head(CLUTElementType, e.reserved)
	w.u16(uint16(len(e.gridPoints)))
	w.u16(uint16(e.outputs))
	var grid [16]byte
	copy(grid[:], e.gridPoints)
	w.bytes(grid[:])
	for _, v := range e.data {
		w.f32(v)
	}
}

// ----------------------------------------------------------------------------
// bACS and eACS elements
// ----------------------------------------------------------------------------

// ACSElement marks the beginning ('bACS') or the end ('eACS') of an
// alternate connection space.  The element does not change the channel
// values.
type ACSElement struct {
	recordHead
	End       bool
	Channels  int
	Signature Signature // identifies the connection space
}

func (e *ACSElement) TypeSignature() TypeSignature {
	if e.End {
		return EndACSElementType
	}
	return BeginACSElementType
}

func (e *ACSElement) InputChannels() int  { return e.Channels }
func (e *ACSElement) OutputChannels() int { return e.Channels }

func (e *ACSElement) valid() error {
	if e.Channels < 0 || e.Channels > 0xFFFF {
		return &InvalidValueError{Type: e.TypeSignature(), Field: "channel count",
			Reason: fmt.Sprintf("%d is not in the range 0 to 65535", e.Channels)}
	}
	return nil
}

func decodeACSElement(r *reader, h recordHead, inputs, outputs int) ProcessElement {
	sig := Signature(r.u32())
	if r.err != nil {
		return nil
	}
	if inputs != outputs {
		r.fail(&InvalidValueError{Type: r.typ, Field: "channel count",
			Reason: fmt.Sprintf("%d inputs and %d outputs", inputs, outputs)})
		return nil
	}
	return &ACSElement{
		recordHead: h,
		End:        r.typ == EndACSElementType,
		Channels:   inputs,
		Signature:  sig,
	}
}

func (e *ACSElement) encode(w *writer) {
	w.head(e.TypeSignature(), e.reserved)
	w.u16(uint16(e.Channels))
	w.u16(uint16(e.Channels))
	w.u32(uint32(e.Signature))
}
