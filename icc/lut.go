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

import "fmt"

// Lut is a multi-dimensional colour lookup table record.
// The four implementations are [*Lut8], [*Lut16], [*LutAToB] and [*LutBToA].
// These records are used for the AToB, BToA, gamut and preview tags.
type Lut interface {
	Record

	// InputChannels returns the number of input channels.
	InputChannels() int

	// OutputChannels returns the number of output channels.
	OutputChannels() int
}

const maxLutChannels = 15

func checkChannels(typ TypeSignature, inputs, outputs int) error {
	if inputs < 1 || inputs > maxLutChannels {
		return &InvalidValueError{Type: typ, Field: "input channels",
			Reason: fmt.Sprintf("%d is not in the range 1 to %d", inputs, maxLutChannels)}
	}
	if outputs < 1 || outputs > maxLutChannels {
		return &InvalidValueError{Type: typ, Field: "output channels",
			Reason: fmt.Sprintf("%d is not in the range 1 to %d", outputs, maxLutChannels)}
	}
	return nil
}

// clutEntries returns the number of values in a colour lookup table with
// the given grid and number of outputs.  The second return value is false
// if the table would not fit into a profile.
func clutEntries(grid []int, outputs int) (uint64, bool) {
	n := uint64(outputs)
	for _, g := range grid {
		n *= uint64(g)
		if n > 1<<32 {
			return 0, false
		}
	}
	return n, true
}

func uniformGrid(points, inputs int) []int {
	grid := make([]int, inputs)
	for i := range grid {
		grid[i] = points
	}
	return grid
}

// ----------------------------------------------------------------------------
// Lut8 - lut8Type (mft1)
// ----------------------------------------------------------------------------

// Lut8 is a lut8Type record ('mft1').
// Processing order: Matrix → InputTables → CLUT → OutputTables
type Lut8 struct {
	recordHead
	inputChannels  int
	outputChannels int
	gridPoints     int // same for all dimensions
	matrix         [9]S15Fixed16
	inputTables    []uint8 // 256 entries per input channel
	clut           []uint8 // gridPoints^inputChannels * outputChannels
	outputTables   []uint8 // 256 entries per output channel
}

// NewLut8 returns a lut8Type record.  The input and output tables hold 256
// entries per channel, stored one channel after the other.  The colour
// lookup table has gridPoints^inputs entries, each with one value per
// output channel; the first input varies slowest.
func NewLut8(matrix [9]S15Fixed16, inputs, outputs, gridPoints int, inputTables, clut, outputTables []uint8) (*Lut8, error) {
	l := &Lut8{
		inputChannels:  inputs,
		outputChannels: outputs,
		gridPoints:     gridPoints,
		matrix:         matrix,
		inputTables:    append([]uint8(nil), inputTables...),
		clut:           append([]uint8(nil), clut...),
		outputTables:   append([]uint8(nil), outputTables...),
	}
	if err := l.valid(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lut8) valid() error {
	if err := checkChannels(Lut8Type, l.inputChannels, l.outputChannels); err != nil {
		return err
	}
	if l.gridPoints < 1 || l.gridPoints > 255 {
		return &InvalidValueError{Type: Lut8Type, Field: "grid points",
			Reason: fmt.Sprintf("%d is not in the range 1 to 255", l.gridPoints)}
	}
	clutSize, ok := clutEntries(uniformGrid(l.gridPoints, l.inputChannels), l.outputChannels)
	if !ok {
		return &InvalidValueError{Type: Lut8Type, Field: "CLUT", Reason: "too large"}
	}
	if err := checkLen(Lut8Type, "input tables", len(l.inputTables), uint64(256*l.inputChannels)); err != nil {
		return err
	}
	if err := checkLen(Lut8Type, "CLUT entries", len(l.clut), clutSize); err != nil {
		return err
	}
	return checkLen(Lut8Type, "output tables", len(l.outputTables), uint64(256*l.outputChannels))
}

func checkLen(typ TypeSignature, field string, have int, want uint64) error {
	if uint64(have) != want {
		return &CountMismatchError{Type: typ, Field: field, Declared: want, Actual: uint64(have)}
	}
	return nil
}

func (l *Lut8) TypeSignature() TypeSignature { return Lut8Type }
func (l *Lut8) InputChannels() int           { return l.inputChannels }
func (l *Lut8) OutputChannels() int          { return l.outputChannels }

// GridPoints returns the number of grid points in each dimension of the
// colour lookup table.
func (l *Lut8) GridPoints() int { return l.gridPoints }

// Matrix returns the 3×3 matrix, in row-major order.  The matrix is only
// used if the input space is XYZ.
func (l *Lut8) Matrix() [9]S15Fixed16 { return l.matrix }

// InputTable returns the 256-entry input table for channel i.
func (l *Lut8) InputTable(i int) []uint8 {
	return append([]uint8(nil), l.inputTables[256*i:256*(i+1)]...)
}

// CLUT returns the values of the colour lookup table.
func (l *Lut8) CLUT() []uint8 { return append([]uint8(nil), l.clut...) }

// OutputTable returns the 256-entry output table for channel i.
func (l *Lut8) OutputTable(i int) []uint8 {
	return append([]uint8(nil), l.outputTables[256*i:256*(i+1)]...)
}

func readLutHeader(r *reader, typ TypeSignature) (inputs, outputs, grid int, matrix [9]S15Fixed16, ok bool) {
	inputs = int(r.u8())
	outputs = int(r.u8())
	grid = int(r.u8())
	r.skip(1) // padding
	for i := range matrix {
		matrix[i] = r.s15()
	}
	if r.err != nil {
		return
	}
	if err := checkChannels(typ, inputs, outputs); err != nil {
		r.fail(err)
		return
	}
	if grid < 1 {
		r.fail(&InvalidValueError{Type: typ, Field: "grid points", Reason: "must be at least 1"})
		return
	}
	ok = true
	return
}

func decodeLut8(r *reader, h recordHead) Record {
	inputs, outputs, grid, matrix, ok := readLutHeader(r, Lut8Type)
	if !ok {
		return nil
	}
	clutSize, ok := clutEntries(uniformGrid(grid, inputs), outputs)
	if !ok {
		clutSize = 1 << 40 // reported as truncation below
	}
	l := &Lut8{
		recordHead:     h,
		inputChannels:  inputs,
		outputChannels: outputs,
		gridPoints:     grid,
		matrix:         matrix,
	}
	l.inputTables = readBytes(r, uint64(256*inputs))
	l.clut = readBytes(r, clutSize)
	l.outputTables = readBytes(r, uint64(256*outputs))
	return l
}

// readBytes returns a copy of the next n bytes.
func readBytes(r *reader, n uint64) []uint8 {
	if !r.needItems(n, 1) {
		return nil
	}
	return append([]uint8(nil), r.bytes(int(n))...)
}

func readUint16s(r *reader, n uint64) []uint16 {
	if !r.needItems(n, 2) {
		return nil
	}
	res := make([]uint16, n)
	for i := range res {
		res[i] = r.u16()
	}
	return res
}

func (l *Lut8) encode(w *writer) {
	w.head(Lut8Type, l.reserved)
	w.u8(uint8(l.inputChannels))
	w.u8(uint8(l.outputChannels))
	w.u8(uint8(l.gridPoints))
	w.u8(0)
	for _, v := range l.matrix {
		w.s15(v)
	}
	w.bytes(l.inputTables)
	w.bytes(l.clut)
	w.bytes(l.outputTables)
}

// ----------------------------------------------------------------------------
// Lut16 - lut16Type (mft2)
// ----------------------------------------------------------------------------

// Lut16 is a lut16Type record ('mft2').
// Processing order: Matrix → InputTables → CLUT → OutputTables
type Lut16 struct {
	recordHead
	inputChannels  int
	outputChannels int
	gridPoints     int
	matrix         [9]S15Fixed16
	inputEntries   int
	outputEntries  int
	inputTables    []uint16 // inputEntries per input channel
	clut           []uint16
	outputTables   []uint16 // outputEntries per output channel
}

const (
	minLut16Entries = 2
	maxLut16Entries = 4096
)

// NewLut16 returns a lut16Type record.  Each input table has inputEntries
// entries and each output table has outputEntries entries; both must be in
// the range 2 to 4096.
func NewLut16(matrix [9]S15Fixed16, inputs, outputs, gridPoints, inputEntries, outputEntries int, inputTables, clut, outputTables []uint16) (*Lut16, error) {
	l := &Lut16{
		inputChannels:  inputs,
		outputChannels: outputs,
		gridPoints:     gridPoints,
		matrix:         matrix,
		inputEntries:   inputEntries,
		outputEntries:  outputEntries,
		inputTables:    append([]uint16(nil), inputTables...),
		clut:           append([]uint16(nil), clut...),
		outputTables:   append([]uint16(nil), outputTables...),
	}
	if err := l.valid(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lut16) valid() error {
	if err := checkChannels(Lut16Type, l.inputChannels, l.outputChannels); err != nil {
		return err
	}
	if l.gridPoints < 1 || l.gridPoints > 255 {
		return &InvalidValueError{Type: Lut16Type, Field: "grid points",
			Reason: fmt.Sprintf("%d is not in the range 1 to 255", l.gridPoints)}
	}
	if err := checkLut16Entries("input table entries", l.inputEntries); err != nil {
		return err
	}
	if err := checkLut16Entries("output table entries", l.outputEntries); err != nil {
		return err
	}
	clutSize, ok := clutEntries(uniformGrid(l.gridPoints, l.inputChannels), l.outputChannels)
	if !ok {
		return &InvalidValueError{Type: Lut16Type, Field: "CLUT", Reason: "too large"}
	}
	if err := checkLen(Lut16Type, "input tables", len(l.inputTables), uint64(l.inputEntries*l.inputChannels)); err != nil {
		return err
	}
	if err := checkLen(Lut16Type, "CLUT entries", len(l.clut), clutSize); err != nil {
		return err
	}
	return checkLen(Lut16Type, "output tables", len(l.outputTables), uint64(l.outputEntries*l.outputChannels))
}

func checkLut16Entries(field string, n int) error {
	if n < minLut16Entries || n > maxLut16Entries {
		return &InvalidValueError{Type: Lut16Type, Field: field,
			Reason: fmt.Sprintf("%d is not in the range %d to %d", n, minLut16Entries, maxLut16Entries)}
	}
	return nil
}

func (l *Lut16) TypeSignature() TypeSignature { return Lut16Type }
func (l *Lut16) InputChannels() int           { return l.inputChannels }
func (l *Lut16) OutputChannels() int          { return l.outputChannels }

// GridPoints returns the number of grid points in each dimension of the
// colour lookup table.
func (l *Lut16) GridPoints() int { return l.gridPoints }

// Matrix returns the 3×3 matrix, in row-major order.
func (l *Lut16) Matrix() [9]S15Fixed16 { return l.matrix }

// InputTable returns the input table for channel i.
func (l *Lut16) InputTable(i int) []uint16 {
	n := l.inputEntries
	return append([]uint16(nil), l.inputTables[n*i:n*(i+1)]...)
}

// CLUT returns the values of the colour lookup table.
func (l *Lut16) CLUT() []uint16 { return append([]uint16(nil), l.clut...) }

// OutputTable returns the output table for channel i.
func (l *Lut16) OutputTable(i int) []uint16 {
	n := l.outputEntries
	return append([]uint16(nil), l.outputTables[n*i:n*(i+1)]...)
}

func decodeLut16(r *reader, h recordHead) Record {
	inputs, outputs, grid, matrix, ok := readLutHeader(r, Lut16Type)
	if !ok {
		return nil
	}
	inputEntries := int(r.u16())
	outputEntries := int(r.u16())
	if r.err != nil {
		return nil
	}
	if err := checkLut16Entries("input table entries", inputEntries); err != nil {
		r.fail(err)
		return nil
	}
	if err := checkLut16Entries("output table entries", outputEntries); err != nil {
		r.fail(err)
		return nil
	}
	clutSize, ok := clutEntries(uniformGrid(grid, inputs), outputs)
	if !ok {
		clutSize = 1 << 40
	}
	l := &Lut16{
		recordHead:     h,
		inputChannels:  inputs,
		outputChannels: outputs,
		gridPoints:     grid,
		matrix:         matrix,
		inputEntries:   inputEntries,
		outputEntries:  outputEntries,
	}
	l.inputTables = readUint16s(r, uint64(inputEntries*inputs))
	l.clut = readUint16s(r, clutSize)
	l.outputTables = readUint16s(r, uint64(outputEntries*outputs))
	return l
}

func (l *Lut16) encode(w *writer) {
	w.head(Lut16Type, l.reserved)
	w.u8(uint8(l.inputChannels))
	w.u8(uint8(l.outputChannels))
	w.u8(uint8(l.gridPoints))
	w.u8(0)
	for _, v := range l.matrix {
		w.s15(v)
	}
	w.u16(uint16(l.inputEntries))
	w.u16(uint16(l.outputEntries))
	for _, tab := range [][]uint16{l.inputTables, l.clut, l.outputTables} {
		for _, v := range tab {
			w.u16(v)
		}
	}
}

// ----------------------------------------------------------------------------
// CLUT - colour lookup table of lutAToBType and lutBToAType
// ----------------------------------------------------------------------------

// CLUT is the multi-dimensional colour lookup table of a [LutAToB] or
// [LutBToA] record.
type CLUT struct {
	gridPoints []uint8
	outputs    int
	precision  int
	data       []uint16
}

// NewCLUT returns a colour lookup table.  The grid has one entry per input
// channel.  Precision is the number of bytes per value, 1 or 2; for
// precision 1 all values must be at most 255.  The data holds one value per
// output channel for each grid point, with the first input varying
// slowest.
func NewCLUT(gridPoints []uint8, outputs int, precision int, data []uint16) (*CLUT, error) {
	c := &CLUT{
		gridPoints: append([]uint8(nil), gridPoints...),
		outputs:    outputs,
		precision:  precision,
		data:       append([]uint16(nil), data...),
	}
	if err := c.valid(0); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CLUT) valid(typ TypeSignature) error {
	if err := checkCLUTShape(typ, c.gridPoints, c.outputs, c.precision); err != nil {
		return err
	}
	n, ok := clutEntries(gridInts(c.gridPoints), c.outputs)
	if !ok {
		return &InvalidValueError{Type: typ, Field: "CLUT", Reason: "too large"}
	}
	if err := checkLen(typ, "CLUT entries", len(c.data), n); err != nil {
		return err
	}
	if c.precision == 1 {
		for _, v := range c.data {
			if v > 0xFF {
				return &InvalidValueError{Type: typ, Field: "CLUT", Reason: "value does not fit into 8 bits"}
			}
		}
	}
	return nil
}

func checkCLUTShape(typ TypeSignature, gridPoints []uint8, outputs int, precision int) error {
	if len(gridPoints) < 1 || len(gridPoints) > maxLutChannels {
		return &InvalidValueError{Type: typ, Field: "CLUT input channels",
			Reason: fmt.Sprintf("%d is not in the range 1 to %d", len(gridPoints), maxLutChannels)}
	}
	for _, g := range gridPoints {
		if g == 0 {
			return &InvalidValueError{Type: typ, Field: "CLUT grid points", Reason: "must be at least 1"}
		}
	}
	if outputs < 1 || outputs > maxLutChannels {
		return &InvalidValueError{Type: typ, Field: "CLUT output channels",
			Reason: fmt.Sprintf("%d is not in the range 1 to %d", outputs, maxLutChannels)}
	}
	if precision != 1 && precision != 2 {
		return &InvalidValueError{Type: typ, Field: "CLUT precision",
			Reason: fmt.Sprintf("%d is not 1 or 2", precision)}
	}
	return nil
}

func gridInts(gridPoints []uint8) []int {
	res := make([]int, len(gridPoints))
	for i, g := range gridPoints {
		res[i] = int(g)
	}
	return res
}

// GridPoints returns the number of grid points for each input channel.
func (c *CLUT) GridPoints() []uint8 { return append([]uint8(nil), c.gridPoints...) }

// Outputs returns the number of output channels.
func (c *CLUT) Outputs() int { return c.outputs }

// Precision returns the number of bytes used for each value.
func (c *CLUT) Precision() int { return c.precision }

// Data returns the table values.
func (c *CLUT) Data() []uint16 { return append([]uint16(nil), c.data...) }

func readCLUT(r *reader, inputs, outputs int) *CLUT {
	grid := r.bytes(16)
	precision := int(r.u8())
	r.skip(3) // padding
	if r.err != nil {
		return nil
	}
	c := &CLUT{
		gridPoints: append([]uint8(nil), grid[:inputs]...),
		outputs:    outputs,
		precision:  precision,
	}
	if err := checkCLUTShape(r.typ, c.gridPoints, outputs, precision); err != nil {
		r.fail(err)
		return nil
	}
	n, ok := clutEntries(gridInts(c.gridPoints), outputs)
	if !ok {
		n = 1 << 40
	}
	if precision == 1 {
		b := readBytes(r, n)
		c.data = make([]uint16, len(b))
		for i, v := range b {
			c.data[i] = uint16(v)
		}
	} else {
		c.data = readUint16s(r, n)
	}
	if r.err != nil {
		return nil
	}
	return c
}

func (c *CLUT) encode(w *writer) {
	var grid [16]byte
	copy(grid[:], c.gridPoints)
	w.bytes(grid[:])
	w.u8(uint8(c.precision))
	w.zeros(3)
	for _, v := range c.data {
		if c.precision == 1 {
			w.u8(uint8(v))
		} else {
			w.u16(v)
		}
	}
}

// ----------------------------------------------------------------------------
// LutAToB, LutBToA - lutAToBType (mAB ) and lutBToAType (mBA )
// ----------------------------------------------------------------------------

// LutStages holds the processing elements of a [LutAToB] or [LutBToA]
// record.  Absent elements are nil.
//
// For LutAToB the processing order is A → CLUT → M → Matrix → B; for
// LutBToA it is B → Matrix → M → CLUT → A.  The B curves are required.
// The A curves and the CLUT are either both present or both absent, and
// the same holds for the M curves and the matrix.
type LutStages struct {
	A      []CurveRecord
	CLUT   *CLUT
	M      []CurveRecord
	Matrix *[12]S15Fixed16 // 3×3 matrix in row-major order, followed by three offsets
	B      []CurveRecord
}

type lutAB struct {
	recordHead
	inputChannels  int
	outputChannels int
	stages         LutStages
}

func (l *lutAB) InputChannels() int  { return l.inputChannels }
func (l *lutAB) OutputChannels() int { return l.outputChannels }

// Stages returns the processing elements of the table.
func (l *lutAB) Stages() LutStages {
	s := l.stages
	s.A = append([]CurveRecord(nil), s.A...)
	s.M = append([]CurveRecord(nil), s.M...)
	s.B = append([]CurveRecord(nil), s.B...)
	if s.Matrix != nil {
		m := *s.Matrix
		s.Matrix = &m
	}
	return s
}

// LutAToB is a lutAToBType record ('mAB ').
type LutAToB struct {
	lutAB
}

// LutBToA is a lutBToAType record ('mBA ').
type LutBToA struct {
	lutAB
}

func (l *LutAToB) TypeSignature() TypeSignature { return LutAToBType }
func (l *LutBToA) TypeSignature() TypeSignature { return LutBToAType }

// NewLutAToB returns a lutAToBType record.
func NewLutAToB(inputs, outputs int, stages LutStages) (*LutAToB, error) {
	l, err := newLutAB(LutAToBType, inputs, outputs, stages)
	if err != nil {
		return nil, err
	}
	return &LutAToB{l}, nil
}

// NewLutBToA returns a lutBToAType record.
func NewLutBToA(inputs, outputs int, stages LutStages) (*LutBToA, error) {
	l, err := newLutAB(LutBToAType, inputs, outputs, stages)
	if err != nil {
		return nil, err
	}
	return &LutBToA{l}, nil
}

// stageChannels returns the number of curves in the A, M and B stages.
func stageChannels(typ TypeSignature, inputs, outputs int) (nA, nM, nB int) {
	if typ == LutAToBType {
		return inputs, outputs, outputs
	}
	return outputs, inputs, inputs
}

func checkStages(typ TypeSignature, inputs, outputs int, s *LutStages) error {
	if err := checkChannels(typ, inputs, outputs); err != nil {
		return err
	}
	nA, nM, nB := stageChannels(typ, inputs, outputs)

	if s.B == nil {
		return &InvalidValueError{Type: typ, Field: "B curves", Reason: "missing"}
	}
	if err := checkLen(typ, "B curves", len(s.B), uint64(nB)); err != nil {
		return err
	}

	if (s.M == nil) != (s.Matrix == nil) {
		return &InvalidValueError{Type: typ, Field: "M curves", Reason: "M curves and matrix must be used together"}
	}
	if s.M != nil {
		if err := checkLen(typ, "M curves", len(s.M), uint64(nM)); err != nil {
			return err
		}
		if nM != 3 {
			return &InvalidValueError{Type: typ, Field: "matrix", Reason: "requires three channels"}
		}
	}

	if (s.A == nil) != (s.CLUT == nil) {
		return &InvalidValueError{Type: typ, Field: "A curves", Reason: "A curves and CLUT must be used together"}
	}
	if s.A != nil {
		if err := checkLen(typ, "A curves", len(s.A), uint64(nA)); err != nil {
			return err
		}
		if err := s.CLUT.valid(typ); err != nil {
			return err
		}
		if len(s.CLUT.gridPoints) != inputs || s.CLUT.outputs != outputs {
			return &InvalidValueError{Type: typ, Field: "CLUT",
				Reason: fmt.Sprintf("CLUT maps %d to %d channels, expected %d to %d",
					len(s.CLUT.gridPoints), s.CLUT.outputs, inputs, outputs)}
		}
	} else if inputs != outputs {
		return &InvalidValueError{Type: typ, Field: "CLUT", Reason: "required when channel counts differ"}
	}

	for _, list := range [][]CurveRecord{s.A, s.M, s.B} {
		for _, c := range list {
			if c == nil {
				return &InvalidValueError{Type: typ, Field: "curves", Reason: "nil curve"}
			}
			if err := checkValid(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func newLutAB(typ TypeSignature, inputs, outputs int, stages LutStages) (lutAB, error) {
	if err := checkStages(typ, inputs, outputs, &stages); err != nil {
		return lutAB{}, err
	}
	l := lutAB{inputChannels: inputs, outputChannels: outputs, stages: stages}
	l.stages = l.Stages() // take copies of the slices
	return l, nil
}

const lutABHeaderSize = 32

func decodeLutAToB(r *reader, h recordHead) Record {
	l, ok := readLutAB(r, h, LutAToBType)
	if !ok {
		return nil
	}
	return &LutAToB{l}
}

func decodeLutBToA(r *reader, h recordHead) Record {
	l, ok := readLutAB(r, h, LutBToAType)
	if !ok {
		return nil
	}
	return &LutBToA{l}
}

func readLutAB(r *reader, h recordHead, typ TypeSignature) (lutAB, bool) {
	l := lutAB{recordHead: h}
	l.inputChannels = int(r.u8())
	l.outputChannels = int(r.u8())
	r.skip(2) // padding
	offB := r.u32()
	offMatrix := r.u32()
	offM := r.u32()
	offCLUT := r.u32()
	offA := r.u32()
	if r.err != nil {
		return l, false
	}
	if err := checkChannels(typ, l.inputChannels, l.outputChannels); err != nil {
		r.fail(err)
		return l, false
	}

	fields := []struct {
		name string
		off  uint32
	}{
		{"B curves", offB}, {"matrix", offMatrix}, {"M curves", offM}, {"CLUT", offCLUT}, {"A curves", offA},
	}
	for _, f := range fields {
		if f.off != 0 && (f.off < lutABHeaderSize || uint64(f.off) >= uint64(len(r.data))) {
			r.fail(&InvalidOffsetError{Type: typ, Field: f.name, Offset: uint64(f.off),
				Min: lutABHeaderSize, Max: uint64(len(r.data))})
			return l, false
		}
	}

	nA, nM, nB := stageChannels(typ, l.inputChannels, l.outputChannels)
	s := &l.stages
	if offB != 0 {
		s.B = readCurves(r, int(offB), nB)
	}
	if offMatrix != 0 {
		r.seek(int(offMatrix))
		var m [12]S15Fixed16
		for i := range m {
			m[i] = r.s15()
		}
		s.Matrix = &m
	}
	if offM != 0 {
		s.M = readCurves(r, int(offM), nM)
	}
	if offCLUT != 0 {
		r.seek(int(offCLUT))
		s.CLUT = readCLUT(r, l.inputChannels, l.outputChannels)
	}
	if offA != 0 {
		s.A = readCurves(r, int(offA), nA)
	}
	if r.err != nil {
		return l, false
	}
	if err := checkStages(typ, l.inputChannels, l.outputChannels, s); err != nil {
		r.fail(err)
		return l, false
	}
	return l, true
}

func (l *lutAB) encodeAs(w *writer, typ TypeSignature) {
	start := w.len()
	w.head(typ, l.reserved)
	w.u8(uint8(l.inputChannels))
	w.u8(uint8(l.outputChannels))
	w.u16(0)
	offsets := w.len()
	w.zeros(20)

	s := &l.stages
	patch := func(i int) {
		w.patch32(offsets+4*i, uint32(w.len()-start))
	}
	if s.B != nil {
		patch(0)
		writeCurves(w, s.B)
	}
	if s.Matrix != nil {
		patch(1)
		for _, v := range s.Matrix {
			w.s15(v)
		}
	}
	if s.M != nil {
		patch(2)
		writeCurves(w, s.M)
	}
	if s.CLUT != nil {
		patch(3)
		s.CLUT.encode(w)
		w.pad4()
	}
	if s.A != nil {
		patch(4)
		writeCurves(w, s.A)
	}
}

func (l *LutAToB) encode(w *writer) { l.encodeAs(w, LutAToBType) }
func (l *LutBToA) encode(w *writer) { l.encodeAs(w, LutBToAType) }

func (l *LutAToB) valid() error {
	return checkStages(LutAToBType, l.inputChannels, l.outputChannels, &l.stages)
}

func (l *LutBToA) valid() error {
	return checkStages(LutBToAType, l.inputChannels, l.outputChannels, &l.stages)
}
