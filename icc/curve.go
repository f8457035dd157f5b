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

// CurveRecord is a one-dimensional transfer function: either a [*Curve] or
// a [*ParametricCurve].  Curve records are used for the TRC tags and inside
// 'mAB ' and 'mBA ' records.
type CurveRecord interface {
	Record
	isCurve()
}

var curveTypes = []TypeSignature{CurveType, ParametricCurveType}

// Curve is a curveType record ('curv').
//
// An empty Entries slice represents the identity function.  A single entry
// holds a gamma value as a [U8Fixed8] encoding.  Otherwise the entries are
// samples of the curve, evenly spaced on the input range [0, 1] and
// scaled to 0..65535.
type Curve struct {
	recordHead
	Entries []uint16
}

// NewGammaCurve returns the curve y = x^gamma.
func NewGammaCurve(gamma U8Fixed8) *Curve {
	return &Curve{Entries: []uint16{gamma.Raw()}}
}

func (c *Curve) TypeSignature() TypeSignature { return CurveType }

func (c *Curve) isCurve() {}

// IsIdentity reports whether the curve is the identity function.
func (c *Curve) IsIdentity() bool {
	return len(c.Entries) == 0
}

// Gamma returns the exponent of a gamma curve.  The second return value
// is false if the curve is not a gamma curve.
func (c *Curve) Gamma() (U8Fixed8, bool) {
	if len(c.Entries) != 1 {
		return 0, false
	}
	return U8Fixed8(c.Entries[0]), true
}

func decodeCurve(r *reader, h recordHead) Record {
	n := r.u32()
	if !r.needItems(uint64(n), 2) {
		return nil
	}
	entries := make([]uint16, n)
	for i := range entries {
		entries[i] = r.u16()
	}
	return &Curve{recordHead: h, Entries: entries}
}

func (c *Curve) encode(w *writer) {
	w.head(CurveType, c.reserved)
	w.u32(uint32(len(c.Entries)))
	for _, v := range c.Entries {
		w.u16(v)
	}
}

// ParametricCurve is a parametricCurveType record ('para').
//
// The function type selects one of the following functions, with
// parameters [g, a, b, c, d, e, f]:
//   - type 0: y = x^g
//   - type 1: y = (ax+b)^g for x >= -b/a, else y = 0
//   - type 2: y = (ax+b)^g + c for x >= -b/a, else y = c
//   - type 3: y = (ax+b)^g for x >= d, else y = cx
//   - type 4: y = (ax+b)^g + e for x >= d, else y = cx + f
type ParametricCurve struct {
	recordHead
	funcType uint16
	params   []S15Fixed16
}

// parametricCurveParams gives the number of parameters for each function
// type.
var parametricCurveParams = []int{1, 3, 4, 5, 7}

// NewParametricCurve returns a parametric curve.  The number of parameters
// must match the function type.
func NewParametricCurve(funcType uint16, params ...S15Fixed16) (*ParametricCurve, error) {
	c := &ParametricCurve{funcType: funcType, params: make([]S15Fixed16, len(params))}
	copy(c.params, params)
	if err := c.valid(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ParametricCurve) valid() error {
	if int(c.funcType) >= len(parametricCurveParams) {
		return &InvalidValueError{Type: ParametricCurveType, Field: "function type",
			Reason: fmt.Sprintf("%d is not in the range 0 to 4", c.funcType)}
	}
	if want := parametricCurveParams[c.funcType]; len(c.params) != want {
		return &CountMismatchError{Type: ParametricCurveType, Field: "parameter count",
			Declared: uint64(want), Actual: uint64(len(c.params))}
	}
	return nil
}

func (c *ParametricCurve) TypeSignature() TypeSignature { return ParametricCurveType }

func (c *ParametricCurve) isCurve() {}

// FuncType returns the function type, in the range 0 to 4.
func (c *ParametricCurve) FuncType() uint16 { return c.funcType }

// Params returns the parameters of the curve, starting with g.
func (c *ParametricCurve) Params() []S15Fixed16 {
	res := make([]S15Fixed16, len(c.params))
	copy(res, c.params)
	return res
}

func decodeParametricCurve(r *reader, h recordHead) Record {
	funcType := r.u16()
	r.skip(2) // reserved
	if r.err != nil {
		return nil
	}
	if int(funcType) >= len(parametricCurveParams) {
		r.fail(&InvalidValueError{Type: ParametricCurveType, Field: "function type",
			Reason: fmt.Sprintf("%d is not in the range 0 to 4", funcType)})
		return nil
	}
	params := make([]S15Fixed16, parametricCurveParams[funcType])
	for i := range params {
		params[i] = r.s15()
	}
	return &ParametricCurve{recordHead: h, funcType: funcType, params: params}
}

func (c *ParametricCurve) encode(w *writer) {
	w.head(ParametricCurveType, c.reserved)
	w.u16(c.funcType)
	w.u16(0)
	for _, p := range c.params {
		w.s15(p)
	}
}

// readCurves reads n curve records, starting at position pos of r.  Each
// curve starts on a four-byte boundary relative to the start of the
// enclosing record.
func readCurves(r *reader, pos int, n int) []CurveRecord {
	res := make([]CurveRecord, n)
	for i := range res {
		rec, end := readNested(r, pos, curveTypes...)
		if r.err != nil {
			return nil
		}
		res[i] = rec.(CurveRecord)
		pos = align4(end)
	}
	return res
}

// writeCurves writes curve records, each padded to a multiple of four
// bytes.
func writeCurves(w *writer, curves []CurveRecord) {
	for _, c := range curves {
		c.encode(w)
		w.pad4()
	}
}
