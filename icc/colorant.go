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

const colorantNameSize = 32

// ColorantOrder is a colorantOrderType record ('clro').  Entry i gives the
// number of the colorant which is printed in the i-th position, counting
// from 0.
type ColorantOrder struct {
	recordHead
	Order []uint8
}

func (c *ColorantOrder) TypeSignature() TypeSignature { return ColorantOrderType }

func decodeColorantOrder(r *reader, h recordHead) Record {
	n := r.u32()
	if !r.needItems(uint64(n), 1) {
		return nil
	}
	order := make([]uint8, n)
	copy(order, r.bytes(int(n)))
	return &ColorantOrder{recordHead: h, Order: order}
}

func (c *ColorantOrder) encode(w *writer) {
	w.head(ColorantOrderType, c.reserved)
	w.u32(uint32(len(c.Order)))
	w.bytes(c.Order)
}

// Colorant is one entry of a [ColorantTable].
type Colorant struct {
	Name string    // at most 31 characters of 7-bit ASCII
	PCS  [3]uint16 // PCS values in 16-bit encoding
}

// ColorantTable is a colorantTableType record ('clrt').
type ColorantTable struct {
	recordHead
	colorants []Colorant
}

// NewColorantTable returns a colorant table.  Each name must fit into the
// 32-byte name field, including the terminating NUL.
func NewColorantTable(colorants ...Colorant) (*ColorantTable, error) {
	t := &ColorantTable{colorants: make([]Colorant, len(colorants))}
	copy(t.colorants, colorants)
	if err := t.valid(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *ColorantTable) valid() error {
	for i, c := range t.colorants {
		if err := checkASCII7(c.Name, colorantNameSize, ColorantTableType, fmt.Sprintf("colorant name %d", i)); err != nil {
			return err
		}
	}
	return nil
}

func (t *ColorantTable) TypeSignature() TypeSignature { return ColorantTableType }

// Colorants returns the entries of the table.
func (t *ColorantTable) Colorants() []Colorant {
	res := make([]Colorant, len(t.colorants))
	copy(res, t.colorants)
	return res
}

func decodeColorantTable(r *reader, h recordHead) Record {
	n := r.u32()
	if !r.needItems(uint64(n), colorantNameSize+6) {
		return nil
	}
	colorants := make([]Colorant, n)
	for i := range colorants {
		colorants[i].Name = r.fixedASCII(colorantNameSize, "colorant name")
		colorants[i].PCS = [3]uint16{r.u16(), r.u16(), r.u16()}
	}
	return &ColorantTable{recordHead: h, colorants: colorants}
}

func (t *ColorantTable) encode(w *writer) {
	w.head(ColorantTableType, t.reserved)
	w.u32(uint32(len(t.colorants)))
	for _, c := range t.colorants {
		w.fixedASCII(c.Name, colorantNameSize)
		w.u16(c.PCS[0])
		w.u16(c.PCS[1])
		w.u16(c.PCS[2])
	}
}

// NamedColor is one entry of a [NamedColor2] record.
type NamedColor struct {
	Name   string    // root name, at most 31 characters of 7-bit ASCII
	PCS    [3]uint16 // PCS coordinates in 16-bit encoding
	Device []uint16  // device coordinates, may be empty
}

// NamedColor2 is a namedColor2Type record ('ncl2').  All colours have the
// same number of device coordinates.
type NamedColor2 struct {
	recordHead
	vendorFlags  uint32
	prefix       string
	suffix       string
	deviceCoords int
	colors       []NamedColor
}

// maxDeviceCoords is the largest number of device coordinates allowed in
// a 'ncl2' record.
const maxDeviceCoords = 15

// NewNamedColor2 returns a named colour record.  Every colour must have
// exactly deviceCoords device coordinates.
func NewNamedColor2(vendorFlags uint32, prefix, suffix string, deviceCoords int, colors ...NamedColor) (*NamedColor2, error) {
	res := &NamedColor2{
		vendorFlags:  vendorFlags,
		prefix:       prefix,
		suffix:       suffix,
		deviceCoords: deviceCoords,
		colors:       make([]NamedColor, len(colors)),
	}
	for i, c := range colors {
		res.colors[i] = NamedColor{Name: c.Name, PCS: c.PCS, Device: append([]uint16(nil), c.Device...)}
	}
	if err := res.valid(); err != nil {
		return nil, err
	}
	return res, nil
}

func (n *NamedColor2) valid() error {
	if n.deviceCoords < 0 || n.deviceCoords > maxDeviceCoords {
		return &InvalidValueError{Type: NamedColor2Type, Field: "device coordinate count",
			Reason: fmt.Sprintf("%d is not in the range 0 to %d", n.deviceCoords, maxDeviceCoords)}
	}
	for _, s := range []struct{ val, field string }{{n.prefix, "prefix"}, {n.suffix, "suffix"}} {
		if err := checkASCII7(s.val, colorantNameSize, NamedColor2Type, s.field); err != nil {
			return err
		}
	}
	for _, c := range n.colors {
		if err := checkASCII7(c.Name, colorantNameSize, NamedColor2Type, "colour name"); err != nil {
			return err
		}
		if len(c.Device) != n.deviceCoords {
			return &CountMismatchError{Type: NamedColor2Type, Field: "device coordinates of " + c.Name,
				Declared: uint64(n.deviceCoords), Actual: uint64(len(c.Device))}
		}
	}
	return nil
}

func (n *NamedColor2) TypeSignature() TypeSignature { return NamedColor2Type }

// VendorFlags returns the vendor specific flags.  The lower 16 bits are
// reserved for the ICC.
func (n *NamedColor2) VendorFlags() uint32 { return n.vendorFlags }

// Prefix returns the prefix which is prepended to each colour name.
func (n *NamedColor2) Prefix() string { return n.prefix }

// Suffix returns the suffix which is appended to each colour name.
func (n *NamedColor2) Suffix() string { return n.suffix }

// DeviceCoords returns the number of device coordinates of each colour.
func (n *NamedColor2) DeviceCoords() int { return n.deviceCoords }

// Colors returns the named colours.
func (n *NamedColor2) Colors() []NamedColor {
	res := make([]NamedColor, len(n.colors))
	for i, c := range n.colors {
		res[i] = NamedColor{Name: c.Name, PCS: c.PCS, Device: append([]uint16(nil), c.Device...)}
	}
	return res
}

func decodeNamedColor2(r *reader, h recordHead) Record {
	res := &NamedColor2{recordHead: h}
	res.vendorFlags = r.u32()
	count := r.u32()
	coords := r.u32()
	res.prefix = r.fixedASCII(colorantNameSize, "prefix")
	res.suffix = r.fixedASCII(colorantNameSize, "suffix")
	if r.err != nil {
		return nil
	}
	if coords > maxDeviceCoords {
		r.fail(&InvalidValueError{Type: NamedColor2Type, Field: "device coordinate count",
			Reason: fmt.Sprintf("%d is larger than %d", coords, maxDeviceCoords)})
		return nil
	}
	res.deviceCoords = int(coords)
	if !r.needItems(uint64(count), colorantNameSize+6+2*int(coords)) {
		return nil
	}
	res.colors = make([]NamedColor, count)
	for i := range res.colors {
		c := &res.colors[i]
		c.Name = r.fixedASCII(colorantNameSize, "colour name")
		c.PCS = [3]uint16{r.u16(), r.u16(), r.u16()}
		if coords > 0 {
			c.Device = make([]uint16, coords)
			for j := range c.Device {
				c.Device[j] = r.u16()
			}
		}
	}
	return res
}

func (n *NamedColor2) encode(w *writer) {
	w.head(NamedColor2Type, n.reserved)
	w.u32(n.vendorFlags)
	w.u32(uint32(len(n.colors)))
	w.u32(uint32(n.deviceCoords))
	w.fixedASCII(n.prefix, colorantNameSize)
	w.fixedASCII(n.suffix, colorantNameSize)
	for _, c := range n.colors {
		w.fixedASCII(c.Name, colorantNameSize)
		w.u16(c.PCS[0])
		w.u16(c.PCS[1])
		w.u16(c.PCS[2])
		for _, v := range c.Device {
			w.u16(v)
		}
	}
}
