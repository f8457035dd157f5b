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

// Measurement is a measurementType record ('meas'), describing the
// conditions under which the profile data were measured.
type Measurement struct {
	recordHead
	Observer   StandardObserver
	Backing    XYZNumber // tristimulus values of the measurement backing
	Geometry   MeasurementGeometry
	Flare      U16Fixed16 // 0 to 1, as a fraction
	Illuminant StandardIlluminant
}

func (m *Measurement) TypeSignature() TypeSignature { return MeasurementType }

func decodeMeasurement(r *reader, h recordHead) Record {
	return &Measurement{
		recordHead: h,
		Observer:   StandardObserver(r.u32()),
		Backing:    r.xyz(),
		Geometry:   MeasurementGeometry(r.u32()),
		Flare:      r.u16f16(),
		Illuminant: StandardIlluminant(r.u32()),
	}
}

func (m *Measurement) encode(w *writer) {
	w.head(MeasurementType, m.reserved)
	w.u32(uint32(m.Observer))
	w.xyz(m.Backing)
	w.u32(uint32(m.Geometry))
	w.u16f16(m.Flare)
	w.u32(uint32(m.Illuminant))
}

// ViewingConditions is a viewingConditionsType record ('view').
type ViewingConditions struct {
	recordHead
	Illuminant     XYZNumber // un-normalized, in cd/m²
	Surround       XYZNumber // un-normalized, in cd/m²
	IlluminantType StandardIlluminant
}

func (v *ViewingConditions) TypeSignature() TypeSignature { return ViewingConditionsType }

func decodeViewingConditions(r *reader, h recordHead) Record {
	return &ViewingConditions{
		recordHead:     h,
		Illuminant:     r.xyz(),
		Surround:       r.xyz(),
		IlluminantType: StandardIlluminant(r.u32()),
	}
}

func (v *ViewingConditions) encode(w *writer) {
	w.head(ViewingConditionsType, v.reserved)
	w.xyz(v.Illuminant)
	w.xyz(v.Surround)
	w.u32(uint32(v.IlluminantType))
}

// Chromaticity is a chromaticityType record ('chrm'), giving the CIE xy
// coordinates of the phosphors or colorants of a device.
type Chromaticity struct {
	recordHead
	Colorant PhosphorColorant
	channels [][2]U16Fixed16
}

// NewChromaticity returns a chromaticity record with one (x, y) pair per
// device channel.  At most 65535 channels are allowed.
func NewChromaticity(colorant PhosphorColorant, xy ...[2]U16Fixed16) (*Chromaticity, error) {
	c := &Chromaticity{Colorant: colorant, channels: make([][2]U16Fixed16, len(xy))}
	copy(c.channels, xy)
	if err := c.valid(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Chromaticity) valid() error {
	if len(c.channels) > 0xFFFF {
		return &InvalidValueError{Type: ChromaticityType, Field: "channel count", Reason: "too many channels"}
	}
	return nil
}

func (c *Chromaticity) TypeSignature() TypeSignature { return ChromaticityType }

// Channels returns the (x, y) coordinates for each device channel.
func (c *Chromaticity) Channels() [][2]U16Fixed16 {
	res := make([][2]U16Fixed16, len(c.channels))
	copy(res, c.channels)
	return res
}

func decodeChromaticity(r *reader, h recordHead) Record {
	n := r.u16()
	colorant := PhosphorColorant(r.u16())
	if !r.needItems(uint64(n), 8) {
		return nil
	}
	channels := make([][2]U16Fixed16, n)
	for i := range channels {
		channels[i] = [2]U16Fixed16{r.u16f16(), r.u16f16()}
	}
	return &Chromaticity{recordHead: h, Colorant: colorant, channels: channels}
}

func (c *Chromaticity) encode(w *writer) {
	w.head(ChromaticityType, c.reserved)
	w.u16(uint16(len(c.channels)))
	w.u16(uint16(c.Colorant))
	for _, xy := range c.channels {
		w.u16f16(xy[0])
		w.u16f16(xy[1])
	}
}
