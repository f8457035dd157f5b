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

// ResponseCurve is one measurement set of a [ResponseCurveSet16] record.
type ResponseCurve struct {
	// Unit is the measurement unit of the curve.
	Unit CurveMeasurement

	// Maximum gives, for each channel, the PCSXYZ values of the maximum
	// colorant value.
	Maximum []XYZNumber

	// Responses gives, for each channel, the measured responses.
	Responses [][]Response16Number
}

// ResponseCurveSet16 is a responseCurveSet16Type record ('rcs2').
type ResponseCurveSet16 struct {
	recordHead
	channels int
	curves   []ResponseCurve
}

// NewResponseCurveSet16 returns a response curve set.  Every curve must have
// one Maximum entry and one response slice per channel.
func NewResponseCurveSet16(channels int, curves ...ResponseCurve) (*ResponseCurveSet16, error) {
	s := &ResponseCurveSet16{channels: channels, curves: make([]ResponseCurve, len(curves))}
	for i, c := range curves {
		s.curves[i] = c.clone()
	}
	if err := s.valid(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ResponseCurveSet16) valid() error {
	if s.channels < 1 || s.channels > 0xFFFF {
		return &InvalidValueError{Type: ResponseCurveSet16Type, Field: "channel count",
			Reason: fmt.Sprintf("%d is not in the range 1 to 65535", s.channels)}
	}
	if len(s.curves) > 0xFFFF {
		return &InvalidValueError{Type: ResponseCurveSet16Type, Field: "curve count", Reason: "too many curves"}
	}
	for _, c := range s.curves {
		if len(c.Maximum) != s.channels {
			return &CountMismatchError{Type: ResponseCurveSet16Type, Field: "maximum values",
				Declared: uint64(s.channels), Actual: uint64(len(c.Maximum))}
		}
		if len(c.Responses) != s.channels {
			return &CountMismatchError{Type: ResponseCurveSet16Type, Field: "response arrays",
				Declared: uint64(s.channels), Actual: uint64(len(c.Responses))}
		}
	}
	return nil
}

func (c ResponseCurve) clone() ResponseCurve {
	res := ResponseCurve{
		Unit:      c.Unit,
		Maximum:   append([]XYZNumber(nil), c.Maximum...),
		Responses: make([][]Response16Number, len(c.Responses)),
	}
	for i, r := range c.Responses {
		res.Responses[i] = append([]Response16Number(nil), r...)
	}
	return res
}

func (s *ResponseCurveSet16) TypeSignature() TypeSignature { return ResponseCurveSet16Type }

// Channels returns the number of channels.
func (s *ResponseCurveSet16) Channels() int { return s.channels }

// Curves returns the response curves, one per measurement unit.
func (s *ResponseCurveSet16) Curves() []ResponseCurve {
	res := make([]ResponseCurve, len(s.curves))
	for i, c := range s.curves {
		res[i] = c.clone()
	}
	return res
}

func decodeResponseCurveSet16(r *reader, h recordHead) Record {
	channels := int(r.u16())
	count := int(r.u16())
	if !r.needItems(uint64(count), 4) {
		return nil
	}
	if channels == 0 {
		r.fail(&InvalidValueError{Type: ResponseCurveSet16Type, Field: "channel count", Reason: "must be positive"})
		return nil
	}
	tableEnd := uint64(r.pos + 4*count)
	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i] = r.u32()
		if uint64(offsets[i]) < tableEnd || uint64(offsets[i]) >= uint64(len(r.data)) {
			r.fail(&InvalidOffsetError{Type: ResponseCurveSet16Type, Field: fmt.Sprintf("curve %d", i),
				Offset: uint64(offsets[i]), Min: tableEnd, Max: uint64(len(r.data))})
			return nil
		}
	}

	s := &ResponseCurveSet16{recordHead: h, channels: channels, curves: make([]ResponseCurve, count)}
	for i, off := range offsets {
		r.seek(int(off))
		c := &s.curves[i]
		c.Unit = CurveMeasurement(r.u32())
		if !r.needItems(uint64(channels), 4+12) {
			return nil
		}
		counts := make([]uint32, channels)
		for j := range counts {
			counts[j] = r.u32()
		}
		c.Maximum = make([]XYZNumber, channels)
		for j := range c.Maximum {
			c.Maximum[j] = r.xyz()
		}
		c.Responses = make([][]Response16Number, channels)
		for j, m := range counts {
			if !r.needItems(uint64(m), 8) {
				return nil
			}
			resp := make([]Response16Number, m)
			for k := range resp {
				resp[k].Device = r.u16()
				r.skip(2) // reserved
				resp[k].Measurement = r.s15()
			}
			c.Responses[j] = resp
		}
	}
	if r.err != nil {
		return nil
	}
	return s
}

func (s *ResponseCurveSet16) encode(w *writer) {
	start := w.len()
	w.head(ResponseCurveSet16Type, s.reserved)
	w.u16(uint16(s.channels))
	w.u16(uint16(len(s.curves)))
	table := w.len()
	w.zeros(4 * len(s.curves))
	for i, c := range s.curves {
		w.patch32(table+4*i, uint32(w.len()-start))
		w.u32(uint32(c.Unit))
		for _, resp := range c.Responses {
			w.u32(uint32(len(resp)))
		}
		for _, xyz := range c.Maximum {
			w.xyz(xyz)
		}
		for _, resp := range c.Responses {
			for _, v := range resp {
				w.u16(v.Device)
				w.u16(0)
				w.s15(v.Measurement)
			}
		}
	}
}
