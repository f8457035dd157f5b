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
	"errors"
	"testing"
)

func checkEnumTable[T ~uint16 | ~uint32](t *testing.T, table *enumTable[T], fourChar bool) {
	t.Helper()
	for _, e := range table.entries {
		v, err := table.parse(e.text)
		if err != nil || v != e.value {
			t.Errorf("%s: parse(%q) = %v, %v", table.kind, e.text, v, err)
		}
		v, err = table.fromCode(uint32(e.value))
		if err != nil || v != e.value {
			t.Errorf("%s: fromCode(0x%08X) = %v, %v", table.kind, uint32(e.value), v, err)
		}
		if table.text(e.value) != e.text {
			t.Errorf("%s: text(0x%08X) = %q, want %q", table.kind, uint32(e.value), table.text(e.value), e.text)
		}
		if fourChar && (len(e.text) != 4 || uint32(e.value) != pack4(e.text)) {
			t.Errorf("%s: code 0x%08X does not match %q", table.kind, uint32(e.value), e.text)
		}
	}

	values := table.values()
	if len(values) != len(table.entries) {
		t.Errorf("%s: %d values for %d entries", table.kind, len(values), len(table.entries))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			t.Errorf("%s: values not strictly increasing", table.kind)
		}
	}

	var unknown *UnrecognizedSignatureError
	if _, err := table.parse("????"); !errors.As(err, &unknown) || unknown.Kind != table.kind {
		t.Errorf("%s: parse of unknown text gave %v", table.kind, err)
	}
	if _, err := table.fromCode(0x3F3F3F3F); !errors.As(err, &unknown) || unknown.Code != 0x3F3F3F3F {
		t.Errorf("%s: unknown code gave %v", table.kind, err)
	}
}

func TestEnumTables(t *testing.T) {
	checkEnumTable(t, profileClasses, true)
	checkEnumTable(t, colorSpaces, true)
	checkEnumTable(t, technologies, true)
	checkEnumTable(t, curveMeasurements, true)
	checkEnumTable(t, imageStates, true)
	checkEnumTable(t, platforms, true)
	checkEnumTable(t, renderingIntents, false)
	checkEnumTable(t, observers, false)
	checkEnumTable(t, geometries, false)
	checkEnumTable(t, illuminants, false)
	checkEnumTable(t, phosphorColorants, false)
}

func TestEnumAccessors(t *testing.T) {
	c, err := ParseProfileClass("mntr")
	if err != nil || c != DisplayDeviceProfile {
		t.Errorf("ParseProfileClass: %v %v", c, err)
	}
	if c.String() != "Display Device Profile" || c.Text() != "mntr" {
		t.Errorf("unexpected names %q %q", c.String(), c.Text())
	}
	if s := ProfileClass(0x3F3F3F3F).String(); s != "ProfileClass(0x3F3F3F3F)" {
		t.Errorf("unknown class printed as %q", s)
	}

	_, err = ColorSpaceFromCode(0x12345678)
	var unknown *UnrecognizedSignatureError
	if !errors.As(err, &unknown) {
		t.Errorf("unknown colour space gave %v", err)
	}

	ri, err := ParseRenderingIntent("Saturation")
	if err != nil || ri != Saturation {
		t.Errorf("ParseRenderingIntent: %v %v", ri, err)
	}
	if _, err := RenderingIntentFromCode(4); err == nil {
		t.Error("rendering intent 4 accepted")
	}

	if PlatformMicrosoft.Text() != "MSFT" || Platform(0).String() != "none" {
		t.Error("unexpected platform names")
	}
}

func TestNumericEnumText(t *testing.T) {
	cases := []struct {
		text  string
		parse func(string) (string, error)
	}{
		{RelativeColorimetric.Text(), func(s string) (string, error) {
			v, err := ParseRenderingIntent(s)
			return v.Text(), err
		}},
		{ObserverCIE1964.Text(), func(s string) (string, error) {
			v, err := ParseStandardObserver(s)
			return v.Text(), err
		}},
		{Geometry0_d.Text(), func(s string) (string, error) {
			v, err := ParseMeasurementGeometry(s)
			return v.Text(), err
		}},
		{IlluminantE.Text(), func(s string) (string, error) {
			v, err := ParseStandardIlluminant(s)
			return v.Text(), err
		}},
		{ColorantEBU.Text(), func(s string) (string, error) {
			v, err := ParsePhosphorColorant(s)
			return v.Text(), err
		}},
	}
	for _, c := range cases {
		got, err := c.parse(c.text)
		if err != nil || got != c.text {
			t.Errorf("round trip of %q gave %q, %v", c.text, got, err)
		}
	}

	pairs := [][2]string{
		{RelativeColorimetric.Text(), "Relative Colorimetric"},
		{ObserverCIE1964.Text(), "CIE 1964"},
		{Geometry0_d.Text(), "0/d"},
		{IlluminantE.Text(), "E"},
		{ColorantEBU.Text(), "EBU Tech. 3213-E"},
		{RenderingIntent(9).Text(), ""},
	}
	for _, p := range pairs {
		if p[0] != p[1] {
			t.Errorf("got %q, want %q", p[0], p[1])
		}
	}
}

func TestNumComponents(t *testing.T) {
	cases := map[ColorSpace]int{
		GraySpace:    1,
		Color2Space:  2,
		RGBSpace:     3,
		CIELabSpace:  3,
		CMYKSpace:    4,
		Color5Space:  5,
		Color9Space:  9,
		Color10Space: 10,
		Color15Space: 15,
		0x3F3F3F3F:   0,
	}
	for cs, want := range cases {
		if got := cs.NumComponents(); got != want {
			t.Errorf("%s: got %d components, want %d", cs, got, want)
		}
	}
}

func TestAllowedTypes(t *testing.T) {
	if got := AllowedTypes(RedTRCTag); len(got) != 2 || got[0] != CurveType || got[1] != ParametricCurveType {
		t.Errorf("AllowedTypes(rTRC) = %v", got)
	}
	if AllowedTypes(0x70726976) != nil {
		t.Error("private tag has a type restriction")
	}

	// the result is a copy
	AllowedTypes(MediaWhitePointTag)[0] = TextType
	if err := checkTagType(MediaWhitePointTag, XYZType); err != nil {
		t.Error(err)
	}
	if err := checkTagType(MediaWhitePointTag, TextType); err == nil {
		t.Error("'text' accepted for wtpt")
	}
}
