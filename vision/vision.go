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

// Package vision describes colour vision and colour vision deficiencies in
// terms of the three kinds of cone cells in the retina.
//
// Every [Kind] corresponds to exactly one [ConeSummary]:
//
//	Kind           L          M          S
//	Normal         normal     normal     normal
//	Protanomaly    anomalous  normal     normal
//	Protanopia     missing    normal     normal
//	Deuteranomaly  normal     anomalous  normal
//	Deuteranopia   normal     missing    normal
//	Tritanomaly    normal     normal     anomalous
//	Tritanopia     normal     normal     missing
//	Achromatomaly  missing    missing    normal
//	Achromatopsia  missing    missing    missing
//
// The remaining cone summaries do not correspond to a named kind.
package vision

import "fmt"

// ConeCell is one of the three types of photoreceptor responsible for
// colour vision.
type ConeCell uint8

// These are the three cone cells, ordered by decreasing wavelength.
const (
	Long   ConeCell = iota // L cones, most sensitive to red light
	Medium                 // M cones, most sensitive to green light
	Short                  // S cones, most sensitive to blue light
)

// ConeCellFromRune converts a letter to a cone cell.  The letters L, M
// and S select a cell by wavelength, R, G and B by colour.  Both upper and
// lower case letters are accepted.
func ConeCellFromRune(c rune) (ConeCell, bool) {
	switch c {
	case 'l', 'L', 'r', 'R':
		return Long, true
	case 'm', 'M', 'g', 'G':
		return Medium, true
	case 's', 'S', 'b', 'B':
		return Short, true
	}
	return 0, false
}

func (c ConeCell) String() string {
	switch c {
	case Long:
		return "L"
	case Medium:
		return "M"
	case Short:
		return "S"
	}
	return fmt.Sprintf("ConeCell(%d)", uint8(c))
}

// ConeCondition is the state of health of a cone cell.
type ConeCondition uint8

// The zero value is Normal.
const (
	Normal    ConeCondition = iota // present and healthy
	Anomalous                      // present with reduced spectral sensitivity
	Missing                        // absent
)

func (c ConeCondition) IsNormal() bool    { return c == Normal }
func (c ConeCondition) IsAnomalous() bool { return c == Anomalous }
func (c ConeCondition) IsMissing() bool   { return c == Missing }

func (c ConeCondition) String() string {
	switch c {
	case Normal:
		return "normal"
	case Anomalous:
		return "anomalous"
	case Missing:
		return "missing"
	}
	return fmt.Sprintf("ConeCondition(%d)", uint8(c))
}

// ConeSummary gives the condition of all three cone cells.
// The zero value describes normal vision.
type ConeSummary struct {
	L, M, S ConeCondition
}

// SummaryFromRGB creates a summary from the conditions of the cells
// sensitive to red, green and blue light.
func SummaryFromRGB(r, g, b ConeCondition) ConeSummary {
	return ConeSummary{L: r, M: g, S: b}
}

func (s ConeSummary) Red() ConeCondition   { return s.L }
func (s ConeSummary) Green() ConeCondition { return s.M }
func (s ConeSummary) Blue() ConeCondition  { return s.S }

// Cone returns the condition of the given cone cell.
// It panics if c is not one of Long, Medium or Short.
func (s ConeSummary) Cone(c ConeCell) ConeCondition {
	return s.Array()[c]
}

// Set changes the condition of the given cone cell.
func (s *ConeSummary) Set(c ConeCell, cond ConeCondition) {
	switch c {
	case Long:
		s.L = cond
	case Medium:
		s.M = cond
	case Short:
		s.S = cond
	default:
		panic(fmt.Sprintf("vision: invalid cone cell %d", uint8(c)))
	}
}

// Array returns the conditions in the order L, M, S.
func (s ConeSummary) Array() [3]ConeCondition {
	return [3]ConeCondition{s.L, s.M, s.S}
}

func (s ConeSummary) String() string {
	return fmt.Sprintf("L:%s M:%s S:%s", s.L, s.M, s.S)
}

// Kind is a type of colour vision.  The values are distinct bits, so that
// sets of kinds can be represented as bit masks.
type Kind uint8

// These are the supported types of colour vision.
const (
	NormalVision  Kind = 0
	Protanomaly   Kind = 1 << 0 // reduced sensitivity to red light
	Protanopia    Kind = 1 << 1 // blindness to red light
	Deuteranomaly Kind = 1 << 2 // reduced sensitivity to green light
	Deuteranopia  Kind = 1 << 3 // blindness to green light
	Tritanomaly   Kind = 1 << 4 // reduced sensitivity to blue light
	Tritanopia    Kind = 1 << 5 // blindness to blue light
	Achromatomaly Kind = 1 << 6 // only S cones remain
	Achromatopsia Kind = 1 << 7 // no functioning cones
)

type kindInfo struct {
	kind    Kind
	name    string
	summary ConeSummary
}

var kinds = []kindInfo{
	{NormalVision, "normal", ConeSummary{}},
	{Protanomaly, "protanomaly", ConeSummary{L: Anomalous}},
	{Protanopia, "protanopia", ConeSummary{L: Missing}},
	{Deuteranomaly, "deuteranomaly", ConeSummary{M: Anomalous}},
	{Deuteranopia, "deuteranopia", ConeSummary{M: Missing}},
	{Tritanomaly, "tritanomaly", ConeSummary{S: Anomalous}},
	{Tritanopia, "tritanopia", ConeSummary{S: Missing}},
	{Achromatomaly, "achromatomaly", ConeSummary{L: Missing, M: Missing}},
	{Achromatopsia, "achromatopsia", ConeSummary{L: Missing, M: Missing, S: Missing}},
}

func (k Kind) info() (kindInfo, bool) {
	for _, e := range kinds {
		if e.kind == k {
			return e, true
		}
	}
	return kindInfo{}, false
}

// Kinds returns all supported kinds of colour vision.
func Kinds() []Kind {
	res := make([]Kind, len(kinds))
	for i, e := range kinds {
		res[i] = e.kind
	}
	return res
}

func (k Kind) String() string {
	if e, ok := k.info(); ok {
		return e.name
	}
	return fmt.Sprintf("Kind(0x%02X)", uint8(k))
}

// SummaryFor returns the cone conditions which make up the given kind of
// colour vision.  Unknown kinds map to normal vision.
func SummaryFor(k Kind) ConeSummary {
	e, _ := k.info()
	return e.summary
}

// KindFor returns the kind of colour vision described by s.  The second
// return value is false if no kind matches.
func KindFor(s ConeSummary) (Kind, bool) {
	for _, e := range kinds {
		if e.summary == s {
			return e.kind, true
		}
	}
	return 0, false
}

// IsRedGreen reports whether k is a protan or deutan deficiency.
func (k Kind) IsRedGreen() bool { return k.IsProtan() || k.IsDeutan() }

// IsBlueYellow reports whether k is a tritan deficiency.
func (k Kind) IsBlueYellow() bool { return k.IsTritan() }

// IsProtan reports whether the L cones are anomalous or missing, while the
// other cones are normal.
func (k Kind) IsProtan() bool { return k == Protanomaly || k == Protanopia }

// IsDeutan reports whether the M cones are anomalous or missing, while the
// other cones are normal.
func (k Kind) IsDeutan() bool { return k == Deuteranomaly || k == Deuteranopia }

// IsTritan reports whether the S cones are anomalous or missing, while the
// other cones are normal.
func (k Kind) IsTritan() bool { return k == Tritanomaly || k == Tritanopia }

// IsMonochromacy reports whether at most one type of cone remains.
func (k Kind) IsMonochromacy() bool { return k == Achromatomaly || k == Achromatopsia }

// IsAnomalousTrichromacy reports whether exactly one cone type is
// anomalous and the others are normal.
func (k Kind) IsAnomalousTrichromacy() bool {
	return k == Protanomaly || k == Deuteranomaly || k == Tritanomaly
}

// IsDichromacy reports whether exactly one cone type is missing and the
// others are normal.
func (k Kind) IsDichromacy() bool {
	return k == Protanopia || k == Deuteranopia || k == Tritanopia
}
