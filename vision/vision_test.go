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

package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConeCellFromRune(t *testing.T) {
	for _, c := range "lLrR" {
		got, ok := ConeCellFromRune(c)
		require.True(t, ok)
		assert.Equal(t, Long, got, "%q", c)
	}
	for _, c := range "mMgG" {
		got, ok := ConeCellFromRune(c)
		require.True(t, ok)
		assert.Equal(t, Medium, got, "%q", c)
	}
	for _, c := range "sSbB" {
		got, ok := ConeCellFromRune(c)
		require.True(t, ok)
		assert.Equal(t, Short, got, "%q", c)
	}
	for _, c := range "xY0 " {
		_, ok := ConeCellFromRune(c)
		assert.False(t, ok, "%q", c)
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	seen := map[ConeSummary]bool{}
	for _, k := range Kinds() {
		s := SummaryFor(k)
		require.False(t, seen[s], "duplicate summary %s", s)
		seen[s] = true

		got, ok := KindFor(s)
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	_, ok := KindFor(ConeSummary{L: Anomalous, M: Missing})
	assert.False(t, ok)
}

func TestSummaryValues(t *testing.T) {
	assert.Equal(t, ConeSummary{}, SummaryFor(NormalVision))
	assert.Equal(t, ConeSummary{L: Missing, M: Missing, S: Normal}, SummaryFor(Achromatomaly))

	p := SummaryFor(Protanomaly)
	assert.True(t, p.Red().IsAnomalous())
	assert.True(t, p.Green().IsNormal())
	assert.True(t, p.Blue().IsNormal())
	assert.Equal(t, Anomalous, p.Cone(Long))
	assert.Equal(t, [3]ConeCondition{Anomalous, Normal, Normal}, p.Array())

	d := SummaryFor(Deuteranopia)
	assert.True(t, d.Cone(Medium).IsMissing())
	assert.Equal(t, d, SummaryFromRGB(Normal, Missing, Normal))

	var s ConeSummary
	s.Set(Short, Missing)
	assert.Equal(t, SummaryFor(Tritanopia), s)
	assert.Panics(t, func() { s.Set(ConeCell(3), Normal) })
}

func TestPredicates(t *testing.T) {
	type flags struct {
		redGreen, blueYellow, protan, deutan, tritan, mono, anomalous, dichromacy bool
	}
	cases := map[Kind]flags{
		NormalVision:  {},
		Protanomaly:   {redGreen: true, protan: true, anomalous: true},
		Protanopia:    {redGreen: true, protan: true, dichromacy: true},
		Deuteranomaly: {redGreen: true, deutan: true, anomalous: true},
		Deuteranopia:  {redGreen: true, deutan: true, dichromacy: true},
		Tritanomaly:   {blueYellow: true, tritan: true, anomalous: true},
		Tritanopia:    {blueYellow: true, tritan: true, dichromacy: true},
		Achromatomaly: {mono: true},
		Achromatopsia: {mono: true},
	}
	require.Len(t, cases, len(Kinds()))
	for k, want := range cases {
		got := flags{
			redGreen:   k.IsRedGreen(),
			blueYellow: k.IsBlueYellow(),
			protan:     k.IsProtan(),
			deutan:     k.IsDeutan(),
			tritan:     k.IsTritan(),
			mono:       k.IsMonochromacy(),
			anomalous:  k.IsAnomalousTrichromacy(),
			dichromacy: k.IsDichromacy(),
		}
		assert.Equal(t, want, got, k.String())
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "deuteranomaly", Deuteranomaly.String())
	assert.Equal(t, "Kind(0x03)", Kind(3).String())
	assert.Equal(t, "L:missing M:normal S:normal", SummaryFor(Protanopia).String())
	assert.Equal(t, "S", Short.String())
}
