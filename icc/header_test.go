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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeviceAttributes(t *testing.T) {
	a := DeviceAttributesFromHalves(0xDEADBEEF, uint32(AttrTransparency|AttrNegative|AttrSelfLuminous))
	require.Equal(t, DeviceAttributes(0xDEADBEEF_00000085), a)

	high, low := a.Halves()
	require.Equal(t, uint32(0xDEADBEEF), high)
	require.Equal(t, uint32(0x85), low)

	require.True(t, a.Transparency())
	require.False(t, a.Matte())
	require.True(t, a.Negative())
	require.False(t, a.BlackAndWhite())
	require.False(t, a.NonPaper())
	require.False(t, a.Textured())
	require.False(t, a.NonIsotropic())
	require.True(t, a.SelfLuminous())
}

func TestProfileFlags(t *testing.T) {
	f := FlagEmbedded | FlagMCSSubset | 0xABCD0000
	require.True(t, f.Embedded())
	require.False(t, f.NotIndependent())
	require.True(t, f.MCSSubset())
	require.Equal(t, uint16(0xABCD), f.Vendor())
}

func TestHeaderEncoding(t *testing.T) {
	h := testHeader()
	h.Size = 1234
	h.Illuminant = D50
	h.ID = ProfileID{0: 1, 15: 2}
	h.reserved[27] = 9

	w := &writer{}
	h.encode(w)
	require.Len(t, w.buf, HeaderSize)
	require.Equal(t, []byte("acsp"), w.buf[36:40])
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0, 0, 0, 0x12}, w.buf[56:64])

	require.Equal(t, h, readHeader(w.buf))
	require.Equal(t, byte(9), h.Reserved()[27])
	require.Equal(t, "01000000000000000000000000000002", h.ID.String())
}

func TestVersionString(t *testing.T) {
	cases := map[Version]string{
		Version2_1_0:        "2.1.0",
		Version4_4_0:        "4.4.0",
		Version(0x04201234): "4.2.0.1234",
	}
	for v, want := range cases {
		require.Equal(t, want, v.String())
	}
}
