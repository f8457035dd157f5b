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

import "encoding/hex"

// HeaderSize is the size of the profile header in bytes.
const HeaderSize = 128

// fileSignature is the value of the profile file signature field, "acsp".
const fileSignature = 0x61637370

// Header holds the fields of the 128-byte profile header.
type Header struct {
	// Size is the total size of the profile in bytes.  This is filled in
	// by [Decode] and by [Profile.Encode]; it is ignored by [Profile.SetHeader].
	Size uint32

	CMMType         Signature // preferred CMM, 0 if none
	Version         Version
	Class           ProfileClass
	ColorSpace      ColorSpace // device colour space
	PCS             ColorSpace // profile connection space
	Created         DateTimeNumber
	Platform        Platform
	Flags           ProfileFlags
	Manufacturer    Signature
	Model           Signature
	Attributes      DeviceAttributes
	RenderingIntent RenderingIntent
	Illuminant      XYZNumber // PCS illuminant, normally D50
	Creator         Signature

	// ID is the MD5 profile identifier.  It is computed by
	// [Profile.Encode]; values set by the caller are ignored.
	ID ProfileID

	reserved [28]byte
}

// Reserved returns the reserved bytes 100 to 127 of the header.
func (h *Header) Reserved() [28]byte {
	return h.reserved
}

func readHeader(data []byte) Header {
	r := newReader(data[:HeaderSize], 0)
	h := Header{
		Size:       r.u32(),
		CMMType:    Signature(r.u32()),
		Version:    Version(r.u32()),
		Class:      ProfileClass(r.u32()),
		ColorSpace: ColorSpace(r.u32()),
		PCS:        ColorSpace(r.u32()),
		Created:    r.dateTime(),
	}
	r.skip(4) // file signature
	h.Platform = Platform(r.u32())
	h.Flags = ProfileFlags(r.u32())
	h.Manufacturer = Signature(r.u32())
	h.Model = Signature(r.u32())
	h.Attributes = DeviceAttributes(r.u64())
	h.RenderingIntent = RenderingIntent(r.u32())
	h.Illuminant = r.xyz()
	h.Creator = Signature(r.u32())
	copy(h.ID[:], r.bytes(16))
	copy(h.reserved[:], r.bytes(28))
	return h
}

func (h *Header) encode(w *writer) {
	w.u32(h.Size)
	w.u32(uint32(h.CMMType))
	w.u32(uint32(h.Version))
	w.u32(uint32(h.Class))
	w.u32(uint32(h.ColorSpace))
	w.u32(uint32(h.PCS))
	w.dateTime(h.Created)
	w.u32(fileSignature)
	w.u32(uint32(h.Platform))
	w.u32(uint32(h.Flags))
	w.u32(uint32(h.Manufacturer))
	w.u32(uint32(h.Model))
	w.u64(uint64(h.Attributes))
	w.u32(uint32(h.RenderingIntent))
	w.xyz(h.Illuminant)
	w.u32(uint32(h.Creator))
	w.bytes(h.ID[:])
	w.bytes(h.reserved[:])
}

// ProfileID is the MD5 checksum identifying a profile.  The zero value
// means that no ID has been computed.
type ProfileID [16]byte

// IsZero reports whether the ID is missing.
func (id ProfileID) IsZero() bool {
	return id == ProfileID{}
}

func (id ProfileID) String() string {
	return hex.EncodeToString(id[:])
}

// ProfileFlags holds the profile flags of the header.  The low 16 bits are
// defined by the ICC, the high 16 bits are available to the CMM vendor.
type ProfileFlags uint32

// These are the profile flag bits defined by the ICC.
const (
	FlagEmbedded       ProfileFlags = 1 << 0 // profile is embedded in a file
	FlagNotIndependent ProfileFlags = 1 << 1 // profile cannot be used independently of the embedded colour data
	FlagMCSSubset      ProfileFlags = 1 << 2 // MCS channels are a subset of the connected profile's MCS
)

// Embedded reports whether the profile is embedded in a file.
func (f ProfileFlags) Embedded() bool { return f&FlagEmbedded != 0 }

// NotIndependent reports whether the profile cannot be used independently
// of the embedded colour data.
func (f ProfileFlags) NotIndependent() bool { return f&FlagNotIndependent != 0 }

// MCSSubset reports whether the MCS channels of the profile are a subset of
// the MCS channels of the connected profile.
func (f ProfileFlags) MCSSubset() bool { return f&FlagMCSSubset != 0 }

// Vendor returns the bits reserved for the CMM vendor.
func (f ProfileFlags) Vendor() uint16 { return uint16(f >> 16) }

// DeviceAttributes describes the medium of the device.  The low 32 bits
// are defined by the ICC, the high 32 bits are vendor specific.
type DeviceAttributes uint64

// These are the device attribute bits defined by the ICC.  A bit which is
// not set means the opposite property: reflective, glossy, positive,
// colour, paper-based, non-textured, isotropic, non-self-luminous.
const (
	AttrTransparency  DeviceAttributes = 1 << 0
	AttrMatte         DeviceAttributes = 1 << 1
	AttrNegative      DeviceAttributes = 1 << 2
	AttrBlackAndWhite DeviceAttributes = 1 << 3
	AttrNonPaper      DeviceAttributes = 1 << 4
	AttrTextured      DeviceAttributes = 1 << 5
	AttrNonIsotropic  DeviceAttributes = 1 << 6
	AttrSelfLuminous  DeviceAttributes = 1 << 7
)

// DeviceAttributesFromHalves combines two 32-bit halves into the device
// attributes.  The high half occupies the upper 32 bits.
func DeviceAttributesFromHalves(high, low uint32) DeviceAttributes {
	return DeviceAttributes(uint64(high)<<32 | uint64(low))
}

// Halves returns the upper and the lower 32 bits.
func (a DeviceAttributes) Halves() (high, low uint32) {
	return uint32(a >> 32), uint32(a)
}

func (a DeviceAttributes) Transparency() bool  { return a&AttrTransparency != 0 }
func (a DeviceAttributes) Matte() bool         { return a&AttrMatte != 0 }
func (a DeviceAttributes) Negative() bool      { return a&AttrNegative != 0 }
func (a DeviceAttributes) BlackAndWhite() bool { return a&AttrBlackAndWhite != 0 }
func (a DeviceAttributes) NonPaper() bool      { return a&AttrNonPaper != 0 }
func (a DeviceAttributes) Textured() bool      { return a&AttrTextured != 0 }
func (a DeviceAttributes) NonIsotropic() bool  { return a&AttrNonIsotropic != 0 }
func (a DeviceAttributes) SelfLuminous() bool  { return a&AttrSelfLuminous != 0 }
