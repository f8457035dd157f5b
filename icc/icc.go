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

// Package icc reads and writes ICC colour profiles.
//
// An ICC profile consists of a 128-byte [Header], a tag table and a pool of
// tagged data records.  Each tag maps a [TagSignature] to a [Record]; the
// record types defined in ICC.1:2022 are represented by the Go types in
// this package, and records of unknown type are kept as [*RawRecord].
//
// # Reading and Writing Profiles
//
// Use [Decode] to read a profile from binary data, and [Profile.Encode]
// to convert a profile back to binary form:
//
//	p, err := icc.Decode(data)
//	if err != nil {
//	    // handle error
//	}
//	desc, err := p.Description()
//	...
//	encoded := p.Encode()
//
// Profiles which have not been modified are re-encoded byte for byte.
// After a modification, [Profile.Encode] recomputes the profile ID.
//
// # Building Profiles
//
// [New] returns an empty profile for a given header.  Tags are added with
// [Profile.SetTag], which checks that the record type is permitted for the
// tag:
//
//	p := icc.New(icc.Header{
//	    Version:    icc.Version4_4_0,
//	    Class:      icc.DisplayDeviceProfile,
//	    ColorSpace: icc.GraySpace,
//	    PCS:        icc.PCSXYZSpace,
//	})
//	err := p.SetTag(icc.GrayTRCTag, icc.NewGammaCurve(icc.U8Fixed8FromFloat(2.2)))
//
// Records with internal consistency requirements, for example LUTs, are
// created using constructors such as [NewLutAToB], which validate their
// arguments.  Counts stored in the binary format are always derived from
// the lengths of the corresponding slices.
package icc

import "fmt"

// Version is a version of the ICC profile format.
type Version uint32

// Some well-known versions of the ICC profile format.
const (
	Version2_1_0 Version = 0x0210_0000 // Version 3.3 (November 1996)
	Version2_2_0 Version = 0x0220_0000 // ICC.1:1998-09
	Version2_3_0 Version = 0x0230_0000 // ICC.1:1998-09 + ICC.1A:1999-04
	Version2_4_0 Version = 0x0240_0000 // ICC.1:2001-04
	Version4_0_0 Version = 0x0400_0000 // ICC.1:2001-12
	Version4_1_0 Version = 0x0410_0000 // ICC.1:2003-09
	Version4_2_0 Version = 0x0420_0000 // ICC.1:2004-10
	Version4_3_0 Version = 0x0430_0000 // ICC.1:2010-12
	Version4_4_0 Version = 0x0440_0000 // ICC.1:2022-05

	currentVersion = Version4_4_0
)

// Parts splits v into the major, minor and bug-fix revision numbers.
// The low 16 bits of the version field are reserved and are not included.
func (v Version) Parts() (major, minor, bugfix int) {
	return int(v >> 24), int(v>>20) & 0xF, int(v>>16) & 0xF
}

// hasProfileID reports whether profiles of version v carry an MD5 profile ID.
func (v Version) hasProfileID() bool {
	return v >= Version4_0_0
}

func (v Version) String() string {
	major, minor, bugfix := v.Parts()
	s := fmt.Sprintf("%d.%d.%d", major, minor, bugfix)
	if reserved := uint16(v); reserved != 0 {
		s += fmt.Sprintf(".%04X", reserved)
	}
	return s
}

// CheckSum describes the state of the profile ID of a decoded profile.
type CheckSum int

// These are the possible values of [Profile.CheckSum].
const (
	CheckSumMissing CheckSum = iota // no ID stored, or version < 4.0
	CheckSumValid                   // stored ID matches the data
	CheckSumInvalid                 // stored ID does not match the data
)

var checkSumNames = [...]string{"Missing", "Valid", "Invalid"}

func (c CheckSum) String() string {
	if c < 0 || int(c) >= len(checkSumNames) {
		return fmt.Sprintf("CheckSum(%d)", int(c))
	}
	return checkSumNames[c]
}
