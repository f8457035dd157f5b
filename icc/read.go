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
	"bytes"
	"encoding/binary"
	"fmt"
)

// tagTableStart is the position of the tag count.
const tagTableStart = HeaderSize

// Decode decodes an ICC profile from the given data.
//
// Decoding proceeds through the stages of [Stage]; errors are returned as
// [*DecodeError], wrapping a more specific error which can be extracted
// with [errors.As].  The profile keeps its own copy of data.
func Decode(data []byte, opts ...DecodeOption) (*Profile, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	// A size field which disagrees with the data, truncated data included,
	// is reported as SizeMismatchError.  Data which is too short to hold
	// the size field, the file signature, or the tag count is invalid.
	if len(data) < 4 {
		return nil, &DecodeError{Stage: StageEmpty, Err: invalidProfile(0, "profile is too short")}
	}
	if len(data) >= 40 && binary.BigEndian.Uint32(data[36:]) != fileSignature {
		return nil, &DecodeError{Stage: StageEmpty, Err: invalidProfile(36, "missing 'acsp' signature")}
	}
	if size := binary.BigEndian.Uint32(data); uint64(size) != uint64(len(data)) {
		return nil, &DecodeError{Stage: StageEmpty,
			Err: &SizeMismatchError{Declared: size, Actual: len(data)}}
	}
	if len(data) < HeaderSize+4 {
		return nil, &DecodeError{Stage: StageEmpty, Err: invalidProfile(0, "profile is too short")}
	}
	header := readHeader(data)

	// StageHeaderParsed: read the tag table
	numTags := binary.BigEndian.Uint32(data[tagTableStart:])
	maxNumTags := uint64(len(data)-tagTableStart-4) / 12
	if uint64(numTags) > maxNumTags {
		return nil, &DecodeError{Stage: StageHeaderParsed, Err: invalidProfile(tagTableStart, "too many tags")}
	}
	tableEnd := uint64(tagTableStart + 4 + 12*int(numTags))

	type tableEntry struct {
		sig        TagSignature
		start, end uint64
	}
	table := make([]tableEntry, numTags)
	seen := make(map[TagSignature]bool, numTags)
	for i := range table {
		pos := tagTableStart + 4 + 12*i
		sig := TagSignature(binary.BigEndian.Uint32(data[pos:]))
		offset := uint64(binary.BigEndian.Uint32(data[pos+4:]))
		size := uint64(binary.BigEndian.Uint32(data[pos+8:]))
		if offset < tableEnd || offset+size > uint64(len(data)) {
			return nil, &DecodeError{Stage: StageHeaderParsed, Tag: sig,
				Err: &InvalidOffsetError{Field: "tag " + sig.String(), Offset: offset,
					Min: tableEnd, Max: uint64(len(data))}}
		}
		if seen[sig] {
			return nil, &DecodeError{Stage: StageHeaderParsed, Tag: sig, Err: &DuplicateTagError{Tag: sig}}
		}
		seen[sig] = true
		table[i] = tableEntry{sig: sig, start: offset, end: offset + size}
	}

	// StageTagTableParsed: decode the records
	data = bytes.Clone(data)
	p := &Profile{
		header:   header,
		entries:  make([]tagEntry, len(table)),
		orig:     data,
		checkSum: checkProfileID(data, header.ID),
	}
	type decoded struct {
		rec Record
		enc []byte
		err error
	}
	shared := make(map[[2]uint64]decoded) // linked tags share one record
	for i, t := range table {
		raw := data[t.start:t.end:t.end]
		key := [2]uint64{t.start, t.end}
		d, ok := shared[key]
		if !ok {
			d.rec, d.err = DecodeRecord(raw)
			if d.err != nil {
				d.rec = rawFallback(raw)
			}
			d.enc = EncodeRecord(d.rec)
			shared[key] = d
		}
		if d.err != nil {
			if !o.lenient {
				return nil, &DecodeError{Stage: StageTagTableParsed, Tag: t.sig, Err: d.err}
			}
			Logger().Warn("icc: cannot decode tag, keeping raw data",
				"tag", t.sig.String(), "error", d.err)
			if p.recordErrs == nil {
				p.recordErrs = make(map[TagSignature]error)
			}
			p.recordErrs[t.sig] = d.err
		}
		p.entries[i] = tagEntry{sig: t.sig, rec: d.rec, raw: raw, enc: d.enc}
	}
	return p, nil
}

// rawFallback wraps record data which could not be decoded.
func rawFallback(raw []byte) *RawRecord {
	rec := &RawRecord{}
	if len(raw) >= 8 {
		rec.Type = TypeSignature(binary.BigEndian.Uint32(raw))
		rec.reserved = binary.BigEndian.Uint32(raw[4:])
		rec.Data = bytes.Clone(raw[8:])
	} else {
		var head [8]byte
		copy(head[:], raw)
		rec.Type = TypeSignature(binary.BigEndian.Uint32(head[:]))
	}
	return rec
}

// checkProfileID compares the profile ID stored in the header with the
// MD5 checksum of the data.
func checkProfileID(data []byte, id ProfileID) CheckSum {
	if id.IsZero() {
		return CheckSumMissing
	}
	if computeProfileID(data) == id {
		return CheckSumValid
	}
	return CheckSumInvalid
}

// DecodeHeader decodes only the header of a profile.  It is intended for
// quick inspection; no consistency checks are made beyond the presence of
// the 'acsp' file signature.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, invalidProfile(0, "profile is too short")
	}
	if binary.BigEndian.Uint32(data[36:]) != fileSignature {
		return Header{}, invalidProfile(36, fmt.Sprintf("missing 'acsp' signature, found %q", data[36:40]))
	}
	return readHeader(data), nil
}
