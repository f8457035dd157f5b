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
	"crypto/md5"

	"github.com/cespare/xxhash/v2"
)

// Encode converts the profile to binary form.
//
// A decoded profile which has not been modified (see [Profile.Modified])
// is returned unchanged.  Otherwise, the tags are written in tag table
// order, each starting on a four-byte boundary, and tags with identical
// data share one copy of the data.  Unchanged records keep their original
// encoding.  For version 4 profiles the profile ID is recomputed; for
// older versions it is set to zero.
func (p *Profile) Encode() []byte {
	if p.orig != nil && !p.Modified() {
		return bytes.Clone(p.orig)
	}

	h := p.header
	if h.Version == 0 {
		h.Version = currentVersion
	}
	h.ID = ProfileID{}

	w := &writer{}
	h.encode(w)
	w.u32(uint32(len(p.entries)))
	table := w.len()
	w.zeros(12 * len(p.entries))

	type block struct {
		offset int
		data   []byte
	}
	var blocks []block
	byHash := make(map[uint64][]int) // indices into blocks
	for i, e := range p.entries {
		data := e.raw
		if e.changed() {
			data = EncodeRecord(e.rec)
		}

		offset := -1
		sum := xxhash.Sum64(data)
		for _, j := range byHash[sum] {
			if bytes.Equal(blocks[j].data, data) {
				offset = blocks[j].offset
				break
			}
		}
		if offset < 0 {
			w.pad4()
			offset = w.len()
			w.bytes(data)
			byHash[sum] = append(byHash[sum], len(blocks))
			blocks = append(blocks, block{offset: offset, data: data})
		}

		pos := table + 12*i
		w.patch32(pos, uint32(e.sig))
		w.patch32(pos+4, uint32(offset))
		w.patch32(pos+8, uint32(len(data)))
	}
	w.pad4()

	buf := w.buf
	w.patch32(0, uint32(len(buf)))
	if h.Version.hasProfileID() {
		id := computeProfileID(buf)
		copy(buf[84:100], id[:])
	}
	return buf
}

// computeProfileID returns the MD5 checksum of a profile.  The checksum
// covers the whole profile, with the profile flags, the rendering intent
// and the profile ID fields set to zero.  The data is not modified.
func computeProfileID(data []byte) ProfileID {
	var head [HeaderSize]byte
	copy(head[:], data)
	clear(head[44:48])
	clear(head[64:68])
	clear(head[84:100])

	h := md5.New()
	h.Write(head[:])
	h.Write(data[HeaderSize:])
	var id ProfileID
	copy(id[:], h.Sum(nil))
	return id
}
