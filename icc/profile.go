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
	"errors"

	"golang.org/x/exp/maps"
)

// ErrMissingTag is returned when a requested tag is not present in a profile.
var ErrMissingTag = errors.New("icc: missing tag")

// Profile is an ICC colour profile: a header together with an ordered list
// of tagged records.
//
// Profiles returned by [Decode] keep a private copy of the decoded data.
// The records of unmodified tags are written back from this copy by
// [Profile.Encode].  Every modification, including changes to the fields of
// records returned by [Profile.Tag], marks the profile ID as stale, so that
// it is recomputed on encoding.
//
// A Profile must not be modified concurrently.  Read-only use from several
// goroutines is safe.
type Profile struct {
	header  Header
	entries []tagEntry

	// orig is the data the profile was decoded from, nil for profiles
	// created by New.
	orig  []byte
	dirty bool

	checkSum   CheckSum
	recordErrs map[TagSignature]error
}

type tagEntry struct {
	sig TagSignature
	rec Record

	// raw is the encoded record, as found in the decoded data.  It is nil
	// for records which were set after decoding.
	raw []byte

	// enc is the encoding of rec at the time of decoding.  It is used to
	// detect changes made through the exported fields of rec.
	enc []byte
}

// changed reports whether the entry must be re-encoded.
func (e *tagEntry) changed() bool {
	return e.raw == nil || !bytes.Equal(EncodeRecord(e.rec), e.enc)
}

// New returns a profile with the given header and no tags.  The size and
// ID fields of the header are ignored.  A zero version is replaced by the
// latest version, and a zero illuminant by [D50].
func New(h Header) *Profile {
	p := &Profile{dirty: true}
	p.setHeader(h)
	return p
}

func (p *Profile) setHeader(h Header) {
	h.Size = p.header.Size
	h.ID = p.header.ID
	if h.Version == 0 {
		h.Version = currentVersion
	}
	if h.Illuminant == (XYZNumber{}) {
		h.Illuminant = D50
	}
	p.header = h
}

// Header returns the profile header.  For decoded profiles, Size and ID
// are the values found in the data.
func (p *Profile) Header() Header {
	return p.header
}

// SetHeader replaces the header fields of the profile.  The Size and ID
// fields of h are ignored.
func (p *Profile) SetHeader(h Header) {
	p.setHeader(h)
	p.dirty = true
}

// CheckSum reports whether the profile ID of a decoded profile matched the
// profile data.
func (p *Profile) CheckSum() CheckSum {
	return p.checkSum
}

// Modified reports whether the profile has changed since it was decoded.
// This includes changes made to the fields of records returned by
// [Profile.Tag].  Profiles created by [New] are always modified.
func (p *Profile) Modified() bool {
	if p.dirty {
		return true
	}
	for i := range p.entries {
		if p.entries[i].changed() {
			return true
		}
	}
	return false
}

func (p *Profile) find(sig TagSignature) int {
	for i := range p.entries {
		if p.entries[i].sig == sig {
			return i
		}
	}
	return -1
}

// Tag returns the record stored under the tag sig.
func (p *Profile) Tag(sig TagSignature) (Record, bool) {
	i := p.find(sig)
	if i < 0 {
		return nil, false
	}
	return p.entries[i].rec, true
}

// TagAs returns the record stored under the tag sig, as a value of type T.
// If the tag is missing, [ErrMissingTag] is returned.  If the record has a
// different type, the error is an [*UnexpectedTypeError].
func TagAs[T Record](p *Profile, sig TagSignature) (T, error) {
	var zero T
	rec, ok := p.Tag(sig)
	if !ok {
		return zero, ErrMissingTag
	}
	res, ok := rec.(T)
	if !ok {
		return zero, &UnexpectedTypeError{Want: AllowedTypes(sig), Got: rec.TypeSignature()}
	}
	return res, nil
}

// Tags returns the tag signatures of the profile, in tag table order.
func (p *Profile) Tags() []TagSignature {
	res := make([]TagSignature, len(p.entries))
	for i, e := range p.entries {
		res[i] = e.sig
	}
	return res
}

func checkRecord(sig TagSignature, rec Record) error {
	if rec == nil {
		return &InvalidValueError{Field: "record for tag " + sig.String(), Reason: "nil record"}
	}
	if err := checkTagType(sig, rec.TypeSignature()); err != nil {
		return err
	}
	return checkValid(rec)
}

// SetTag adds a new tag to the profile.  If the tag is already present,
// a [*DuplicateTagError] is returned.  If the record type is not permitted
// for the tag, a [*TagTypeMismatchError] is returned.  Records which
// cannot be encoded, such as the zero value of [Lut8], are rejected with
// an [*InvalidValueError] or a [*CountMismatchError].
func (p *Profile) SetTag(sig TagSignature, rec Record) error {
	if p.find(sig) >= 0 {
		return &DuplicateTagError{Tag: sig}
	}
	if err := checkRecord(sig, rec); err != nil {
		return err
	}
	p.entries = append(p.entries, tagEntry{sig: sig, rec: rec})
	p.dirty = true
	return nil
}

// ReplaceTag stores rec under the tag sig, replacing any previous record.
// New tags are added at the end of the tag table.
func (p *Profile) ReplaceTag(sig TagSignature, rec Record) error {
	if err := checkRecord(sig, rec); err != nil {
		return err
	}
	if i := p.find(sig); i >= 0 {
		p.entries[i] = tagEntry{sig: sig, rec: rec}
		delete(p.recordErrs, sig)
	} else {
		p.entries = append(p.entries, tagEntry{sig: sig, rec: rec})
	}
	p.dirty = true
	return nil
}

// RemoveTag removes a tag from the profile.  The return value reports
// whether the tag was present.
func (p *Profile) RemoveTag(sig TagSignature) bool {
	i := p.find(sig)
	if i < 0 {
		return false
	}
	p.entries = append(p.entries[:i], p.entries[i+1:]...)
	delete(p.recordErrs, sig)
	p.dirty = true
	return true
}

// RecordErrors returns the errors for tags which could not be decoded.
// This is only non-empty for profiles decoded with [WithLenientRecords].
func (p *Profile) RecordErrors() map[TagSignature]error {
	if len(p.recordErrs) == 0 {
		return nil
	}
	return maps.Clone(p.recordErrs)
}

// Copyright returns the copyright notice of the profile.  Version 2 text
// records are reported with language "en" and country "US".
func (p *Profile) Copyright() ([]LocalizedUnicode, error) {
	return p.localizedText(CopyrightTag)
}

// Description returns the profile description.  Version 2 'desc' records
// are reported with language "en" and country "US".
func (p *Profile) Description() ([]LocalizedUnicode, error) {
	return p.localizedText(ProfileDescriptionTag)
}

func (p *Profile) localizedText(sig TagSignature) ([]LocalizedUnicode, error) {
	rec, ok := p.Tag(sig)
	if !ok {
		return nil, ErrMissingTag
	}
	switch rec := rec.(type) {
	case *MultiLocalizedUnicode:
		return rec.Entries(), nil
	case *Text:
		return []LocalizedUnicode{{Language: "en", Country: "US", Value: rec.String()}}, nil
	case *TextDescription:
		return []LocalizedUnicode{{Language: "en", Country: "US", Value: rec.String()}}, nil
	default:
		return nil, &UnexpectedTypeError{
			Want: []TypeSignature{MultiLocalizedUnicodeType, TextType, TextDescriptionType},
			Got:  rec.TypeSignature(),
		}
	}
}
