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

// descriptionTypes lists the record types which can describe a profile
// inside 'pseq' and 'psid' records.
var descriptionTypes = []TypeSignature{MultiLocalizedUnicodeType, TextDescriptionType}

func checkDescription(typ TypeSignature, field string, rec Record) error {
	if rec == nil {
		return &InvalidValueError{Type: typ, Field: field, Reason: "missing"}
	}
	if !containsType(descriptionTypes, rec.TypeSignature()) {
		return &UnexpectedTypeError{Want: descriptionTypes, Got: rec.TypeSignature()}
	}
	return checkValid(rec)
}

// ProfileDescription describes one profile of a [ProfileSequenceDesc]
// record.  The description records are either [*MultiLocalizedUnicode]
// or [*TextDescription].
type ProfileDescription struct {
	Manufacturer     Signature
	Model            Signature
	Attributes       DeviceAttributes
	Technology       Technology
	ManufacturerDesc Record
	ModelDesc        Record
}

// ProfileSequenceDesc is a profileSequenceDescType record ('pseq').  It
// lists the profiles which were combined to form a device link profile,
// in the order they were applied.
type ProfileSequenceDesc struct {
	recordHead
	profiles []ProfileDescription
}

// NewProfileSequenceDesc returns a profile sequence description.
func NewProfileSequenceDesc(profiles ...ProfileDescription) (*ProfileSequenceDesc, error) {
	s := &ProfileSequenceDesc{profiles: make([]ProfileDescription, len(profiles))}
	copy(s.profiles, profiles)
	if err := s.valid(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ProfileSequenceDesc) valid() error {
	for _, p := range s.profiles {
		if err := checkDescription(ProfileSequenceDescType, "manufacturer description", p.ManufacturerDesc); err != nil {
			return err
		}
		if err := checkDescription(ProfileSequenceDescType, "model description", p.ModelDesc); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileSequenceDesc) TypeSignature() TypeSignature { return ProfileSequenceDescType }

// Profiles returns the descriptions of the profiles in the sequence.
func (s *ProfileSequenceDesc) Profiles() []ProfileDescription {
	res := make([]ProfileDescription, len(s.profiles))
	copy(res, s.profiles)
	return res
}

// pseqFixedSize is the size of the fixed part of each 'pseq' entry.
const pseqFixedSize = 20

func decodeProfileSequenceDesc(r *reader, h recordHead) Record {
	n := r.u32()
	// each entry needs at least two record heads after the fixed part
	if !r.needItems(uint64(n), pseqFixedSize+16) {
		return nil
	}
	profiles := make([]ProfileDescription, n)
	for i := range profiles {
		p := &profiles[i]
		p.Manufacturer = Signature(r.u32())
		p.Model = Signature(r.u32())
		p.Attributes = DeviceAttributes(r.u64())
		p.Technology = Technology(r.u32())
		var end int
		p.ManufacturerDesc, end = readNested(r, r.pos, descriptionTypes...)
		r.seek(end)
		p.ModelDesc, end = readNested(r, r.pos, descriptionTypes...)
		r.seek(end)
		if r.err != nil {
			return nil
		}
	}
	return &ProfileSequenceDesc{recordHead: h, profiles: profiles}
}

func (s *ProfileSequenceDesc) encode(w *writer) {
	w.head(ProfileSequenceDescType, s.reserved)
	w.u32(uint32(len(s.profiles)))
	for _, p := range s.profiles {
		w.u32(uint32(p.Manufacturer))
		w.u32(uint32(p.Model))
		w.u64(uint64(p.Attributes))
		w.u32(uint32(p.Technology))
		p.ManufacturerDesc.encode(w)
		p.ModelDesc.encode(w)
	}
}

// ProfileIdentifier identifies one profile of a
// [ProfileSequenceIdentifier] record.
type ProfileIdentifier struct {
	ID          ProfileID
	Description Record // *MultiLocalizedUnicode or *TextDescription
}

// ProfileSequenceIdentifier is a profileSequenceIdentifierType record
// ('psid').
type ProfileSequenceIdentifier struct {
	recordHead
	profiles []ProfileIdentifier
}

// NewProfileSequenceIdentifier returns a profile sequence identifier record.
func NewProfileSequenceIdentifier(profiles ...ProfileIdentifier) (*ProfileSequenceIdentifier, error) {
	s := &ProfileSequenceIdentifier{profiles: make([]ProfileIdentifier, len(profiles))}
	copy(s.profiles, profiles)
	if err := s.valid(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ProfileSequenceIdentifier) valid() error {
	for _, p := range s.profiles {
		if err := checkDescription(ProfileSequenceIdentifierType, "description", p.Description); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileSequenceIdentifier) TypeSignature() TypeSignature {
	return ProfileSequenceIdentifierType
}

// Profiles returns the identifiers of the profiles in the sequence.
func (s *ProfileSequenceIdentifier) Profiles() []ProfileIdentifier {
	res := make([]ProfileIdentifier, len(s.profiles))
	copy(res, s.profiles)
	return res
}

// readPositionTable reads n (offset, size) pairs and checks that each
// element lies between the end of the table and the end of the record.
func readPositionTable(r *reader, n uint32) []PositionNumber {
	if !r.needItems(uint64(n), 8) {
		return nil
	}
	tableEnd := uint64(r.pos) + 8*uint64(n)
	res := make([]PositionNumber, n)
	for i := range res {
		p := PositionNumber{Offset: r.u32(), Size: r.u32()}
		if !r.span(fmt.Sprintf("element %d", i), uint64(p.Offset), uint64(p.Size), tableEnd) {
			return nil
		}
		res[i] = p
	}
	return res
}

func decodeProfileSequenceIdentifier(r *reader, h recordHead) Record {
	n := r.u32()
	table := readPositionTable(r, n)
	if r.err != nil {
		return nil
	}
	profiles := make([]ProfileIdentifier, n)
	for i, pos := range table {
		elem := r.sub(int(pos.Offset), int(pos.Offset+pos.Size))
		copy(profiles[i].ID[:], elem.bytes(16))
		profiles[i].Description, _ = readNested(elem, 16, descriptionTypes...)
		if elem.err != nil {
			r.fail(elem.err)
			return nil
		}
	}
	return &ProfileSequenceIdentifier{recordHead: h, profiles: profiles}
}

func (s *ProfileSequenceIdentifier) encode(w *writer) {
	start := w.len()
	w.head(ProfileSequenceIdentifierType, s.reserved)
	w.u32(uint32(len(s.profiles)))
	table := w.len()
	w.zeros(8 * len(s.profiles))
	for i, p := range s.profiles {
		w.pad4()
		elemStart := w.len()
		w.bytes(p.ID[:])
		p.Description.encode(w)
		w.patch32(table+8*i, uint32(elemStart-start))
		w.patch32(table+8*i+4, uint32(w.len()-elemStart))
	}
}
