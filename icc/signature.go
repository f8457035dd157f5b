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
	"fmt"
	"sort"
)

// Signature is a four-byte code which is conventionally displayed as four
// ASCII characters.  It is used for manufacturer and model fields, and for
// other values which are not restricted to a closed set.
type Signature uint32

// SignatureFromString packs a four-character string into a Signature.
// The string must consist of exactly four printable ASCII characters.
func SignatureFromString(s string) (Signature, error) {
	if len(s) != 4 {
		return 0, &UnrecognizedSignatureError{Kind: "Signature", Text: s}
	}
	for i := 0; i < 4; i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return 0, &UnrecognizedSignatureError{Kind: "Signature", Text: s}
		}
	}
	return Signature(pack4(s)), nil
}

// Bytes returns the four bytes of s, most significant first.
func (s Signature) Bytes() [4]byte {
	return [4]byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)}
}

// String returns the four characters of s, or a hexadecimal representation
// if s is not printable.
func (s Signature) String() string {
	return sigString(uint32(s))
}

// TagSignature identifies a tag in the tag table of a profile.
// Unknown tag signatures are normal and are preserved by the codec.
type TagSignature uint32

func (t TagSignature) String() string {
	return sigString(uint32(t))
}

// Name returns the ICC name of a known tag, or the empty string.
func (t TagSignature) Name() string {
	if info, ok := tagInfo[t]; ok {
		return info.name
	}
	return ""
}

// TypeSignature identifies the type of a tagged data record.
type TypeSignature uint32

func (t TypeSignature) String() string {
	return sigString(uint32(t))
}

func pack4(s string) uint32 {
	return uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3])
}

func sigString(x uint32) string {
	bb := []byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
	for _, c := range bb {
		if c < 0x20 || c > 0x7E {
			return fmt.Sprintf("0x%08X", x)
		}
	}
	return string(bb)
}

// enumEntry is one member of a closed enumeration.  For four-character
// enumerations text is the packed form of value; for numeric enumerations
// text is the canonical name.
type enumEntry[T ~uint16 | ~uint32] struct {
	value T
	text  string
	name  string
}

// enumTable maps between the members of a closed enumeration, their
// numeric codes and their textual form.  Both directions are derived from
// the same list of entries.
type enumTable[T ~uint16 | ~uint32] struct {
	kind    string
	entries []enumEntry[T]
	byValue map[T]int
	byText  map[string]int
}

func newEnumTable[T ~uint16 | ~uint32](kind string, entries ...enumEntry[T]) *enumTable[T] {
	t := &enumTable[T]{
		kind:    kind,
		entries: entries,
		byValue: make(map[T]int, len(entries)),
		byText:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, dup := t.byValue[e.value]; dup {
			panic("icc: duplicate " + kind + " value")
		}
		if _, dup := t.byText[e.text]; dup {
			panic("icc: duplicate " + kind + " text " + e.text)
		}
		t.byValue[e.value] = i
		t.byText[e.text] = i
	}
	return t
}

func (t *enumTable[T]) parse(s string) (T, error) {
	i, ok := t.byText[s]
	if !ok {
		return 0, &UnrecognizedSignatureError{Kind: t.kind, Text: s}
	}
	return t.entries[i].value, nil
}

func (t *enumTable[T]) fromCode(c uint32) (T, error) {
	v := T(c)
	if uint32(v) == c {
		if _, ok := t.byValue[v]; ok {
			return v, nil
		}
	}
	return 0, &UnrecognizedSignatureError{Kind: t.kind, Code: c}
}

func (t *enumTable[T]) lookup(v T) (enumEntry[T], bool) {
	i, ok := t.byValue[v]
	if !ok {
		return enumEntry[T]{}, false
	}
	return t.entries[i], true
}

// text returns the canonical textual form of v.
func (t *enumTable[T]) text(v T) string {
	if e, ok := t.lookup(v); ok {
		return e.text
	}
	return ""
}

// name returns a human-readable name for v, falling back to the kind and
// the numeric code for unknown values.
func (t *enumTable[T]) name(v T) string {
	if e, ok := t.lookup(v); ok {
		return e.name
	}
	return fmt.Sprintf("%s(0x%08X)", t.kind, uint32(v))
}

// values returns all members, sorted by code.
func (t *enumTable[T]) values() []T {
	res := make([]T, len(t.entries))
	for i, e := range t.entries {
		res[i] = e.value
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
