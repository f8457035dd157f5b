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
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// utf16BE converts between Go strings and the big-endian UTF-16 encoding
// used by 'mluc' and 'desc' records.  Byte order marks are not written and
// are kept as characters when reading.
var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

func decodeUTF16(r *reader, b []byte, field string) string {
	if len(b)%2 != 0 {
		r.fail(&InvalidValueError{Type: r.typ, Field: field, Reason: "odd number of bytes"})
		return ""
	}
	s, err := utf16BE.NewDecoder().Bytes(b)
	if err != nil {
		r.fail(&InvalidValueError{Type: r.typ, Field: field, Reason: err.Error()})
		return ""
	}
	return string(s)
}

// encodeUTF16 converts a valid UTF-8 string to UTF-16BE.
func encodeUTF16(s string) []byte {
	b, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// unreachable for strings which passed utf8.ValidString
		return nil
	}
	return b
}

// Text is a textType record ('text'), holding 7-bit ASCII text.
type Text struct {
	recordHead
	chars []ASCII7
}

// NewText returns a text record.  The string must consist of 7-bit ASCII
// characters and must not contain NUL bytes.
func NewText(s string) (*Text, error) {
	chars, err := ASCII7FromString(s)
	if err != nil {
		return nil, err
	}
	return &Text{chars: chars}, nil
}

func (t *Text) TypeSignature() TypeSignature { return TextType }

// Chars returns the characters of the text, without the terminating NUL.
func (t *Text) Chars() []ASCII7 {
	res := make([]ASCII7, len(t.chars))
	copy(res, t.chars)
	return res
}

func (t *Text) String() string {
	return ASCII7String(t.chars)
}

func decodeText(r *reader, h recordHead) Record {
	body := r.bytes(r.remaining())
	if i := bytes.IndexByte(body, 0); i >= 0 {
		body = body[:i]
	}
	chars := make([]ASCII7, len(body))
	for i, c := range body {
		if c >= 0x80 {
			r.fail(&InvalidValueError{Type: TextType, Field: "text",
				Reason: fmt.Sprintf("byte 0x%02X at position %d is not 7-bit ASCII", c, 8+i)})
			return nil
		}
		chars[i] = ASCII7(c)
	}
	return &Text{recordHead: h, chars: chars}
}

func (t *Text) encode(w *writer) {
	w.head(TextType, t.reserved)
	for _, c := range t.chars {
		w.u8(byte(c))
	}
	w.u8(0)
}

// TextDescription is a textDescriptionType record ('desc'), used for
// descriptions in version 2 profiles.  It holds an ASCII string, an
// optional Unicode string and an optional Macintosh ScriptCode string.
type TextDescription struct {
	recordHead
	ascii      string
	unicodeLng uint32
	unicode    string
	scriptCode uint16
	scriptData []byte
}

// NewTextDescription returns a 'desc' record.  The ascii string must be
// 7-bit ASCII without NUL bytes, and ucs must be valid UTF-8.
// The language code is a Macintosh language code, 0 if unknown.
func NewTextDescription(ascii, ucs string, language uint32) (*TextDescription, error) {
	if _, err := ASCII7FromString(ascii); err != nil {
		return nil, &InvalidValueError{Type: TextDescriptionType, Field: "ASCII description", Reason: "not 7-bit ASCII"}
	}
	if !utf8.ValidString(ucs) {
		return nil, &InvalidValueError{Type: TextDescriptionType, Field: "Unicode description", Reason: "invalid UTF-8"}
	}
	return &TextDescription{ascii: ascii, unicode: ucs, unicodeLng: language}, nil
}

func (d *TextDescription) TypeSignature() TypeSignature { return TextDescriptionType }

// ASCII returns the ASCII description.
func (d *TextDescription) ASCII() string { return d.ascii }

// Unicode returns the Unicode description and its language code.
func (d *TextDescription) Unicode() (string, uint32) { return d.unicode, d.unicodeLng }

// ScriptCode returns the ScriptCode code and the raw ScriptCode
// description.  Records created with [NewTextDescription] have no
// ScriptCode description.
func (d *TextDescription) ScriptCode() (uint16, []byte) {
	return d.scriptCode, bytes.Clone(d.scriptData)
}

// String returns the Unicode description if present, and the ASCII
// description otherwise.
func (d *TextDescription) String() string {
	if d.unicode != "" {
		return d.unicode
	}
	return d.ascii
}

const scriptCodeSize = 67

func decodeTextDescription(r *reader, h recordHead) Record {
	d := &TextDescription{recordHead: h}

	n := r.u32()
	if !r.needItems(uint64(n), 1) {
		return nil
	}
	b := r.bytes(int(n))
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	for _, c := range b {
		if c >= 0x80 {
			r.fail(&InvalidValueError{Type: TextDescriptionType, Field: "ASCII description", Reason: "not 7-bit ASCII"})
			return nil
		}
	}
	d.ascii = string(b)
	if r.remaining() == 0 {
		// some old profiles omit the Unicode and ScriptCode parts
		return d
	}

	d.unicodeLng = r.u32()
	n = r.u32()
	if !r.needItems(uint64(n), 2) {
		return nil
	}
	u := decodeUTF16(r, r.bytes(2*int(n)), "Unicode description")
	for len(u) > 0 && u[len(u)-1] == 0 {
		u = u[:len(u)-1]
	}
	d.unicode = u

	d.scriptCode = r.u16()
	count := int(r.u8())
	script := r.bytes(scriptCodeSize)
	if r.err != nil {
		return nil
	}
	if count > scriptCodeSize {
		r.fail(&CountMismatchError{Type: TextDescriptionType, Field: "ScriptCode count",
			Declared: uint64(count), Actual: scriptCodeSize})
		return nil
	}
	if count > 0 {
		d.scriptData = bytes.Clone(script[:count])
	}
	return d
}

func (d *TextDescription) encode(w *writer) {
	w.head(TextDescriptionType, d.reserved)
	w.u32(uint32(len(d.ascii) + 1))
	w.bytes([]byte(d.ascii))
	w.u8(0)

	w.u32(d.unicodeLng)
	if d.unicode == "" {
		w.u32(0)
	} else {
		u := encodeUTF16(d.unicode)
		w.u32(uint32(len(u)/2 + 1))
		w.bytes(u)
		w.u16(0)
	}

	w.u16(d.scriptCode)
	w.u8(uint8(len(d.scriptData)))
	w.bytes(d.scriptData)
	w.zeros(scriptCodeSize - len(d.scriptData))
}

// LocalizedUnicode is one entry of a [MultiLocalizedUnicode] record.
type LocalizedUnicode struct {
	Language string // ISO 639-1 language code, e.g. "en"
	Country  string // ISO 3166-1 country code, e.g. "US"
	Value    string
}

// MultiLocalizedUnicode is a multiLocalizedUnicodeType record ('mluc'),
// holding a string in several languages.
type MultiLocalizedUnicode struct {
	recordHead
	entries []LocalizedUnicode
}

// NewMultiLocalizedUnicode returns a 'mluc' record.  Language and country
// codes must consist of exactly two ASCII characters, and values must be
// valid UTF-8.
func NewMultiLocalizedUnicode(entries ...LocalizedUnicode) (*MultiLocalizedUnicode, error) {
	for _, e := range entries {
		if len(e.Language) != 2 || checkASCII7(e.Language, 3, 0, "") != nil {
			return nil, &InvalidValueError{Type: MultiLocalizedUnicodeType, Field: "language code",
				Reason: fmt.Sprintf("%q is not a two-letter code", e.Language)}
		}
		if len(e.Country) != 2 || checkASCII7(e.Country, 3, 0, "") != nil {
			return nil, &InvalidValueError{Type: MultiLocalizedUnicodeType, Field: "country code",
				Reason: fmt.Sprintf("%q is not a two-letter code", e.Country)}
		}
		if !utf8.ValidString(e.Value) {
			return nil, &InvalidValueError{Type: MultiLocalizedUnicodeType, Field: "string", Reason: "invalid UTF-8"}
		}
	}
	res := &MultiLocalizedUnicode{entries: make([]LocalizedUnicode, len(entries))}
	copy(res.entries, entries)
	return res, nil
}

func (m *MultiLocalizedUnicode) TypeSignature() TypeSignature { return MultiLocalizedUnicodeType }

// Entries returns the localized strings in the order they are stored.
func (m *MultiLocalizedUnicode) Entries() []LocalizedUnicode {
	res := make([]LocalizedUnicode, len(m.entries))
	copy(res, m.entries)
	return res
}

// Lookup returns the string for the given language and country.  If there
// is no exact match, the first entry for the language is used.
func (m *MultiLocalizedUnicode) Lookup(language, country string) (string, bool) {
	var fallback *LocalizedUnicode
	for i := range m.entries {
		e := &m.entries[i]
		if e.Language != language {
			continue
		}
		if e.Country == country {
			return e.Value, true
		}
		if fallback == nil {
			fallback = e
		}
	}
	if fallback != nil {
		return fallback.Value, true
	}
	return "", false
}

// String returns the English string if there is one, and the first entry
// otherwise.
func (m *MultiLocalizedUnicode) String() string {
	if s, ok := m.Lookup("en", "US"); ok {
		return s
	}
	if len(m.entries) > 0 {
		return m.entries[0].Value
	}
	return ""
}

const mlucRecordSize = 12

func decodeMLUC(r *reader, h recordHead) Record {
	n := r.u32()
	size := r.u32()
	if r.err != nil {
		return nil
	}
	if size != mlucRecordSize {
		r.fail(&CountMismatchError{Type: MultiLocalizedUnicodeType, Field: "record size",
			Declared: uint64(size), Actual: mlucRecordSize})
		return nil
	}
	if !r.needItems(uint64(n), mlucRecordSize) {
		return nil
	}

	headerEnd := uint64(16 + mlucRecordSize*int(n))
	end := headerEnd
	entries := make([]LocalizedUnicode, n)
	for i := range entries {
		language := string(r.bytes(2))
		country := string(r.bytes(2))
		length := uint64(r.u32())
		offset := uint64(r.u32())
		if r.err != nil {
			return nil
		}
		if length > 0 && !r.span("string", offset, length, headerEnd) {
			return nil
		}
		var value string
		if length > 0 {
			value = decodeUTF16(r, r.data[offset:offset+length], "string")
			end = max(end, offset+length)
		}
		entries[i] = LocalizedUnicode{Language: language, Country: country, Value: value}
	}
	if r.err != nil {
		return nil
	}
	r.seek(int(end))
	return &MultiLocalizedUnicode{recordHead: h, entries: entries}
}

func (m *MultiLocalizedUnicode) encode(w *writer) {
	w.head(MultiLocalizedUnicodeType, m.reserved)
	w.u32(uint32(len(m.entries)))
	w.u32(mlucRecordSize)

	values := make([][]byte, len(m.entries))
	pos := 16 + mlucRecordSize*len(m.entries)
	for i, e := range m.entries {
		values[i] = encodeUTF16(e.Value)
		w.bytes([]byte(e.Language[:2]))
		w.bytes([]byte(e.Country[:2]))
		w.u32(uint32(len(values[i])))
		w.u32(uint32(pos))
		pos += len(values[i])
	}
	for _, v := range values {
		w.bytes(v)
	}
}
