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
	"strings"
)

// UnrecognizedSignatureError is returned when a code or a string is not a
// member of a closed enumeration.  This is an expected outcome for data
// written by newer software; callers may skip the value or keep it raw.
type UnrecognizedSignatureError struct {
	Kind string // name of the enumeration, e.g. "ProfileClass"
	Text string // the rejected string, if the input was a string
	Code uint32 // the rejected code, if the input was a number
}

func (e *UnrecognizedSignatureError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("icc: unrecognized %s %q", e.Kind, e.Text)
	}
	return fmt.Sprintf("icc: unrecognized %s 0x%08X", e.Kind, e.Code)
}

// TruncatedRecordError indicates that a record ended before all the data
// announced by its count fields could be read.
type TruncatedRecordError struct {
	Type   TypeSignature
	Offset int    // position of the shortfall, relative to the start of the record
	Need   uint64 // number of bytes required at Offset
	Have   int    // number of bytes available at Offset
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("icc: truncated %s record at byte %d: need %d bytes, have %d",
		e.Type, e.Offset, e.Need, e.Have)
}

// InvalidOffsetError indicates that an offset stored inside a record, or in
// the tag table, points outside the valid range.
type InvalidOffsetError struct {
	Type   TypeSignature // zero for tag table entries
	Field  string
	Offset uint64
	Min    uint64 // smallest permitted offset
	Max    uint64 // one past the largest permitted end position
}

func (e *InvalidOffsetError) Error() string {
	where := "tag table"
	if e.Type != 0 {
		where = e.Type.String() + " record"
	}
	return fmt.Sprintf("icc: %s: %s offset %d outside [%d, %d]",
		where, e.Field, e.Offset, e.Min, e.Max)
}

// CountMismatchError indicates that a declared element count disagrees with
// the number of elements present.
type CountMismatchError struct {
	Type     TypeSignature
	Field    string
	Declared uint64
	Actual   uint64
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("icc: %s record: %s is %d, expected %d",
		e.Type, e.Field, e.Declared, e.Actual)
}

// InvalidValueError indicates that a field holds a value outside its
// permitted range, for example a text byte with the high bit set.
type InvalidValueError struct {
	Type   TypeSignature // zero if the value is not part of a record
	Field  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	if e.Type == 0 {
		return fmt.Sprintf("icc: invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("icc: %s record: invalid %s: %s", e.Type, e.Field, e.Reason)
}

// UnexpectedTypeError is returned when a record of one type was requested
// but the data holds a different type.
type UnexpectedTypeError struct {
	Want []TypeSignature
	Got  TypeSignature
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("icc: unexpected record type %s, want one of %v", e.Got, e.Want)
}

// SizeMismatchError indicates that the profile size stored in the header
// does not match the number of bytes supplied.
type SizeMismatchError struct {
	Declared uint32
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("icc: header declares %d bytes, profile has %d", e.Declared, e.Actual)
}

// DuplicateTagError is returned when a tag signature occurs twice, either
// in a decoded tag table or when adding a tag to a profile.
type DuplicateTagError struct {
	Tag TagSignature
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("icc: duplicate tag %s", e.Tag)
}

// TagTypeMismatchError is returned when a record type is not permitted for
// a tag signature.
type TagTypeMismatchError struct {
	Tag     TagSignature
	Type    TypeSignature
	Allowed []TypeSignature
}

func (e *TagTypeMismatchError) Error() string {
	return fmt.Sprintf("icc: tag %s cannot hold a %s record (allowed: %v)", e.Tag, e.Type, e.Allowed)
}

// InvalidProfileError indicates that an ICC profile contains invalid binary
// data and cannot be decoded.
type InvalidProfileError struct {
	Offset int
	Reason string
}

func invalidProfile(offset int, reason string) error {
	return &InvalidProfileError{Offset: offset, Reason: reason}
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("icc: invalid profile (byte %d): %s", e.Offset, e.Reason)
}

// Stage is a step of the profile decoding process.  Decoding moves through
// the stages in order; a failure stops at the stage reached so far.
type Stage int

// These are the decoding stages.
const (
	StageEmpty Stage = iota
	StageHeaderParsed
	StageTagTableParsed
	StageReady
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageHeaderParsed:
		return "header parsed"
	case StageTagTableParsed:
		return "tag table parsed"
	case StageReady:
		return "ready"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// DecodeError wraps an error encountered by [Decode], recording how far
// decoding progressed.  Tag is set if the error concerns a single tag.
type DecodeError struct {
	Stage Stage
	Tag   TagSignature
	Err   error
}

func (e *DecodeError) Error() string {
	var step string
	switch e.Stage {
	case StageEmpty:
		step = "reading header"
	case StageHeaderParsed:
		step = "reading tag table"
	default:
		step = "reading tag data"
	}
	// the wrapped errors of this package carry their own prefix
	msg := strings.TrimPrefix(e.Err.Error(), "icc: ")
	if e.Tag != 0 {
		return fmt.Sprintf("icc: %s (tag %s): %s", step, e.Tag, msg)
	}
	return fmt.Sprintf("icc: %s: %s", step, msg)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
