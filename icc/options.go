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

// DecodeOption configures [Decode].
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	lenient bool
}

// WithLenientRecords makes [Decode] keep tags whose record cannot be
// decoded.  Such tags are stored as [*RawRecord] and the error is reported
// by [Profile.RecordErrors].  Without this option, the first such error
// aborts decoding.
func WithLenientRecords() DecodeOption {
	return func(o *decodeOptions) {
		o.lenient = true
	}
}
