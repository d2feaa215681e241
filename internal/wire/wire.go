// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wire holds the low-level wire-format primitives that the rest of
// this module builds on: tag framing, varint and zigzag codecs, and group
// (SGROUP/EGROUP) pairing. It is a thin layer over protowire, which already
// gets the bit-twiddling right; this package adds the field-number and
// wire-type validation, and the group support, that protowire leaves to its
// callers.
package wire

import (
	"unsafe"

	"google.golang.org/protobuf/encoding/protowire"
)

// Type is a protobuf wire type, one of the six values below.
type Type = protowire.Type

// The wire types defined by the protobuf encoding.
const (
	VarintType     = protowire.VarintType
	Fixed32Type    = protowire.Fixed32Type
	Fixed64Type    = protowire.Fixed64Type
	BytesType      = protowire.BytesType
	StartGroupType = protowire.StartGroupType
	EndGroupType   = protowire.EndGroupType
)

// Number is a field number, the upper bits of a decoded tag.
type Number = protowire.Number

// MinValidNumber and MaxValidNumber bound the legal range for a field
// number; values outside of this range are malformed, and the 19000-19999
// range is reserved by protobuf for implementation use.
const (
	MinValidNumber protowire.Number = 1
	MaxValidNumber protowire.Number = protowire.MaxValidNumber
)

// Tag is a decoded (field number, wire type) pair, the packed value that
// precedes every field on the wire.
type Tag struct {
	Number Number
	Type   Type
}

// ConsumeTag failure codes. Truncation and varint overflow pass through
// protowire's own negative lengths (classified by ParseErr); the two codes
// below mark tags that parsed as varints but name an invalid field number
// or wire type, using values far outside the range protowire assigns so
// the two vocabularies cannot collide.
const (
	ErrCodeFieldNumber = -101
	ErrCodeWireType    = -102
)

// ConsumeTag parses a tag off the front of b, returning the decoded tag and
// the number of bytes consumed, or a negative value on error.
//
// Unlike protowire.ConsumeTag, this also validates that the field number and
// wire type fall within the ranges the wire format allows; a tag naming
// field 0, a field number past the 29-bit maximum, or an undefined wire
// type is rejected here rather than surfacing as a confusing downstream
// error. Field numbers in the schema-reserved 19000-19999 range are
// accepted, since they are legal on the wire and other implementations
// emit them.
func ConsumeTag(b []byte) (tag Tag, n int) {
	v, m := protowire.ConsumeVarint(b)
	if m < 0 {
		return Tag{}, m
	}
	if v>>3 < uint64(MinValidNumber) || v>>3 > uint64(MaxValidNumber) {
		return Tag{}, ErrCodeFieldNumber
	}
	num, typ := protowire.DecodeTag(v)
	switch typ {
	case VarintType, Fixed32Type, Fixed64Type, BytesType, StartGroupType, EndGroupType:
	default:
		return Tag{}, ErrCodeWireType
	}
	return Tag{Number: num, Type: typ}, m
}

// AppendTag appends the wire encoding of tag to b.
func AppendTag(b []byte, tag Tag) []byte {
	return protowire.AppendTag(b, tag.Number, tag.Type)
}

// SizeTag returns the number of bytes AppendTag would append for tag.
func SizeTag(tag Tag) int {
	return protowire.SizeTag(tag.Number)
}

// ConsumeVarint parses a varint off the front of b.
func ConsumeVarint(b []byte) (v uint64, n int) {
	return protowire.ConsumeVarint(b)
}

// AppendVarint appends the varint encoding of v to b.
func AppendVarint(b []byte, v uint64) []byte {
	return protowire.AppendVarint(b, v)
}

// SizeVarint returns the number of bytes AppendVarint would append for v.
func SizeVarint(v uint64) int {
	return protowire.SizeVarint(v)
}

// ParseErr converts a negative length returned by one of the Consume
// functions into the error it stands for, distinguishing truncation
// (io.ErrUnexpectedEOF) from structural problems like varint overflow.
func ParseErr(n int) error {
	return protowire.ParseError(n)
}

// ConsumeFixed32 and ConsumeFixed64 parse fixed-width little-endian
// integers off the front of b.
func ConsumeFixed32(b []byte) (v uint32, n int) { return protowire.ConsumeFixed32(b) }
func ConsumeFixed64(b []byte) (v uint64, n int) { return protowire.ConsumeFixed64(b) }

// AppendFixed32 and AppendFixed64 append fixed-width little-endian
// integers to b.
func AppendFixed32(b []byte, v uint32) []byte { return protowire.AppendFixed32(b, v) }
func AppendFixed64(b []byte, v uint64) []byte { return protowire.AppendFixed64(b, v) }

// ConsumeBytes parses a length-delimited (LEN) field off the front of b,
// returning the framed payload without copying it.
func ConsumeBytes(b []byte) (v []byte, n int) {
	return protowire.ConsumeBytes(b)
}

// AppendBytes appends a length-delimited field's wire encoding to b.
func AppendBytes(b []byte, v []byte) []byte {
	return protowire.AppendBytes(b, v)
}

// Integer is the constraint used by Zigzag/Unzigzag below: any signed or
// unsigned integer type that a zigzag-coded field might be decoded into.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Zigzag encodes a signed value using protobuf's zigzag scheme, mapping
// small-magnitude signed integers to small unsigned ones.
func Zigzag[T Integer](v T) uint64 {
	return protowire.EncodeZigZag(int64(v))
}

// Unzigzag decodes a zigzag-coded raw value back into T. Sign extension is
// handled by masking to the width of T before decoding, matching the width
// the encoder used.
func Unzigzag[T Integer](raw uint64) T {
	n := raw & (1<<(unsafe.Sizeof(T(0))*8) - 1)
	return T(protowire.DecodeZigZag(n))
}

// ConsumeGroup consumes a proto2 group body, starting immediately after the
// SGROUP tag for field num and running until the matching EGROUP tag (which
// is also consumed). It returns the bytes of the group body, exclusive of
// both tags, and the total number of bytes consumed from b (including the
// trailing EGROUP tag).
//
// Groups nest: a group body may itself contain SGROUP/EGROUP pairs for
// other field numbers, which are skipped whole (delimiter pairing checked
// at every level) without being interpreted. ConsumeGroup does not itself
// enforce a recursion bound; callers driving a message decode loop are
// expected to track depth themselves, since that bound is shared with
// ordinary embedded-message recursion.
func ConsumeGroup(num Number, b []byte) (body []byte, n int, ok bool) {
	start := 0
	for start < len(b) {
		tag, m := ConsumeTag(b[start:])
		if m < 0 {
			return nil, 0, false
		}
		start += m

		if tag.Type == EndGroupType {
			if tag.Number != num {
				return nil, 0, false
			}
			return b[:start-m], start, true
		}

		valLen := protowire.ConsumeFieldValue(tag.Number, tag.Type, b[start:])
		if valLen < 0 {
			return nil, 0, false
		}
		start += valLen
	}
	return nil, 0, false
}

// AppendGroup appends the SGROUP tag, the group body, and the EGROUP tag
// for field num to b.
func AppendGroup(b []byte, num Number, body []byte) []byte {
	b = AppendTag(b, Tag{Number: num, Type: StartGroupType})
	b = append(b, body...)
	b = AppendTag(b, Tag{Number: num, Type: EndGroupType})
	return b
}

// Skip consumes one field's value of the given wire type, starting right
// after its tag, and returns the number of bytes consumed or a negative
// value if b does not hold a well-formed value of that type.
func Skip(num Number, typ Type, b []byte) int {
	return protowire.ConsumeFieldValue(num, typ, b)
}
