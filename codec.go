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

// This file holds the field-level codec helpers that generated Decode and
// EncodeInto methods call into. They are deliberately low-level and
// allocation-free where possible; the higher-level recursion and depth
// bookkeeping for embedded messages and groups lives in codec_message.go.

package arenapb

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/arenapb/arenapb/arena"
	"github.com/arenapb/arenapb/internal/wire"
)

// DecodeTagField decodes the field tag at the front of data. offset is the
// position of data within the enclosing message, recorded on any error.
// Failures are classified per the error taxonomy: an input that ends
// mid-tag is CodeTruncated, a tag varint past 10 bytes is CodeOverflow,
// and a well-formed varint naming field 0, an out-of-range field number,
// or an undefined wire type is CodeFieldNumber or CodeWireType.
func DecodeTagField(data []byte, offset int) (wire.Tag, int, error) {
	tag, n := wire.ConsumeTag(data)
	if n >= 0 {
		return tag, n, nil
	}
	switch n {
	case wire.ErrCodeFieldNumber:
		return wire.Tag{}, 0, newError(CodeFieldNumber, offset)
	case wire.ErrCodeWireType:
		return wire.Tag{}, 0, newError(CodeWireType, offset)
	}
	return wire.Tag{}, 0, newError(varintCode(n), offset)
}

// varintCode classifies a negative protowire length from a varint read:
// truncation and everything else (in practice, overflow past 10 bytes).
func varintCode(n int) Code {
	if errors.Is(wire.ParseErr(n), io.ErrUnexpectedEOF) {
		return CodeTruncated
	}
	return CodeOverflow
}

// DecodeVarintField decodes a varint-encoded scalar (bool, int32, int64,
// uint32, uint64, or an enum) from the front of data.
func DecodeVarintField(data []byte, field wire.Number) (uint64, int, error) {
	v, n := wire.ConsumeVarint(data)
	if n < 0 {
		return 0, 0, newFieldError(varintCode(n), 0, field)
	}
	return v, n, nil
}

// DecodeSintField decodes a zigzag-encoded sint32/sint64 scalar.
func DecodeSintField[T wire.Integer](data []byte, field wire.Number) (T, int, error) {
	raw, n, err := DecodeVarintField(data, field)
	if err != nil {
		return 0, 0, err
	}
	return wire.Unzigzag[T](raw), n, nil
}

// DecodeFixed32Field and DecodeFixed64Field decode fixed-width scalars
// (fixed32/sfixed32/float, fixed64/sfixed64/double).
func DecodeFixed32Field(data []byte, field wire.Number) (uint32, int, error) {
	v, n := wire.ConsumeFixed32(data)
	if n < 0 {
		return 0, 0, newFieldError(CodeTruncated, 0, field)
	}
	return v, n, nil
}

func DecodeFixed64Field(data []byte, field wire.Number) (uint64, int, error) {
	v, n := wire.ConsumeFixed64(data)
	if n < 0 {
		return 0, 0, newFieldError(CodeTruncated, 0, field)
	}
	return v, n, nil
}

// CheckWireType verifies that tag's wire type is want, the one wire type
// the caller's field may arrive as. A field that legally arrives in two
// encodings (a packed repeated scalar, which may also arrive unpacked)
// tests tag.Type against both itself and calls this only when the tag
// matches neither, passing BytesType as want.
//
// When the wire types disagree: if opts.StrictWireType is set, this
// reports CodeWireType so the caller can abort the decode; otherwise it
// skips the mismatched field's bytes itself (as if it were unknown) and
// reports the number of bytes consumed, so the caller's tag-dispatch loop
// can move on to the next tag without attempting to reinterpret data
// framed under a different wire type.
//
// matched is true exactly when decoding should proceed using the bytes
// starting at data; when it is false, n bytes (consumed by the skip) have
// already been accounted for and the caller should simply continue its
// loop.
func CheckWireType(data []byte, tag wire.Tag, want wire.Type, opts *Options) (n int, matched bool, err error) {
	if tag.Type == want {
		return 0, true, nil
	}
	if opts.StrictWireType {
		return 0, false, newFieldError(CodeWireType, 0, tag.Number)
	}
	n = wire.Skip(tag.Number, tag.Type, data)
	if n < 0 {
		return 0, false, newFieldError(CodeWireType, 0, tag.Number)
	}
	return n, false, nil
}

// DecodeBytesField decodes a length-delimited field, returning a view into
// data itself (no copy). Callers that need the bytes to outlive data (for
// example, because data is caller-owned and may be reused) should copy via
// a.AllocCopy.
func DecodeBytesField(data []byte, field wire.Number) ([]byte, int, error) {
	v, n := wire.ConsumeBytes(data)
	if n < 0 {
		return nil, 0, newFieldError(CodeTruncated, 0, field)
	}
	return v, n, nil
}

// DecodeStringField is like DecodeBytesField, additionally validating
// UTF-8 when opts.RejectInvalidUTF8 is set, and copying the bytes into a so
// that the resulting string remains valid once the input buffer is reused.
func DecodeStringField(a *arena.Arena, data []byte, field wire.Number, opts *Options) (string, int, error) {
	raw, n, err := DecodeBytesField(data, field)
	if err != nil {
		return "", 0, err
	}
	if opts.RejectInvalidUTF8 && !utf8.Valid(raw) {
		return "", 0, newFieldError(CodeUTF8, 0, field)
	}
	return a.AllocString(string(raw)), n, nil
}

// AppendVarintField appends a tag and varint-encoded value to dst.
func AppendVarintField(dst []byte, num wire.Number, v uint64) []byte {
	dst = wire.AppendTag(dst, wire.Tag{Number: num, Type: wire.VarintType})
	return wire.AppendVarint(dst, v)
}

// AppendSintField appends a tag and zigzag-encoded value to dst.
func AppendSintField[T wire.Integer](dst []byte, num wire.Number, v T) []byte {
	return AppendVarintField(dst, num, wire.Zigzag(v))
}

// AppendFixed32Field and AppendFixed64Field append a tag and fixed-width
// value to dst.
func AppendFixed32Field(dst []byte, num wire.Number, v uint32) []byte {
	dst = wire.AppendTag(dst, wire.Tag{Number: num, Type: wire.Fixed32Type})
	return wire.AppendFixed32(dst, v)
}

func AppendFixed64Field(dst []byte, num wire.Number, v uint64) []byte {
	dst = wire.AppendTag(dst, wire.Tag{Number: num, Type: wire.Fixed64Type})
	return wire.AppendFixed64(dst, v)
}

// AppendBytesField appends a tag and length-delimited payload to dst.
func AppendBytesField(dst []byte, num wire.Number, v []byte) []byte {
	dst = wire.AppendTag(dst, wire.Tag{Number: num, Type: wire.BytesType})
	return wire.AppendBytes(dst, v)
}

// AppendStringField is AppendBytesField for strings, avoiding a []byte
// conversion that would otherwise copy.
func AppendStringField(dst []byte, num wire.Number, v string) []byte {
	dst = wire.AppendTag(dst, wire.Tag{Number: num, Type: wire.BytesType})
	dst = wire.AppendVarint(dst, uint64(len(v)))
	return append(dst, v...)
}

// SizeVarintField, SizeFixed32Field, SizeFixed64Field, and SizeBytesField
// report how many bytes the corresponding Append* call would add, which
// EncodedLen implementations use to presize their destination buffer.
func SizeVarintField(num wire.Number, v uint64) int {
	return wire.SizeTag(wire.Tag{Number: num}) + wire.SizeVarint(v)
}

// SizeSintField reports the encoded size of a zigzag-coded sint32/sint64
// field, tag included.
func SizeSintField[T wire.Integer](num wire.Number, v T) int {
	return SizeVarintField(num, wire.Zigzag(v))
}

func SizeFixed32Field(num wire.Number) int {
	return wire.SizeTag(wire.Tag{Number: num}) + 4
}

func SizeFixed64Field(num wire.Number) int {
	return wire.SizeTag(wire.Tag{Number: num}) + 8
}

func SizeBytesField(num wire.Number, n int) int {
	return wire.SizeTag(wire.Tag{Number: num}) + wire.SizeVarint(uint64(n)) + n
}
