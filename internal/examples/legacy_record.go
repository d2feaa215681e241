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

// Code generated by hand in the style of a future arenapb-gen; see
// schema.go in the parent module for the interfaces implemented below.

package examples

import (
	"github.com/arenapb/arenapb"
	"github.com/arenapb/arenapb/internal/wire"
)

// ExtraBuilder is the body of LegacyRecord's proto2 group field:
//
//	group Extra = 3 {
//	  optional string tag = 1;
//	  optional int32 weight = 2;
//	}
type ExtraBuilder struct {
	Tag    arenapb.Option[string]
	Weight arenapb.Option[int32]
}

var _ arenapb.Decoder[ExtraBuilder] = extraCodec{}

// ExtraCodec implements ExtraBuilder's Decoder.
var ExtraCodec extraCodec

type extraCodec struct{}

func (extraCodec) Decode(b *ExtraBuilder, s *arenapb.State, data []byte) (int, error) {
	off := 0
	for off < len(data) {
		tag, n, err := arenapb.DecodeTagField(data[off:], off)
		if err != nil {
			return 0, err
		}
		off += n

		want := func(expected wire.Type) (ok bool, err error) {
			n, matched, err := arenapb.CheckWireType(data[off:], tag, expected, s.Opts)
			if err != nil {
				return false, err
			}
			off += n
			return matched, nil
		}

		switch tag.Number {
		case 1:
			if ok, err := want(wire.BytesType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeStringField(s.Arena, data[off:], tag.Number, s.Opts)
			if err != nil {
				return 0, err
			}
			b.Tag = arenapb.Some(v)
			off += n
		case 2:
			if ok, err := want(wire.VarintType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeVarintField(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.Weight = arenapb.Some(int32(v))
			off += n
		default:
			n := wire.Skip(tag.Number, tag.Type, data[off:])
			if n < 0 {
				return 0, &arenapb.Error{Code: arenapb.CodeWireType, Offset: off, Field: tag.Number}
			}
			off += n
		}
	}
	return off, nil
}

// LegacyRecordBuilder demonstrates proto2's required-field and group
// features, both absent from proto3:
//
//	message LegacyRecord {
//	  required int32 id = 1;
//	  optional string note = 2;
//	  optional group Extra = 3 {
//	    optional string tag = 1;
//	    optional int32 weight = 2;
//	  }
//	}
type LegacyRecordBuilder struct {
	Id       arenapb.Option[int32] // required; presence tracked to enforce CodeRequiredField.
	Note     arenapb.Option[string]
	Extra    ExtraBuilder
	hasExtra bool
}

// LegacyRecord is the immutable view of a decoded LegacyRecordBuilder.
type LegacyRecord struct {
	arenapb.Bound
	b *LegacyRecordBuilder
}

var (
	_ arenapb.Decoder[LegacyRecordBuilder]               = legacyRecordCodec{}
	_ arenapb.Freezer[LegacyRecordBuilder, LegacyRecord] = legacyRecordCodec{}
	_ arenapb.Encoder[LegacyRecord]                      = legacyRecordCodec{}
)

// LegacyRecordCodec implements LegacyRecord's Decoder, Freezer, and
// Encoder.
var LegacyRecordCodec legacyRecordCodec

type legacyRecordCodec struct{}

func (legacyRecordCodec) Decode(b *LegacyRecordBuilder, s *arenapb.State, data []byte) (int, error) {
	off := 0
	for off < len(data) {
		tag, n, err := arenapb.DecodeTagField(data[off:], off)
		if err != nil {
			return 0, err
		}
		off += n

		want := func(expected wire.Type) (ok bool, err error) {
			n, matched, err := arenapb.CheckWireType(data[off:], tag, expected, s.Opts)
			if err != nil {
				return false, err
			}
			off += n
			return matched, nil
		}

		switch tag.Number {
		case 1:
			if ok, err := want(wire.VarintType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeVarintField(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.Id = arenapb.Some(int32(v))
			off += n
		case 2:
			if ok, err := want(wire.BytesType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeStringField(s.Arena, data[off:], tag.Number, s.Opts)
			if err != nil {
				return 0, err
			}
			b.Note = arenapb.Some(v)
			off += n
		case 3:
			if ok, err := want(wire.StartGroupType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			n, err := arenapb.DecodeGroupField(s, data[off:], tag.Number, &b.Extra, ExtraCodec)
			if err != nil {
				return 0, err
			}
			b.hasExtra = true
			off += n
		default:
			n := wire.Skip(tag.Number, tag.Type, data[off:])
			if n < 0 {
				return 0, &arenapb.Error{Code: arenapb.CodeWireType, Offset: off, Field: tag.Number}
			}
			off += n
		}
	}

	if b.Id.IsNone() {
		return off, &arenapb.Error{Code: arenapb.CodeRequiredField, Offset: off, Field: 1}
	}
	return off, nil
}

func (legacyRecordCodec) Freeze(b *LegacyRecordBuilder, bound arenapb.Bound) LegacyRecord {
	return LegacyRecord{Bound: bound, b: b}
}

func (legacyRecordCodec) EncodeInto(v LegacyRecord, dst []byte) []byte {
	v.Check()
	b := v.b
	if id, ok := b.Id.Get(); ok {
		dst = arenapb.AppendVarintField(dst, 1, uint64(id))
	}
	if note, ok := b.Note.Get(); ok {
		dst = arenapb.AppendStringField(dst, 2, note)
	}
	if b.hasExtra {
		extraEnc := extraEncoder{}
		dst = arenapb.AppendGroupField(dst, 3, b.Extra, extraEnc)
	}
	return dst
}

func (legacyRecordCodec) EncodedLen(v LegacyRecord) int {
	b := v.b
	n := 0
	if id, ok := b.Id.Get(); ok {
		n += arenapb.SizeVarintField(1, uint64(id))
	}
	if note, ok := b.Note.Get(); ok {
		n += arenapb.SizeBytesField(2, len(note))
	}
	if b.hasExtra {
		n += arenapb.SizeGroupField(3, b.Extra, extraEncoder{})
	}
	return n
}

// extraEncoder implements arenapb.Encoder[ExtraBuilder] directly over the
// builder value, since a group field has no separate immutable View of its
// own — it is always accessed through its enclosing message.
type extraEncoder struct{}

func (extraEncoder) EncodeInto(v ExtraBuilder, dst []byte) []byte {
	if tag, ok := v.Tag.Get(); ok {
		dst = arenapb.AppendStringField(dst, 1, tag)
	}
	if weight, ok := v.Weight.Get(); ok {
		dst = arenapb.AppendVarintField(dst, 2, uint64(weight))
	}
	return dst
}

func (extraEncoder) EncodedLen(v ExtraBuilder) int {
	n := 0
	if tag, ok := v.Tag.Get(); ok {
		n += arenapb.SizeBytesField(1, len(tag))
	}
	if weight, ok := v.Weight.Get(); ok {
		n += arenapb.SizeVarintField(2, uint64(weight))
	}
	return n
}
