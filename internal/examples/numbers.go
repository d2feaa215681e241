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
	"math"

	"github.com/arenapb/arenapb"
	"github.com/arenapb/arenapb/arena"
	"github.com/arenapb/arenapb/internal/wire"
)

// NumbersBuilder exercises every scalar wire encoding arenapb supports:
//
//	message Numbers {
//	  int32 i32 = 1;
//	  sint32 si32 = 2;
//	  uint32 u32 = 3;
//	  int64 i64 = 4;
//	  sint64 si64 = 5;
//	  uint64 u64 = 6;
//	  fixed32 f32 = 7;
//	  sfixed32 sf32 = 8;
//	  float f = 9;
//	  fixed64 f64 = 10;
//	  sfixed64 sf64 = 11;
//	  double d = 12;
//	  bool b = 13;
//	  repeated int32 packed = 14 [packed = true];
//	  repeated fixed32 packed_f32 = 15 [packed = true];
//	}
type NumbersBuilder struct {
	I32       int32
	Si32      int32
	U32       uint32
	I64       int64
	Si64      int64
	U64       uint64
	F32       uint32
	Sf32      int32
	F         float32
	F64       uint64
	Sf64      int64
	D         float64
	B         bool
	Packed    arena.Vec[int32]
	PackedF32 arena.Vec[uint32]
}

// Numbers is the immutable view of a decoded NumbersBuilder.
type Numbers struct {
	arenapb.Bound
	b *NumbersBuilder
}

var (
	_ arenapb.Decoder[NumbersBuilder]          = numbersCodec{}
	_ arenapb.Freezer[NumbersBuilder, Numbers] = numbersCodec{}
	_ arenapb.Encoder[Numbers]                 = numbersCodec{}
)

// NumbersCodec implements Numbers' Decoder, Freezer, and Encoder.
var NumbersCodec numbersCodec

type numbersCodec struct{}

func (numbersCodec) Decode(b *NumbersBuilder, s *arenapb.State, data []byte) (int, error) {
	off := 0
	for off < len(data) {
		tag, n, err := arenapb.DecodeTagField(data[off:], off)
		if err != nil {
			return 0, err
		}
		off += n

		// want reports whether tag's wire type matches expected, skipping
		// (or, under WithStrictWireType, erroring on) a mismatched
		// occurrence before the case's own decode helper runs.
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
			b.I32 = int32(v)
			off += n
		case 2:
			if ok, err := want(wire.VarintType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeSintField[int32](data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.Si32 = v
			off += n
		case 3:
			if ok, err := want(wire.VarintType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeVarintField(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.U32 = uint32(v)
			off += n
		case 4:
			if ok, err := want(wire.VarintType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeVarintField(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.I64 = int64(v)
			off += n
		case 5:
			if ok, err := want(wire.VarintType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeSintField[int64](data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.Si64 = v
			off += n
		case 6:
			if ok, err := want(wire.VarintType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeVarintField(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.U64 = v
			off += n
		case 7:
			if ok, err := want(wire.Fixed32Type); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeFixed32Field(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.F32 = v
			off += n
		case 8:
			if ok, err := want(wire.Fixed32Type); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeFixed32Field(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.Sf32 = int32(v)
			off += n
		case 9:
			if ok, err := want(wire.Fixed32Type); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeFixed32Field(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.F = math.Float32frombits(v)
			off += n
		case 10:
			if ok, err := want(wire.Fixed64Type); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeFixed64Field(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.F64 = v
			off += n
		case 11:
			if ok, err := want(wire.Fixed64Type); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeFixed64Field(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.Sf64 = int64(v)
			off += n
		case 12:
			if ok, err := want(wire.Fixed64Type); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeFixed64Field(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.D = math.Float64frombits(v)
			off += n
		case 13:
			if ok, err := want(wire.VarintType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeVarintField(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.B = v != 0
			off += n
		case 14:
			// A packed repeated scalar legally arrives either packed (one
			// LEN run of varints) or unpacked (one VarintType tag per
			// element), whatever the field's declared packing. Anything
			// else is a genuine wire-type mismatch.
			if tag.Type != wire.BytesType && tag.Type != wire.VarintType {
				if ok, err := want(wire.BytesType); err != nil {
					return 0, err
				} else if !ok {
					continue
				}
			}
			if tag.Type == wire.BytesType {
				body, n, err := arenapb.DecodeBytesField(data[off:], tag.Number)
				if err != nil {
					return 0, err
				}
				for len(body) > 0 {
					v, m, err := arenapb.DecodeVarintField(body, tag.Number)
					if err != nil {
						return 0, &arenapb.Error{Code: arenapb.CodePackedLength, Offset: off, Field: tag.Number}
					}
					b.Packed = b.Packed.Append(s.Arena, int32(v))
					body = body[m:]
				}
				off += n
			} else {
				v, n, err := arenapb.DecodeVarintField(data[off:], tag.Number)
				if err != nil {
					return 0, err
				}
				b.Packed = b.Packed.Append(s.Arena, int32(v))
				off += n
			}

		case 15:
			if tag.Type != wire.BytesType && tag.Type != wire.Fixed32Type {
				if ok, err := want(wire.BytesType); err != nil {
					return 0, err
				} else if !ok {
					continue
				}
			}
			if tag.Type == wire.BytesType {
				body, n, err := arenapb.DecodeBytesField(data[off:], tag.Number)
				if err != nil {
					return 0, err
				}
				if len(body)%4 != 0 {
					return 0, &arenapb.Error{Code: arenapb.CodePackedLength, Offset: off, Field: tag.Number}
				}
				for len(body) > 0 {
					v, m := wire.ConsumeFixed32(body)
					b.PackedF32 = b.PackedF32.Append(s.Arena, v)
					body = body[m:]
				}
				off += n
			} else {
				v, n, err := arenapb.DecodeFixed32Field(data[off:], tag.Number)
				if err != nil {
					return 0, err
				}
				b.PackedF32 = b.PackedF32.Append(s.Arena, v)
				off += n
			}

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

func (numbersCodec) Freeze(b *NumbersBuilder, bound arenapb.Bound) Numbers {
	return Numbers{Bound: bound, b: b}
}

func (numbersCodec) EncodeInto(v Numbers, dst []byte) []byte {
	v.Check()
	b := v.b
	if b.I32 != 0 {
		dst = arenapb.AppendVarintField(dst, 1, uint64(b.I32))
	}
	if b.Si32 != 0 {
		dst = arenapb.AppendSintField(dst, 2, b.Si32)
	}
	if b.U32 != 0 {
		dst = arenapb.AppendVarintField(dst, 3, uint64(b.U32))
	}
	if b.I64 != 0 {
		dst = arenapb.AppendVarintField(dst, 4, uint64(b.I64))
	}
	if b.Si64 != 0 {
		dst = arenapb.AppendSintField(dst, 5, b.Si64)
	}
	if b.U64 != 0 {
		dst = arenapb.AppendVarintField(dst, 6, b.U64)
	}
	if b.F32 != 0 {
		dst = arenapb.AppendFixed32Field(dst, 7, b.F32)
	}
	if b.Sf32 != 0 {
		dst = arenapb.AppendFixed32Field(dst, 8, uint32(b.Sf32))
	}
	if b.F != 0 {
		dst = arenapb.AppendFixed32Field(dst, 9, math.Float32bits(b.F))
	}
	if b.F64 != 0 {
		dst = arenapb.AppendFixed64Field(dst, 10, b.F64)
	}
	if b.Sf64 != 0 {
		dst = arenapb.AppendFixed64Field(dst, 11, uint64(b.Sf64))
	}
	if b.D != 0 {
		dst = arenapb.AppendFixed64Field(dst, 12, math.Float64bits(b.D))
	}
	if b.B {
		dst = arenapb.AppendVarintField(dst, 13, 1)
	}
	if b.Packed.Len() > 0 {
		payload := make([]byte, 0, b.Packed.Len()*2)
		for _, v := range b.Packed.Raw() {
			payload = wire.AppendVarint(payload, uint64(v))
		}
		dst = arenapb.AppendBytesField(dst, 14, payload)
	}
	if b.PackedF32.Len() > 0 {
		payload := make([]byte, 0, b.PackedF32.Len()*4)
		for _, v := range b.PackedF32.Raw() {
			payload = wire.AppendFixed32(payload, v)
		}
		dst = arenapb.AppendBytesField(dst, 15, payload)
	}
	return dst
}

func (numbersCodec) EncodedLen(v Numbers) int {
	b := v.b
	n := 0
	if b.I32 != 0 {
		n += arenapb.SizeVarintField(1, uint64(b.I32))
	}
	if b.Si32 != 0 {
		n += arenapb.SizeSintField(2, b.Si32)
	}
	if b.U32 != 0 {
		n += arenapb.SizeVarintField(3, uint64(b.U32))
	}
	if b.I64 != 0 {
		n += arenapb.SizeVarintField(4, uint64(b.I64))
	}
	if b.Si64 != 0 {
		n += arenapb.SizeSintField(5, b.Si64)
	}
	if b.U64 != 0 {
		n += arenapb.SizeVarintField(6, b.U64)
	}
	if b.F32 != 0 {
		n += arenapb.SizeFixed32Field(7)
	}
	if b.Sf32 != 0 {
		n += arenapb.SizeFixed32Field(8)
	}
	if b.F != 0 {
		n += arenapb.SizeFixed32Field(9)
	}
	if b.F64 != 0 {
		n += arenapb.SizeFixed64Field(10)
	}
	if b.Sf64 != 0 {
		n += arenapb.SizeFixed64Field(11)
	}
	if b.D != 0 {
		n += arenapb.SizeFixed64Field(12)
	}
	if b.B {
		n += arenapb.SizeVarintField(13, 1)
	}
	if b.Packed.Len() > 0 {
		payload := 0
		for _, v := range b.Packed.Raw() {
			payload += wire.SizeVarint(uint64(v))
		}
		n += arenapb.SizeBytesField(14, payload)
	}
	if b.PackedF32.Len() > 0 {
		n += arenapb.SizeBytesField(15, b.PackedF32.Len()*4)
	}
	return n
}
