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
// DO NOT EDIT casually — but unlike real generated code, this file has no
// .proto source to regenerate it from.

package examples

import (
	"github.com/arenapb/arenapb"
	"github.com/arenapb/arenapb/arena"
	"github.com/arenapb/arenapb/internal/wire"
)

// PersonBuilder is the mutable counterpart of Person, built up field by
// field during decode. It corresponds to a message:
//
//	message Person {
//	  int32 id = 1;
//	  string name = 2;
//	  optional string email = 3;
//	  repeated string tags = 4;
//	}
type PersonBuilder struct {
	Id    int32
	Name  string
	Email arenapb.Option[string]
	Tags  arena.Vec[string]
}

// Person is the immutable, arena-backed view of a decoded PersonBuilder.
type Person struct {
	arenapb.Bound
	b *PersonBuilder
}

var (
	_ arenapb.Decoder[PersonBuilder]         = personCodec{}
	_ arenapb.Freezer[PersonBuilder, Person] = personCodec{}
	_ arenapb.Encoder[Person]                = personCodec{}
)

// PersonCodec is the stateless value implementing Person's Decoder,
// Freezer, and Encoder contracts.
var PersonCodec personCodec

// PersonFields describes Person's fields the way a generator would emit
// them for introspection (for example, to drive a future field-profiling
// API analogous to PGO hints): one arenapb.FieldAttrs per wire field,
// independent of the hand-written tag switch in Decode below.
var PersonFields = []arenapb.FieldAttrs{
	{Number: 1, Kind: arenapb.KindInt32, Cardinality: arenapb.Singular},
	{Number: 2, Kind: arenapb.KindString, Cardinality: arenapb.Singular},
	{Number: 3, Kind: arenapb.KindString, Cardinality: arenapb.Optional},
	{Number: 4, Kind: arenapb.KindString, Cardinality: arenapb.Repeated},
}

type personCodec struct{}

func (personCodec) Decode(b *PersonBuilder, s *arenapb.State, data []byte) (int, error) {
	off := 0
	for off < len(data) {
		tag, n, err := arenapb.DecodeTagField(data[off:], off)
		if err != nil {
			return 0, err
		}
		off += n

		// want reports whether tag's wire type matches expected for the
		// field named by the current case, skipping (or, under
		// WithStrictWireType, erroring on) a mismatched occurrence before
		// the case's own decode helper would misinterpret its bytes.
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
			ok, err := want(wire.VarintType)
			if err != nil {
				return 0, err
			}
			if !ok {
				continue
			}
			v, n, err := arenapb.DecodeVarintField(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			b.Id = int32(v)
			off += n

		case 2:
			ok, err := want(wire.BytesType)
			if err != nil {
				return 0, err
			}
			if !ok {
				continue
			}
			v, n, err := arenapb.DecodeStringField(s.Arena, data[off:], tag.Number, s.Opts)
			if err != nil {
				return 0, err
			}
			b.Name = v
			off += n

		case 3:
			ok, err := want(wire.BytesType)
			if err != nil {
				return 0, err
			}
			if !ok {
				continue
			}
			v, n, err := arenapb.DecodeStringField(s.Arena, data[off:], tag.Number, s.Opts)
			if err != nil {
				return 0, err
			}
			b.Email = arenapb.Some(v)
			off += n

		case 4:
			ok, err := want(wire.BytesType)
			if err != nil {
				return 0, err
			}
			if !ok {
				continue
			}
			v, n, err := arenapb.DecodeStringField(s.Arena, data[off:], tag.Number, s.Opts)
			if err != nil {
				return 0, err
			}
			b.Tags = b.Tags.Append(s.Arena, v)
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

func (personCodec) Freeze(b *PersonBuilder, bound arenapb.Bound) Person {
	return Person{Bound: bound, b: b}
}

func (personCodec) EncodeInto(v Person, dst []byte) []byte {
	v.Check()
	b := v.b
	if b.Id != 0 {
		dst = arenapb.AppendVarintField(dst, 1, uint64(b.Id))
	}
	if b.Name != "" {
		dst = arenapb.AppendStringField(dst, 2, b.Name)
	}
	if email, ok := b.Email.Get(); ok {
		dst = arenapb.AppendStringField(dst, 3, email)
	}
	for _, tag := range b.Tags.Raw() {
		dst = arenapb.AppendStringField(dst, 4, tag)
	}
	return dst
}

func (personCodec) EncodedLen(v Person) int {
	b := v.b
	n := 0
	if b.Id != 0 {
		n += arenapb.SizeVarintField(1, uint64(b.Id))
	}
	if b.Name != "" {
		n += arenapb.SizeBytesField(2, len(b.Name))
	}
	if email, ok := b.Email.Get(); ok {
		n += arenapb.SizeBytesField(3, len(email))
	}
	for _, tag := range b.Tags.Raw() {
		n += arenapb.SizeBytesField(4, len(tag))
	}
	return n
}

// Id, Name, Email, and Tags give read-only field access on a frozen View,
// mirroring the accessor methods a real generator would emit.
func (v Person) Id() int32                     { v.Check(); return v.b.Id }
func (v Person) Name() string                  { v.Check(); return v.b.Name }
func (v Person) Email() arenapb.Option[string] { v.Check(); return v.b.Email }
func (v Person) Tags() []string                { v.Check(); return v.b.Tags.Raw() }
