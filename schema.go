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

// This file describes the contract that generated per-message code is
// expected to satisfy. There is no code generator in this module; the
// types in internal/examples implement this contract by hand, the way a
// generator's output would look once run through gofmt.
//
// The generator side of the contract is configured per type path with the
// options btree_map (map fields use arena.OrderedMap), hash_map (map
// fields use arena.HashMap), type_attribute and field_attribute (extra
// attributes attached to emitted declarations), and arenapb_path /
// arenapb_types_path (re-export path overrides for split runtime
// packages). Those options shape what the generator emits; everything
// this package consumes is expressed by the types below.

package arenapb

import "github.com/arenapb/arenapb/arena"

// Kind identifies a field's underlying protobuf type, independent of its
// cardinality.
type Kind int

// The field kinds defined by the protobuf type system.
const (
	KindInvalid Kind = iota
	KindBool
	KindInt32
	KindSint32
	KindUint32
	KindInt64
	KindSint64
	KindUint64
	KindFixed32
	KindSfixed32
	KindFloat
	KindFixed64
	KindSfixed64
	KindDouble
	KindString
	KindBytes
	KindMessage
	KindGroup
	KindEnum
)

// Cardinality describes how many times a field may occur in a message.
type Cardinality int

// The cardinalities defined by the protobuf type system.
const (
	// Singular means the field is either a proto3 scalar (which never
	// reports presence) or an implicitly optional proto2 field.
	Singular Cardinality = iota
	// Optional means the field reports explicit presence, either because
	// it is a proto2 "optional" field or a proto3 field marked with the
	// "optional" keyword.
	Optional
	// Required means the field is a proto2 "required" field; a message
	// missing one fails to decode with CodeRequiredField.
	Required
	// Repeated means the field may occur any number of times.
	Repeated
)

// MapBackend selects which arena container a generated map field is
// accumulated into. The generator exposes this per type path through its
// btree_map and hash_map options.
type MapBackend int

// The available map field backends.
const (
	// NoMap marks a field that is not a map.
	NoMap MapBackend = iota
	// OrderedMapBackend selects arena.OrderedMap: sorted keys,
	// deterministic iteration, O(log n) lookup.
	OrderedMapBackend
	// HashMapBackend selects arena.HashMap: unspecified iteration order,
	// average O(1) lookup with a randomized per-instance seed.
	HashMapBackend
)

// FieldAttrs bundles the static properties of a single field that
// generated code needs to make decoding decisions: its number, kind,
// cardinality, whether a repeated scalar field is packed on the wire,
// which oneof (if any) it belongs to, its proto2 default literal, and the
// map backend for map fields.
type FieldAttrs struct {
	Number      int32
	Kind        Kind
	Cardinality Cardinality
	Packed      bool

	// Oneof names the oneof this field belongs to; empty for ordinary
	// fields. All fields sharing a non-empty Oneof share one case slot in
	// the Builder.
	Oneof string

	// Default is the proto2 default-value literal, verbatim from the
	// source file; empty means the type's zero default applies.
	Default string

	// Map is NoMap unless this field is a map, in which case it records
	// which container the generator chose.
	Map MapBackend
}

// Decoder is implemented by a message's Builder type. Decode parses one
// complete message (or group body) out of data, allocating any nested
// messages, strings, or repeated field storage from s.Arena, and returns
// the number of bytes of data consumed.
//
// s carries the arena, the resolved Options, and the current recursion
// depth; generated code threads it unchanged into DecodeMessageField and
// DecodeGroupField for every nested message or group field, which is what
// lets a single top-level call to Decode enforce a recursion bound over
// the whole message tree.
//
// Decode does not reset b first; callers that want a fresh message should
// start from a zero B. This lets Decode double as the implementation of
// Merge for embedded message fields: decoding a second occurrence of a
// singular message field merges into the one already present, exactly as
// protobuf's "last message field wins, but only destructively at the leaf
// level" merge semantics require.
type Decoder[B any] interface {
	Decode(b *B, s *State, data []byte) (int, error)
}

// Merger is implemented by a message's Builder type when its merge
// behavior cannot be expressed purely in terms of Decode (for example,
// because it must merge two already-decoded builders rather than a
// builder and raw wire bytes).
type Merger[B any] interface {
	Merge(dst *B, a *arena.Arena, src *B)
}

// Freezer is implemented by a message's Builder type, converting it into
// its immutable View counterpart. Freeze is zero-cost: a View wraps the
// same Builder pointer plus the Bound recording which arena (and
// generation) it came from, so Freeze never copies field data.
type Freezer[B any, V any] interface {
	Freeze(b *B, bound Bound) V
}

// Encoder is implemented by a message's View type. EncodeInto appends the
// wire encoding of v to dst and returns the extended slice; EncodedLen
// reports how many bytes that encoding will occupy, which generated code
// uses to presize the destination buffer before a top-level Encode.
type Encoder[V any] interface {
	EncodeInto(v V, dst []byte) []byte
	EncodedLen(v V) int
}
