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

package arenapb

import (
	"github.com/arenapb/arenapb/arena"
	"github.com/arenapb/arenapb/internal/sync2"
	"github.com/arenapb/arenapb/internal/wire"
)

// State threads an arena, the resolved decode options, and the current
// recursion depth through a decode of a message and everything nested
// inside of it. Generated code does not construct one of these directly;
// Decode (the package-level entry point, in decoder.go) creates one from a
// pool and passes it down through embedded-message and group fields.
type State struct {
	Arena *arena.Arena
	Opts  *Options
	depth int
}

var statePool sync2.Pool[State]

func newState(a *arena.Arena, opts *Options) (*State, func()) {
	s, drop := statePool.Get()
	s.Arena = a
	s.Opts = opts
	s.depth = 0
	return s, drop
}

func init() {
	statePool.Reset = func(s *State) { *s = State{} }
}

// enter increments the recursion depth, failing if it would exceed
// s.Opts.MaxDepth.
func (s *State) enter(offset int) error {
	s.depth++
	if s.depth > s.Opts.MaxDepth {
		return newError(CodeRecursionDepth, offset)
	}
	return nil
}

func (s *State) exit() { s.depth-- }

// DecodeMessageField decodes one occurrence of an embedded-message field:
// it consumes the length-delimited framing around data, then calls dec to
// parse the submessage body into dst, merging into whatever dst already
// held (matching protobuf's merge-on-repeat semantics for message fields).
func DecodeMessageField[B any](s *State, data []byte, field wire.Number, dst *B, dec Decoder[B]) (int, error) {
	body, n, err := DecodeBytesField(data, field)
	if err != nil {
		return 0, err
	}
	if len(body) > s.Opts.MaxMessageLength {
		return 0, newFieldError(CodeMessageLength, 0, field)
	}
	if err := s.enter(0); err != nil {
		return 0, err
	}
	defer s.exit()

	consumed, err := dec.Decode(dst, s, body)
	if err != nil {
		return 0, err
	}
	if consumed != len(body) {
		return 0, newFieldError(CodeTruncated, consumed, field)
	}
	return n, nil
}

// DecodeGroupField decodes one occurrence of a proto2 group field: it
// consumes data up to (and including) the matching EGROUP tag, then calls
// dec to parse the enclosed tag/value pairs into dst.
func DecodeGroupField[B any](s *State, data []byte, field wire.Number, dst *B, dec Decoder[B]) (int, error) {
	body, n, ok := wire.ConsumeGroup(field, data)
	if !ok {
		return 0, newFieldError(CodeEndGroup, 0, field)
	}
	if err := s.enter(0); err != nil {
		return 0, err
	}
	defer s.exit()

	consumed, err := dec.Decode(dst, s, body)
	if err != nil {
		return 0, err
	}
	if consumed != len(body) {
		return 0, newFieldError(CodeTruncated, consumed, field)
	}
	return n, nil
}

// AppendMessageField appends a length-delimited embedded message field,
// using enc to encode v's body.
func AppendMessageField[V any](dst []byte, num wire.Number, v V, enc Encoder[V]) []byte {
	dst = wire.AppendTag(dst, wire.Tag{Number: num, Type: wire.BytesType})
	dst = wire.AppendVarint(dst, uint64(enc.EncodedLen(v)))
	return enc.EncodeInto(v, dst)
}

// AppendGroupField appends a proto2 group field's SGROUP/body/EGROUP
// triple, using enc to encode v's body.
func AppendGroupField[V any](dst []byte, num wire.Number, v V, enc Encoder[V]) []byte {
	dst = wire.AppendTag(dst, wire.Tag{Number: num, Type: wire.StartGroupType})
	dst = enc.EncodeInto(v, dst)
	return wire.AppendTag(dst, wire.Tag{Number: num, Type: wire.EndGroupType})
}

// SizeMessageField and SizeGroupField report how many bytes the
// corresponding Append* call would add.
func SizeMessageField[V any](num wire.Number, v V, enc Encoder[V]) int {
	bodyLen := enc.EncodedLen(v)
	return wire.SizeTag(wire.Tag{Number: num}) + wire.SizeVarint(uint64(bodyLen)) + bodyLen
}

func SizeGroupField[V any](num wire.Number, v V, enc Encoder[V]) int {
	tagSize := wire.SizeTag(wire.Tag{Number: num})
	return tagSize*2 + enc.EncodedLen(v)
}
