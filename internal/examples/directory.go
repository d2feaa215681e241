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
	"github.com/arenapb/arenapb/arena"
	"github.com/arenapb/arenapb/internal/wire"
)

// DirectoryBuilder demonstrates both of arenapb's arena-backed map
// container choices for a protobuf map field:
//
//	message Directory {
//	  map<string, int32> ages = 1;    // keeps a reproducible iteration order.
//	  map<string, string> aliases = 2; // optimized for lookup throughput.
//	}
//
// On the wire, a map field is just a repeated submessage with a key field
// (number 1) and a value field (number 2); the two map fields below differ
// only in which arena container their entries are accumulated into.
type DirectoryBuilder struct {
	Ages    arena.OrderedMap[string, int32]
	Aliases *arena.HashMap[string, string]
}

// Directory is the immutable view of a decoded DirectoryBuilder.
type Directory struct {
	arenapb.Bound
	b *DirectoryBuilder
}

var (
	_ arenapb.Decoder[DirectoryBuilder]            = directoryCodec{}
	_ arenapb.Freezer[DirectoryBuilder, Directory] = directoryCodec{}
	_ arenapb.Encoder[Directory]                   = directoryCodec{}
)

// DirectoryCodec implements Directory's Decoder, Freezer, and Encoder.
var DirectoryCodec directoryCodec

// DirectoryFields describes Directory's fields the way a generator would
// emit them; a map field is a repeated entry submessage on the wire, with
// the backend recording which arena container accumulates it.
var DirectoryFields = []arenapb.FieldAttrs{
	{Number: 1, Kind: arenapb.KindMessage, Cardinality: arenapb.Repeated, Map: arenapb.OrderedMapBackend},
	{Number: 2, Kind: arenapb.KindMessage, Cardinality: arenapb.Repeated, Map: arenapb.HashMapBackend},
}

type directoryCodec struct{}

func (directoryCodec) Decode(b *DirectoryBuilder, s *arenapb.State, data []byte) (int, error) {
	if b.Aliases == nil {
		b.Aliases = arena.NewHashMap[string, string](s.Arena, 0)
	}

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
			entry, n, err := arenapb.DecodeBytesField(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			key, value, err := decodeStringInt32Entry(entry)
			if err != nil {
				return 0, err
			}
			b.Ages = b.Ages.Set(s.Arena, s.Arena.AllocString(key), value)
			off += n

		case 2:
			if ok, err := want(wire.BytesType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			entry, n, err := arenapb.DecodeBytesField(data[off:], tag.Number)
			if err != nil {
				return 0, err
			}
			key, value, err := decodeStringStringEntry(entry)
			if err != nil {
				return 0, err
			}
			b.Aliases.Set(s.Arena.AllocString(key), s.Arena.AllocString(value))
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

func (directoryCodec) Freeze(b *DirectoryBuilder, bound arenapb.Bound) Directory {
	return Directory{Bound: bound, b: b}
}

func (directoryCodec) EncodeInto(v Directory, dst []byte) []byte {
	v.Check()
	b := v.b
	b.Ages.Range(func(key string, value int32) bool {
		entry := encodeStringInt32Entry(key, value)
		dst = arenapb.AppendBytesField(dst, 1, entry)
		return true
	})
	b.Aliases.Range(func(key, value string) bool {
		entry := encodeStringStringEntry(key, value)
		dst = arenapb.AppendBytesField(dst, 2, entry)
		return true
	})
	return dst
}

func (directoryCodec) EncodedLen(v Directory) int {
	b := v.b
	n := 0
	b.Ages.Range(func(key string, value int32) bool {
		n += arenapb.SizeBytesField(1, len(encodeStringInt32Entry(key, value)))
		return true
	})
	b.Aliases.Range(func(key, value string) bool {
		n += arenapb.SizeBytesField(2, len(encodeStringStringEntry(key, value)))
		return true
	})
	return n
}

// decodeStringInt32Entry parses a map<string, int32> entry submessage:
// field 1 is the string key, field 2 is the varint value.
func decodeStringInt32Entry(data []byte) (key string, value int32, err error) {
	off := 0
	for off < len(data) {
		tag, n, err := arenapb.DecodeTagField(data[off:], off)
		if err != nil {
			return "", 0, err
		}
		off += n
		switch tag.Number {
		case 1:
			raw, n, err := arenapb.DecodeBytesField(data[off:], tag.Number)
			if err != nil {
				return "", 0, err
			}
			key = string(raw)
			off += n
		case 2:
			v, n, err := arenapb.DecodeVarintField(data[off:], tag.Number)
			if err != nil {
				return "", 0, err
			}
			value = int32(v)
			off += n
		default:
			n := wire.Skip(tag.Number, tag.Type, data[off:])
			if n < 0 {
				return "", 0, &arenapb.Error{Code: arenapb.CodeWireType, Offset: off, Field: tag.Number}
			}
			off += n
		}
	}
	return key, value, nil
}

func encodeStringInt32Entry(key string, value int32) []byte {
	var dst []byte
	dst = arenapb.AppendStringField(dst, 1, key)
	dst = arenapb.AppendVarintField(dst, 2, uint64(value))
	return dst
}

// decodeStringStringEntry parses a map<string, string> entry submessage.
func decodeStringStringEntry(data []byte) (key, value string, err error) {
	off := 0
	for off < len(data) {
		tag, n, err := arenapb.DecodeTagField(data[off:], off)
		if err != nil {
			return "", "", err
		}
		off += n
		switch tag.Number {
		case 1:
			raw, n, err := arenapb.DecodeBytesField(data[off:], tag.Number)
			if err != nil {
				return "", "", err
			}
			key = string(raw)
			off += n
		case 2:
			raw, n, err := arenapb.DecodeBytesField(data[off:], tag.Number)
			if err != nil {
				return "", "", err
			}
			value = string(raw)
			off += n
		default:
			n := wire.Skip(tag.Number, tag.Type, data[off:])
			if n < 0 {
				return "", "", &arenapb.Error{Code: arenapb.CodeWireType, Offset: off, Field: tag.Number}
			}
			off += n
		}
	}
	return key, value, nil
}

func encodeStringStringEntry(key, value string) []byte {
	var dst []byte
	dst = arenapb.AppendStringField(dst, 1, key)
	dst = arenapb.AppendStringField(dst, 2, value)
	return dst
}
