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

// NodeBuilder is a self-recursive message, the shape that exercises the
// decoder's recursion bound and protobuf's field-wise merge of repeated
// singular message fields:
//
//	message Node {
//	  int32 value = 1;
//	  Node next = 2;
//	}
type NodeBuilder struct {
	Value int32
	Next  *NodeBuilder
}

// Node is the immutable view of a decoded NodeBuilder.
type Node struct {
	arenapb.Bound
	b *NodeBuilder
}

var (
	_ arenapb.Decoder[NodeBuilder]       = nodeCodec{}
	_ arenapb.Freezer[NodeBuilder, Node] = nodeCodec{}
	_ arenapb.Encoder[Node]              = nodeCodec{}
)

// NodeCodec implements Node's Decoder, Freezer, and Encoder.
var NodeCodec nodeCodec

type nodeCodec struct{}

func (nodeCodec) Decode(b *NodeBuilder, s *arenapb.State, data []byte) (int, error) {
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
			b.Value = int32(v)
			off += n
		case 2:
			if ok, err := want(wire.BytesType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			// A repeated occurrence merges into the Next already present,
			// rather than replacing it.
			if b.Next == nil {
				b.Next = arena.NewValue(s.Arena, NodeBuilder{})
			}
			n, err := arenapb.DecodeMessageField(s, data[off:], tag.Number, b.Next, NodeCodec)
			if err != nil {
				return 0, err
			}
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

func (nodeCodec) Freeze(b *NodeBuilder, bound arenapb.Bound) Node {
	return Node{Bound: bound, b: b}
}

func (nodeCodec) EncodeInto(v Node, dst []byte) []byte {
	v.Check()
	b := v.b
	if b.Value != 0 {
		dst = arenapb.AppendVarintField(dst, 1, uint64(b.Value))
	}
	if b.Next != nil {
		dst = arenapb.AppendMessageField(dst, 2, Node{Bound: v.Bound, b: b.Next}, NodeCodec)
	}
	return dst
}

func (nodeCodec) EncodedLen(v Node) int {
	b := v.b
	n := 0
	if b.Value != 0 {
		n += arenapb.SizeVarintField(1, uint64(b.Value))
	}
	if b.Next != nil {
		n += arenapb.SizeMessageField(2, Node{Bound: v.Bound, b: b.Next}, NodeCodec)
	}
	return n
}

// Value and Next give read-only field access on a frozen View.
func (v Node) Value() int32 { v.Check(); return v.b.Value }

func (v Node) Next() (Node, bool) {
	v.Check()
	if v.b.Next == nil {
		return Node{}, false
	}
	return Node{Bound: v.Bound, b: v.b.Next}, true
}
