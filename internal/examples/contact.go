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

// ContactCase discriminates which alternative of Contact's oneof is set.
type ContactCase int32

// The alternatives of Contact's "via" oneof.
const (
	ContactUnset ContactCase = iota
	ContactEmail
	ContactPhone
	ContactReferral
	ContactShortCode
)

// ContactBuilder corresponds to:
//
//	message Contact {
//	  oneof via {
//	    string email = 1;
//	    string phone = 2;
//	    Person referral = 3;
//	    int32 short_code = 4;
//	  }
//	}
type ContactBuilder struct {
	Via       arenapb.Oneof[ContactCase]
	Email     string
	Phone     string
	Referral  PersonBuilder
	ShortCode int32
}

// Contact is the immutable view of a decoded ContactBuilder.
type Contact struct {
	arenapb.Bound
	b *ContactBuilder
}

var (
	_ arenapb.Decoder[ContactBuilder]          = contactCodec{}
	_ arenapb.Freezer[ContactBuilder, Contact] = contactCodec{}
	_ arenapb.Encoder[Contact]                 = contactCodec{}
)

// ContactCodec implements Contact's Decoder, Freezer, and Encoder.
var ContactCodec contactCodec

// ContactFields describes Contact's fields the way a generator would emit
// them; every field shares the "via" oneof.
var ContactFields = []arenapb.FieldAttrs{
	{Number: 1, Kind: arenapb.KindString, Cardinality: arenapb.Singular, Oneof: "via"},
	{Number: 2, Kind: arenapb.KindString, Cardinality: arenapb.Singular, Oneof: "via"},
	{Number: 3, Kind: arenapb.KindMessage, Cardinality: arenapb.Singular, Oneof: "via"},
	{Number: 4, Kind: arenapb.KindInt32, Cardinality: arenapb.Singular, Oneof: "via"},
}

type contactCodec struct{}

func (contactCodec) Decode(b *ContactBuilder, s *arenapb.State, data []byte) (int, error) {
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
			if ok, err := want(wire.BytesType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			v, n, err := arenapb.DecodeStringField(s.Arena, data[off:], tag.Number, s.Opts)
			if err != nil {
				return 0, err
			}
			b.Via.Set(ContactEmail)
			b.Email = v
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
			b.Via.Set(ContactPhone)
			b.Phone = v
			off += n

		case 3:
			if ok, err := want(wire.BytesType); err != nil {
				return 0, err
			} else if !ok {
				continue
			}
			b.Via.Set(ContactReferral)
			n, err := arenapb.DecodeMessageField(s, data[off:], tag.Number, &b.Referral, PersonCodec)
			if err != nil {
				return 0, err
			}
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
			b.Via.Set(ContactShortCode)
			b.ShortCode = int32(v)
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

func (contactCodec) Freeze(b *ContactBuilder, bound arenapb.Bound) Contact {
	return Contact{Bound: bound, b: b}
}

func (contactCodec) EncodeInto(v Contact, dst []byte) []byte {
	v.Check()
	b := v.b
	switch b.Via.Case() {
	case ContactEmail:
		dst = arenapb.AppendStringField(dst, 1, b.Email)
	case ContactPhone:
		dst = arenapb.AppendStringField(dst, 2, b.Phone)
	case ContactReferral:
		dst = arenapb.AppendMessageField(dst, 3, Person{Bound: v.Bound, b: &b.Referral}, PersonCodec)
	case ContactShortCode:
		dst = arenapb.AppendVarintField(dst, 4, uint64(b.ShortCode))
	}
	return dst
}

func (contactCodec) EncodedLen(v Contact) int {
	b := v.b
	switch b.Via.Case() {
	case ContactEmail:
		return arenapb.SizeBytesField(1, len(b.Email))
	case ContactPhone:
		return arenapb.SizeBytesField(2, len(b.Phone))
	case ContactReferral:
		return arenapb.SizeMessageField(3, Person{Bound: v.Bound, b: &b.Referral}, PersonCodec)
	case ContactShortCode:
		return arenapb.SizeVarintField(4, uint64(b.ShortCode))
	}
	return 0
}

// Case reports which alternative of the oneof is currently set; the
// accessors below are only meaningful when Case reports the matching
// alternative.
func (v Contact) Case() ContactCase { v.Check(); return v.b.Via.Case() }

func (v Contact) Email() string    { v.Check(); return v.b.Email }
func (v Contact) Phone() string    { v.Check(); return v.b.Phone }
func (v Contact) ShortCode() int32 { v.Check(); return v.b.ShortCode }

func (v Contact) Referral() Person {
	v.Check()
	return Person{Bound: v.Bound, b: &v.b.Referral}
}
