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

package examples_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenapb/arenapb"
	"github.com/arenapb/arenapb/arena"
	"github.com/arenapb/arenapb/internal/examples"
)

func TestPersonRoundTrip(t *testing.T) {
	a, src, err := arenapb.Decode[examples.PersonBuilder]([]byte{}, examples.PersonCodec)
	require.NoError(t, err)
	src.Id = 42
	src.Name = "Ada Lovelace"
	src.Email = arenapb.Some("ada@example.com")
	src.Tags = src.Tags.Append(a, "mathematician", "programmer")

	view := examples.PersonCodec.Freeze(src, arenapb.BindTo(a))
	wire := arenapb.Encode(view, examples.PersonCodec)

	a2, dst, err := arenapb.Decode[examples.PersonBuilder](wire, examples.PersonCodec)
	require.NoError(t, err)
	got := examples.PersonCodec.Freeze(dst, arenapb.BindTo(a2))

	require.Equal(t, int32(42), got.Id())
	require.Equal(t, "Ada Lovelace", got.Name())
	email, ok := got.Email().Get()
	require.True(t, ok)
	require.Equal(t, "ada@example.com", email)
	require.Equal(t, []string{"mathematician", "programmer"}, got.Tags())
}

func TestPersonFieldsMetadataMatchesDecode(t *testing.T) {
	require.Len(t, examples.PersonFields, 4)
	for i, f := range examples.PersonFields {
		require.Equal(t, int32(i+1), f.Number)
	}
	require.Equal(t, arenapb.Repeated, examples.PersonFields[3].Cardinality)
	require.Equal(t, arenapb.Optional, examples.PersonFields[2].Cardinality)
}

func TestPersonSkipsUnknownFields(t *testing.T) {
	var dst []byte
	dst = arenapb.AppendVarintField(dst, 99, 7) // unknown field, should be skipped.
	dst = arenapb.AppendStringField(dst, 2, "known")

	_, p, err := arenapb.Decode[examples.PersonBuilder](dst, examples.PersonCodec)
	require.NoError(t, err)
	require.Equal(t, "known", p.Name)
}

func TestPersonWireTypeMismatchLenient(t *testing.T) {
	var dst []byte
	dst = arenapb.AppendStringField(dst, 1, "wrong type for an int32 field")
	dst = arenapb.AppendStringField(dst, 2, "known")

	_, p, err := arenapb.Decode[examples.PersonBuilder](dst, examples.PersonCodec)
	require.NoError(t, err)
	require.Equal(t, int32(0), p.Id)
	require.Equal(t, "known", p.Name)
}

func TestPersonWireTypeMismatchStrict(t *testing.T) {
	var dst []byte
	dst = arenapb.AppendStringField(dst, 1, "wrong type for an int32 field")

	_, _, err := arenapb.Decode[examples.PersonBuilder](dst, examples.PersonCodec, arenapb.WithStrictWireType(true))
	require.Error(t, err)

	var perr *arenapb.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, arenapb.CodeWireType, perr.Code)
	require.EqualValues(t, 1, perr.Field)
}

func TestNumbersRoundTrip(t *testing.T) {
	a, src, err := arenapb.Decode[examples.NumbersBuilder]([]byte{}, examples.NumbersCodec)
	require.NoError(t, err)
	src.I32, src.Si32, src.U32 = -5, -5, 5
	src.I64, src.Si64, src.U64 = -9000000000, -9000000000, 9000000000
	src.F32, src.Sf32, src.F = 0xDEADBEEF, -123, 3.5
	src.F64, src.Sf64, src.D = 0xDEADBEEFCAFEBABE, -456, 2.71828
	src.B = true
	src.Packed = src.Packed.Append(a, 1, -2, 300, -400)

	view := examples.NumbersCodec.Freeze(src, arenapb.BindTo(a))
	wire := arenapb.Encode(view, examples.NumbersCodec)

	_, dst, err := arenapb.Decode[examples.NumbersBuilder](wire, examples.NumbersCodec)
	require.NoError(t, err)

	require.Equal(t, src.I32, dst.I32)
	require.Equal(t, src.Si32, dst.Si32)
	require.Equal(t, src.U32, dst.U32)
	require.Equal(t, src.I64, dst.I64)
	require.Equal(t, src.Si64, dst.Si64)
	require.Equal(t, src.U64, dst.U64)
	require.Equal(t, src.F32, dst.F32)
	require.Equal(t, src.Sf32, dst.Sf32)
	require.Equal(t, src.F, dst.F)
	require.Equal(t, src.F64, dst.F64)
	require.Equal(t, src.Sf64, dst.Sf64)
	require.Equal(t, src.D, dst.D)
	require.Equal(t, src.B, dst.B)
	require.Equal(t, src.Packed.Raw(), dst.Packed.Raw())
}

func TestContactOneofLastWins(t *testing.T) {
	var dst []byte
	dst = arenapb.AppendStringField(dst, 1, "first@example.com")
	dst = arenapb.AppendStringField(dst, 2, "555-0100")

	_, c, err := arenapb.Decode[examples.ContactBuilder](dst, examples.ContactCodec)
	require.NoError(t, err)
	require.Equal(t, examples.ContactPhone, c.Via.Case())
	require.Equal(t, "555-0100", c.Phone)
}

func TestContactReferral(t *testing.T) {
	a, person, err := arenapb.Decode[examples.PersonBuilder]([]byte{}, examples.PersonCodec)
	require.NoError(t, err)
	person.Id = 1
	person.Name = "Referred"
	personView := examples.PersonCodec.Freeze(person, arenapb.BindTo(a))

	var dst []byte
	dst = arenapb.AppendMessageField(dst, 3, personView, examples.PersonCodec)

	_, c, err := arenapb.Decode[examples.ContactBuilder](dst, examples.ContactCodec)
	require.NoError(t, err)
	require.Equal(t, examples.ContactReferral, c.Via.Case())
	require.Equal(t, "Referred", c.Referral.Name)
}

func TestLegacyRecordRequiredFieldMissing(t *testing.T) {
	var dst []byte
	dst = arenapb.AppendStringField(dst, 2, "no id set")

	_, _, err := arenapb.Decode[examples.LegacyRecordBuilder](dst, examples.LegacyRecordCodec)
	require.Error(t, err)

	var perr *arenapb.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, arenapb.CodeRequiredField, perr.Code)
}

func TestLegacyRecordGroupRoundTrip(t *testing.T) {
	var wireBytes []byte
	wireBytes = arenapb.AppendVarintField(wireBytes, 1, 7)
	wireBytes = arenapb.AppendStringField(wireBytes, 2, "legacy")
	wireBytes = arenapb.AppendGroupField(wireBytes, 3, examples.ExtraBuilder{
		Tag:    arenapb.Some("vip"),
		Weight: arenapb.Some(int32(10)),
	}, extraEncoderForTest{})

	_, dst, err := arenapb.Decode[examples.LegacyRecordBuilder](wireBytes, examples.LegacyRecordCodec)
	require.NoError(t, err)
	id, _ := dst.Id.Get()
	require.Equal(t, int32(7), id)
	tag, ok := dst.Extra.Tag.Get()
	require.True(t, ok)
	require.Equal(t, "vip", tag)
}

// extraEncoderForTest mirrors the unexported extraEncoder in legacy_record.go
// so this external test package can construct a group field's wire bytes
// without reaching into package internals.
type extraEncoderForTest struct{}

func (extraEncoderForTest) EncodeInto(v examples.ExtraBuilder, dst []byte) []byte {
	if tag, ok := v.Tag.Get(); ok {
		dst = arenapb.AppendStringField(dst, 1, tag)
	}
	if weight, ok := v.Weight.Get(); ok {
		dst = arenapb.AppendVarintField(dst, 2, uint64(weight))
	}
	return dst
}

func (extraEncoderForTest) EncodedLen(v examples.ExtraBuilder) int {
	return len(extraEncoderForTest{}.EncodeInto(v, nil))
}

func TestDirectoryMaps(t *testing.T) {
	var dst []byte
	appendAge := func(k string, v int32) []byte {
		var entry []byte
		entry = arenapb.AppendStringField(entry, 1, k)
		entry = arenapb.AppendVarintField(entry, 2, uint64(v))
		return arenapb.AppendBytesField(dst, 1, entry)
	}
	dst = appendAge("alice", 30)
	dst = appendAge("bob", 25)

	appendAlias := func(k, v string) []byte {
		var entry []byte
		entry = arenapb.AppendStringField(entry, 1, k)
		entry = arenapb.AppendStringField(entry, 2, v)
		return arenapb.AppendBytesField(dst, 2, entry)
	}
	dst = appendAlias("alice", "A")

	_, d, err := arenapb.Decode[examples.DirectoryBuilder](dst, examples.DirectoryCodec)
	require.NoError(t, err)

	age, ok := d.Ages.Get("bob")
	require.True(t, ok)
	require.Equal(t, int32(25), age)

	alias, ok := d.Aliases.Get("alice")
	require.True(t, ok)
	require.Equal(t, "A", alias)
}

func TestContactOneofScalarLastWins(t *testing.T) {
	var dst []byte
	dst = arenapb.AppendStringField(dst, 1, "x")
	dst = arenapb.AppendVarintField(dst, 4, 42)

	_, c, err := arenapb.Decode[examples.ContactBuilder](dst, examples.ContactCodec)
	require.NoError(t, err)
	require.Equal(t, examples.ContactShortCode, c.Via.Case())
	require.Equal(t, int32(42), c.ShortCode)
}

func TestEmptyMessageDefaults(t *testing.T) {
	a, p, err := arenapb.Decode[examples.PersonBuilder](nil, examples.PersonCodec)
	require.NoError(t, err)
	require.Zero(t, p.Id)
	require.Empty(t, p.Name)
	require.True(t, p.Email.IsNone())
	require.Zero(t, p.Tags.Len())

	view := examples.PersonCodec.Freeze(p, arenapb.BindTo(a))
	require.Empty(t, arenapb.Encode(view, examples.PersonCodec),
		"a message with all defaults must encode to zero bytes")
}

func TestExplicitPresenceZeroEncodes(t *testing.T) {
	// A proto3 singular int32 equal to 0 is omitted from the encoding; a
	// proto2 optional int32 explicitly set to 0 is not.
	a := arena.New()
	p := &examples.PersonBuilder{Id: 0}
	pv := examples.PersonCodec.Freeze(p, arenapb.BindTo(a))
	require.Empty(t, arenapb.Encode(pv, examples.PersonCodec))

	r := &examples.LegacyRecordBuilder{Id: arenapb.Some(int32(0))}
	rv := examples.LegacyRecordCodec.Freeze(r, arenapb.BindTo(a))
	require.Equal(t, []byte{0x08, 0x00}, arenapb.Encode(rv, examples.LegacyRecordCodec))
}

func TestScenarioNameAgeBytes(t *testing.T) {
	// {name: "Alice", age: 30} with tags 1=string, 2=int32 must produce
	// exactly 0A 05 41 6C 69 63 65 10 1E.
	var dst []byte
	dst = arenapb.AppendStringField(dst, 1, "Alice")
	dst = arenapb.AppendVarintField(dst, 2, 30)
	require.Equal(t, []byte{0x0A, 0x05, 0x41, 0x6C, 0x69, 0x63, 0x65, 0x10, 0x1E}, dst)
}

func TestNumbersPackedUnpackedEquivalence(t *testing.T) {
	packed := []byte{0x72, 0x04, 0x01, 0x02, 0xAC, 0x02}
	unpacked := []byte{0x70, 0x01, 0x70, 0x02, 0x70, 0xAC, 0x02}

	_, p, err := arenapb.Decode[examples.NumbersBuilder](packed, examples.NumbersCodec)
	require.NoError(t, err)
	_, u, err := arenapb.Decode[examples.NumbersBuilder](unpacked, examples.NumbersCodec)
	require.NoError(t, err)

	require.Equal(t, []int32{1, 2, 300}, p.Packed.Raw())
	require.Equal(t, p.Packed.Raw(), u.Packed.Raw())
}

func TestMergeConcatenatedEncodings(t *testing.T) {
	a := arena.New()
	m1 := &examples.PersonBuilder{Id: 1, Name: "first"}
	m1.Tags = m1.Tags.Append(a, "x")
	m2 := &examples.PersonBuilder{Name: "second"}
	m2.Tags = m2.Tags.Append(a, "y")

	bound := arenapb.BindTo(a)
	concat := arenapb.Encode(examples.PersonCodec.Freeze(m1, bound), examples.PersonCodec)
	concat = arenapb.AppendEncode(concat, examples.PersonCodec.Freeze(m2, bound), examples.PersonCodec)

	_, got, err := arenapb.Decode[examples.PersonBuilder](concat, examples.PersonCodec)
	require.NoError(t, err)
	require.Equal(t, int32(1), got.Id, "a scalar absent from the second message keeps the first's value")
	require.Equal(t, "second", got.Name, "a scalar present in both takes the second's value")
	require.Equal(t, []string{"x", "y"}, got.Tags.Raw(), "repeated fields concatenate")
}

func TestNodeMergeIsFieldWise(t *testing.T) {
	a := arena.New()
	bound := arenapb.BindTo(a)

	m1 := &examples.NodeBuilder{Value: 1, Next: &examples.NodeBuilder{Value: 2}}
	m2 := &examples.NodeBuilder{Value: 5, Next: &examples.NodeBuilder{}}

	concat := arenapb.Encode(examples.NodeCodec.Freeze(m1, bound), examples.NodeCodec)
	concat = arenapb.AppendEncode(concat, examples.NodeCodec.Freeze(m2, bound), examples.NodeCodec)

	_, got, err := arenapb.Decode[examples.NodeBuilder](concat, examples.NodeCodec)
	require.NoError(t, err)
	require.Equal(t, int32(5), got.Value)
	require.NotNil(t, got.Next)
	require.Equal(t, int32(2), got.Next.Value,
		"a second occurrence of a singular message field merges field-wise, not destructively")
}

// nestedNodes builds the encoding of a Node chain n messages deep below the
// top-level message.
func nestedNodes(n int) []byte {
	body := arenapb.AppendVarintField(nil, 1, 7)
	for i := 0; i < n; i++ {
		body = arenapb.AppendBytesField(nil, 2, body)
	}
	return body
}

func TestNodeRecursionLimit(t *testing.T) {
	const limit = 10

	_, _, err := arenapb.Decode[examples.NodeBuilder](nestedNodes(limit), examples.NodeCodec,
		arenapb.WithMaxDepth(limit))
	require.NoError(t, err, "nesting exactly at the limit must succeed")

	_, _, err = arenapb.Decode[examples.NodeBuilder](nestedNodes(limit+1), examples.NodeCodec,
		arenapb.WithMaxDepth(limit))
	require.Error(t, err)
	var perr *arenapb.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, arenapb.CodeRecursionDepth, perr.Code)
}

func TestArenaReuseAfterReset(t *testing.T) {
	var src []byte
	src = arenapb.AppendVarintField(src, 1, 9)
	src = arenapb.AppendStringField(src, 2, "reused")

	a := arena.New()
	first, err := arenapb.Merge(a, new(examples.PersonBuilder), src, examples.PersonCodec)
	require.NoError(t, err)
	firstID, firstName := first.Id, first.Name

	a.Reset()

	second, err := arenapb.Merge(a, new(examples.PersonBuilder), src, examples.PersonCodec)
	require.NoError(t, err)
	require.Equal(t, firstID, second.Id)
	require.Equal(t, firstName, second.Name)
}

func TestEncodedLenMatchesEncode(t *testing.T) {
	a := arena.New()
	bound := arenapb.BindTo(a)

	num := &examples.NumbersBuilder{I32: -5, Si32: -5, U64: 1 << 40, F: 1.5, D: -2.5, B: true}
	num.Packed = num.Packed.Append(a, 1, -2, 300)
	nv := examples.NumbersCodec.Freeze(num, bound)
	require.Len(t, arenapb.Encode(nv, examples.NumbersCodec), examples.NumbersCodec.EncodedLen(nv))

	rec := &examples.LegacyRecordBuilder{Id: arenapb.Some(int32(3)), Note: arenapb.Some("n")}
	rv := examples.LegacyRecordCodec.Freeze(rec, bound)
	require.Len(t, arenapb.Encode(rv, examples.LegacyRecordCodec), examples.LegacyRecordCodec.EncodedLen(rv))

	node := &examples.NodeBuilder{Value: 1, Next: &examples.NodeBuilder{Value: 300}}
	ndv := examples.NodeCodec.Freeze(node, bound)
	require.Len(t, arenapb.Encode(ndv, examples.NodeCodec), examples.NodeCodec.EncodedLen(ndv))
}

func TestFieldAttrTables(t *testing.T) {
	for _, f := range examples.ContactFields {
		require.Equal(t, "via", f.Oneof)
	}
	require.Equal(t, arenapb.OrderedMapBackend, examples.DirectoryFields[0].Map)
	require.Equal(t, arenapb.HashMapBackend, examples.DirectoryFields[1].Map)
	require.Equal(t, arenapb.NoMap, examples.PersonFields[0].Map)
}

func TestNumbersPackedFixed32(t *testing.T) {
	a := arena.New()
	src := &examples.NumbersBuilder{}
	src.PackedF32 = src.PackedF32.Append(a, 1, 0xDEADBEEF, 7)

	view := examples.NumbersCodec.Freeze(src, arenapb.BindTo(a))
	encoded := arenapb.Encode(view, examples.NumbersCodec)

	_, dst, err := arenapb.Decode[examples.NumbersBuilder](encoded, examples.NumbersCodec)
	require.NoError(t, err)
	require.Equal(t, src.PackedF32.Raw(), dst.PackedF32.Raw())
}

func TestNumbersPackedLengthNotElementMultiple(t *testing.T) {
	// Field 15 is packed fixed32; a 6-byte payload cannot hold whole
	// elements.
	var dst []byte
	dst = arenapb.AppendBytesField(dst, 15, []byte{1, 2, 3, 4, 5, 6})

	_, _, err := arenapb.Decode[examples.NumbersBuilder](dst, examples.NumbersCodec)
	require.Error(t, err)
	var perr *arenapb.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, arenapb.CodePackedLength, perr.Code)
}
