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

package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenapb/arenapb/internal/wire"
)

func TestTagRoundTrip(t *testing.T) {
	tag := wire.Tag{Number: 5, Type: wire.BytesType}
	b := wire.AppendTag(nil, tag)
	got, n := wire.ConsumeTag(b)
	require.Equal(t, len(b), n)
	require.Equal(t, tag, got)
}

func TestConsumeTagRejectsFieldZero(t *testing.T) {
	b := wire.AppendVarint(nil, uint64(0)<<3|uint64(wire.VarintType))
	_, n := wire.ConsumeTag(b)
	require.Negative(t, n)
}

func TestZigzagRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 2147483647, -2147483648} {
		raw := wire.Zigzag(v)
		got := wire.Unzigzag[int32](raw)
		require.Equal(t, v, got, "value %d", v)
	}
}

func TestConsumeGroup(t *testing.T) {
	const fieldNum wire.Number = 7

	inner := wire.AppendTag(nil, wire.Tag{Number: 1, Type: wire.VarintType})
	inner = wire.AppendVarint(inner, 42)

	b := wire.AppendGroup(nil, fieldNum, inner)

	tag, n := wire.ConsumeTag(b)
	require.Equal(t, wire.StartGroupType, tag.Type)
	require.Equal(t, fieldNum, tag.Number)

	body, consumed, ok := wire.ConsumeGroup(fieldNum, b[n:])
	require.True(t, ok)
	require.Equal(t, inner, body)
	require.Equal(t, len(b)-n, consumed)
}

func TestConsumeGroupNested(t *testing.T) {
	const outer wire.Number = 3
	const nested wire.Number = 4

	innerBody := wire.AppendVarint(wire.AppendTag(nil, wire.Tag{Number: 1, Type: wire.VarintType}), 9)
	nestedGroup := wire.AppendGroup(nil, nested, innerBody)

	b := wire.AppendGroup(nil, outer, nestedGroup)

	_, n := wire.ConsumeTag(b)
	body, consumed, ok := wire.ConsumeGroup(outer, b[n:])
	require.True(t, ok)
	require.Equal(t, nestedGroup, body)
	require.Equal(t, len(b)-n, consumed)
}

func TestConsumeGroupMismatchedEnd(t *testing.T) {
	b := wire.AppendTag(nil, wire.Tag{Number: 1, Type: wire.EndGroupType})
	_, _, ok := wire.ConsumeGroup(2, b)
	require.False(t, ok)
}
