// Copyright 2020-2025 Buf Technologies, Inc.
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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenapb/arenapb/arena"
)

func TestAllocBytesIsZeroed(t *testing.T) {
	a := arena.New()
	b := a.AllocBytes(32)
	require.Len(t, b, 32)
	for _, c := range b {
		require.Zero(t, c)
	}
}

func TestAllocSurvivesOddSizes(t *testing.T) {
	a := arena.New()
	_ = a.AllocBytes(3)
	b := a.AllocBytes(8)
	require.Len(t, b, 8)
}

func TestAllocCopy(t *testing.T) {
	a := arena.New()
	src := []byte("hello, arena")
	dst := a.AllocCopy(src)
	require.Equal(t, src, dst)

	src[0] = 'H'
	require.NotEqual(t, src[0], dst[0], "AllocCopy must not alias its source")
}

func TestResetReusesChunks(t *testing.T) {
	a := arena.New()
	before := a.AllocBytes(64)
	before[0] = 1

	before1 := a.Bytes()
	a.Reset()
	after := a.AllocBytes(64)
	after1 := a.Bytes()

	require.Equal(t, before1, after1, "Reset should not allocate new chunks when the old ones suffice")
	require.Zero(t, after[0], "memory from a reset arena must be considered fresh")
}

func TestGrowSpansMultipleChunks(t *testing.T) {
	a := arena.New()
	_ = a.AllocBytes(arena.DefaultChunkSize)
	_ = a.AllocBytes(arena.DefaultChunkSize)
	require.Greater(t, a.Bytes(), arena.DefaultChunkSize)
}

func TestGenerationIncrementsOnReset(t *testing.T) {
	a := arena.New()
	g0 := a.Generation()
	a.Reset()
	require.Equal(t, g0+1, a.Generation())
}

func TestNewValue(t *testing.T) {
	type point struct{ X, Y int64 }

	a := arena.New()
	p := arena.NewValue(a, point{X: 3, Y: 4})
	require.Equal(t, int64(3), p.X)
	require.Equal(t, int64(4), p.Y)
}

func TestNewSizePreallocates(t *testing.T) {
	a := arena.NewSize(64 << 10)
	require.GreaterOrEqual(t, a.Bytes(), 64<<10)

	before := a.Bytes()
	_ = a.AllocBytes(32 << 10)
	require.Equal(t, before, a.Bytes(), "a presized arena should not grow for allocations under its capacity")
}

func TestReleaseDropsChunks(t *testing.T) {
	a := arena.New()
	_ = a.AllocBytes(128)
	require.Positive(t, a.Bytes())

	a.Release()
	require.Zero(t, a.Bytes())

	b := a.AllocBytes(16)
	require.Len(t, b, 16)
}

func TestKeepAlivePinsValues(t *testing.T) {
	a := arena.New()
	buf := []byte("pinned")
	a.KeepAlive(buf)
	a.Reset()
	// Reset drops pinned values along with everything else; pinning again
	// must work on the reused arena.
	a.KeepAlive(buf)
}
