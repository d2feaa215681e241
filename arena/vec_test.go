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

func TestVecAppendGrows(t *testing.T) {
	a := arena.New()
	var v arena.Vec[int32]
	for i := int32(0); i < 100; i++ {
		v = v.Append(a, i)
	}
	require.Equal(t, 100, v.Len())
	for i := 0; i < 100; i++ {
		require.Equal(t, int32(i), v.At(i))
	}
}

func TestVecOf(t *testing.T) {
	a := arena.New()
	v := arena.VecOf(a, 1, 2, 3)
	require.Equal(t, 3, v.Len())
	require.Equal(t, []int{1, 2, 3}, v.Raw())
}

func TestVecSet(t *testing.T) {
	a := arena.New()
	v := arena.MakeVec[string](a, 3)
	v.Set(1, "hello")
	require.Equal(t, "hello", v.At(1))
	require.Equal(t, "", v.At(0))
}

func TestVecAppendMany(t *testing.T) {
	a := arena.New()
	v := arena.VecOf(a, 1, 2)
	v = v.Append(a, 3, 4, 5)
	require.Equal(t, []int{1, 2, 3, 4, 5}, v.Raw())
}

func TestVecFromParts(t *testing.T) {
	a := arena.New()
	v := arena.VecOf(a, 10, 20, 30)
	w := arena.VecFromParts(v.Ptr(), 2, uint32(v.Cap()))
	require.Equal(t, []int{10, 20}, w.Raw())
	require.Equal(t, v.Cap(), w.Cap())
}
