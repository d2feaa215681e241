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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenapb/arenapb/arena"
)

func TestOrderedMapSetGet(t *testing.T) {
	a := arena.New()
	var m arena.OrderedMap[string, int]
	m = m.Set(a, "b", 2)
	m = m.Set(a, "a", 1)
	m = m.Set(a, "c", 3)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Get("z")
	require.False(t, ok)

	var keys []string
	m.Range(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []string{"a", "b", "c"}, keys, "OrderedMap must iterate in ascending key order")
}

func TestOrderedMapOverwrite(t *testing.T) {
	a := arena.New()
	var m arena.OrderedMap[int, string]
	m = m.Set(a, 1, "one")
	m = m.Set(a, 1, "uno")
	require.Equal(t, 1, m.Len())
	v, _ := m.Get(1)
	require.Equal(t, "uno", v)
}

func TestHashMapSetGetDelete(t *testing.T) {
	a := arena.New()
	m := arena.NewHashMap[string, int](a, 4)

	for i := 0; i < 50; i++ {
		m.Set(fmt.Sprintf("key-%d", i), i)
	}
	require.Equal(t, 50, m.Len())

	v, ok := m.Get("key-17")
	require.True(t, ok)
	require.Equal(t, 17, v)

	require.True(t, m.Delete("key-17"))
	_, ok = m.Get("key-17")
	require.False(t, ok)
	require.Equal(t, 49, m.Len())
}

func TestHashMapRehash(t *testing.T) {
	a := arena.New()
	m := arena.NewHashMap[int, int](a, 1)
	for i := 0; i < 1000; i++ {
		m.Set(i, i*i)
	}
	for i := 0; i < 1000; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i*i, v)
	}
}

func TestHashMapRange(t *testing.T) {
	a := arena.New()
	m := arena.NewHashMap[int, int](a, 4)
	want := map[int]int{1: 1, 2: 4, 3: 9}
	for k, v := range want {
		m.Set(k, v)
	}

	got := map[int]int{}
	m.Range(func(k, v int) bool {
		got[k] = v
		return true
	})
	require.Equal(t, want, got)
}

func TestMapHas(t *testing.T) {
	a := arena.New()
	var om arena.OrderedMap[string, int]
	om = om.Set(a, "k", 1)
	require.True(t, om.Has("k"))
	require.False(t, om.Has("missing"))

	hm := arena.NewHashMap[string, int](a, 1)
	hm.Set("k", 1)
	require.True(t, hm.Has("k"))
	require.False(t, hm.Has("missing"))
}
