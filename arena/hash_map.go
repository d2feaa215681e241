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

package arena

import "github.com/dolthub/maphash"

// groupSize is the number of slots probed together before moving to the
// next group. 8 keeps a group's worth of metadata checks cheap without
// requiring the SIMD bitmask tricks a production Swiss table uses.
const groupSize = 8

const maxAvgGroupLoad = 7 // grow at 7 used slots per group on average, keeping 1 in 8 empty table-wide.

const (
	slotEmpty   int8   = -1
	slotDeleted int8   = -2
	h2Mask      uint64 = 0x7f
)

type hashGroup[K comparable, V any] struct {
	ctrl   [groupSize]int8
	keys   [groupSize]K
	values [groupSize]V
}

// HashMap is an arena-backed open-addressing hash map, grouped the way
// Abseil's flat_hash_map and Swiss tables generally are: keys are probed a
// group of groupSize slots at a time, using a 7-bit hash fragment (h2)
// stored alongside each slot to filter out most non-matches before ever
// comparing keys.
//
// Unlike OrderedMap, iteration order is unspecified and depends on the
// table's internal layout; use HashMap when a field's only requirement is
// average O(1) lookup and insert, and OrderedMap when a reproducible
// iteration order matters.
//
// Every HashMap is seeded with a random per-instance hash seed (via
// maphash.NewHasher), so that an adversarial input cannot force worst-case
// collision chains by choosing keys that hash identically across all
// instances of the same program.
type HashMap[K comparable, V any] struct {
	arena    *Arena
	groups   Vec[hashGroup[K, V]]
	hasher   maphash.Hasher[K]
	resident uint32
	dead     uint32
	limit    uint32
}

// NewHashMap constructs an empty HashMap with room for at least sz entries
// before it must grow.
func NewHashMap[K comparable, V any](a *Arena, sz int) *HashMap[K, V] {
	groups := numGroups(sz)
	m := NewValue(a, HashMap[K, V]{
		arena:  a,
		groups: MakeVec[hashGroup[K, V]](a, groups),
		hasher: maphash.NewHasher[K](),
		limit:  uint32(groups * maxAvgGroupLoad),
	})
	for i := 0; i < m.groups.Len(); i++ {
		m.groups.Get(i).ctrl = emptyCtrl()
	}
	return m
}

// Len returns the number of live entries in m. Like a nil Go map, a nil
// HashMap is empty to readers.
func (m *HashMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return int(m.resident - m.dead)
}

// Get returns the value associated with key, if present.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	g, s, ok := m.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.groups.Get(g).values[s], true
}

// Has reports whether key is present in m.
func (m *HashMap[K, V]) Has(key K) bool {
	_, _, ok := m.find(key)
	return ok
}

// Set inserts or overwrites the value for key.
func (m *HashMap[K, V]) Set(key K, value V) {
	// The key may sit further along its probe chain than a tombstone left
	// by Delete, so look it up before claiming a free slot.
	if g, s, ok := m.find(key); ok {
		m.groups.Get(g).values[s] = value
		return
	}
	if m.resident >= m.limit {
		m.rehash(max(m.groups.Len()*2, 1))
	}

	h1, h2 := splitHash(m.hasher.Hash(key))
	g := probeStart(h1, m.groups.Len())
	for {
		grp := m.groups.Get(int(g))
		for s := 0; s < groupSize; s++ {
			if grp.ctrl[s] == int8(h2) && grp.keys[s] == key {
				grp.values[s] = value
				return
			}
		}
		for s := 0; s < groupSize; s++ {
			if grp.ctrl[s] == slotEmpty || grp.ctrl[s] == slotDeleted {
				grp.ctrl[s] = int8(h2)
				grp.keys[s] = key
				grp.values[s] = value
				m.resident++
				return
			}
		}
		g = (g + 1) % uint32(m.groups.Len())
	}
}

// Delete removes key from m, reporting whether it was present.
func (m *HashMap[K, V]) Delete(key K) bool {
	g, s, ok := m.find(key)
	if !ok {
		return false
	}
	grp := m.groups.Get(g)
	grp.ctrl[s] = slotDeleted
	var zk K
	var zv V
	grp.keys[s], grp.values[s] = zk, zv
	m.dead++
	return true
}

// Range calls f for every live entry in m, in unspecified order, stopping
// early if f returns false.
func (m *HashMap[K, V]) Range(f func(key K, value V) bool) {
	if m == nil {
		return
	}
	for i := 0; i < m.groups.Len(); i++ {
		grp := m.groups.Get(i)
		for s := 0; s < groupSize; s++ {
			if grp.ctrl[s] == slotEmpty || grp.ctrl[s] == slotDeleted {
				continue
			}
			if !f(grp.keys[s], grp.values[s]) {
				return
			}
		}
	}
}

func (m *HashMap[K, V]) find(key K) (group, slot int, ok bool) {
	if m == nil || m.groups.Len() == 0 {
		return 0, 0, false
	}
	h1, h2 := splitHash(m.hasher.Hash(key))
	g := probeStart(h1, m.groups.Len())
	for {
		grp := m.groups.Get(int(g))
		for s := 0; s < groupSize; s++ {
			if grp.ctrl[s] == int8(h2) && grp.keys[s] == key {
				return int(g), s, true
			}
		}
		hasEmpty := false
		for s := 0; s < groupSize; s++ {
			if grp.ctrl[s] == slotEmpty {
				hasEmpty = true
				break
			}
		}
		if hasEmpty {
			return 0, 0, false
		}
		g = (g + 1) % uint32(m.groups.Len())
	}
}

func (m *HashMap[K, V]) rehash(newGroups int) {
	old := m.groups
	m.groups = MakeVec[hashGroup[K, V]](m.arena, newGroups)
	for i := 0; i < m.groups.Len(); i++ {
		m.groups.Get(i).ctrl = emptyCtrl()
	}
	m.hasher = maphash.NewSeed(m.hasher)
	m.limit = uint32(newGroups * maxAvgGroupLoad)
	m.resident, m.dead = 0, 0

	for i := 0; i < old.Len(); i++ {
		grp := old.At(i)
		for s := 0; s < groupSize; s++ {
			if grp.ctrl[s] == slotEmpty || grp.ctrl[s] == slotDeleted {
				continue
			}
			m.Set(grp.keys[s], grp.values[s])
		}
	}
}

func numGroups(n int) int {
	g := (n + maxAvgGroupLoad - 1) / maxAvgGroupLoad
	return max(g, 1)
}

func emptyCtrl() (c [groupSize]int8) {
	for i := range c {
		c[i] = slotEmpty
	}
	return c
}

func splitHash(h uint64) (h1 uint32, h2 uint8) {
	return uint32(h >> 7), uint8(h & h2Mask)
}

func probeStart(h1 uint32, groups int) uint32 {
	return uint32((uint64(h1) * uint64(groups)) >> 32)
}
