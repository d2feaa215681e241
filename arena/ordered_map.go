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

import "cmp"

// entry is one key/value pair stored in an OrderedMap.
type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// OrderedMap is an arena-backed map that keeps its entries sorted by key,
// so that iteration is deterministic and reproducible across decodes of
// the same wire bytes. The wire format itself leaves the order of a map
// field's entries (a repeated entry submessage) unspecified, so this order
// is a property of the container, not of the encoding.
//
// Lookups are O(log n) via binary search; inserts are O(n) due to the
// shift needed to keep entries sorted. This trades some insert throughput
// for predictable ordering and cache-friendly iteration, which is the
// right trade for the common case of a map decoded once and then read many
// times.
type OrderedMap[K cmp.Ordered, V any] struct {
	entries Vec[entry[K, V]]
}

// Len returns the number of entries in m.
func (m OrderedMap[K, V]) Len() int { return m.entries.Len() }

// Get returns the value associated with key, if present.
func (m OrderedMap[K, V]) Get(key K) (V, bool) {
	i, ok := m.search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries.At(i).value, true
}

// Has reports whether key is present in m.
func (m OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.search(key)
	return ok
}

// Set inserts or overwrites the value for key, returning the updated map.
// Set must be used like append: m = m.Set(a, k, v).
func (m OrderedMap[K, V]) Set(a *Arena, key K, value V) OrderedMap[K, V] {
	i, ok := m.search(key)
	if ok {
		m.entries.Set(i, entry[K, V]{key, value})
		return m
	}

	m.entries = m.entries.Append(a, entry[K, V]{})
	raw := m.entries.Raw()
	copy(raw[i+1:], raw[i:len(raw)-1])
	raw[i] = entry[K, V]{key, value}
	return m
}

// Range calls f for every entry in m in ascending key order, stopping early
// if f returns false.
func (m OrderedMap[K, V]) Range(f func(key K, value V) bool) {
	for i := 0; i < m.entries.Len(); i++ {
		e := m.entries.At(i)
		if !f(e.key, e.value) {
			return
		}
	}
}

// search returns the index of key in m's entries, and whether it was
// found; when not found, the index is where key would need to be inserted
// to keep the entries sorted.
func (m OrderedMap[K, V]) search(key K) (int, bool) {
	lo, hi := 0, m.entries.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		switch k := m.entries.At(mid).key; {
		case k == key:
			return mid, true
		case k < key:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}
