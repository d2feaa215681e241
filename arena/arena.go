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

// Package arena provides a low-level bump allocator that an entire decoded
// message tree is allocated from, so that freeing the whole tree is a
// single O(1) reset instead of a GC sweep over thousands of small objects.
//
// # Design
//
// An Arena holds a list of plain []byte chunks. Allocation bumps an offset
// within the current chunk; when the chunk runs out of room, a new one is
// grown, sized to at least double the previous chunk (capped at
// MaxChunkSize) so that a long-lived arena's chunk count grows
// logarithmically rather than linearly with the amount of data pushed
// through it.
//
// Unlike an allocator that hands out raw unsafe pointers tied to the
// lifetime of a C-style buffer, these chunks are ordinary Go slices: the GC
// already keeps them alive for exactly as long as the Arena value (or
// anything holding one of its chunks) is reachable, so there is no need for
// the chunk layout to smuggle a back-pointer to the arena header for the
// collector's benefit.
//
// An Arena is bound to the goroutine that creates it: in debug builds,
// every allocation checks that the calling goroutine matches the one
// recorded at construction, panicking otherwise. In release builds this
// check is compiled out entirely, since paying for it is a hot-path cost
// the thread-per-core contract is designed to avoid.
package arena

import (
	"unsafe"

	"github.com/arenapb/arenapb/internal/affinity"
	"github.com/arenapb/arenapb/internal/dbg"
)

// DefaultChunkSize is the size of the first chunk allocated by a new Arena.
const DefaultChunkSize = 4 << 10

// MaxChunkSize caps how large a single chunk may grow to in one step, so
// that one oversized allocation does not force all future chunks to also be
// oversized.
const MaxChunkSize = 4 << 20

// Align is the alignment of every allocation handed out by an Arena.
const Align = int(unsafe.Sizeof(uintptr(0)))

// chunk is one contiguous block of arena-owned memory.
type chunk struct {
	buf    []byte
	offset int
}

// Arena is a chunked bump allocator. It is not safe for concurrent use;
// exactly one goroutine may allocate from (or reset) a given Arena.
//
// The zero Arena is empty and ready to use.
type Arena struct {
	owner      affinity.Token
	ownerSet   bool
	chunks     []chunk
	cur        int // index into chunks of the chunk currently being filled.
	generation uint32
	keep       []any // values pinned alive for the lifetime of this arena.
}

// New constructs a fresh Arena. Calling this from the goroutine that will
// own the arena records that goroutine for the debug-mode affinity check;
// an Arena constructed via the zero value instead records its owner lazily,
// on first use.
func New() *Arena {
	return &Arena{owner: affinity.New(), ownerSet: true}
}

// NewSize is like New, but preallocates a first chunk large enough for n
// bytes of allocations, for callers that can bound how much a decode will
// need up front.
func NewSize(n int) *Arena {
	a := New()
	a.grow(alignUp(n, Align))
	return a
}

// NewValue allocates a new value of type T on a, copying value into the
// allocation, and returns a pointer to it valid until the next Reset.
func NewValue[T any](a *Arena, value T) *T {
	p := (*T)(unsafe.Pointer(a.alloc(int(unsafe.Sizeof(value)))))
	*p = value
	return p
}

// Generation returns a counter that increments every time a is Reset. It is
// used in debug builds to detect a pointer derived from a since-reset
// arena generation outliving its source.
func (a *Arena) Generation() uint32 {
	return a.generation
}

// checkAffinity panics in debug builds if the calling goroutine is not the
// one that created or first used a.
func (a *Arena) checkAffinity() {
	if !dbg.Enabled {
		return
	}
	if !a.ownerSet {
		a.owner = affinity.New()
		a.ownerSet = true
		return
	}
	dbg.Assert(a.owner.Check(), "arena used from a goroutine other than its owner")
}

// AllocBytes returns a zeroed, pointer-aligned byte slice of length n
// carved out of a. The returned slice is valid until the next call to
// Reset; using it afterward is undefined behavior.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p := a.alloc(n)
	return unsafe.Slice(p, n)
}

// AllocCopy is like AllocBytes, but the returned slice is initialized with
// a copy of src.
func (a *Arena) AllocCopy(src []byte) []byte {
	dst := a.AllocBytes(len(src))
	copy(dst, src)
	return dst
}

// AllocString is like AllocCopy, but copies a Go string into arena memory
// and returns it re-wrapped as a string backed by that memory. This is used
// when a decoded string field must outlive the input buffer it was parsed
// from (for example, because the input buffer is reused by the caller).
func (a *Arena) AllocString(src string) string {
	if len(src) == 0 {
		return ""
	}
	dst := a.AllocBytes(len(src))
	copy(dst, src)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

// KeepAlive pins v for the lifetime of a, preventing the GC from collecting
// it even though it was not allocated from a's own chunks. This is used
// sparingly, for values (like a decode source buffer) that arena-allocated
// data points into without copying.
func (a *Arena) KeepAlive(v any) {
	a.keep = append(a.keep, v)
}

// alloc is the fast path shared by every allocation helper above.
func (a *Arena) alloc(size int) *byte {
	a.checkAffinity()

	size = alignUp(size, Align)

	// After a Reset there may be several already-grown chunks past cur;
	// walk through them before asking the Go allocator for another one.
	for a.cur < len(a.chunks) {
		c := &a.chunks[a.cur]
		if off := alignUp(c.offset, Align); off+size <= len(c.buf) {
			c.offset = off + size
			return &c.buf[off]
		}
		a.cur++
	}

	a.grow(size)
	c := &a.chunks[a.cur]
	off := alignUp(c.offset, Align)
	c.offset = off + size
	return &c.buf[off]
}

// grow appends a fresh chunk sized to hold at least size bytes, growing
// geometrically from the previous chunk (doubling, capped at MaxChunkSize)
// so that repeated small allocations amortize the cost of visiting the Go
// allocator.
func (a *Arena) grow(size int) {
	next := DefaultChunkSize
	if n := len(a.chunks); n > 0 {
		next = min(len(a.chunks[n-1].buf)*2, MaxChunkSize)
	}
	next = max(next, size)

	a.chunks = append(a.chunks, chunk{buf: make([]byte, next)})
	a.cur = len(a.chunks) - 1

	dbg.Log([]any{"arena", a}, "grow", "chunk %d: %d bytes", a.cur, next)
}

// Reset discards all allocations made from a, making its chunks available
// for reuse without returning them to the Go allocator. Any pointer or
// slice previously handed out by a must not be used after Reset; doing so
// is undefined behavior, since the memory it referenced may now back a
// completely different value.
func (a *Arena) Reset() {
	a.checkAffinity()

	for i := range a.chunks {
		clear(a.chunks[i].buf[:a.chunks[i].offset])
		a.chunks[i].offset = 0
	}
	a.cur = 0
	a.keep = nil
	a.generation++

	dbg.Log([]any{"arena", a}, "reset", "generation %d", a.generation)
}

// Release drops every chunk held by a, returning their memory to the Go
// allocator immediately instead of waiting for a itself to become
// unreachable. As with Reset, no value previously allocated from a may be
// used afterward.
func (a *Arena) Release() {
	a.checkAffinity()

	a.chunks = nil
	a.cur = 0
	a.keep = nil
	a.generation++
}

// Bytes reports the total number of bytes currently held across all of a's
// chunks, including unused tail capacity. It is meant for diagnostics, not
// for steering allocation decisions.
func (a *Arena) Bytes() int {
	n := 0
	for _, c := range a.chunks {
		n += len(c.buf)
	}
	return n
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
