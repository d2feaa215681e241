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

import (
	"fmt"
	"unsafe"
)

// Vec is a growable, arena-backed sequence of T, used wherever a decoded
// repeated field needs a slice whose backing array lives as long as its
// owning arena rather than the Go heap.
//
// The zero Vec is empty and ready to use; allocation is deferred until the
// first append.
type Vec[T any] struct {
	ptr      *T
	len, cap uint32
}

// VecFromParts assembles a Vec from its raw components.
func VecFromParts[T any](ptr *T, length, cap uint32) Vec[T] {
	return Vec[T]{ptr, length, cap}
}

// MakeVec allocates a Vec with the given length, all elements zeroed.
func MakeVec[T any](a *Arena, n int) Vec[T] {
	if n == 0 {
		return Vec[T]{}
	}
	var zero T
	buf := a.AllocBytes(n * int(unsafe.Sizeof(zero)))
	return Vec[T]{ptr: (*T)(unsafe.Pointer(unsafe.SliceData(buf))), len: uint32(n), cap: uint32(n)}
}

// VecOf allocates a Vec initialized with the given values.
func VecOf[T any](a *Arena, values ...T) Vec[T] {
	v := MakeVec[T](a, len(values))
	copy(v.Raw(), values)
	return v
}

// Ptr returns this Vec's backing pointer.
func (v Vec[T]) Ptr() *T { return v.ptr }

// Len returns the number of elements in v.
func (v Vec[T]) Len() int { return int(v.len) }

// Cap returns the number of elements v can hold before it must grow.
func (v Vec[T]) Cap() int { return int(v.cap) }

// Get returns a pointer to the element at index i, valid until v's arena is
// reset.
func (v Vec[T]) Get(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(v.ptr), uintptr(i)*unsafe.Sizeof(*v.ptr)))
}

// At returns the value at index i.
func (v Vec[T]) At(i int) T { return *v.Get(i) }

// Set overwrites the value at index i.
func (v Vec[T]) Set(i int, value T) { *v.Get(i) = value }

// Raw returns the Go slice backing v. The returned slice must not be kept
// past the next call that might grow or reset v's arena.
func (v Vec[T]) Raw() []T {
	if v.ptr == nil {
		return nil
	}
	return unsafe.Slice(v.ptr, v.cap)[:v.len]
}

// Rest returns the portion of v between its length and capacity.
func (v Vec[T]) Rest() []T {
	if v.ptr == nil {
		return nil
	}
	return unsafe.Slice(v.ptr, v.cap)[v.len:]
}

// Append adds elems to the end of v, growing its backing storage from a if
// necessary, and returns the updated Vec.
func (v Vec[T]) Append(a *Arena, elems ...T) Vec[T] {
	if len(elems) == 0 {
		return v
	}
	if v.cap-v.len < uint32(len(elems)) {
		v = v.Grow(a, len(elems))
	}
	copy(v.Rest(), elems)
	v.len += uint32(len(elems))
	return v
}

// Grow returns v with room for at least n more elements, doubling whatever
// capacity it already has (or starting from a small base capacity),
// copying existing contents into the new storage.
func (v Vec[T]) Grow(a *Arena, n int) Vec[T] {
	const baseCap = 4

	newCap := max(int(v.cap)*2, baseCap, int(v.len)+n)
	next := MakeVec[T](a, newCap)
	copy(next.Raw(), v.Raw())
	next.len = v.len
	return next
}

// Format implements fmt.Formatter, printing v like an ordinary Go slice.
func (v Vec[T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Raw())
}
