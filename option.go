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

package arenapb

import "fmt"

// Option represents a proto3 "optional" scalar field, or any other field
// whose presence must be distinguished from its zero value. Unlike a plain
// *T, an Option[T] carries its value inline rather than through a pointer
// into arena memory, so reading a present-but-zero field costs nothing
// beyond the presence check.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps value as a present Option.
func Some[T any](value T) Option[T] { return Option[T]{value: value, some: true} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether o is absent.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the wrapped value and whether it was present, following the
// comma-ok idiom used throughout the rest of this module's generated code.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// Unwrap returns the wrapped value, panicking if o is None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("arenapb: Unwrap called on a None Option")
	}
	return o.value
}

// UnwrapOr returns the wrapped value, or def if o is None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// UnwrapOrZero returns the wrapped value, or the zero value of T if o is
// None.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
