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

//go:build !debug

package dbg

// Enabled is false in ordinary (non-debug) builds.
const Enabled = false

// Log is a no-op in release builds; its arguments are not evaluated beyond
// what the caller already computed, since Go does not allow skipping
// argument evaluation, callers of Log on a hot path should guard with
// dbg.Enabled.
func Log(context []any, op, format string, args ...any) {}

// Assert is a no-op in release builds.
func Assert(cond bool, format string, args ...any) {}

// Value is a zero-size stand-in for the debug-only Value[T]; Get always
// returns the zero value of T.
type Value[T any] struct{}

// Of discards v and returns the zero Value.
func Of[T any](v T) Value[T] { return Value[T]{} }

// Get returns the zero value of T.
func (d Value[T]) Get() (zero T) { return zero }
