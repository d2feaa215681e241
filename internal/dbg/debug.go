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

//go:build debug

// Package dbg contains debug-only instrumentation: assertions, goroutine-
// tagged logging, and a debug-only value box. Everything in this file is
// compiled in only under the debug build tag; see release.go for the
// zero-cost stand-ins used in ordinary builds.
package dbg

import (
	"fmt"
	"os"

	"github.com/timandy/routine"
)

// Enabled is true when the binary was built with the debug tag.
const Enabled = true

// Log writes a tagged diagnostic line to stderr, prefixed with the calling
// goroutine's id and the given context values.
func Log(context []any, op, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "[g%d] %s: %s %v\n", routine.Goid(), op, msg, context)
}

// Assert panics with the given message, formatted with fmt.Sprintf, if cond
// is false. It is a no-op in release builds, where its arguments are still
// evaluated by the caller.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("dbg: assertion failed: "+format, args...))
	}
}

// Value wraps v so that it is only ever materialized in debug builds; in
// release builds the zero value of T is substituted at zero cost.
type Value[T any] struct {
	v T
}

// Of constructs a Value from v.
func Of[T any](v T) Value[T] { return Value[T]{v: v} }

// Get returns the wrapped value.
func (d Value[T]) Get() T { return d.v }
