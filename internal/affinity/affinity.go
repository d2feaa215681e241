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

// Package affinity enforces the single-owning-goroutine rule that arenas
// and the values allocated from them depend on. It is only consulted from
// debug builds; in release builds an arena may be (incorrectly) shared
// across goroutines without any runtime check, exactly as the thread-per-
// core contract promises no such check is paid for.
package affinity

import "github.com/timandy/routine"

// Token records the goroutine that created it. Embed one in any type that
// must never cross goroutines, such as an arena or a value borrowed from
// one.
type Token struct {
	goid uint64
}

// New captures the calling goroutine's id.
func New() Token {
	return Token{goid: routine.Goid()}
}

// Check reports whether the calling goroutine is the one that created t.
func (t Token) Check() bool {
	return t.goid == routine.Goid()
}

// Goid returns the id of the goroutine that created t.
func (t Token) Goid() uint64 {
	return t.goid
}
