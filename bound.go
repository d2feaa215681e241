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

import (
	"github.com/arenapb/arenapb/arena"
	"github.com/arenapb/arenapb/internal/affinity"
	"github.com/arenapb/arenapb/internal/dbg"
)

// Bound ties a value to the arena generation it was allocated under and to
// the goroutine that bound it. Every top-level View embeds one; in debug
// builds, any accessor derived from a View first calls Check, which panics
// if the View's arena has since been Reset or if the View is used from
// another goroutine, catching the bug at the point of misuse instead of as
// a read of stale or overwritten memory.
//
// In release builds Bound is a zero-size type and Check is a no-op: paying
// for this check is exactly the kind of hot-path cost the thread-per-core
// contract is meant to avoid once a caller has proven out their arena
// discipline in debug builds.
type Bound struct {
	arena      *arena.Arena
	generation dbg.Value[uint32]
	owner      dbg.Value[affinity.Token]
}

// BindTo records a as the arena a View was allocated from, along with its
// current generation and the calling goroutine.
func BindTo(a *arena.Arena) Bound {
	if !dbg.Enabled {
		return Bound{arena: a}
	}
	return Bound{arena: a, generation: dbg.Of(a.Generation()), owner: dbg.Of(affinity.New())}
}

// Check panics in debug builds if this Bound's arena has been reset since
// BindTo was called, or if it is called from a goroutine other than the
// one that called BindTo.
func (b Bound) Check() {
	if !dbg.Enabled {
		return
	}
	dbg.Assert(b.owner.Get().Check(), "value used from a goroutine other than its owner")
	dbg.Assert(b.arena.Generation() == b.generation.Get(),
		"value used after its arena was reset (generation %d, now %d)",
		b.generation.Get(), b.arena.Generation())
}

// Arena returns the arena this Bound is tied to.
func (b Bound) Arena() *arena.Arena { return b.arena }
