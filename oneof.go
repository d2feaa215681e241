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

// Oneof discriminates which of a oneof group's alternatives is set. Tag is
// the generated per-message enum of field-number-derived constants; the
// zero Tag value always means "none of the alternatives is set", matching
// proto3's rule that an empty oneof has no case selected.
//
// Generated code stores the payload for whichever case is active in a
// separate arena-allocated slot (or inline, for small scalar cases); Oneof
// itself only tracks which slot is meaningful. When a new field belonging
// to the group is decoded, the decoder overwrites Tag before writing the
// new payload, implementing the wire format's last-one-wins rule for
// repeated oneof occurrences.
type Oneof[Tag ~int32] struct {
	tag Tag
}

// Case returns the currently active alternative.
func (o Oneof[Tag]) Case() Tag { return o.tag }

// Is reports whether tag is the currently active alternative.
func (o Oneof[Tag]) Is(tag Tag) bool { return o.tag == tag }

// Set records tag as the active alternative. Generated code calls this
// immediately before writing the new case's payload, so that a decode
// failure partway through the new value still leaves Tag consistent with
// "last tag wins", matching what a reference decoder would do.
func (o *Oneof[Tag]) Set(tag Tag) { o.tag = tag }

// Clear resets o to the zero Tag, meaning no alternative is set.
func (o *Oneof[Tag]) Clear() { var zero Tag; o.tag = zero }
