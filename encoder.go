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

import "github.com/arenapb/arenapb/internal/dbg"

// Encode returns the wire encoding of v, using enc to do the actual
// per-field work. The destination buffer is presized using enc.EncodedLen
// so that EncodeInto never needs to grow it.
func Encode[V any](v V, enc Encoder[V]) []byte {
	predicted := enc.EncodedLen(v)
	dst := enc.EncodeInto(v, make([]byte, 0, predicted))
	dbg.Assert(len(dst) == predicted,
		"EncodedLen predicted %d bytes, EncodeInto wrote %d", predicted, len(dst))
	return dst
}

// AppendEncode is like Encode, but appends to an existing buffer instead of
// allocating a new one.
func AppendEncode[V any](dst []byte, v V, enc Encoder[V]) []byte {
	return enc.EncodeInto(v, dst)
}
