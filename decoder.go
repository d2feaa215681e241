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

import "github.com/arenapb/arenapb/arena"

// Decode parses data as a top-level message of type B, allocating the
// resulting message tree (and everything reachable from it) from a freshly
// created arena, which it returns alongside the decoded Builder.
//
// The caller owns the returned arena and is responsible for calling
// a.Reset or a.Release once the message (and any View derived from it via
// Freeze) is no longer needed.
func Decode[B any](data []byte, dec Decoder[B], opts ...DecodeOption) (*arena.Arena, *B, error) {
	a := arena.New()
	b, err := Merge(a, new(B), data, dec, opts...)
	if err != nil {
		return a, nil, err
	}
	return a, b, nil
}

// Merge parses data into dst, merging it according to Decoder's
// merge-on-repeat contract, allocating nested values from a. Unlike
// Decode, Merge does not create a new arena, letting a caller reuse one
// arena across several successive merges into the same message.
func Merge[B any](a *arena.Arena, dst *B, data []byte, dec Decoder[B], opts ...DecodeOption) (*B, error) {
	o := Resolve(opts...)
	if len(data) > o.MaxMessageLength {
		return nil, newError(CodeMessageLength, 0)
	}
	s, drop := newState(a, &o)
	defer drop()

	n, err := dec.Decode(dst, s, data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, newError(CodeTruncated, n)
	}
	return dst, nil
}
