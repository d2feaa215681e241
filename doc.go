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

// Package arenapb is an arena-allocated Protobuf codec aimed at
// thread-per-core servers, where a message decoded from one request must be
// freed in O(1) once that request completes, without handing thousands of
// small objects to the garbage collector.
//
// Unlike a reflection-based parser, arenapb has no notion of a message
// descriptor at runtime: every message type is generated code, implementing
// the View/Builder contract described below. A View is an immutable,
// arena-backed read handle onto a decoded message; a Builder is its mutable
// counterpart, used while decoding or constructing a message, and promoted
// to a View by a zero-cost Freeze once the caller is done mutating it.
//
// # Arenas
//
// Every message lives on an [arena.Arena]: decoding a message allocates its
// submessages, strings, and repeated fields from the same arena as the
// top-level message, so that the whole tree can be released by a single
// call to [arena.Arena.Reset]. An arena, and every View or Builder derived
// from it, is bound to the goroutine that created it; sharing one across
// goroutines is a programming error. Debug builds panic when the arena is
// allocated from or reset, or a View's accessors are called, from another
// goroutine; a Builder's plain struct fields are checked only through the
// arena allocations that decoding into it makes. Release builds do not
// check at all.
//
// # Support status
//
// Supported: proto2 and proto3 messages, scalar and repeated fields, string
// and bytes fields, embedded messages, oneofs, proto2 groups, and both
// ordered and hashed map fields. Extensions and the full protoreflect API
// surface are explicitly out of scope; see the package-level Non-goals in
// the design notes for the reasoning.
package arenapb
