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

import "math"

// Options holds the resolved settings for a Decode call, built up by
// applying a list of DecodeOption values over DefaultOptions. Generated
// Decode methods (see the Decoder interface in schema.go) read a *Options
// directly, through State.Opts, since they live in other packages and so
// cannot see the unexported fields of a DecodeOption's closure.
type Options struct {
	MaxDepth          int
	MaxMessageLength  int
	RejectInvalidUTF8 bool
	StrictWireType    bool
}

// DefaultOptions is the zero-configuration behavior: a generous but finite
// recursion depth and message size, permissive wire-type handling, and no
// UTF-8 validation.
var DefaultOptions = Options{
	MaxDepth:         100,
	MaxMessageLength: math.MaxInt32,
}

// DecodeOption configures a call to Decode or Merge.
//
// This is a struct rather than an interface, following the same reasoning
// as https://github.com/golang/go/issues/74356: a plain function field
// avoids the interface-dispatch overhead of applying options on what is
// frequently the hottest path in the whole library.
type DecodeOption struct{ apply func(*Options) }

// WithMaxDepth bounds the recursion depth Decode will follow through nested
// messages and groups. Exceeding it reports CodeRecursionDepth rather than
// overflowing the goroutine stack on adversarial input.
func WithMaxDepth(depth int) DecodeOption {
	return DecodeOption{func(o *Options) { o.MaxDepth = min(depth, math.MaxInt32) }}
}

// WithMaxMessageLength bounds the encoded size, in bytes, of the input
// buffer and of any single length-delimited submessage Decode will parse.
// Exceeding it reports CodeMessageLength.
func WithMaxMessageLength(n int) DecodeOption {
	return DecodeOption{func(o *Options) { o.MaxMessageLength = n }}
}

// WithRejectInvalidUTF8 controls whether string fields are validated as
// well-formed UTF-8 during decode. Off by default: proto3 implementations
// are permitted, but not required, to validate this, and the check costs a
// full pass over every string field decoded. Turn it on for inputs that
// cross a trust boundary where malformed UTF-8 would otherwise propagate
// silently.
func WithRejectInvalidUTF8(reject bool) DecodeOption {
	return DecodeOption{func(o *Options) { o.RejectInvalidUTF8 = reject }}
}

// WithStrictWireType rejects a field whose wire type does not match any of
// the encodings its declared type supports, instead of silently treating
// it as an unknown field. Off by default, matching the permissive behavior
// most generated code exhibits.
func WithStrictWireType(strict bool) DecodeOption {
	return DecodeOption{func(o *Options) { o.StrictWireType = strict }}
}

// Resolve applies opts over DefaultOptions and returns the result.
func Resolve(opts ...DecodeOption) Options {
	o := DefaultOptions
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}
