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

package arenapb

import (
	"errors"
	"fmt"
	"io"

	"github.com/arenapb/arenapb/internal/wire"
)

// Code classifies why a decode or encode operation failed.
type Code int

const (
	// CodeOK is the zero Code; it never appears in a returned Error.
	CodeOK Code = iota
	// CodeTruncated means the input ended in the middle of a field.
	CodeTruncated
	// CodeFieldNumber means a tag named a field number outside 1 to 2^29-1.
	// Numbers in the reserved 19000-19999 range are accepted.
	CodeFieldNumber
	// CodeOverflow means a varint did not fit in 64 bits.
	CodeOverflow
	// CodeWireType means a tag named an undefined or unexpected wire type.
	CodeWireType
	// CodeEndGroup means an EGROUP tag did not match its enclosing SGROUP.
	CodeEndGroup
	// CodePackedLength means a packed repeated field's payload was not an
	// exact multiple of its element size, or an element ran past the
	// declared payload length.
	CodePackedLength
	// CodeRecursionDepth means message or group nesting exceeded the
	// configured maximum.
	CodeRecursionDepth
	// CodeMessageLength means the input buffer, or a length-delimited
	// submessage within it, exceeded the configured maximum encoded size.
	CodeMessageLength
	// CodeUTF8 means a string field contained invalid UTF-8 and strict
	// validation was enabled.
	CodeUTF8
	// CodeRequiredField means a proto2 required field was absent after
	// decoding a message.
	CodeRequiredField
	// CodeArena means an operation was attempted on a value that had
	// outlived the arena it was allocated from.
	CodeArena
)

var codeText = [...]error{
	CodeOK:             nil,
	CodeTruncated:      io.ErrUnexpectedEOF,
	CodeFieldNumber:    errors.New("invalid field number"),
	CodeOverflow:       errors.New("variable-length integer overflow"),
	CodeWireType:       errors.New("unexpected or undefined wire type"),
	CodeEndGroup:       errors.New("mismatched end-group marker"),
	CodePackedLength:   errors.New("packed field length does not cover whole elements"),
	CodeRecursionDepth: errors.New("maximum recursion depth exceeded"),
	CodeMessageLength:  errors.New("message exceeds maximum allowed length"),
	CodeUTF8:           errors.New("invalid UTF-8 in string field"),
	CodeRequiredField:  errors.New("required field missing"),
	CodeArena:          errors.New("value used after its arena was reset or released"),
}

// Error is returned by a decode or encode operation that fails partway
// through a message. It records not just what went wrong but where: the
// byte offset into the input (or output) at which the failure occurred,
// and, when known, the field number being processed.
type Error struct {
	Code   Code
	Offset int
	Field  wire.Number // zero if not applicable.
}

// Unwrap lets callers use errors.Is(err, io.ErrUnexpectedEOF) and similar
// against the sentinel errors backing each Code.
func (e *Error) Unwrap() error {
	return codeText[e.Code]
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != 0 {
		return fmt.Sprintf("arenapb: field %d at offset %#x: %v", e.Field, e.Offset, e.Unwrap())
	}
	return fmt.Sprintf("arenapb: offset %#x: %v", e.Offset, e.Unwrap())
}

// newError constructs an *Error for the given code at offset, with no
// field number attached.
func newError(code Code, offset int) error {
	return &Error{Code: code, Offset: offset}
}

// newFieldError is like newError, but records the field being decoded.
func newFieldError(code Code, offset int, field wire.Number) error {
	return &Error{Code: code, Offset: offset, Field: field}
}
