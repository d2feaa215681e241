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

package arenapb_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenapb/arenapb"
	"github.com/arenapb/arenapb/internal/examples"
)

func requireCode(t *testing.T, err error, code arenapb.Code) {
	t.Helper()
	var perr *arenapb.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, code, perr.Code)
}

func TestDecodeTagFieldClassification(t *testing.T) {
	_, _, err := arenapb.DecodeTagField([]byte{0x00}, 0) // field number 0.
	requireCode(t, err, arenapb.CodeFieldNumber)

	_, _, err = arenapb.DecodeTagField([]byte{0x0F}, 0) // field 1, wire type 7.
	requireCode(t, err, arenapb.CodeWireType)

	_, _, err = arenapb.DecodeTagField([]byte{0x80}, 0) // varint cut short.
	requireCode(t, err, arenapb.CodeTruncated)

	over := bytes.Repeat([]byte{0x80}, 10) // an 11th byte would be required.
	over = append(over, 0x01)
	_, _, err = arenapb.DecodeTagField(over, 0)
	requireCode(t, err, arenapb.CodeOverflow)
}

func TestDecodeAppliesMessageLengthCeiling(t *testing.T) {
	var src []byte
	src = arenapb.AppendStringField(src, 2, "over the limit")

	_, _, err := arenapb.Decode[examples.PersonBuilder](src, examples.PersonCodec,
		arenapb.WithMaxMessageLength(4))
	requireCode(t, err, arenapb.CodeMessageLength)

	_, _, err = arenapb.Decode[examples.PersonBuilder](src, examples.PersonCodec)
	require.NoError(t, err)
}
