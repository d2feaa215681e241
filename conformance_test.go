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
	"embed"
	"encoding/hex"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arenapb/arenapb"
	"github.com/arenapb/arenapb/internal/examples"
)

// fixture mirrors one YAML test file under testdata/. Each names the
// message type it exercises and gives the wire bytes either as hex or as a
// protoscope program, never both.
type fixture struct {
	Name string `yaml:"-"`

	Type       string `yaml:"type"`
	WantError  bool   `yaml:"wantError"`
	Hex        string `yaml:"hex"`
	Protoscope string `yaml:"protoscope"`

	bytes []byte
}

//go:embed testdata/*
var testdataFS embed.FS

func loadFixtures(t *testing.T) []*fixture {
	t.Helper()

	var fixtures []*fixture
	err := fs.WalkDir(testdataFS, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		data, err := fs.ReadFile(testdataFS, path)
		require.NoError(t, err, "loading fixture %q", path)

		f := new(fixture)
		require.NoError(t, yaml.Unmarshal(data, f), "parsing fixture %q", path)
		f.Name = strings.TrimPrefix(path, "testdata/")

		switch {
		case f.Hex != "":
			r := strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "")
			f.bytes, err = hex.DecodeString(r.Replace(f.Hex))
			require.NoError(t, err, "decoding hex in %q", path)
		case f.Protoscope != "":
			s := protoscope.NewScanner(f.Protoscope)
			f.bytes, err = s.Exec()
			require.NoError(t, err, "assembling protoscope in %q", path)
		}

		fixtures = append(fixtures, f)
		return nil
	})
	require.NoError(t, err)
	return fixtures
}

// TestFixtures decodes every testdata/*.yaml fixture with the codec named
// by its "type" field and checks the properties that hold independent of
// any single message shape: a well-formed fixture decodes without error
// and re-encodes to a value that decodes back to the same logical content
// (round-trip); a fixture marked wantError fails decode with an
// *arenapb.Error.
//
// There is no reflection-based gencode oracle in this module to diff
// against (no descriptor registry backs these hand-written message
// types), so these fixtures check round-trip stability only; no test in
// this module compares its output against another implementation.
func TestFixtures(t *testing.T) {
	for _, f := range loadFixtures(t) {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			switch f.Type {
			case "person":
				runFixture[examples.PersonBuilder, examples.Person](t, f, examples.PersonCodec)
			case "numbers":
				runFixture[examples.NumbersBuilder, examples.Numbers](t, f, examples.NumbersCodec)
			case "contact":
				runFixture[examples.ContactBuilder, examples.Contact](t, f, examples.ContactCodec)
			case "legacyRecord":
				runFixture[examples.LegacyRecordBuilder, examples.LegacyRecord](t, f, examples.LegacyRecordCodec)
			case "directory":
				runFixture[examples.DirectoryBuilder, examples.Directory](t, f, examples.DirectoryCodec)
			case "node":
				runFixture[examples.NodeBuilder, examples.Node](t, f, examples.NodeCodec)
			default:
				t.Fatalf("fixture %q: unknown type %q", f.Name, f.Type)
			}
		})
	}
}

// codec bundles the three roles a message type's generated code plays,
// parameterized the same way arenapb.Decoder/Freezer/Encoder are.
type codec[B, V any] interface {
	arenapb.Decoder[B]
	arenapb.Freezer[B, V]
	arenapb.Encoder[V]
}

func runFixture[B, V any](t *testing.T, f *fixture, c codec[B, V]) {
	t.Helper()

	arena, b, err := arenapb.Decode[B](f.bytes, c)
	if f.WantError {
		require.Error(t, err, "fixture %q: expected decode error", f.Name)
		var perr *arenapb.Error
		require.ErrorAs(t, err, &perr)
		return
	}
	require.NoError(t, err, "fixture %q: decode", f.Name)

	view := c.Freeze(b, arenapb.BindTo(arena))
	reencoded := arenapb.Encode[V](view, c)

	arena2, b2, err := arenapb.Decode[B](reencoded, c)
	require.NoError(t, err, "fixture %q: re-decode", f.Name)
	view2 := c.Freeze(b2, arenapb.BindTo(arena2))

	require.Equal(t, arenapb.Encode[V](view, c), arenapb.Encode[V](view2, c),
		"fixture %q: re-encoding a decoded-then-reencoded message changed its bytes", f.Name)
}
