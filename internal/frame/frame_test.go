// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package frame

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/fracturedjson/fjson/internal/jsonvalue"
	"github.com/fracturedjson/fjson/internal/keytable"
)

// requireRoundTrip compares want against got the way the teacher's own
// data-driven tests do: a plain equality check backed by a kr/pretty tree
// diff on failure, so a mismatch shows which field differs instead of two
// opaque struct dumps.
func requireRoundTrip(t *testing.T, want, got jsonvalue.Value) {
	t.Helper()
	if !jsonvalue.Equal(want, got) {
		t.Fatalf("round trip mismatch:\n%s", strings.Join(pretty.Diff(want, got), "\n"))
	}
}

// TestHexVectors is a data-driven golden-file test over the concrete hex
// scenarios: each case parses a JSON literal, encodes it (optionally with a
// global keys table named by the "global" argument), and checks the result
// against the recorded hex dump.
func TestHexVectors(t *testing.T) {
	datadriven.RunTest(t, "testdata/hexvectors", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "encode":
			v, err := jsonvalue.Parse([]byte(d.Input))
			require.NoError(t, err)

			opts := Options{}
			if d.HasArg("global") {
				var key string
				d.ScanArgs(t, "global", &key)
				global, err := keytable.FromKeys([]string{key})
				require.NoError(t, err)
				opts.GlobalTable = global
			}

			got, err := Encode(v, opts)
			require.NoError(t, err)
			return formatHex(got)
		default:
			t.Fatalf("unknown command %q", d.Cmd)
			return ""
		}
	})
}

func formatHex(b []byte) string {
	groups := make([]string, len(b))
	for i, c := range b {
		groups[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(groups, " ") + "\n"
}

func TestRoundTripNoCompression(t *testing.T) {
	v := jsonvalue.NewObject().
		Set("name", "widget").
		Set("count", jsonvalue.Int(42)).
		Set("tags", jsonvalue.NewArray("x", "y"))
	encoded, err := Encode(v, Options{})
	require.NoError(t, err)
	decoded, err := Decode(encoded, Options{})
	require.NoError(t, err)
	requireRoundTrip(t, v, decoded)
}

func TestRoundTripZstdCompression(t *testing.T) {
	v := jsonvalue.NewArray()
	for i := 0; i < 200; i++ {
		v.Append(jsonvalue.NewObject().Set("id", jsonvalue.Int(int64(i))).Set("label", "repeated-label-text"))
	}
	encoded, err := Encode(v, Options{Compress: true, Level: 3})
	require.NoError(t, err)
	decoded, err := Decode(encoded, Options{})
	require.NoError(t, err)
	requireRoundTrip(t, v, decoded)
}

func TestRoundTripSnappyCompression(t *testing.T) {
	v := jsonvalue.NewArray()
	for i := 0; i < 50; i++ {
		v.Append("repeated-value")
	}
	encoded, err := Encode(v, Options{Compress: true, Compressor: CompressorSnappy})
	require.NoError(t, err)
	decoded, err := Decode(encoded, Options{})
	require.NoError(t, err)
	requireRoundTrip(t, v, decoded)
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x00, 0x00}, Options{})
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	_, err := Decode([]byte{'F', 'J', 0x01}, Options{})
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestEncodeIdempotent(t *testing.T) {
	v := jsonvalue.NewObject().Set("a", jsonvalue.Int(1)).Set("b", jsonvalue.NewArray("x", "y"))
	a, err := Encode(v, Options{})
	require.NoError(t, err)
	b, err := Encode(v, Options{})
	require.NoError(t, err)
	require.Equal(t, a, b) // P5
}

func TestGlobalTableMismatchDoesNotSilentlySucceed(t *testing.T) {
	global, err := keytable.FromKeys([]string{"a"})
	require.NoError(t, err)
	encoded, err := Encode(jsonvalue.NewObject().Set("a", jsonvalue.Int(1)), Options{GlobalTable: global})
	require.NoError(t, err)

	// Decoding without the global table: the tiny global-ref byte (0xAB)
	// is read back as global-table index 0, but the decoder's global table
	// is empty, so ErrBadIndex surfaces the mismatch rather than succeeding
	// silently. (P6)
	_, err = Decode(encoded, Options{})
	require.ErrorIs(t, err, keytable.ErrBadIndex)
}

func TestUnknownExtensionStrict(t *testing.T) {
	// Header with has-continuation set and an extension byte whose low 3
	// bits select an unrecognized compressor kind.
	b := []byte{'F', 'J', flagHasContinuation, 0x07}
	_, err := Decode(b, Options{Strict: true})
	require.ErrorIs(t, err, ErrUnknownExtension)
}

func TestUnknownExtensionPermissiveByDefault(t *testing.T) {
	b := []byte{'F', 'J', flagHasContinuation, 0x07, 0x7A} // 0x7A = 'z' null tag
	v, err := Decode(b, Options{})
	require.NoError(t, err)
	require.Nil(t, v)
}
