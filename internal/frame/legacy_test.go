// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
	"github.com/fracturedjson/fjson/internal/keytable"
	"github.com/fracturedjson/fjson/internal/valuecodec"
)

// TestDecodeLegacyLocalTable hand-builds a frame in the pre-inline-keys
// layout (uses-local-keys-table bit set, local table serialized right
// after the header) and checks it decodes exactly like a normal frame
// encoding the same value. No current encoder produces this layout, so
// this fixture is the only thing that ever reaches DecodeLegacyLocalTable.
func TestDecodeLegacyLocalTable(t *testing.T) {
	localTable, err := keytable.SerializeGlobal([]string{"a"})
	require.NoError(t, err)

	tables := keytable.New(nil)
	require.NoError(t, tables.NoteInline("a"))

	want := jsonvalue.NewObject().Set("a", jsonvalue.Int(1))
	payload := bytestream.New()
	require.NoError(t, valuecodec.WriteValue(payload, tables, want))

	raw := bytestream.New()
	raw.WriteU8(magic0)
	raw.WriteU8(magic1)
	raw.WriteU8(flagUsesLocalKeysTable)
	raw.Write(localTable)
	raw.Write(payload.Bytes())

	got, err := Decode(raw.Bytes(), Options{})
	require.NoError(t, err)
	requireRoundTrip(t, want, got)
}
