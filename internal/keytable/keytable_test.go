// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keytable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
)

func TestWriteReadKeyRoundTrip(t *testing.T) {
	enc := New(nil)
	s := bytestream.New()
	require.NoError(t, enc.WriteKey(s, "alpha"))
	require.NoError(t, enc.WriteKey(s, "beta"))
	require.NoError(t, enc.WriteKey(s, "alpha")) // repeat -> back-reference

	dec := New(nil)
	r := bytestream.Make(s.Bytes())
	k1, err := dec.ReadKey(r)
	require.NoError(t, err)
	require.Equal(t, "alpha", k1)
	k2, err := dec.ReadKey(r)
	require.NoError(t, err)
	require.Equal(t, "beta", k2)
	k3, err := dec.ReadKey(r)
	require.NoError(t, err)
	require.Equal(t, "alpha", k3)

	require.Equal(t, enc.LocalEntries(), dec.LocalEntries()) // P3
	require.Equal(t, []string{"alpha", "beta"}, dec.LocalEntries())
}

func TestGlobalTableTakesPriority(t *testing.T) {
	global, err := FromKeys([]string{"a"})
	require.NoError(t, err)
	entries, err := DeserializeGlobal(bytestream.Make(global))
	require.NoError(t, err)

	enc := New(entries)
	s := bytestream.New()
	require.NoError(t, enc.WriteKey(s, "a"))
	require.False(t, enc.HasLocalKeysTable())
	require.Empty(t, enc.LocalEntries())
}

func TestGlobalTableSerializationRoundTrip(t *testing.T) {
	keys := []string{"id", "name", "value"}
	bytes, err := FromKeys(keys)
	require.NoError(t, err)
	got, err := DeserializeGlobal(bytestream.Make(bytes))
	require.NoError(t, err)
	require.Equal(t, keys, got)
}

func TestKeyTooLongRejected(t *testing.T) {
	longKey := make([]byte, 0xFF)
	for i := range longKey {
		longKey[i] = 'x'
	}
	_, err := FromKeys([]string{string(longKey)})
	require.ErrorIs(t, err, ErrKeyTooLong)
}

func TestTableFull(t *testing.T) {
	enc := New(nil)
	s := bytestream.New()
	for i := 0; i < MaxTableSize; i++ {
		require.NoError(t, enc.WriteKey(s, keyForIndex(i)))
	}
	err := enc.WriteKey(s, "one-too-many")
	require.ErrorIs(t, err, ErrTableFull)
}

func TestBadIndex(t *testing.T) {
	tbl := New(nil)
	_, err := tbl.LookupLocal(0)
	require.ErrorIs(t, err, ErrBadIndex)
}

func TestVU16ShortestForm(t *testing.T) {
	cases := []struct {
		v     uint32
		nByte int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{0xFFFF, 3},
	}
	for _, c := range cases {
		s := bytestream.New()
		require.NoError(t, WriteVU16(s, c.v))
		require.Len(t, s.Bytes(), c.nByte, "value=%d", c.v)
		got, err := ReadVU16(bytestream.Make(s.Bytes()))
		require.NoError(t, err)
		require.Equal(t, c.v, got)
	}
}

func TestVU16RejectsOverflowThirdByte(t *testing.T) {
	// third byte with bits set beyond the 2-bit cap.
	r := bytestream.Make([]byte{0x80, 0x80, 0x04})
	_, err := ReadVU16(r)
	require.ErrorIs(t, err, ErrBadVarint)
}

func TestBuildGlobalTableFromJSONOrdering(t *testing.T) {
	v, err := jsonvalue.Parse([]byte(`[{"a":1,"b":2,"a":3},{"a":4,"c":5}]`))
	require.NoError(t, err)
	bytes, err := FromJSON(v, 0, 0)
	require.NoError(t, err)
	got, err := DeserializeGlobal(bytestream.Make(bytes))
	require.NoError(t, err)
	// "a" occurs 3 times, "b" and "c" once each; ties broken by
	// first-encounter order ("b" before "c").
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestBuildGlobalTableFromJSONCutoffAndMax(t *testing.T) {
	v, err := jsonvalue.Parse([]byte(`[{"a":1,"b":2,"a":3},{"a":4,"c":5}]`))
	require.NoError(t, err)
	bytes, err := FromJSON(v, 1, 2)
	require.NoError(t, err)
	got, err := DeserializeGlobal(bytestream.Make(bytes))
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, got)
}

func keyForIndex(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return string([]byte{letters[i%26], letters[(i/26)%26], letters[(i/26/26)%26], letters[(i/26/26/26)%26]})
}
