// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package valuecodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
	"github.com/fracturedjson/fjson/internal/keytable"
)

func roundTrip(t *testing.T, v jsonvalue.Value) jsonvalue.Value {
	t.Helper()
	s := bytestream.New()
	require.NoError(t, WriteValue(s, keytable.New(nil), v))
	got, err := ReadValue(bytestream.Make(s.Bytes()), keytable.New(nil))
	require.NoError(t, err)
	return got
}

func TestRoundTripScalars(t *testing.T) {
	cases := []jsonvalue.Value{
		nil,
		true,
		false,
		"",
		"hello",
		jsonvalue.Int(0),
		jsonvalue.Int(-1),
		jsonvalue.Int(127),
		jsonvalue.Uint(255),
		jsonvalue.Uint(18446744073709551615),
		jsonvalue.Float(0.0),
		jsonvalue.Float(3.5),
		jsonvalue.Float(-3.5),
	}
	for _, c := range cases {
		require.True(t, jsonvalue.Equal(c, roundTrip(t, c)), "value=%v", c)
	}
}

func TestIntegerTagSelection(t *testing.T) {
	cases := []struct {
		n        jsonvalue.Number
		wantTag  Tag
	}{
		{jsonvalue.Int(0), TagIntZero},
		{jsonvalue.Uint(255), TagIntU8},
		{jsonvalue.Int(-128), TagIntI8},
		{jsonvalue.Uint(65535), TagIntU16},
		{jsonvalue.Int(-32768), TagIntI16},
		{jsonvalue.Uint(4294967295), TagIntU32},
		{jsonvalue.Int(-2147483648), TagIntI32},
		{jsonvalue.Int(-9223372036854775808), TagIntI64},
	}
	for _, c := range cases {
		s := bytestream.New()
		require.NoError(t, writeInteger(s, c.n))
		require.Equal(t, byte(c.wantTag), s.Bytes()[0], "n=%v", c.n)
	}
}

func TestFloatBandSelection(t *testing.T) {
	cases := []struct {
		f       float64
		wantTag Tag
	}{
		{0.0, TagFloatZero},
		{1.5, TagFloatF32},
		{16777216.0, TagFloatF32},
		{16777217.0, TagFloatF64},
		{1e-40, TagFloatF64}, // below smallest-normal-f32
		{1e300, TagFloatF64},
	}
	for _, c := range cases {
		s := bytestream.New()
		require.NoError(t, writeFloat(s, c.f))
		require.Equal(t, byte(c.wantTag), s.Bytes()[0], "f=%v", c.f)
	}
}

func TestWriteFloatRejectsNonFinite(t *testing.T) {
	s := bytestream.New()
	require.ErrorIs(t, writeFloat(s, posInf()), ErrNonFiniteNumber)
}

func posInf() float64 {
	var f float64 = 1
	return f / 0
}

func TestRoundTripNestedContainers(t *testing.T) {
	obj := jsonvalue.NewObject().
		Set("name", "alpha").
		Set("tags", jsonvalue.NewArray("a", "b", jsonvalue.Int(3))).
		Set("nested", jsonvalue.NewObject().Set("ok", true))
	got := roundTrip(t, obj)
	require.True(t, jsonvalue.Equal(obj, got))
}

func TestRoundTripEmptyContainers(t *testing.T) {
	require.True(t, jsonvalue.Equal(jsonvalue.NewArray(), roundTrip(t, jsonvalue.NewArray())))
	require.True(t, jsonvalue.Equal(jsonvalue.NewObject(), roundTrip(t, jsonvalue.NewObject())))
}

func TestObjectUsesKeyTableBackReferences(t *testing.T) {
	arr := jsonvalue.NewArray(
		jsonvalue.NewObject().Set("id", jsonvalue.Int(1)),
		jsonvalue.NewObject().Set("id", jsonvalue.Int(2)),
	)
	s := bytestream.New()
	tables := keytable.New(nil)
	require.NoError(t, WriteValue(s, tables, arr))
	require.Equal(t, []string{"id"}, tables.LocalEntries())

	got, err := ReadValue(bytestream.Make(s.Bytes()), keytable.New(nil))
	require.NoError(t, err)
	require.True(t, jsonvalue.Equal(arr, got))
}

func TestReadValueBadTag(t *testing.T) {
	s := bytestream.Make([]byte{0xFF})
	_, err := ReadValue(s, keytable.New(nil))
	require.ErrorIs(t, err, ErrBadTypeTag)
}
