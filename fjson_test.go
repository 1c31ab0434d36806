// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package fjson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fracturedjson/fjson/internal/jsonvalue"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v, err := jsonvalue.Parse([]byte(`{"id":1,"name":"widget","price":19.99,"tags":["a","b"],"active":true,"note":null}`))
	require.NoError(t, err)

	encoded, err := Encode(v)
	require.NoError(t, err)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.True(t, jsonvalue.Equal(v, decoded))
}

func TestEncodeDecodeWithGlobalTable(t *testing.T) {
	v, err := jsonvalue.Parse([]byte(`[{"a":1},{"a":2},{"a":3}]`))
	require.NoError(t, err)

	table, err := BuildGlobalTableFromJSON(v, 0, 0)
	require.NoError(t, err)

	encoded, err := Encode(v, WithGlobalTable(table))
	require.NoError(t, err)
	decoded, err := Decode(encoded, WithGlobalTable(table))
	require.NoError(t, err)
	require.True(t, jsonvalue.Equal(v, decoded))
}

func TestEncodeDecodeWithCompressionAndMetrics(t *testing.T) {
	v, err := jsonvalue.Parse([]byte(`[1,2,3,4,5,"repeat","repeat","repeat"]`))
	require.NoError(t, err)

	m := NewMetrics()
	encoded, err := Encode(v, WithCompression(3), WithMetrics(m))
	require.NoError(t, err)
	decoded, err := Decode(encoded, WithMetrics(m))
	require.NoError(t, err)
	require.True(t, jsonvalue.Equal(v, decoded))
}

func TestBuildGlobalTableFromKeys(t *testing.T) {
	table, err := BuildGlobalTableFromKeys([]string{"id", "name"})
	require.NoError(t, err)
	require.NotEmpty(t, table)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte{0, 1, 2})
	require.Error(t, err)
}
