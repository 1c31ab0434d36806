// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package jsonvalue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)
	obj, ok := v.(*Object)
	require.True(t, ok)
	require.Equal(t, []string{"z", "a", "m"}, memberKeys(obj))
}

func TestParseNumberClassification(t *testing.T) {
	cases := []struct {
		text string
		kind NumberKind
	}{
		{"0", KindInt},
		{"-1", KindInt},
		{"18446744073709551615", KindUint}, // math.MaxUint64
		{"1.5", KindFloat},
		{"1e10", KindFloat},
		{"-0.0", KindFloat},
	}
	for _, c := range cases {
		v, err := Parse([]byte(c.text))
		require.NoError(t, err)
		n, ok := v.(Number)
		require.True(t, ok)
		require.Equal(t, c.kind, n.Kind, "text=%s", c.text)
	}
}

func TestEqualFloatBitExact(t *testing.T) {
	negZero := math.Copysign(0, -1) // the constant -0.0 is +0 in Go
	require.True(t, Equal(Float(0.0), Float(0.0)))
	require.False(t, Equal(Float(0.0), Float(negZero)))
	require.True(t, Equal(Float(negZero), Float(negZero)))
}

func TestEqualIntUintCrossKind(t *testing.T) {
	require.True(t, Equal(Int(5), Uint(5)))
	require.False(t, Equal(Int(-5), Uint(5)))
}

func TestTextRoundTrip(t *testing.T) {
	v, err := Parse([]byte(`{"a":[1,2,"x"],"b":null,"c":true}`))
	require.NoError(t, err)
	got := Text(v)
	reparsed, err := Parse([]byte(got))
	require.NoError(t, err)
	require.True(t, Equal(v, reparsed))
}

func memberKeys(o *Object) []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}
	return keys
}
