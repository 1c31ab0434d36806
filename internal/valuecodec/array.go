// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package valuecodec

import (
	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
	"github.com/fracturedjson/fjson/internal/keytable"
)

func writeArray(s *bytestream.Stream, tables *keytable.Tables, a *jsonvalue.Array) error {
	if err := writeSizeClass(s, len(a.Items), arrayTags); err != nil {
		return err
	}
	for _, item := range a.Items {
		if err := WriteValue(s, tables, item); err != nil {
			return err
		}
	}
	return nil
}

func readArray(s *bytestream.Stream, tables *keytable.Tables, tag Tag) (*jsonvalue.Array, error) {
	n, err := readSize(s, tag, arrayTags)
	if err != nil {
		return nil, err
	}
	arr := &jsonvalue.Array{Items: make([]jsonvalue.Value, 0, n)}
	for i := 0; i < n; i++ {
		v, err := ReadValue(s, tables)
		if err != nil {
			return nil, err
		}
		arr.Append(v)
	}
	return arr, nil
}
