// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package valuecodec

import (
	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
	"github.com/fracturedjson/fjson/internal/keytable"
)

func writeObject(s *bytestream.Stream, tables *keytable.Tables, o *jsonvalue.Object) error {
	if err := writeSizeClass(s, len(o.Members), objectTags); err != nil {
		return err
	}
	for _, m := range o.Members {
		if err := tables.WriteKey(s, m.Key); err != nil {
			return err
		}
		if err := WriteValue(s, tables, m.Value); err != nil {
			return err
		}
	}
	return nil
}

func readObject(s *bytestream.Stream, tables *keytable.Tables, tag Tag) (*jsonvalue.Object, error) {
	n, err := readSize(s, tag, objectTags)
	if err != nil {
		return nil, err
	}
	obj := jsonvalue.NewObject()
	for i := 0; i < n; i++ {
		key, err := tables.ReadKey(s)
		if err != nil {
			return nil, err
		}
		v, err := ReadValue(s, tables)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	return obj, nil
}
