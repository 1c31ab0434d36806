// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package valuecodec

import (
	"github.com/cockroachdb/errors"

	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
	"github.com/fracturedjson/fjson/internal/keytable"
)

// ErrUnsupportedValueType is returned when WriteValue is given a Go value
// that does not match any of jsonvalue's recognized variants.
var ErrUnsupportedValueType = errors.New("valuecodec: unsupported value type")

// WriteValue recursively encodes v, consulting and updating tables for any
// object member keys encountered along the way.
func WriteValue(s *bytestream.Stream, tables *keytable.Tables, v jsonvalue.Value) error {
	switch t := v.(type) {
	case nil:
		writeNull(s)
		return nil
	case bool:
		writeBool(s, t)
		return nil
	case string:
		return writeString(s, t)
	case jsonvalue.Number:
		if t.IsInteger() {
			return writeInteger(s, t)
		}
		return writeFloat(s, t.F)
	case *jsonvalue.Array:
		return writeArray(s, tables, t)
	case *jsonvalue.Object:
		return writeObject(s, tables, t)
	default:
		return errors.Wrapf(ErrUnsupportedValueType, "go type %T", v)
	}
}

// ReadValue recursively decodes one value from s.
func ReadValue(s *bytestream.Stream, tables *keytable.Tables) (jsonvalue.Value, error) {
	tag, cat, err := ReadTag(s)
	if err != nil {
		return nil, err
	}
	switch cat {
	case CategoryNull:
		return nil, nil
	case CategoryBool:
		return tag == TagBoolTrue, nil
	case CategoryString:
		return readString(s, tag)
	case CategoryInteger:
		return readInteger(s, tag)
	case CategoryFloat:
		f, err := readFloat(s, tag)
		if err != nil {
			return nil, err
		}
		return jsonvalue.Float(f), nil
	case CategoryArray:
		return readArray(s, tables, tag)
	case CategoryObject:
		return readObject(s, tables, tag)
	default:
		return nil, errors.Wrapf(ErrBadTypeTag, "tag %q has unknown category", byte(tag))
	}
}
