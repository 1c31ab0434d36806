// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keytable

import "github.com/fracturedjson/fjson/internal/bytestream"

// WriteKey resolves key against the tables and writes its key record,
// appending key to the local table if this is its first appearance. This is
// the single entry point the value codec's object writer should use.
func (t *Tables) WriteKey(s *bytestream.Stream, key string) error {
	loc, idx, isNew, err := t.Resolve(key)
	if err != nil {
		return err
	}
	return WriteKeyRecord(s, key, loc, idx, isNew)
}

// ReadKey reads one key record and returns the resolved string, appending it
// to the local table if it was written inline (mirroring WriteKey).
func (t *Tables) ReadKey(s *bytestream.Stream) (string, error) {
	rec, err := ReadKeyRecord(s)
	if err != nil {
		return "", err
	}
	switch rec.Kind {
	case KeyImmediate:
		if err := t.NoteInline(rec.Key); err != nil {
			return "", err
		}
		return rec.Key, nil
	case KeyLocalRef:
		return t.LookupLocal(rec.Index)
	default:
		return t.LookupGlobal(rec.Index)
	}
}
