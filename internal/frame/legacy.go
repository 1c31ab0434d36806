// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package frame

import (
	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
	"github.com/fracturedjson/fjson/internal/keytable"
	"github.com/fracturedjson/fjson/internal/valuecodec"
)

// DecodeLegacyLocalTable reads a frame whose uses-local-keys-table bit is
// set: a pre-inline-keys revision that serialized the local table (using
// the same wire format as the global table) immediately after the header,
// ahead of the value payload. New encoders never set this bit; Decode
// accepts it for reading documents produced by old encoders.
func DecodeLegacyLocalTable(s *bytestream.Stream, tables *keytable.Tables, h header, opts Options) (jsonvalue.Value, error) {
	localEntries, err := keytable.DeserializeGlobal(s)
	if err != nil {
		return nil, err
	}
	for _, key := range localEntries {
		if err := tables.NoteInline(key); err != nil {
			return nil, err
		}
	}

	body := s.ReadRemaining()
	if h.isCompressed {
		c, err := compressorFor(h.compressor)
		if err != nil {
			return nil, err
		}
		body, err = c.decompress(body, len(body)*decompressionUpperBoundFactor, opts.Dictionary)
		if err != nil {
			return nil, err
		}
	}

	return valuecodec.ReadValue(bytestream.Make(body), tables)
}
