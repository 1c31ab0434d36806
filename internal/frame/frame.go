// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package frame

import (
	"github.com/cockroachdb/errors"

	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
	"github.com/fracturedjson/fjson/internal/keytable"
	"github.com/fracturedjson/fjson/internal/valuecodec"
)

// Options controls how Encode/Decode build and interpret a frame. The zero
// value means "no global table, no compression, zstd if compression is
// requested, permissive extension-byte handling."
type Options struct {
	GlobalTable []byte
	Compress    bool
	Level       int
	Compressor  CompressorKind
	Dictionary  []byte
	Strict      bool
}

// Encode writes the frame header, then the value-codec byte stream for v
// (optionally block-compressed), returning the complete frame bytes.
func Encode(v jsonvalue.Value, opts Options) ([]byte, error) {
	globalEntries, err := globalEntriesFrom(opts.GlobalTable)
	if err != nil {
		return nil, err
	}
	tables := keytable.New(globalEntries)

	payload := bytestream.New()
	if err := valuecodec.WriteValue(payload, tables, v); err != nil {
		return nil, err
	}
	raw := payload.Bytes()

	body := raw
	compressed := opts.Compress
	if compressed {
		c, err := compressorFor(opts.Compressor)
		if err != nil {
			return nil, err
		}
		body, err = c.compress(raw, opts.Level, opts.Dictionary)
		if err != nil {
			return nil, err
		}
	}

	out := bytestream.New()
	writeHeader(out, compressed, opts.Compressor)
	out.Write(body)
	return out.Bytes(), nil
}

// Decode reads a frame produced by Encode (or a tolerant legacy frame, see
// DecodeLegacyLocalTable) and returns the decoded value.
func Decode(b []byte, opts Options) (jsonvalue.Value, error) {
	globalEntries, err := globalEntriesFrom(opts.GlobalTable)
	if err != nil {
		return nil, err
	}

	s := bytestream.Make(b)
	h, err := readHeader(s, opts.Strict)
	if err != nil {
		return nil, err
	}

	tables := keytable.New(globalEntries)
	if h.usesLocalTable {
		return DecodeLegacyLocalTable(s, tables, h, opts)
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

func globalEntriesFrom(tableBytes []byte) ([]string, error) {
	if len(tableBytes) == 0 {
		return nil, nil
	}
	entries, err := keytable.DeserializeGlobal(bytestream.Make(tableBytes))
	if err != nil {
		return nil, errors.Wrap(err, "frame: deserializing global table")
	}
	return entries, nil
}
