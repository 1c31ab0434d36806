// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package fjson

import (
	"time"

	"github.com/fracturedjson/fjson/internal/frame"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
)

// CompressorKind selects the block compressor a frame uses.
type CompressorKind = frame.CompressorKind

const (
	CompressorZstd   = frame.CompressorZstd
	CompressorSnappy = frame.CompressorSnappy
)

// Value is the JSON value tree this package encodes and decodes. See
// package jsonvalue for its constructors (Int, Uint, Float, NewObject,
// NewArray) and Parse, which builds a Value from JSON text.
type Value = jsonvalue.Value

type config struct {
	opts    frame.Options
	metrics *Metrics
}

// Option configures a call to Encode or Decode.
type Option func(*config)

// WithGlobalTable supplies a serialized global keys table (as produced by
// BuildGlobalTableFromKeys / BuildGlobalTableFromJSON) as a side channel to
// both Encode and Decode. The same bytes must be supplied on both sides of
// a round trip; otherwise Decode either fails (for example with ErrBadIndex)
// or silently returns wrong keys.
func WithGlobalTable(tableBytes []byte) Option {
	return func(c *config) { c.opts.GlobalTable = tableBytes }
}

// WithCompression enables block compression of the value payload at the
// given compressor-specific level (ignored by compressors, like snappy,
// that have no notion of level).
func WithCompression(level int) Option {
	return func(c *config) {
		c.opts.Compress = true
		c.opts.Level = level
	}
}

// WithCompressor selects which compressor Encode uses. The default is
// CompressorZstd. Decode ignores it: it takes the compressor from the
// frame header, where a header with no extension byte means zstd.
func WithCompressor(kind CompressorKind) Option {
	return func(c *config) { c.opts.Compressor = kind }
}

// WithDictionary supplies a compressor dictionary, forwarded opaquely to
// both the compress and decompress calls. Ignored by compressors (snappy)
// that have no dictionary support.
func WithDictionary(dict []byte) Option {
	return func(c *config) { c.opts.Dictionary = dict }
}

// WithStrict makes Decode reject unrecognized frame extension bytes with
// ErrUnknownExtension instead of skipping them.
func WithStrict(strict bool) Option {
	return func(c *config) { c.opts.Strict = strict }
}

// WithMetrics attaches m to this call: Encode/Decode record their outcome
// (byte counts, duration, success/failure) on m before returning.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

func buildConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Encode serializes v into the compact binary frame format.
func Encode(v Value, opts ...Option) ([]byte, error) {
	c := buildConfig(opts)
	start := time.Now()
	out, err := frame.Encode(v, c.opts)
	if c.metrics != nil {
		c.metrics.observeEncode(len(out), time.Since(start), err)
	}
	return out, err
}

// Decode parses b, previously produced by Encode, back into a Value.
func Decode(b []byte, opts ...Option) (Value, error) {
	c := buildConfig(opts)
	start := time.Now()
	v, err := frame.Decode(b, c.opts)
	if c.metrics != nil {
		c.metrics.observeDecode(len(b), time.Since(start), err)
	}
	return v, err
}
