// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package frame

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// decompressionUpperBoundFactor bounds decompressed size as a multiple of
// the compressed input's length, guarding against decompression bombs.
const decompressionUpperBoundFactor = 50

var ErrCompressorFailure = errors.New("frame: compressor failure")

// compressor is the opaque compress/decompress pair the frame format treats
// every block compressor as implementing.
type compressor interface {
	compress(data []byte, level int, dict []byte) ([]byte, error)
	decompress(data []byte, upperBound int, dict []byte) ([]byte, error)
}

func compressorFor(kind CompressorKind) (compressor, error) {
	switch kind {
	case CompressorZstd:
		return zstdCompressor{}, nil
	case CompressorSnappy:
		return snappyCompressor{}, nil
	default:
		return nil, errors.Wrapf(ErrCompressorFailure, "no compressor for kind %s", redact.Safe(byte(kind)))
	}
}

type zstdCompressor struct{}

func (zstdCompressor) compress(data []byte, level int, dict []byte) ([]byte, error) {
	opts := []zstd.EOption{zstd.WithEncoderLevel(zstdLevel(level))}
	if len(dict) > 0 {
		opts = append(opts, zstd.WithEncoderDict(dict))
	}
	enc, err := zstd.NewWriter(nil, opts...)
	if err != nil {
		return nil, errors.Wrapf(ErrCompressorFailure, "zstd: %s", redact.Safe(err.Error()))
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func (zstdCompressor) decompress(data []byte, upperBound int, dict []byte) ([]byte, error) {
	var opts []zstd.DOption
	if len(dict) > 0 {
		opts = append(opts, zstd.WithDecoderDicts(dict))
	}
	dec, err := zstd.NewReader(nil, opts...)
	if err != nil {
		return nil, errors.Wrapf(ErrCompressorFailure, "zstd: %s", redact.Safe(err.Error()))
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, make([]byte, 0, min(upperBound, 1<<20)))
	if err != nil {
		return nil, errors.Wrapf(ErrCompressorFailure, "zstd: %s", redact.Safe(err.Error()))
	}
	if len(out) > upperBound {
		return nil, errors.Wrapf(ErrDecompressionTooLarge, "decoded %s bytes exceeds bound %s",
			redact.Safe(len(out)), redact.Safe(upperBound))
	}
	return out, nil
}

func zstdLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 0:
		return zstd.SpeedDefault
	case level == 1:
		return zstd.SpeedFastest
	case level >= 4:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedBetterCompression
	}
}

// snappyCompressor ignores level and dict: snappy's format supports
// neither.
type snappyCompressor struct{}

func (snappyCompressor) compress(data []byte, _ int, _ []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCompressor) decompress(data []byte, upperBound int, _ []byte) ([]byte, error) {
	n, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, errors.Wrapf(ErrCompressorFailure, "snappy: %s", redact.Safe(err.Error()))
	}
	if n > upperBound {
		return nil, errors.Wrapf(ErrDecompressionTooLarge, "decoded %s bytes exceeds bound %s",
			redact.Safe(n), redact.Safe(upperBound))
	}
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, errors.Wrapf(ErrCompressorFailure, "snappy: %s", redact.Safe(err.Error()))
	}
	return out, nil
}

