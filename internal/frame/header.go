// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package frame implements the outer envelope around an encoded value: a
// 3-byte header (magic, version, feature flags), optional extension bytes,
// optional block compression of the payload, and the legacy local-table
// compatibility block.
package frame

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"

	"github.com/fracturedjson/fjson/internal/bytestream"
)

const (
	magic0 = 'F'
	magic1 = 'J'

	currentVersion = 0
	versionMask    = 0x0F

	flagUsesLocalKeysTable = 1 << 4
	flagIsBlockCompressed  = 1 << 5
	flagReserved6          = 1 << 6
	flagHasContinuation    = 1 << 7
)

// CompressorKind selects which block compressor produced/should decode the
// payload. Zero value (zstd) is the implicit meaning of a header with
// is-block-compressed set and no extension byte.
type CompressorKind byte

const (
	CompressorZstd   CompressorKind = 0
	CompressorSnappy CompressorKind = 1
	// CompressorDataDogZstd is reserved for the cgo zstd binding the
	// benchmark CLI uses as a comparison baseline; the library's own
	// encoder never emits it.
	CompressorDataDogZstd CompressorKind = 2
)

var (
	ErrBadMagic             = errors.New("frame: bad magic bytes")
	ErrUnsupportedVersion   = errors.New("frame: unsupported version")
	ErrUnknownExtension     = errors.New("frame: unknown extension byte")
	ErrDecompressionTooLarge = errors.New("frame: decompressed size exceeds upper bound")
)

// header is the parsed form of the 3-byte frame header plus any extension
// bytes consumed after it.
type header struct {
	version        int
	usesLocalTable bool
	isCompressed   bool
	compressor     CompressorKind
}

// writeHeader emits the 3-byte header and, if compressor differs from the
// implicit zstd default, one extension byte carrying CompressorKind in its
// low 3 bits.
func writeHeader(s *bytestream.Stream, compressed bool, compressor CompressorKind) {
	s.WriteU8(magic0)
	s.WriteU8(magic1)

	config := byte(currentVersion)
	if compressed {
		config |= flagIsBlockCompressed
	}
	needsExtension := compressor != CompressorZstd
	if needsExtension {
		config |= flagHasContinuation
	}
	s.WriteU8(config)
	if needsExtension {
		// Final extension byte: bit 7 clear (no further continuation).
		s.WriteU8(byte(compressor) & 0x07)
	}
}

// readHeader parses the header and any extension bytes, skipping
// unrecognized ones unless strict is set.
func readHeader(s *bytestream.Stream, strict bool) (header, error) {
	m0, err := s.ReadU8()
	if err != nil {
		return header{}, err
	}
	m1, err := s.ReadU8()
	if err != nil {
		return header{}, err
	}
	if m0 != magic0 || m1 != magic1 {
		return header{}, errors.Wrapf(ErrBadMagic, "got %#x %#x", redact.Safe(m0), redact.Safe(m1))
	}
	config, err := s.ReadU8()
	if err != nil {
		return header{}, err
	}
	h := header{
		version:        int(config & versionMask),
		usesLocalTable: config&flagUsesLocalKeysTable != 0,
		isCompressed:   config&flagIsBlockCompressed != 0,
		compressor:     CompressorZstd,
	}
	if h.version != currentVersion {
		return header{}, errors.Wrapf(ErrUnsupportedVersion, "version %s", redact.Safe(h.version))
	}
	if config&flagHasContinuation != 0 {
		first := true
		for {
			ext, err := s.ReadU8()
			if err != nil {
				return header{}, err
			}
			if first {
				kind := CompressorKind(ext & 0x07)
				switch kind {
				case CompressorZstd, CompressorSnappy, CompressorDataDogZstd:
					h.compressor = kind
				default:
					if strict {
						return header{}, errors.Wrapf(ErrUnknownExtension, "byte %#x", redact.Safe(ext))
					}
				}
				first = false
			} else if strict && ext&0x7F != 0 {
				return header{}, errors.Wrapf(ErrUnknownExtension, "byte %#x", redact.Safe(ext))
			}
			if ext&0x80 == 0 {
				break
			}
		}
	}
	return h, nil
}
